// Package codes defines the closed error taxonomy shared across services.
//
// Every tag maps to exactly one stable integer. Numbers and names are wire
// data: adding a tag is backward compatible, removing or renumbering one is
// a breaking change for any consumer that branches on the code.
package codes

import "strconv"

// ErrorCode is a tag of the taxonomy.
type ErrorCode int32

// Generic tags.
const (
	// None marks a fault that no classification rule recognised.
	None ErrorCode = 0
	// BadRequest indicates the request did not match what the receiver expected.
	BadRequest ErrorCode = 400
)

// Protocol violations raised by this library itself (43x: request header errors).
const (
	// SessionIdHeaderNotFound indicates the session-id header is missing.
	SessionIdHeaderNotFound ErrorCode = 432
	// TransactionIdHeaderNotFound indicates the transaction-id header is missing.
	TransactionIdHeaderNotFound ErrorCode = 433
	// ChannelIdHeaderNotFound indicates the channel-id header is missing.
	ChannelIdHeaderNotFound ErrorCode = 434
	// UserInfoHeaderNotFound indicates the user-info header is missing or empty.
	UserInfoHeaderNotFound ErrorCode = 435
)

// Classified runtime faults. Numbers are sequential from 520 in declaration
// order and must never be reused.
const (
	AccessViolation            ErrorCode = 520
	AggregateFailure           ErrorCode = 521
	AppDomainUnloaded          ErrorCode = 522
	ArgumentNull               ErrorCode = 523
	ArgumentOutOfRange         ErrorCode = 524
	ArgumentInvalid            ErrorCode = 525
	ArithmeticInvalid          ErrorCode = 526
	ArrayTypeMismatch          ErrorCode = 527
	BadImageFormat             ErrorCode = 528
	CannotUnloadAppDomain      ErrorCode = 529
	ContextMashalFailure       ErrorCode = 530
	DataMisaligned             ErrorCode = 531
	DbUpdateConcurrency        ErrorCode = 532
	DbUpdateFailure            ErrorCode = 533
	DirectoryNotFound          ErrorCode = 534
	DivideByZero               ErrorCode = 535
	DllNotFound                ErrorCode = 536
	DuplicateWaitObject        ErrorCode = 537
	EndOfStream                ErrorCode = 538
	EntryPointNotFound         ErrorCode = 539
	FieldAccessInvalid         ErrorCode = 540
	FileNotFound               ErrorCode = 541
	FormatInvalid              ErrorCode = 542
	HttpIOFailure              ErrorCode = 543
	IndexOutOfRange            ErrorCode = 544
	InsufficientExecutionStack ErrorCode = 545
	InsufficientMemory         ErrorCode = 546
	InvalidCast                ErrorCode = 547
	InvalidData                ErrorCode = 548
	InvalidOperation           ErrorCode = 549
	InvalidTimeZone            ErrorCode = 550
	KeyNotFound                ErrorCode = 551
	LockRecursionFailure       ErrorCode = 552
	MemberAcessInvalid         ErrorCode = 553
	MethodAccessInvalid        ErrorCode = 554
	MissingField               ErrorCode = 555
	MissingMember              ErrorCode = 556
	MissingMethod              ErrorCode = 557
	NotFiniteNumber            ErrorCode = 558
	NotImplemented             ErrorCode = 559
	NotSupported               ErrorCode = 560
	NullReference              ErrorCode = 561
	ObjectDisposed             ErrorCode = 562
	OperationCanceled          ErrorCode = 563
	OutOfMemory                ErrorCode = 564
	OverflowFailure            ErrorCode = 565
	PathTooLongFileName        ErrorCode = 566
	PlatformNotSupported       ErrorCode = 567
	RankArray                  ErrorCode = 568
	StackOverflow              ErrorCode = 569
	Timeout                    ErrorCode = 570
	TimeZoneNotFound           ErrorCode = 571
	TypeAccessInvalid          ErrorCode = 572
	TypeInitializationFailure  ErrorCode = 573
	TypeLoadFailure            ErrorCode = 574
	TypeUnloaded               ErrorCode = 575
	UnauthorizedAccess         ErrorCode = 576
	UriFormatException         ErrorCode = 577
	ValidationFailure          ErrorCode = 578
)

// Registry exposes every tag in declaration order for validation or docs.
var Registry = []ErrorCode{
	None,
	BadRequest,
	SessionIdHeaderNotFound,
	TransactionIdHeaderNotFound,
	ChannelIdHeaderNotFound,
	UserInfoHeaderNotFound,
	AccessViolation,
	AggregateFailure,
	AppDomainUnloaded,
	ArgumentNull,
	ArgumentOutOfRange,
	ArgumentInvalid,
	ArithmeticInvalid,
	ArrayTypeMismatch,
	BadImageFormat,
	CannotUnloadAppDomain,
	ContextMashalFailure,
	DataMisaligned,
	DbUpdateConcurrency,
	DbUpdateFailure,
	DirectoryNotFound,
	DivideByZero,
	DllNotFound,
	DuplicateWaitObject,
	EndOfStream,
	EntryPointNotFound,
	FieldAccessInvalid,
	FileNotFound,
	FormatInvalid,
	HttpIOFailure,
	IndexOutOfRange,
	InsufficientExecutionStack,
	InsufficientMemory,
	InvalidCast,
	InvalidData,
	InvalidOperation,
	InvalidTimeZone,
	KeyNotFound,
	LockRecursionFailure,
	MemberAcessInvalid,
	MethodAccessInvalid,
	MissingField,
	MissingMember,
	MissingMethod,
	NotFiniteNumber,
	NotImplemented,
	NotSupported,
	NullReference,
	ObjectDisposed,
	OperationCanceled,
	OutOfMemory,
	OverflowFailure,
	PathTooLongFileName,
	PlatformNotSupported,
	RankArray,
	StackOverflow,
	Timeout,
	TimeZoneNotFound,
	TypeAccessInvalid,
	TypeInitializationFailure,
	TypeLoadFailure,
	TypeUnloaded,
	UnauthorizedAccess,
	UriFormatException,
	ValidationFailure,
}

var names = map[ErrorCode]string{
	None:                        "None",
	BadRequest:                  "BadRequest",
	SessionIdHeaderNotFound:     "SessionIdHeaderNotFound",
	TransactionIdHeaderNotFound: "TransactionIdHeaderNotFound",
	ChannelIdHeaderNotFound:     "ChannelIdHeaderNotFound",
	UserInfoHeaderNotFound:      "UserInfoHeaderNotFound",
	AccessViolation:             "AccessViolation",
	AggregateFailure:            "AggregateFailure",
	AppDomainUnloaded:           "AppDomainUnloaded",
	ArgumentNull:                "ArgumentNull",
	ArgumentOutOfRange:          "ArgumentOutOfRange",
	ArgumentInvalid:             "ArgumentInvalid",
	ArithmeticInvalid:           "ArithmeticInvalid",
	ArrayTypeMismatch:           "ArrayTypeMismatch",
	BadImageFormat:              "BadImageFormat",
	CannotUnloadAppDomain:       "CannotUnloadAppDomain",
	ContextMashalFailure:        "ContextMashalFailure",
	DataMisaligned:              "DataMisaligned",
	DbUpdateConcurrency:         "DbUpdateConcurrency",
	DbUpdateFailure:             "DbUpdateFailure",
	DirectoryNotFound:           "DirectoryNotFound",
	DivideByZero:                "DivideByZero",
	DllNotFound:                 "DllNotFound",
	DuplicateWaitObject:         "DuplicateWaitObject",
	EndOfStream:                 "EndOfStream",
	EntryPointNotFound:          "EntryPointNotFound",
	FieldAccessInvalid:          "FieldAccessInvalid",
	FileNotFound:                "FileNotFound",
	FormatInvalid:               "FormatInvalid",
	HttpIOFailure:               "HttpIOFailure",
	IndexOutOfRange:             "IndexOutOfRange",
	InsufficientExecutionStack:  "InsufficientExecutionStack",
	InsufficientMemory:          "InsufficientMemory",
	InvalidCast:                 "InvalidCast",
	InvalidData:                 "InvalidData",
	InvalidOperation:            "InvalidOperation",
	InvalidTimeZone:             "InvalidTimeZone",
	KeyNotFound:                 "KeyNotFound",
	LockRecursionFailure:        "LockRecursionFailure",
	MemberAcessInvalid:          "MemberAcessInvalid",
	MethodAccessInvalid:         "MethodAccessInvalid",
	MissingField:                "MissingField",
	MissingMember:               "MissingMember",
	MissingMethod:               "MissingMethod",
	NotFiniteNumber:             "NotFiniteNumber",
	NotImplemented:              "NotImplemented",
	NotSupported:                "NotSupported",
	NullReference:               "NullReference",
	ObjectDisposed:              "ObjectDisposed",
	OperationCanceled:           "OperationCanceled",
	OutOfMemory:                 "OutOfMemory",
	OverflowFailure:             "OverflowFailure",
	PathTooLongFileName:         "PathTooLongFileName",
	PlatformNotSupported:        "PlatformNotSupported",
	RankArray:                   "RankArray",
	StackOverflow:               "StackOverflow",
	Timeout:                     "Timeout",
	TimeZoneNotFound:            "TimeZoneNotFound",
	TypeAccessInvalid:           "TypeAccessInvalid",
	TypeInitializationFailure:   "TypeInitializationFailure",
	TypeLoadFailure:             "TypeLoadFailure",
	TypeUnloaded:                "TypeUnloaded",
	UnauthorizedAccess:          "UnauthorizedAccess",
	UriFormatException:          "UriFormatException",
	ValidationFailure:           "ValidationFailure",
}

var byName = func() map[string]ErrorCode {
	m := make(map[string]ErrorCode, len(names))
	for code, name := range names {
		m[name] = code
	}
	return m
}()

// String returns the tag name. Numbers outside the taxonomy render as ErrorCode(n).
func (c ErrorCode) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// Defined reports whether c is a member of the taxonomy.
func (c ErrorCode) Defined() bool {
	_, ok := names[c]
	return ok
}

// IsProtocolViolation reports whether c is one of the reserved header codes 432–435.
func (c ErrorCode) IsProtocolViolation() bool {
	return c >= SessionIdHeaderNotFound && c <= UserInfoHeaderNotFound
}

// Parse looks a tag up by name.
func Parse(name string) (ErrorCode, bool) {
	c, ok := byName[name]
	return c, ok
}
