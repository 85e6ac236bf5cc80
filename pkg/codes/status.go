package codes

import (
	"net/http"

	grpccodes "google.golang.org/grpc/codes"
)

// statusRule pairs the transport statuses chosen for a tag.
type statusRule struct {
	http int
	grpc grpccodes.Code
}

// Tags not listed fall back to 500 / Internal.
var statusRules = map[ErrorCode]statusRule{
	None:       {http.StatusInternalServerError, grpccodes.Unknown},
	BadRequest: {http.StatusBadRequest, grpccodes.InvalidArgument},

	SessionIdHeaderNotFound:     {int(SessionIdHeaderNotFound), grpccodes.InvalidArgument},
	TransactionIdHeaderNotFound: {int(TransactionIdHeaderNotFound), grpccodes.InvalidArgument},
	ChannelIdHeaderNotFound:     {int(ChannelIdHeaderNotFound), grpccodes.InvalidArgument},
	UserInfoHeaderNotFound:      {int(UserInfoHeaderNotFound), grpccodes.Unauthenticated},

	ArgumentNull:       {http.StatusBadRequest, grpccodes.InvalidArgument},
	ArgumentOutOfRange: {http.StatusBadRequest, grpccodes.OutOfRange},
	ArgumentInvalid:    {http.StatusBadRequest, grpccodes.InvalidArgument},
	FormatInvalid:      {http.StatusBadRequest, grpccodes.InvalidArgument},
	InvalidCast:        {http.StatusBadRequest, grpccodes.InvalidArgument},
	InvalidData:        {http.StatusBadRequest, grpccodes.InvalidArgument},
	UriFormatException: {http.StatusBadRequest, grpccodes.InvalidArgument},
	ValidationFailure:  {http.StatusUnprocessableEntity, grpccodes.InvalidArgument},

	KeyNotFound:       {http.StatusNotFound, grpccodes.NotFound},
	FileNotFound:      {http.StatusNotFound, grpccodes.NotFound},
	DirectoryNotFound: {http.StatusNotFound, grpccodes.NotFound},

	DbUpdateConcurrency: {http.StatusConflict, grpccodes.Aborted},
	DbUpdateFailure:     {http.StatusConflict, grpccodes.FailedPrecondition},
	InvalidOperation:    {http.StatusConflict, grpccodes.FailedPrecondition},
	ObjectDisposed:      {http.StatusServiceUnavailable, grpccodes.Unavailable},

	UnauthorizedAccess: {http.StatusForbidden, grpccodes.PermissionDenied},

	NotImplemented:       {http.StatusNotImplemented, grpccodes.Unimplemented},
	NotSupported:         {http.StatusNotImplemented, grpccodes.Unimplemented},
	PlatformNotSupported: {http.StatusNotImplemented, grpccodes.Unimplemented},

	OperationCanceled: {499, grpccodes.Canceled},
	Timeout:           {http.StatusGatewayTimeout, grpccodes.DeadlineExceeded},
	HttpIOFailure:     {http.StatusBadGateway, grpccodes.Unavailable},
	EndOfStream:       {http.StatusBadRequest, grpccodes.DataLoss},

	InsufficientMemory: {http.StatusInsufficientStorage, grpccodes.ResourceExhausted},
	OutOfMemory:        {http.StatusInsufficientStorage, grpccodes.ResourceExhausted},
}

// HTTPStatus returns the HTTP status a boundary should answer with for c.
// Protocol violations answer with their own number.
func HTTPStatus(c ErrorCode) int {
	if r, ok := statusRules[c]; ok {
		return r.http
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the gRPC status code a boundary should answer with for c.
func GRPCCode(c ErrorCode) grpccodes.Code {
	if r, ok := statusRules[c]; ok {
		return r.grpc
	}
	return grpccodes.Internal
}
