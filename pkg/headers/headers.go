// Package headers reads the correlation headers every request must carry and
// validates their presence.
package headers

import (
	"encoding/json"
	"net/http"
	"strings"

	"google.golang.org/grpc/metadata"

	"github.com/Goden-Gun/service-lib/pkg/codes"
	"github.com/Goden-Gun/service-lib/pkg/fault"
)

// Header names. gRPC metadata keys use the same lowercase names.
const (
	SessionID     = "session-id"
	TransactionID = "transaction-id"
	ChannelID     = "channel-id"
	UserInfo      = "user-info"
)

// DetailHeader names the missing header on a protocol violation fault.
const DetailHeader = "Header"

// User is the JSON payload of the user-info header.
type User struct {
	Username        string `json:"username,omitempty"`
	Email           string `json:"email,omitempty"`
	UserID          string `json:"userId,omitempty"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// HasInfo reports whether any identifying field is set.
func (u User) HasInfo() bool {
	return u.Username != "" || u.Email != "" || u.UserID != ""
}

// Getter returns the first value of a header, or "".
type Getter interface {
	Get(key string) string
}

type mdGetter metadata.MD

func (m mdGetter) Get(key string) string {
	if vs := metadata.MD(m).Get(key); len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Reader gives typed access to the correlation headers of one request.
type Reader struct {
	src Getter
}

// NewReader reads from any Getter.
func NewReader(src Getter) Reader { return Reader{src: src} }

// FromHTTP reads from HTTP request headers.
func FromHTTP(h http.Header) Reader { return Reader{src: h} }

// FromMetadata reads from incoming gRPC metadata.
func FromMetadata(md metadata.MD) Reader { return Reader{src: mdGetter(md)} }

func (r Reader) get(key string) string {
	if r.src == nil {
		return ""
	}
	return strings.TrimSpace(r.src.Get(key))
}

func (r Reader) SessionID() string     { return r.get(SessionID) }
func (r Reader) TransactionID() string { return r.get(TransactionID) }
func (r Reader) ChannelID() string     { return r.get(ChannelID) }

// User decodes the user-info header. ok is false when the header is absent
// or is not valid JSON.
func (r Reader) User() (u User, ok bool) {
	raw := r.get(UserInfo)
	if raw == "" {
		return User{}, false
	}
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return User{}, false
	}
	return u, true
}

// Username is shorthand for the user-info username.
func (r Reader) Username() string {
	u, _ := r.User()
	return u.Username
}

// HasUserInfo reports whether user-info decodes to a user with any info.
func (r Reader) HasUserInfo() bool {
	u, ok := r.User()
	return ok && u.HasInfo()
}

type requirement struct {
	header string
	code   codes.ErrorCode
	ok     func(Reader) bool
}

var requirements = []requirement{
	{SessionID, codes.SessionIdHeaderNotFound, func(r Reader) bool { return r.SessionID() != "" }},
	{TransactionID, codes.TransactionIdHeaderNotFound, func(r Reader) bool { return r.TransactionID() != "" }},
	{ChannelID, codes.ChannelIdHeaderNotFound, func(r Reader) bool { return r.ChannelID() != "" }},
	{UserInfo, codes.UserInfoHeaderNotFound, Reader.HasUserInfo},
}

// Validate checks the required headers in order session-id, transaction-id,
// channel-id and, when requireUser is set, user-info. It returns the protocol
// violation for the first missing one, or nil. The fault carries the
// transaction id as correlation id when that header is present.
func (r Reader) Validate(requireUser bool) *fault.ServiceFault {
	for _, req := range requirements {
		if req.header == UserInfo && !requireUser {
			continue
		}
		if !req.ok(r) {
			return fault.New(req.code, req.header+" header is required",
				fault.WithDetail(DetailHeader, req.header),
				fault.WithCorrelationID(r.TransactionID()),
			)
		}
	}
	return nil
}
