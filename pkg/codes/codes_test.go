package codes

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpccodes "google.golang.org/grpc/codes"
)

func TestRegistry_StableNumbers(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int32
		name string
	}{
		{None, 0, "None"},
		{BadRequest, 400, "BadRequest"},
		{SessionIdHeaderNotFound, 432, "SessionIdHeaderNotFound"},
		{TransactionIdHeaderNotFound, 433, "TransactionIdHeaderNotFound"},
		{ChannelIdHeaderNotFound, 434, "ChannelIdHeaderNotFound"},
		{UserInfoHeaderNotFound, 435, "UserInfoHeaderNotFound"},
		{AccessViolation, 520, "AccessViolation"},
		{ArgumentOutOfRange, 524, "ArgumentOutOfRange"},
		{ArgumentInvalid, 525, "ArgumentInvalid"},
		{FileNotFound, 541, "FileNotFound"},
		{ValidationFailure, 578, "ValidationFailure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, int32(tt.code))
			assert.Equal(t, tt.name, tt.code.String())
		})
	}
}

func TestRegistry_ClassifiedRangeIsSequential(t *testing.T) {
	var classified []ErrorCode
	for _, c := range Registry {
		if c >= AccessViolation {
			classified = append(classified, c)
		}
	}
	require.NotEmpty(t, classified)
	for i, c := range classified {
		assert.Equal(t, AccessViolation+ErrorCode(i), c, "tag %s out of sequence", c)
	}
}

func TestRegistry_NamesAreUniqueAndParse(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Registry {
		require.True(t, c.Defined())
		name := c.String()
		require.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true

		parsed, ok := Parse(name)
		require.True(t, ok)
		assert.Equal(t, c, parsed)
	}
	assert.Len(t, seen, len(names))
}

func TestErrorCode_Unknown(t *testing.T) {
	c := ErrorCode(9999)
	assert.False(t, c.Defined())
	assert.Equal(t, "ErrorCode(9999)", c.String())

	_, ok := Parse("NoSuchTag")
	assert.False(t, ok)
}

func TestErrorCode_IsProtocolViolation(t *testing.T) {
	for _, c := range Registry {
		want := c == SessionIdHeaderNotFound || c == TransactionIdHeaderNotFound ||
			c == ChannelIdHeaderNotFound || c == UserInfoHeaderNotFound
		assert.Equal(t, want, c.IsProtocolViolation(), c.String())
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 432, HTTPStatus(SessionIdHeaderNotFound))
	assert.Equal(t, 435, HTTPStatus(UserInfoHeaderNotFound))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(BadRequest))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ArgumentOutOfRange))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(KeyNotFound))
	assert.Equal(t, http.StatusGatewayTimeout, HTTPStatus(Timeout))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(None))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(StackOverflow))
}

func TestGRPCCode(t *testing.T) {
	assert.Equal(t, grpccodes.OutOfRange, GRPCCode(ArgumentOutOfRange))
	assert.Equal(t, grpccodes.NotFound, GRPCCode(KeyNotFound))
	assert.Equal(t, grpccodes.DeadlineExceeded, GRPCCode(Timeout))
	assert.Equal(t, grpccodes.Canceled, GRPCCode(OperationCanceled))
	assert.Equal(t, grpccodes.Unknown, GRPCCode(None))
	assert.Equal(t, grpccodes.Internal, GRPCCode(TypeLoadFailure))
}
