package qbt

import (
	"fmt"
	"net"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestClassifyErrorNil(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
	assert.Equal(t, ErrorCodeNone, GetErrorCode(nil))
	assert.False(t, IsRetryableError(nil))
	assert.False(t, IsPermanentError(nil))
}

func TestClassifyErrorPassthrough(t *testing.T) {
	orig := NewClientError(ErrorCodeConflict, "already exists", nil, true)
	classified := ClassifyError(orig)
	assert.Same(t, orig, classified)

	// A wrapped ClientError is still found.
	wrapped := errors.Wrap(orig, "outer context")
	assert.Equal(t, ErrorCodeConflict, GetErrorCode(wrapped))
}

func TestClassifyErrorDNS(t *testing.T) {
	err := &net.DNSError{Name: "nosuchhost.invalid", Err: "no such host"}
	classified := ClassifyError(err)
	assert.Equal(t, ErrorCodeDNS, classified.Code)
	assert.True(t, classified.Permanent)
	assert.Contains(t, classified.Message, "nosuchhost.invalid")
}

func TestClassifyErrorByMessage(t *testing.T) {
	tests := []struct {
		message   string
		code      ErrorCode
		permanent bool
	}{
		{"dial tcp: connection refused", ErrorCodeConnectionRefused, false},
		{"context deadline exceeded", ErrorCodeTimeout, false},
		{"x509: certificate signed by unknown authority", ErrorCodeSSLError, true},
		{"malformed HTTP response", ErrorCodeHTTPSRequired, true},
		{"login response: Fails.", ErrorCodeLoginFailed, true},
		{"something unexpected happened", ErrorCodeUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			classified := ClassifyError(fmt.Errorf("%s", tt.message))
			assert.Equal(t, tt.code, classified.Code)
			assert.Equal(t, tt.permanent, classified.Permanent)
		})
	}
}

func TestClassifyHTTPStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		hashes    string
		code      ErrorCode
		permanent bool
	}{
		{"400 empty is missing params", 400, "", "", ErrorCodeMissingParameters, true},
		{"400 Bad Request is missing params", 400, "Bad Request", "", ErrorCodeMissingParameters, true},
		{"400 with message is invalid request", 400, "Priority must be an integer", "", ErrorCodeInvalidRequest, true},
		{"401", 401, "", "", ErrorCodeUnauthorized, true},
		{"403", 403, "Forbidden", "", ErrorCodeForbidden, true},
		{"404", 404, "", "", ErrorCodeNotFound, true},
		{"409", 409, "Torrent name is empty", "", ErrorCodeConflict, true},
		{"415", 415, "Not a valid torrent file", "", ErrorCodeUnsupportedMediaType, true},
		{"500 retryable", 500, "", "", ErrorCodeInternalServerError, false},
		{"503 retryable", 503, "", "", ErrorCodeInternalServerError, false},
		{"418 unknown", 418, "", "", ErrorCodeUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyHTTPStatus(tt.status, tt.body, tt.hashes)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.permanent, err.Permanent)
			assert.Equal(t, tt.status, err.StatusCode)
		})
	}
}

func TestClassifyHTTPStatusNotFoundNamesHashes(t *testing.T) {
	err := classifyHTTPStatus(404, "", "abc123|def456")
	assert.Equal(t, ErrorCodeNotFound, err.Code)
	assert.Contains(t, err.Message, "abc123|def456")

	// The server body wins when present.
	err = classifyHTTPStatus(404, "no such rule", "abc123")
	assert.Equal(t, "no such rule", err.Message)
}

func TestClientErrorError(t *testing.T) {
	plain := NewClientError(ErrorCodeConflict, "boom", nil, true)
	assert.Equal(t, "CONFLICT: boom", plain.Error())

	inner := errors.New("inner")
	wrapped := NewClientError(ErrorCodeUnknown, "outer", inner, false)
	assert.Contains(t, wrapped.Error(), "inner")
	assert.Equal(t, inner, errors.Cause(wrapped.Unwrap()))
}

func TestRetryablePredicates(t *testing.T) {
	retryable := classifyHTTPStatus(502, "", "")
	assert.True(t, IsRetryableError(retryable))
	assert.False(t, IsPermanentError(retryable))

	permanent := classifyHTTPStatus(409, "conflict", "")
	assert.False(t, IsRetryableError(permanent))
	assert.True(t, IsPermanentError(permanent))
}

func TestErrorCodePredicates(t *testing.T) {
	assert.True(t, IsNotFound(classifyHTTPStatus(404, "", "")))
	assert.True(t, IsConflict(classifyHTTPStatus(409, "", "")))
	assert.True(t, IsForbidden(classifyHTTPStatus(403, "", "")))
	assert.True(t, IsLoginFailed(NewClientError(ErrorCodeLoginFailed, "bad creds", nil, true)))
	assert.True(t, IsUnimplemented(NewClientError(ErrorCodeUnimplemented, "too old", nil, true)))
	assert.False(t, IsNotFound(classifyHTTPStatus(409, "", "")))
}
