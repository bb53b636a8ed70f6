package qbt

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ErrorCode represents a specific error type for client-side handling
type ErrorCode string

const (
	// ErrorCodeNone indicates no error
	ErrorCodeNone ErrorCode = ""

	// ErrorCodeLoginFailed indicates rejected credentials - requires user intervention
	ErrorCodeLoginFailed ErrorCode = "LOGIN_FAILED"

	// ErrorCodeMissingParameters indicates qBittorrent rejected the request
	// because at least one required parameter was absent (HTTP 400, empty body)
	ErrorCodeMissingParameters ErrorCode = "MISSING_PARAMETERS"

	// ErrorCodeInvalidRequest indicates a malformed parameter (HTTP 400 with message)
	ErrorCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	// ErrorCodeUnauthorized indicates XSS detection or host header validation failure (HTTP 401)
	ErrorCodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// ErrorCodeForbidden indicates the session expired, the method isn't public,
	// or the client IP is banned (HTTP 403)
	ErrorCodeForbidden ErrorCode = "FORBIDDEN"

	// ErrorCodeNotFound indicates a missing torrent or nonexistent API method (HTTP 404)
	ErrorCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrorCodeConflict indicates the request conflicts with server state (HTTP 409)
	ErrorCodeConflict ErrorCode = "CONFLICT"

	// ErrorCodeUnsupportedMediaType indicates bad data such as an invalid torrent file (HTTP 415)
	ErrorCodeUnsupportedMediaType ErrorCode = "UNSUPPORTED_MEDIA_TYPE"

	// ErrorCodeInternalServerError indicates a 5xx from qBittorrent - temporary, can retry
	ErrorCodeInternalServerError ErrorCode = "INTERNAL_SERVER_ERROR"

	// ErrorCodeUnimplemented indicates the endpoint does not exist in the
	// connected qBittorrent's Web API version
	ErrorCodeUnimplemented ErrorCode = "UNIMPLEMENTED"

	// ErrorCodeTimeout indicates connection or request timeout - temporary, can retry
	ErrorCodeTimeout ErrorCode = "TIMEOUT"

	// ErrorCodeDNS indicates DNS resolution failure - check hostname configuration
	ErrorCodeDNS ErrorCode = "DNS_ERROR"

	// ErrorCodeSSLError indicates SSL/TLS certificate or connection error
	ErrorCodeSSLError ErrorCode = "SSL_ERROR"

	// ErrorCodeHTTPSRequired indicates HTTP was used but HTTPS is required
	ErrorCodeHTTPSRequired ErrorCode = "HTTPS_REQUIRED"

	// ErrorCodeConnectionRefused indicates the server actively refused the connection
	ErrorCodeConnectionRefused ErrorCode = "CONNECTION_REFUSED"

	// ErrorCodeNetworkUnreachable indicates network routing issues
	ErrorCodeNetworkUnreachable ErrorCode = "NETWORK_UNREACHABLE"

	// ErrorCodeUnknown indicates an unclassified error
	ErrorCodeUnknown ErrorCode = "UNKNOWN"
)

// ClientError represents a structured error with classification
type ClientError struct {
	Code    ErrorCode
	Message string
	Err     error
	// StatusCode holds the HTTP status when the error came from a response
	StatusCode int
	// Permanent indicates whether this error requires user intervention (true)
	// or can be resolved by retrying (false)
	Permanent bool
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// IsPermanent returns true if the error requires user intervention
func (e *ClientError) IsPermanent() bool {
	return e.Permanent
}

// NewClientError creates a new ClientError
func NewClientError(code ErrorCode, message string, err error, permanent bool) *ClientError {
	return &ClientError{
		Code:      code,
		Message:   message,
		Err:       err,
		Permanent: permanent,
	}
}

// ClassifyError analyzes an error and returns a structured ClientError
func ClassifyError(err error) *ClientError {
	if err == nil {
		return nil
	}

	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return NewClientError(
			ErrorCodeDNS,
			fmt.Sprintf("failed to resolve hostname: %s", dnsErr.Name),
			err,
			true,
		)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return classifyOpError(opErr, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Err != nil {
			if classified := ClassifyError(urlErr.Err); classified != nil {
				return classified
			}
		}
		if urlErr.Timeout() {
			return NewClientError(ErrorCodeTimeout, "request timed out", err, false)
		}
	}

	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return NewClientError(
			ErrorCodeSSLError,
			"SSL certificate verification failed",
			err,
			true,
		)
	}

	return classifyByMessage(err.Error(), err)
}

// classifyOpError classifies net.OpError errors
func classifyOpError(opErr *net.OpError, originalErr error) *ClientError {
	if opErr.Op == "dial" {
		if strings.Contains(opErr.Error(), "connection refused") {
			return NewClientError(
				ErrorCodeConnectionRefused,
				"connection refused - server may be down or port is incorrect",
				originalErr,
				false,
			)
		}

		if strings.Contains(opErr.Error(), "no route to host") ||
			strings.Contains(opErr.Error(), "network is unreachable") {
			return NewClientError(
				ErrorCodeNetworkUnreachable,
				"network unreachable - check network connectivity",
				originalErr,
				false,
			)
		}
	}

	if opErr.Timeout() {
		return NewClientError(ErrorCodeTimeout, "connection timed out", originalErr, false)
	}

	return NewClientError(ErrorCodeUnknown, "network operation failed", originalErr, false)
}

// classifyByMessage classifies errors based on error message patterns
func classifyByMessage(errStr string, err error) *ClientError {
	lowerErr := strings.ToLower(errStr)

	if strings.Contains(lowerErr, "timeout") ||
		strings.Contains(lowerErr, "deadline exceeded") ||
		strings.Contains(lowerErr, "context canceled") {
		return NewClientError(ErrorCodeTimeout, "request timed out", err, false)
	}

	if strings.Contains(lowerErr, "certificate") ||
		strings.Contains(lowerErr, "x509") ||
		strings.Contains(lowerErr, "tls") ||
		strings.Contains(lowerErr, "ssl") {
		return NewClientError(
			ErrorCodeSSLError,
			"SSL/TLS connection failed - check certificate configuration",
			err,
			true,
		)
	}

	if strings.Contains(lowerErr, "malformed http response") ||
		strings.Contains(lowerErr, "first record does not look like a tls handshake") {
		return NewClientError(
			ErrorCodeHTTPSRequired,
			"protocol mismatch - try using HTTPS instead of HTTP",
			err,
			true,
		)
	}

	if strings.Contains(lowerErr, "connection refused") {
		return NewClientError(
			ErrorCodeConnectionRefused,
			"connection refused - server may be down",
			err,
			false,
		)
	}

	if strings.Contains(lowerErr, "no such host") ||
		strings.Contains(lowerErr, "lookup") ||
		strings.Contains(lowerErr, "dns") {
		return NewClientError(ErrorCodeDNS, "DNS resolution failed - check hostname", err, true)
	}

	// "Fails." is the literal body qBittorrent returns for bad credentials
	if strings.Contains(lowerErr, "fails.") ||
		strings.Contains(lowerErr, "unauthorized") ||
		strings.Contains(lowerErr, "invalid username") ||
		strings.Contains(lowerErr, "invalid password") ||
		strings.Contains(lowerErr, "invalid credentials") {
		return NewClientError(ErrorCodeLoginFailed, "invalid username or password", err, true)
	}

	return NewClientError(ErrorCodeUnknown, "unknown error occurred", err, false)
}

// classifyHTTPStatus maps an API error response to a ClientError following
// qBittorrent's APIErrorType semantics.
func classifyHTTPStatus(statusCode int, body string, hashes string) *ClientError {
	withStatus := func(e *ClientError) *ClientError {
		e.StatusCode = statusCode
		return e
	}

	switch {
	case statusCode == 400:
		// qBittorrent returns HTTP 400 with no message when at least one
		// required parameter is missing (APIErrorType::BadParams); a 400
		// with a message means a parameter was malformed.
		if body == "" || body == "Bad Request" {
			return withStatus(NewClientError(
				ErrorCodeMissingParameters,
				"missing required parameters for API call",
				nil,
				true,
			))
		}
		return withStatus(NewClientError(ErrorCodeInvalidRequest, body, nil, true))

	case statusCode == 401:
		return withStatus(NewClientError(
			ErrorCodeUnauthorized,
			fmt.Sprintf("unauthorized: %s", body),
			nil,
			true,
		))

	case statusCode == 403:
		// Not logged in, expired session, or calling a non-public method.
		return withStatus(NewClientError(
			ErrorCodeForbidden,
			fmt.Sprintf("forbidden: %s", body),
			nil,
			true,
		))

	case statusCode == 404:
		// APIErrorType::NotFound. Usually a bad torrent hash; name the
		// offending hash(es) when the server body is unhelpful.
		message := body
		if message == "" || message == "Not Found" {
			if hashes != "" {
				message = fmt.Sprintf("torrent hash(es): %s", hashes)
			} else {
				message = "not found"
			}
		}
		return withStatus(NewClientError(ErrorCodeNotFound, message, nil, true))

	case statusCode == 409:
		return withStatus(NewClientError(ErrorCodeConflict, body, nil, true))

	case statusCode == 415:
		return withStatus(NewClientError(ErrorCodeUnsupportedMediaType, body, nil, true))

	case statusCode >= 500:
		return withStatus(NewClientError(
			ErrorCodeInternalServerError,
			fmt.Sprintf("server error (%d): %s", statusCode, body),
			nil,
			false,
		))

	default:
		return withStatus(NewClientError(
			ErrorCodeUnknown,
			fmt.Sprintf("request failed with status %d: %s", statusCode, body),
			nil,
			true,
		))
	}
}

// IsRetryableError returns true if the error is temporary and can be retried
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	return !ClassifyError(err).Permanent
}

// IsPermanentError returns true if the error requires user intervention
func IsPermanentError(err error) bool {
	if err == nil {
		return false
	}
	return ClassifyError(err).Permanent
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	if err == nil {
		return ErrorCodeNone
	}
	return ClassifyError(err).Code
}

// IsLoginFailed reports whether the error is a credential rejection.
func IsLoginFailed(err error) bool {
	return GetErrorCode(err) == ErrorCodeLoginFailed
}

// IsNotFound reports whether the server answered HTTP 404.
func IsNotFound(err error) bool {
	return GetErrorCode(err) == ErrorCodeNotFound
}

// IsConflict reports whether the server answered HTTP 409.
func IsConflict(err error) bool {
	return GetErrorCode(err) == ErrorCodeConflict
}

// IsForbidden reports whether the server answered HTTP 403.
func IsForbidden(err error) bool {
	return GetErrorCode(err) == ErrorCodeForbidden
}

// IsUnimplemented reports whether the endpoint is unavailable in the
// connected qBittorrent's Web API version.
func IsUnimplemented(err error) bool {
	return GetErrorCode(err) == ErrorCodeUnimplemented
}
