package workos

import (
	"errors"
	"fmt"
)

// ErrorCode classifies SDK errors.
type ErrorCode int

const (
	// ErrCodeOperation indicates the API returned an endpoint-specific,
	// structured error payload.
	ErrCodeOperation ErrorCode = iota
	// ErrCodeUnauthorized indicates the API returned HTTP 401.
	ErrCodeUnauthorized
	// ErrCodeURLParse indicates a request URL could not be constructed.
	// No network activity occurred.
	ErrCodeURLParse
	// ErrCodeAddrParse indicates an IP-address parameter failed to parse.
	// No network activity occurred.
	ErrCodeAddrParse
	// ErrCodeTransport indicates the request failed below the HTTP semantics
	// layer: DNS, connection, TLS, timeout, body encoding or decoding.
	ErrCodeTransport
	// ErrCodeAPI indicates a non-401 unsuccessful HTTP status without a
	// recognized structured error payload.
	ErrCodeAPI
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOperation:
		return "operation"
	case ErrCodeUnauthorized:
		return "unauthorized"
	case ErrCodeURLParse:
		return "url_parse"
	case ErrCodeAddrParse:
		return "addr_parse"
	case ErrCodeTransport:
		return "transport"
	case ErrCodeAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Error is the SDK error type. Every operation that fails returns one of the
// six ErrorCode variants.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Status is the HTTP status code for ErrCodeAPI and ErrCodeOperation
	// errors. Zero otherwise.
	Status int
	// Body is the raw response body text for ErrCodeAPI errors.
	Body string
	// Payload is the decoded, endpoint-specific error payload for
	// ErrCodeOperation errors. Use OperationPayload to extract it typed.
	Payload any
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeUnauthorized:
		return "workos: unauthorized"
	case ErrCodeAPI:
		return fmt.Sprintf("workos: API error %d: %s", e.Status, e.Body)
	case ErrCodeOperation:
		return fmt.Sprintf("workos: operation error: %v", e.Payload)
	default:
		return fmt.Sprintf("workos: %s error: %v", e.Code, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewUnauthorizedError creates an unauthorized error (HTTP 401).
func NewUnauthorizedError() *Error {
	return &Error{Code: ErrCodeUnauthorized, Status: 401}
}

// NewURLParseError wraps a URL construction failure.
func NewURLParseError(err error) *Error {
	return &Error{Code: ErrCodeURLParse, Err: err}
}

// NewAddrParseError wraps an IP-address parse failure.
func NewAddrParseError(err error) *Error {
	return &Error{Code: ErrCodeAddrParse, Err: err}
}

// NewTransportError wraps a transport-level failure.
func NewTransportError(err error) *Error {
	return &Error{Code: ErrCodeTransport, Err: err}
}

// NewAPIError creates a generic API error from a status and raw body text.
func NewAPIError(status int, body string) *Error {
	return &Error{Code: ErrCodeAPI, Status: status, Body: body}
}

// NewOperationError creates an operation error carrying a decoded,
// endpoint-specific payload.
func NewOperationError(status int, payload any) *Error {
	return &Error{Code: ErrCodeOperation, Status: status, Payload: payload}
}

// IsUnauthorized checks if an error is an unauthorized (401) error.
func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeUnauthorized
}

// IsAPIError checks if an error is a generic API error.
func IsAPIError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeAPI
}

// IsTransportError checks if an error is a transport-level error.
func IsTransportError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}

// IsURLParseError checks if an error is a URL construction error.
func IsURLParseError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeURLParse
}

// IsAddrParseError checks if an error is an IP-address parse error.
func IsAddrParseError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeAddrParse
}

// IsOperationError checks if an error carries an endpoint-specific payload.
func IsOperationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeOperation
}

// ErrorStatus returns the HTTP status carried by an SDK error, or zero when
// the error is not an SDK error or no response was received.
func ErrorStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// OperationPayload extracts the typed payload from an operation error.
// The second return is false when err is not an operation error or the
// payload is not of type E.
func OperationPayload[E any](err error) (E, bool) {
	var zero E
	var e *Error
	if !errors.As(err, &e) || e.Code != ErrCodeOperation {
		return zero, false
	}
	payload, ok := e.Payload.(E)
	if !ok {
		return zero, false
	}
	return payload, true
}
