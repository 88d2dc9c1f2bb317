package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels. A [*RemoteResponseError] unwraps to the sentinel matching
// its status code so callers can use [errors.Is] without inspecting codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")

	// ErrUnexpectedStatus is the fallback for statuses without a dedicated
	// sentinel.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrMalformedResponse is carried by a [*RemoteResponseError] whose
	// status was successful but whose body could not be read as the
	// expected JSON shape.
	ErrMalformedResponse = errors.New("malformed response body")
)

// Construction failures detected before a request is sent.
var (
	ErrNegativeLimit      = errors.New("limit must not be negative")
	ErrUnencodableBody    = errors.New("request body is not JSON-encodable")
	ErrInvalidBaseURL     = errors.New("invalid base URL")
	ErrInvalidTimeout     = errors.New("request timeout must be positive")
	ErrRequestNotComposed = errors.New("request could not be composed")
)

// ErrorKind names the variant of a classified failure.
type ErrorKind int

const (
	// KindUnknown is reported for nil or unclassified errors.
	KindUnknown ErrorKind = iota
	// KindRemoteResponse: the service answered with a non-success status.
	KindRemoteResponse
	// KindNoResponse: the request was sent but no response arrived.
	KindNoResponse
	// KindRequestConstruction: the request could not be built.
	KindRequestConstruction
)

func (k ErrorKind) String() string {
	switch k {
	case KindRemoteResponse:
		return "remote_response"
	case KindNoResponse:
		return "no_response"
	case KindRequestConstruction:
		return "request_construction"
	default:
		return "unknown"
	}
}

// RemoteResponseError reports that the remote service answered with a
// non-success status.
type RemoteResponseError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte

	reason error
}

func (e *RemoteResponseError) Error() string {
	return fmt.Sprintf("%s %s: http %d: %v", e.Method, e.URL, e.StatusCode, e.reason)
}

// Unwrap returns the status sentinel (e.g. [ErrNotFound]).
func (e *RemoteResponseError) Unwrap() error {
	return e.reason
}

// NoResponseError reports that the request was dispatched but no response
// was received (network partition, DNS failure, reset connection, timeout).
type NoResponseError struct {
	Method string
	URL    string
	Err    error
}

func (e *NoResponseError) Error() string {
	return fmt.Sprintf("%s %s: no response: %v", e.Method, e.URL, e.Err)
}

func (e *NoResponseError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request gave up because a deadline expired.
func (e *NoResponseError) Timeout() bool {
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// RequestConstructionError reports that the request could not be built or
// handed to the transport.
type RequestConstructionError struct {
	Message string
	Err     error
}

func (e *RequestConstructionError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *RequestConstructionError) Unwrap() error {
	return e.Err
}

// KindOf reports which variant err (or any error it wraps) is.
func KindOf(err error) ErrorKind {
	var (
		remote *RemoteResponseError
		noResp *NoResponseError
		build  *RequestConstructionError
	)

	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &remote):
		return KindRemoteResponse
	case errors.As(err, &noResp):
		return KindNoResponse
	case errors.As(err, &build):
		return KindRequestConstruction
	default:
		return KindUnknown
	}
}
