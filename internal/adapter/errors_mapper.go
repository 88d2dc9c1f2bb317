package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrGatewayTimeout,
}

func statusSentinel(status int) error {
	if err, ok := statusSentinels[status]; ok {
		return err
	}
	return ErrUnexpectedStatus
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// classify turns the outcome of a resty call into nil or exactly one of the
// three classified variants.
//
//   - transport error from the HTTP round trip (or an interrupted body read)
//     → [*NoResponseError];
//   - any other transport error (URL parsing, body marshalling, middleware)
//     → [*RequestConstructionError];
//   - a response with a non-2xx status → [*RemoteResponseError].
func classify(method, path string, resp *resty.Response, err error) error {
	if err != nil {
		target := requestURL(path, resp)

		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			if urlErr.Op == "parse" {
				return &RequestConstructionError{Message: "malformed request url", Err: err}
			}
			if urlErr.URL != "" {
				target = urlErr.URL
			}
			return &NoResponseError{Method: method, URL: target, Err: err}
		}

		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return &NoResponseError{Method: method, URL: target, Err: err}
		}

		// the round trip completed but reading the body failed
		if resp != nil && resp.RawResponse != nil {
			return &NoResponseError{Method: method, URL: target, Err: err}
		}

		return &RequestConstructionError{Message: "request could not be sent", Err: errors.Join(ErrRequestNotComposed, err)}
	}

	if resp == nil {
		return &RequestConstructionError{Message: "request produced no response", Err: ErrRequestNotComposed}
	}

	if isSuccess(resp.StatusCode()) {
		return nil
	}

	return &RemoteResponseError{
		Method:     method,
		URL:        requestURL(path, resp),
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		reason:     statusSentinel(resp.StatusCode()),
	}
}

func requestURL(path string, resp *resty.Response) string {
	if resp != nil && resp.Request != nil && resp.Request.RawRequest != nil && resp.Request.RawRequest.URL != nil {
		return resp.Request.RawRequest.URL.String()
	}
	return path
}
