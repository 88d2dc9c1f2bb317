package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-resource-client/internal/config"
	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/internal/utils"
	"github.com/MKhiriev/go-resource-client/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// DefaultListLimit is the number of posts List requests when called with a
// zero limit.
const DefaultListLimit = 10

const (
	postsPath = "/posts"
	postPath  = "/posts/{id}"
	userPath  = "/users/{id}"

	limitQueryParam = "_limit"
	traceIDHeader   = "X-Trace-ID"
)

var defaultHeaders = map[string]string{
	"Content-Type": "application/json",
	"Accept":       "application/json",
}

type httpResourceClient struct {
	client *utils.HTTPClient

	baseURL string
	headers map[string]string

	logger *logger.Logger
}

// NewHTTPResourceClient constructs an HTTP/REST implementation of
// [ResourceClient]. It normalises and validates the base URL from
// cfg.BaseURL, merges cfg.Headers over the JSON default headers and applies
// cfg.RequestTimeout to every request. The resulting configuration is never
// modified afterwards, so the client may be shared by any number of
// goroutines.
//
// Returns a [*RequestConstructionError] if cfg.BaseURL is empty or cannot be
// parsed, or if cfg.RequestTimeout is not positive.
func NewHTTPResourceClient(cfg config.ClientAdapter, log *logger.Logger) (ResourceClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, &RequestConstructionError{Message: "invalid adapter base url", Err: fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)}
	}
	if cfg.RequestTimeout <= 0 {
		return nil, &RequestConstructionError{Message: "invalid adapter request timeout", Err: ErrInvalidTimeout}
	}

	if log == nil {
		log = logger.Nop()
	}

	headers := maps.Clone(defaultHeaders)
	maps.Copy(headers, cfg.Headers)

	client := utils.NewHTTPClient(utils.HTTPClientConfig{
		BaseURL: baseURL,
		Timeout: cfg.RequestTimeout,
		Headers: headers,
	})

	return &httpResourceClient{
		client:  client,
		baseURL: baseURL,
		headers: headers,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [ResourceClient]. It GETs /posts?_limit=N and splits the
// returned JSON array into one [models.Payload] per element without
// touching the elements themselves.
func (h *httpResourceClient) List(ctx context.Context, limit int) ([]models.Payload, error) {
	const op = "list"
	log := h.opLogger(ctx, op)

	if limit < 0 {
		err := &RequestConstructionError{Message: fmt.Sprintf("list posts with limit %d", limit), Err: ErrNegativeLimit}
		logClassified(log, err)
		return nil, err
	}
	if limit == 0 {
		limit = DefaultListLimit
	}

	resp, err := h.request(ctx).
		SetQueryParam(limitQueryParam, strconv.Itoa(limit)).
		Get(postsPath)
	if err = classify(http.MethodGet, postsPath, resp, err); err != nil {
		logClassified(log, err)
		return nil, err
	}

	var posts []models.Payload
	if err = json.Unmarshal(resp.Body(), &posts); err != nil {
		err = malformed(http.MethodGet, postsPath, resp, err)
		logClassified(log, err)
		return nil, err
	}

	return posts, nil
}

// GetByID implements [ResourceClient]. It GETs /posts/{id} and returns the
// body unchanged.
func (h *httpResourceClient) GetByID(ctx context.Context, id int64) (models.Payload, error) {
	log := h.opLogger(ctx, "get_by_id").With().Int64("post_id", id).Logger()

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get(postPath)
	if err = classify(http.MethodGet, postPath, resp, err); err != nil {
		logClassified(log, err)
		return nil, err
	}

	return models.Payload(resp.Body()), nil
}

// GetUser implements [ResourceClient]. It GETs /users/{id} and returns the
// body unchanged. Whatever the outcome, "get user operation completed" is
// logged exactly once after the attempt resolves.
func (h *httpResourceClient) GetUser(ctx context.Context, id int64) (models.Payload, error) {
	log := h.opLogger(ctx, "get_user").With().Int64("user_id", id).Logger()
	defer func() {
		log.Info().Msg("get user operation completed")
	}()

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get(userPath)
	if err = classify(http.MethodGet, userPath, resp, err); err != nil {
		logClassified(log, err)
		return nil, err
	}

	return models.Payload(resp.Body()), nil
}

// Create implements [ResourceClient]. It POSTs data to /posts and returns
// the response body unchanged. Failures are logged with a single generic
// message (no per-kind split) and returned classified like every other
// operation.
func (h *httpResourceClient) Create(ctx context.Context, data any) (models.Payload, error) {
	log := h.opLogger(ctx, "create")

	body, err := encodeBody(data)
	if err != nil {
		log.Err(err).Msg("error creating post")
		return nil, err
	}

	resp, err := h.request(ctx).
		SetBody(body).
		Post(postsPath)
	if err = classify(http.MethodPost, postsPath, resp, err); err != nil {
		log.Err(err).Str("kind", KindOf(err).String()).Msg("error creating post")
		return nil, err
	}

	return models.Payload(resp.Body()), nil
}

// request starts a resty request bound to ctx. The trace id carried by ctx,
// if any, is forwarded in the X-Trace-ID header.
func (h *httpResourceClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func (h *httpResourceClient) opLogger(ctx context.Context, op string) zerolog.Logger {
	c := h.logger.With().Str("op", op)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		c = c.Str("trace_id", traceID)
	}
	return c.Logger()
}

// encodeBody returns data as the exact bytes to send. Raw JSON values pass
// through untouched; anything else is encoded once with encoding/json.
func encodeBody(data any) ([]byte, error) {
	switch v := data.(type) {
	case json.RawMessage:
		return validJSON(v)
	case models.Payload:
		return validJSON(v)
	case []byte:
		return validJSON(v)
	}

	body, err := json.Marshal(data)
	if err != nil {
		return nil, &RequestConstructionError{Message: "encode post body", Err: fmt.Errorf("%w: %w", ErrUnencodableBody, err)}
	}
	return body, nil
}

func validJSON(b []byte) ([]byte, error) {
	if !json.Valid(b) {
		return nil, &RequestConstructionError{Message: "encode post body", Err: fmt.Errorf("%w: raw body is not valid JSON", ErrUnencodableBody)}
	}
	return b, nil
}

func malformed(method, path string, resp *resty.Response, err error) error {
	return &RemoteResponseError{
		Method:     method,
		URL:        requestURL(path, resp),
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		reason:     fmt.Errorf("%w: %w", ErrMalformedResponse, err),
	}
}

// logClassified writes the kind-specific diagnostic for err.
func logClassified(log zerolog.Logger, err error) {
	var (
		remote *RemoteResponseError
		noResp *NoResponseError
		build  *RequestConstructionError
	)

	switch {
	case errors.As(err, &remote):
		log.Error().
			Str("kind", KindRemoteResponse.String()).
			Str("method", remote.Method).
			Str("url", remote.URL).
			Int("status", remote.StatusCode).
			Bytes("body", remote.Body).
			Msg("remote responded with an error status")
	case errors.As(err, &noResp):
		log.Error().
			Str("kind", KindNoResponse.String()).
			Str("method", noResp.Method).
			Str("url", noResp.URL).
			Bool("timeout", noResp.Timeout()).
			Err(noResp.Err).
			Msg("no response received from remote")
	case errors.As(err, &build):
		log.Error().
			Str("kind", KindRequestConstruction.String()).
			Err(build).
			Msg("error setting up request")
	default:
		log.Err(err).Msg("unclassified request error")
	}
}
