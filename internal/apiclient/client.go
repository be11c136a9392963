package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/gridiron-gm/internal/logging"
	"github.com/preston-bernstein/gridiron-gm/internal/metrics"
)

// Config controls how the client reaches the backend.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client issues JSON requests against ${BaseURL}${path}. It keeps no state between calls.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	requestID  func() string
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		requestID:  newRequestID,
		now:        time.Now,
	}
}

// BaseURL returns the normalized base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET with no body and decodes the response into T.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// Post issues a POST and decodes the response into T. A non-nil body is sent as JSON;
// a nil body sends no body at all.
func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var out T
	err := c.do(ctx, http.MethodPost, path, body, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	url := c.baseURL + path
	route := routeLabel(path)
	reqID := c.requestID()
	logger := logging.FromContext(ctx, c.logger)
	start := c.now()

	req, err := c.buildRequest(ctx, method, url, body, reqID)
	if err != nil {
		return err
	}

	err = c.send(req, out)
	elapsed := c.now().Sub(start)
	c.metrics.RecordRequest(route, elapsed, err)

	attrs := []any{
		slog.String(logging.FieldMethod, method),
		slog.String(logging.FieldPath, path),
		slog.String(logging.FieldRequestID, reqID),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}
	if tErr, ok := AsTransportError(err); ok {
		attrs = append(attrs, slog.Int(logging.FieldStatusCode, tErr.Status))
	}
	if err != nil {
		logging.Debug(logger, "api request failed", append(attrs, "error", err)...)
		return err
	}
	logging.Debug(logger, "api request complete", attrs...)
	return nil
}

func (c *Client) buildRequest(ctx context.Context, method, url string, body any, reqID string) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: encode %s %s body: %w", method, url, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build %s %s: %w", method, url, err)
	}
	req.Header.Set(headerAccept, contentTypeJSON)
	req.Header.Set(headerRequestID, reqID)
	if body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	method, url := req.Method, req.URL.String()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &TransportError{
			Method:     method,
			URL:        url,
			Status:     resp.StatusCode,
			StatusText: statusText(resp),
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if err := decodeBody(resp.Body, out); err != nil {
		return &DecodeError{Method: method, URL: url, Err: err}
	}
	return nil
}

// decodeBody requires exactly one non-null JSON value.
func decodeBody(r io.Reader, out any) error {
	dec := json.NewDecoder(r)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if bytes.Equal(raw, []byte("null")) {
		return errNullBody
	}
	if _, err := dec.Token(); err != io.EOF {
		return errTrailingData
	}
	return json.Unmarshal(raw, out)
}
