package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/photocards/internal/common"
	"github.com/dmitrijs2005/photocards/internal/logging"
	"github.com/google/uuid"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

var (
	errInvalidBaseURL = errors.New("base url must be absolute http(s)")
	errEmptyBody      = errors.New("empty response body")
)

// HTTPClient implements Client over REST/JSON.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	logger  logging.Logger
}

// NewHTTPClient returns a client for the API rooted at baseURL, e.g.
// "http://localhost:5021". A zero timeout disables the per-request limit.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", errInvalidBaseURL, baseURL)
	}
	if logger == nil {
		logger = logging.Nop()
	}

	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("module", "api_client"),
	}, nil
}

// BaseURL returns the address the client talks to.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL.String()
}

func (c *HTTPClient) endpoint(segments ...string) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.Join(segments, "/")
	return u.String()
}

// doJSON sends in (if non-nil) as a JSON body and decodes the response into out.
func (c *HTTPClient) doJSON(ctx context.Context, method string, out any, in any, segments ...string) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	return c.do(ctx, method, body, contentType, out, segments...)
}

func (c *HTTPClient) do(ctx context.Context, method string, body io.Reader, contentType string, out any, segments ...string) error {
	target := c.endpoint(segments...)
	op := method + " /" + strings.Join(segments, "/")

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "op", op, "request_id", requestID, "error", err.Error())
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.Debug(ctx, "request done",
		"op", op, "request_id", requestID, "status", resp.StatusCode, "duration", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(data, resp.StatusCode)}
		c.logger.Warn(ctx, "request rejected", "op", op, "request_id", requestID, "status", resp.StatusCode, "error", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		c.logger.Warn(ctx, "empty response", "op", op, "request_id", requestID, "status", resp.StatusCode)
		return &NetworkError{Op: op, Err: errEmptyBody}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// errorMessage extracts the server message from a failure body.
func errorMessage(data []byte, status int) string {
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil {
		if eb.Error != "" {
			return eb.Error
		}
		if eb.Message != "" {
			return eb.Message
		}
	}
	return genericMessage(status)
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}
