// Package client sends idea submissions to the site endpoint over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/qaspilab/qaspilab/internal/idea"
	"github.com/qaspilab/qaspilab/internal/model"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// TransportError means no usable answer came back: the endpoint was
// unreachable, timed out, or replied with something that is not the
// expected JSON.
type TransportError struct {
	Op         string
	StatusCode int // 0 when no response arrived
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a *TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the http.Client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithSurface tags every submission with the form surface it came from.
func WithSurface(name string) Option {
	return func(c *Client) {
		c.surface = name
	}
}

// Client posts submissions to POST /api/submit-idea.
type Client struct {
	endpoint string
	surface  string
	http     *http.Client
}

var _ idea.Endpoint = (*Client)(nil)

// New creates a client for the site at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL must be http or https, got %q", baseURL)
	}

	c := &Client{
		endpoint: strings.TrimRight(baseURL, "/") + config.SubmitIdeaPath,
		http:     &http.Client{Timeout: config.DefaultSubmitTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// wireResponse keeps success as a pointer so a body without it is rejected.
type wireResponse struct {
	Success  *bool  `json:"success"`
	Message  string `json:"message"`
	ThankYou string `json:"thankYou"`
}

// Send posts the request. The endpoint answers rejections with non-2xx
// statuses and a JSON body, so any status whose body decodes is returned
// as a response; everything else is a *TransportError.
func (c *Client) Send(ctx context.Context, req model.SubmissionRequest) (*model.SubmissionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build submission request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.surface != "" {
		httpReq.Header.Set(config.SurfaceHeader, c.surface)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: "post submission", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &TransportError{Op: "read response", StatusCode: resp.StatusCode, Err: err}
	}

	var wire wireResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, &TransportError{Op: "decode response", StatusCode: resp.StatusCode, Err: err}
	}
	if wire.Success == nil {
		return nil, &TransportError{Op: "decode response", StatusCode: resp.StatusCode, Err: errors.New("missing success field")}
	}

	return &model.SubmissionResponse{
		Success:  *wire.Success,
		Message:  wire.Message,
		ThankYou: wire.ThankYou,
	}, nil
}
