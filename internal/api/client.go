package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kedare/wordsmith/internal/logger"
)

// maxErrorBody caps how much of an error body is read when it cannot be decoded.
const maxErrorBody = 4 << 10

// Client talks to a solver over HTTP.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	codec     Codec
	userAgent string
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its transport is still wrapped for logging.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithCodec selects the request/response encoding.
func WithCodec(codec Codec) ClientOption {
	return func(c *Client) {
		if codec != nil {
			c.codec = codec
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(agent string) ClientOption {
	return func(c *Client) {
		if strings.TrimSpace(agent) != "" {
			c.userAgent = agent
		}
	}
}

// NewClient builds a client for the solver rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, errors.New("solver URL is empty")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid solver URL %q: %w", baseURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid solver URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    http.DefaultClient,
		codec:   CodecJSON,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.http = withLogging(c.http)

	return c, nil
}

// BaseURL returns the solver root this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.JoinPath(path).String()
}

// Solve posts req to /solve. Non-2xx answers come back as *APIError, everything
// else that prevents a decoded response as *TransportError.
func (c *Client) Solve(ctx context.Context, req SolveRequest) (*SolveResponse, error) {
	var body bytes.Buffer
	if err := c.codec.Encode(&body, req); err != nil {
		return nil, fmt.Errorf("failed to encode solve request: %w", err)
	}

	var resp SolveResponse
	if err := c.do(ctx, http.MethodPost, "solve", &body, &resp); err != nil {
		return nil, err
	}

	if err := resp.Validate(); err != nil {
		logger.Log.Debugf("Solver response for %q breaks its contract: %v", req.Letters, err)
	}

	return &resp, nil
}

// GroupingOptions fetches the grouping keys the solver supports.
func (c *Client) GroupingOptions(ctx context.Context) (*GroupingOptions, error) {
	var out GroupingOptions
	if err := c.do(ctx, http.MethodGet, "api/groups", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// SortingOptions fetches the sort orders the solver supports.
func (c *Client) SortingOptions(ctx context.Context) (*SortingOptions, error) {
	var out SortingOptions
	if err := c.do(ctx, http.MethodGet, "api/sorting", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Score asks the solver for the score of a single word.
func (c *Client) Score(ctx context.Context, word string) (*WordResult, error) {
	var out WordResult
	if err := c.do(ctx, http.MethodGet, "api/score/"+url.PathEscape(word), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", path, err)
	}

	req.Header.Set("Accept", c.codec.ContentType())
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", c.codec.ContentType())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: method + " /" + path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	codec := CodecForContentType(resp.Header.Get("Content-Type"))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp, codec)
	}

	if err := codec.Decode(resp.Body, out); err != nil {
		return &TransportError{Op: "decode /" + path, Err: err}
	}

	return nil
}

func decodeAPIError(resp *http.Response, codec Codec) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	apiErr := &APIError{Status: resp.StatusCode, Message: GenericFailure}

	var payload ErrorResponse
	if err := codec.Decode(bytes.NewReader(raw), &payload); err != nil {
		logger.Log.Debugf("Undecodable solver error body (%d): %q", resp.StatusCode, string(raw))

		return apiErr
	}

	if payload.Error != "" {
		apiErr.Message = payload.Error
	}
	apiErr.Details = payload.Details

	return apiErr
}
