// package api implements the HTTP client for the BuzzNews REST API.
//
// Every operation takes a context, attaches the bearer token when a session
// token source is configured, and maps non-2xx responses to [*APIError] with
// a human-readable message extracted from the body.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"buzznews/internal/shared"
)

const defaultBaseURL = "http://localhost:8000"

// Client provides methods for calling the BuzzNews API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     oauth2.TokenSource
	limiter    *rate.Limiter
}

// ClientOpts contains configuration options for creating a Client.
type ClientOpts struct {
	BaseURL        string
	HTTPClient     *http.Client
	Tokens         oauth2.TokenSource // optional; requests go out unauthenticated without it
	RequestsPerSec float64            // optional client-side rate limit
	Timeout        time.Duration
}

// NewClient creates a new API client instance.
func NewClient(opts ClientOpts) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSec), 1)
	}

	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		tokens:     opts.Tokens,
		limiter:    limiter,
	}
}

// APIError represents a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed: status %d: %s", e.Status, e.Message)
}

// ErrorMessage returns the display form of an error: the extracted message
// for an [*APIError], err.Error() for anything else.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// doRequest performs an HTTP request against the API and decodes the JSON
// response into result (when non-nil). The bearer token is attached whenever
// the token source yields one; anonymous requests proceed without it.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", shared.GenerateID())

	if c.tokens != nil {
		if tok, err := c.tokens.Token(); err == nil && tok.AccessToken != "" {
			tok.SetAuthHeader(req)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: extractMessage(raw)}
	}

	if result != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, result); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
		}
	}

	return nil
}

// detailEntry is one field-validation failure in a structured error body.
type detailEntry struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// extractMessage pulls a displayable message out of an error body. It
// prefers a string "detail" field, then the first entry of a validation
// detail list (field path plus message), and falls back to a generic
// message for everything else.
func extractMessage(body []byte) string {
	const fallback = "request failed"

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return fallback
	}

	var message string
	if err := json.Unmarshal(envelope.Detail, &message); err == nil && message != "" {
		return message
	}

	var entries []detailEntry
	if err := json.Unmarshal(envelope.Detail, &entries); err == nil && len(entries) > 0 {
		return fmt.Sprintf("%s: %s", joinPath(entries[0].Loc), entries[0].Msg)
	}

	return fallback
}

func joinPath(loc []any) string {
	path := ""
	for i, part := range loc {
		if i > 0 {
			path += "."
		}
		path += fmt.Sprint(part)
	}
	return path
}
