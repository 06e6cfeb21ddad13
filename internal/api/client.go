// Package api provides the authenticated HTTP client shared by every
// service package that talks to the MeroBazaar backend. The backend owns
// all business state; callers here only issue requests and decode the
// representations it returns.
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
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// HTTPClient matches the subset of http.Client used by Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client issues REST calls against the backend API, attaching a bearer
// token per request when one is supplied.
type Client struct {
	base *url.URL
	http HTTPClient
}

// NewClient constructs a Client for the given base URL. A nil httpClient
// falls back to a default client with a request timeout.
func NewClient(baseURL string, httpClient HTTPClient) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("api: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api: parse base URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{base: parsed, http: httpClient}, nil
}

// Error carries the HTTP status plus the backend's structured error
// payload when one was present in the response body.
type Error struct {
	Status  int
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		if e.Code != "" {
			return fmt.Sprintf("api: backend error (%s): %s", e.Code, e.Message)
		}
		return fmt.Sprintf("api: backend error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: backend error (%d): %s", e.Status, http.StatusText(e.Status))
}

// UserMessage returns the server-supplied message when present, falling
// back to the provided generic text.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return fallback
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, endpoint, token string, query url.Values, out any) error {
	req, err := c.NewRequest(ctx, http.MethodGet, endpoint, nil, token)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	return c.doJSON(req, out)
}

// Post issues a POST with a JSON payload and decodes the response into out.
// out may be nil for endpoints that return no body beyond a status.
func (c *Client) Post(ctx context.Context, endpoint, token string, payload, out any) error {
	req, err := c.NewJSONRequest(ctx, http.MethodPost, endpoint, payload, token)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

// Put issues a PUT with a JSON payload and decodes the response into out.
func (c *Client) Put(ctx context.Context, endpoint, token string, payload, out any) error {
	req, err := c.NewJSONRequest(ctx, http.MethodPut, endpoint, payload, token)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

// Patch issues a PATCH with a JSON payload and decodes the response into out.
func (c *Client) Patch(ctx context.Context, endpoint, token string, payload, out any) error {
	req, err := c.NewJSONRequest(ctx, http.MethodPatch, endpoint, payload, token)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

// Delete issues a DELETE and decodes the response into out when non-nil.
func (c *Client) Delete(ctx context.Context, endpoint, token string, out any) error {
	req, err := c.NewRequest(ctx, http.MethodDelete, endpoint, nil, token)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

// NewRequest builds a request against the configured base URL, attaching
// the bearer token when non-empty.
func (c *Client) NewRequest(ctx context.Context, method, endpoint string, body io.Reader, token string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(endpoint), body)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// NewJSONRequest builds a request carrying a JSON-encoded payload.
func (c *Client) NewJSONRequest(ctx context.Context, method, endpoint string, payload any, token string) (*http.Request, error) {
	var buf bytes.Buffer
	if payload != nil {
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(payload); err != nil {
			return nil, fmt.Errorf("api: encode payload: %w", err)
		}
	}
	req, err := c.NewRequest(ctx, method, endpoint, &buf, token)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Do executes a prepared request and surfaces transport failures wrapped.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: request failed: %w", err)
	}
	return resp, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ErrorFromResponse(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (c *Client) resolve(endpoint string) string {
	if endpoint == "" {
		return c.base.String()
	}
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	trimmed := strings.TrimPrefix(endpoint, "/")
	ref := &url.URL{Path: trimmed}
	return c.base.ResolveReference(ref).String()
}

// DecodeJSON decodes a response body into out.
func DecodeJSON(r io.Reader, out any) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

// ErrorFromResponse converts a non-2xx response into an *Error,
// preferring the backend's structured payload over the raw body.
func ErrorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	type errorPayload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	apiErr := &Error{Status: resp.StatusCode}
	if len(body) > 0 {
		var payload errorPayload
		if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
			apiErr.Code = strings.TrimSpace(payload.Code)
			apiErr.Message = payload.Message
			return apiErr
		}
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
