// Package api is the single gateway for all calls to the shop API. Every
// request goes through one pipeline that attaches the bearer token,
// classifies 401/403 responses, silently refreshes an expired access token
// at most once per request, and ejects the session when nothing can be
// recovered.
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
	"sync"
	"time"

	"github.com/levanduy093-work/electronics-admin/internal/cli/session"
)

var (
	// ErrUnauthorized marks a terminal 401: the token could not be
	// refreshed (or was already refreshed once for this request)
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden marks a 403: the token is valid but this principal is
	// not allowed here. Never retried.
	ErrForbidden = errors.New("admin access required")
)

// Error is a non-auth API error passed through to the caller unmodified
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("request failed (status %d): %s", e.Status, e.Message)
}

// Client is the HTTP client for the shop admin API
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store

	// guards the refresh call so concurrent 401s share one token rotation
	refreshMu sync.Mutex

	// invoked once per terminal auth failure; the CLI shell subscribes to
	// tell the operator to log in again
	onSessionInvalid func()
}

// New creates a new API client over the given credential store
func New(baseURL string, store session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		store: store,
	}
}

// SetHTTPClient sets a custom HTTP client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// OnSessionInvalid registers the handler fired when the session is ejected
func (c *Client) OnSessionInvalid(fn func()) {
	c.onSessionInvalid = fn
}

// invalidateSession clears every persisted credential and notifies the
// shell. Global on purpose: a dead session invalidates every other
// in-flight and future request.
func (c *Client) invalidateSession() {
	_ = session.Clear(c.store)
	if c.onSessionInvalid != nil {
		c.onSessionInvalid()
	}
}

// do serializes the body once and runs the request through the auth
// pipeline. out, when non-nil, receives the decoded JSON response.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	return c.send(ctx, method, path, query, payload, "application/json", out, 0)
}

// send issues one attempt of a request. attempt counts how many times this
// originating request has already been re-issued after a refresh; it is
// threaded explicitly so each logical request gets exactly one refresh,
// however many are in flight concurrently.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, contentType string, out any, attempt int) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", contentType)
	}

	// Request phase: attach the bearer token when one is stored. The
	// token is re-read per attempt so a retry picks up the rotated one.
	token := session.AccessToken(c.store)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network failures pass through unmodified
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// Response phase: 403 before 401; everything else passes through
	switch {
	case resp.StatusCode == http.StatusForbidden:
		// Valid token, wrong principal. Terminal, never retried.
		msg := readAPIError(resp.Body)
		c.invalidateSession()
		return fmt.Errorf("%s (status 403): %w", msg, ErrForbidden)

	case resp.StatusCode == http.StatusUnauthorized:
		msg := readAPIError(resp.Body)
		if attempt > 0 {
			// The refresh budget for this request is spent
			c.invalidateSession()
			return fmt.Errorf("%s after token refresh: %w", msg, ErrUnauthorized)
		}
		if err := c.refreshCredentials(ctx, token); err != nil {
			return err
		}
		return c.send(ctx, method, path, query, payload, contentType, out, attempt+1)

	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &Error{Status: resp.StatusCode, Message: readAPIError(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	return nil
}

// refreshCredentials rotates the token pair after a 401. failedToken is the
// bearer the rejected attempt carried. Concurrent 401s coalesce here: the
// mutex serializes them, and a waiter that finds the token already rotated
// by another request skips its own refresh call.
func (c *Client) refreshCredentials(ctx context.Context, failedToken string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if current := session.AccessToken(c.store); current != "" && current != failedToken {
		// Someone else already refreshed while we waited
		return nil
	}

	refreshToken := session.RefreshToken(c.store)
	if refreshToken == "" {
		// No refresh is possible; eject without a network call
		c.invalidateSession()
		return fmt.Errorf("no refresh token stored: %w", ErrUnauthorized)
	}

	tokens, err := c.refresh(ctx, refreshToken)
	if err != nil {
		// The refresh error, not the original 401, is what surfaces
		c.invalidateSession()
		return fmt.Errorf("token refresh failed: %w", err)
	}

	if err := session.SaveTokens(c.store, tokens.AccessToken, tokens.RefreshToken, tokens.User); err != nil {
		return fmt.Errorf("failed to persist refreshed credentials: %w", err)
	}

	return nil
}

// sendPlain issues a request outside the auth pipeline: no bearer token, no
// 401/403 classification. Used for the refresh call itself.
func (c *Client) sendPlain(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Message: readAPIError(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// queryValues builds url.Values from alternating key/value pairs, skipping
// empty values
func queryValues(pairs ...string) url.Values {
	var query url.Values
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		if query == nil {
			query = url.Values{}
		}
		query.Set(pairs[i], pairs[i+1])
	}
	return query
}

// readAPIError extracts the error message from a JSON error body
func readAPIError(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return "request rejected"
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}

	return strings.TrimSpace(string(data))
}
