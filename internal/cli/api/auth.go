package api

import (
	"context"
	"net/http"

	"github.com/levanduy093-work/electronics-admin/internal/cli/session"
)

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest represents the token refresh request body
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenResponse represents a login or refresh response
type TokenResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *session.User `json:"user"`
}

// Login authenticates with email and password. It does not persist
// anything: deciding whether the returned user may use the back office is
// the login flow's job.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	var resp TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// refresh exchanges a refresh token for a new token pair. It deliberately
// bypasses the auth pipeline: a refresh must never trigger another refresh.
func (c *Client) refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	var resp TokenResponse
	err := c.sendPlain(ctx, http.MethodPost, "/auth/refresh", RefreshRequest{RefreshToken: refreshToken}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Probe checks whether the stored credentials currently grant admin access
// by hitting an admin-gated endpoint. Any 2xx means authorized. Runs
// through the full pipeline, so an expired token gets its one refresh.
func (c *Client) Probe(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/users", nil, nil, nil)
}

// Me returns the identity behind the stored access token
func (c *Client) Me(ctx context.Context) (*session.User, error) {
	var user session.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
