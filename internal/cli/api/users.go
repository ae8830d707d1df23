package api

import (
	"context"
	"net/http"
	"time"
)

// UserDetail represents an account as returned by the admin user endpoints
type UserDetail struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUserRequest represents an account creation request
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UpdateUserRequest represents a partial account update
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
	Password *string `json:"password,omitempty"`
}

// ListUsers returns all accounts
func (c *Client) ListUsers(ctx context.Context) ([]UserDetail, error) {
	var users []UserDetail
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a new account
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*UserDetail, error) {
	var user UserDetail
	if err := c.do(ctx, http.MethodPost, "/users", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial update to an account
func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserDetail, error) {
	var user UserDetail
	if err := c.do(ctx, http.MethodPatch, "/users/"+id, nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes an account by ID
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil, nil)
}
