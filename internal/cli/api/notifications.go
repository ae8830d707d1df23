package api

import (
	"context"
	"net/http"
	"time"
)

// NotificationTarget scopes a notification to all users or one user
type NotificationTarget struct {
	Scope  string `json:"scope"`
	UserID string `json:"userId,omitempty"`
}

// Notification represents an admin-authored notification
type Notification struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Body      string               `json:"body"`
	Type      string               `json:"type"`
	Priority  string               `json:"priority"`
	Targets   []NotificationTarget `json:"targets"`
	CreatedAt time.Time            `json:"createdAt"`
}

// CreateNotificationRequest represents a notification creation request
type CreateNotificationRequest struct {
	Title    string               `json:"title"`
	Body     string               `json:"body"`
	Type     string               `json:"type,omitempty"`
	Priority string               `json:"priority,omitempty"`
	Targets  []NotificationTarget `json:"targets,omitempty"`
}

// UpdateNotificationRequest represents a partial notification update
type UpdateNotificationRequest struct {
	Title    *string `json:"title,omitempty"`
	Body     *string `json:"body,omitempty"`
	Type     *string `json:"type,omitempty"`
	Priority *string `json:"priority,omitempty"`
}

// ListNotifications returns admin-authored notifications
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.do(ctx, http.MethodGet, "/notifications/admin/all", nil, nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// CreateNotification publishes a new notification
func (c *Client) CreateNotification(ctx context.Context, req CreateNotificationRequest) (*Notification, error) {
	var notification Notification
	if err := c.do(ctx, http.MethodPost, "/notifications/admin", nil, req, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

// UpdateNotification applies a partial update to a notification
func (c *Client) UpdateNotification(ctx context.Context, id string, req UpdateNotificationRequest) (*Notification, error) {
	var notification Notification
	if err := c.do(ctx, http.MethodPatch, "/notifications/admin/"+id, nil, req, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

// DeleteNotification deletes a notification by ID
func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notifications/admin/"+id, nil, nil, nil)
}

// DeleteAllNotifications deletes every admin notification
func (c *Client) DeleteAllNotifications(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/notifications/admin/all", nil, nil, nil)
}
