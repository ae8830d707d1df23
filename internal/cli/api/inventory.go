package api

import (
	"context"
	"net/http"
	"time"
)

// Movement types accepted by the inventory endpoints
const (
	MovementIn     = "in"
	MovementOut    = "out"
	MovementAdjust = "adjust"
)

// InventoryMovement represents a stock mutation record
type InventoryMovement struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateMovementRequest represents a stock movement creation request
type CreateMovementRequest struct {
	ProductID string `json:"productId"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note,omitempty"`
}

// UpdateMovementRequest corrects the quantity or note of a movement
type UpdateMovementRequest struct {
	Quantity *int    `json:"quantity,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// ListMovements returns stock movements, optionally filtered by product
func (c *Client) ListMovements(ctx context.Context, productID string) ([]InventoryMovement, error) {
	var movements []InventoryMovement
	if err := c.do(ctx, http.MethodGet, "/inventory-movements", queryValues("productId", productID), nil, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// CreateMovement records a stock movement and applies it to product stock
func (c *Client) CreateMovement(ctx context.Context, req CreateMovementRequest) (*InventoryMovement, error) {
	var movement InventoryMovement
	if err := c.do(ctx, http.MethodPost, "/inventory-movements", nil, req, &movement); err != nil {
		return nil, err
	}
	return &movement, nil
}

// UpdateMovement corrects a movement, adjusting product stock for the delta
func (c *Client) UpdateMovement(ctx context.Context, id string, req UpdateMovementRequest) (*InventoryMovement, error) {
	var movement InventoryMovement
	if err := c.do(ctx, http.MethodPatch, "/inventory-movements/"+id, nil, req, &movement); err != nil {
		return nil, err
	}
	return &movement, nil
}

// DeleteMovement removes a movement and reverses its stock effect
func (c *Client) DeleteMovement(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/inventory-movements/"+id, nil, nil, nil)
}
