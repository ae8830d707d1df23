package api

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// OrderStatus is the order fulfilment timeline as reported by the API
type OrderStatus struct {
	Ordered   *time.Time `json:"ordered,omitempty"`
	Confirmed *time.Time `json:"confirmed,omitempty"`
	Packaged  *time.Time `json:"packaged,omitempty"`
	Shipped   *time.Time `json:"shipped,omitempty"`
}

// Step returns the furthest step reached, or "pending" when none
func (s OrderStatus) Step() string {
	switch {
	case s.Shipped != nil:
		return "shipped"
	case s.Packaged != nil:
		return "packaged"
	case s.Confirmed != nil:
		return "confirmed"
	case s.Ordered != nil:
		return "ordered"
	}
	return "pending"
}

// Next returns the step that follows the current one, empty when the
// timeline is complete
func (s OrderStatus) Next() string {
	switch s.Step() {
	case "pending":
		return "ordered"
	case "ordered":
		return "confirmed"
	case "confirmed":
		return "packaged"
	case "packaged":
		return "shipped"
	}
	return ""
}

// OrderItem is a line item inside an order
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// ShippingAddress is the delivery address attached to an order
type ShippingAddress struct {
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
}

// Order represents a customer order
type Order struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	UserID          string          `json:"userId"`
	Status          OrderStatus     `json:"status"`
	IsCancelled     bool            `json:"isCancelled"`
	TotalPrice      int64           `json:"totalPrice"`
	Payment         string          `json:"payment"`
	PaymentStatus   string          `json:"paymentStatus"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// UpdateOrderRequest represents an order update
type UpdateOrderRequest struct {
	Status        *OrderStatus `json:"status,omitempty"`
	IsCancelled   *bool        `json:"isCancelled,omitempty"`
	PaymentStatus *string      `json:"paymentStatus,omitempty"`
}

// ListOrders returns all orders
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder returns a single order by ID
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// AdvanceOrder moves an order's status timeline to its next step
func (c *Client) AdvanceOrder(ctx context.Context, order *Order) (*Order, error) {
	next := order.Status.Next()
	if next == "" {
		return nil, fmt.Errorf("order %s has already shipped", order.Code)
	}

	now := time.Now().UTC()
	status := order.Status
	switch next {
	case "ordered":
		status.Ordered = &now
	case "confirmed":
		status.Confirmed = &now
	case "packaged":
		status.Packaged = &now
	case "shipped":
		status.Shipped = &now
	}

	return c.UpdateOrder(ctx, order.ID, UpdateOrderRequest{Status: &status})
}

// CancelOrder marks an order as cancelled
func (c *Client) CancelOrder(ctx context.Context, id string) (*Order, error) {
	cancelled := true
	return c.UpdateOrder(ctx, id, UpdateOrderRequest{IsCancelled: &cancelled})
}

// UpdateOrder applies a partial update to an order
func (c *Client) UpdateOrder(ctx context.Context, id string, req UpdateOrderRequest) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPatch, "/orders/"+id, nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
