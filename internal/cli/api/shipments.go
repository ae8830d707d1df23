package api

import (
	"context"
	"net/http"
	"time"
)

// ShipmentStatusEntry records one step of a shipment's history
type ShipmentStatusEntry struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// Shipment represents a carrier shipment for an order
type Shipment struct {
	ID               string                `json:"id"`
	OrderID          string                `json:"orderId"`
	Carrier          string                `json:"carrier"`
	TrackingNumber   string                `json:"trackingNumber"`
	Status           string                `json:"status"`
	StatusHistory    []ShipmentStatusEntry `json:"statusHistory"`
	ExpectedDelivery *time.Time            `json:"expectedDelivery,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
}

// CreateShipmentRequest represents a shipment creation request
type CreateShipmentRequest struct {
	OrderID          string     `json:"orderId"`
	Carrier          string     `json:"carrier"`
	TrackingNumber   string     `json:"trackingNumber,omitempty"`
	Status           string     `json:"status,omitempty"`
	ExpectedDelivery *time.Time `json:"expectedDelivery,omitempty"`
}

// UpdateShipmentRequest represents a partial shipment update
type UpdateShipmentRequest struct {
	Carrier          *string    `json:"carrier,omitempty"`
	TrackingNumber   *string    `json:"trackingNumber,omitempty"`
	Status           *string    `json:"status,omitempty"`
	ExpectedDelivery *time.Time `json:"expectedDelivery,omitempty"`
}

// ListShipments returns all shipments
func (c *Client) ListShipments(ctx context.Context) ([]Shipment, error) {
	var shipments []Shipment
	if err := c.do(ctx, http.MethodGet, "/shipments", nil, nil, &shipments); err != nil {
		return nil, err
	}
	return shipments, nil
}

// CreateShipment creates a new shipment for an order
func (c *Client) CreateShipment(ctx context.Context, req CreateShipmentRequest) (*Shipment, error) {
	var shipment Shipment
	if err := c.do(ctx, http.MethodPost, "/shipments", nil, req, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

// UpdateShipment applies a partial update to a shipment. A status change
// appends to the shipment's history server-side.
func (c *Client) UpdateShipment(ctx context.Context, id string, req UpdateShipmentRequest) (*Shipment, error) {
	var shipment Shipment
	if err := c.do(ctx, http.MethodPatch, "/shipments/"+id, nil, req, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

// DeleteShipment deletes a shipment by ID
func (c *Client) DeleteShipment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/shipments/"+id, nil, nil, nil)
}
