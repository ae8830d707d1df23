package api

import (
	"context"
	"net/http"
	"time"
)

// Transaction represents a payment transaction
type Transaction struct {
	ID        string     `json:"id"`
	OrderID   string     `json:"orderId"`
	UserID    string     `json:"userId"`
	Provider  string     `json:"provider"`
	Amount    int64      `json:"amount"`
	Currency  string     `json:"currency"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CreateTransactionRequest represents a transaction creation request
type CreateTransactionRequest struct {
	OrderID  string     `json:"orderId"`
	UserID   string     `json:"userId"`
	Provider string     `json:"provider"`
	Amount   int64      `json:"amount"`
	Currency string     `json:"currency,omitempty"`
	Status   string     `json:"status,omitempty"`
	PaidAt   *time.Time `json:"paidAt,omitempty"`
}

// UpdateTransactionRequest represents a partial transaction update
type UpdateTransactionRequest struct {
	Provider *string    `json:"provider,omitempty"`
	Amount   *int64     `json:"amount,omitempty"`
	Currency *string    `json:"currency,omitempty"`
	Status   *string    `json:"status,omitempty"`
	PaidAt   *time.Time `json:"paidAt,omitempty"`
}

// ListTransactions returns transactions, optionally filtered by order
func (c *Client) ListTransactions(ctx context.Context, orderID string) ([]Transaction, error) {
	var transactions []Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions", queryValues("orderId", orderID), nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// CreateTransaction records a new transaction
func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*Transaction, error) {
	var transaction Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", nil, req, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update to a transaction
func (c *Client) UpdateTransaction(ctx context.Context, id string, req UpdateTransactionRequest) (*Transaction, error) {
	var transaction Transaction
	if err := c.do(ctx, http.MethodPatch, "/transactions/"+id, nil, req, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// DeleteTransaction deletes a transaction by ID
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/transactions/"+id, nil, nil, nil)
}
