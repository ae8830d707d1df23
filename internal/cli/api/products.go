package api

import (
	"context"
	"net/http"
	"time"
)

// Price holds a product's original and discounted price
type Price struct {
	OriginalPrice int64 `json:"originalPrice"`
	SalePrice     int64 `json:"salePrice"`
}

// Product represents a catalog item
type Product struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Code            string            `json:"code,omitempty"`
	Category        string            `json:"category,omitempty"`
	Price           Price             `json:"price"`
	Stock           int               `json:"stock"`
	Description     string            `json:"description,omitempty"`
	Images          []string          `json:"images"`
	Datasheet       string            `json:"datasheet,omitempty"`
	Options         []string          `json:"options,omitempty"`
	Classifications []string          `json:"classifications,omitempty"`
	Specs           map[string]string `json:"specs,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name            string            `json:"name"`
	Code            string            `json:"code,omitempty"`
	Category        string            `json:"category,omitempty"`
	Price           Price             `json:"price"`
	Stock           int               `json:"stock"`
	Description     string            `json:"description,omitempty"`
	Images          []string          `json:"images,omitempty"`
	Datasheet       string            `json:"datasheet,omitempty"`
	Options         []string          `json:"options,omitempty"`
	Classifications []string          `json:"classifications,omitempty"`
	Specs           map[string]string `json:"specs,omitempty"`
}

// UpdateProductRequest represents a partial product update; nil fields are
// left unchanged
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Code        *string `json:"code,omitempty"`
	Category    *string `json:"category,omitempty"`
	Price       *Price  `json:"price,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	Description *string `json:"description,omitempty"`
	Datasheet   *string `json:"datasheet,omitempty"`
}

// ListProducts returns all products, optionally filtered by category
func (c *Client) ListProducts(ctx context.Context, category string) ([]Product, error) {
	query := queryValues("category", category)

	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns a single product by ID
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a new product
func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, "/products", nil, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies a partial update to a product
func (c *Client) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPatch, "/products/"+id, nil, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct deletes a product by ID
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+id, nil, nil, nil)
}
