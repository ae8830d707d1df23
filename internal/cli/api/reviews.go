package api

import (
	"context"
	"net/http"
	"time"
)

// Review represents a customer product review
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListReviews returns reviews, optionally filtered by product
func (c *Client) ListReviews(ctx context.Context, productID string) ([]Review, error) {
	var reviews []Review
	if err := c.do(ctx, http.MethodGet, "/reviews", queryValues("productId", productID), nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// DeleteReview deletes a review by ID
func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/reviews/"+id, nil, nil, nil)
}
