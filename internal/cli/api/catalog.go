package api

import (
	"context"
	"net/http"
	"time"
)

// Voucher represents a discount voucher
type Voucher struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Description   string    `json:"description"`
	DiscountPrice int64     `json:"discountPrice"`
	MinTotal      int64     `json:"minTotal"`
	Expire        time.Time `json:"expire"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateVoucherRequest represents a voucher creation request
type CreateVoucherRequest struct {
	Code          string    `json:"code"`
	Description   string    `json:"description,omitempty"`
	DiscountPrice int64     `json:"discountPrice"`
	MinTotal      int64     `json:"minTotal"`
	Expire        time.Time `json:"expire"`
}

// UpdateVoucherRequest represents a partial voucher update
type UpdateVoucherRequest struct {
	Description   *string    `json:"description,omitempty"`
	DiscountPrice *int64     `json:"discountPrice,omitempty"`
	MinTotal      *int64     `json:"minTotal,omitempty"`
	Expire        *time.Time `json:"expire,omitempty"`
}

// Banner represents a storefront banner slide
type Banner struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	ImageURL  string `json:"imageUrl"`
	CTALabel  string `json:"ctaLabel,omitempty"`
	ProductID string `json:"productId,omitempty"`
	IsActive  bool   `json:"isActive"`
	Order     int    `json:"order"`
}

// CreateBannerRequest represents a banner creation request
type CreateBannerRequest struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	ImageURL  string `json:"imageUrl"`
	CTALabel  string `json:"ctaLabel,omitempty"`
	ProductID string `json:"productId,omitempty"`
	IsActive  *bool  `json:"isActive,omitempty"`
	Order     int    `json:"order"`
}

// UpdateBannerRequest represents a partial banner update
type UpdateBannerRequest struct {
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	CTALabel *string `json:"ctaLabel,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
	Order    *int    `json:"order,omitempty"`
}

// ReorderBannersRequest carries banner IDs in their new display order
type ReorderBannersRequest struct {
	IDs []string `json:"ids"`
}

// ListVouchers returns all vouchers
func (c *Client) ListVouchers(ctx context.Context) ([]Voucher, error) {
	var vouchers []Voucher
	if err := c.do(ctx, http.MethodGet, "/vouchers", nil, nil, &vouchers); err != nil {
		return nil, err
	}
	return vouchers, nil
}

// CreateVoucher creates a new voucher
func (c *Client) CreateVoucher(ctx context.Context, req CreateVoucherRequest) (*Voucher, error) {
	var voucher Voucher
	if err := c.do(ctx, http.MethodPost, "/vouchers", nil, req, &voucher); err != nil {
		return nil, err
	}
	return &voucher, nil
}

// UpdateVoucher applies a partial update to a voucher
func (c *Client) UpdateVoucher(ctx context.Context, id string, req UpdateVoucherRequest) (*Voucher, error) {
	var voucher Voucher
	if err := c.do(ctx, http.MethodPatch, "/vouchers/"+id, nil, req, &voucher); err != nil {
		return nil, err
	}
	return &voucher, nil
}

// DeleteVoucher deletes a voucher by ID
func (c *Client) DeleteVoucher(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/vouchers/"+id, nil, nil, nil)
}

// ListBanners returns all banners in display order
func (c *Client) ListBanners(ctx context.Context) ([]Banner, error) {
	var banners []Banner
	if err := c.do(ctx, http.MethodGet, "/banners", nil, nil, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// CreateBanner creates a new banner
func (c *Client) CreateBanner(ctx context.Context, req CreateBannerRequest) (*Banner, error) {
	var banner Banner
	if err := c.do(ctx, http.MethodPost, "/banners", nil, req, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

// UpdateBanner applies a partial update to a banner
func (c *Client) UpdateBanner(ctx context.Context, id string, req UpdateBannerRequest) (*Banner, error) {
	var banner Banner
	if err := c.do(ctx, http.MethodPatch, "/banners/"+id, nil, req, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

// ReorderBanners assigns display order from the given ID sequence and
// returns the reordered list
func (c *Client) ReorderBanners(ctx context.Context, ids []string) ([]Banner, error) {
	var banners []Banner
	if err := c.do(ctx, http.MethodPatch, "/banners/reorder", nil, ReorderBannersRequest{IDs: ids}, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// DeleteBanner deletes a banner by ID
func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/banners/"+id, nil, nil, nil)
}
