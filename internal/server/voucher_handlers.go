package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/levanduy093-work/electronics-admin/internal/models"
)

// CreateVoucherRequest represents a voucher creation request
type CreateVoucherRequest struct {
	Code          string    `json:"code" binding:"required"`
	Description   string    `json:"description"`
	DiscountPrice int64     `json:"discountPrice" binding:"required,gt=0"`
	MinTotal      int64     `json:"minTotal" binding:"gte=0"`
	Expire        time.Time `json:"expire" binding:"required"`
}

// UpdateVoucherRequest represents a partial voucher update
type UpdateVoucherRequest struct {
	Description   *string    `json:"description"`
	DiscountPrice *int64     `json:"discountPrice" binding:"omitempty,gt=0"`
	MinTotal      *int64     `json:"minTotal" binding:"omitempty,gte=0"`
	Expire        *time.Time `json:"expire"`
}

// @Summary List vouchers
// @Router /vouchers [get]
func (s *Server) listVouchers(c *gin.Context) {
	var vouchers []models.Voucher
	if err := s.db.Order("expire ASC").Find(&vouchers).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list vouchers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, vouchers)
}

// @Summary Create voucher
// @Router /vouchers [post]
func (s *Server) createVoucher(c *gin.Context) {
	var req CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var count int64
	if err := s.db.Model(&models.Voucher{}).Where("code = ?", req.Code).Count(&count).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to check voucher code")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Voucher code already exists"})
		return
	}

	voucher := &models.Voucher{
		Code:          req.Code,
		Description:   req.Description,
		DiscountPrice: req.DiscountPrice,
		MinTotal:      req.MinTotal,
		Expire:        req.Expire,
	}

	if err := s.db.Create(voucher).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to create voucher")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create voucher"})
		return
	}

	s.logger.Info().Str("voucher_id", voucher.ID).Str("code", voucher.Code).Msg("Voucher created")

	c.JSON(http.StatusCreated, voucher)
}

// @Summary Update voucher
// @Router /vouchers/{id} [patch]
func (s *Server) updateVoucher(c *gin.Context) {
	var voucher models.Voucher
	if err := models.FindByID(s.db, c.Param("id"), &voucher); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find voucher")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Description != nil {
		voucher.Description = *req.Description
	}
	if req.DiscountPrice != nil {
		voucher.DiscountPrice = *req.DiscountPrice
	}
	if req.MinTotal != nil {
		voucher.MinTotal = *req.MinTotal
	}
	if req.Expire != nil {
		voucher.Expire = *req.Expire
	}

	if err := s.db.Save(&voucher).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to update voucher")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update voucher"})
		return
	}

	c.JSON(http.StatusOK, voucher)
}

// @Summary Delete voucher
// @Router /vouchers/{id} [delete]
func (s *Server) deleteVoucher(c *gin.Context) {
	res := s.db.Where("id = ?", c.Param("id")).Delete(&models.Voucher{})
	if res.Error != nil {
		s.logger.Error().Err(res.Error).Msg("Failed to delete voucher")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete voucher"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Voucher deleted"})
}

// sweepExpiredVouchers deletes vouchers past their expiry date. Runs on the
// cron schedule from VOUCHER_SWEEP_SCHEDULE.
func (s *Server) sweepExpiredVouchers() {
	res := s.db.Where("expire < ?", time.Now().UTC()).Delete(&models.Voucher{})
	if res.Error != nil {
		s.logger.Error().Err(res.Error).Msg("Voucher sweep failed")
		return
	}

	if res.RowsAffected > 0 {
		s.logger.Info().Int64("deleted", res.RowsAffected).Msg("Expired vouchers removed")
	}
}
