package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/levanduy093-work/electronics-admin/internal/models"
)

// CreateBannerRequest represents a banner creation request
type CreateBannerRequest struct {
	Title     string `json:"title" binding:"required"`
	Subtitle  string `json:"subtitle"`
	ImageURL  string `json:"imageUrl" binding:"required"`
	CTALabel  string `json:"ctaLabel"`
	ProductID string `json:"productId"`
	IsActive  *bool  `json:"isActive"`
	Order     int    `json:"order"`
}

// UpdateBannerRequest represents a partial banner update
type UpdateBannerRequest struct {
	Title     *string `json:"title"`
	Subtitle  *string `json:"subtitle"`
	ImageURL  *string `json:"imageUrl"`
	CTALabel  *string `json:"ctaLabel"`
	ProductID *string `json:"productId"`
	IsActive  *bool   `json:"isActive"`
	Order     *int    `json:"order"`
}

// ReorderBannersRequest carries the banner IDs in their new display order
type ReorderBannersRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// @Summary List banners
// @Router /banners [get]
func (s *Server) listBanners(c *gin.Context) {
	var banners []models.Banner
	if err := s.db.Order("`order` ASC, created_at ASC").Find(&banners).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list banners")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, banners)
}

// @Summary Create banner
// @Router /banners [post]
func (s *Server) createBanner(c *gin.Context) {
	var req CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	banner := &models.Banner{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		ImageURL:  req.ImageURL,
		CTALabel:  req.CTALabel,
		ProductID: req.ProductID,
		IsActive:  isActive,
		Order:     req.Order,
	}

	if err := s.db.Create(banner).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to create banner")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner"})
		return
	}

	c.JSON(http.StatusCreated, banner)
}

// @Summary Update banner
// @Router /banners/{id} [patch]
func (s *Server) updateBanner(c *gin.Context) {
	var banner models.Banner
	if err := models.FindByID(s.db, c.Param("id"), &banner); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find banner")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.Subtitle != nil {
		banner.Subtitle = *req.Subtitle
	}
	if req.ImageURL != nil {
		banner.ImageURL = *req.ImageURL
	}
	if req.CTALabel != nil {
		banner.CTALabel = *req.CTALabel
	}
	if req.ProductID != nil {
		banner.ProductID = *req.ProductID
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	if req.Order != nil {
		banner.Order = *req.Order
	}

	if err := s.db.Save(&banner).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to update banner")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
		return
	}

	c.JSON(http.StatusOK, banner)
}

// @Summary Reorder banners
// @Description Assign display order from the given ID sequence
// @Router /banners/reorder [patch]
func (s *Server) reorderBanners(c *gin.Context) {
	var req ReorderBannersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range req.IDs {
			res := tx.Model(&models.Banner{}).Where("id = ?", id).Update("order", i)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to reorder banners")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder banners"})
		return
	}

	var banners []models.Banner
	if err := s.db.Order("`order` ASC").Find(&banners).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list banners")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, banners)
}

// @Summary Delete banner
// @Router /banners/{id} [delete]
func (s *Server) deleteBanner(c *gin.Context) {
	res := s.db.Where("id = ?", c.Param("id")).Delete(&models.Banner{})
	if res.Error != nil {
		s.logger.Error().Err(res.Error).Msg("Failed to delete banner")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
}
