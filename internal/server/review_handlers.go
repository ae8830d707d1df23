package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/levanduy093-work/electronics-admin/internal/models"
)

// @Summary List reviews
// @Router /reviews [get]
func (s *Server) listReviews(c *gin.Context) {
	query := s.db.Order("created_at DESC")
	if productID := c.Query("productId"); productID != "" {
		query = query.Where("product_id = ?", productID)
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// @Summary Delete review
// @Description Moderation: remove an abusive or spam review
// @Router /reviews/{id} [delete]
func (s *Server) deleteReview(c *gin.Context) {
	res := s.db.Where("id = ?", c.Param("id")).Delete(&models.Review{})
	if res.Error != nil {
		s.logger.Error().Err(res.Error).Msg("Failed to delete review")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	s.logger.Info().Str("review_id", c.Param("id")).Msg("Review deleted")

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
