package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/levanduy093-work/electronics-admin/internal/models"
)

// UpdateOrderRequest represents an order update. The status object is merged
// into the existing timeline: steps already reached keep their original
// timestamps, new steps are stamped, nothing is ever un-reached.
type UpdateOrderRequest struct {
	Status        *models.OrderStatus `json:"status"`
	IsCancelled   *bool               `json:"isCancelled"`
	PaymentStatus *string             `json:"paymentStatus"`
}

// @Summary List orders
// @Router /orders [get]
func (s *Server) listOrders(c *gin.Context) {
	var orders []models.Order
	if err := s.db.Order("created_at DESC").Find(&orders).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list orders")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// @Summary Get order
// @Router /orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	var order models.Order
	if err := models.FindByID(s.db, c.Param("id"), &order); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary Update order
// @Router /orders/{id} [patch]
func (s *Server) updateOrder(c *gin.Context) {
	var order models.Order
	if err := models.FindByID(s.db, c.Param("id"), &order); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.IsCancelled != nil {
		if order.Status.Shipped != nil && *req.IsCancelled {
			c.JSON(http.StatusConflict, gin.H{"error": "Shipped orders cannot be cancelled"})
			return
		}
		order.IsCancelled = *req.IsCancelled
	}

	if req.Status != nil {
		if order.IsCancelled {
			c.JSON(http.StatusConflict, gin.H{"error": "Cancelled orders cannot advance"})
			return
		}
		order.Status = mergeStatus(order.Status, *req.Status)
	}

	if req.PaymentStatus != nil {
		order.PaymentStatus = *req.PaymentStatus
	}

	if err := s.db.Save(&order).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to update order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	s.logger.Info().Str("order_id", order.ID).Str("code", order.Code).Msg("Order updated")

	c.JSON(http.StatusOK, order)
}

// mergeStatus merges a requested timeline into the current one. Existing
// timestamps win; newly reached steps are stamped server-side.
func mergeStatus(current, requested models.OrderStatus) models.OrderStatus {
	now := time.Now().UTC()
	merge := func(cur, req *time.Time) *time.Time {
		if cur != nil {
			return cur
		}
		if req != nil {
			return &now
		}
		return nil
	}

	return models.OrderStatus{
		Ordered:   merge(current.Ordered, requested.Ordered),
		Confirmed: merge(current.Confirmed, requested.Confirmed),
		Packaged:  merge(current.Packaged, requested.Packaged),
		Shipped:   merge(current.Shipped, requested.Shipped),
	}
}
