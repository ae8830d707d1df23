package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/levanduy093-work/electronics-admin/internal/models"
)

// CreateShipmentRequest represents a shipment creation request
type CreateShipmentRequest struct {
	OrderID          string     `json:"orderId" binding:"required"`
	Carrier          string     `json:"carrier" binding:"required"`
	TrackingNumber   string     `json:"trackingNumber"`
	Status           string     `json:"status"`
	ExpectedDelivery *time.Time `json:"expectedDelivery"`
}

// UpdateShipmentRequest represents a partial shipment update. A status change
// appends to the shipment's history.
type UpdateShipmentRequest struct {
	Carrier          *string    `json:"carrier"`
	TrackingNumber   *string    `json:"trackingNumber"`
	Status           *string    `json:"status"`
	ExpectedDelivery *time.Time `json:"expectedDelivery"`
}

// @Summary List shipments
// @Router /shipments [get]
func (s *Server) listShipments(c *gin.Context) {
	var shipments []models.Shipment
	if err := s.db.Order("created_at DESC").Find(&shipments).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list shipments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, shipments)
}

// @Summary Create shipment
// @Router /shipments [post]
func (s *Server) createShipment(c *gin.Context) {
	var req CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The referenced order must exist
	var order models.Order
	if err := models.FindByID(s.db, req.OrderID, &order); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	shipment := &models.Shipment{
		OrderID:          req.OrderID,
		Carrier:          req.Carrier,
		TrackingNumber:   req.TrackingNumber,
		Status:           status,
		StatusHistory:    []models.ShipmentStatusEntry{{Status: status, At: time.Now().UTC()}},
		ExpectedDelivery: req.ExpectedDelivery,
	}

	if err := s.db.Create(shipment).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to create shipment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shipment"})
		return
	}

	s.logger.Info().Str("shipment_id", shipment.ID).Str("order_id", shipment.OrderID).Msg("Shipment created")

	c.JSON(http.StatusCreated, shipment)
}

// @Summary Update shipment
// @Router /shipments/{id} [patch]
func (s *Server) updateShipment(c *gin.Context) {
	var shipment models.Shipment
	if err := models.FindByID(s.db, c.Param("id"), &shipment); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find shipment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Carrier != nil {
		shipment.Carrier = *req.Carrier
	}
	if req.TrackingNumber != nil {
		shipment.TrackingNumber = *req.TrackingNumber
	}
	if req.ExpectedDelivery != nil {
		shipment.ExpectedDelivery = req.ExpectedDelivery
	}
	if req.Status != nil && *req.Status != shipment.Status {
		shipment.Status = *req.Status
		shipment.StatusHistory = append(shipment.StatusHistory, models.ShipmentStatusEntry{
			Status: *req.Status,
			At:     time.Now().UTC(),
		})
	}

	if err := s.db.Save(&shipment).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to update shipment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shipment"})
		return
	}

	c.JSON(http.StatusOK, shipment)
}

// @Summary Delete shipment
// @Router /shipments/{id} [delete]
func (s *Server) deleteShipment(c *gin.Context) {
	res := s.db.Where("id = ?", c.Param("id")).Delete(&models.Shipment{})
	if res.Error != nil {
		s.logger.Error().Err(res.Error).Msg("Failed to delete shipment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shipment"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shipment deleted"})
}
