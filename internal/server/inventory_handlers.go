package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/levanduy093-work/electronics-admin/internal/models"
)

var errStockNegative = errors.New("stock would become negative")

// CreateMovementRequest represents an inventory movement entry
type CreateMovementRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=in out adjust"`
	Quantity  int    `json:"quantity" binding:"gte=0"`
	Note      string `json:"note"`
}

// UpdateMovementRequest represents a movement correction. Changing type or
// quantity reverses the old effect on stock and applies the new one.
type UpdateMovementRequest struct {
	Type     *string `json:"type" binding:"omitempty,oneof=in out adjust"`
	Quantity *int    `json:"quantity" binding:"omitempty,gte=0"`
	Note     *string `json:"note"`
}

// applyMovement returns the stock level after applying a movement
func applyMovement(stock int, typ string, quantity int) (int, error) {
	switch typ {
	case models.MovementIn:
		return stock + quantity, nil
	case models.MovementOut:
		if stock-quantity < 0 {
			return 0, errStockNegative
		}
		return stock - quantity, nil
	case models.MovementAdjust:
		return quantity, nil
	}
	return 0, fmt.Errorf("unknown movement type %q", typ)
}

// reverseMovement returns the stock level before a movement was applied.
// Adjust movements are not reversible; callers must handle that separately.
func reverseMovement(stock int, typ string, quantity int) (int, error) {
	switch typ {
	case models.MovementIn:
		if stock-quantity < 0 {
			return 0, errStockNegative
		}
		return stock - quantity, nil
	case models.MovementOut:
		return stock + quantity, nil
	case models.MovementAdjust:
		return stock, nil
	}
	return 0, fmt.Errorf("unknown movement type %q", typ)
}

// @Summary List inventory movements
// @Router /inventory-movements [get]
func (s *Server) listMovements(c *gin.Context) {
	query := s.db.Order("created_at DESC")
	if productID := c.Query("productId"); productID != "" {
		query = query.Where("product_id = ?", productID)
	}

	var movements []models.InventoryMovement
	if err := query.Find(&movements).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list movements")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, movements)
}

// @Summary Record inventory movement
// @Description Records a movement and applies it to the product's stock atomically
// @Router /inventory-movements [post]
func (s *Server) createMovement(c *gin.Context) {
	var req CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movement := &models.InventoryMovement{
		ProductID: req.ProductID,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Note:      req.Note,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := models.FindByID(tx, req.ProductID, &product); err != nil {
			return err
		}

		stock, err := applyMovement(product.Stock, req.Type, req.Quantity)
		if err != nil {
			return err
		}

		if err := tx.Model(&product).Update("stock", stock).Error; err != nil {
			return err
		}

		return tx.Create(movement).Error
	})
	if err != nil {
		switch {
		case err == gorm.ErrRecordNotFound:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found"})
		case errors.Is(err, errStockNegative):
			c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock"})
		default:
			s.logger.Error().Err(err).Msg("Failed to record movement")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record movement"})
		}
		return
	}

	s.logger.Info().
		Str("movement_id", movement.ID).
		Str("product_id", movement.ProductID).
		Str("type", movement.Type).
		Int("quantity", movement.Quantity).
		Msg("Inventory movement recorded")

	c.JSON(http.StatusCreated, movement)
}

// @Summary Correct inventory movement
// @Router /inventory-movements/{id} [patch]
func (s *Server) updateMovement(c *gin.Context) {
	var movement models.InventoryMovement
	if err := models.FindByID(s.db, c.Param("id"), &movement); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find movement")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req UpdateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newType := movement.Type
	if req.Type != nil {
		newType = *req.Type
	}
	newQuantity := movement.Quantity
	if req.Quantity != nil {
		newQuantity = *req.Quantity
	}

	// Adjust movements overwrote the previous level, so their original
	// effect cannot be reversed after the fact
	if (movement.Type == models.MovementAdjust || newType == models.MovementAdjust) &&
		(newType != movement.Type || newQuantity != movement.Quantity) {
		c.JSON(http.StatusConflict, gin.H{"error": "Adjust movements cannot be corrected; record a new adjustment"})
		return
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if newType != movement.Type || newQuantity != movement.Quantity {
			var product models.Product
			if err := models.FindByID(tx, movement.ProductID, &product); err != nil {
				return err
			}

			stock, err := reverseMovement(product.Stock, movement.Type, movement.Quantity)
			if err != nil {
				return err
			}
			stock, err = applyMovement(stock, newType, newQuantity)
			if err != nil {
				return err
			}

			if err := tx.Model(&product).Update("stock", stock).Error; err != nil {
				return err
			}
		}

		movement.Type = newType
		movement.Quantity = newQuantity
		if req.Note != nil {
			movement.Note = *req.Note
		}

		return tx.Save(&movement).Error
	})
	if err != nil {
		if errors.Is(err, errStockNegative) {
			c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to update movement")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update movement"})
		return
	}

	c.JSON(http.StatusOK, movement)
}

// @Summary Delete inventory movement
// @Description Removes a movement and reverses its effect on stock
// @Router /inventory-movements/{id} [delete]
func (s *Server) deleteMovement(c *gin.Context) {
	var movement models.InventoryMovement
	if err := models.FindByID(s.db, c.Param("id"), &movement); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find movement")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if movement.Type == models.MovementAdjust {
		c.JSON(http.StatusConflict, gin.H{"error": "Adjust movements cannot be deleted; record a new adjustment"})
		return
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		err := models.FindByID(tx, movement.ProductID, &product)
		if err == nil {
			stock, rerr := reverseMovement(product.Stock, movement.Type, movement.Quantity)
			if rerr != nil {
				return rerr
			}
			if err := tx.Model(&product).Update("stock", stock).Error; err != nil {
				return err
			}
		} else if err != gorm.ErrRecordNotFound {
			// Product already deleted: nothing to reverse
			return err
		}

		return tx.Delete(&movement).Error
	})
	if err != nil {
		if errors.Is(err, errStockNegative) {
			c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock to reverse movement"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to delete movement")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete movement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movement deleted"})
}
