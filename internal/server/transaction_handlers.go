package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/levanduy093-work/electronics-admin/internal/models"
)

// CreateTransactionRequest represents a manual transaction entry
type CreateTransactionRequest struct {
	OrderID  string     `json:"orderId" binding:"required"`
	UserID   string     `json:"userId" binding:"required"`
	Provider string     `json:"provider" binding:"required"`
	Amount   int64      `json:"amount" binding:"required,gt=0"`
	Currency string     `json:"currency"`
	Status   string     `json:"status"`
	PaidAt   *time.Time `json:"paidAt"`
}

// UpdateTransactionRequest represents a partial transaction update
type UpdateTransactionRequest struct {
	Provider *string    `json:"provider"`
	Amount   *int64     `json:"amount" binding:"omitempty,gt=0"`
	Currency *string    `json:"currency"`
	Status   *string    `json:"status"`
	PaidAt   *time.Time `json:"paidAt"`
}

// @Summary List transactions
// @Router /transactions [get]
func (s *Server) listTransactions(c *gin.Context) {
	query := s.db.Order("created_at DESC")
	if orderID := c.Query("orderId"); orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list transactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary Create transaction
// @Router /transactions [post]
func (s *Server) createTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "VND"
	}
	status := req.Status
	if status == "" {
		status = "pending"
	}

	transaction := &models.Transaction{
		OrderID:  req.OrderID,
		UserID:   req.UserID,
		Provider: req.Provider,
		Amount:   req.Amount,
		Currency: currency,
		Status:   status,
		PaidAt:   req.PaidAt,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to create transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// @Summary Update transaction
// @Router /transactions/{id} [patch]
func (s *Server) updateTransaction(c *gin.Context) {
	var transaction models.Transaction
	if err := models.FindByID(s.db, c.Param("id"), &transaction); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Provider != nil {
		transaction.Provider = *req.Provider
	}
	if req.Amount != nil {
		transaction.Amount = *req.Amount
	}
	if req.Currency != nil {
		transaction.Currency = *req.Currency
	}
	if req.Status != nil {
		transaction.Status = *req.Status
	}
	if req.PaidAt != nil {
		transaction.PaidAt = req.PaidAt
	}

	if err := s.db.Save(&transaction).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to update transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// @Summary Delete transaction
// @Router /transactions/{id} [delete]
func (s *Server) deleteTransaction(c *gin.Context) {
	res := s.db.Where("id = ?", c.Param("id")).Delete(&models.Transaction{})
	if res.Error != nil {
		s.logger.Error().Err(res.Error).Msg("Failed to delete transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
