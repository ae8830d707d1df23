package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/levanduy093-work/electronics-admin/internal/models"
)

// CreateNotificationRequest represents an admin notification creation request
type CreateNotificationRequest struct {
	Title     string                      `json:"title" binding:"required"`
	Body      string                      `json:"body" binding:"required"`
	Type      string                      `json:"type"`
	Priority  string                      `json:"priority" binding:"omitempty,oneof=low normal high"`
	SendAt    *time.Time                  `json:"sendAt"`
	ExpiresAt *time.Time                  `json:"expiresAt"`
	Targets   []models.NotificationTarget `json:"targets"`
}

// UpdateNotificationRequest represents a partial notification update
type UpdateNotificationRequest struct {
	Title     *string                      `json:"title"`
	Body      *string                      `json:"body"`
	Type      *string                      `json:"type"`
	Priority  *string                      `json:"priority" binding:"omitempty,oneof=low normal high"`
	SendAt    *time.Time                   `json:"sendAt"`
	ExpiresAt *time.Time                   `json:"expiresAt"`
	Targets   *[]models.NotificationTarget `json:"targets"`
}

// @Summary List notifications
// @Router /notifications/admin/all [get]
func (s *Server) listNotifications(c *gin.Context) {
	var notifications []models.Notification
	if err := s.db.Order("created_at DESC").Find(&notifications).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list notifications")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// @Summary Create notification
// @Router /notifications/admin [post]
func (s *Server) createNotification(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Per-user targets must name a user
	for _, t := range req.Targets {
		if t.Scope == "user" && t.UserID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Target with scope 'user' requires userId"})
			return
		}
	}

	typ := req.Type
	if typ == "" {
		typ = "system"
	}
	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}
	targets := req.Targets
	if len(targets) == 0 {
		targets = []models.NotificationTarget{{Scope: "all_users"}}
	}

	notification := &models.Notification{
		Title:     req.Title,
		Body:      req.Body,
		Type:      typ,
		Priority:  priority,
		SendAt:    req.SendAt,
		ExpiresAt: req.ExpiresAt,
		Targets:   targets,
	}

	if err := s.db.Create(notification).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to create notification")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notification"})
		return
	}

	s.logger.Info().Str("notification_id", notification.ID).Str("title", notification.Title).Msg("Notification created")

	c.JSON(http.StatusCreated, notification)
}

// @Summary Update notification
// @Router /notifications/admin/{id} [patch]
func (s *Server) updateNotification(c *gin.Context) {
	var notification models.Notification
	if err := models.FindByID(s.db, c.Param("id"), &notification); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find notification")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		notification.Title = *req.Title
	}
	if req.Body != nil {
		notification.Body = *req.Body
	}
	if req.Type != nil {
		notification.Type = *req.Type
	}
	if req.Priority != nil {
		notification.Priority = *req.Priority
	}
	if req.SendAt != nil {
		notification.SendAt = req.SendAt
	}
	if req.ExpiresAt != nil {
		notification.ExpiresAt = req.ExpiresAt
	}
	if req.Targets != nil {
		notification.Targets = *req.Targets
	}

	if err := s.db.Save(&notification).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to update notification")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, notification)
}

// @Summary Delete all notifications
// @Router /notifications/admin/all [delete]
func (s *Server) deleteAllNotifications(c *gin.Context) {
	if err := s.db.Where("1 = 1").Delete(&models.Notification{}).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to delete notifications")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notifications"})
		return
	}

	s.logger.Info().Msg("All notifications deleted")

	c.JSON(http.StatusOK, gin.H{"message": "All notifications deleted"})
}

// @Summary Delete notification
// @Router /notifications/admin/{id} [delete]
func (s *Server) deleteNotification(c *gin.Context) {
	res := s.db.Where("id = ?", c.Param("id")).Delete(&models.Notification{})
	if res.Error != nil {
		s.logger.Error().Err(res.Error).Msg("Failed to delete notification")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}
