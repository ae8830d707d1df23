package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/levanduy093-work/electronics-admin/internal/models"
)

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name            string            `json:"name" binding:"required"`
	Code            string            `json:"code"`
	Category        string            `json:"category"`
	Price           models.Price      `json:"price"`
	Stock           int               `json:"stock" binding:"gte=0"`
	Description     string            `json:"description"`
	Images          []string          `json:"images"`
	Datasheet       string            `json:"datasheet"`
	Options         []string          `json:"options"`
	Classifications []string          `json:"classifications"`
	Specs           map[string]string `json:"specs"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name            *string            `json:"name"`
	Code            *string            `json:"code"`
	Category        *string            `json:"category"`
	Price           *models.Price      `json:"price"`
	Stock           *int               `json:"stock" binding:"omitempty,gte=0"`
	Description     *string            `json:"description"`
	Images          *[]string          `json:"images"`
	Datasheet       *string            `json:"datasheet"`
	Options         *[]string          `json:"options"`
	Classifications *[]string          `json:"classifications"`
	Specs           *map[string]string `json:"specs"`
}

// @Summary List products
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	query := s.db.Order("created_at DESC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// @Summary Get product
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	var product models.Product
	if err := models.FindByID(s.db, c.Param("id"), &product); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Create product
// @Router /products [post]
func (s *Server) createProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &models.Product{
		Name:            req.Name,
		Code:            req.Code,
		Category:        req.Category,
		Price:           req.Price,
		Stock:           req.Stock,
		Description:     req.Description,
		Images:          req.Images,
		Datasheet:       req.Datasheet,
		Options:         req.Options,
		Classifications: req.Classifications,
		Specs:           req.Specs,
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	if err := s.db.Create(product).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to create product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	s.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("Product created")

	c.JSON(http.StatusCreated, product)
}

// @Summary Update product
// @Router /products/{id} [patch]
func (s *Server) updateProduct(c *gin.Context) {
	var product models.Product
	if err := models.FindByID(s.db, c.Param("id"), &product); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Code != nil {
		product.Code = *req.Code
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.Datasheet != nil {
		product.Datasheet = *req.Datasheet
	}
	if req.Options != nil {
		product.Options = *req.Options
	}
	if req.Classifications != nil {
		product.Classifications = *req.Classifications
	}
	if req.Specs != nil {
		product.Specs = *req.Specs
	}

	if err := s.db.Save(&product).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to update product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Delete product
// @Router /products/{id} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	res := s.db.Where("id = ?", c.Param("id")).Delete(&models.Product{})
	if res.Error != nil {
		s.logger.Error().Err(res.Error).Msg("Failed to delete product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
