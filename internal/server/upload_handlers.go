package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

// UploadByURLRequest carries a remote image URL to register
type UploadByURLRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// UploadResponse is the stored location of an uploaded file
type UploadResponse struct {
	URL string `json:"url"`
}

// sanitizeFolder restricts the folder query param to a single safe path segment
func sanitizeFolder(folder string) string {
	folder = filepath.Base(strings.TrimSpace(folder))
	if folder == "." || folder == string(filepath.Separator) || folder == ".." {
		return ""
	}
	return folder
}

func (s *Server) saveUpload(c *gin.Context) (string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", fmt.Errorf("missing file field: %w", err)
	}

	folder := sanitizeFolder(c.Query("folder"))
	dir := s.config.Uploads.Dir
	if folder != "" {
		dir = filepath.Join(dir, folder)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	// ULID filename avoids collisions and keeps uploads sortable by time
	name := ulid.Make().String() + strings.ToLower(filepath.Ext(file.Filename))
	dst := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}

	urlPath := "/uploads/" + name
	if folder != "" {
		urlPath = "/uploads/" + folder + "/" + name
	}

	return s.config.HTTP.PublicURL + urlPath, nil
}

// @Summary Upload image
// @Accept multipart/form-data
// @Router /upload/image [post]
func (s *Server) uploadImage(c *gin.Context) {
	url, err := s.saveUpload(c)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Image upload failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{URL: url})
}

// @Summary Upload file
// @Accept multipart/form-data
// @Router /upload/file [post]
func (s *Server) uploadFile(c *gin.Context) {
	url, err := s.saveUpload(c)
	if err != nil {
		s.logger.Warn().Err(err).Msg("File upload failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{URL: url})
}

// @Summary Register image by URL
// @Description Accepts an externally hosted image URL and returns it unchanged
// @Router /upload/image/by-url [post]
func (s *Server) uploadImageByURL(c *gin.Context) {
	var req UploadByURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{URL: req.URL})
}
