package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saurabhtbj1201/portfolio/backend/internal/config"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/response"
)

// UploadHandler stores admin image uploads on local disk under a random
// filename and returns the public URL.
type UploadHandler struct {
	cfg config.UploadsConfig
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

func NewUploadHandler(cfg config.UploadsConfig) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// Upload accepts a multipart image and writes it to the uploads directory
// POST /api/admin/uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	maxBytes := int64(h.cfg.MaxSizeMB) * 1024 * 1024
	if maxBytes > 0 && file.Size > maxBytes {
		response.BadRequest(c, "file exceeds the maximum allowed size")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		response.BadRequest(c, "unsupported file type")
		return
	}

	if err := os.MkdirAll(h.cfg.Dir, 0o755); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(h.cfg.Dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Created(c, gin.H{
		"filename": name,
		"url":      strings.TrimSuffix(h.cfg.BaseURL, "/") + "/" + name,
	})
}
