package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/blob"
)

// UploadHandler streams stored report attachments back to the browser.
type UploadHandler struct {
	blobs blob.Store
}

func NewUploadHandler(blobs blob.Store) *UploadHandler {
	return &UploadHandler{blobs: blobs}
}

func (h *UploadHandler) Get(c *gin.Context) {
	name := c.Param("filename")

	rc, err := h.blobs.Open(c.Request.Context(), name)
	if errors.Is(err, blob.ErrNotFound) {
		httperr.NotFound(c, "file_not_found", "File not found")
		return
	}
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", contentType)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		_ = c.Error(err)
	}
}
