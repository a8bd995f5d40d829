package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/application"
)

// UploadHandler serves user-uploaded assets from the fixed asset root.
// Read-only, stateless, no dependency on the account stack.
type UploadHandler struct {
	Uploads *application.UploadService
	Logger  *logrus.Logger
}

func NewUploadHandler(uploads *application.UploadService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{Uploads: uploads, Logger: logger}
}

// Serve handles GET /uploads/*filepath.
func (h *UploadHandler) Serve(c *gin.Context) {
	raw := strings.Trim(c.Param("filepath"), "/")
	var segments []string
	if raw != "" {
		segments = strings.Split(raw, "/")
	}

	asset, err := h.Uploads.Open(segments)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAssetNotFound):
			c.String(http.StatusNotFound, "Not Found")
		case errors.Is(err, application.ErrOutsideRoot):
			c.String(http.StatusForbidden, "Forbidden")
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).WithField("path", raw).Error("asset read failed")
			}
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	// Cache for 1 year; uploaded assets never change in place.
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Header("Content-Type", asset.ContentType)
	c.File(asset.Path)
}
