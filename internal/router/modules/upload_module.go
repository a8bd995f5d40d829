package modules

import (
	"github.com/gin-gonic/gin"

	handlers "storefront/internal/interface/http"
)

// UploadModule serves uploaded assets. It mounts on the engine root, not
// under /api, so asset URLs map 1:1 to paths under the asset root.
type UploadModule struct {
	Handler *handlers.UploadHandler
}

func NewUploadModule(h *handlers.UploadHandler) *UploadModule {
	return &UploadModule{Handler: h}
}

func (m *UploadModule) Mount(e *gin.Engine) {
	e.GET("/uploads/*filepath", m.Handler.Serve)
}
