package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/application"
)

func newUploadRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "products"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "products", "image.webp"), []byte("RIFFwebp"), 0o644))

	svc, err := application.NewUploadService(root, nil)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/uploads/*filepath", NewUploadHandler(svc, nil).Serve)
	return r, root
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestServeUpload_ExistingFile(t *testing.T) {
	r, _ := newUploadRouter(t)

	w := get(r, "/uploads/products/image.webp")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "RIFFwebp", w.Body.String())
	assert.Equal(t, "image/webp", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000, immutable", w.Header().Get("Cache-Control"))
}

func TestServeUpload_MissingFile(t *testing.T) {
	r, _ := newUploadRouter(t)

	w := get(r, "/uploads/missing.png")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", w.Body.String())
}

func TestServeUpload_EmptyPath(t *testing.T) {
	r, _ := newUploadRouter(t)

	w := get(r, "/uploads/")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServeUpload_TraversalForbidden(t *testing.T) {
	r, root := newUploadRouter(t)

	// Target exists outside the root and must stay unreadable.
	outside := filepath.Join(filepath.Dir(root), "passwd")
	require.NoError(t, os.WriteFile(outside, []byte("root:x:0:0"), 0o644))

	w := get(r, "/uploads/../passwd")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden", w.Body.String())

	w = get(r, "/uploads/../../../../etc/passwd")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestServeUpload_DirectoryNotFound(t *testing.T) {
	r, _ := newUploadRouter(t)

	w := get(r, "/uploads/products")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
