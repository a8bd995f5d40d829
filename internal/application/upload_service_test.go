package application

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadFixture(t *testing.T) (*UploadService, string) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "products"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "products", "image.webp"), []byte("RIFFwebp"), 0o644))

	svc, err := NewUploadService(root, nil)
	require.NoError(t, err)
	return svc, root
}

func TestUploadOpen_ExistingFile(t *testing.T) {
	svc, _ := newUploadFixture(t)

	asset, err := svc.Open([]string{"products", "image.webp"})
	require.NoError(t, err)
	assert.Equal(t, "image/webp", asset.ContentType)
	assert.EqualValues(t, 8, asset.Size)

	data, err := os.ReadFile(asset.Path)
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFFwebp"), data)
}

func TestUploadOpen_UnknownExtensionDefaults(t *testing.T) {
	svc, root := newUploadFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "blob.qqq"), []byte("x"), 0o644))

	asset, err := svc.Open([]string{"blob.qqq"})
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", asset.ContentType)
}

func TestUploadOpen_MissingFile(t *testing.T) {
	svc, _ := newUploadFixture(t)
	_, err := svc.Open([]string{"missing.png"})
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestUploadOpen_EmptySegments(t *testing.T) {
	svc, _ := newUploadFixture(t)

	_, err := svc.Open(nil)
	assert.ErrorIs(t, err, ErrAssetNotFound)

	_, err = svc.Open([]string{"products", ""})
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestUploadOpen_DirectoryIsNotFound(t *testing.T) {
	svc, _ := newUploadFixture(t)
	_, err := svc.Open([]string{"products"})
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestUploadOpen_TraversalRejected(t *testing.T) {
	svc, root := newUploadFixture(t)

	// Plant a file just outside the root; the traversal must never reach it.
	outside := filepath.Join(filepath.Dir(root), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))

	_, err := svc.Open([]string{"..", filepath.Base(outside)})
	assert.ErrorIs(t, err, ErrOutsideRoot)

	_, err = svc.Open([]string{"..", "..", "etc", "passwd"})
	assert.ErrorIs(t, err, ErrOutsideRoot)

	_, err = svc.Open([]string{"products", "..", "..", "etc", "passwd"})
	assert.ErrorIs(t, err, ErrOutsideRoot)
}

func TestUploadOpen_SymlinkEscapeRejected(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	svc, root := newUploadFixture(t)

	outside := filepath.Join(filepath.Dir(root), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "sneaky.txt")))

	_, err := svc.Open([]string{"sneaky.txt"})
	assert.ErrorIs(t, err, ErrOutsideRoot)
}

func TestNewUploadService_MissingRoot(t *testing.T) {
	_, err := NewUploadService(filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrOutsideRoot))
}
