package application

import (
	"errors"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// ErrAssetNotFound covers empty paths, missing files and directories.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrOutsideRoot marks a path whose canonical resolution escapes the
	// asset root, i.e. a traversal attempt.
	ErrOutsideRoot = errors.New("path outside asset root")
)

// Asset describes a servable file under the upload root.
type Asset struct {
	Path        string
	ContentType string
	Size        int64
}

// UploadService resolves request path segments against a fixed asset root
// and refuses anything that escapes it. It is stateless and read-only.
type UploadService struct {
	root   string
	logger *logrus.Logger
}

// NewUploadService canonicalizes the asset root once up front. The root
// must exist; everything served later is compared against its resolved
// absolute path, so symlinked roots behave the same as plain ones.
func NewUploadService(root string, logger *logrus.Logger) (*UploadService, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}
	return &UploadService{root: resolved, logger: logger}, nil
}

// Root returns the canonical asset root directory.
func (s *UploadService) Root() string {
	return s.root
}

// Open resolves segments under the asset root and returns the file's
// metadata. Traversal attempts fail with ErrOutsideRoot before any disk
// read of the target; missing files and directories fail with
// ErrAssetNotFound; other I/O failures surface as-is.
func (s *UploadService) Open(segments []string) (*Asset, error) {
	if len(segments) == 0 {
		return nil, ErrAssetNotFound
	}
	for _, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			return nil, ErrAssetNotFound
		}
	}

	joined := filepath.Join(append([]string{s.root}, segments...)...)

	// Lexical containment check first: Join already collapsed any "..",
	// so a path that climbed out of the root is caught without touching
	// the filesystem at all.
	if !s.contains(joined) {
		s.warnTraversal(segments, joined)
		return nil, ErrOutsideRoot
	}

	// Then resolve symlinks and re-check, so a link inside the root
	// cannot point the request at a file outside it.
	resolved, err := filepath.EvalSymlinks(joined)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAssetNotFound
		}
		// Unresolvable paths are rejected, never passed through.
		s.warnTraversal(segments, joined)
		return nil, ErrOutsideRoot
	}
	if !s.contains(resolved) {
		s.warnTraversal(segments, resolved)
		return nil, ErrOutsideRoot
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrAssetNotFound
	}

	ct := mime.TypeByExtension(filepath.Ext(resolved))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &Asset{Path: resolved, ContentType: ct, Size: info.Size()}, nil
}

func (s *UploadService) contains(path string) bool {
	return path == s.root || strings.HasPrefix(path, s.root+string(filepath.Separator))
}

func (s *UploadService) warnTraversal(segments []string, path string) {
	if s.logger == nil {
		return
	}
	s.logger.WithFields(logrus.Fields{
		"segments": strings.Join(segments, "/"),
		"resolved": path,
	}).Warn("upload path escapes asset root")
}
