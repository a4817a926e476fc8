// Package upload stores post images on local disk. Files are fully buffered
// by the multipart parser before they reach this package; there is no
// streaming path.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const MaxImageSize = 5 << 20 // 5 MB

var (
	ErrTooLarge   = errors.New("image exceeds 5MB limit")
	ErrNotAnImage = errors.New("only image files are allowed")
	allowedExts   = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true}
)

// Saver writes validated images into a fixed directory and hands back the
// public path they will be served under.
type Saver struct {
	dir string
}

// NewSaver ensures the target directory exists.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Saver{dir: dir}, nil
}

// SaveImage validates extension, declared content type and size, then writes
// the file as <unix-nano><ext>. The returned path is relative to the static
// mount ("/uploads/...").
func (s *Saver) SaveImage(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxImageSize {
		return "", ErrTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExts[ext] {
		return "", ErrNotAnImage
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return "", ErrNotAnImage
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
