package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// PhotoStore persists staff photos on local disk under a fixed directory
// inside the public content root. Stored paths are recorded relative to
// the public root so they double as URLs for the static file handler.
type PhotoStore struct {
	publicRoot string
	photoDir   string
}

// NewPhotoStore constructs a store rooted at publicRoot with photos kept
// under the photoDir relative path (e.g. "uploads/staff").
func NewPhotoStore(publicRoot, photoDir string) *PhotoStore {
	return &PhotoStore{publicRoot: publicRoot, photoDir: photoDir}
}

// Store writes content under a collision-resistant name derived from a
// fresh UUID and the sanitized original file name, creating the photo
// directory on first use. It returns the stored path relative to the
// public root and never overwrites an existing file.
func (s *PhotoStore) Store(content []byte, originalName string) (string, error) {
	dir := filepath.Join(s.publicRoot, filepath.FromSlash(s.photoDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create photo dir: %w", err)
	}

	name := uuid.NewString() + "_" + sanitizeFileName(originalName)
	fullPath := filepath.Join(dir, name)

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return "", fmt.Errorf("write photo file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close photo file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(s.photoDir, name)), nil
}

// Delete removes the stored file at the given public-relative path. A
// missing file is not an error; a path escaping the photo directory is.
func (s *PhotoStore) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete photo file: %w", err)
	}
	return nil
}

// Exists reports whether a stored file is present at the given
// public-relative path.
func (s *PhotoStore) Exists(relPath string) bool {
	if relPath == "" {
		return false
	}
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return false
	}
	_, err = os.Stat(fullPath)
	return err == nil
}

func (s *PhotoStore) resolve(relPath string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(relPath))
	prefix := filepath.FromSlash(s.photoDir) + string(filepath.Separator)
	if !strings.HasPrefix(clean, prefix) {
		return "", fmt.Errorf("path %q outside photo directory", relPath)
	}
	return filepath.Join(s.publicRoot, clean), nil
}

func sanitizeFileName(name string) string {
	base := filepath.Base(filepath.FromSlash(name))
	base = unsafeNameChars.ReplaceAllString(base, "_")
	if base == "" || base == "." || base == ".." {
		base = "photo"
	}
	return base
}
