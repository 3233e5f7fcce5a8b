package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

type localStorage struct {
	baseDir string
}

// NewLocalStorage creates a disk-backed ImageStorage rooted at baseDir.
// Stored references are bare generated file names; serving them back is the
// image route's job.
func NewLocalStorage(baseDir string) (ImageStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &localStorage{baseDir: baseDir}, nil
}

func (s *localStorage) UploadImage(ctx context.Context, r io.Reader, folder, fileName string) (string, error) {
	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	// Keep only the extension from the client-supplied name.
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(fileName))

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return name, nil
}

func (s *localStorage) DeleteImage(ctx context.Context, folder, ref string) error {
	// ref comes from our own UploadImage; refuse anything path-like.
	if ref != filepath.Base(ref) {
		return fmt.Errorf("invalid image reference: %s", ref)
	}

	err := os.Remove(filepath.Join(s.baseDir, folder, ref))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Resolve returns the on-disk path for a stored reference, or an error when
// the file does not exist. Used by the image serving route.
func (s *localStorage) Resolve(folder, ref string) (string, error) {
	if ref != filepath.Base(ref) {
		return "", fmt.Errorf("invalid image reference: %s", ref)
	}

	path := filepath.Join(s.baseDir, folder, ref)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}
