// Package storage persists uploaded listing images on local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/rentit/campus-rentals-api/internal/core/domain"
	"github.com/rentit/campus-rentals-api/internal/core/ports"
)

// MaxUploadBytes is the upload size ceiling. A file of exactly this size is
// accepted; one byte more is rejected.
const MaxUploadBytes = 10 << 20 // 10 MiB

// LocalStore writes uploads to a directory served statically by the router.
// Filenames are random UUIDs with the original extension preserved, so
// concurrent uploads cannot collide.
type LocalStore struct {
	dir        string
	publicPath string
}

// NewLocalStore creates the uploads directory if it does not exist and
// returns a store that maps stored files to publicPath (e.g. "/uploads").
func NewLocalStore(dir, publicPath string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStore{dir: dir, publicPath: publicPath}, nil
}

// Save streams r to disk under a generated name. The size ceiling is enforced
// while copying: reading stops one byte past the limit and the partial file
// is removed, so an oversized body is never buffered in full.
func (s *LocalStore) Save(ctx context.Context, ext string, r io.Reader) (*ports.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(r, MaxUploadBytes+1))
	closeErr := f.Close()

	switch {
	case err != nil:
		_ = os.Remove(dst)
		return nil, fmt.Errorf("write upload: %w", err)
	case n > MaxUploadBytes:
		_ = os.Remove(dst)
		return nil, domain.ErrImageTooLarge
	case closeErr != nil:
		_ = os.Remove(dst)
		return nil, fmt.Errorf("close upload: %w", closeErr)
	}

	return &ports.StoredFile{
		Path: dst,
		URL:  path.Join(s.publicPath, name),
	}, nil
}
