package ports

import (
	"context"
	"io"
)

// StoredFile describes a persisted upload.
type StoredFile struct {
	// Path is the filesystem location of the stored file.
	Path string
	// URL is the public path under which the file is served.
	URL string
}

// FileStore persists uploaded files. Save streams from r, enforcing the
// store's size ceiling incrementally while copying, and generates a
// collision-free name preserving ext (which includes the leading dot).
type FileStore interface {
	Save(ctx context.Context, ext string, r io.Reader) (*StoredFile, error)
}
