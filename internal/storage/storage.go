package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"portfolio/internal/errors"
)

// MaxFileSize is the per-file upload limit.
const MaxFileSize = 5 << 20 // 5 MiB

// allowedExtensions restricts uploads to image types.
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Storage resolves one uploaded binary to a stable address. The address is
// an opaque string to callers: a relative path for the local backend, a
// durable URL for the S3 backend.
type Storage interface {
	Save(ctx context.Context, name string, contentType string, r io.Reader, size int64) (string, error)
}

// Ingester binds multipart form files to storage addresses.
type Ingester struct {
	store Storage
}

// NewIngester creates an ingester over the given backend.
func NewIngester(store Storage) *Ingester {
	return &Ingester{store: store}
}

// Single resolves the one file under field to an address. A missing file is
// not an error; the returned address is empty.
func (i *Ingester) Single(ctx context.Context, form *multipart.Form, field string) (string, error) {
	if form == nil {
		return "", nil
	}
	files := form.File[field]
	if len(files) == 0 {
		return "", nil
	}
	return i.saveOne(ctx, files[0])
}

// Multi resolves every file under field to an ordered list of addresses.
// The batch is all-or-nothing: any individual failure fails the whole
// ingestion so the owning resource is never created with a partial gallery.
func (i *Ingester) Multi(ctx context.Context, form *multipart.Form, field string, max int) ([]string, error) {
	if form == nil {
		return nil, nil
	}
	files := form.File[field]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > max {
		return nil, fmt.Errorf("%w: at most %d files allowed for %q", errors.ErrUpload, max, field)
	}

	addresses := make([]string, 0, len(files))
	for _, fh := range files {
		addr, err := i.saveOne(ctx, fh)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}

func (i *Ingester) saveOne(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: unsupported file type %q", errors.ErrUpload, ext)
	}
	if fh.Size > MaxFileSize {
		return "", fmt.Errorf("%w: file %q exceeds size limit", errors.ErrUpload, fh.Filename)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open %q: %v", errors.ErrUpload, fh.Filename, err)
	}
	defer src.Close()

	addr, err := i.store.Save(ctx, fh.Filename, contentType, src, fh.Size)
	if err != nil {
		return "", fmt.Errorf("%w: store %q: %v", errors.ErrUpload, fh.Filename, err)
	}
	return addr, nil
}
