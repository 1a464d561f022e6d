package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Local writes uploads under a root directory served statically by the
// router. Addresses are relative paths like "uploads/<uuid>.png".
type Local struct {
	root   string
	prefix string
}

// NewLocal creates a local backend rooted at dir. The directory is created
// if absent.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Local{root: dir, prefix: filepath.Base(dir)}, nil
}

// Save writes the file under a collision-free name and returns its
// relative address.
func (l *Local) Save(ctx context.Context, name string, contentType string, r io.Reader, size int64) (string, error) {
	key := uniqueName(name)
	dst, err := os.Create(filepath.Join(l.root, key))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	return path.Join(l.prefix, key), nil
}

// uniqueName keeps the original extension but replaces the stem with a
// fresh uuid so concurrent uploads of the same filename never collide.
func uniqueName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.NewString() + ext
}
