package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/errors"
)

type formFile struct {
	name    string
	content []byte
}

// buildForm assembles a parsed multipart form with files under field, in
// the given order.
func buildForm(t *testing.T, field string, files []formFile) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile(field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form
}

func newLocalIngester(t *testing.T) (*Ingester, string) {
	t.Helper()
	dir := t.TempDir()
	local, err := NewLocal(dir)
	require.NoError(t, err)
	return NewIngester(local), dir
}

func TestIngester_Single(t *testing.T) {
	ingester, dir := newLocalIngester(t)

	form := buildForm(t, "image", []formFile{{name: "cover.png", content: []byte("png-bytes")}})
	addr, err := ingester.Single(context.Background(), form, "image")
	require.NoError(t, err)

	// Address is a relative path under the uploads root with the original
	// extension preserved.
	assert.True(t, strings.HasPrefix(addr, filepath.Base(dir)+"/"))
	assert.True(t, strings.HasSuffix(addr, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(addr)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestIngester_Single_MissingFileIsNotAnError(t *testing.T) {
	ingester, _ := newLocalIngester(t)

	addr, err := ingester.Single(context.Background(), nil, "image")
	require.NoError(t, err)
	assert.Empty(t, addr)

	form := buildForm(t, "other", []formFile{{name: "a.png", content: []byte("x")}})
	addr, err = ingester.Single(context.Background(), form, "image")
	require.NoError(t, err)
	assert.Empty(t, addr)
}

func TestIngester_Multi_PreservesOrder(t *testing.T) {
	ingester, dir := newLocalIngester(t)

	form := buildForm(t, "images", []formFile{
		{name: "first.png", content: []byte("1")},
		{name: "second.jpg", content: []byte("2")},
		{name: "third.webp", content: []byte("3")},
	})
	addrs, err := ingester.Multi(context.Background(), form, "images", 10)
	require.NoError(t, err)
	require.Len(t, addrs, 3)

	assert.True(t, strings.HasSuffix(addrs[0], ".png"))
	assert.True(t, strings.HasSuffix(addrs[1], ".jpg"))
	assert.True(t, strings.HasSuffix(addrs[2], ".webp"))

	for i, addr := range addrs {
		data, err := os.ReadFile(filepath.Join(dir, filepath.Base(addr)))
		require.NoError(t, err)
		assert.Equal(t, []byte{byte('1' + i)}, data)
	}
}

func TestIngester_Multi_AllOrNothing(t *testing.T) {
	ingester, _ := newLocalIngester(t)

	// The second file has a rejected type; no addresses may be reported back.
	form := buildForm(t, "images", []formFile{
		{name: "ok.png", content: []byte("1")},
		{name: "payload.exe", content: []byte("2")},
	})
	addrs, err := ingester.Multi(context.Background(), form, "images", 10)
	assert.ErrorIs(t, err, errors.ErrUpload)
	assert.Nil(t, addrs)
}

func TestIngester_Multi_CountCap(t *testing.T) {
	ingester, _ := newLocalIngester(t)

	form := buildForm(t, "images", []formFile{
		{name: "a.png", content: []byte("1")},
		{name: "b.png", content: []byte("2")},
		{name: "c.png", content: []byte("3")},
	})
	_, err := ingester.Multi(context.Background(), form, "images", 2)
	assert.ErrorIs(t, err, errors.ErrUpload)
}

func TestIngester_RejectsOversizeFile(t *testing.T) {
	ingester, _ := newLocalIngester(t)

	form := buildForm(t, "image", []formFile{
		{name: "huge.png", content: make([]byte, MaxFileSize+1)},
	})
	_, err := ingester.Single(context.Background(), form, "image")
	assert.ErrorIs(t, err, errors.ErrUpload)
}

func TestIngester_RejectsUnsupportedType(t *testing.T) {
	ingester, _ := newLocalIngester(t)

	form := buildForm(t, "image", []formFile{
		{name: "notes.txt", content: []byte("hello")},
	})
	_, err := ingester.Single(context.Background(), form, "image")
	assert.ErrorIs(t, err, errors.ErrUpload)
}
