package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "wrist-ranking-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildUpload assembles a multipart request and returns the parsed header,
// mirroring how gin hands files to the store.
func buildUpload(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="avatar"; filename="` + filename + `"`},
		"Content-Type":        {contentType},
	})
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["avatar"][0]
}

func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, 1024)
	require.NoError(t, err)

	t.Run("saves image under public prefix", func(t *testing.T) {
		file := buildUpload(t, "face.png", "image/png", []byte("png-bytes"))

		publicPath, err := store.Save(file)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(publicPath, "/uploads/"))
		assert.True(t, strings.HasSuffix(publicPath, ".png"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))

		store.Delete(publicPath)
	})

	t.Run("rejects non-image content type", func(t *testing.T) {
		file := buildUpload(t, "notes.txt", "text/plain", []byte("hello"))

		_, err := store.Save(file)
		assert.ErrorIs(t, err, apperrors.ErrUploadNotImage)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		big := bytes.Repeat([]byte("x"), 2048)
		file := buildUpload(t, "big.png", "image/png", big)

		_, err := store.Save(file)
		assert.ErrorIs(t, err, apperrors.ErrUploadTooLarge)
	})

	t.Run("rejects nil header", func(t *testing.T) {
		_, err := store.Save(nil)
		assert.ErrorIs(t, err, apperrors.ErrUploadMissing)
	})
}

func TestLocalStoreDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, 1024)
	require.NoError(t, err)

	t.Run("removes saved file", func(t *testing.T) {
		file := buildUpload(t, "face.jpg", "image/jpeg", []byte("jpg"))
		publicPath, err := store.Save(file)
		require.NoError(t, err)

		store.Delete(publicPath)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		store.Delete("/uploads/never-existed.png")
	})

	t.Run("empty path is a no-op", func(t *testing.T) {
		store.Delete("")
	})
}
