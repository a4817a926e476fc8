package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// formFile builds a real *multipart.FileHeader by round-tripping a form
// through the stdlib parser, the same way gin hands files to the saver.
func formFile(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func TestSaver_SaveImage(t *testing.T) {
	dir := t.TempDir()
	saver, err := NewSaver(dir)
	require.NoError(t, err)

	fh := formFile(t, "avatar.png", "image/png", []byte("not-really-a-png"))
	path, err := saver.SaveImage(fh)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(path, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, []byte("not-really-a-png"), data)
}

func TestSaver_SaveImage_RejectsBadExtension(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	require.NoError(t, err)

	fh := formFile(t, "payload.exe", "image/png", []byte("x"))
	_, err = saver.SaveImage(fh)
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestSaver_SaveImage_RejectsBadContentType(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	require.NoError(t, err)

	fh := formFile(t, "page.jpg", "text/html", []byte("<html>"))
	_, err = saver.SaveImage(fh)
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestSaver_SaveImage_RejectsOversize(t *testing.T) {
	dir := t.TempDir()
	saver, err := NewSaver(dir)
	require.NoError(t, err)

	// Size check happens before the file is opened, so a hand-built header
	// is enough to exercise the limit.
	fh := &multipart.FileHeader{Filename: "big.jpg", Size: MaxImageSize + 1}
	_, err = saver.SaveImage(fh)
	assert.ErrorIs(t, err, ErrTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing should be written for a rejected upload")
}
