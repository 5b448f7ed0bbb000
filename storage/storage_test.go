package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lms/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestLocalSave(t *testing.T) {
	root := t.TempDir()
	s := NewLocal(root, "/media/")

	ref, err := s.Save(context.Background(), "/course/", fileHeader(t, "Logo.PNG", []byte("png-bytes")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "course/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(ref)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	assert.Equal(t, "/media/"+ref, s.URL(context.Background(), ref))
	assert.Equal(t, "", s.URL(context.Background(), ""))
}

func TestLocalSaveUsesUniqueNames(t *testing.T) {
	s := NewLocal(t.TempDir(), "/media")

	a, err := s.Save(context.Background(), "course", fileHeader(t, "a.jpg", []byte("1")))
	require.NoError(t, err)
	b, err := s.Save(context.Background(), "course", fileHeader(t, "a.jpg", []byte("2")))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestInit(t *testing.T) {
	require.NoError(t, Init(&config.Config{StorageDriver: "local", MediaRoot: t.TempDir()}))
	assert.IsType(t, &Local{}, Files)

	assert.Error(t, Init(&config.Config{StorageDriver: "ftp"}))
}
