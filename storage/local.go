package storage

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// Local writes uploads below a root directory that is served statically.
type Local struct {
	Root    string
	BaseURL string
}

func NewLocal(root, baseURL string) *Local {
	return &Local{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (l *Local) Save(_ context.Context, folder string, file *multipart.FileHeader) (string, error) {
	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ref := objectName(folder, file.Filename)
	filePath := filepath.Join(l.Root, filepath.FromSlash(ref))

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", err
	}

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return ref, nil
}

func (l *Local) URL(_ context.Context, ref string) string {
	if ref == "" {
		return ""
	}
	return l.BaseURL + "/" + ref
}
