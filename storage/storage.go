package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"lms/config"

	"github.com/google/uuid"
)

// Storage keeps uploaded files and hands back a reference to them.
type Storage interface {
	Save(ctx context.Context, folder string, file *multipart.FileHeader) (string, error)
	URL(ctx context.Context, ref string) string
}

// Files is the storage used by the HTTP handlers.
var Files Storage

// Init builds Files from the configured driver.
func Init(cfg *config.Config) error {
	switch cfg.StorageDriver {
	case "local", "":
		Files = NewLocal(cfg.MediaRoot, "/media")
		return nil
	case "minio":
		s, err := NewMinio(context.Background(), MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			return err
		}
		Files = s
		return nil
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

// objectName returns "<folder>/<uuid><ext>" with a forward-slash separator.
func objectName(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join(strings.Trim(folder, "/"), uuid.NewString()+ext)
}

func contentType(file *multipart.FileHeader) string {
	if ct := file.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
