package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLTTL    time.Duration
}

// Minio stores uploads as objects in a single bucket.
type Minio struct {
	client *minio.Client
	bucket string
	urlTTL time.Duration
}

func NewMinio(ctx context.Context, cfg MinioConfig) (*Minio, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	ttl := cfg.URLTTL
	if ttl == 0 {
		ttl = time.Hour
	}
	return &Minio{client: client, bucket: cfg.Bucket, urlTTL: ttl}, nil
}

func (m *Minio) Save(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := objectName(folder, file.Filename)
	_, err = m.client.PutObject(ctx, m.bucket, key, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType(file),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return key, nil
}

// URL returns a presigned GET URL, or "" when signing fails.
func (m *Minio) URL(ctx context.Context, ref string) string {
	if ref == "" {
		return ""
	}
	u, err := m.client.PresignedGetObject(ctx, m.bucket, ref, m.urlTTL, nil)
	if err != nil {
		log.Error().Err(err).Str("object", ref).Msg("presign failed")
		return ""
	}
	return u.String()
}
