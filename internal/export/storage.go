package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/lixi-remit/lixi-landing/pkg/utils"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const csvContentType = "text/csv; charset=utf-8"

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
}

func StorageConfigFromEnv() StorageConfig {
	return StorageConfig{
		Endpoint:  utils.GetEnvTrimmed("MINIO_ENDPOINT"),
		AccessKey: utils.GetEnvTrimmed("MINIO_ACCESS_KEY"),
		SecretKey: utils.GetEnvTrimmed("MINIO_SECRET_KEY"),
		Bucket:    utils.GetEnvTrimmedOrDefault("MINIO_BUCKET", "lixi-exports"),
		UseSSL:    utils.GetEnvBool("MINIO_USE_SSL", false),
		Region:    utils.GetEnvTrimmedOrDefault("MINIO_REGION", "us-east-1"),
	}
}

func (c StorageConfig) Enabled() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != ""
}

// ObjectStore is an S3-compatible bucket.
type ObjectStore struct {
	client *minio.Client
	bucket string
}

func NewObjectStore(cfg StorageConfig) (*ObjectStore, error) {
	if !cfg.Enabled() {
		return nil, errors.New("export: MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("export: init minio client: %w", err)
	}

	return &ObjectStore{client: client, bucket: cfg.Bucket}, nil
}

func (s *ObjectStore) Bucket() string {
	return s.bucket
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *ObjectStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("export: bucket check: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("export: make bucket %q: %w", s.bucket, err)
	}
	return nil
}

// Ping reports whether the bucket is reachable and exists.
func (s *ObjectStore) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("export: bucket %q does not exist", s.bucket)
	}
	return nil
}

// UploadCSV stores data under key and returns the object location as bucket/key.
func (s *ObjectStore) UploadCSV(ctx context.Context, key string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: csvContentType,
	})
	if err != nil {
		return "", fmt.Errorf("export: upload %s: %w", key, err)
	}
	return s.bucket + "/" + key, nil
}
