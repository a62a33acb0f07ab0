package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOConfig holds MinIO connection configuration.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// MinIOStore uploads artifacts to a MinIO/S3 bucket and returns presigned
// retrieval URLs.
type MinIOStore struct {
	client  *minio.Client
	bucket  string
	expires time.Duration
}

// NewMinIOStore creates the storage client and ensures the bucket exists.
func NewMinIOStore(cfg MinIOConfig) (*MinIOStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	s := &MinIOStore{client: mc, bucket: cfg.Bucket, expires: 7 * 24 * time.Hour}
	// ensure bucket exists (idempotent)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		exist, xerr := mc.BucketExists(ctx, s.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return s, nil
}

func (s *MinIOStore) Store(ctx context.Context, filename string, data []byte, contentType string) (Artifact, error) {
	key := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filename)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return Artifact{}, &UploadError{Err: err}
	}
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.expires, make(url.Values))
	if err != nil {
		return Artifact{}, &UploadError{Err: err}
	}
	return Artifact{URL: presigned.String()}, nil
}
