package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sony/gobreaker/v2"

	"github.com/tair/catalog-service/pkg/logger"
)

// Config holds object storage configuration
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
	UseSSL    bool
}

// ObjectClient is the subset of the S3 client used by ObjectStore
type ObjectClient interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// ObjectStore uploads images to an S3 compatible bucket (R2, MinIO, S3)
type ObjectStore struct {
	client    ObjectClient
	bucket    string
	publicURL string
	breaker   *gobreaker.CircuitBreaker[minio.UploadInfo]
	now       func() time.Time
}

// NewMinioClient connects to the configured endpoint
func NewMinioClient(cfg Config) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}
	return client, nil
}

// NewObjectStore creates a bucket backed image store
func NewObjectStore(client ObjectClient, cfg Config) *ObjectStore {
	breaker := gobreaker.NewCircuitBreaker[minio.UploadInfo](gobreaker.Settings{
		Name:        "object-storage",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Logger.Warn().
				Str("circuit", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	})

	return &ObjectStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		breaker:   breaker,
		now:       time.Now,
	}
}

// Save uploads data to <prefix>/<unix-millis>.<ext> and returns its public URL
func (s *ObjectStore) Save(ctx context.Context, prefix, filename, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("%s/%d.%s", prefix, s.now().UnixMilli(), Extension(filename, contentType))

	_, err := s.breaker.Execute(func() (minio.UploadInfo, error) {
		return s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: contentType,
		})
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	logger.Debug(ctx).Str("key", key).Int("size", len(data)).Msg("Image uploaded")
	return s.publicURL + "/" + key, nil
}

// Delete removes the object behind ref when it lives in this bucket
func (s *ObjectStore) Delete(ctx context.Context, ref string) {
	key, ok := s.keyOf(ref)
	if !ok {
		return
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Failed to delete superseded image")
	}
}

// Remote always reports true
func (s *ObjectStore) Remote() bool {
	return true
}

func (s *ObjectStore) keyOf(ref string) (string, bool) {
	if ref == "" || !strings.HasPrefix(ref, s.publicURL+"/") {
		return "", false
	}
	return strings.TrimPrefix(ref, s.publicURL+"/"), true
}
