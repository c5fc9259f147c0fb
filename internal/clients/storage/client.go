package storage

import (
	"context"
	"fmt"
	"net/url"
	"stagepass/internal/observability"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client wraps an S3-compatible object store holding product files.
// Download links are presigned GETs so buyers never touch the bucket
// credentials.
type Client struct {
	minioClient *minio.Client
	bucket      string
	downloadTTL time.Duration
	logger      *observability.Logger
}

// Config contains object storage connection settings.
type Config struct {
	Endpoint    string
	AccessKey   string
	SecretKey   string
	Bucket      string
	Secure      bool
	DownloadTTL time.Duration
}

// New creates an object storage client.
func New(config Config, logger *observability.Logger) (*Client, error) {
	minioClient, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	return &Client{
		minioClient: minioClient,
		bucket:      config.Bucket,
		downloadTTL: config.DownloadTTL,
		logger:      logger,
	}, nil
}

// PresignedDownloadURL verifies the object exists and returns a time-limited
// download URL for it.
func (c *Client) PresignedDownloadURL(ctx context.Context, fileKey string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "file_key", Value: fileKey})

	_, err := c.minioClient.StatObject(ctx, c.bucket, fileKey, minio.StatObjectOptions{})
	if err != nil {
		c.logger.Error(ctx, "failed to stat product file", err)
		return "", fmt.Errorf("failed to stat product file: %w", err)
	}

	reqParams := make(url.Values)
	presigned, err := c.minioClient.PresignedGetObject(ctx, c.bucket, fileKey, c.downloadTTL, reqParams)
	if err != nil {
		c.logger.Error(ctx, "failed to presign download url", err)
		return "", fmt.Errorf("failed to presign download url: %w", err)
	}

	return presigned.String(), nil
}
