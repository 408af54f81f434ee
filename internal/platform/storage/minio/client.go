package minio

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrBucketNotFound = errors.New("bucket does not exist")

type Config interface {
	GetEndpoint() string
	GetAccessKey() string
	GetSecretKey() string
	GetUseSSL() bool
	GetBucket() string
	GetRegion() string
}

type Client struct {
	client   *minio.Client
	bucket   string
	endpoint string
	region   string
}

func New(cfg Config) (*Client, error) {
	client, err := minio.New(cfg.GetEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetAccessKey(), cfg.GetSecretKey(), ""),
		Secure: cfg.GetUseSSL(),
		Region: cfg.GetRegion(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &Client{
		client:   client,
		bucket:   cfg.GetBucket(),
		endpoint: cfg.GetEndpoint(),
		region:   cfg.GetRegion(),
	}, nil
}

func (c *Client) Bucket() string {
	return c.bucket
}

// HealthCheck reports whether the configured bucket is reachable. The returned
// info map is populated even when the check fails.
func (c *Client) HealthCheck(ctx context.Context) (map[string]any, error) {
	info := map[string]any{
		"bucket":   c.bucket,
		"endpoint": c.endpoint,
		"region":   c.region,
	}

	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return info, fmt.Errorf("failed to stat bucket %s: %w", c.bucket, err)
	}
	if !exists {
		return info, fmt.Errorf("%w: %s", ErrBucketNotFound, c.bucket)
	}

	location, err := c.client.GetBucketLocation(ctx, c.bucket)
	if err != nil {
		return info, fmt.Errorf("failed to get bucket location: %w", err)
	}
	if location != "" {
		info["region"] = location
	}
	return info, nil
}

// EnsureBucket creates the configured bucket when it is missing.
func (c *Client) EnsureBucket(ctx context.Context) (bool, error) {
	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return false, fmt.Errorf("failed to stat bucket %s: %w", c.bucket, err)
	}
	if exists {
		return false, nil
	}

	if err := c.client.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{Region: c.region}); err != nil {
		return false, fmt.Errorf("failed to create bucket %s: %w", c.bucket, err)
	}
	return true, nil
}
