package bucket

import (
	"context"
	"fmt"
	"io"

	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	S3AccessKey       string `mapstructure:"s3AccessKey"`
	S3SecretAccessKey string `mapstructure:"s3SecretAccessKey"`
	S3Endpoint        string `mapstructure:"s3Endpoint"`
	S3BucketName      string `mapstructure:"s3BucketName"`
	S3BucketLocation  string `mapstructure:"s3BucketLocation"`
	BaseFolder        string `mapstructure:"baseFolder"`
	SubdomainEndpoint string `mapstructure:"subdomainEndpoint"`
	// ThumbnailWidth is the max width of product thumbnails, in pixels.
	ThumbnailWidth int `mapstructure:"thumbnailWidth"`
	// FullSizeWidth caps the width of stored product images.
	FullSizeWidth int `mapstructure:"fullSizeWidth"`
}

// objectStore is the part of *minio.Client the bucket uses.
type objectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type Bucket struct {
	cli objectStore
	*Config
}

type B64Image struct {
	Content     []byte
	ContentType string
}

func (c *Config) New() (dependency.FileStore, error) {
	cli, err := minio.New(c.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.S3AccessKey, c.S3SecretAccessKey, ""),
		Secure: true,
		Region: c.S3BucketLocation,
	})
	if err != nil {
		return nil, fmt.Errorf("can't create minio client: %w", err)
	}
	return newBucket(c, cli), nil
}

func newBucket(c *Config, cli objectStore) *Bucket {
	if c.ThumbnailWidth <= 0 {
		c.ThumbnailWidth = 480
	}
	if c.FullSizeWidth <= 0 {
		c.FullSizeWidth = 2000
	}
	return &Bucket{
		cli:    cli,
		Config: c,
	}
}
