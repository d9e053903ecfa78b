package bucket

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/minio/minio-go/v7"
)

// Delete removes the object behind a url previously returned by an upload.
func (b *Bucket) Delete(ctx context.Context, url string) error {
	key, err := b.objectKeyFromURL(url)
	if err != nil {
		return err
	}
	if err := b.cli.RemoveObject(ctx, b.S3BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		slog.Default().ErrorContext(ctx, "failed to delete object from s3 bucket",
			slog.String("object_key", key),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("can't delete object: %w", err)
	}
	return nil
}
