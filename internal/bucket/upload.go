package bucket

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

const (
	folderInvoices  = "invoices"
	folderResources = "resources"
	folderProducts  = "products"
)

// uploadToBucket stores raw bytes under folder/name.ext and returns the CDN url.
func (b *Bucket) uploadToBucket(ctx context.Context, raw []byte, folder, name, contentType string) (string, error) {
	fp := b.constructFullPath(folder, name, fileExtensionFromContentType(contentType))

	r := bytes.NewReader(raw)
	_, err := b.cli.PutObject(ctx, b.S3BucketName, fp, r, int64(r.Len()), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "max-age=31536000",
		UserMetadata: map[string]string{"x-amz-acl": "public-read"},
	})
	if err != nil {
		return "", fmt.Errorf("error putting object: %w", err)
	}

	return b.getCDNURL(fp), nil
}

// UploadInvoice stores an invoice PDF for an order. Re-uploads get a new
// object so links already emailed keep working.
func (b *Bucket) UploadInvoice(ctx context.Context, raw []byte, orderUUID string) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("empty invoice")
	}
	if ct := detectContentType(raw); ct != contentTypePDF {
		return "", fmt.Errorf("invoice must be a pdf, got %s", ct)
	}
	name := fmt.Sprintf("%s-%s", orderUUID, time.Now().UTC().Format("20060102150405"))
	return b.uploadToBucket(ctx, raw, folderInvoices, name, contentTypePDF)
}

// UploadResource stores a downloadable file such as a sell sheet.
func (b *Bucket) UploadResource(ctx context.Context, raw []byte, name, contentType string) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("empty resource")
	}
	if contentType == "" {
		contentType = detectContentType(raw)
	}
	base := slugify(strings.TrimSuffix(name, path.Ext(name)))
	if base == "" {
		base = "resource"
	}
	return b.uploadToBucket(ctx, raw, folderResources, fmt.Sprintf("%s-%s", base, uuid.NewString()[:8]), contentType)
}
