package bucket

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	objects map[string]minio.PutObjectOptions
	data    map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		objects: map[string]minio.PutObjectOptions{},
		data:    map[string][]byte{},
	}
}

func (f *fakeStore) PutObject(_ context.Context, _, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	if int64(len(raw)) != objectSize {
		return minio.UploadInfo{}, fmt.Errorf("size mismatch")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectName] = opts
	f.data[objectName] = raw
	return minio.UploadInfo{Key: objectName, Size: objectSize}, nil
}

func (f *fakeStore) RemoveObject(_ context.Context, _, objectName string, _ minio.RemoveObjectOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[objectName]; !ok {
		return fmt.Errorf("no such key")
	}
	delete(f.objects, objectName)
	delete(f.data, objectName)
	return nil
}

func testBucket() (*Bucket, *fakeStore) {
	fs := newFakeStore()
	return newBucket(&Config{
		S3BucketName:      "wholesale",
		S3Endpoint:        "fra1.digitaloceanspaces.com",
		BaseFolder:        "portal",
		SubdomainEndpoint: "files.example.com",
		ThumbnailWidth:    40,
		FullSizeWidth:     100,
	}, fs), fs
}

func testPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestUploadInvoice(t *testing.T) {
	b, fs := testBucket()
	ctx := context.Background()

	url, err := b.UploadInvoice(ctx, []byte("%PDF-1.4\n%test invoice"), "8c1f3a")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://files.example.com/portal/invoices/8c1f3a-"), url)
	assert.True(t, strings.HasSuffix(url, ".pdf"), url)

	key, err := b.objectKeyFromURL(url)
	require.NoError(t, err)
	assert.Equal(t, contentTypePDF, fs.objects[key].ContentType)

	_, err = b.UploadInvoice(ctx, []byte("not a pdf"), "8c1f3a")
	assert.Error(t, err)
	_, err = b.UploadInvoice(ctx, nil, "8c1f3a")
	assert.Error(t, err)
}

func TestUploadResourceAndDelete(t *testing.T) {
	b, fs := testBucket()
	ctx := context.Background()

	url, err := b.UploadResource(ctx, []byte("sku,price\n1,5.50\n"), "Spring Price List.csv", contentTypeCSV)
	require.NoError(t, err)
	assert.Contains(t, url, "/portal/resources/spring-price-list-")
	assert.True(t, strings.HasSuffix(url, ".csv"))
	assert.Len(t, fs.objects, 1)

	require.NoError(t, b.Delete(ctx, url))
	assert.Empty(t, fs.objects)

	assert.Error(t, b.Delete(ctx, "https://elsewhere.example.com/portal/x.pdf"))
}

func TestUploadProductImage(t *testing.T) {
	b, fs := testBucket()

	pi, err := b.UploadProductImage(context.Background(), testPNG(t, 200, 100), 7)
	require.NoError(t, err)
	assert.Contains(t, pi.FullSizeURL, "/portal/products/7-")
	assert.True(t, strings.HasSuffix(pi.ThumbnailURL, "-thumb.webp"))
	assert.NotEmpty(t, pi.Blurhash)
	assert.Len(t, fs.objects, 2)

	_, err = b.UploadProductImage(context.Background(), "data:image/gif;base64,R0lGOD", 7)
	assert.Error(t, err)
	_, err = b.UploadProductImage(context.Background(), "garbage", 7)
	assert.Error(t, err)
}

func TestResize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 300, 150))
	small := resize(img, 100)
	assert.Equal(t, 100, small.Bounds().Dx())
	assert.Equal(t, 50, small.Bounds().Dy())

	assert.Same(t, img, resize(img, 500))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "pdf", fileExtensionFromContentType("application/pdf"))
	assert.Equal(t, "plain", fileExtensionFromContentType("text/plain; charset=utf-8"))
	assert.Equal(t, "bin", fileExtensionFromContentType("weird"))

	assert.Equal(t, "spring-2024-sell-sheet", slugify("  Spring 2024 / Sell Sheet!! "))
	assert.Equal(t, "", slugify("***"))

	b, _ := testBucket()
	assert.Equal(t, "portal/invoices/x.pdf", b.constructFullPath("invoices", "x", "pdf"))
	b.SubdomainEndpoint = ""
	assert.Equal(t, "https://wholesale.fra1.digitaloceanspaces.com/portal/a.pdf", b.getCDNURL("portal/a.pdf"))
}
