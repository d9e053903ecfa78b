package bucket

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/bbrks/go-blurhash"
	"github.com/google/uuid"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	"golang.org/x/image/draw"
)

const (
	webpQuality      = 85
	thumbnailQuality = 70
	// blurhash is computed on a tiny copy, the hash only keeps low frequencies.
	blurhashWidth = 32
	blurhashX     = 4
	blurhashY     = 3
)

// getB64ImageFromString extracts the content type and the byte content from a raw base64 image string.
// The expected format of the raw base64 string is "data:[<mediatype>];base64,[<base64-data>]".
func getB64ImageFromString(rawB64Image string) (*B64Image, error) {
	const base64Prefix = ";base64,"
	parts := strings.Split(rawB64Image, base64Prefix)

	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid base64 image format: expected 'data:[mediatype];base64,[data]'")
	}

	return &B64Image{
		ContentType: strings.TrimPrefix(parts[0], "data:"),
		Content:     []byte(parts[1]),
	}, nil
}

func (b64Img *B64Image) b64ToImage() (image.Image, error) {
	reader := base64.NewDecoder(base64.StdEncoding, bytes.NewReader(b64Img.Content))
	switch b64Img.ContentType {
	case contentTypeJPEG:
		return jpeg.Decode(reader)
	case contentTypePNG:
		return png.Decode(reader)
	default:
		return nil, fmt.Errorf("b64ToImage: File type is not supported [%s]", b64Img.ContentType)
	}
}

func imageFromString(rawB64Image string) (image.Image, error) {
	b64Img, err := getB64ImageFromString(rawB64Image)
	if err != nil {
		return nil, err
	}
	return b64Img.b64ToImage()
}

// resize scales img down to maxWidth keeping the aspect ratio. Smaller images
// are returned as is.
func resize(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}
	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func encodeWebP(img image.Image, quality float32) ([]byte, error) {
	opts, err := encoder.NewLossyEncoderOptions(encoder.PresetPhoto, quality)
	if err != nil {
		return nil, fmt.Errorf("can't create webp options: %w", err)
	}
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, opts); err != nil {
		return nil, fmt.Errorf("can't encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func blurHash(img image.Image) (string, error) {
	hash, err := blurhash.Encode(blurhashX, blurhashY, resize(img, blurhashWidth))
	if err != nil {
		return "", fmt.Errorf("can't compute blurhash: %w", err)
	}
	return hash, nil
}

// UploadProductImage stores a full size webp, a thumbnail and returns both urls
// with the blurhash placeholder.
func (b *Bucket) UploadProductImage(ctx context.Context, rawB64Image string, productId int) (*entity.ProductImage, error) {
	img, err := imageFromString(rawB64Image)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 image: %w", err)
	}

	full, err := encodeWebP(resize(img, b.FullSizeWidth), webpQuality)
	if err != nil {
		return nil, err
	}
	thumb, err := encodeWebP(resize(img, b.ThumbnailWidth), thumbnailQuality)
	if err != nil {
		return nil, err
	}
	hash, err := blurHash(img)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%d-%s", productId, uuid.NewString()[:8])
	fullURL, err := b.uploadToBucket(ctx, full, folderProducts, name+"-og", contentTypeWEBP)
	if err != nil {
		return nil, fmt.Errorf("failed to upload full-size image: %w", err)
	}
	thumbURL, err := b.uploadToBucket(ctx, thumb, folderProducts, name+"-thumb", contentTypeWEBP)
	if err != nil {
		return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	return &entity.ProductImage{
		FullSizeURL:  fullURL,
		ThumbnailURL: thumbURL,
		Blurhash:     hash,
	}, nil
}
