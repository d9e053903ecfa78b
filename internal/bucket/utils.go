package bucket

import (
	"fmt"
	"net/http"
	"path"
	"strings"
	"unicode"
)

const (
	contentTypeJPEG = "image/jpeg"
	contentTypePNG  = "image/png"
	contentTypeWEBP = "image/webp"
	contentTypePDF  = "application/pdf"
	contentTypeCSV  = "text/csv"
)

func fileExtensionFromContentType(contentType string) string {
	switch contentType {
	case contentTypeJPEG:
		return "jpg"
	case contentTypePNG:
		return "png"
	case contentTypeWEBP:
		return "webp"
	case contentTypePDF:
		return "pdf"
	case contentTypeCSV:
		return "csv"
	default:
		ct, _, _ := strings.Cut(contentType, ";")
		parts := strings.Split(ct, "/")
		if len(parts) > 1 {
			return parts[1]
		}
		return "bin"
	}
}

func detectContentType(raw []byte) string {
	ct, _, _ := strings.Cut(http.DetectContentType(raw), ";")
	return ct
}

func (b *Bucket) constructFullPath(folder, fileName, ext string) string {
	return path.Clean(path.Join(b.BaseFolder, folder, fileName) + "." + ext)
}

func (b *Bucket) cdnPrefix() string {
	if b.SubdomainEndpoint != "" {
		return fmt.Sprintf("https://%s/", b.SubdomainEndpoint)
	}
	return fmt.Sprintf("https://%s.%s/", b.S3BucketName, b.S3Endpoint)
}

func (b *Bucket) getCDNURL(filePath string) string {
	return b.cdnPrefix() + filePath
}

// objectKeyFromURL reverses getCDNURL.
func (b *Bucket) objectKeyFromURL(url string) (string, error) {
	key, ok := strings.CutPrefix(url, b.cdnPrefix())
	if !ok || key == "" {
		return "", fmt.Errorf("url %q does not belong to bucket %s", url, b.S3BucketName)
	}
	return key, nil
}

// slugify keeps lower case letters, digits and dashes.
func slugify(s string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			sb.WriteRune(r)
			dash = false
		case !dash && sb.Len() > 0:
			sb.WriteRune('-')
			dash = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
