package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
)

// ErrInvalidDataURI is returned when an inline reference cannot be decoded
var ErrInvalidDataURI = errors.New("invalid base64 data URI")

// ImageStore persists image bytes and returns the reference stored on the row
type ImageStore interface {
	// Save stores data under prefix and returns the image reference
	Save(ctx context.Context, prefix, filename, contentType string, data []byte) (string, error)
	// Delete removes a previously saved reference. Failures are logged, never returned.
	Delete(ctx context.Context, ref string)
	// Remote reports whether references point at object storage
	Remote() bool
}

var dataURIPattern = regexp.MustCompile(`^data:([^;]+);base64,(.+)$`)

// IsDataURI reports whether ref holds an inline image
func IsDataURI(ref string) bool {
	return strings.HasPrefix(ref, "data:")
}

// EncodeDataURI renders data as an inline base64 reference
func EncodeDataURI(contentType string, data []byte) string {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURI splits an inline reference into content type and bytes
func ParseDataURI(ref string) (string, []byte, error) {
	m := dataURIPattern.FindStringSubmatch(ref)
	if m == nil {
		return "", nil, ErrInvalidDataURI
	}
	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	return m[1], data, nil
}

// Extension picks the object key extension from the filename, falling back
// to the content type.
func Extension(filename, contentType string) string {
	if ext := strings.TrimPrefix(path.Ext(filename), "."); ext != "" {
		return strings.ToLower(ext)
	}
	switch {
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "gif"):
		return "gif"
	case strings.Contains(contentType, "webp"):
		return "webp"
	default:
		return "jpg"
	}
}

// BrandPrefix is the key prefix for brand logos
func BrandPrefix(id uint) string {
	return fmt.Sprintf("brands/%d", id)
}

// CategoryPrefix is the key prefix for category images
func CategoryPrefix(id uint) string {
	return fmt.Sprintf("categories/%d", id)
}

// ProductPrefix is the key prefix for a product's primary image
func ProductPrefix(id uint) string {
	return fmt.Sprintf("productos/%d", id)
}

// ProductGalleryPrefix is the key prefix for a product's gallery
func ProductGalleryPrefix(id uint) string {
	return fmt.Sprintf("productos/%d/gallery", id)
}
