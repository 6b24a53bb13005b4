// Package images validates avatar and cover image values. An image value is
// either an http(s) URL pointing at an image file or an inline base64 data
// URI; both are persisted verbatim.
package images

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	// MaxInlineSize is the ceiling for a decoded inline (data URI) image.
	MaxInlineSize = 10 << 20 // 10 MiB

	// MaxUploadSize is the ceiling for a multipart file upload.
	MaxUploadSize = 5 << 20 // 5 MiB
)

var (
	// ErrInvalidFormat is returned when a value is neither a valid image URL
	// nor a valid image data URI.
	ErrInvalidFormat = errors.New("invalid image format")

	// ErrTooLarge is returned when an image exceeds its size ceiling.
	ErrTooLarge = errors.New("image too large")
)

// inlineTypes are the media subtypes accepted in data URIs.
var inlineTypes = []string{"jpeg", "png", "gif", "webp"}

// urlExtensions are the file extensions accepted in image URLs.
var urlExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// uploadTypes are the content types accepted for multipart uploads.
var uploadTypes = map[string]string{
	"image/jpeg": "jpeg",
	"image/png":  "png",
	"image/gif":  "gif",
}

// Validate checks an image value, returning ErrInvalidFormat or ErrTooLarge
// on rejection. Inline payloads are size-checked against MaxInlineSize.
func Validate(value string) error {
	if strings.HasPrefix(value, "data:image") {
		return validateInline(value)
	}
	return validateURL(value)
}

func validateInline(value string) error {
	var data string
	for _, t := range inlineTypes {
		prefix := "data:image/" + t + ";base64,"
		if strings.HasPrefix(value, prefix) {
			data = value[len(prefix):]
			break
		}
	}
	if data == "" {
		return ErrInvalidFormat
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return ErrInvalidFormat
	}
	if len(decoded) > MaxInlineSize {
		return ErrTooLarge
	}
	return nil
}

func validateURL(value string) error {
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidFormat
	}

	lower := strings.ToLower(u.Path)
	for _, ext := range urlExtensions {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}
	return ErrInvalidFormat
}

// EncodeUpload validates a raw uploaded image and returns it as a data URI.
// Only JPEG, PNG, and GIF uploads up to MaxUploadSize are accepted.
func EncodeUpload(data []byte, contentType string) (string, error) {
	subtype, ok := uploadTypes[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		return "", ErrInvalidFormat
	}
	if len(data) > MaxUploadSize {
		return "", ErrTooLarge
	}
	return fmt.Sprintf("data:image/%s;base64,%s", subtype, base64.StdEncoding.EncodeToString(data)), nil
}
