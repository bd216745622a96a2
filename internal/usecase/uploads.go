package usecase

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// MaxUploadSize caps profile photos and certificate files at 5MiB before
// base64 expansion.
const MaxUploadSize = 5 << 20

var (
	ErrFileTooLarge = errors.New("file exceeds the 5MB limit")
	ErrNotAnImage   = errors.New("file is not an image")
)

// EncodeUpload turns an uploaded file into a data URL for inline storage on
// the document. When imageOnly is set, non-image uploads are rejected.
func EncodeUpload(contentType string, data []byte, imageOnly bool) (string, error) {
	if len(data) > MaxUploadSize {
		return "", ErrFileTooLarge
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(contentType)
	if imageOnly && !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
