package upload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
)

const (
	MaxImageSize = 5 << 20  // 5 MB
	MaxVideoSize = 50 << 20 // 50 MB
)

var (
	ErrTooLarge    = errors.New("file exceeds the size limit")
	ErrBadMIMEType = errors.New("file type is not allowed")
)

var imageMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var videoMIMETypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/ogg":       true,
	"video/quicktime": true,
	"video/x-msvideo": true,
	"application/ogg": true,
}

// Kind classifies an upload for validation and bookkeeping.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Validate checks size and MIME type before a single byte is written to
// storage. The type is sniffed from content, not trusted from the client's
// Content-Type header.
func Validate(fh *multipart.FileHeader, kind Kind) (string, error) {
	limit := int64(MaxImageSize)
	if kind == KindVideo {
		limit = MaxVideoSize
	}
	if fh.Size > limit {
		return "", fmt.Errorf("%w (%d bytes, limit %d)", ErrTooLarge, fh.Size, limit)
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && n == 0 {
		return "", err
	}
	mimeType := http.DetectContentType(head[:n])

	allowed := imageMIMETypes
	if kind == KindVideo {
		allowed = videoMIMETypes
	}
	if !allowed[mimeType] {
		// image formats all sniff reliably, so images never fall back.
		// Video containers often sniff as octet-stream; for those the
		// declared type decides, as long as it is in the allow list.
		declared := fh.Header.Get("Content-Type")
		if kind != KindVideo || !videoMIMETypes[declared] {
			return "", fmt.Errorf("%w: %s", ErrBadMIMEType, mimeType)
		}
		mimeType = declared
	}
	return mimeType, nil
}
