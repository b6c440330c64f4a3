package file

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound             = apperror.NotFound("file not found")
	ErrThumbnailUnavailable = apperror.NotFound("thumbnail not available for this file")
	ErrUnsupportedType      = apperror.BadRequest("only jpeg, jpg, png and webp images are allowed")
	ErrTooLarge             = apperror.BadRequest("file exceeds the maximum upload size")
	ErrEmpty                = apperror.BadRequest("file is empty")
	ErrInvalidForm          = apperror.BadRequest("invalid multipart form")
)

// File is an uploaded image with an optional JPEG thumbnail.
type File struct {
	ID            string
	UserID        *string
	Filename      string
	StoragePath   string  // internal path
	ThumbnailPath *string // internal path
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// FileURL returns the public URL for accessing a file by its ID.
func FileURL(id string) string {
	return "/files/" + id
}

// ThumbnailURL returns the public URL for accessing a file's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/files/" + id + "/thumbnail"
}

// OptionalURL returns FileURL for a possibly missing file reference.
func OptionalURL(id *string) *string {
	if id == nil {
		return nil
	}
	u := FileURL(*id)
	return &u
}
