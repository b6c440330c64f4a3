package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/file"
)

// ImageUploader stores the optional image attached to a multipart form
// and removes it again when the surrounding operation fails.
type ImageUploader struct {
	fileService file.Service
}

func NewImageUploader(fileService file.Service) *ImageUploader {
	return &ImageUploader{fileService: fileService}
}

// FromForm uploads the file in field. It returns (nil, nil) when the field is absent.
func (u *ImageUploader) FromForm(c *gin.Context, field string) (*file.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, file.ErrInvalidForm.WithCause(err)
	}

	return u.fileService.Upload(c.Request.Context(), file.UploadInput{
		FileHeader: header,
		UserID:     auth.GetUserID(c),
	})
}

// Discard deletes a file uploaded earlier in the request. Nil is a no-op.
func (u *ImageUploader) Discard(ctx context.Context, f *file.File) {
	if f == nil {
		return
	}
	if err := u.fileService.Delete(ctx, f.ID); err != nil {
		log.Printf("warning: failed to roll back upload %s: %v", f.ID, err)
	}
}

// Replace deletes the previous image after a successful swap. Nil is a no-op.
func (u *ImageUploader) Replace(ctx context.Context, previousID *string) {
	if previousID == nil {
		return
	}
	if err := u.fileService.Delete(ctx, *previousID); err != nil && !errors.Is(err, file.ErrNotFound) {
		log.Printf("warning: failed to delete replaced image %s: %v", *previousID, err)
	}
}
