package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/storage"
)

// contentTypes maps accepted upload extensions to the type they are served with.
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type UploadInput struct {
	FileHeader *multipart.FileHeader
	UserID     string
}

type Service interface {
	Upload(ctx context.Context, in UploadInput) (*File, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*File, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *File, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *File, error)
}

type service struct {
	repo         Repository
	storage      storage.Storage
	imgProc      *storage.ImageProcessor
	maxSizeBytes int64
	now          func() time.Time
}

// NewService builds the image service. maxSizeBytes <= 0 disables the size check.
func NewService(repo Repository, store storage.Storage, maxSizeBytes int64) Service {
	return &service{
		repo:         repo,
		storage:      store,
		imgProc:      storage.NewImageProcessor(200, 200),
		maxSizeBytes: maxSizeBytes,
		now:          time.Now,
	}
}

func (s *service) Upload(ctx context.Context, in UploadInput) (*File, error) {
	header := in.FileHeader
	if header == nil || header.Size == 0 {
		return nil, ErrEmpty
	}
	if s.maxSizeBytes > 0 && header.Size > s.maxSizeBytes {
		return nil, ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := contentTypes[ext]
	if !ok {
		return nil, ErrUnsupportedType
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Images are small enough to buffer; the limit guards against lying headers.
	reader := io.Reader(src)
	if s.maxSizeBytes > 0 {
		reader = io.LimitReader(src, s.maxSizeBytes+1)
	}
	fileBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}
	if s.maxSizeBytes > 0 && int64(len(fileBytes)) > s.maxSizeBytes {
		return nil, ErrTooLarge
	}

	// The extension must agree with the bytes.
	if !strings.HasPrefix(http.DetectContentType(fileBytes), "image/") {
		return nil, ErrUnsupportedType
	}

	fileID := uuid.NewString()

	// Sharding path: upload/ab/UUID.ext
	shard := fileID[:2]
	storagePath := fmt.Sprintf("upload/%s/%s%s", shard, fileID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("failed to save file to storage: %w", err)
	}

	var thumbnailPath *string
	thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(fileBytes))
	if err != nil {
		log.Printf("warning: thumbnail generation failed for %s: %v", fileID, err)
	} else {
		tPath := fmt.Sprintf("upload/%s/%s_thumb.jpg", shard, fileID)
		if err := s.storage.Save(ctx, tPath, thumbReader); err != nil {
			log.Printf("warning: failed to store thumbnail for %s: %v", fileID, err)
		} else {
			thumbnailPath = &tPath
		}
	}

	var userID *string
	if in.UserID != "" {
		userID = &in.UserID
	}

	f := &File{
		ID:            fileID,
		UserID:        userID,
		Filename:      filepath.Base(header.Filename),
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          int64(len(fileBytes)),
		CreatedAt:     s.now().UTC(),
	}

	if err := s.repo.Create(ctx, f); err != nil {
		s.removeBlobs(ctx, f)
		return nil, err
	}

	return f, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeBlobs(ctx, f)
	return nil
}

// removeBlobs is best effort: an orphaned blob is harmless, a failed request is not.
func (s *service) removeBlobs(ctx context.Context, f *File) {
	if err := s.storage.Delete(ctx, f.StoragePath); err != nil {
		log.Printf("warning: failed to delete %s: %v", f.StoragePath, err)
	}
	if f.ThumbnailPath != nil {
		if err := s.storage.Delete(ctx, *f.ThumbnailPath); err != nil {
			log.Printf("warning: failed to delete %s: %v", *f.ThumbnailPath, err)
		}
	}
}

func (s *service) Get(ctx context.Context, id string) (*File, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *File, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, f.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, nil, ErrNotFound.WithCause(err)
		}
		return nil, nil, fmt.Errorf("failed to retrieve file from storage: %w", err)
	}

	return stream, f, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *File, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if f.ThumbnailPath == nil {
		return nil, nil, ErrThumbnailUnavailable
	}

	stream, err := s.storage.Get(ctx, *f.ThumbnailPath)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, nil, ErrThumbnailUnavailable.WithCause(err)
		}
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}

	return stream, f, nil
}
