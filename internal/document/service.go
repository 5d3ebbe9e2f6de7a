package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hotelworks/hotel-ops-backend/internal/employee"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/storage"
)

type Service interface {
	Upload(ctx context.Context, header *multipart.FileHeader, employeeID string) (*Document, error)
	GetByID(ctx context.Context, id string) (*Document, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*Document, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Document, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Document, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo            Repository
	employeeService employee.Service
	storage         storage.Storage
	imgProc         *storage.ImageProcessor
}

func NewService(repo Repository, employeeService employee.Service, store storage.Storage) Service {
	return &service{
		repo:            repo,
		employeeService: employeeService,
		storage:         store,
		imgProc:         storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, header *multipart.FileHeader, employeeID string) (*Document, error) {
	if header.Size > MaxUploadSize {
		return nil, ErrTooLarge
	}

	if _, err := s.employeeService.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded document failed: %w", err)
	}
	defer src.Close()

	// Buffered so the bytes can feed both the store and the thumbnailer.
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read uploaded document failed: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(header.Filename))

	docID := uuid.New().String()

	// Shard by the first two id chars to keep directories small.
	shard := docID[:2]
	storagePath := fmt.Sprintf("documents/%s/%s%s", shard, docID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("save document failed: %w", err)
	}

	// Image uploads get a thumbnail; a failed thumbnail never fails the
	// upload itself.
	var thumbnailPath *string
	if strings.HasPrefix(contentType, "image/") {
		thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(content), 200, 200)
		if err == nil {
			tPath := fmt.Sprintf("documents/%s/%s_thumb.jpg", shard, docID)
			if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
				thumbnailPath = &tPath
			}
		}
	}

	d := &Document{
		ID:            docID,
		EmployeeID:    employeeID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return d, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Document, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]*Document, error) {
	return s.repo.ListByEmployee(ctx, employeeID)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Document, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, d.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve document failed: %w", err)
	}
	return stream, d, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Document, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if d.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *d.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve thumbnail failed: %w", err)
	}
	return stream, d, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Best effort storage cleanup; the metadata row is authoritative.
	_ = s.storage.Delete(ctx, d.StoragePath)
	if d.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *d.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}
