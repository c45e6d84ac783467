package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"traineetracker/internal/storage"
)

const (
	DefaultMaxFileSize = 10 << 20 // 10 MB
	DefaultURLPrefix   = "/uploads"
)

// ErrStorage marks failures of the blob store, as opposed to the database.
var ErrStorage = errors.New("image storage failed")

// AllowedMimeTypes lists the image formats accepted for before/after photos.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/heic": true,
}

// Service stores the image bytes, then records where they live.
type Service struct {
	repo      Repository
	store     storage.Store
	urlPrefix string
	maxSize   int64
	now       func() time.Time
}

func NewService(repo Repository, store storage.Store, urlPrefix string, maxSize int64) *Service {
	if urlPrefix == "" {
		urlPrefix = DefaultURLPrefix
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	return &Service{
		repo:      repo,
		store:     store,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		maxSize:   maxSize,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) URLPrefix() string { return s.urlPrefix }

func (s *Service) MaxSize() int64 { return s.maxSize }

// Upload saves the image under a fresh server-chosen name and records it for
// the trainee. The trainee id is not checked for existence.
func (s *Service) Upload(ctx context.Context, traineeID int64, kind Kind, fileHeader *multipart.FileHeader) (*Upload, error) {
	if fileHeader == nil {
		return nil, ErrNoFile
	}
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > s.maxSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to sniff file: %w", err)
	}
	mimeType := strings.Split(mtype.String(), ";")[0]
	if !AllowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind file: %w", err)
	}

	now := s.now()
	name := fmt.Sprintf("%d-%s%s", now.UnixMilli(), uuid.NewString(), mtype.Extension())

	if err := s.store.Save(ctx, name, file, fileHeader.Size, mimeType); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	upload := &Upload{
		TraineeID:  traineeID,
		Type:       kind,
		FilePath:   s.urlPrefix + "/" + name,
		UploadedAt: now,
	}

	if err := s.repo.Create(ctx, upload); err != nil {
		// rollback file on DB error
		if derr := s.store.Delete(ctx, name); derr != nil {
			zerolog.Ctx(ctx).Warn().Err(derr).Str("name", name).Msg("failed to remove orphaned image")
		}
		return nil, fmt.Errorf("failed to save upload record: %w", err)
	}

	return upload, nil
}

// ListByTrainee returns the trainee's uploads, newest first.
func (s *Service) ListByTrainee(ctx context.Context, traineeID int64) ([]Upload, error) {
	uploads, err := s.repo.ListByTraineeID(ctx, traineeID)
	if err != nil {
		return nil, fmt.Errorf("list uploads for trainee %d: %w", traineeID, err)
	}
	return uploads, nil
}

// Sweep deletes stored images that no upload row points at. Images younger
// than minAge are kept: their row may still be on its way. With dryRun the
// candidates are only reported.
func (s *Service) Sweep(ctx context.Context, minAge time.Duration, dryRun bool) ([]string, error) {
	paths, err := s.repo.ListFilePaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("list upload paths: %w", err)
	}
	referenced := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		referenced[path.Base(p)] = struct{}{}
	}

	names, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	cutoff := s.now().Add(-minAge)
	var removed []string
	for _, name := range names {
		if _, ok := referenced[name]; ok {
			continue
		}
		if created, ok := createdAt(name); !ok || created.After(cutoff) {
			continue
		}
		if !dryRun {
			if err := s.store.Delete(ctx, name); err != nil && !errors.Is(err, storage.ErrNotFound) {
				return removed, fmt.Errorf("%w: %w", ErrStorage, err)
			}
		}
		removed = append(removed, name)
	}
	return removed, nil
}

// createdAt reads the millisecond timestamp every generated name starts with.
// Names not produced by Upload are never swept.
func createdAt(name string) (time.Time, bool) {
	prefix, _, ok := strings.Cut(name, "-")
	if !ok {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).UTC(), true
}
