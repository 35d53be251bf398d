package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/nkoroi/county-league/internal/domain/media"
	"github.com/nkoroi/county-league/internal/platform/blobstore"
)

// BlobStore is the file backend uploads land in. Save returns the
// storage-relative reference recorded against the media row.
type BlobStore interface {
	Save(name string, r io.Reader) (string, error)
}

type UploadMediaInput struct {
	FileName   string
	Content    io.Reader
	Caption    string
	MatchID    *int64
	TeamID     *int64
	PlayerID   *int64
	UploadedBy *int64
}

type MediaService struct {
	media media.Repository
	blobs BlobStore
}

func NewMediaService(mediaRepo media.Repository, blobs BlobStore) *MediaService {
	return &MediaService{media: mediaRepo, blobs: blobs}
}

// Upload stores the file and records it. The media row is written after
// the blob, so a failed write leaves no dangling reference.
func (s *MediaService) Upload(ctx context.Context, in UploadMediaInput) (*media.Item, error) {
	ctx, span := startUsecaseSpan(ctx, "MediaService.Upload")
	defer span.End()

	if in.Content == nil || strings.TrimSpace(in.FileName) == "" {
		return nil, fmt.Errorf("%w: file is required", ErrValidation)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(in.FileName), "."))
	fileType, ok := media.TypeForExt(ext)
	if !ok {
		return nil, fmt.Errorf("%w: file type %q is not allowed", ErrValidation, ext)
	}

	ref, err := s.blobs.Save(in.FileName, in.Content)
	if err != nil {
		switch {
		case errors.Is(err, blobstore.ErrUnsupportedType),
			errors.Is(err, blobstore.ErrTooLarge),
			errors.Is(err, blobstore.ErrEmptyName):
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, fmt.Errorf("store upload: %w", err)
	}

	item := media.Item{
		FileRef:    ref,
		FileType:   fileType,
		Caption:    strings.TrimSpace(in.Caption),
		MatchID:    in.MatchID,
		TeamID:     in.TeamID,
		PlayerID:   in.PlayerID,
		UploadedBy: in.UploadedBy,
		IsActive:   true,
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.media.Create(ctx, &item); err != nil {
		return nil, wrapRepoErr("create media", err)
	}
	return &item, nil
}

func (s *MediaService) Get(ctx context.Context, id int64) (*media.Item, error) {
	ctx, span := startUsecaseSpan(ctx, "MediaService.Get")
	defer span.End()

	item, err := s.media.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr("get media", err)
	}
	return item, nil
}

func (s *MediaService) ListByMatch(ctx context.Context, matchID int64) ([]media.Item, error) {
	ctx, span := startUsecaseSpan(ctx, "MediaService.ListByMatch")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrValidation)
	}

	items, err := s.media.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match media: %w", err)
	}
	return items, nil
}

func (s *MediaService) SoftDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "MediaService.SoftDelete")
	defer span.End()

	if err := s.media.SoftDelete(ctx, id); err != nil {
		return wrapRepoErr("soft delete media", err)
	}
	return nil
}
