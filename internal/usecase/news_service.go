package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkoroi/county-league/internal/domain/news"
)

type CreateNewsInput struct {
	Title         string
	Content       string
	Image         string
	AuthorID      *int64
	TeamID        *int64
	MatchID       *int64
	CompetitionID *int64
}

type NewsService struct {
	news news.Repository
}

func NewNewsService(newsRepo news.Repository) *NewsService {
	return &NewsService{news: newsRepo}
}

func (s *NewsService) Create(ctx context.Context, in CreateNewsInput) (*news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "NewsService.Create")
	defer span.End()

	a := news.Article{
		Title:         strings.TrimSpace(in.Title),
		Content:       strings.TrimSpace(in.Content),
		Image:         strings.TrimSpace(in.Image),
		AuthorID:      in.AuthorID,
		TeamID:        in.TeamID,
		MatchID:       in.MatchID,
		CompetitionID: in.CompetitionID,
		IsActive:      true,
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.news.Create(ctx, &a); err != nil {
		return nil, wrapRepoErr("create news", err)
	}
	return &a, nil
}

func (s *NewsService) Get(ctx context.Context, id int64) (*news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "NewsService.Get")
	defer span.End()

	a, err := s.news.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr("get news", err)
	}
	return a, nil
}

func (s *NewsService) List(ctx context.Context) ([]news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "NewsService.List")
	defer span.End()

	articles, err := s.news.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return articles, nil
}

func (s *NewsService) SoftDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "NewsService.SoftDelete")
	defer span.End()

	if err := s.news.SoftDelete(ctx, id); err != nil {
		return wrapRepoErr("soft delete news", err)
	}
	return nil
}

func (s *NewsService) Restore(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "NewsService.Restore")
	defer span.End()

	if err := s.news.Restore(ctx, id); err != nil {
		return wrapRepoErr("restore news", err)
	}
	return nil
}
