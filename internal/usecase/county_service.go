package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkoroi/county-league/internal/domain/county"
)

type CountyService struct {
	counties county.Repository
}

func NewCountyService(counties county.Repository) *CountyService {
	return &CountyService{counties: counties}
}

func (s *CountyService) Create(ctx context.Context, name string) (*county.County, error) {
	ctx, span := startUsecaseSpan(ctx, "CountyService.Create")
	defer span.End()

	c := county.County{Name: strings.TrimSpace(name), IsActive: true}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.counties.Create(ctx, &c); err != nil {
		return nil, wrapRepoErr("create county", err, county.ErrNameTaken)
	}
	return &c, nil
}

func (s *CountyService) Get(ctx context.Context, id int64) (*county.County, error) {
	ctx, span := startUsecaseSpan(ctx, "CountyService.Get")
	defer span.End()

	c, err := s.counties.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr("get county", err)
	}
	return c, nil
}

func (s *CountyService) List(ctx context.Context) ([]county.County, error) {
	ctx, span := startUsecaseSpan(ctx, "CountyService.List")
	defer span.End()

	counties, err := s.counties.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list counties: %w", err)
	}
	return counties, nil
}

func (s *CountyService) SoftDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "CountyService.SoftDelete")
	defer span.End()

	if err := s.counties.SoftDelete(ctx, id); err != nil {
		return wrapRepoErr("soft delete county", err)
	}
	return nil
}

func (s *CountyService) Restore(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "CountyService.Restore")
	defer span.End()

	if err := s.counties.Restore(ctx, id); err != nil {
		return wrapRepoErr("restore county", err)
	}
	return nil
}

func (s *CountyService) HardDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "CountyService.HardDelete")
	defer span.End()

	if err := s.counties.HardDelete(ctx, id); err != nil {
		return wrapRepoErr("hard delete county", err)
	}
	return nil
}
