package service

import (
	"context"

	"github.com/nzwalks/backend/internal/domain"
	"github.com/nzwalks/backend/internal/repository"

	"github.com/google/uuid"
)

type Services struct {
	Regions Regions
}

type Deps struct {
	Repos       *repository.Repositories
	RegionEvent RegionEventPublisher
}

func NewServices(deps Deps) *Services {
	return &Services{
		Regions: newRegionService(deps.Repos.Regions, deps.RegionEvent),
	}
}

type Regions interface {
	GetAll(ctx context.Context) ([]domain.Region, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Region, error)
	Create(ctx context.Context, region *domain.Region) (*domain.Region, error)
	Update(ctx context.Context, id uuid.UUID, region *domain.Region) (*domain.Region, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Region, error)
}

// RegionEventPublisher is notified after every successful region write.
type RegionEventPublisher interface {
	PublishRegionChanged(ctx context.Context, action domain.RegionAction, region domain.Region) error
}
