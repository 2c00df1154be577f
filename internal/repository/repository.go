package repository

import (
	"context"

	"github.com/nzwalks/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Regions Regions
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Regions: newRegionRepository(db),
	}
}

// NewMemoryRepositories keeps everything in process memory. Data is lost on restart.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Regions: NewMemoryRegionRepository(),
	}
}

// Regions owns every read and write of region records. A missing record is
// reported as domain.ErrRegionNotFound.
type Regions interface {
	GetAll(ctx context.Context) ([]domain.Region, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Region, error)
	Create(ctx context.Context, region *domain.Region) (*domain.Region, error)
	Update(ctx context.Context, id uuid.UUID, region *domain.Region) (*domain.Region, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Region, error)
}
