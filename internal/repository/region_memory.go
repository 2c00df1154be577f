package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/nzwalks/backend/internal/domain"

	"github.com/google/uuid"
)

type MemoryRegionRepository struct {
	mu      sync.RWMutex
	regions map[uuid.UUID]domain.Region
}

func NewMemoryRegionRepository() *MemoryRegionRepository {
	return &MemoryRegionRepository{
		regions: make(map[uuid.UUID]domain.Region),
	}
}

func (r *MemoryRegionRepository) GetAll(_ context.Context) ([]domain.Region, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	regions := make([]domain.Region, 0, len(r.regions))
	for _, region := range r.regions {
		regions = append(regions, cloneRegion(region))
	}
	slices.SortFunc(regions, func(a, b domain.Region) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return regions, nil
}

func (r *MemoryRegionRepository) GetOneByID(_ context.Context, id uuid.UUID) (*domain.Region, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	region, ok := r.regions[id]
	if !ok {
		return nil, domain.ErrRegionNotFound
	}
	region = cloneRegion(region)
	return &region, nil
}

func (r *MemoryRegionRepository) Create(_ context.Context, region *domain.Region) (*domain.Region, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("new region id failed: %w", err)
	}

	created := cloneRegion(*region)
	created.ID = id

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.regions[id]; ok {
		return nil, domain.ErrDuplicateEntry
	}
	r.regions[id] = created

	out := cloneRegion(created)
	return &out, nil
}

func (r *MemoryRegionRepository) Update(_ context.Context, id uuid.UUID, region *domain.Region) (*domain.Region, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.regions[id]
	if !ok {
		return nil, domain.ErrRegionNotFound
	}

	src := cloneRegion(*region)
	existing.Code = src.Code
	existing.Name = src.Name
	existing.RegionImageURL = src.RegionImageURL
	r.regions[id] = existing

	out := cloneRegion(existing)
	return &out, nil
}

func (r *MemoryRegionRepository) Delete(_ context.Context, id uuid.UUID) (*domain.Region, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.regions[id]
	if !ok {
		return nil, domain.ErrRegionNotFound
	}
	delete(r.regions, id)
	return &existing, nil
}

// cloneRegion detaches the optional image url so callers can't mutate stored state.
func cloneRegion(region domain.Region) domain.Region {
	if region.RegionImageURL != nil {
		url := *region.RegionImageURL
		region.RegionImageURL = &url
	}
	return region
}
