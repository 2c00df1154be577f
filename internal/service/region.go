package service

import (
	"context"

	"github.com/nzwalks/backend/internal/domain"
	"github.com/nzwalks/backend/internal/repository"
	"github.com/nzwalks/backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type regionService struct {
	regionRepository repository.Regions
	events           RegionEventPublisher
}

func newRegionService(regionRepository repository.Regions, events RegionEventPublisher) *regionService {
	return &regionService{
		regionRepository: regionRepository,
		events:           events,
	}
}

func (s *regionService) GetAll(ctx context.Context) ([]domain.Region, error) {
	return s.regionRepository.GetAll(ctx)
}

func (s *regionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	return s.regionRepository.GetOneByID(ctx, id)
}

func (s *regionService) Create(ctx context.Context, region *domain.Region) (*domain.Region, error) {
	created, err := s.regionRepository.Create(ctx, region)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.RegionCreated, created)
	return created, nil
}

func (s *regionService) Update(ctx context.Context, id uuid.UUID, region *domain.Region) (*domain.Region, error) {
	updated, err := s.regionRepository.Update(ctx, id, region)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.RegionUpdated, updated)
	return updated, nil
}

func (s *regionService) Delete(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	deleted, err := s.regionRepository.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.RegionDeleted, deleted)
	return deleted, nil
}

// publish never fails the request, the write is already committed.
func (s *regionService) publish(ctx context.Context, action domain.RegionAction, region *domain.Region) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishRegionChanged(ctx, action, *region); err != nil {
		logger.Error("publish region changed failed",
			zap.Error(err),
			zap.String("action", string(action)),
			zap.Stringer("region_id", region.ID),
		)
	}
}
