package client

import (
	"context"
	"fmt"
	"time"

	"github.com/nzwalks/backend/internal/domain"
	"github.com/nzwalks/backend/internal/queue/task"

	"github.com/hibiken/asynq"
)

// RegionEventPublisher enqueues region change tasks. When no enqueuer is
// available publishing is a no-op.
type RegionEventPublisher struct {
	enqueuer Enqueuer
	now      func() time.Time
}

// NewRegionEventPublisher publishes through enqueuer. A nil enqueuer falls
// back to GetClient on every call.
func NewRegionEventPublisher(enqueuer Enqueuer) *RegionEventPublisher {
	return &RegionEventPublisher{
		enqueuer: enqueuer,
		now:      time.Now,
	}
}

func (p *RegionEventPublisher) PublishRegionChanged(ctx context.Context, action domain.RegionAction, region domain.Region) error {
	enqueuer := p.enqueuer
	if enqueuer == nil {
		if c := GetClient(); c != nil {
			enqueuer = c
		}
	}
	if enqueuer == nil {
		return nil
	}

	t, err := task.NewRegionChangedTask(action, region, p.now())
	if err != nil {
		return fmt.Errorf("new region changed task failed: %w", err)
	}

	if _, err := enqueuer.EnqueueContext(ctx, t, asynq.Timeout(30*time.Second)); err != nil {
		return fmt.Errorf("enqueue region changed task failed: %w", err)
	}
	return nil
}
