package processor

import (
	"context"
	"fmt"

	"github.com/nzwalks/backend/internal/queue/task"
	"github.com/nzwalks/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type regionChangedProcessor struct {
	workers *worker.Workers
}

func NewRegionChangedProcessor(workers *worker.Workers) *regionChangedProcessor {
	return &regionChangedProcessor{
		workers: workers,
	}
}

func (p *regionChangedProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	data, err := task.ParseRegionChanged(t)
	if err != nil {
		return fmt.Errorf("process region changed task: %w: %w", err, asynq.SkipRetry)
	}

	if err = p.workers.RegionAuditor.RecordRegionChange(ctx, data.Action, data.Region, data.OccurredAt); err != nil {
		return fmt.Errorf("record region change failed: %w", err)
	}

	return nil
}
