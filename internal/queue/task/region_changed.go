package task

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nzwalks/backend/internal/domain"

	"github.com/hibiken/asynq"
)

const (
	RegionChangedTaskName  = "regionChangedTask"
	RegionChangedQueueName = "regionChangedQueue"
)

type RegionChanged struct {
	Action     domain.RegionAction `json:"action"`
	Region     domain.Region       `json:"region"`
	OccurredAt time.Time           `json:"occurred_at"`
}

func NewRegionChangedTask(action domain.RegionAction, region domain.Region, occurredAt time.Time) (*asynq.Task, error) {
	data := RegionChanged{
		Action:     action,
		Region:     region,
		OccurredAt: occurredAt.UTC(),
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		RegionChangedTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(RegionChangedQueueName),
	), nil
}

func ParseRegionChanged(t *asynq.Task) (RegionChanged, error) {
	var data RegionChanged
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		return RegionChanged{}, fmt.Errorf("region changed task json unmarshal failed: %w", err)
	}
	return data, nil
}
