package worker

import (
	"context"
	"time"

	"github.com/nzwalks/backend/internal/domain"

	"go.uber.org/zap"
)

type Workers struct {
	RegionAuditor RegionAuditor
}

type Deps struct {
	// Logger receives audit records. Defaults to the global logger.
	Logger *zap.Logger
}

type RegionAuditor interface {
	RecordRegionChange(ctx context.Context, action domain.RegionAction, region domain.Region, occurredAt time.Time) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		RegionAuditor: newRegionAuditor(deps.Logger),
	}
}
