package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/nzwalks/backend/internal/domain"
	"github.com/nzwalks/backend/pkg/logger"

	"go.uber.org/zap"
)

type regionAuditor struct {
	log *zap.Logger
}

func newRegionAuditor(log *zap.Logger) *regionAuditor {
	return &regionAuditor{log: log}
}

func (a *regionAuditor) RecordRegionChange(_ context.Context, action domain.RegionAction, region domain.Region, occurredAt time.Time) error {
	switch action {
	case domain.RegionCreated, domain.RegionUpdated, domain.RegionDeleted:
	default:
		return fmt.Errorf("unknown region action %q", action)
	}

	log := a.log
	if log == nil {
		log = logger.Logger()
	}

	fields := []zap.Field{
		zap.String("action", string(action)),
		zap.Stringer("region_id", region.ID),
		zap.String("code", region.Code),
		zap.String("name", region.Name),
		zap.Time("occurred_at", occurredAt),
	}
	if region.RegionImageURL != nil {
		fields = append(fields, zap.String("region_image_url", *region.RegionImageURL))
	}
	log.Info("region audit", fields...)

	return nil
}
