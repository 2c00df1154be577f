package task

import (
	"testing"
	"time"

	"github.com/nzwalks/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegionChangedTask(t *testing.T) {
	region := domain.Region{ID: uuid.New(), Code: "AUK", Name: "Auckland"}
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("NZDT", 13*3600))

	tsk, err := NewRegionChangedTask(domain.RegionDeleted, region, at)
	require.NoError(t, err)
	assert.Equal(t, RegionChangedTaskName, tsk.Type())

	data, err := ParseRegionChanged(tsk)
	require.NoError(t, err)
	assert.Equal(t, domain.RegionDeleted, data.Action)
	assert.Equal(t, region, data.Region)
	assert.True(t, at.Equal(data.OccurredAt))
	assert.Equal(t, time.UTC, data.OccurredAt.Location())
}

func TestParseRegionChanged_BadPayload(t *testing.T) {
	_, err := ParseRegionChanged(asynq.NewTask(RegionChangedTaskName, []byte("{")))
	assert.Error(t, err)
}
