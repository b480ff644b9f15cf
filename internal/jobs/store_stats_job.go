package job

import (
	"context"
	"log/slog"

	"github.com/flashfusion/studio-api/internal/models"
	"github.com/flashfusion/studio-api/internal/repository"
)

// StoreStatsJob periodically logs the size of the in-memory stores. Jobs
// are never deleted and the media cache never evicts, so this census is
// how unbounded growth stays visible to operators.
type StoreStatsJob struct {
	jr repository.JobRepository
	mc repository.MediaCacheRepository
}

func NewStoreStatsJob(jr repository.JobRepository, mc repository.MediaCacheRepository) *StoreStatsJob {
	return &StoreStatsJob{
		jr: jr,
		mc: mc,
	}
}

func (c *StoreStatsJob) LogStats() {
	ctx := context.Background()

	counts := c.jr.CountByStatus(ctx)

	slog.Info("store census",
		"jobs_pending", counts[models.JobStatusPending],
		"jobs_processing", counts[models.JobStatusProcessing],
		"jobs_completed", counts[models.JobStatusCompleted],
		"jobs_failed", counts[models.JobStatusFailed],
		"media_cache_entries", c.mc.Len(ctx),
	)
}
