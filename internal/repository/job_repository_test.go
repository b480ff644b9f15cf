package repository

import (
	"context"
	"testing"

	"github.com/flashfusion/studio-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingJob(id string) *models.Job {
	return &models.Job{ID: id, Status: models.JobStatusPending}
}

func TestJobRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	r := NewJobRepository()

	require.NoError(t, r.Create(ctx, pendingJob("job_1")))

	job, err := r.GetByID(ctx, "job_1")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, models.JobStatusPending, job.Status)

	require.NoError(t, r.MarkProcessing(ctx, "job_1"))
	require.NoError(t, r.Complete(ctx, "job_1", &models.CampaignResult{ImageURL: "ref"}))

	job, err = r.GetByID(ctx, "job_1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, job.Status)
	require.NotNil(t, job.Result)
	assert.Empty(t, job.Error)
}

func TestJobRepositoryUnknownIDReturnsNil(t *testing.T) {
	r := NewJobRepository()

	job, err := r.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestJobRepositoryRejectsDuplicateCreate(t *testing.T) {
	ctx := context.Background()
	r := NewJobRepository()

	require.NoError(t, r.Create(ctx, pendingJob("job_1")))
	assert.Error(t, r.Create(ctx, pendingJob("job_1")))
}

func TestJobRepositoryForwardOnlyTransitions(t *testing.T) {
	ctx := context.Background()
	r := NewJobRepository()

	require.NoError(t, r.Create(ctx, pendingJob("job_1")))

	// pending cannot jump straight to a terminal state.
	assert.Error(t, r.Complete(ctx, "job_1", &models.CampaignResult{}))
	assert.Error(t, r.Fail(ctx, "job_1", "boom"))

	require.NoError(t, r.MarkProcessing(ctx, "job_1"))
	assert.Error(t, r.MarkProcessing(ctx, "job_1"))

	require.NoError(t, r.Fail(ctx, "job_1", "boom"))

	// Terminal states are final.
	assert.Error(t, r.MarkProcessing(ctx, "job_1"))
	assert.Error(t, r.Complete(ctx, "job_1", &models.CampaignResult{}))

	job, err := r.GetByID(ctx, "job_1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Equal(t, "boom", job.Error)
	assert.Nil(t, job.Result)
}

func TestJobRepositoryGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := NewJobRepository()

	require.NoError(t, r.Create(ctx, pendingJob("job_1")))

	job, err := r.GetByID(ctx, "job_1")
	require.NoError(t, err)
	job.Status = models.JobStatusCompleted

	stored, err := r.GetByID(ctx, "job_1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, stored.Status, "mutating a returned job must not touch the store")
}

func TestJobRepositoryCountByStatus(t *testing.T) {
	ctx := context.Background()
	r := NewJobRepository()

	require.NoError(t, r.Create(ctx, pendingJob("job_1")))
	require.NoError(t, r.Create(ctx, pendingJob("job_2")))
	require.NoError(t, r.MarkProcessing(ctx, "job_2"))

	counts := r.CountByStatus(ctx)
	assert.Equal(t, 1, counts[models.JobStatusPending])
	assert.Equal(t, 1, counts[models.JobStatusProcessing])
}
