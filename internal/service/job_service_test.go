package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/flashfusion/studio-api/internal/models"
	"github.com/flashfusion/studio-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCampaign lets tests control how long a job runs and how it settles.
type stubCampaign struct {
	gate   chan struct{}
	result *models.CampaignResult
	err    error
}

func (s *stubCampaign) Run(ctx context.Context, req *models.CampaignRequest) (*models.CampaignResult, error) {
	if s.gate != nil {
		<-s.gate
	}
	return s.result, s.err
}

func validRequest() *models.CampaignRequest {
	return imageRequest("launch day", DefaultPlatforms())
}

func awaitTerminal(t *testing.T, s JobService, jobID string) *models.Job {
	t.Helper()

	var job *models.Job
	require.Eventually(t, func() bool {
		var err error
		job, err = s.GetStatus(context.Background(), jobID)
		require.NoError(t, err)
		require.NotNil(t, job)
		return job.Status.Terminal()
	}, 5*time.Second, 5*time.Millisecond)
	return job
}

func TestSubmitReturnsImmediatelyWithPendingJob(t *testing.T) {
	gate := make(chan struct{})
	campaign := &stubCampaign{gate: gate, result: &models.CampaignResult{ImageURL: "ref"}}
	s := NewJobService(repository.NewJobRepository(), campaign, nil)

	jobID, err := s.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	job, err := s.GetStatus(context.Background(), jobID)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Contains(t, []models.JobStatus{models.JobStatusPending, models.JobStatusProcessing}, job.Status)

	close(gate)
	final := awaitTerminal(t, s, jobID)
	assert.Equal(t, models.JobStatusCompleted, final.Status)
}

func TestJobStatusNeverRegresses(t *testing.T) {
	gate := make(chan struct{})
	campaign := &stubCampaign{gate: gate, result: &models.CampaignResult{ImageURL: "ref"}}
	s := NewJobService(repository.NewJobRepository(), campaign, nil)

	jobID, err := s.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	rank := map[models.JobStatus]int{
		models.JobStatusPending:    0,
		models.JobStatusProcessing: 1,
		models.JobStatusCompleted:  2,
		models.JobStatusFailed:     2,
	}

	var mu sync.Mutex
	var observed []models.JobStatus
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			job, err := s.GetStatus(context.Background(), jobID)
			if err == nil && job != nil {
				mu.Lock()
				observed = append(observed, job.Status)
				mu.Unlock()
				if job.Status.Terminal() {
					return
				}
			}
			time.Sleep(time.Millisecond)
		}
	}()

	// Hold the job in processing long enough for the poller to see it.
	require.Eventually(t, func() bool {
		job, err := s.GetStatus(context.Background(), jobID)
		require.NoError(t, err)
		return job != nil && job.Status == models.JobStatusProcessing
	}, 5*time.Second, time.Millisecond)

	close(gate)
	wg.Wait()
	close(stop)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, observed)
	last := -1
	for _, status := range observed {
		r := rank[status]
		assert.GreaterOrEqual(t, r, last, "status regressed: %v", observed)
		last = r
	}
	assert.Contains(t, observed, models.JobStatusProcessing)
}

func TestCompletedJobHasResultAndNoError(t *testing.T) {
	campaign := &stubCampaign{result: &models.CampaignResult{
		ImageURL: "ref",
		Posts:    []models.PlatformPost{{Platform: "Twitter", Post: "a post"}},
	}}
	s := NewJobService(repository.NewJobRepository(), campaign, nil)

	jobID, err := s.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	job := awaitTerminal(t, s, jobID)
	assert.Equal(t, models.JobStatusCompleted, job.Status)
	require.NotNil(t, job.Result)
	assert.Empty(t, job.Error)
}

func TestFailedJobHasErrorAndNoResult(t *testing.T) {
	campaign := &stubCampaign{err: errors.New("The generation service is temporarily unavailable. Please try again later.")}
	s := NewJobService(repository.NewJobRepository(), campaign, nil)

	jobID, err := s.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	job := awaitTerminal(t, s, jobID)
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Nil(t, job.Result)
	assert.Equal(t, "The generation service is temporarily unavailable. Please try again later.", job.Error)
}

func TestPreconditionFailureSurfacesAsFailedJob(t *testing.T) {
	// Real orchestrator: a blank idea must become a failed job, never a
	// Submit error.
	backend := &fakeBackend{}
	s := NewJobService(repository.NewJobRepository(), newCampaignService(backend), nil)

	jobID, err := s.Submit(context.Background(), imageRequest("   ", DefaultPlatforms()))
	require.NoError(t, err)

	job := awaitTerminal(t, s, jobID)
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Equal(t, msgEmptyIdea, job.Error)
}

func TestNoEnabledPlatformsSurfacesAsFailedJob(t *testing.T) {
	backend := &fakeBackend{}
	s := NewJobService(repository.NewJobRepository(), newCampaignService(backend), nil)

	jobID, err := s.Submit(context.Background(), imageRequest("launch day", nil))
	require.NoError(t, err)

	job := awaitTerminal(t, s, jobID)
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Equal(t, msgNoPlatforms, job.Error)
}

func TestGetStatusUnknownJobReturnsNil(t *testing.T) {
	s := NewJobService(repository.NewJobRepository(), &stubCampaign{}, nil)

	job, err := s.GetStatus(context.Background(), "job_0_missing")
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestExecutePanicBecomesFailedJob(t *testing.T) {
	campaign := &panickyCampaign{}
	s := NewJobService(repository.NewJobRepository(), campaign, nil)

	jobID, err := s.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	job := awaitTerminal(t, s, jobID)
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.NotEmpty(t, job.Error)
}

type panickyCampaign struct{}

func (p *panickyCampaign) Run(ctx context.Context, req *models.CampaignRequest) (*models.CampaignResult, error) {
	panic("boom")
}

func TestJobIDsAreUnique(t *testing.T) {
	campaign := &stubCampaign{result: &models.CampaignResult{ImageURL: "ref"}}
	s := NewJobService(repository.NewJobRepository(), campaign, nil)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		jobID, err := s.Submit(context.Background(), validRequest())
		require.NoError(t, err)
		_, dup := seen[jobID]
		require.False(t, dup)
		seen[jobID] = struct{}{}
	}
}
