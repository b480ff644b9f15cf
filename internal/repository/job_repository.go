package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/flashfusion/studio-api/internal/models"
)

// JobRepository is the job table. The in-memory implementation satisfies
// the single-process design; the interface keeps the seam for an external
// store.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	// GetByID returns (nil, nil) for unknown identifiers.
	GetByID(ctx context.Context, id string) (*models.Job, error)
	MarkProcessing(ctx context.Context, id string) error
	Complete(ctx context.Context, id string, result *models.CampaignResult) error
	Fail(ctx context.Context, id string, message string) error
	CountByStatus(ctx context.Context) map[models.JobStatus]int
}

type jobRepository struct {
	mu   sync.RWMutex
	jobs map[string]*models.Job
}

func NewJobRepository() JobRepository {
	return &jobRepository{jobs: make(map[string]*models.Job)}
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[job.ID]; exists {
		return fmt.Errorf("job %s already exists", job.ID)
	}

	stored := *job
	r.jobs[job.ID] = &stored
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}

	// Copy so a poller never observes a record mid-write.
	copied := *job
	return &copied, nil
}

func (r *jobRepository) MarkProcessing(ctx context.Context, id string) error {
	return r.transition(id, models.JobStatusProcessing, func(job *models.Job) {})
}

func (r *jobRepository) Complete(ctx context.Context, id string, result *models.CampaignResult) error {
	return r.transition(id, models.JobStatusCompleted, func(job *models.Job) {
		job.Result = result
		job.Error = ""
	})
}

func (r *jobRepository) Fail(ctx context.Context, id string, message string) error {
	return r.transition(id, models.JobStatusFailed, func(job *models.Job) {
		job.Result = nil
		job.Error = message
	})
}

func (r *jobRepository) transition(id string, next models.JobStatus, apply func(*models.Job)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		return fmt.Errorf("job %s not found", id)
	}
	if !job.Status.CanTransitionTo(next) {
		return fmt.Errorf("job %s: invalid transition %s -> %s", id, job.Status, next)
	}

	job.Status = next
	apply(job)
	return nil
}

func (r *jobRepository) CountByStatus(ctx context.Context) map[models.JobStatus]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[models.JobStatus]int)
	for _, job := range r.jobs {
		counts[job.Status]++
	}
	return counts
}
