package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/flashfusion/studio-api/internal/models"
	"github.com/flashfusion/studio-api/internal/repository"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Dispatcher hands a recorded job off for out-of-band execution.
type Dispatcher interface {
	Dispatch(ctx context.Context, jobID string) error
}

type JobService interface {
	// Submit records the job as pending and schedules it without blocking.
	// Precondition violations are never raised here; they surface as an
	// immediately failed job, so polling is the single failure channel.
	Submit(ctx context.Context, req *models.CampaignRequest) (string, error)
	// GetStatus returns (nil, nil) for unknown job identifiers.
	GetStatus(ctx context.Context, jobID string) (*models.Job, error)
	// Execute runs one job to a terminal state. Called by the dispatcher's
	// worker; safe against panics and never returns a retryable error.
	Execute(ctx context.Context, jobID string) error
}

type jobService struct {
	jobs       repository.JobRepository
	campaign   CampaignService
	dispatcher Dispatcher
}

// NewJobService builds the job manager. A nil dispatcher runs each job on
// its own goroutine, the default single-process deployment.
func NewJobService(jobs repository.JobRepository, campaign CampaignService, dispatcher Dispatcher) JobService {
	return &jobService{
		jobs:       jobs,
		campaign:   campaign,
		dispatcher: dispatcher,
	}
}

func (s *jobService) Submit(ctx context.Context, req *models.CampaignRequest) (string, error) {
	id, err := newJobID()
	if err != nil {
		return "", err
	}

	job := &models.Job{
		ID:      id,
		Status:  models.JobStatusPending,
		Request: req,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return "", err
	}

	if s.dispatcher == nil {
		go func() {
			if err := s.Execute(context.Background(), id); err != nil {
				slog.Error("job execution failed", "job_id", id, "error", err)
			}
		}()
		return id, nil
	}

	if err := s.dispatcher.Dispatch(ctx, id); err != nil {
		slog.Error("job dispatch failed", "job_id", id, "error", err)
		s.failPending(ctx, id, msgGenericFailure)
	}
	return id, nil
}

func (s *jobService) GetStatus(ctx context.Context, jobID string) (*models.Job, error) {
	return s.jobs.GetByID(ctx, jobID)
}

func (s *jobService) Execute(ctx context.Context, jobID string) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("job %s not found", jobID)
	}
	if job.Status != models.JobStatusPending {
		// Already executed; nothing to retry.
		return nil
	}

	if err := s.jobs.MarkProcessing(ctx, jobID); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("job panicked", "job_id", jobID, "panic", r)
			if err := s.jobs.Fail(ctx, jobID, msgGenericFailure); err != nil {
				slog.Error(err.Error())
			}
		}
	}()

	result, err := s.campaign.Run(ctx, job.Request)
	if err != nil {
		if err := s.jobs.Fail(ctx, jobID, err.Error()); err != nil {
			slog.Error(err.Error())
		}
		return nil
	}

	if err := s.jobs.Complete(ctx, jobID, result); err != nil {
		slog.Error(err.Error())
	}
	return nil
}

// failPending walks a pending job through processing to failed so the
// state machine never skips a step.
func (s *jobService) failPending(ctx context.Context, jobID string, message string) {
	if err := s.jobs.MarkProcessing(ctx, jobID); err != nil {
		slog.Error(err.Error())
		return
	}
	if err := s.jobs.Fail(ctx, jobID, message); err != nil {
		slog.Error(err.Error())
	}
}

// newJobID allocates an identifier unique with overwhelming probability:
// submission time plus a random nanoid suffix.
func newJobID() (string, error) {
	suffix, err := gonanoid.New(9)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("job_%d_%s", time.Now().UnixMilli(), suffix), nil
}
