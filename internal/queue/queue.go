package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

// Dispatcher pushes campaign jobs onto the asynq queue. It satisfies
// service.Dispatcher for deployments with a Redis broker.
type Dispatcher struct {
	client *asynq.Client
}

func NewDispatcher(client *asynq.Client) *Dispatcher {
	return &Dispatcher{client: client}
}

func (d *Dispatcher) Dispatch(ctx context.Context, jobID string) error {
	taskPayload, err := json.Marshal(GenerateCampaignPayload{JobID: jobID})
	if err != nil {
		return err
	}

	// Jobs are never retried: every failure is classified once and
	// recorded on the job record itself.
	task := asynq.NewTask(TaskTypeGenerateCampaign, taskPayload, asynq.MaxRetry(0))

	_, err = d.client.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}

	log.Printf("Campaign job enqueued: %s", jobID)
	return nil
}
