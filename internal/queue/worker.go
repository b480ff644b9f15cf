package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
)

func (q *Queue) HandleGenerateCampaignTask(ctx context.Context, task *asynq.Task) error {
	var payload GenerateCampaignPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return q.js.Execute(ctx, payload.JobID)
}
