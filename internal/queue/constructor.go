package queue

import (
	"github.com/flashfusion/studio-api/internal/service"
)

type Queue struct {
	js service.JobService
}

func NewQueue(js service.JobService) *Queue {
	return &Queue{js: js}
}

const TaskTypeGenerateCampaign = "campaign:generate"

type GenerateCampaignPayload struct {
	JobID string `json:"job_id"`
}
