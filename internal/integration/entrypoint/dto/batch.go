package dto

import (
	"time"

	"github.com/radio-billing/backend/internal/domain/entity"
)

// BatchRunResponse summarizes one batch execution.
type BatchRunResponse struct {
	ID         string         `json:"id"`
	Operation  string         `json:"operation"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Counters   map[string]int `json:"counters"`
	Errors     []string       `json:"errors"`
}

// LastRunResponse represents the response for GET /batches/last.
type LastRunResponse struct {
	Run *BatchRunResponse `json:"run"`
}

// ToLastRunResponse converts the latest run, which may be nil, to a DTO.
func ToLastRunResponse(run *entity.BatchRun) LastRunResponse {
	if run == nil {
		return LastRunResponse{}
	}
	return LastRunResponse{
		Run: &BatchRunResponse{
			ID:         run.ID.String(),
			Operation:  string(run.Operation),
			StartedAt:  run.StartedAt,
			FinishedAt: run.FinishedAt,
			Counters:   run.Counters,
			Errors:     run.Errors,
		},
	}
}
