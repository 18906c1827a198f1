package queue

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task types processed by cmd/worker.
const (
	TypeAIRatingGenerate = "airating:generate"
)

// AIRatingGeneratePayload asks the worker to annotate a freshly created poem.
type AIRatingGeneratePayload struct {
	PoemID uuid.UUID `json:"poem_id"`
}

func NewAIRatingGenerateTask(poemID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(AIRatingGeneratePayload{PoemID: poemID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task payload: %w", err)
	}
	return asynq.NewTask(TypeAIRatingGenerate, payload), nil
}
