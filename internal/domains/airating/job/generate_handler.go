package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"poems-backend/internal/domains/airating/model"
	"poems-backend/internal/domains/airating/service"
	"poems-backend/internal/infrastructure/queue"
)

// GenerateHandler processes airating:generate tasks enqueued on poem creation.
type GenerateHandler struct {
	service service.Service
}

func NewGenerateHandler(svc service.Service) *GenerateHandler {
	return &GenerateHandler{service: svc}
}

func (h *GenerateHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.AIRatingGeneratePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// Malformed payloads never become valid; fail without retry.
		return fmt.Errorf("invalid payload: %v: %w", err, asynq.SkipRetry)
	}

	rating, err := h.service.Annotate(ctx, payload.PoemID)
	if err != nil {
		if errors.Is(err, model.ErrPoemNotFound) {
			// Poem was deleted before the worker got to it; nothing to retry.
			log.Printf("[AIRating] Poem %s no longer exists, skipping", payload.PoemID)
			return nil
		}
		return fmt.Errorf("failed to annotate poem %s: %w", payload.PoemID, err)
	}

	log.Printf("[AIRating] ✓ Annotated poem %s with value %d", payload.PoemID, rating.Value)
	return nil
}
