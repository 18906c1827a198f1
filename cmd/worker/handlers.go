package main

import (
	"github.com/hibiken/asynq"

	airatingJob "poems-backend/internal/domains/airating/job"
	"poems-backend/internal/infrastructure/queue"
	"poems-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	aiRatingGenerate *airatingJob.GenerateHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		aiRatingGenerate: airatingJob.NewGenerateHandler(c.AIRatingService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(queue.TypeAIRatingGenerate, h.aiRatingGenerate.ProcessTask)
}
