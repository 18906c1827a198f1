package service

import (
	"context"

	"github.com/google/uuid"

	"poems-backend/internal/domains/rating/model"
)

// Service is the business logic contract for the rating ledger.
type Service interface {
	// Submit upserts the caller's rating for a poem. Values outside [0,10]
	// are rejected before any write.
	Submit(ctx context.Context, userID uuid.UUID, req model.SubmitRatingRequest) (*model.Rating, error)
}
