package repository

import (
	"context"

	"github.com/google/uuid"

	"poems-backend/internal/domains/airating/model"
)

// AIRatingRepository is the data access contract for AI annotations.
type AIRatingRepository interface {
	// Create appends an annotation. The store does not enforce one per poem.
	Create(ctx context.Context, rating *model.AIRating) error

	// GetLatestByPoem returns the newest annotation for a poem, or
	// ErrAIRatingNotFound when it has none.
	GetLatestByPoem(ctx context.Context, poemID uuid.UUID) (*model.AIRating, error)
}
