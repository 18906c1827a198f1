package repository

import (
	"context"

	"github.com/google/uuid"

	"poems-backend/internal/domains/rating/model"
)

// RatingRepository is the data access contract for the rating ledger.
type RatingRepository interface {
	// Upsert atomically inserts or overwrites the (user, poem) rating and
	// returns the stored row. Concurrent submissions for the same pair
	// resolve to last-write-wins; there is never more than one row per pair.
	Upsert(ctx context.Context, userID, poemID uuid.UUID, value int) (*model.Rating, error)

	// GetByUserAndPoem returns the stored rating for the pair, or nil
	// (with a nil error) when none exists.
	GetByUserAndPoem(ctx context.Context, userID, poemID uuid.UUID) (*model.Rating, error)
}
