package service

import (
	"context"

	"github.com/google/uuid"

	"poems-backend/internal/domains/airating/model"
)

// Service produces and reads mock AI annotations.
type Service interface {
	// Annotate generates a synthetic rating and analysis for a poem and
	// persists it. Every call appends a new annotation.
	Annotate(ctx context.Context, poemID uuid.UUID) (*model.AIRating, error)

	// LatestForPoem returns the poem's newest annotation, or nil when it
	// has none.
	LatestForPoem(ctx context.Context, poemID uuid.UUID) (*model.AIRating, error)
}
