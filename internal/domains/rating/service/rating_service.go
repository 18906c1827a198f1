package service

import (
	"context"

	"github.com/google/uuid"

	"poems-backend/internal/domains/rating/model"
	"poems-backend/internal/domains/rating/repository"
)

type ratingService struct {
	repo repository.RatingRepository
}

func NewRatingService(repo repository.RatingRepository) Service {
	return &ratingService{repo: repo}
}

func (s *ratingService) Submit(ctx context.Context, userID uuid.UUID, req model.SubmitRatingRequest) (*model.Rating, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Validate() guarantees Value is non-nil at this point.
	if *req.Value < model.MinValue || *req.Value > model.MaxValue {
		return nil, model.ErrValueOutOfRange
	}

	return s.repo.Upsert(ctx, userID, req.PoemID, *req.Value)
}
