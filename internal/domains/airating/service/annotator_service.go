package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"poems-backend/internal/domains/airating/model"
	"poems-backend/internal/domains/airating/repository"
)

// Mood and structure tokens the mock analysis is composed from.
// A real deployment would call an inference API here instead.
var (
	moods      = []string{"melancholy", "joy", "despair", "hope", "absurdity"}
	structures = []string{"rigid", "fluid", "chaotic"}
)

type annotatorService struct {
	repo repository.AIRatingRepository
	intn func(n int) int
}

func NewAnnotatorService(repo repository.AIRatingRepository) Service {
	return &annotatorService{
		repo: repo,
		intn: rand.Intn,
	}
}

func (s *annotatorService) Annotate(ctx context.Context, poemID uuid.UUID) (*model.AIRating, error) {
	if poemID == uuid.Nil {
		return nil, model.ErrPoemNotFound
	}

	rating := &model.AIRating{
		ID:        uuid.New(),
		PoemID:    poemID,
		Value:     s.intn(11), // uniform in [0,10]
		Analysis:  s.composeAnalysis(),
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, rating); err != nil {
		return nil, err
	}

	return rating, nil
}

func (s *annotatorService) LatestForPoem(ctx context.Context, poemID uuid.UUID) (*model.AIRating, error) {
	rating, err := s.repo.GetLatestByPoem(ctx, poemID)
	if err != nil {
		if errors.Is(err, model.ErrAIRatingNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rating, nil
}

func (s *annotatorService) composeAnalysis() string {
	mood := moods[s.intn(len(moods))]
	structure := structures[s.intn(len(structures))]
	return fmt.Sprintf("This poem evokes a sense of %s. The structure is %s.", mood, structure)
}
