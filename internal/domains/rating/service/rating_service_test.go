package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poems-backend/internal/domains/rating/model"
)

type ratingKey struct {
	userID uuid.UUID
	poemID uuid.UUID
}

// fakeRatingRepo enforces one row per (user, poem) pair, like the unique
// constraint does in Postgres.
type fakeRatingRepo struct {
	knownPoems map[uuid.UUID]bool
	ratings    map[ratingKey]*model.Rating
}

func newFakeRatingRepo(poems ...uuid.UUID) *fakeRatingRepo {
	known := make(map[uuid.UUID]bool, len(poems))
	for _, id := range poems {
		known[id] = true
	}
	return &fakeRatingRepo{knownPoems: known, ratings: make(map[ratingKey]*model.Rating)}
}

func (r *fakeRatingRepo) Upsert(_ context.Context, userID, poemID uuid.UUID, value int) (*model.Rating, error) {
	if !r.knownPoems[poemID] {
		return nil, model.ErrPoemNotFound
	}

	key := ratingKey{userID: userID, poemID: poemID}
	now := time.Now()
	if existing, ok := r.ratings[key]; ok {
		existing.Value = value
		existing.UpdatedAt = now
	} else {
		r.ratings[key] = &model.Rating{
			UserID:    userID,
			PoemID:    poemID,
			Value:     value,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	clone := *r.ratings[key]
	return &clone, nil
}

func (r *fakeRatingRepo) GetByUserAndPoem(_ context.Context, userID, poemID uuid.UUID) (*model.Rating, error) {
	rating, ok := r.ratings[ratingKey{userID: userID, poemID: poemID}]
	if !ok {
		return nil, nil
	}
	clone := *rating
	return &clone, nil
}

func intPtr(v int) *int { return &v }

func TestSubmitStoresRating(t *testing.T) {
	poemID := uuid.New()
	repo := newFakeRatingRepo(poemID)
	svc := NewRatingService(repo)
	userID := uuid.New()

	rating, err := svc.Submit(context.Background(), userID, model.SubmitRatingRequest{PoemID: poemID, Value: intPtr(8)})
	require.NoError(t, err)
	assert.Equal(t, 8, rating.Value)
	assert.Equal(t, userID, rating.UserID)
	assert.Equal(t, poemID, rating.PoemID)
}

func TestSubmitZeroIsValid(t *testing.T) {
	poemID := uuid.New()
	svc := NewRatingService(newFakeRatingRepo(poemID))

	rating, err := svc.Submit(context.Background(), uuid.New(), model.SubmitRatingRequest{PoemID: poemID, Value: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, rating.Value)
}

func TestSubmitOutOfRangeWritesNothing(t *testing.T) {
	poemID := uuid.New()
	repo := newFakeRatingRepo(poemID)
	svc := NewRatingService(repo)
	userID := uuid.New()

	for _, value := range []int{-1, 11, 100} {
		_, err := svc.Submit(context.Background(), userID, model.SubmitRatingRequest{PoemID: poemID, Value: intPtr(value)})
		assert.Error(t, err, "value %d", value)
	}

	stored, err := repo.GetByUserAndPoem(context.Background(), userID, poemID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestSubmitMissingValueRejected(t *testing.T) {
	poemID := uuid.New()
	svc := NewRatingService(newFakeRatingRepo(poemID))

	_, err := svc.Submit(context.Background(), uuid.New(), model.SubmitRatingRequest{PoemID: poemID})
	assert.Error(t, err)
}

func TestSubmitMissingPoemIDRejected(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo())

	_, err := svc.Submit(context.Background(), uuid.New(), model.SubmitRatingRequest{Value: intPtr(5)})
	assert.Error(t, err)
}

func TestSubmitUnknownPoem(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo())

	_, err := svc.Submit(context.Background(), uuid.New(), model.SubmitRatingRequest{PoemID: uuid.New(), Value: intPtr(5)})
	assert.ErrorIs(t, err, model.ErrPoemNotFound)
}

// Re-rating the same poem overwrites: one row per pair, last write wins.
func TestSubmitTwiceOverwrites(t *testing.T) {
	poemID := uuid.New()
	repo := newFakeRatingRepo(poemID)
	svc := NewRatingService(repo)
	userID := uuid.New()

	_, err := svc.Submit(context.Background(), userID, model.SubmitRatingRequest{PoemID: poemID, Value: intPtr(3)})
	require.NoError(t, err)

	updated, err := svc.Submit(context.Background(), userID, model.SubmitRatingRequest{PoemID: poemID, Value: intPtr(9)})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Value)

	stored, err := repo.GetByUserAndPoem(context.Background(), userID, poemID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 9, stored.Value)
	assert.Len(t, repo.ratings, 1)
}
