package repository

import (
	"context"

	"github.com/google/uuid"

	"poems-backend/internal/domains/poem/model"
)

// PoemRepository is the data access contract for the poem feed.
// All reads return rows in feed order: created_at DESC, id ASC.
type PoemRepository interface {
	Create(ctx context.Context, poem *model.Poem) error

	GetByID(ctx context.Context, id uuid.UUID) (*model.PoemWithAuthor, error)

	// ListRecent returns the newest poems, at most limit of them.
	ListRecent(ctx context.Context, limit int) ([]*model.PoemWithAuthor, error)

	// GetNewest returns the first poem in feed order, or ErrPoemNotFound
	// when the feed is empty.
	GetNewest(ctx context.Context) (*model.PoemWithAuthor, error)

	// GetAfter returns the poem strictly after the given row in feed order,
	// or ErrPoemNotFound when the feed is exhausted. The tie-break on id
	// keeps equal timestamps from being skipped or revisited.
	GetAfter(ctx context.Context, cursor *model.Poem) (*model.PoemWithAuthor, error)
}
