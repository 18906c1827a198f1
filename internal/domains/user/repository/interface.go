package repository

import (
	"context"

	"github.com/google/uuid"

	"poems-backend/internal/domains/user/model"
)

// UserRepository is the data access contract for user accounts.
type UserRepository interface {
	// Create inserts a new user. Uniqueness is enforced by the store:
	// a duplicate username or email surfaces as ErrUsernameTaken / ErrEmailTaken.
	Create(ctx context.Context, user *model.User) error

	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// GetOrCreateByUsername atomically resolves a guest account, creating it
	// on first use. Safe under concurrent callers (single upsert, no pre-check).
	GetOrCreateByUsername(ctx context.Context, username string) (*model.User, error)
}
