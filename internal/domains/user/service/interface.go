package service

import (
	"context"

	"github.com/google/uuid"

	"poems-backend/internal/domains/user/model"
)

// Service is the business logic contract for accounts and credentials.
type Service interface {
	// Register creates an account with a hashed password.
	// Returns model.ErrUsernameTaken / model.ErrEmailTaken on duplicates.
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)

	// Login verifies credentials. Unknown username and wrong password both
	// return model.ErrInvalidCredentials.
	Login(ctx context.Context, req model.LoginRequest) (*model.User, error)

	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetOrCreateAnonymous resolves the shared guest author account.
	GetOrCreateAnonymous(ctx context.Context) (*model.User, error)
}
