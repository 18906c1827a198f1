package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"poems-backend/internal/domains/user/model"
	"poems-backend/internal/domains/user/repository"
)

// AnonymousUsername is the shared guest account poems fall back to when
// created without a session.
const AnonymousUsername = "Anonymous"

// bcryptCost balances security and login latency.
const bcryptCost = 12

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) Service {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	hash := string(passwordHash)
	newUser := &model.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        emailPtr(req.Email),
		PasswordHash: &hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// No exists-check first: the insert itself is the uniqueness check and
	// the repository translates constraint violations into domain errors.
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	return newUser, nil
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// Unknown username degrades to the same error as a wrong password.
			return nil, model.ErrInvalidCredentials
		}
		// Store failures must surface as such, never as bad credentials.
		return nil, err
	}

	// Guest accounts carry no password and can never authenticate.
	if u.PasswordHash == nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) GetOrCreateAnonymous(ctx context.Context) (*model.User, error) {
	return s.repo.GetOrCreateByUsername(ctx, AnonymousUsername)
}

func emailPtr(email string) *string {
	if email == "" {
		return nil
	}
	return &email
}
