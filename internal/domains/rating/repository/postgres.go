package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"poems-backend/internal/domains/rating/model"
)

type postgresRatingRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRatingRepository(pool *pgxpool.Pool) RatingRepository {
	return &postgresRatingRepository{pool: pool}
}

func (r *postgresRatingRepository) Upsert(ctx context.Context, userID, poemID uuid.UUID, value int) (*model.Rating, error) {
	// The unique constraint on (user_id, poem_id) makes this a single
	// atomic insert-or-overwrite; no read-then-write anywhere.
	query := `
		INSERT INTO ratings (user_id, poem_id, value, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id, poem_id)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING user_id, poem_id, value, created_at, updated_at
	`

	rating := &model.Rating{}
	err := r.pool.QueryRow(ctx, query, userID, poemID, value).Scan(
		&rating.UserID,
		&rating.PoemID,
		&rating.Value,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)

	if err != nil {
		// Foreign key violations identify which reference is dangling.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if strings.Contains(pgErr.ConstraintName, "poem") {
				return nil, model.ErrPoemNotFound
			}
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to upsert rating: %w", err)
	}

	return rating, nil
}

func (r *postgresRatingRepository) GetByUserAndPoem(ctx context.Context, userID, poemID uuid.UUID) (*model.Rating, error) {
	query := `
		SELECT user_id, poem_id, value, created_at, updated_at
		FROM ratings
		WHERE user_id = $1 AND poem_id = $2
	`

	rating := &model.Rating{}
	err := r.pool.QueryRow(ctx, query, userID, poemID).Scan(
		&rating.UserID,
		&rating.PoemID,
		&rating.Value,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return rating, nil
}
