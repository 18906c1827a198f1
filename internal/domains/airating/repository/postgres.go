package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"poems-backend/internal/domains/airating/model"
)

type postgresAIRatingRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAIRatingRepository(pool *pgxpool.Pool) AIRatingRepository {
	return &postgresAIRatingRepository{pool: pool}
}

func (r *postgresAIRatingRepository) Create(ctx context.Context, rating *model.AIRating) error {
	query := `
		INSERT INTO ai_ratings (id, poem_id, value, analysis, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		rating.ID,
		rating.PoemID,
		rating.Value,
		rating.Analysis,
		rating.CreatedAt,
	)

	if err != nil {
		// Foreign key violation means the poem does not exist.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.ErrPoemNotFound
		}
		return fmt.Errorf("failed to create ai rating: %w", err)
	}

	return nil
}

func (r *postgresAIRatingRepository) GetLatestByPoem(ctx context.Context, poemID uuid.UUID) (*model.AIRating, error) {
	query := `
		SELECT id, poem_id, value, analysis, created_at
		FROM ai_ratings
		WHERE poem_id = $1
		ORDER BY created_at DESC, id ASC
		LIMIT 1
	`

	rating := &model.AIRating{}
	err := r.pool.QueryRow(ctx, query, poemID).Scan(
		&rating.ID,
		&rating.PoemID,
		&rating.Value,
		&rating.Analysis,
		&rating.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAIRatingNotFound
		}
		return nil, fmt.Errorf("failed to get ai rating: %w", err)
	}

	return rating, nil
}
