package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"poems-backend/internal/domains/poem/model"
)

type postgresPoemRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPoemRepository(pool *pgxpool.Pool) PoemRepository {
	return &postgresPoemRepository{pool: pool}
}

const poemWithAuthorColumns = `p.id, p.content, p.author_id, p.created_at, u.username`

func scanPoemWithAuthor(row pgx.Row) (*model.PoemWithAuthor, error) {
	p := &model.PoemWithAuthor{}
	err := row.Scan(
		&p.ID,
		&p.Content,
		&p.AuthorID,
		&p.CreatedAt,
		&p.AuthorUsername,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresPoemRepository) Create(ctx context.Context, poem *model.Poem) error {
	query := `
		INSERT INTO poems (id, content, author_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		poem.ID,
		poem.Content,
		poem.AuthorID,
		poem.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("author %s does not exist: %w", poem.AuthorID, err)
		}
		return fmt.Errorf("failed to create poem: %w", err)
	}

	return nil
}

func (r *postgresPoemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PoemWithAuthor, error) {
	query := `
		SELECT ` + poemWithAuthorColumns + `
		FROM poems p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	p, err := scanPoemWithAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPoemNotFound
		}
		return nil, fmt.Errorf("failed to get poem: %w", err)
	}

	return p, nil
}

func (r *postgresPoemRepository) ListRecent(ctx context.Context, limit int) ([]*model.PoemWithAuthor, error) {
	query := `
		SELECT ` + poemWithAuthorColumns + `
		FROM poems p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC, p.id ASC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list poems: %w", err)
	}
	defer rows.Close()

	var poems []*model.PoemWithAuthor
	for rows.Next() {
		p, err := scanPoemWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan poem: %w", err)
		}
		poems = append(poems, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read poems: %w", err)
	}

	return poems, nil
}

func (r *postgresPoemRepository) GetNewest(ctx context.Context) (*model.PoemWithAuthor, error) {
	query := `
		SELECT ` + poemWithAuthorColumns + `
		FROM poems p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC, p.id ASC
		LIMIT 1
	`

	p, err := scanPoemWithAuthor(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPoemNotFound
		}
		return nil, fmt.Errorf("failed to get newest poem: %w", err)
	}

	return p, nil
}

func (r *postgresPoemRepository) GetAfter(ctx context.Context, cursor *model.Poem) (*model.PoemWithAuthor, error) {
	// Feed order is (created_at DESC, id ASC). The row after the cursor is
	// the first one that is older, or shares the timestamp with a larger id.
	query := `
		SELECT ` + poemWithAuthorColumns + `
		FROM poems p
		JOIN users u ON u.id = p.author_id
		WHERE p.created_at < $1
		   OR (p.created_at = $1 AND p.id > $2)
		ORDER BY p.created_at DESC, p.id ASC
		LIMIT 1
	`

	p, err := scanPoemWithAuthor(r.pool.QueryRow(ctx, query, cursor.CreatedAt, cursor.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPoemNotFound
		}
		return nil, fmt.Errorf("failed to get next poem: %w", err)
	}

	return p, nil
}
