package service

import (
	"context"

	"github.com/google/uuid"

	"poems-backend/internal/domains/poem/model"
)

// Service is the business logic contract for the poem feed.
type Service interface {
	// Create persists a poem. A nil authorID resolves to the shared
	// Anonymous account.
	Create(ctx context.Context, req model.CreatePoemRequest, authorID *uuid.UUID) (*model.PoemResponse, error)

	// ListRecent returns the newest poems (at most 50), newest first.
	ListRecent(ctx context.Context) (*model.ListPoemsResponse, error)

	// Paginate serves one thread page. An empty or "null" cursor starts at
	// the newest poem; otherwise cursor must be a poem id and the page holds
	// the poem immediately after it in feed order.
	Paginate(ctx context.Context, cursor string) (*model.ThreadPage, error)
}
