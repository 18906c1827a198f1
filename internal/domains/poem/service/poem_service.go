package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	airatingService "poems-backend/internal/domains/airating/service"
	"poems-backend/internal/domains/poem/model"
	"poems-backend/internal/domains/poem/repository"
	userService "poems-backend/internal/domains/user/service"
	"poems-backend/internal/infrastructure/queue"
	"poems-backend/pkg/cache"
)

const (
	recentFeedLimit    = 50
	recentFeedCacheKey = "poems:recent"
	recentFeedCacheTTL = 30 * time.Second
)

type poemService struct {
	repo     repository.PoemRepository
	users    userService.Service
	ai       airatingService.Service
	cache    cache.Cache
	enqueuer queue.Enqueuer
}

// NewPoemService wires the feed logic. cache and enqueuer may be nil;
// both are best-effort side channels, never correctness dependencies.
func NewPoemService(
	repo repository.PoemRepository,
	users userService.Service,
	ai airatingService.Service,
	c cache.Cache,
	enqueuer queue.Enqueuer,
) Service {
	return &poemService{
		repo:     repo,
		users:    users,
		ai:       ai,
		cache:    c,
		enqueuer: enqueuer,
	}
}

func (s *poemService) Create(ctx context.Context, req model.CreatePoemRequest, authorID *uuid.UUID) (*model.PoemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, model.ErrEmptyContent
	}

	var authorUsername string
	var resolvedAuthor uuid.UUID

	if authorID != nil {
		author, err := s.users.GetByID(ctx, *authorID)
		if err != nil {
			return nil, err
		}
		resolvedAuthor = author.ID
		authorUsername = author.Username
	} else {
		guest, err := s.users.GetOrCreateAnonymous(ctx)
		if err != nil {
			return nil, err
		}
		resolvedAuthor = guest.ID
		authorUsername = guest.Username
	}

	poem := &model.Poem{
		ID:        uuid.New(),
		Content:   content,
		AuthorID:  resolvedAuthor,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, poem); err != nil {
		return nil, err
	}

	s.invalidateFeedCache(ctx)
	s.enqueueAnnotation(ctx, poem.ID)

	resp := (&model.PoemWithAuthor{Poem: *poem, AuthorUsername: authorUsername}).ToResponse()
	return &resp, nil
}

func (s *poemService) ListRecent(ctx context.Context) (*model.ListPoemsResponse, error) {
	if s.cache != nil {
		var cached model.ListPoemsResponse
		found, err := s.cache.Get(ctx, recentFeedCacheKey, &cached)
		if err != nil {
			log.Warn().Err(err).Msg("Feed cache read failed")
		} else if found {
			return &cached, nil
		}
	}

	poems, err := s.repo.ListRecent(ctx, recentFeedLimit)
	if err != nil {
		return nil, err
	}

	resp := &model.ListPoemsResponse{Poems: make([]model.PoemResponse, 0, len(poems))}
	for _, p := range poems {
		resp.Poems = append(resp.Poems, p.ToResponse())
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, recentFeedCacheKey, resp, recentFeedCacheTTL); err != nil {
			log.Warn().Err(err).Msg("Feed cache write failed")
		}
	}

	return resp, nil
}

func (s *poemService) Paginate(ctx context.Context, cursor string) (*model.ThreadPage, error) {
	var (
		next *model.PoemWithAuthor
		err  error
	)

	if isEmptyCursor(cursor) {
		next, err = s.repo.GetNewest(ctx)
	} else {
		var cursorID uuid.UUID
		cursorID, err = uuid.Parse(cursor)
		if err != nil {
			return nil, model.ErrInvalidCursor
		}

		var at *model.PoemWithAuthor
		at, err = s.repo.GetByID(ctx, cursorID)
		if err != nil {
			return nil, err
		}

		next, err = s.repo.GetAfter(ctx, &at.Poem)
	}

	if err != nil {
		if errors.Is(err, model.ErrPoemNotFound) {
			// Feed exhausted: both fields null, not an error.
			return &model.ThreadPage{}, nil
		}
		return nil, err
	}

	resp := next.ToResponse()
	s.attachLatestAnnotation(ctx, &resp)

	nextCursor := resp.ID
	return &model.ThreadPage{Poem: &resp, NextCursor: &nextCursor}, nil
}

// attachLatestAnnotation decorates a thread page with the poem's newest AI
// rating. Read failures only cost the decoration.
func (s *poemService) attachLatestAnnotation(ctx context.Context, resp *model.PoemResponse) {
	if s.ai == nil {
		return
	}

	rating, err := s.ai.LatestForPoem(ctx, resp.ID)
	if err != nil {
		log.Warn().Err(err).Str("poem_id", resp.ID.String()).Msg("AI rating lookup failed")
		return
	}
	if rating != nil {
		resp.AIRating = &model.AIAnnotation{Value: rating.Value, Analysis: rating.Analysis}
	}
}

func (s *poemService) invalidateFeedCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, recentFeedCacheKey); err != nil {
		log.Warn().Err(err).Msg("Feed cache invalidation failed")
	}
}

func (s *poemService) enqueueAnnotation(ctx context.Context, poemID uuid.UUID) {
	if s.enqueuer == nil {
		return
	}
	if err := s.enqueuer.EnqueueAIRatingGenerate(ctx, poemID); err != nil {
		log.Warn().Err(err).Str("poem_id", poemID.String()).Msg("Failed to enqueue AI rating task")
	}
}

func isEmptyCursor(cursor string) bool {
	return cursor == "" || cursor == "null" || cursor == "undefined"
}
