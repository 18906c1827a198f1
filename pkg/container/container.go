package container

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"poems-backend/internal/config"
	infraCache "poems-backend/internal/infrastructure/cache"
	"poems-backend/internal/infrastructure/database"
	"poems-backend/internal/infrastructure/queue"
	"poems-backend/pkg/cache"
	"poems-backend/pkg/jwt"

	airatingHandler "poems-backend/internal/domains/airating/handler"
	airatingRepo "poems-backend/internal/domains/airating/repository"
	airatingService "poems-backend/internal/domains/airating/service"
	poemHandler "poems-backend/internal/domains/poem/handler"
	poemRepo "poems-backend/internal/domains/poem/repository"
	poemService "poems-backend/internal/domains/poem/service"
	ratingHandler "poems-backend/internal/domains/rating/handler"
	ratingRepo "poems-backend/internal/domains/rating/repository"
	ratingService "poems-backend/internal/domains/rating/service"
	userHandler "poems-backend/internal/domains/user/handler"
	userRepo "poems-backend/internal/domains/user/repository"
	userService "poems-backend/internal/domains/user/service"
)

// Container holds the full dependency graph: config → infrastructure →
// repositories → services → handlers, initialized in that order.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Queue      *queue.Client
	JWTManager *jwt.Manager

	UserRepo     userRepo.UserRepository
	PoemRepo     poemRepo.PoemRepository
	RatingRepo   ratingRepo.RatingRepository
	AIRatingRepo airatingRepo.AIRatingRepository

	UserService     userService.Service
	PoemService     poemService.Service
	RatingService   ratingService.Service
	AIRatingService airatingService.Service

	UserHandler     *userHandler.UserHandler
	PoemHandler     *poemHandler.PoemHandler
	RatingHandler   *ratingHandler.RatingHandler
	AIRatingHandler *airatingHandler.AIRatingHandler
}

// NewContainer builds and initializes the whole dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// 2. Database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// 3. Cache. Redis being down degrades the feed cache, nothing else,
	// so a failed ping is a warning rather than a startup failure.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Printf("⚠️  Redis unavailable, feed cache disabled: %v", err)
		if closeErr := redisCache.Close(); closeErr != nil {
			log.Printf("⚠️  Failed to close unreachable cache: %v", closeErr)
		}
	} else {
		c.Cache = redisCache
	}

	// 4. Task queue producer (lazy connection; shares the Redis instance)
	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	// 5. Session tokens
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// 6. Repositories
	c.UserRepo = userRepo.NewPostgresUserRepository(db.Pool)
	c.PoemRepo = poemRepo.NewPostgresPoemRepository(db.Pool)
	c.RatingRepo = ratingRepo.NewPostgresRatingRepository(db.Pool)
	c.AIRatingRepo = airatingRepo.NewPostgresAIRatingRepository(db.Pool)

	// 7. Services
	c.UserService = userService.NewUserService(c.UserRepo)
	c.AIRatingService = airatingService.NewAnnotatorService(c.AIRatingRepo)
	c.PoemService = poemService.NewPoemService(c.PoemRepo, c.UserService, c.AIRatingService, c.Cache, c.Queue)
	c.RatingService = ratingService.NewRatingService(c.RatingRepo)

	// 8. Handlers
	c.UserHandler = userHandler.NewUserHandler(c.UserService, c.JWTManager, cfg.IsProduction())
	c.PoemHandler = poemHandler.NewPoemHandler(c.PoemService)
	c.RatingHandler = ratingHandler.NewRatingHandler(c.RatingService)
	c.AIRatingHandler = airatingHandler.NewAIRatingHandler(c.AIRatingService)

	return c, nil
}

// Cleanup releases infrastructure connections on shutdown.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Printf("⚠️  Failed to close queue client: %v", err)
		}
	}

	if closer, ok := c.Cache.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Printf("⚠️  Failed to close cache: %v", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}
}
