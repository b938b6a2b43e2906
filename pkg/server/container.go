package server

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"todo-serverless-api/internal/config"
	"todo-serverless-api/internal/database"
	"todo-serverless-api/internal/repositories"
	"todo-serverless-api/internal/repositories/postgres"
)

// Container holds all application dependencies. Handlers receive the
// repository through it rather than via package-level state, so tests can
// substitute a fake.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Todos  repositories.TodoRepository

	pool *pgxpool.Pool
}

// NewContainer wires config, logger, pool and repository. The pool object
// is created here but individual connections are only dialed on first use.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger := newLogger(cfg)

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("initializing database pool: %w", err)
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		Todos:  postgres.NewTodoRepository(pool, cfg.Database.AcquireTimeout, logger),
		pool:   pool,
	}, nil
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	if config.IsServerlessMode() || cfg.Environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

// Close releases the connection pool.
func (c *Container) Close() error {
	if c.pool != nil {
		c.pool.Close()
		c.pool = nil
	}
	return nil
}
