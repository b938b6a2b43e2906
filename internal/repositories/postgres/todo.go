package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"todo-serverless-api/internal/models"
	"todo-serverless-api/internal/repositories"
)

const todoColumns = "id, text, completed, created_at, updated_at"

// TodoRepository implements repositories.TodoRepository against Postgres.
// Each operation is a single atomic statement; no multi-statement
// transactions are issued.
type TodoRepository struct {
	pool      *pgxpool.Pool
	opTimeout time.Duration
	logger    *logrus.Logger
}

// NewTodoRepository creates a Postgres-backed todo repository. opTimeout
// bounds connection acquisition plus the query itself for every operation.
func NewTodoRepository(pool *pgxpool.Pool, opTimeout time.Duration, logger *logrus.Logger) *TodoRepository {
	return &TodoRepository{
		pool:      pool,
		opTimeout: opTimeout,
		logger:    logger,
	}
}

func (r *TodoRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.opTimeout)
}

func scanTodo(row pgx.Row) (*models.Todo, error) {
	var t models.Todo
	if err := row.Scan(&t.ID, &t.Text, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new todo. The database assigns id and both timestamps.
func (r *TodoRepository) Create(ctx context.Context, text string) (*models.Todo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO todos (text)
		VALUES ($1)
		RETURNING ` + todoColumns

	todo, err := scanTodo(r.pool.QueryRow(ctx, query, text))
	if err != nil {
		return nil, repositories.NewStorageError("create", err)
	}

	r.logger.WithField("todo_id", todo.ID).Debug("Todo created")
	return todo, nil
}

// List returns every todo, oldest first. Equal timestamps fall back to id
// order so the sequence is deterministic.
func (r *TodoRepository) List(ctx context.Context) ([]models.Todo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + todoColumns + ` FROM todos ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, repositories.NewStorageError("list", err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, repositories.NewStorageError("list", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.NewStorageError("list", err)
	}

	return todos, nil
}

// SetCompleted updates the flag and refreshes updated_at in one statement.
func (r *TodoRepository) SetCompleted(ctx context.Context, id int64, completed bool) (*models.Todo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		UPDATE todos
		SET completed = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + todoColumns

	todo, err := scanTodo(r.pool.QueryRow(ctx, query, id, completed))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, repositories.NewStorageError("set_completed", err)
	}

	return todo, nil
}

// Delete removes the row and reports whether anything was deleted.
func (r *TodoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return false, repositories.NewStorageError("delete", err)
	}

	return tag.RowsAffected() > 0, nil
}

// HealthCheck runs a bounded round-trip query against the store.
func (r *TodoRepository) HealthCheck(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var one int
	if err := r.pool.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return repositories.NewStorageError("health_check", err)
	}
	return nil
}
