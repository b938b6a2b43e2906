package repositories

import (
	"context"

	"todo-serverless-api/internal/models"
)

// TodoRepository is the persistence contract for todos. It is the sole owner
// of the entity lifecycle; handlers request operations but never touch the
// store directly.
type TodoRepository interface {
	// Create inserts a row with the given trimmed text and completed=false,
	// returning the fully populated row including the assigned id.
	Create(ctx context.Context, text string) (*models.Todo, error)

	// List returns all todos ordered by creation time ascending, with id as
	// the deterministic tie-break for equal timestamps.
	List(ctx context.Context) ([]models.Todo, error)

	// SetCompleted updates the completed flag and refreshes updated_at,
	// returning the updated row. Returns ErrNotFound if no row has the id;
	// never inserts.
	SetCompleted(ctx context.Context, id int64, completed bool) (*models.Todo, error)

	// Delete removes the row if present and reports whether a row was
	// actually deleted. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) (bool, error)

	// HealthCheck performs a minimal round-trip query to confirm
	// connectivity.
	HealthCheck(ctx context.Context) error
}
