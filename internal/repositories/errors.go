package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound is the absent-row result for operations that reference a todo
// by id.
var ErrNotFound = errors.New("todo not found")

// StorageError wraps any failure reaching or querying the store. The adapter
// performs no retries; callers decide what to do with it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err with the failing operation name.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// IsNotFound reports whether err is the absent-row result.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStorage reports whether err originated in the persistence layer.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
