package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStorageError("list", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "list")
	assert.True(t, IsStorage(err))
	assert.True(t, IsStorage(fmt.Errorf("outer: %w", err)))
	assert.False(t, IsStorage(cause))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrNotFound)))
	assert.False(t, IsNotFound(errors.New("something else")))
	assert.False(t, IsNotFound(NewStorageError("delete", errors.New("boom"))))
}
