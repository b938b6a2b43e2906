package models

import (
	"time"
)

// Todo represents a single todo item.
//
// ID is assigned by the database on insert and never reused. Text is fixed
// at creation; only the completed flag (and with it UpdatedAt) changes
// afterwards.
type Todo struct {
	ID        int64     `json:"id" db:"id"`
	Text      string    `json:"text" db:"text"`
	Completed bool      `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
