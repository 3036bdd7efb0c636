package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          int       `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"-"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	Completed   bool      `db:"completed" json:"completed"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
}
