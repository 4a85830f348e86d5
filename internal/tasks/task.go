// Package tasks implements the operational task domain: the open and
// completed work items surfaced on the logistics dashboard and consulted
// by the chat orchestrator for situational awareness.
package tasks

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a task.
type Status string

// Task statuses.
const (
	StatusOpen      Status = "Open"
	StatusCompleted Status = "Completed"
)

// Valid reports whether s is a recognized status.
func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusCompleted
}

// Task represents one operational work item tied to a purchase order.
type Task struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	PONumber  string    `json:"po_number"`
	Status    Status    `json:"status"`
	DueDate   time.Time `json:"due_date"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusCommand carries the data needed to change a task's status.
type StatusCommand struct {
	Status Status `json:"status"`
}
