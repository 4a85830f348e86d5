package tasks

import (
	"context"

	"github.com/google/uuid"

	"github.com/freightops/manifest/pkg/pagination"
)

// System defines the public contract for task domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Task], error)

	// All returns every task ordered by due date, the shape the chat
	// orchestrator consumes as its situational snapshot.
	All(ctx context.Context) ([]Task, error)

	Find(ctx context.Context, id uuid.UUID) (*Task, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, cmd StatusCommand) (*Task, error)
}
