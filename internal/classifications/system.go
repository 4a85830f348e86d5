package classifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/freightops/manifest/pkg/pagination"
)

// System defines the public contract for classification domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Classification], error)

	Find(ctx context.Context, id uuid.UUID) (*Classification, error)

	// Insert persists a validated payload and returns the stored record
	// with its generated identifier.
	Insert(ctx context.Context, payload Payload) (*Classification, error)
}
