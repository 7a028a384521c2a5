package navigations

import (
	"context"

	"github.com/JaimeStill/ern-portal/pkg/pagination"
	"github.com/JaimeStill/ern-portal/pkg/routing"
	"github.com/google/uuid"
)

// System defines the interface for navigation log operations.
type System interface {
	// Record resolves the request against the route table and persists it.
	Record(ctx context.Context, req routing.NavigationRequest) (*Result, error)

	// List returns a paginated list of navigations with optional filtering.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Navigation], error)

	// Find returns a single navigation by ID.
	Find(ctx context.Context, id uuid.UUID) (*Navigation, error)
}
