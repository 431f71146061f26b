package queries

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/guard"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery retrieves a page of registered drivers, optionally
// restricted to active ones.
type GetDriversQuery struct {
	activeOnly bool
	skip       int
	limit      int

	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates a query for a page of drivers.
func NewGetDriversQuery(activeOnly bool, skip, limit int) (GetDriversQuery, error) {
	skip, limit = normalizePage(skip, limit)

	return GetDriversQuery{
		activeOnly: activeOnly,
		skip:       skip,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

// ActiveOnly reports whether deactivated drivers are excluded.
func (q GetDriversQuery) ActiveOnly() bool { return q.activeOnly }

// Skip returns the number of rows to skip.
func (q GetDriversQuery) Skip() int { return q.skip }

// Limit returns the page size after clamping.
func (q GetDriversQuery) Limit() int { return q.limit }

// DriverResponse represents one driver in the read model.
type DriverResponse struct {
	ID             kernel.UUID
	FirstName      string
	LastName       string
	ContactNumber  string
	VehicleDetails string
	RatePerLitre   float64
	Active         bool
}
