package queries

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves a page of registered customers.
type GetCustomersQuery struct {
	skip  int
	limit int

	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a query for a page of customers.
func NewGetCustomersQuery(skip, limit int) (GetCustomersQuery, error) {
	skip, limit = normalizePage(skip, limit)

	return GetCustomersQuery{
		skip:  skip,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// Skip returns the number of rows to skip.
func (q GetCustomersQuery) Skip() int { return q.skip }

// Limit returns the page size after clamping.
func (q GetCustomersQuery) Limit() int { return q.limit }

// CustomerResponse represents one customer in the read model.
// Password hashes never leave the write side.
type CustomerResponse struct {
	ID            kernel.UUID
	FirstName     string
	LastName      string
	Email         string
	Address       string
	ContactNumber string
}
