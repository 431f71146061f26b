// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/order"
	"watertanker/internal/pkg/guard"
)

// Pagination limits shared by the list queries. Requests asking for more
// than MaxPageSize rows are clamped, not rejected.
const (
	DefaultPageSize = 100
	MaxPageSize     = 100
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves a page of orders for the admin dashboard,
// optionally filtered by delivery status.
type GetOrdersQuery struct {
	status *order.Status
	skip   int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for a page of orders. A nil status
// means no filter. Negative skip is treated as zero; a non-positive limit
// falls back to DefaultPageSize.
func NewGetOrdersQuery(status *order.Status, skip, limit int) (GetOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	skip, limit = normalizePage(skip, limit)

	return GetOrdersQuery{
		status: status,
		skip:   skip,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when unfiltered.
func (q GetOrdersQuery) Status() *order.Status { return q.status }

// Skip returns the number of rows to skip.
func (q GetOrdersQuery) Skip() int { return q.skip }

// Limit returns the page size after clamping.
func (q GetOrdersQuery) Limit() int { return q.limit }

// OrderResponse represents one order in the read model.
type OrderResponse struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	Destination           string
	WaterAmount           float64
	Status                string
	PaymentStatus         string
	PaymentDate           *time.Time
	DriverID              *kernel.UUID
	StaffID               *kernel.UUID
	DriverCharge          *float64
	CancellationRequested bool
	CancellationReason    string
}
