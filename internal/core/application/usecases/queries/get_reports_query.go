package queries

import (
	"errors"

	"watertanker/internal/pkg/guard"
)

var ErrGetReportsQueryIsNotConstructed = errors.New(
	"GetReportsQuery must be created via NewGetReportsQuery constructor",
)

// GetReportsQuery retrieves the operational summary for the admin dashboard.
type GetReportsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReportsQuery creates a query for the operational summary.
func NewGetReportsQuery() GetReportsQuery {
	return GetReportsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReportsQuery) Validate() error {
	return q.guard.Validate(ErrGetReportsQueryIsNotConstructed)
}

// ReportsResponse aggregates order, revenue, and feedback figures. Every
// field is zero rather than absent when there is no data yet.
type ReportsResponse struct {
	TotalOrders    int64
	OrdersByStatus map[string]int64
	TotalRevenue   float64
	FeedbackCount  int64
	AverageRating  float64
	TotalSubmitted int64
	TotalCredited  float64
}
