package queries

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/recycling"
	"watertanker/internal/pkg/guard"
)

var ErrGetSubmissionsQueryIsNotConstructed = errors.New(
	"GetSubmissionsQuery must be created via NewGetSubmissionsQuery constructor",
)

// GetSubmissionsQuery retrieves a page of recycling submissions. Staff see
// everything; a non-nil customer filter restricts the page to one customer's
// own submissions.
type GetSubmissionsQuery struct {
	customerID *kernel.UUID
	status     *recycling.Status
	skip       int
	limit      int

	guard guard.ConstructorGuard
}

// NewGetSubmissionsQuery creates a query for a page of recycling submissions.
func NewGetSubmissionsQuery(
	customerID *kernel.UUID, status *recycling.Status, skip, limit int,
) (GetSubmissionsQuery, error) {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetSubmissionsQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetSubmissionsQuery{}, err
		}
	}
	skip, limit = normalizePage(skip, limit)

	return GetSubmissionsQuery{
		customerID: customerID,
		status:     status,
		skip:       skip,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSubmissionsQuery) Validate() error {
	return q.guard.Validate(ErrGetSubmissionsQueryIsNotConstructed)
}

// CustomerID returns the customer filter, or nil when unfiltered.
func (q GetSubmissionsQuery) CustomerID() *kernel.UUID { return q.customerID }

// Status returns the status filter, or nil when unfiltered.
func (q GetSubmissionsQuery) Status() *recycling.Status { return q.status }

// Skip returns the number of rows to skip.
func (q GetSubmissionsQuery) Skip() int { return q.skip }

// Limit returns the page size after clamping.
func (q GetSubmissionsQuery) Limit() int { return q.limit }

// SubmissionResponse represents one recycling submission in the read model.
type SubmissionResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	ImageURL        string
	RecyclableType  string
	PickupOption    string
	PickupAddress   string
	DropoffLocation string
	Status          string
	EstimatedValue  *float64
	CreditedAmount  *float64
}
