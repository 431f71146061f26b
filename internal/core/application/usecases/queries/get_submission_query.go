package queries

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/guard"
)

var ErrGetSubmissionQueryIsNotConstructed = errors.New(
	"GetSubmissionQuery must be created via NewGetSubmissionQuery constructor",
)

// GetSubmissionQuery retrieves a single recycling submission by its identifier.
type GetSubmissionQuery struct {
	submissionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSubmissionQuery creates a query for one submission.
func NewGetSubmissionQuery(submissionID kernel.UUID) (GetSubmissionQuery, error) {
	if err := submissionID.Validate(); err != nil {
		return GetSubmissionQuery{}, err
	}

	return GetSubmissionQuery{
		submissionID: submissionID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSubmissionQuery) Validate() error {
	return q.guard.Validate(ErrGetSubmissionQueryIsNotConstructed)
}

// SubmissionID returns the identifier of the submission.
func (q GetSubmissionQuery) SubmissionID() kernel.UUID {
	return q.submissionID
}
