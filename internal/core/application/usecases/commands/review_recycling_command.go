package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/recycling"
	"watertanker/internal/pkg/guard"
)

var ErrReviewRecyclingCommandIsNotConstructed = errors.New(
	"ReviewRecyclingCommand must be created via NewReviewRecyclingCommand constructor",
)

// ReviewRecyclingCommand represents staff valuing a recycling submission:
// scheduling a pickup, confirming a dropoff, or crediting the customer.
type ReviewRecyclingCommand struct { //nolint:recvcheck //using for validation
	submissionID   kernel.UUID
	status         recycling.Status
	estimatedValue *float64
	creditedAmount *float64

	guard guard.ConstructorGuard
}

// NewReviewRecyclingCommand creates a command to review a submission.
func NewReviewRecyclingCommand(
	submissionID kernel.UUID,
	status recycling.Status,
	estimatedValue, creditedAmount *float64,
) (ReviewRecyclingCommand, error) {
	cmd := ReviewRecyclingCommand{
		estimatedValue: estimatedValue,
		creditedAmount: creditedAmount,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSubmissionID(submissionID),
		cmd.setStatus(status),
	); err != nil {
		return ReviewRecyclingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewRecyclingCommand) Validate() error {
	return c.guard.Validate(ErrReviewRecyclingCommandIsNotConstructed)
}

// SubmissionID returns the identifier of the submission under review.
func (c ReviewRecyclingCommand) SubmissionID() kernel.UUID { return c.submissionID }

// Status returns the reviewed status to apply.
func (c ReviewRecyclingCommand) Status() recycling.Status { return c.status }

// EstimatedValue returns the staff valuation, or nil to keep the current one.
func (c ReviewRecyclingCommand) EstimatedValue() *float64 { return c.estimatedValue }

// CreditedAmount returns the credited amount, or nil when not crediting.
func (c ReviewRecyclingCommand) CreditedAmount() *float64 { return c.creditedAmount }

func (c *ReviewRecyclingCommand) setSubmissionID(submissionID kernel.UUID) error {
	if err := submissionID.Validate(); err != nil {
		return err
	}

	c.submissionID = submissionID
	return nil
}

func (c *ReviewRecyclingCommand) setStatus(status recycling.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
