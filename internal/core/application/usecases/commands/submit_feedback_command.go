package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/feedback"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
	"watertanker/internal/pkg/guard"
)

var ErrSubmitFeedbackCommandIsNotConstructed = errors.New(
	"SubmitFeedbackCommand must be created via NewSubmitFeedbackCommand constructor",
)

// SubmitFeedbackCommand represents a customer rating a delivered order.
type SubmitFeedbackCommand struct { //nolint:recvcheck //using for validation
	feedbackID kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

// NewSubmitFeedbackCommand creates a command to rate a delivered order.
// The rating must lie within the feedback scale; the comment is optional.
func NewSubmitFeedbackCommand(
	feedbackID, orderID, customerID kernel.UUID, rating int, comment string,
) (SubmitFeedbackCommand, error) {
	cmd := SubmitFeedbackCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFeedbackID(feedbackID),
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRating(rating),
	); err != nil {
		return SubmitFeedbackCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrSubmitFeedbackCommandIsNotConstructed)
}

// FeedbackID returns the identifier for the feedback entry to create.
func (c SubmitFeedbackCommand) FeedbackID() kernel.UUID {
	return c.feedbackID
}

// OrderID returns the identifier of the rated order.
func (c SubmitFeedbackCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the rating customer.
func (c SubmitFeedbackCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Rating returns the rating value.
func (c SubmitFeedbackCommand) Rating() int {
	return c.rating
}

// Comment returns the free-form comment, possibly empty.
func (c SubmitFeedbackCommand) Comment() string {
	return c.comment
}

func (c *SubmitFeedbackCommand) setFeedbackID(feedbackID kernel.UUID) error {
	if err := feedbackID.Validate(); err != nil {
		return err
	}

	c.feedbackID = feedbackID
	return nil
}

func (c *SubmitFeedbackCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitFeedbackCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitFeedbackCommand) setRating(rating int) error {
	if rating < feedback.MinRating || rating > feedback.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, feedback.MinRating, feedback.MaxRating)
	}

	c.rating = rating
	return nil
}
