// Package feedback contains the Feedback aggregate: a customer's rating of
// a completed order.
package feedback

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
)

// Ratings are integers on a five-point scale.
const (
	MinRating = 1
	MaxRating = 5
)

// ErrFeedbackIsNotConstructed is returned when a Feedback instance was not
// created through NewFeedback or RestoreFeedback.
var ErrFeedbackIsNotConstructed = errors.New("Feedback must be created via NewFeedback or RestoreFeedback")

// Feedback is one customer's rating and optional comment on one order.
type Feedback struct {
	id         kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID
	rating     int
	comment    string

	isConstructed bool
}

// NewFeedback creates a Feedback entry with a rating between MinRating and
// MaxRating inclusive.
func NewFeedback(id, orderID, customerID kernel.UUID, rating int, comment string) (*Feedback, error) {
	f := &Feedback{comment: comment, isConstructed: true}

	if err := errors.Join(
		f.setID(id),
		f.setOrderID(orderID),
		f.setCustomerID(customerID),
		f.setRating(rating),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// RestoreFeedback reconstructs a Feedback entry from persistence.
func RestoreFeedback(id, orderID, customerID kernel.UUID, rating int, comment string) (*Feedback, error) {
	return NewFeedback(id, orderID, customerID, rating, comment)
}

// Validate ensures the Feedback was created through a constructor.
func (f *Feedback) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFeedbackIsNotConstructed
	}
	return nil
}

// ID returns the feedback's unique identifier.
func (f *Feedback) ID() kernel.UUID { return f.id }

// OrderID returns the rated order.
func (f *Feedback) OrderID() kernel.UUID { return f.orderID }

// CustomerID returns the customer who left the rating.
func (f *Feedback) CustomerID() kernel.UUID { return f.customerID }

// Rating returns the rating on the five-point scale.
func (f *Feedback) Rating() int { return f.rating }

// Comment returns the optional free-text comment.
func (f *Feedback) Comment() string { return f.comment }

func (f *Feedback) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Feedback) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.orderID = id
	return nil
}

func (f *Feedback) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.customerID = id
	return nil
}

func (f *Feedback) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	f.rating = rating
	return nil
}
