package ports

import (
	"context"

	"watertanker/internal/core/domain/model/feedback"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/payment"
	"watertanker/internal/core/domain/model/recycling"
)

// PaymentRepository defines the persistence contract for payment records.
type PaymentRepository interface {
	// Add persists a new payment record.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetByOrder retrieves the payment recorded for the given order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)

	// DeleteAllByCustomer removes every payment recorded against the given
	// customer's orders. Used when a customer account is deleted.
	DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error
}

// FeedbackRepository defines the persistence contract for order feedback.
type FeedbackRepository interface {
	// Add persists a new feedback entry. Returns an ErrObjectAlreadyExists
	// error when the order already has feedback.
	Add(ctx context.Context, aggregate *feedback.Feedback) error

	// GetByOrder retrieves the feedback left for the given order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*feedback.Feedback, error)

	// DeleteAllByCustomer removes every feedback entry left by the given
	// customer. Used when a customer account is deleted.
	DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error
}

// RecyclingRepository defines the persistence contract for recycling
// submissions.
type RecyclingRepository interface {
	// Add persists a new submission.
	Add(ctx context.Context, aggregate *recycling.Submission) error

	// Update persists changes to an existing submission.
	Update(ctx context.Context, aggregate *recycling.Submission) error

	// Get retrieves a submission by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*recycling.Submission, error)

	// DeleteAllByCustomer removes every submission made by the given
	// customer. Used when a customer account is deleted.
	DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error
}
