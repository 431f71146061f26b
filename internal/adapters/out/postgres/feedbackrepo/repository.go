package feedbackrepo

import (
	"context"
	"errors"

	"watertanker/internal/core/domain/model/feedback"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFeedbackRepository implements FeedbackRepository using GORM.
type GormFeedbackRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFeedbackRepository creates a new GORM feedback repository.
func NewGormFeedbackRepository(db *gorm.DB, tracker aggregateTracker) *GormFeedbackRepository {
	return &GormFeedbackRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new feedback entry to the database.
func (r *GormFeedbackRepository) Add(ctx context.Context, aggregate *feedback.Feedback) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"feedback for order", aggregate.OrderID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrder retrieves the feedback left for the given order.
func (r *GormFeedbackRepository) GetByOrder(
	ctx context.Context, orderID kernel.UUID,
) (*feedback.Feedback, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto FeedbackDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("feedback for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteAllByCustomer removes every feedback entry left by the given customer.
func (r *GormFeedbackRepository) DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&FeedbackDTO{}, "customer_id = ?", customerID.Bytes()).Error
}
