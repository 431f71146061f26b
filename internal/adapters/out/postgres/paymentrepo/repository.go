package paymentrepo

import (
	"context"
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/payment"
	"watertanker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment record to the database.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"payment for order", aggregate.OrderID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrder retrieves the payment recorded for the given order.
func (r *GormPaymentRepository) GetByOrder(
	ctx context.Context, orderID kernel.UUID,
) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteAllByCustomer removes every payment recorded against the given
// customer's orders. Payments carry no customer column, so the customer's
// orders are resolved in a subquery.
func (r *GormPaymentRepository) DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&PaymentDTO{},
			"order_id IN (SELECT id FROM orders WHERE customer_id = ?)",
			customerID.Bytes()).Error
}
