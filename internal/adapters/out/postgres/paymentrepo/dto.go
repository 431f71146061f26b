// Package paymentrepo persists payment records.
package paymentrepo

import (
	"time"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payments.
// One payment per order.
type PaymentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Amount         float64   `gorm:"type:numeric"`
	Status         int       `gorm:""`
	TransactionRef string    `gorm:"type:text"`
	PaidAt         time.Time
	CreatedAt      time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(record *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:             record.ID().Bytes(),
		OrderID:        record.OrderID().Bytes(),
		Amount:         record.Amount(),
		Status:         int(record.Status()),
		TransactionRef: record.TransactionRef(),
		PaidAt:         record.PaidAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		dto.Amount,
		payment.Status(dto.Status),
		dto.TransactionRef,
		dto.PaidAt,
	)
}
