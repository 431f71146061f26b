// Package feedbackrepo persists order feedback.
package feedbackrepo

import (
	"time"

	"watertanker/internal/core/domain/model/feedback"
	"watertanker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FeedbackDTO represents the database structure for persisting feedback.
// The unique index on order_id enforces one feedback entry per order.
type FeedbackDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Rating     int       `gorm:""`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for feedback entities.
func (FeedbackDTO) TableName() string {
	return "feedback"
}

func fromDomain(entry *feedback.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:         entry.ID().Bytes(),
		OrderID:    entry.OrderID().Bytes(),
		CustomerID: entry.CustomerID().Bytes(),
		Rating:     entry.Rating(),
		Comment:    entry.Comment(),
	}
}

func toDomain(dto FeedbackDTO) (*feedback.Feedback, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return feedback.RestoreFeedback(id, orderID, customerID, dto.Rating, dto.Comment)
}
