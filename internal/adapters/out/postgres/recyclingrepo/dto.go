// Package recyclingrepo persists recyclable submissions.
package recyclingrepo

import (
	"time"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/recycling"

	"github.com/google/uuid"
)

// SubmissionDTO represents the database structure for persisting recyclable
// submissions.
type SubmissionDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	ImageURL        string    `gorm:"type:text"`
	RecyclableType  string    `gorm:"type:text"`
	PickupOption    int       `gorm:""`
	PickupAddress   string    `gorm:"type:text"`
	DropoffLocation string    `gorm:"type:text"`
	Status          int       `gorm:"index"`
	EstimatedValue  *float64  `gorm:"type:numeric"`
	CreditedAmount  *float64  `gorm:"type:numeric"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for submission entities.
func (SubmissionDTO) TableName() string {
	return "recycling_submissions"
}

func fromDomain(submission *recycling.Submission) SubmissionDTO {
	return SubmissionDTO{
		ID:              submission.ID().Bytes(),
		CustomerID:      submission.CustomerID().Bytes(),
		ImageURL:        submission.ImageURL(),
		RecyclableType:  submission.RecyclableType(),
		PickupOption:    int(submission.Option()),
		PickupAddress:   submission.PickupAddress(),
		DropoffLocation: submission.DropoffLocation(),
		Status:          int(submission.Status()),
		EstimatedValue:  submission.EstimatedValue(),
		CreditedAmount:  submission.CreditedAmount(),
	}
}

func toDomain(dto SubmissionDTO) (*recycling.Submission, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return recycling.RestoreSubmission(
		id,
		customerID,
		dto.ImageURL,
		dto.RecyclableType,
		recycling.PickupOption(dto.PickupOption),
		dto.PickupAddress,
		dto.DropoffLocation,
		recycling.Status(dto.Status),
		dto.EstimatedValue,
		dto.CreditedAmount,
	)
}
