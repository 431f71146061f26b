// Package customerrepo persists customer accounts.
package customerrepo

import (
	"time"

	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
// The email carries a unique index so duplicate signups fail at the
// database even under concurrent registration.
type CustomerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName     string    `gorm:"type:text"`
	LastName      string    `gorm:"type:text"`
	Email         string    `gorm:"type:text;uniqueIndex"`
	PasswordHash  string    `gorm:"type:text"`
	Address       string    `gorm:"type:text"`
	ContactNumber string    `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(customer *account.Customer) CustomerDTO {
	return CustomerDTO{
		ID:            customer.ID().Bytes(),
		FirstName:     customer.FirstName(),
		LastName:      customer.LastName(),
		Email:         customer.Email(),
		PasswordHash:  customer.PasswordHash(),
		Address:       customer.Address(),
		ContactNumber: customer.ContactNumber(),
	}
}

func toDomain(dto CustomerDTO) (*account.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreCustomer(
		id,
		dto.FirstName,
		dto.LastName,
		dto.Email,
		dto.PasswordHash,
		dto.Address,
		dto.ContactNumber,
	)
}
