// Package driverrepo persists driver accounts.
package driverrepo

import (
	"time"

	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting drivers.
// The contact number is the driver's login identifier and is unique.
type DriverDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName      string    `gorm:"type:text"`
	LastName       string    `gorm:"type:text"`
	ContactNumber  string    `gorm:"type:text;uniqueIndex"`
	PasswordHash   string    `gorm:"type:text"`
	VehicleDetails string    `gorm:"type:text"`
	RatePerLitre   float64   `gorm:"type:numeric"`
	Active         bool      `gorm:"index"`
	CreatedAt      time.Time
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(driver *account.Driver) DriverDTO {
	return DriverDTO{
		ID:             driver.ID().Bytes(),
		FirstName:      driver.FirstName(),
		LastName:       driver.LastName(),
		ContactNumber:  driver.ContactNumber(),
		PasswordHash:   driver.PasswordHash(),
		VehicleDetails: driver.VehicleDetails(),
		RatePerLitre:   driver.RatePerLitre(),
		Active:         driver.IsActive(),
	}
}

func toDomain(dto DriverDTO) (*account.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreDriver(
		id,
		dto.FirstName,
		dto.LastName,
		dto.ContactNumber,
		dto.PasswordHash,
		dto.VehicleDetails,
		dto.RatePerLitre,
		dto.Active,
	)
}
