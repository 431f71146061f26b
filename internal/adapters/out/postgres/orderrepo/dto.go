// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer, driver, and status for the dashboard queries.
type OrderDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID            uuid.UUID  `gorm:"type:uuid;index"`
	Destination           string     `gorm:"type:text"`
	WaterAmount           float64    `gorm:"type:numeric"`
	Status                int        `gorm:"index"`
	PaymentStatus         int        `gorm:""`
	PaymentDate           *time.Time `gorm:""`
	DriverID              *uuid.UUID `gorm:"type:uuid;index"`
	StaffID               *uuid.UUID `gorm:"type:uuid"`
	DriverCharge          *float64   `gorm:"type:numeric"`
	CancellationRequested bool       `gorm:""`
	CancellationReason    string     `gorm:"type:text"`
	CreatedAt             time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		CustomerID:            aggregate.CustomerID().Bytes(),
		Destination:           aggregate.Destination(),
		WaterAmount:           aggregate.WaterAmount(),
		Status:                int(aggregate.Status()),
		PaymentStatus:         int(aggregate.PaymentStatus()),
		PaymentDate:           aggregate.PaymentDate(),
		DriverID:              optionalUUID(aggregate.Driver()),
		StaffID:               optionalUUID(aggregate.Staff()),
		DriverCharge:          aggregate.DriverCharge(),
		CancellationRequested: aggregate.CancellationRequested(),
		CancellationReason:    aggregate.CancellationReason(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := optionalKernelUUID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	staffID, err := optionalKernelUUID(dto.StaffID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.Destination,
		dto.WaterAmount,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		dto.PaymentDate,
		driverID,
		staffID,
		dto.DriverCharge,
		dto.CancellationRequested,
		dto.CancellationReason,
	)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
