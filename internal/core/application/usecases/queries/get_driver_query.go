package queries

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

// GetDriverQuery retrieves a single driver by its identifier.
type GetDriverQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverQuery creates a query for one driver.
func NewGetDriverQuery(driverID kernel.UUID) (GetDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverQuery{}, err
	}

	return GetDriverQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

// DriverID returns the identifier of the driver.
func (q GetDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}
