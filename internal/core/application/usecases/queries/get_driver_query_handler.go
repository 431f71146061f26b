package queries

import (
	"context"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverQueryHandler retrieves a single driver from the database.
type GetDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverQueryHandler creates a handler for single-driver queries.
func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle executes the query to retrieve one driver.
func (h GetDriverQueryHandler) Handle(
	ctx context.Context,
	query GetDriverQuery,
) (DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			contact_number,
			vehicle_details,
			rate_per_litre,
			active
		FROM drivers
		WHERE id = ?
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return DriverResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DriverResponse{}, err
		}
		return DriverResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID().String())
	}

	var resp DriverResponse
	var id uuid.UUID
	err = rows.Scan(
		&id,
		&resp.FirstName,
		&resp.LastName,
		&resp.ContactNumber,
		&resp.VehicleDetails,
		&resp.RatePerLitre,
		&resp.Active,
	)
	if err != nil {
		return DriverResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DriverResponse{}, err
	}

	return resp, nil
}
