package queries

import (
	"context"

	"watertanker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriversQueryHandler retrieves pages of drivers for the admin dashboard.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for driver list queries.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of drivers sorted by name.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context,
	query GetDriversQuery,
) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			first_name,
			last_name,
			contact_number,
			vehicle_details,
			rate_per_litre,
			active
		FROM drivers
	`
	args := make([]any, 0, 2)
	if query.ActiveOnly() {
		sqlQuery += ` WHERE active`
	}
	sqlQuery += ` ORDER BY last_name, first_name OFFSET ? LIMIT ?`
	args = append(args, query.Skip(), query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]DriverResponse, 0)
	for rows.Next() {
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
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
