package queries

import (
	"context"

	"watertanker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersQueryHandler retrieves pages of customers for the admin dashboard.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer list queries.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of customers sorted by name.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			email,
			address,
			contact_number
		FROM customers
		ORDER BY last_name, first_name
		OFFSET ? LIMIT ?
	`, query.Skip(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerResponse, 0)
	for rows.Next() {
		var resp CustomerResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.FirstName,
			&resp.LastName,
			&resp.Email,
			&resp.Address,
			&resp.ContactNumber,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
