package queries

import (
	"context"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerQueryHandler retrieves a single customer from the database.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for single-customer queries.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the query to retrieve one customer.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
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
		WHERE id = ?
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return CustomerResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CustomerResponse{}, err
		}
		return CustomerResponse{}, errs.NewObjectNotFoundError("customer", query.CustomerID().String())
	}

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
		return CustomerResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return CustomerResponse{}, err
	}

	return resp, nil
}
