package queries

import (
	"context"
	"database/sql"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/recycling"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSubmissionsQueryHandler retrieves pages of recycling submissions.
type GetSubmissionsQueryHandler struct {
	db *gorm.DB
}

// NewGetSubmissionsQueryHandler creates a handler for submission list queries.
func NewGetSubmissionsQueryHandler(db *gorm.DB) GetSubmissionsQueryHandler {
	return GetSubmissionsQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of submissions, newest first.
func (h GetSubmissionsQueryHandler) Handle(
	ctx context.Context,
	query GetSubmissionsQuery,
) ([]SubmissionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			customer_id,
			image_url,
			recyclable_type,
			pickup_option,
			pickup_address,
			dropoff_location,
			status,
			estimated_value,
			credited_amount
		FROM recycling_submissions
		WHERE 1 = 1
	`
	args := make([]any, 0, 4)
	if query.CustomerID() != nil {
		sqlQuery += ` AND customer_id = ?`
		args = append(args, query.CustomerID().Bytes())
	}
	if query.Status() != nil {
		sqlQuery += ` AND status = ?`
		args = append(args, *query.Status())
	}
	sqlQuery += ` ORDER BY created_at DESC OFFSET ? LIMIT ?`
	args = append(args, query.Skip(), query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := make([]SubmissionResponse, 0)
	for rows.Next() {
		resp, scanErr := scanSubmissionRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		submissions = append(submissions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}

func scanSubmissionRow(rows *sql.Rows) (SubmissionResponse, error) {
	var resp SubmissionResponse
	var id, customerID uuid.UUID
	var pickupOption, status int
	var estimatedValue, creditedAmount sql.NullFloat64

	err := rows.Scan(
		&id,
		&customerID,
		&resp.ImageURL,
		&resp.RecyclableType,
		&pickupOption,
		&resp.PickupAddress,
		&resp.DropoffLocation,
		&status,
		&estimatedValue,
		&creditedAmount,
	)
	if err != nil {
		return SubmissionResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return SubmissionResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return SubmissionResponse{}, err
	}
	if estimatedValue.Valid {
		resp.EstimatedValue = &estimatedValue.Float64
	}
	if creditedAmount.Valid {
		resp.CreditedAmount = &creditedAmount.Float64
	}
	resp.PickupOption = recycling.PickupOption(pickupOption).String()
	resp.Status = recycling.Status(status).String()

	return resp, nil
}
