package queries

import (
	"context"

	"watertanker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetSubmissionQueryHandler retrieves a single submission from the database.
type GetSubmissionQueryHandler struct {
	db *gorm.DB
}

// NewGetSubmissionQueryHandler creates a handler for single-submission queries.
func NewGetSubmissionQueryHandler(db *gorm.DB) GetSubmissionQueryHandler {
	return GetSubmissionQueryHandler{db: db}
}

// Handle executes the query to retrieve one submission.
func (h GetSubmissionQueryHandler) Handle(
	ctx context.Context,
	query GetSubmissionQuery,
) (SubmissionResponse, error) {
	if err := query.Validate(); err != nil {
		return SubmissionResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.SubmissionID().Bytes()).Rows()
	if err != nil {
		return SubmissionResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return SubmissionResponse{}, err
		}
		return SubmissionResponse{}, errs.NewObjectNotFoundError("submission", query.SubmissionID().String())
	}

	return scanSubmissionRow(rows)
}
