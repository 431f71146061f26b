package queries

import (
	"context"

	"watertanker/internal/core/domain/model/order"
	"watertanker/internal/core/domain/model/payment"

	"gorm.io/gorm"
)

// GetReportsQueryHandler aggregates order, revenue, and feedback figures
// straight from the database. COALESCE keeps an empty system reporting
// zeroes instead of NULLs.
type GetReportsQueryHandler struct {
	db *gorm.DB
}

// NewGetReportsQueryHandler creates a handler for the operational summary.
func NewGetReportsQueryHandler(db *gorm.DB) GetReportsQueryHandler {
	return GetReportsQueryHandler{db: db}
}

// Handle executes the report queries and assembles the summary.
func (h GetReportsQueryHandler) Handle(
	ctx context.Context,
	query GetReportsQuery,
) (ReportsResponse, error) {
	if err := query.Validate(); err != nil {
		return ReportsResponse{}, err
	}

	resp := ReportsResponse{
		OrdersByStatus: make(map[string]int64),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return ReportsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return ReportsResponse{}, err
		}
		resp.OrdersByStatus[order.Status(status).String()] = count
		resp.TotalOrders += count
	}
	if err = rows.Err(); err != nil {
		return ReportsResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status = ?
	`, int(payment.StatusPaid)).Row().Scan(&resp.TotalRevenue)
	if err != nil {
		return ReportsResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*), COALESCE(AVG(rating), 0)
		FROM feedback
	`).Row().Scan(&resp.FeedbackCount, &resp.AverageRating)
	if err != nil {
		return ReportsResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*), COALESCE(SUM(credited_amount), 0)
		FROM recycling_submissions
	`).Row().Scan(&resp.TotalSubmitted, &resp.TotalCredited)
	if err != nil {
		return ReportsResponse{}, err
	}

	return resp, nil
}
