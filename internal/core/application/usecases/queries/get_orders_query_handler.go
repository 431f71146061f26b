package queries

import (
	"context"
	"database/sql"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves pages of orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	status := order.Pairing
//	query, _ := NewGetOrdersQuery(&status, 0, 50)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
//	fmt.Printf("Found %d orders awaiting a quote\n", len(orders))
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of orders, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			customer_id,
			destination,
			water_amount,
			status,
			payment_status,
			payment_date,
			driver_id,
			staff_id,
			driver_charge,
			cancellation_requested,
			cancellation_reason
		FROM orders
	`
	args := make([]any, 0, 3)
	if query.Status() != nil {
		sqlQuery += ` WHERE status = ?`
		args = append(args, *query.Status())
	}
	sqlQuery += ` ORDER BY created_at DESC OFFSET ? LIMIT ?`
	args = append(args, query.Skip(), query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id, customerID uuid.UUID
	var driverID, staffID uuid.NullUUID
	var status, paymentStatus int
	var paymentDate sql.NullTime
	var driverCharge sql.NullFloat64

	err := rows.Scan(
		&id,
		&customerID,
		&resp.Destination,
		&resp.WaterAmount,
		&status,
		&paymentStatus,
		&paymentDate,
		&driverID,
		&staffID,
		&driverCharge,
		&resp.CancellationRequested,
		&resp.CancellationReason,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderResponse{}, err
	}
	if driverID.Valid {
		converted, convErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if convErr != nil {
			return OrderResponse{}, convErr
		}
		resp.DriverID = &converted
	}
	if staffID.Valid {
		converted, convErr := kernel.UUIDFromBytes(staffID.UUID[:])
		if convErr != nil {
			return OrderResponse{}, convErr
		}
		resp.StaffID = &converted
	}
	if paymentDate.Valid {
		resp.PaymentDate = &paymentDate.Time
	}
	if driverCharge.Valid {
		resp.DriverCharge = &driverCharge.Float64
	}

	resp.Status = order.Status(status).String()
	resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()

	return resp, nil
}
