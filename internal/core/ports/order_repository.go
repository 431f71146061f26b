// Package ports defines repository interfaces for the water delivery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateInStatus persists changes to an existing order aggregate only if
	// its stored status still equals expected. Returns an ErrInvalidState
	// error when the stored row has already moved to a different status, so
	// concurrent lifecycle transitions cannot clobber each other.
	UpdateInStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves every order placed by the given customer,
	// newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// DeleteAllByCustomer removes every order placed by the given customer.
	// Used when a customer account is deleted.
	DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error
}
