// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"watertanker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition it needs, so tests mock
// only the repositories the handler actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// StaffRepoFactory provides access to the staff repository within a transaction.
	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// FeedbackRepoFactory provides access to the feedback repository within a transaction.
	FeedbackRepoFactory interface {
		FeedbackRepository() ports.FeedbackRepository
	}

	// RecyclingRepoFactory provides access to the recycling repository within a transaction.
	RecyclingRepoFactory interface {
		RecyclingRepository() ports.RecyclingRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderPaymentUoW manages transactions that settle an order and record
	// its payment atomically.
	OrderPaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// OrderPaymentUoWFactory creates new order/payment unit of work instances.
	OrderPaymentUoWFactory interface {
		Create() OrderPaymentUoW
	}

	// OrderDriverUoW manages transactions that coordinate order and driver
	// aggregates, such as assignment.
	OrderDriverUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// OrderDriverUoWFactory creates new order/driver unit of work instances.
	OrderDriverUoWFactory interface {
		Create() OrderDriverUoW
	}

	// OrderFeedbackUoW manages transactions that read an order and write its
	// feedback.
	OrderFeedbackUoW interface {
		TxManager
		OrderRepoFactory
		FeedbackRepoFactory
	}

	// OrderFeedbackUoWFactory creates new order/feedback unit of work instances.
	OrderFeedbackUoWFactory interface {
		Create() OrderFeedbackUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// CustomerPurgeUoW manages the transaction that deletes a customer
	// together with everything the customer owns.
	CustomerPurgeUoW interface {
		TxManager
		CustomerRepoFactory
		OrderRepoFactory
		PaymentRepoFactory
		FeedbackRepoFactory
		RecyclingRepoFactory
	}

	// CustomerPurgeUoWFactory creates new customer purge unit of work instances.
	CustomerPurgeUoWFactory interface {
		Create() CustomerPurgeUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// StaffUoW manages transactions for staff-only operations.
	StaffUoW interface {
		TxManager
		StaffRepoFactory
	}

	// StaffUoWFactory creates new staff unit of work instances.
	StaffUoWFactory interface {
		Create() StaffUoW
	}

	// DenylistRepoFactory provides access to the token denylist within a transaction.
	DenylistRepoFactory interface {
		TokenDenylist() ports.TokenDenylist
	}

	// DenylistUoW manages transactions over the token denylist.
	DenylistUoW interface {
		TxManager
		DenylistRepoFactory
	}

	// DenylistUoWFactory creates new denylist unit of work instances.
	DenylistUoWFactory interface {
		Create() DenylistUoW
	}

	// RecyclingUoW manages transactions for recycling submissions.
	RecyclingUoW interface {
		TxManager
		RecyclingRepoFactory
	}

	// RecyclingUoWFactory creates new recycling unit of work instances.
	RecyclingUoWFactory interface {
		Create() RecyclingUoW
	}
)
