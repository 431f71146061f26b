// Package payment contains the Payment aggregate recording captured or
// attempted charges against orders.
package payment

import (
	"errors"
	"fmt"
	"time"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Status is the settlement state of a payment.
type Status int

const (
	// StatusUnknown represents an invalid or undefined payment state.
	StatusUnknown Status = iota

	// StatusPending means the payment was initiated but not settled.
	StatusPending

	// StatusPaid means the payment settled.
	StatusPaid

	// StatusFailed means the gateway rejected the payment.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		StatusPending: "Pending",
		StatusPaid:    "Paid",
		StatusFailed:  "Failed",
	}
}

// Validate checks that the Status is one of the defined states.
func (s Status) Validate() error {
	if s != StatusPending && s != StatusPaid && s != StatusFailed {
		return errs.NewValueIsInvalidError("payment status")
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Payment records one charge against an order: the amount, a gateway
// transaction reference, and when it settled.
type Payment struct {
	id             kernel.UUID
	orderID        kernel.UUID
	amount         float64
	status         Status
	transactionRef string
	paidAt         time.Time

	isConstructed bool
}

// NewPayment creates a Payment in the given status.
func NewPayment(id kernel.UUID, orderID kernel.UUID, amount float64, status Status, transactionRef string, paidAt time.Time) (*Payment, error) {
	p := &Payment{
		transactionRef: transactionRef,
		paidAt:         paidAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	p.status = status
	return p, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(id kernel.UUID, orderID kernel.UUID, amount float64, status Status, transactionRef string, paidAt time.Time) (*Payment, error) {
	return NewPayment(id, orderID, amount, status, transactionRef, paidAt)
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// OrderID returns the order this payment settles.
func (p *Payment) OrderID() kernel.UUID { return p.orderID }

// Amount returns the charged amount.
func (p *Payment) Amount() float64 { return p.amount }

// Status returns the settlement state.
func (p *Payment) Status() Status { return p.status }

// TransactionRef returns the gateway transaction reference.
func (p *Payment) TransactionRef() string { return p.transactionRef }

// PaidAt returns when the payment settled.
func (p *Payment) PaidAt() time.Time { return p.paidAt }

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.orderID = id
	return nil
}

func (p *Payment) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}
