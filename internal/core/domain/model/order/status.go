package order

import (
	"watertanker/internal/pkg/errs"
)

// Status represents the lifecycle state of a water delivery order.
// It implements a state machine with defined transitions so every order
// follows the same workflow regardless of which operation drives it.
//
// State transitions:
//
//	Pairing ──> PendingPayment ──> EnRoute ──> Delivered
//	   │
//	   └──> Cancelled
//
// Pairing is the only state from which an order can be cancelled. A
// customer may flag a cancellation request on any active order, but that is
// a side channel on the aggregate, not a status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pairing is the initial status: the order awaits a charge and a driver.
	Pairing

	// PendingPayment indicates the customer accepted the charge and payment
	// has been captured; the order awaits dispatch.
	PendingPayment

	// EnRoute indicates the order has been dispatched for delivery.
	EnRoute

	// Delivered is a final state: the order reached its destination.
	Delivered

	// Cancelled is a final state: the order was cancelled while Pairing.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pairing:        "Pairing",
		PendingPayment: "PendingPayment",
		EnRoute:        "EnRoute",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pairing:        "Pairing",
		PendingPayment: "PendingPayment",
		EnRoute:        "EnRoute",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// StatusFromString parses the human-readable name of a status, as carried
// in list filters. Unknown names fail validation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// Validate checks that the Status value is one of the defined statuses.
// Unknown (0) and any other values are invalid. Used when reconstructing
// orders from persistence or parsing statuses from requests.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ConfirmPayment transitions the status to PendingPayment.
//
// Valid transition: Pairing -> PendingPayment (charge accepted, payment
// captured). Any other current status fails with an InvalidStateError
// naming the required and actual statuses.
func (s Status) ConfirmPayment() (Status, error) {
	if s != Pairing {
		return Unknown, errs.NewInvalidStateError("accept charge", Pairing.String(), s.String())
	}
	return PendingPayment, nil
}

// Dispatch transitions the status to EnRoute.
//
// Valid transition: PendingPayment -> EnRoute. A paid order is handed to its
// driver; dispatching an unpaid or already-moving order fails.
func (s Status) Dispatch() (Status, error) {
	if s != PendingPayment {
		return Unknown, errs.NewInvalidStateError("dispatch", PendingPayment.String(), s.String())
	}
	return EnRoute, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transition: EnRoute -> Delivered. Delivered is final.
func (s Status) Deliver() (Status, error) {
	if s != EnRoute {
		return Unknown, errs.NewInvalidStateError("mark delivered", EnRoute.String(), s.String())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transition: Pairing -> Cancelled. Once a charge has been accepted
// the order can no longer be cancelled directly; a cancellation request must
// be resolved by staff instead.
func (s Status) Cancel() (Status, error) {
	if s != Pairing {
		return Unknown, errs.NewInvalidStateError("cancel", Pairing.String(), s.String())
	}
	return Cancelled, nil
}
