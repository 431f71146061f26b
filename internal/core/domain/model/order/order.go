package order

import (
	"errors"
	"fmt"
	"time"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrChargeIsNotSet is returned when a customer accepts a charge before
	// staff have set one.
	ErrChargeIsNotSet = errs.NewValueIsRequiredError("driver charge must be set before it can be accepted")
)

// Order is the aggregate root for a water delivery order. It manages the
// lifecycle from creation through charging, payment, dispatch, and delivery
// or cancellation.
//
// Invariants:
//   - Valid order and customer identifiers.
//   - Water amount is positive.
//   - A charge may be set only while the order is Pairing.
//   - Status transitions follow the state machine in Status.
//   - Payment status flips to Paid exactly when the charge is accepted.
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	destination string
	waterAmount float64

	status        Status
	paymentStatus PaymentStatus
	paymentDate   *time.Time

	driverID     *kernel.UUID
	staffID      *kernel.UUID
	driverCharge *float64

	cancellationRequested bool
	cancellationReason    string

	isConstructed bool
}

// NewOrder creates a new Order in Pairing status with payment Pending.
// Validates the identifiers, destination address, and water amount.
func NewOrder(id kernel.UUID, customerID kernel.UUID, destination string, waterAmount float64) (*Order, error) {
	o := &Order{
		status:        Pairing,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDestination(destination),
		o.setWaterAmount(waterAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. All fields are taken
// as stored; only structural validity is checked.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	destination string,
	waterAmount float64,
	status Status,
	paymentStatus PaymentStatus,
	paymentDate *time.Time,
	driverID *kernel.UUID,
	staffID *kernel.UUID,
	driverCharge *float64,
	cancellationRequested bool,
	cancellationReason string,
) (*Order, error) {
	o := &Order{
		paymentDate:           paymentDate,
		driverID:              driverID,
		staffID:               staffID,
		driverCharge:          driverCharge,
		cancellationRequested: cancellationRequested,
		cancellationReason:    cancellationReason,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDestination(destination),
		o.setWaterAmount(waterAmount),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.paymentStatus = paymentStatus
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Destination returns the delivery destination address.
func (o *Order) Destination() string {
	return o.destination
}

// WaterAmount returns the ordered amount in litres.
func (o *Order) WaterAmount() float64 {
	return o.waterAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentDate returns when payment was captured, nil if unpaid.
func (o *Order) PaymentDate() *time.Time {
	return o.paymentDate
}

// Driver returns the assigned driver's ID, nil if unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Staff returns the ID of the staff member who last acted on the order,
// nil if none has.
func (o *Order) Staff() *kernel.UUID {
	return o.staffID
}

// DriverCharge returns the charge set by staff, nil if not yet set.
func (o *Order) DriverCharge() *float64 {
	return o.driverCharge
}

// CancellationRequested reports whether the customer has flagged the order
// for cancellation.
func (o *Order) CancellationRequested() bool {
	return o.cancellationRequested
}

// CancellationReason returns the reason supplied with a cancellation or
// cancellation request, empty if none was given.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// SetCharge records the delivery charge and the staff member who set it.
// A charge may be set only while the order is Pairing; re-setting during
// Pairing overwrites the previous value.
func (o *Order) SetCharge(amount float64, staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("driver charge",
			fmt.Errorf("%f is not greater than 0", amount))
	}
	if o.status != Pairing {
		return errs.NewInvalidStateError("set charge", Pairing.String(), o.status.String())
	}

	o.driverCharge = &amount
	o.staffID = &staffID
	return nil
}

// AcceptCharge records the customer's acceptance of the charge. Payment
// capture is simulated: the order advances to PendingPayment and its payment
// status becomes Paid with the given capture time.
//
// Fails with ErrChargeIsNotSet when no charge has been set, or with an
// InvalidStateError when the order is not Pairing.
func (o *Order) AcceptCharge(capturedAt time.Time) error {
	if o.driverCharge == nil {
		return ErrChargeIsNotSet
	}

	newStatus, err := o.status.ConfirmPayment()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = PaymentPaid
	o.paymentDate = &capturedAt
	return nil
}

// AssignDriver assigns the order to a driver and records the acting staff
// member. Assignment never changes the order status: setting a charge and
// choosing a driver are independent facts during pairing, and a driver can
// be swapped while the order is still active. Assigning on a terminal order
// fails.
func (o *Order) AssignDriver(driverID kernel.UUID, staffID kernel.UUID) error {
	if err := errors.Join(driverID.Validate(), staffID.Validate()); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("assign driver", "an active status", o.status.String())
	}

	o.driverID = &driverID
	o.staffID = &staffID
	return nil
}

// Dispatch advances a paid order to EnRoute.
func (o *Order) Dispatch() error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered advances an EnRoute order to Delivered.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel cancels an order that is still Pairing, storing an optional reason.
func (o *Order) Cancel(reason string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellationReason = reason
	return nil
}

// RequestCancellation flags the order for cancellation without changing its
// status. Staff resolve the request out-of-band. Allowed on any active
// order; terminal orders cannot be flagged.
func (o *Order) RequestCancellation(reason string) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("request cancellation", "an active status", o.status.String())
	}

	o.cancellationRequested = true
	o.cancellationReason = reason
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination address")
	}
	o.destination = destination
	return nil
}

func (o *Order) setWaterAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("water amount",
			fmt.Errorf("%f is not greater than 0", amount))
	}
	o.waterAmount = amount
	return nil
}
