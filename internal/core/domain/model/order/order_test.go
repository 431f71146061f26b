package order_test

import (
	"testing"
	"time"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/order"
	"watertanker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPairingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "12 Borehole Rd", 5000)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()

		o, err := order.NewOrder(id, customerID, "12 Borehole Rd", 5000)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.Pairing, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Nil(t, o.Driver())
		assert.Nil(t, o.DriverCharge())
		assert.Nil(t, o.PaymentDate())
		assert.False(t, o.CancellationRequested())
	})

	t.Run("invalid_id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), "12 Borehole Rd", 5000)
		require.Error(t, err)
	})

	t.Run("empty_destination", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", 5000)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "12 Borehole Rd", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	var zero order.Order
	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
	require.NoError(t, newPairingOrder(t).Validate())
}

func TestOrder_SetCharge(t *testing.T) {
	t.Run("allowed_while_pairing", func(t *testing.T) {
		o := newPairingOrder(t)
		staffID := kernel.NewUUID()

		require.NoError(t, o.SetCharge(20.0, staffID))

		require.NotNil(t, o.DriverCharge())
		assert.InDelta(t, 20.0, *o.DriverCharge(), 0.001)
		require.NotNil(t, o.Staff())
		assert.True(t, o.Staff().IsEqual(staffID))
		assert.Equal(t, order.Pairing, o.Status())
	})

	t.Run("overwrite_while_pairing", func(t *testing.T) {
		o := newPairingOrder(t)
		require.NoError(t, o.SetCharge(20.0, kernel.NewUUID()))
		require.NoError(t, o.SetCharge(25.0, kernel.NewUUID()))
		assert.InDelta(t, 25.0, *o.DriverCharge(), 0.001)
	})

	t.Run("rejected_after_pairing", func(t *testing.T) {
		o := newPairingOrder(t)
		require.NoError(t, o.SetCharge(20.0, kernel.NewUUID()))
		require.NoError(t, o.AcceptCharge(time.Now()))

		err := o.SetCharge(30.0, kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		o := newPairingOrder(t)
		require.ErrorIs(t, o.SetCharge(0, kernel.NewUUID()), errs.ErrValueIsInvalid)
	})
}

func TestOrder_AcceptCharge(t *testing.T) {
	t.Run("advances_to_pending_payment", func(t *testing.T) {
		o := newPairingOrder(t)
		require.NoError(t, o.SetCharge(20.0, kernel.NewUUID()))
		capturedAt := time.Now()

		require.NoError(t, o.AcceptCharge(capturedAt))

		assert.Equal(t, order.PendingPayment, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		require.NotNil(t, o.PaymentDate())
		assert.Equal(t, capturedAt, *o.PaymentDate())
	})

	t.Run("fails_without_charge", func(t *testing.T) {
		o := newPairingOrder(t)
		require.ErrorIs(t, o.AcceptCharge(time.Now()), order.ErrChargeIsNotSet)
		assert.Equal(t, order.Pairing, o.Status())
	})

	t.Run("fails_when_not_pairing", func(t *testing.T) {
		o := newPairingOrder(t)
		require.NoError(t, o.SetCharge(20.0, kernel.NewUUID()))
		require.NoError(t, o.AcceptCharge(time.Now()))

		require.ErrorIs(t, o.AcceptCharge(time.Now()), errs.ErrInvalidState)
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	t.Run("does_not_change_status", func(t *testing.T) {
		o := newPairingOrder(t)
		driverID := kernel.NewUUID()

		require.NoError(t, o.AssignDriver(driverID, kernel.NewUUID()))

		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driverID))
		assert.Equal(t, order.Pairing, o.Status())
	})

	t.Run("reassignment_allowed", func(t *testing.T) {
		o := newPairingOrder(t)
		require.NoError(t, o.AssignDriver(kernel.NewUUID(), kernel.NewUUID()))
		second := kernel.NewUUID()
		require.NoError(t, o.AssignDriver(second, kernel.NewUUID()))
		assert.True(t, o.Driver().IsEqual(second))
	})

	t.Run("rejected_on_terminal_order", func(t *testing.T) {
		o := newPairingOrder(t)
		require.NoError(t, o.Cancel(""))

		err := o.AssignDriver(kernel.NewUUID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrder_FullLifecycle(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "12 Borehole Rd", 5000)
	require.NoError(t, err)
	assert.Equal(t, order.Pairing, o.Status())

	require.NoError(t, o.SetCharge(20.0, kernel.NewUUID()))
	require.NoError(t, o.AssignDriver(kernel.NewUUID(), kernel.NewUUID()))
	require.NoError(t, o.AcceptCharge(time.Now()))
	assert.Equal(t, order.PendingPayment, o.Status())
	assert.Equal(t, order.PaymentPaid, o.PaymentStatus())

	require.NoError(t, o.Dispatch())
	assert.Equal(t, order.EnRoute, o.Status())

	require.NoError(t, o.MarkDelivered())
	assert.Equal(t, order.Delivered, o.Status())

	require.ErrorIs(t, o.Cancel("changed my mind"), errs.ErrInvalidState)
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("only_from_pairing", func(t *testing.T) {
		o := newPairingOrder(t)

		require.NoError(t, o.Cancel("found cheaper supplier"))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, "found cheaper supplier", o.CancellationReason())
	})

	t.Run("rejected_after_payment", func(t *testing.T) {
		o := newPairingOrder(t)
		require.NoError(t, o.SetCharge(20.0, kernel.NewUUID()))
		require.NoError(t, o.AcceptCharge(time.Now()))

		require.ErrorIs(t, o.Cancel(""), errs.ErrInvalidState)
	})
}

func TestOrder_RequestCancellation(t *testing.T) {
	t.Run("flags_active_order", func(t *testing.T) {
		o := newPairingOrder(t)
		require.NoError(t, o.SetCharge(20.0, kernel.NewUUID()))
		require.NoError(t, o.AcceptCharge(time.Now()))

		require.NoError(t, o.RequestCancellation("wrong address"))

		assert.True(t, o.CancellationRequested())
		assert.Equal(t, "wrong address", o.CancellationReason())
		assert.Equal(t, order.PendingPayment, o.Status())
	})

	t.Run("rejected_on_terminal_order", func(t *testing.T) {
		o := newPairingOrder(t)
		require.NoError(t, o.Cancel(""))

		require.ErrorIs(t, o.RequestCancellation(""), errs.ErrInvalidState)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		driverID := kernel.NewUUID()
		staffID := kernel.NewUUID()
		charge := 20.0
		paidAt := time.Now()

		o, err := order.RestoreOrder(
			id, customerID, "12 Borehole Rd", 5000,
			order.EnRoute, order.PaymentPaid, &paidAt,
			&driverID, &staffID, &charge,
			false, "",
		)

		require.NoError(t, err)
		assert.Equal(t, order.EnRoute, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.True(t, o.Driver().IsEqual(driverID))
		assert.InDelta(t, charge, *o.DriverCharge(), 0.001)
	})

	t.Run("invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "12 Borehole Rd", 5000,
			order.Unknown, order.PaymentPending, nil,
			nil, nil, nil,
			false, "",
		)
		require.Error(t, err)
	})
}
