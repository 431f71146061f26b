package payment_test

import (
	"testing"
	"time"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/payment"
	"watertanker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		paidAt := time.Now()

		p, err := payment.NewPayment(id, orderID, 100.0, payment.StatusPaid, "txn_12345", paidAt)

		require.NoError(t, err)
		assert.True(t, p.OrderID().IsEqual(orderID))
		assert.Equal(t, payment.StatusPaid, p.Status())
		assert.Equal(t, "txn_12345", p.TransactionRef())
		assert.Equal(t, paidAt, p.PaidAt())
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), 0, payment.StatusPaid, "", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_status", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), 100.0, payment.StatusUnknown, "", time.Now())
		require.Error(t, err)
	})
}

func TestPaymentStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", payment.StatusPending.String())
	assert.Equal(t, "Paid", payment.StatusPaid.String())
	assert.Equal(t, "Failed", payment.StatusFailed.String())
	assert.Equal(t, "Unknown", payment.Status(42).String())
}
