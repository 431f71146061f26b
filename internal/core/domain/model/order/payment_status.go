package order

import "watertanker/internal/pkg/errs"

// PaymentStatus tracks whether the order's charge has been paid.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status.
	PaymentPending

	// PaymentPaid indicates the charge has been captured.
	PaymentPaid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "Unknown",
		PaymentPending: "Pending",
		PaymentPaid:    "Paid",
	}
}

// Validate checks that the PaymentStatus value is defined.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentPaid {
		return errs.NewValueIsInvalidError("payment status")
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
