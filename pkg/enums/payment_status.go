package enums

import "fmt"

// PaymentStatus models the simulated post-checkout confirmation lifecycle.
// Only QRIS walks awaiting_payment -> confirming -> confirmed; every other
// method lands on pending_instructions immediately.
type PaymentStatus string

const (
	PaymentStatusAwaitingPayment     PaymentStatus = "awaiting_payment"
	PaymentStatusConfirming          PaymentStatus = "confirming"
	PaymentStatusConfirmed           PaymentStatus = "confirmed"
	PaymentStatusPendingInstructions PaymentStatus = "pending_instructions"
)

var validPaymentStatuses = []PaymentStatus{
	PaymentStatusAwaitingPayment,
	PaymentStatusConfirming,
	PaymentStatusConfirmed,
	PaymentStatusPendingInstructions,
}

// String implements fmt.Stringer.
func (p PaymentStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentStatus.
func (p PaymentStatus) IsValid() bool {
	for _, candidate := range validPaymentStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentStatus converts raw input into a PaymentStatus.
func ParsePaymentStatus(value string) (PaymentStatus, error) {
	for _, candidate := range validPaymentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment status %q", value)
}
