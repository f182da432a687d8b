package enums

import "fmt"

// CheckoutStep tracks the strictly linear checkout wizard position.
type CheckoutStep string

const (
	CheckoutStepAddress      CheckoutStep = "address"
	CheckoutStepShipping     CheckoutStep = "shipping"
	CheckoutStepPayment      CheckoutStep = "payment"
	CheckoutStepConfirmation CheckoutStep = "confirmation"
)

var validCheckoutSteps = []CheckoutStep{
	CheckoutStepAddress,
	CheckoutStepShipping,
	CheckoutStepPayment,
	CheckoutStepConfirmation,
}

// String implements fmt.Stringer.
func (s CheckoutStep) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CheckoutStep.
func (s CheckoutStep) IsValid() bool {
	for _, candidate := range validCheckoutSteps {
		if candidate == s {
			return true
		}
	}
	return false
}

// Previous returns the step immediately before this one. The boolean is
// false at the first step, where back navigation is a no-op.
func (s CheckoutStep) Previous() (CheckoutStep, bool) {
	switch s {
	case CheckoutStepShipping:
		return CheckoutStepAddress, true
	case CheckoutStepPayment:
		return CheckoutStepShipping, true
	}
	return s, false
}

// ParseCheckoutStep converts raw input into a CheckoutStep.
func ParseCheckoutStep(value string) (CheckoutStep, error) {
	for _, candidate := range validCheckoutSteps {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid checkout step %q", value)
}
