package enums

import "fmt"

// PaymentMethod identifies one concrete payment rail a buyer can pick.
type PaymentMethod string

const (
	PaymentMethodQRIS      PaymentMethod = "qris"
	PaymentMethodVABCA     PaymentMethod = "va_bca"
	PaymentMethodVAMandiri PaymentMethod = "va_mandiri"
	PaymentMethodVABRI     PaymentMethod = "va_bri"
	PaymentMethodVABNI     PaymentMethod = "va_bni"
	PaymentMethodGoPay     PaymentMethod = "gopay"
	PaymentMethodOVO       PaymentMethod = "ovo"
	PaymentMethodShopeePay PaymentMethod = "shopee_pay"
	PaymentMethodDANA      PaymentMethod = "dana"
	PaymentMethodLinkAja   PaymentMethod = "link_aja"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodQRIS,
	PaymentMethodVABCA,
	PaymentMethodVAMandiri,
	PaymentMethodVABRI,
	PaymentMethodVABNI,
	PaymentMethodGoPay,
	PaymentMethodOVO,
	PaymentMethodShopeePay,
	PaymentMethodDANA,
	PaymentMethodLinkAja,
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// IsVirtualAccount reports whether the method is a bank virtual account.
func (p PaymentMethod) IsVirtualAccount() bool {
	switch p {
	case PaymentMethodVABCA, PaymentMethodVAMandiri, PaymentMethodVABRI, PaymentMethodVABNI:
		return true
	}
	return false
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
