package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/rifqipratama/warungkita-backend/pkg/enums"
)

// VirtualAccounts lists the bank transfer rails a seller accepts.
type VirtualAccounts struct {
	BCA     bool `json:"bca"`
	Mandiri bool `json:"mandiri"`
	BRI     bool `json:"bri"`
	BNI     bool `json:"bni"`
}

// EWallets lists the e-wallet rails a seller accepts.
type EWallets struct {
	GoPay     bool `json:"gopay"`
	OVO       bool `json:"ovo"`
	ShopeePay bool `json:"shopee_pay"`
	DANA      bool `json:"dana"`
	LinkAja   bool `json:"link_aja"`
}

// PaymentOptions is a seller's payment capability record. For a multi-seller
// cart the buyer only sees the per-method intersection of every record.
type PaymentOptions struct {
	QRIS            bool            `json:"qris"`
	VirtualAccounts VirtualAccounts `json:"virtual_accounts"`
	EWallets        EWallets        `json:"e_wallets"`
}

// Intersect applies a per-method logical AND against another record. The AND
// runs on each individual method key, never on whole categories.
func (p PaymentOptions) Intersect(other PaymentOptions) PaymentOptions {
	return PaymentOptions{
		QRIS: p.QRIS && other.QRIS,
		VirtualAccounts: VirtualAccounts{
			BCA:     p.VirtualAccounts.BCA && other.VirtualAccounts.BCA,
			Mandiri: p.VirtualAccounts.Mandiri && other.VirtualAccounts.Mandiri,
			BRI:     p.VirtualAccounts.BRI && other.VirtualAccounts.BRI,
			BNI:     p.VirtualAccounts.BNI && other.VirtualAccounts.BNI,
		},
		EWallets: EWallets{
			GoPay:     p.EWallets.GoPay && other.EWallets.GoPay,
			OVO:       p.EWallets.OVO && other.EWallets.OVO,
			ShopeePay: p.EWallets.ShopeePay && other.EWallets.ShopeePay,
			DANA:      p.EWallets.DANA && other.EWallets.DANA,
			LinkAja:   p.EWallets.LinkAja && other.EWallets.LinkAja,
		},
	}
}

// HasAny reports whether at least one method remains enabled. A false result
// is the "no common payment method" terminal blocking condition.
func (p PaymentOptions) HasAny() bool {
	return p.QRIS ||
		p.VirtualAccounts.BCA || p.VirtualAccounts.Mandiri ||
		p.VirtualAccounts.BRI || p.VirtualAccounts.BNI ||
		p.EWallets.GoPay || p.EWallets.OVO ||
		p.EWallets.ShopeePay || p.EWallets.DANA || p.EWallets.LinkAja
}

// Enabled reports whether the given payment method is switched on.
func (p PaymentOptions) Enabled(method enums.PaymentMethod) bool {
	switch method {
	case enums.PaymentMethodQRIS:
		return p.QRIS
	case enums.PaymentMethodVABCA:
		return p.VirtualAccounts.BCA
	case enums.PaymentMethodVAMandiri:
		return p.VirtualAccounts.Mandiri
	case enums.PaymentMethodVABRI:
		return p.VirtualAccounts.BRI
	case enums.PaymentMethodVABNI:
		return p.VirtualAccounts.BNI
	case enums.PaymentMethodGoPay:
		return p.EWallets.GoPay
	case enums.PaymentMethodOVO:
		return p.EWallets.OVO
	case enums.PaymentMethodShopeePay:
		return p.EWallets.ShopeePay
	case enums.PaymentMethodDANA:
		return p.EWallets.DANA
	case enums.PaymentMethodLinkAja:
		return p.EWallets.LinkAja
	}
	return false
}

// Value serializes the capability record to JSON for the catalog store.
func (p PaymentOptions) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan decodes the stored JSON back into the capability record.
func (p *PaymentOptions) Scan(value interface{}) error {
	if value == nil {
		*p = PaymentOptions{}
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, p)
}

func asJSON(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported scan type %T", value)
	}
}
