package types

import "strings"

// Address is the delivery address captured at the first checkout step.
// Every field is required; validation happens before the state machine
// advances, never against an external service.
type Address struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}

// Normalize trims surrounding whitespace on every field.
func (a Address) Normalize() Address {
	return Address{
		Name:       strings.TrimSpace(a.Name),
		Phone:      strings.TrimSpace(a.Phone),
		Street:     strings.TrimSpace(a.Street),
		City:       strings.TrimSpace(a.City),
		Province:   strings.TrimSpace(a.Province),
		PostalCode: strings.TrimSpace(a.PostalCode),
	}
}

// FieldErrors reports per-field messages for empty required fields after
// trimming. An empty map means the address is valid.
func (a Address) FieldErrors() map[string]string {
	normalized := a.Normalize()
	errs := map[string]string{}
	if normalized.Name == "" {
		errs["name"] = "is required"
	}
	if normalized.Phone == "" {
		errs["phone"] = "is required"
	}
	if normalized.Street == "" {
		errs["street"] = "is required"
	}
	if normalized.City == "" {
		errs["city"] = "is required"
	}
	if normalized.Province == "" {
		errs["province"] = "is required"
	}
	if normalized.PostalCode == "" {
		errs["postal_code"] = "is required"
	}
	return errs
}
