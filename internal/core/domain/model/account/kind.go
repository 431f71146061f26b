// Package account contains the identity aggregates: customers, drivers,
// staff, and super admins, plus the actor Kind that tags which of them an
// authenticated request acts as.
package account

import "watertanker/internal/pkg/errs"

// Kind identifies which kind of actor an account or token represents.
// It is resolved once at authentication time and carried explicitly through
// the call chain; authorization decisions switch on it rather than
// inspecting payload shapes.
type Kind int

const (
	// KindUnknown represents an invalid or undefined actor kind.
	KindUnknown Kind = iota

	// KindCustomer places orders and recyclable submissions.
	KindCustomer

	// KindDriver fulfills deliveries.
	KindDriver

	// KindStaff manages orders, drivers, and submissions.
	KindStaff

	// KindSuperAdmin has every staff permission plus staff management.
	KindSuperAdmin
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:    "unknown",
		KindCustomer:   "customer",
		KindDriver:     "driver",
		KindStaff:      "staff",
		KindSuperAdmin: "superadmin",
	}
}

// KindFromString parses the wire representation of an actor kind, as carried
// in token claims.
func KindFromString(s string) (Kind, error) {
	for k, str := range getKindStrings() {
		if k != KindUnknown && str == s {
			return k, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidError("actor kind")
}

// Validate checks that the Kind is one of the defined actor kinds.
func (k Kind) Validate() error {
	if k != KindCustomer && k != KindDriver && k != KindStaff && k != KindSuperAdmin {
		return errs.NewValueIsInvalidError("actor kind")
	}
	return nil
}

// String returns the wire representation of the actor kind.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// OneOf reports whether the kind appears in the allow-list.
func (k Kind) OneOf(allowed ...Kind) bool {
	for _, a := range allowed {
		if k == a {
			return true
		}
	}
	return false
}
