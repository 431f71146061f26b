package account

import (
	"strings"

	"watertanker/internal/pkg/errs"
)

// validateEmail applies the minimal structural check shared by every
// account type. Full address validation is the mail system's problem.
func validateEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidError("email")
	}
	return nil
}
