package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/acormier/liftlog/internal/constants"
)

// ValidateEmail checks that the address is well-formed. This is the only check
// the simulated login performs; there is no account registry to verify against.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

// ValidatePassword checks the minimum length rule.
func ValidatePassword(password string) error {
	if len(password) < constants.MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", constants.MinPasswordLen)
	}
	return nil
}

// ValidateName checks that a required name field is non-empty.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}
