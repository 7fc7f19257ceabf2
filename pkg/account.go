package pkg

import (
	"fmt"
	"strings"
)

const maxAccountLength = 128

// ValidateAccount checks the shape of an account identifier before it
// reaches the ledger. Identifiers are opaque to the ledger itself; this only
// rejects obviously broken input early.
func ValidateAccount(account string) error {
	if account == "" {
		return fmt.Errorf("account is required")
	}
	if len(account) > maxAccountLength {
		return fmt.Errorf("account exceeds %d characters", maxAccountLength)
	}
	if strings.TrimSpace(account) != account {
		return fmt.Errorf("account must not contain leading or trailing whitespace")
	}
	return nil
}
