package store

import "strings"

// isUniqueViolation sniffs the driver error text; modernc/sqlite does not
// export a stable typed error for constraint failures.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
