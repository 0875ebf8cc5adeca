package cuif

import "fmt"

// ValidationError reports caller input rejected before any network call is
// made: an inverted date range, an unknown entity type or unit, or a missing
// template.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// DataIntegrityError reports source or template data that cannot be pivoted
// or reconciled without silently dropping or overwriting values, such as a
// duplicate (account, entity) pair or a template row with no account code.
type DataIntegrityError struct {
	Account string
	Entity  string
	Message string
}

func (e *DataIntegrityError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("data integrity: account %q, entity %q: %s", e.Account, e.Entity, e.Message)
	}
	return fmt.Sprintf("data integrity: account %q: %s", e.Account, e.Message)
}
