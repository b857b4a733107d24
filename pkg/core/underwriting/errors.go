package underwriting

import "fmt"

// InvalidInputError reports a validation failure on a property record or on
// the financial assumptions. It is raised before any derived computation
// begins; a failing input never yields a partially computed result.
type InvalidInputError struct {
	Field      string
	Constraint string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Constraint)
}

func invalidInput(field, constraint string) error {
	return &InvalidInputError{Field: field, Constraint: constraint}
}
