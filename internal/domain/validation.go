package domain

import "fmt"

// ValidationError reports the first field of a record that fails its
// constraint. Handlers surface it as a client error before anything
// reaches storage.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
