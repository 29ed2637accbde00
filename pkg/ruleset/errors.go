package ruleset

import "fmt"

// RegistryError indicates a registry operation failure.
type RegistryError struct {
	Operation string
	Message   string
}

// Error returns the error message.
func (e *RegistryError) Error() string {
	return fmt.Sprintf("registry %s: %s", e.Operation, e.Message)
}

// LoadError indicates a rule file could not be loaded.
type LoadError struct {
	Path  string
	Cause error
}

// Error returns the error message.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load rule file %q: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Cause
}
