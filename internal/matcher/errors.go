package matcher

import "fmt"

// InvalidPatternError is returned when a pattern cannot be compiled.
type InvalidPatternError struct {
	Pattern string
	Engine  string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid %s pattern %q: %v", e.Engine, e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }
