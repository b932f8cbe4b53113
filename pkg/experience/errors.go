// Error types produced by the assembly flow. Handlers map these to HTTP
// status codes; see pkg/handlers.
package experience

import "fmt"

// ValidationError reports malformed client input, detected before any
// external call is made. Maps to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// GenerationError reports that the completion provider was unreachable or
// produced output that could not be interpreted. Maps to 500.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *GenerationError) Unwrap() error { return e.Err }

// SchemaError reports generated content that parsed as JSON but is missing a
// required section, or a required field within one. Maps to 500 with a
// message naming the offending section.
type SchemaError struct {
	Section string
	Field   string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("generated content missing section %q", e.Section)
	}
	return fmt.Sprintf("generated content section %q has a missing or invalid %q field", e.Section, e.Field)
}
