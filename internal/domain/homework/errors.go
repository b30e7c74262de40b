package homework

import "fmt"

// Reasons reported by SchemaError.
const (
	ReasonNotMapping       = "not a mapping"
	ReasonMissingHomeworks = "missing homeworks key"
	ReasonHomeworksNotList = "homeworks not a list"
)

// UpstreamError is returned when the homework API answers with a non-200 status.
type UpstreamError struct {
	StatusCode int
	Endpoint   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("homework API %s responded with status %d", e.Endpoint, e.StatusCode)
}

// SchemaError reports an API response that does not have the envelope shape.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "invalid API response: " + e.Reason
}

// MissingFieldError reports a homework record without a required field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("homework record has no %q field", e.Field)
}

// UnknownStatusError reports a homework status outside the known verdicts.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status %q", e.Status)
}
