package payload

import "fmt"

// InvalidTimestampError indicates a timestamp input that parses under none of
// the accepted layouts. Payload construction aborts rather than emitting a
// garbage timestamp.
type InvalidTimestampError struct {
	Value string
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("cannot parse '%s' as a timestamp", e.Value)
}

// NewInvalidTimestampError creates a new invalid timestamp error
func NewInvalidTimestampError(value string) *InvalidTimestampError {
	return &InvalidTimestampError{Value: value}
}
