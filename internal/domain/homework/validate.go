package homework

import (
	"encoding/json"
	"math"
)

// Validate checks the envelope shape and returns the homeworks list as received.
func Validate(payload any) ([]any, error) {
	envelope, ok := payload.(map[string]any)
	if !ok {
		return nil, &SchemaError{Reason: ReasonNotMapping}
	}
	raw, ok := envelope[KeyHomeworks]
	if !ok {
		return nil, &SchemaError{Reason: ReasonMissingHomeworks}
	}
	homeworks, ok := raw.([]any)
	if !ok {
		return nil, &SchemaError{Reason: ReasonHomeworksNotList}
	}
	return homeworks, nil
}

// CurrentDate extracts the server cursor from a validated envelope.
// The second result is false when the field is absent or not an integer.
func CurrentDate(payload any) (int64, bool) {
	envelope, ok := payload.(map[string]any)
	if !ok {
		return 0, false
	}
	switch v := envelope[KeyCurrentDate].(type) {
	case json.Number:
		ts, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return ts, true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
