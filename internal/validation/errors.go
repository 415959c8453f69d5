package validation

import (
	"strings"
)

type Kind string

const (
	// KindField errors come from a rule on a single field.
	KindField Kind = "field"
	// KindCrossField errors come from a refinement spanning several fields and
	// are attached to one of them for display.
	KindCrossField Kind = "cross_field"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
}

// ValidationErrors is every problem found in one input. It is returned as an
// error and is never empty when returned.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// For returns the messages attached to field, in the order they were found.
func (v ValidationErrors) For(field string) []string {
	var msgs []string
	for _, e := range v {
		if e.Field == field {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

func (v ValidationErrors) Has(field string) bool {
	for _, e := range v {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (v ValidationErrors) ByField() map[string][]string {
	out := make(map[string][]string, len(v))
	for _, e := range v {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

func (v *ValidationErrors) add(field, message string, kind Kind) {
	*v = append(*v, ValidationError{Field: field, Message: message, Kind: kind})
}
