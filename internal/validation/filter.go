package validation

import (
	"strings"

	"github.com/justsurfingit/devjobs/internal/models"
)

const (
	FieldQ      = "q"
	FieldRemote = "remote"
)

type filterInput struct {
	Type string `form:"type" validate:"omitempty,job_type"`
}

// falsy lists the spellings of remote that mean "not set". Every other value,
// including "on" from an HTML checkbox, means true.
var falsy = map[string]bool{
	"":      true,
	"false": true,
	"0":     true,
	"off":   true,
	"no":    true,
}

// CoerceBool applies the remote coercion table. Comparison is
// case-insensitive and ignores surrounding whitespace.
func CoerceBool(v string) bool {
	return !falsy[strings.ToLower(strings.TrimSpace(v))]
}

// ValidateFilter turns raw listing parameters into a FilterQuery. All fields
// are optional; only an unknown job type is rejected.
func ValidateFilter(raw map[string]string) (models.FilterQuery, error) {
	in := filterInput{Type: strings.TrimSpace(raw[FieldType])}

	var errs ValidationErrors
	if err := validateStruct(in, &errs); err != nil {
		return models.FilterQuery{}, err
	}
	if len(errs) > 0 {
		return models.FilterQuery{}, errs
	}

	return models.FilterQuery{
		Q:        strings.TrimSpace(raw[FieldQ]),
		Type:     in.Type,
		Location: strings.TrimSpace(raw[FieldLocation]),
		Remote:   CoerceBool(raw[FieldRemote]),
	}, nil
}
