package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/devjobs/internal/models"
)

func TestCoerceBool(t *testing.T) {
	tests := map[string]bool{
		"":       false,
		"false":  false,
		"FALSE":  false,
		" off ":  false,
		"0":      false,
		"no":     false,
		"true":   true,
		"on":     true,
		"1":      true,
		"yes":    true,
		"remote": true,
	}
	for in, want := range tests {
		assert.Equal(t, want, CoerceBool(in), "CoerceBool(%q)", in)
	}
}

func TestValidateFilter(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]string
		want models.FilterQuery
	}{
		{name: "empty", raw: map[string]string{}, want: models.FilterQuery{}},
		{name: "nil map", raw: nil, want: models.FilterQuery{}},
		{
			name: "type and remote",
			raw:  map[string]string{"type": "Full-time", "remote": "true"},
			want: models.FilterQuery{Type: "Full-time", Remote: true},
		},
		{
			name: "checkbox value",
			raw:  map[string]string{"remote": "on", "location": " Berlin "},
			want: models.FilterQuery{Location: "Berlin", Remote: true},
		},
		{
			name: "explicit false",
			raw:  map[string]string{"remote": "false", "q": "  golang  "},
			want: models.FilterQuery{Q: "golang"},
		},
		{
			name: "unknown keys ignored",
			raw:  map[string]string{"page": "2"},
			want: models.FilterQuery{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateFilter(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateFilterRejectsUnknownType(t *testing.T) {
	_, err := ValidateFilter(map[string]string{"type": "Gig"})
	errs := requireErrors(t, err)
	assert.Equal(t, []string{"Invalid job type"}, errs.For(FieldType))
}
