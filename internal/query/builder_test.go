package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justsurfingit/devjobs/internal/models"
)

var approved = Clause{Field: FieldApproved, Op: OpEq, Value: true}

func TestBuild(t *testing.T) {
	newestFirst := Order{Field: FieldCreatedAt, Desc: true}

	tests := []struct {
		name   string
		filter models.FilterQuery
		want   []Clause
	}{
		{
			name:   "no filters",
			filter: models.FilterQuery{},
			want:   []Clause{approved},
		},
		{
			name:   "type and remote",
			filter: models.FilterQuery{Type: "Full-time", Remote: true},
			want: []Clause{
				approved,
				{Field: FieldType, Op: OpEq, Value: "Full-time"},
				{Field: FieldLocationType, Op: OpEq, Value: "Remote"},
			},
		},
		{
			name:   "location",
			filter: models.FilterQuery{Location: "Berlin"},
			want: []Clause{
				approved,
				{Field: FieldLocation, Op: OpEq, Value: "Berlin"},
			},
		},
		{
			name:   "search terms",
			filter: models.FilterQuery{Q: " senior  Go go "},
			want: []Clause{
				approved,
				{Field: FieldSearch, Op: OpContains, Value: "senior"},
				{Field: FieldSearch, Op: OpContains, Value: "Go"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.filter)
			assert.ElementsMatch(t, tt.want, got.Clauses)
			assert.Equal(t, newestFirst, got.Order)
		})
	}
}

func TestBuildAlwaysRequiresApproval(t *testing.T) {
	filters := []models.FilterQuery{
		{},
		{Q: "x"},
		{Type: "Contract"},
		{Location: "Paris"},
		{Remote: true},
		{Q: "a b", Type: "Internship", Location: "Oslo", Remote: true},
	}
	for _, f := range filters {
		assert.Contains(t, Build(f).Clauses, approved, "filter %+v", f)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	f := models.FilterQuery{Q: "rust", Type: "Part-time", Location: "Lisbon", Remote: true}
	assert.True(t, Build(f).Equal(Build(f)))
}

func TestPredicateEqual(t *testing.T) {
	a := Build(models.FilterQuery{Type: "Contract", Remote: true})
	reordered := Predicate{Order: a.Order}
	for i := len(a.Clauses) - 1; i >= 0; i-- {
		reordered.Clauses = append(reordered.Clauses, a.Clauses[i])
	}
	assert.True(t, a.Equal(reordered))

	assert.False(t, a.Equal(Build(models.FilterQuery{Type: "Contract"})))
	assert.False(t, a.Equal(Predicate{Clauses: a.Clauses}))
}

func TestPredicateEqualComparesValueTypes(t *testing.T) {
	typed := Predicate{Clauses: []Clause{{Field: FieldApproved, Op: OpEq, Value: true}}}
	text := Predicate{Clauses: []Clause{{Field: FieldApproved, Op: OpEq, Value: "true"}}}

	assert.False(t, typed.Equal(text))
	assert.True(t, typed.Equal(Approved()))
}

func TestPredicateWhereDoesNotAlias(t *testing.T) {
	base := Approved()
	extended := base.Where(Clause{Field: FieldType, Op: OpEq, Value: "Contract"})
	assert.Len(t, base.Clauses, 1)
	assert.Len(t, extended.Clauses, 2)
}
