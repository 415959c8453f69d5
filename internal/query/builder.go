package query

import (
	"strings"

	"github.com/justsurfingit/devjobs/internal/models"
)

// Build translates a validated filter into the predicate used to list jobs.
//
// Only approved jobs are ever selected. Each free-text term becomes its own
// contains clause, so a job matches when every term appears somewhere in its
// searchable text. Results are newest first.
func Build(filter models.FilterQuery) Predicate {
	var clauses []Clause
	for _, term := range SearchTerms(filter.Q) {
		clauses = append(clauses, Clause{Field: FieldSearch, Op: OpContains, Value: term})
	}
	if filter.Type != "" {
		clauses = append(clauses, Clause{Field: FieldType, Op: OpEq, Value: filter.Type})
	}
	if filter.Location != "" {
		clauses = append(clauses, Clause{Field: FieldLocation, Op: OpEq, Value: filter.Location})
	}
	if filter.Remote {
		clauses = append(clauses, Clause{Field: FieldLocationType, Op: OpEq, Value: models.LocationRemote})
	}

	p := Approved().Where(clauses...)
	p.Order = Order{Field: FieldCreatedAt, Desc: true}
	return p
}

// Approved selects every visible job, with no particular order. It backs the
// location choice list.
func Approved() Predicate {
	return Predicate{Clauses: []Clause{{Field: FieldApproved, Op: OpEq, Value: true}}}
}

// SearchTerms splits q on whitespace, dropping duplicates case-insensitively.
func SearchTerms(q string) []string {
	var terms []string
	seen := make(map[string]bool)
	for _, word := range strings.Fields(q) {
		key := strings.ToLower(word)
		if seen[key] {
			continue
		}
		seen[key] = true
		terms = append(terms, word)
	}
	return terms
}
