package query

import (
	"fmt"
	"sort"
)

type Op string

const (
	OpEq Op = "eq"
	// OpContains is a case-insensitive substring match.
	OpContains Op = "contains"
)

// Fields a predicate may reference. The store maps them onto columns.
const (
	FieldApproved     = "approved"
	FieldType         = "type"
	FieldLocation     = "location"
	FieldLocationType = "locationType"
	FieldCreatedAt    = "createdAt"
	// FieldSearch is the text a free-text term is matched against: title,
	// company name, type, location type and location.
	FieldSearch = "search"
)

type Clause struct {
	Field string
	Op    Op
	Value interface{}
}

func (c Clause) String() string {
	return fmt.Sprintf("%s %s %v", c.Field, c.Op, c.Value)
}

type Order struct {
	Field string
	Desc  bool
}

// Predicate is a conjunction of clauses plus the ordering of the result.
type Predicate struct {
	Clauses []Clause
	Order   Order
}

// Where returns p with extra clauses appended.
func (p Predicate) Where(clauses ...Clause) Predicate {
	out := make([]Clause, 0, len(p.Clauses)+len(clauses))
	out = append(out, p.Clauses...)
	out = append(out, clauses...)
	p.Clauses = out
	return p
}

// Equal reports whether p and other select the same records in the same
// order. Clause order is irrelevant.
func (p Predicate) Equal(other Predicate) bool {
	if p.Order != other.Order || len(p.Clauses) != len(other.Clauses) {
		return false
	}
	a, b := p.clauseKeys(), other.clauseKeys()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// clauseKeys identifies clauses by field, op and typed value, so true and
// "true" stay distinct.
func (p Predicate) clauseKeys() []string {
	keys := make([]string, len(p.Clauses))
	for i, c := range p.Clauses {
		keys[i] = fmt.Sprintf("%s %s %T:%v", c.Field, c.Op, c.Value, c.Value)
	}
	sort.Strings(keys)
	return keys
}
