package rule

import "github.com/rulelang/rulelang/internal/value"

// Literal is the value-lattice representation of a predicate operand
// written in the DSL source (a number, string, boolean, date, duration, or
// list literal).
type Literal = value.Value

// Predicate is one of the closed set of comparison, list, and emptiness
// predicates a condition leaf can apply.
type Predicate int

const (
	IsEqualTo Predicate = iota
	IsNotEqualTo
	IsTheSameAs
	IsNotTheSameAs
	IsExactlyEqualTo
	IsGreaterThan
	IsLessThan
	IsGreaterThanOrEqualTo
	IsLessThanOrEqualTo
	IsLaterThan
	IsEarlierThan
	IsOlderThan
	IsYoungerThan
	IsWithin
	Contains
	IsIn
	IsNotIn
	IsEmpty
	IsNotEmpty
)

// predicateNames lists every accepted phrase (including aliases) for each
// predicate, canonical phrase first; String reports that first phrase. The
// grammar (internal/dsl/grammar.go) spells out its own ordered phrase
// alternatives and does not read this table.
var predicateNames = map[Predicate][]string{
	IsGreaterThanOrEqualTo: {"is greater than or equal to", "is at least"},
	IsLessThanOrEqualTo:    {"is less than or equal to", "is no more than"},
	IsGreaterThan:          {"is greater than"},
	IsLessThan:             {"is less than"},
	IsExactlyEqualTo:       {"is exactly equal to"},
	IsNotEqualTo:           {"is not equal to"},
	IsEqualTo:              {"is equal to"},
	IsNotTheSameAs:         {"is not the same as"},
	IsTheSameAs:            {"is the same as"},
	IsLaterThan:            {"is later than"},
	IsEarlierThan:          {"is earlier than"},
	IsOlderThan:            {"is older than"},
	IsYoungerThan:          {"is younger than"},
	IsWithin:               {"is within"},
	Contains:               {"contains"},
	IsNotIn:                {"is not in"},
	IsIn:                   {"is in"},
	IsNotEmpty:             {"is not empty"},
	IsEmpty:                {"is empty"},
}

func (p Predicate) String() string {
	if names, ok := predicateNames[p]; ok && len(names) > 0 {
		return names[0]
	}
	return "unknown predicate"
}

// IsUnary reports whether the predicate takes no operand (is empty / is not
// empty).
func (p Predicate) IsUnary() bool {
	return p == IsEmpty || p == IsNotEmpty
}
