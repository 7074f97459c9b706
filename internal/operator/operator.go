// Package operator implements the predicate operators over the value
// lattice (internal/value): explicit coercion rules, never a fatal error —
// a shape mismatch yields false and a recorded Mismatch for the trace.
package operator

import (
	"fmt"
	"time"

	"github.com/rulelang/rulelang/internal/rule"
	"github.com/rulelang/rulelang/internal/value"
)

// Mismatch explains why a predicate application produced false for a
// reason other than the values' actual comparison — a type mismatch, a
// missing operand, or an unsupported operand shape.
type Mismatch struct {
	Kind   string
	Detail string
}

func (m *Mismatch) String() string {
	return fmt.Sprintf("%s: %s", m.Kind, m.Detail)
}

func typeMismatch(detail string) *Mismatch {
	return &Mismatch{Kind: "TypeMismatch", Detail: detail}
}

func mismatchf(kind, format string, args ...any) *Mismatch {
	return &Mismatch{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Apply evaluates a predicate against a left-hand value and its operands.
// now is the evaluation's fixed reference point for "today" in the
// older/younger/within temporal predicates, held constant across one
// evaluation so repeated leaves agree.
func Apply(p rule.Predicate, left value.Value, operands []rule.Literal, now time.Time) (bool, *Mismatch) {
	switch p {
	case rule.IsEqualTo, rule.IsTheSameAs:
		return applyEquality(left, operand(operands), false)
	case rule.IsExactlyEqualTo:
		return applyEquality(left, operand(operands), true)
	case rule.IsNotEqualTo, rule.IsNotTheSameAs:
		ok, mm := applyEquality(left, operand(operands), false)
		return !ok, mm
	case rule.IsGreaterThan:
		return applyOrdering(left, operand(operands), func(c int) bool { return c > 0 })
	case rule.IsLessThan:
		return applyOrdering(left, operand(operands), func(c int) bool { return c < 0 })
	case rule.IsGreaterThanOrEqualTo:
		return applyOrdering(left, operand(operands), func(c int) bool { return c >= 0 })
	case rule.IsLessThanOrEqualTo:
		return applyOrdering(left, operand(operands), func(c int) bool { return c <= 0 })
	case rule.IsLaterThan:
		return applyChronological(left, operand(operands), func(c int) bool { return c > 0 })
	case rule.IsEarlierThan:
		return applyChronological(left, operand(operands), func(c int) bool { return c < 0 })
	case rule.IsOlderThan:
		return applyAge(left, operand(operands), now, func(elapsed, d float64) bool { return elapsed > d })
	case rule.IsYoungerThan:
		return applyAge(left, operand(operands), now, func(elapsed, d float64) bool { return elapsed < d })
	case rule.IsWithin:
		return applyWithin(left, operand(operands), now)
	case rule.Contains:
		return applyContains(left, operand(operands))
	case rule.IsIn:
		return applyMembership(left, operand(operands))
	case rule.IsNotIn:
		ok, mm := applyMembership(left, operand(operands))
		return !ok, mm
	case rule.IsEmpty:
		return applyEmpty(left, true)
	case rule.IsNotEmpty:
		return applyEmpty(left, false)
	default:
		return false, mismatchf("UnknownPredicate", "predicate %v has no operator implementation", p)
	}
}

func operand(operands []rule.Literal) value.Value {
	if len(operands) == 0 {
		return value.Missing
	}
	return operands[0]
}
