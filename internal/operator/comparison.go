package operator

import (
	"strings"

	"github.com/rulelang/rulelang/internal/value"
)

// applyEquality implements "is equal to"/"is the same as" (case-insensitive
// string comparison) and "is exactly equal to" (exact, case-sensitive).
func applyEquality(left, right value.Value, exact bool) (bool, *Mismatch) {
	if left.IsMissing() || right.IsMissing() {
		return false, typeMismatch("missing operand in equality comparison")
	}

	if left.Kind == value.NumberVal && right.Kind == value.NumberVal {
		return left.Num == right.Num, nil
	}

	if left.Kind != right.Kind {
		return false, typeMismatch("cannot compare " + left.Kind.String() + " with " + right.Kind.String())
	}

	switch left.Kind {
	case value.StringVal:
		if exact {
			return left.Str == right.Str, nil
		}
		return strings.EqualFold(left.Str, right.Str), nil
	case value.BoolVal:
		return left.Bool == right.Bool, nil
	case value.DateVal:
		return left.Date.Equal(right.Date), nil
	case value.DurationVal:
		return left.Duration.Seconds() == right.Duration.Seconds(), nil
	case value.ListVal:
		return listEqual(left.List, right.List, exact)
	default:
		return false, typeMismatch("no equality defined for " + left.Kind.String())
	}
}

func listEqual(a, b []value.Value, exact bool) (bool, *Mismatch) {
	if len(a) != len(b) {
		return false, nil
	}
	for i := range a {
		ok, mm := applyEquality(a[i], b[i], exact)
		if mm != nil {
			return false, mm
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// applyOrdering implements the greater/less-than family over numbers or
// dates; cmp receives the three-way comparison result.
func applyOrdering(left, right value.Value, cmp func(int) bool) (bool, *Mismatch) {
	if left.Kind == value.NumberVal && right.Kind == value.NumberVal {
		return cmp(compareFloat(left.Num, right.Num)), nil
	}
	if left.Kind == value.DateVal && right.Kind == value.DateVal {
		return cmp(compareTime(left, right)), nil
	}
	return false, typeMismatch("ordering requires two numbers or two dates, got " + left.Kind.String() + " and " + right.Kind.String())
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareTime(left, right value.Value) int {
	switch {
	case left.Date.Before(right.Date):
		return -1
	case left.Date.After(right.Date):
		return 1
	default:
		return 0
	}
}
