package operator

import (
	"strings"

	"github.com/rulelang/rulelang/internal/value"
)

// applyContains implements "contains": left is a string (case-insensitive
// substring match) or a list (membership); the operand is the needle.
func applyContains(left, needle value.Value) (bool, *Mismatch) {
	switch left.Kind {
	case value.StringVal:
		if needle.Kind != value.StringVal {
			return false, typeMismatch("contains on a string requires a string operand, got " + needle.Kind.String())
		}
		return strings.Contains(strings.ToLower(left.Str), strings.ToLower(needle.Str)), nil
	case value.ListVal:
		return memberOf(needle, left.List)
	default:
		return false, typeMismatch("contains requires a string or list on the left, got " + left.Kind.String())
	}
}

// applyMembership implements "is in"/"is not in": left is a value, the
// operand is a list literal.
func applyMembership(left, list value.Value) (bool, *Mismatch) {
	if list.Kind != value.ListVal {
		return false, typeMismatch("is in requires a list operand, got " + list.Kind.String())
	}
	return memberOf(left, list.List)
}

func memberOf(needle value.Value, list []value.Value) (bool, *Mismatch) {
	for _, item := range list {
		ok, mm := applyEquality(needle, item, false)
		if mm != nil {
			continue // an incomparable element just isn't a match
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
