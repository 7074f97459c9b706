package operator

import "github.com/rulelang/rulelang/internal/value"

// applyEmpty implements "is empty"/"is not empty" over a string, list, or
// object; wantEmpty selects which direction is being tested.
func applyEmpty(left value.Value, wantEmpty bool) (bool, *Mismatch) {
	if left.IsMissing() {
		return wantEmpty, nil
	}
	n, ok := left.Len()
	if !ok {
		return false, typeMismatch("is empty requires a string, list, or object, got " + left.Kind.String())
	}
	if wantEmpty {
		return n == 0, nil
	}
	return n != 0, nil
}
