package operator

import (
	"time"

	"github.com/rulelang/rulelang/internal/value"
)

// applyChronological implements "is later than"/"is earlier than": both
// operands must be dates.
func applyChronological(left, right value.Value, cmp func(int) bool) (bool, *Mismatch) {
	if left.Kind != value.DateVal || right.Kind != value.DateVal {
		return false, typeMismatch("chronological comparison requires two dates, got " + left.Kind.String() + " and " + right.Kind.String())
	}
	return cmp(compareTime(left, right)), nil
}

// applyAge implements "is older than"/"is younger than": left is a date,
// right is a duration; elapsed is (now - date) in seconds.
func applyAge(left, right value.Value, now time.Time, cmp func(elapsed, duration float64) bool) (bool, *Mismatch) {
	if left.Kind != value.DateVal {
		return false, typeMismatch("age comparison requires a date on the left, got " + left.Kind.String())
	}
	if right.Kind != value.DurationVal {
		return false, typeMismatch("age comparison requires a duration operand, got " + right.Kind.String())
	}
	elapsed := now.Sub(left.Date).Seconds()
	return cmp(elapsed, right.Duration.Seconds()), nil
}

// applyWithin implements "is within": |now - date| <= duration.
func applyWithin(left, right value.Value, now time.Time) (bool, *Mismatch) {
	if left.Kind != value.DateVal {
		return false, typeMismatch("is within requires a date on the left, got " + left.Kind.String())
	}
	if right.Kind != value.DurationVal {
		return false, typeMismatch("is within requires a duration operand, got " + right.Kind.String())
	}
	elapsed := now.Sub(left.Date).Seconds()
	if elapsed < 0 {
		elapsed = -elapsed
	}
	return elapsed <= right.Duration.Seconds(), nil
}
