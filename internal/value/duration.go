package value

// TimeUnit is one of the duration units recognized by the DSL (singular or
// plural spellings both lex to the same unit).
type TimeUnit int

const (
	Second TimeUnit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
	Decade
	Century
)

// Duration is an integer quantity with a time unit, e.g. "30 days".
type Duration struct {
	Amount int64
	Unit   TimeUnit
}

// secondsPerUnit fixes the conversion the comparison operators use: months
// are treated as 30 days and years as 365 days, per spec.
var secondsPerUnit = map[TimeUnit]int64{
	Second:  1,
	Minute:  60,
	Hour:    3600,
	Day:     86400,
	Week:    7 * 86400,
	Month:   30 * 86400,
	Year:    365 * 86400,
	Decade:  10 * 365 * 86400,
	Century: 100 * 365 * 86400,
}

// Seconds returns the duration expressed in seconds.
func (d Duration) Seconds() float64 {
	return float64(d.Amount) * float64(secondsPerUnit[d.Unit])
}

// unitNames maps every accepted singular/plural spelling to its TimeUnit.
var unitNames = map[string]TimeUnit{
	"second": Second, "seconds": Second,
	"minute": Minute, "minutes": Minute,
	"hour": Hour, "hours": Hour,
	"day": Day, "days": Day,
	"week": Week, "weeks": Week,
	"month": Month, "months": Month,
	"year": Year, "years": Year,
	"decade": Decade, "decades": Decade,
	"century": Century, "centuries": Century,
}

// ParseTimeUnit resolves a lexed unit word to a TimeUnit.
func ParseTimeUnit(word string) (TimeUnit, bool) {
	u, ok := unitNames[word]
	return u, ok
}
