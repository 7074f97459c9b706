// Package value implements the dynamic value lattice the evaluator reads
// JSON data through: numbers, booleans, strings, dates, durations, lists,
// and objects, plus a Missing sentinel for absent properties.
package value

import "time"

type Kind int

const (
	MissingVal Kind = iota
	NumberVal
	BoolVal
	StringVal
	DateVal
	DurationVal
	ListVal
	ObjectVal
)

func (k Kind) String() string {
	switch k {
	case MissingVal:
		return "missing"
	case NumberVal:
		return "number"
	case BoolVal:
		return "bool"
	case StringVal:
		return "string"
	case DateVal:
		return "date"
	case DurationVal:
		return "duration"
	case ListVal:
		return "list"
	case ObjectVal:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the value lattice. Only the field matching
// Kind is meaningful.
type Value struct {
	Kind     Kind
	Num      float64
	Bool     bool
	Str      string
	Date     time.Time
	Duration Duration
	List     []Value
	Object   map[string]Value

	// folded caches Object's case-folded key lookup table, built by
	// foldedKeys. Object fills it at construction so copies share it.
	folded map[string]string
}

// Missing is the sentinel returned when a property path cannot be resolved.
var Missing = Value{Kind: MissingVal}

func Number(n float64) Value  { return Value{Kind: NumberVal, Num: n} }
func Bool(b bool) Value       { return Value{Kind: BoolVal, Bool: b} }
func String(s string) Value   { return Value{Kind: StringVal, Str: s} }
func Date(t time.Time) Value  { return Value{Kind: DateVal, Date: t} }
func List(vs []Value) Value   { return Value{Kind: ListVal, List: vs} }
func Object(m map[string]Value) Value {
	v := Value{Kind: ObjectVal, Object: m}
	v.foldedKeys()
	return v
}

func (v Value) IsMissing() bool { return v.Kind == MissingVal }

// Len reports the length of a string, list, or object value for emptiness
// predicates. The second return is false for kinds with no notion of length.
func (v Value) Len() (int, bool) {
	switch v.Kind {
	case StringVal:
		return len(v.Str), true
	case ListVal:
		return len(v.List), true
	case ObjectVal:
		return len(v.Object), true
	default:
		return 0, false
	}
}
