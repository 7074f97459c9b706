package value

import "time"

// dateLayout is the only date shape the wire format recognizes, matching
// the DSL's own DateLiteral token (grammar.go).
const dateLayout = "2006-01-02"

// FromJSON coerces a value produced by encoding/json's Unmarshal into `any`
// (so numbers arrive as float64, objects as map[string]any, arrays as
// []any) into the value lattice. A nil input becomes Missing — absent and
// explicit-null are deliberately indistinguishable, matching the "missing
// is never an error" invariant. A string shaped like YYYY-MM-DD becomes a
// DateVal rather than a StringVal: property paths are the only source of a
// predicate's left operand, so without this coercion no input value could
// ever satisfy a temporal predicate.
func FromJSON(v any) Value {
	switch t := v.(type) {
	case nil:
		return Missing
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case int:
		return Number(float64(t))
	case string:
		if d, err := time.Parse(dateLayout, t); err == nil {
			return Date(d)
		}
		return String(t)
	case []any:
		items := make([]Value, len(t))
		for i, e := range t {
			items[i] = FromJSON(e)
		}
		return List(items)
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for k, e := range t {
			obj[k] = FromJSON(e)
		}
		return Object(obj)
	default:
		return Missing
	}
}
