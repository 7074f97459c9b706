package value

import "strings"

// foldedKeys lazily builds and caches v.folded: a lowercase-key -> original
// -key index over an Object value, so repeated segment resolution during
// one evaluation is O(1) amortized (spec design note).
func (v *Value) foldedKeys() map[string]string {
	if v.Kind != ObjectVal {
		return nil
	}
	if v.folded == nil {
		v.folded = make(map[string]string, len(v.Object))
		for k := range v.Object {
			v.folded[strings.ToLower(k)] = k
		}
	}
	return v.folded
}

// candidateForms returns the ordered set of key spellings tried for a
// requested property name, per spec: exact, camelCase, PascalCase, then the
// snake_case form of whatever was written inside __name__.
func candidateForms(name string) []string {
	camel := toCamelCase(name)
	pascal := toPascalCase(name)
	snake := toSnakeCase(name)

	seen := make(map[string]struct{}, 4)
	var out []string
	for _, c := range []string{name, camel, pascal, snake} {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Property resolves a single property segment against an object value,
// trying candidate spellings in order and matching case-insensitively; a key
// spelled exactly like a candidate wins over one that only folds to it.
// Returns Missing, false if no sibling key matches.
func (v Value) Property(name string) (Value, bool) {
	folded := v.foldedKeys()
	if folded == nil {
		return Missing, false
	}
	for _, candidate := range candidateForms(name) {
		if exact, ok := v.Object[candidate]; ok {
			return exact, true
		}
		if orig, ok := folded[strings.ToLower(candidate)]; ok {
			return v.Object[orig], true
		}
	}
	return Missing, false
}

// Selector resolves an object-selector segment (**Name**) against a value:
// it matches a sibling key equal to name case-insensitively, or falls back
// to the value itself when used as the top-level invocation target.
func (v Value) Selector(name string, allowSelf bool) (Value, bool) {
	folded := v.foldedKeys()
	if folded != nil {
		if orig, ok := folded[strings.ToLower(name)]; ok {
			return v.Object[orig], true
		}
	}
	if allowSelf {
		return v, true
	}
	return Missing, false
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toCamelCase(s string) string {
	parts := strings.Split(s, "_")
	if len(parts) == 0 {
		return s
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		b.WriteString(capitalize(p))
	}
	return b.String()
}

func toPascalCase(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(capitalize(p))
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
