package evaluator

import (
	"github.com/rulelang/rulelang/internal/rule"
	"github.com/rulelang/rulelang/internal/value"
)

// resolvePath walks a property-access path outermost-segment-first (as
// stored) by resolving innermost-to-outermost: the last segment is looked
// up against root if it's an object selector, or against boundValue (the
// rule's own header-selector binding) if the whole chain is a bare
// property with no selector at all. Every earlier segment then resolves
// against the value the later one produced. A missing lookup at any step
// degrades to value.Missing and propagates rather than failing.
//
// bindings is the per-evaluation selector cache (see Evaluator.bindSelectors):
// it only applies to the base case, since that's the only step compared
// against the true input root; every earlier segment resolves against a
// narrower scope the cache was never computed for.
func resolvePath(path []rule.Segment, root, boundValue value.Value, bindings map[string]value.Value) value.Value {
	if len(path) == 0 {
		return boundValue
	}

	n := len(path)
	scope := lookupSegment(path[n-1], root, boundValue, bindings)
	for i := n - 2; i >= 0; i-- {
		scope = lookupSegment(path[i], scope, scope, nil)
	}
	return scope
}

// lookupSegment resolves a single segment. root is only consulted for the
// innermost selector segment's base case; every other step just continues
// from the scope the previous step produced (passed as both arguments).
// bindings is nil for every step but the base case.
func lookupSegment(seg rule.Segment, root, boundValue value.Value, bindings map[string]value.Value) value.Value {
	switch seg.Kind {
	case rule.SelectorSegment:
		if bindings != nil {
			if v, ok := bindings[seg.Name]; ok {
				return v
			}
		}
		v, _ := root.Selector(seg.Name, true)
		return v
	case rule.PropertySegment:
		v, _ := boundValue.Property(seg.Name)
		return v
	default:
		return value.Missing
	}
}
