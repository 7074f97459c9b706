// Package evaluator walks a resolved RuleSet against an input data value,
// producing a verdict, a label map, and (when requested) a full trace.
// Adapts the teacher's query.Execute(ctx, graph) / engine.InferenceEngine
// pattern: the evaluator is a thin pure function over an immutable
// RuleSet, and every recursive step checks ctx.Done() before proceeding.
package evaluator

import (
	"context"
	"time"

	"github.com/rulelang/rulelang/internal/operator"
	"github.com/rulelang/rulelang/internal/rule"
	"github.com/rulelang/rulelang/internal/ruleset"
	"github.com/rulelang/rulelang/internal/trace"
	"github.com/rulelang/rulelang/internal/value"
)

// Evaluator evaluates a single resolved RuleSet. It holds no mutable state
// of its own; every Evaluate call is independent.
type Evaluator struct {
	RuleSet *ruleset.RuleSet
}

func New(rs *ruleset.RuleSet) *Evaluator {
	return &Evaluator{RuleSet: rs}
}

// Response is the result of one evaluation: the golden rule's verdict, the
// outcome label of every rule that was evaluated (a rule reached only
// through a short-circuited operand has no entry), and an optional trace
// tree.
type Response struct {
	Result bool
	Labels map[string]bool
	Trace  *trace.Node
}

// Evaluate runs the golden rule (and, transitively, every rule it
// references) against data. now is captured once so every temporal
// predicate in this evaluation agrees on "today".
func (e *Evaluator) Evaluate(ctx context.Context, data value.Value, wantTrace bool) (*Response, error) {
	now := time.Now()
	labels := make(map[string]bool, len(e.RuleSet.Rules))
	bindings := e.bindSelectors(data)

	result, node, err := e.evalRule(ctx, e.RuleSet.Golden, data, bindings, now, labels, wantTrace)
	if err != nil {
		return nil, err
	}

	resp := &Response{Result: result, Labels: labels}
	if wantTrace {
		resp.Trace = node
	}
	return resp, nil
}

// bindSelectors consults the selector index exactly once per evaluation
// (spec §4.C: "this index is consulted at most once per evaluation and is
// immutable thereafter"), pre-resolving every declared object selector
// against the input data. Every rule sharing a selector name with another
// rule then reuses the same bound sub-object instead of re-walking root.
func (e *Evaluator) bindSelectors(data value.Value) map[string]value.Value {
	bound := make(map[string]value.Value, len(e.RuleSet.SelectorIndex))
	for name := range e.RuleSet.SelectorIndex {
		if len(e.RuleSet.RulesFor(name)) == 0 {
			continue
		}
		v, _ := data.Selector(name, true)
		bound[name] = v
	}
	return bound
}

// evalRule is the Binding -> Evaluating -> Done|Error transition for a
// single rule: bind the header selector against the input, walk the
// condition tree, record the outcome label.
func (e *Evaluator) evalRule(ctx context.Context, r *rule.Rule, root value.Value, bindings map[string]value.Value, now time.Time, labels map[string]bool, wantTrace bool) (bool, *trace.Node, error) {
	select {
	case <-ctx.Done():
		return false, nil, TimeoutError{Outcome: r.Outcome}
	default:
	}

	bound, ok := bindings[string(r.Selector)]
	if !ok {
		bound, _ = root.Selector(string(r.Selector), true)
	}

	result, condNode, err := e.evalCondition(ctx, r.Root, root, bound, bindings, now, labels, wantTrace)
	if err != nil {
		return false, nil, err
	}
	labels[r.Outcome] = result

	var node *trace.Node
	if wantTrace {
		node = trace.New(trace.Rule, r.Outcome, result, condNode)
	}
	return result, node, nil
}

func (e *Evaluator) evalCondition(ctx context.Context, c rule.Condition, root, bound value.Value, bindings map[string]value.Value, now time.Time, labels map[string]bool, wantTrace bool) (bool, *trace.Node, error) {
	select {
	case <-ctx.Done():
		return false, nil, TimeoutError{}
	default:
	}

	switch n := c.(type) {
	case *rule.BinaryCondition:
		return e.evalBinary(ctx, n, root, bound, bindings, now, labels, wantTrace)
	case *rule.PropertyCondition:
		return e.evalProperty(n, root, bound, bindings, now, wantTrace)
	case *rule.AggregateCondition:
		return e.evalAggregate(n, root, bound, bindings, now, wantTrace)
	case *rule.LabelReference:
		result, node, err := e.evalRule(ctx, n.Resolved, root, bindings, now, labels, wantTrace)
		if err != nil {
			return false, nil, err
		}
		if wantTrace {
			node = trace.New(trace.LabelRef, n.Name, result, node)
		}
		return result, node, nil
	case *rule.RuleReference:
		result, node, err := e.evalRule(ctx, n.Resolved, root, bindings, now, labels, wantTrace)
		if err != nil {
			return false, nil, err
		}
		if wantTrace {
			node = trace.New(trace.RuleRef, n.Outcome, result, node)
		}
		return result, node, nil
	default:
		return false, nil, nil
	}
}

// evalBinary implements left-to-right short-circuit and/or: "and" stops at
// the first false, "or" stops at the first true. The unevaluated side is
// still recorded as a Skipped trace node when tracing is on.
func (e *Evaluator) evalBinary(ctx context.Context, n *rule.BinaryCondition, root, bound value.Value, bindings map[string]value.Value, now time.Time, labels map[string]bool, wantTrace bool) (bool, *trace.Node, error) {
	left, leftNode, err := e.evalCondition(ctx, n.Left, root, bound, bindings, now, labels, wantTrace)
	if err != nil {
		return false, nil, err
	}

	shortCircuit := (n.Op == rule.And && !left) || (n.Op == rule.Or && left)
	if shortCircuit {
		var node *trace.Node
		if wantTrace {
			node = trace.New(trace.ConditionTree, n.Op.String(), left, leftNode, trace.NewSkipped(n.Op.String()+" short-circuit"))
		}
		return left, node, nil
	}

	right, rightNode, err := e.evalCondition(ctx, n.Right, root, bound, bindings, now, labels, wantTrace)
	if err != nil {
		return false, nil, err
	}

	var result bool
	if n.Op == rule.And {
		result = left && right
	} else {
		result = left || right
	}

	var node *trace.Node
	if wantTrace {
		node = trace.New(trace.ConditionTree, n.Op.String(), result, leftNode, rightNode)
	}
	return result, node, nil
}

func (e *Evaluator) evalProperty(n *rule.PropertyCondition, root, bound value.Value, bindings map[string]value.Value, now time.Time, wantTrace bool) (bool, *trace.Node, error) {
	resolved := resolvePath(n.Path, root, bound, bindings)
	result, mismatch := operator.Apply(n.Predicate, resolved, n.Operands, now)

	if !wantTrace {
		return result, nil, nil
	}
	detail := map[string]any{
		"path":      pathString(n.Path),
		"predicate": n.Predicate.String(),
		"value":     describeValue(resolved),
	}
	if mismatch != nil {
		detail["mismatch"] = mismatch.String()
	}
	return result, trace.NewLeaf(trace.OperatorApply, n.Predicate.String(), result, detail), nil
}

func (e *Evaluator) evalAggregate(n *rule.AggregateCondition, root, bound value.Value, bindings map[string]value.Value, now time.Time, wantTrace bool) (bool, *trace.Node, error) {
	resolved := resolvePath(n.Path, root, bound, bindings)
	count, _ := resolved.Len()
	countValue := value.Number(float64(count))

	result, mismatch := operator.Apply(n.Predicate, countValue, n.Operands, now)

	if !wantTrace {
		return result, nil, nil
	}
	kind := "length"
	if n.Kind == rule.NumberOf {
		kind = "number"
	}
	detail := map[string]any{
		"path":      pathString(n.Path),
		"aggregate": kind,
		"count":     count,
		"predicate": n.Predicate.String(),
	}
	if mismatch != nil {
		detail["mismatch"] = mismatch.String()
	}
	return result, trace.NewLeaf(trace.OperatorApply, kind+" of "+n.Predicate.String(), result, detail), nil
}

func pathString(path []rule.Segment) string {
	s := ""
	for i, seg := range path {
		if i > 0 {
			s += " of "
		}
		if seg.Kind == rule.SelectorSegment {
			s += "**" + seg.Name + "**"
		} else {
			s += "__" + seg.Name + "__"
		}
	}
	return s
}

func describeValue(v value.Value) any {
	switch v.Kind {
	case value.MissingVal:
		return "Missing"
	case value.NumberVal:
		return v.Num
	case value.BoolVal:
		return v.Bool
	case value.StringVal:
		return v.Str
	case value.DateVal:
		return v.Date.Format("2006-01-02")
	case value.DurationVal:
		return v.Duration.Seconds()
	default:
		return v.Kind.String()
	}
}
