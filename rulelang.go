// Package rulelang is the public facade over the rule-language core: parse
// DSL source into a resolved RuleSet, then evaluate it against arbitrary
// JSON data. It wraps internal/dsl, internal/ruleset, and
// internal/evaluator the same way the teacher's pgraph.go wraps
// internal/dsl, internal/graph, and internal/result.
package rulelang

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rulelang/rulelang/internal/dsl"
	"github.com/rulelang/rulelang/internal/evaluator"
	"github.com/rulelang/rulelang/internal/rule"
	"github.com/rulelang/rulelang/internal/ruleset"
	"github.com/rulelang/rulelang/internal/trace"
	"github.com/rulelang/rulelang/internal/value"
)

// RuleSet is a resolved, immutable batch of rules ready for evaluation.
type RuleSet struct {
	resolved *ruleset.RuleSet
	source   string
}

// ParseString builds a RuleSet from one or more rule sentences.
func ParseString(source string) (*RuleSet, error) {
	rules, err := dsl.Parse(source)
	if err != nil {
		return nil, err
	}
	resolved, err := ruleset.Build(rules)
	if err != nil {
		return nil, err
	}
	return &RuleSet{resolved: resolved, source: source}, nil
}

// ParseFile builds a RuleSet from the contents of a file.
func ParseFile(path string) (*RuleSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseString(string(b))
}

// Rules returns every rule in the set, in source order.
func (rs *RuleSet) Rules() []*rule.Rule {
	return rs.resolved.Rules
}

// Response is the wire shape of an evaluation result, matching the
// {result, labels, trace?, error?, rule, data} contract.
type Response struct {
	Result bool            `json:"result"`
	Labels map[string]bool `json:"labels"`
	Trace  *trace.Node     `json:"trace,omitempty"`
	Error  string          `json:"error,omitempty"`
	Rule   []string        `json:"rule"`
	Data   any             `json:"data"`
}

// Evaluate runs the golden rule (and everything it transitively references)
// against data, which must already be decoded JSON (the shape
// encoding/json.Unmarshal produces into `any`).
func (rs *RuleSet) Evaluate(ctx context.Context, data any, wantTrace bool) (*Response, error) {
	root := value.FromJSON(data)
	eval := evaluator.New(rs.resolved)

	result, err := eval.Evaluate(ctx, root, wantTrace)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Result: result.Result,
		Labels: result.Labels,
		Trace:  result.Trace,
		Rule:   []string{rs.source},
		Data:   data,
	}
	return resp, nil
}

// Evaluate is a one-shot convenience: parse source, decode dataJSON, and
// evaluate, producing a Response with its error field populated (rather
// than a Go error) for any load-time failure, per the propagation policy
// that load errors are domain answers, not transport failures.
func Evaluate(ctx context.Context, source string, dataJSON any, wantTrace bool) *Response {
	rs, err := ParseString(source)
	if err != nil {
		return &Response{Result: false, Labels: map[string]bool{}, Error: err.Error(), Rule: []string{source}, Data: dataJSON}
	}
	resp, err := rs.Evaluate(ctx, dataJSON, wantTrace)
	if err != nil {
		return &Response{Result: false, Labels: map[string]bool{}, Error: err.Error(), Rule: []string{source}, Data: dataJSON}
	}
	return resp
}

// MarshalResponseJSON renders a Response as JSON, mirroring pgraph.go's
// MarshalResultJSON entry point for callers that want raw bytes rather
// than a typed Response.
func MarshalResponseJSON(resp *Response) ([]byte, error) {
	return json.Marshal(resp)
}
