// Package ruleset resolves a batch of parsed rules into an immutable
// RuleSet: it rejects duplicate outcomes/labels, resolves every label and
// rule reference to a concrete rule pointer, builds the selector index the
// evaluator consults, and locates the unique golden rule — adapting the
// teacher's adjacency-list graph (internal/graph) to a reference graph over
// rules instead of probabilistic nodes and edges.
package ruleset

import "github.com/rulelang/rulelang/internal/rule"

// RuleSet is the resolved, immutable result of loading a batch of rules.
type RuleSet struct {
	Rules         []*rule.Rule
	ByOutcome     map[string]*rule.Rule
	ByLabel       map[string]*rule.Rule
	Golden        *rule.Rule
	SelectorIndex map[string][]*rule.Rule
}

// RulesFor returns every rule whose header names the given object selector.
func (rs *RuleSet) RulesFor(selector string) []*rule.Rule {
	return rs.SelectorIndex[selector]
}
