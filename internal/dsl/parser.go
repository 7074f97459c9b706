// Package dsl turns rule-language source text into unresolved *rule.Rule
// values. It never touches RuleSet-level concerns (duplicate outcomes,
// reference resolution, golden-rule detection) — that's internal/ruleset.
package dsl

import (
	"github.com/rulelang/rulelang/internal/rule"
)

// Parse splits a source blob into individual rule sentences and builds an
// unresolved *rule.Rule for each. Label/rule references in the returned
// rules have a nil Resolved pointer; internal/ruleset.Build fills them in.
func Parse(source string) ([]*rule.Rule, error) {
	texts, err := splitRules(source)
	if err != nil {
		return nil, err
	}

	rules := make([]*rule.Rule, 0, len(texts))
	for _, text := range texts {
		r, err := ParseOne(text)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// ParseOne parses a single rule's full text (optional label sentence
// through the terminating period).
func ParseOne(text string) (*rule.Rule, error) {
	raw, err := parseRawRule(text)
	if err != nil {
		return nil, err
	}

	seq, err := conditionParser.ParseString("", raw.condition)
	if err != nil {
		return nil, errParse(snippet(raw.condition), err)
	}

	root, err := convertSequence(seq)
	if err != nil {
		return nil, err
	}

	return &rule.Rule{
		Label:    raw.label,
		Selector: rule.Selector(raw.selector),
		Outcome:  raw.outcome,
		Verb:     raw.verb,
		Root:     root,
	}, nil
}
