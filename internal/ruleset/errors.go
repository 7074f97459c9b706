package ruleset

import (
	"fmt"
	"strings"
)

// ResolveError reports a problem assembling a RuleSet from its parsed
// rules, in the teacher's {Kind, Message} typed-error shape.
type ResolveError struct {
	Kind    string
	Message string
}

func (e ResolveError) Error() string {
	return fmt.Sprintf("ruleset error (%v): %v", e.Kind, e.Message)
}

func DuplicateDefinition(kind, name string) error {
	return ResolveError{
		Kind:    "DuplicateDefinition",
		Message: fmt.Sprintf("%s %q is defined by more than one rule", kind, name),
	}
}

func UnknownReference(name string) error {
	return ResolveError{
		Kind:    "UnknownReference",
		Message: fmt.Sprintf("reference to %q does not match any rule", name),
	}
}

func NoGoldenRule() error {
	return ResolveError{
		Kind:    "NoGoldenRule",
		Message: "no rule has in-degree zero in the reference graph; every rule is referenced by another",
	}
}

func GoldenRuleAmbiguous(candidates []string) error {
	return ResolveError{
		Kind:    "GoldenRuleAmbiguous",
		Message: fmt.Sprintf("multiple rules have in-degree zero: %s", strings.Join(candidates, ", ")),
	}
}

func CyclicReference(path []string) error {
	return ResolveError{
		Kind:    "CyclicReference",
		Message: fmt.Sprintf("reference cycle: %s", strings.Join(path, " -> ")),
	}
}

func UnreachableRule(outcome string) error {
	return ResolveError{
		Kind:    "UnreachableRule",
		Message: fmt.Sprintf("rule %q is not reachable from the golden rule", outcome),
	}
}
