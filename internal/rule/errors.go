package rule

import "fmt"

// BuildError reports a problem turning a parsed header/outcome/condition
// into ART nodes, in the teacher's {Kind, Message} typed-error shape.
type BuildError struct {
	Kind    string
	Message string
}

func (e BuildError) Error() string {
	return fmt.Sprintf("rule build error (%v): %v", e.Kind, e.Message)
}

func InvalidProperty(name string) error {
	return BuildError{
		Kind:    "InvalidProperty",
		Message: fmt.Sprintf("property %q is not a valid __name__ segment", name),
	}
}

func InvalidSelector(name string) error {
	return BuildError{
		Kind:    "InvalidSelector",
		Message: fmt.Sprintf("object selector %q is not a valid **Name** segment", name),
	}
}

func UnknownPredicate(phrase string) error {
	return BuildError{
		Kind:    "UnknownPredicate",
		Message: fmt.Sprintf("unrecognized predicate phrase %q", phrase),
	}
}

func EmptyConditionTree() error {
	return BuildError{
		Kind:    "EmptyConditionTree",
		Message: "a rule must have at least one condition",
	}
}
