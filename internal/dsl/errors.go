package dsl

import "fmt"

// SyntaxError reports a grammar or scanning failure, in the teacher's
// {Kind, Message} typed-error shape (pgraph's dsl.SyntaxError).
type SyntaxError struct {
	Kind    string
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("syntax error (%v): %v", e.Kind, e.Message)
}

func errMissingIf(snippet string) error {
	return SyntaxError{Kind: "MissingIf", Message: fmt.Sprintf("rule has no %q clause near %q", "if", snippet)}
}

func errUnterminatedRule(snippet string) error {
	return SyntaxError{Kind: "UnterminatedRule", Message: fmt.Sprintf("rule is not terminated by a period near %q", snippet)}
}

func errDanglingLabel(label string) error {
	return SyntaxError{Kind: "DanglingLabel", Message: fmt.Sprintf("label %q is not followed by a rule", label)}
}

func errMalformedSelector(snippet string) error {
	return SyntaxError{Kind: "MalformedSelector", Message: fmt.Sprintf("expected an article and **Selector** near %q", snippet)}
}

func errEmptyOutcome() error {
	return SyntaxError{Kind: "EmptyOutcome", Message: "outcome identifier is empty"}
}

func errUnknownUnit(word string) error {
	return SyntaxError{Kind: "UnknownUnit", Message: fmt.Sprintf("unrecognized duration unit %q", word)}
}

func errParse(snippet string, cause error) error {
	return SyntaxError{Kind: "ParseError", Message: fmt.Sprintf("%v near %q", cause, snippet)}
}
