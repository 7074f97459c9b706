package evaluator

import "fmt"

// TimeoutError reports that the evaluation's deadline elapsed before a
// verdict was reached.
type TimeoutError struct {
	Outcome string
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("evaluation timed out while evaluating rule %q", e.Outcome)
}
