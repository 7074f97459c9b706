package evaluator

import (
	"context"
	"testing"
	"time"

	"github.com/rulelang/rulelang/internal/dsl"
	"github.com/rulelang/rulelang/internal/ruleset"
	"github.com/rulelang/rulelang/internal/trace"
	"github.com/rulelang/rulelang/internal/value"
)

func build(t *testing.T, source string) *ruleset.RuleSet {
	t.Helper()
	rules, err := dsl.Parse(source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	rs, err := ruleset.Build(rules)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	return rs
}

func TestEvaluate_SeniorDiscountPositive(t *testing.T) {
	rs := build(t, "A **Person** gets senior_discount if the __age__ of the **Person** is greater than or equal to 65.")
	data := value.FromJSON(map[string]any{"Person": map[string]any{"age": 70.0}})

	resp, err := New(rs).Evaluate(context.Background(), data, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Result {
		t.Fatal("expected result true")
	}
	if !resp.Labels["senior_discount"] {
		t.Fatal("expected senior_discount label true")
	}
}

func TestEvaluate_SeniorDiscountNegative(t *testing.T) {
	rs := build(t, "A **Person** gets senior_discount if the __age__ of the **Person** is greater than or equal to 65.")
	data := value.FromJSON(map[string]any{"Person": map[string]any{"age": 30.0}})

	resp, err := New(rs).Evaluate(context.Background(), data, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Result {
		t.Fatal("expected result false")
	}
}

func TestEvaluate_NestedSelectorAndListMembership(t *testing.T) {
	source := `An **Order** gets expedited_shipping if the __total__ of the **Order** is greater than 100 and the __membership_level__ of the **Customer** is in ["gold","platinum"].`
	rs := build(t, source)

	cases := []struct {
		total    float64
		level    string
		expected bool
	}{
		{150, "gold", true},
		{50, "gold", false},
		{150, "silver", false},
	}
	for _, c := range cases {
		data := value.FromJSON(map[string]any{
			"Order":    map[string]any{"total": c.total},
			"Customer": map[string]any{"membership_level": c.level},
		})
		resp, err := New(rs).Evaluate(context.Background(), data, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Result != c.expected {
			t.Fatalf("total=%v level=%v: expected %v, got %v", c.total, c.level, c.expected, resp.Result)
		}
	}
}

func TestEvaluate_GoldenRuleViaReferences(t *testing.T) {
	source := "A **User** gets access if §Verified is approved. " +
		"§Verified. A **User** gets verification if the __email_confirmed__ of the **User** is equal to true."
	rs := build(t, source)

	if rs.Golden.Outcome != "access" {
		t.Fatalf("expected golden rule access, got %v", rs.Golden.Outcome)
	}

	data := value.FromJSON(map[string]any{"User": map[string]any{"email_confirmed": true}})
	resp, err := New(rs).Evaluate(context.Background(), data, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Result {
		t.Fatal("expected result true")
	}
	if !resp.Labels["access"] || !resp.Labels["verification"] {
		t.Fatalf("expected both labels true, got %+v", resp.Labels)
	}
}

func TestEvaluate_MissingPropertyIsFalseNotError(t *testing.T) {
	rs := build(t, "A **Person** gets senior_discount if the __age__ of the **Person** is greater than or equal to 65.")
	data := value.FromJSON(map[string]any{"Person": map[string]any{}})

	resp, err := New(rs).Evaluate(context.Background(), data, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Result {
		t.Fatal("expected result false")
	}
	if resp.Trace == nil {
		t.Fatal("expected a trace")
	}
}

// TestEvaluate_CycleRejectedAtLoad builds a genuine reference cycle
// (a_out -> b_out -> a_out) reachable from a separate entry rule, so the
// lone in-degree-zero candidate (entry) lets findGolden succeed and the
// failure actually comes from verifyAcyclicAndReachable's DFS, not from
// NoGoldenRule or an unrelated UnknownReference typo.
func TestEvaluate_CycleRejectedAtLoad(t *testing.T) {
	source := "A **X** gets entry if §A is approved. " +
		"§A. A **X** gets a_out if §B is approved. " +
		"§B. A **X** gets b_out if §A is approved."
	rules, err := dsl.Parse(source)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, err = ruleset.Build(rules)
	if err == nil {
		t.Fatal("expected a cyclic reference error")
	}
	resolveErr, ok := err.(ruleset.ResolveError)
	if !ok {
		t.Fatalf("expected a ResolveError, got %T: %v", err, err)
	}
	if resolveErr.Kind != "CyclicReference" {
		t.Fatalf("expected CyclicReference, got %v: %v", resolveErr.Kind, err)
	}
}

// TestEvaluate_DatePropertyFromJSONThroughTemporalPredicates guards against
// FromJSON silently leaving every date-shaped input as a StringVal: the
// grammar never puts a literal on a predicate's left side, so a property
// path resolved from request data is the only way a DateVal can ever reach
// an operator, and that path runs entirely through JSON decoding.
func TestEvaluate_DatePropertyFromJSONThroughTemporalPredicates(t *testing.T) {
	rs := build(t, "An **Employee** gets veteran_status if the __hire_date__ of the **Employee** is older than 5 years.")

	now := time.Now()
	veteran := value.FromJSON(map[string]any{
		"Employee": map[string]any{"hire_date": now.AddDate(-6, 0, 0).Format("2006-01-02")},
	})
	resp, err := New(rs).Evaluate(context.Background(), veteran, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Result {
		t.Fatal("expected hire_date six years ago to satisfy 'is older than 5 years'")
	}

	recent := value.FromJSON(map[string]any{
		"Employee": map[string]any{"hire_date": now.AddDate(-1, 0, 0).Format("2006-01-02")},
	})
	resp, err = New(rs).Evaluate(context.Background(), recent, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Result {
		t.Fatal("expected hire_date one year ago to fail 'is older than 5 years'")
	}

	withinRS := build(t, "A **Document** gets expiring_soon if the __expiry__ of the **Document** is within 7 days.")

	soon := value.FromJSON(map[string]any{
		"Document": map[string]any{"expiry": now.AddDate(0, 0, 3).Format("2006-01-02")},
	})
	resp, err = New(withinRS).Evaluate(context.Background(), soon, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Result {
		t.Fatal("expected expiry three days out to satisfy 'is within 7 days'")
	}

	distant := value.FromJSON(map[string]any{
		"Document": map[string]any{"expiry": now.AddDate(0, 0, 30).Format("2006-01-02")},
	})
	resp, err = New(withinRS).Evaluate(context.Background(), distant, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Result {
		t.Fatal("expected expiry thirty days out to fail 'is within 7 days'")
	}
}

func TestEvaluate_ShortCircuitSkipsRightOperand(t *testing.T) {
	source := "A **Person** gets flagged if the __active__ of the **Person** is equal to true and the __age__ of the **Person** is greater than 1000000."
	rs := build(t, source)
	data := value.FromJSON(map[string]any{"Person": map[string]any{"active": false}})

	resp, err := New(rs).Evaluate(context.Background(), data, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Result {
		t.Fatal("expected result false (short-circuited on the first false operand)")
	}
	if len(resp.Trace.Children) != 1 {
		t.Fatalf("expected the rule node to wrap one condition-tree node, got %d children", len(resp.Trace.Children))
	}
	cond := resp.Trace.Children[0]
	if len(cond.Children) != 2 {
		t.Fatalf("expected two children (evaluated left, skipped right), got %d", len(cond.Children))
	}
	if cond.Children[1].Kind != trace.Skipped {
		t.Fatalf("expected right child to be Skipped, got %v", cond.Children[1].Kind)
	}
}
