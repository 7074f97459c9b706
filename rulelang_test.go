package rulelang

import (
	"context"
	"testing"
)

func TestEvaluate_SeniorDiscount(t *testing.T) {
	resp := Evaluate(context.Background(),
		"A **Person** gets senior_discount if the __age__ of the **Person** is greater than or equal to 65.",
		map[string]any{"Person": map[string]any{"age": 70.0}},
		false,
	)
	if resp.Error != "" {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	if !resp.Result {
		t.Fatal("expected result true")
	}
	if resp.Rule[0] == "" {
		t.Fatal("expected the source rule to be echoed back")
	}
}

func TestEvaluate_LoadErrorPopulatesResponse(t *testing.T) {
	resp := Evaluate(context.Background(), "not a rule at all", map[string]any{}, false)
	if resp.Result {
		t.Fatal("expected result false on load error")
	}
	if resp.Error == "" {
		t.Fatal("expected a populated error message")
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	if _, err := ParseFile("/nonexistent/path/to/rules.txt"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
