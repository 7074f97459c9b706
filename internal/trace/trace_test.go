package trace

import (
	"encoding/json"
	"testing"
)

func TestMarshalJSON_NestedChildren(t *testing.T) {
	leaf := NewLeaf(OperatorApply, "age is greater than or equal to 65", true, map[string]any{"left": 70, "right": 65})
	root := New(ConditionTree, "age condition", true, leaf)

	b, err := json.Marshal(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded["kind"] != "ConditionTree" {
		t.Fatalf("expected kind ConditionTree, got %v", decoded["kind"])
	}
	children, ok := decoded["children"].([]any)
	if !ok || len(children) != 1 {
		t.Fatalf("expected one child, got %v", decoded["children"])
	}
}

func TestMarshalJSON_SkippedHasNoDetail(t *testing.T) {
	n := NewSkipped("short-circuited by or")
	b, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, present := decoded["detail"]; present {
		t.Fatal("expected no detail field for a skipped node")
	}
}
