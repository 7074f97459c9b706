package operator

import (
	"testing"
	"time"

	"github.com/rulelang/rulelang/internal/rule"
	"github.com/rulelang/rulelang/internal/value"
)

var fixedNow = time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

func TestApply_EqualToNumeric(t *testing.T) {
	ok, mm := Apply(rule.IsEqualTo, value.Number(65), []rule.Literal{value.Number(65)}, fixedNow)
	if !ok || mm != nil {
		t.Fatalf("expected equal, got ok=%v mm=%v", ok, mm)
	}
}

func TestApply_EqualToCaseInsensitiveString(t *testing.T) {
	ok, mm := Apply(rule.IsEqualTo, value.String("GOLD"), []rule.Literal{value.String("gold")}, fixedNow)
	if !ok || mm != nil {
		t.Fatalf("expected fold-equal, got ok=%v mm=%v", ok, mm)
	}
}

func TestApply_ExactlyEqualToIsCaseSensitive(t *testing.T) {
	ok, _ := Apply(rule.IsExactlyEqualTo, value.String("GOLD"), []rule.Literal{value.String("gold")}, fixedNow)
	if ok {
		t.Fatal("expected case-sensitive mismatch")
	}
}

func TestApply_GreaterThanOrEqualTo(t *testing.T) {
	ok, mm := Apply(rule.IsGreaterThanOrEqualTo, value.Number(65), []rule.Literal{value.Number(65)}, fixedNow)
	if !ok || mm != nil {
		t.Fatalf("expected true, got ok=%v mm=%v", ok, mm)
	}
}

func TestApply_TypeMismatchYieldsFalseNotError(t *testing.T) {
	ok, mm := Apply(rule.IsGreaterThan, value.String("abc"), []rule.Literal{value.Number(1)}, fixedNow)
	if ok {
		t.Fatal("expected false on type mismatch")
	}
	if mm == nil || mm.Kind != "TypeMismatch" {
		t.Fatalf("expected a TypeMismatch, got %+v", mm)
	}
}

func TestApply_IsOlderThan(t *testing.T) {
	old := value.Date(fixedNow.AddDate(0, 0, -40))
	thirtyDays := value.Value{Kind: value.DurationVal, Duration: value.Duration{Amount: 30, Unit: value.Day}}
	ok, mm := Apply(rule.IsOlderThan, old, []rule.Literal{thirtyDays}, fixedNow)
	if !ok || mm != nil {
		t.Fatalf("expected older, got ok=%v mm=%v", ok, mm)
	}
}

func TestApply_IsWithin(t *testing.T) {
	soon := value.Date(fixedNow.AddDate(0, 0, 10))
	thirtyDays := value.Value{Kind: value.DurationVal, Duration: value.Duration{Amount: 30, Unit: value.Day}}
	ok, mm := Apply(rule.IsWithin, soon, []rule.Literal{thirtyDays}, fixedNow)
	if !ok || mm != nil {
		t.Fatalf("expected within, got ok=%v mm=%v", ok, mm)
	}
}

func TestApply_ContainsSubstring(t *testing.T) {
	ok, mm := Apply(rule.Contains, value.String("Hello World"), []rule.Literal{value.String("world")}, fixedNow)
	if !ok || mm != nil {
		t.Fatalf("expected substring match, got ok=%v mm=%v", ok, mm)
	}
}

func TestApply_IsInList(t *testing.T) {
	list := value.List([]value.Value{value.String("gold"), value.String("platinum")})
	ok, mm := Apply(rule.IsIn, value.String("gold"), []rule.Literal{list}, fixedNow)
	if !ok || mm != nil {
		t.Fatalf("expected membership, got ok=%v mm=%v", ok, mm)
	}
}

func TestApply_IsNotInList(t *testing.T) {
	list := value.List([]value.Value{value.String("gold"), value.String("platinum")})
	ok, mm := Apply(rule.IsNotIn, value.String("bronze"), []rule.Literal{list}, fixedNow)
	if !ok || mm != nil {
		t.Fatalf("expected non-membership, got ok=%v mm=%v", ok, mm)
	}
}

func TestApply_IsEmpty(t *testing.T) {
	ok, mm := Apply(rule.IsEmpty, value.List(nil), nil, fixedNow)
	if !ok || mm != nil {
		t.Fatalf("expected empty list to be empty, got ok=%v mm=%v", ok, mm)
	}
}

func TestApply_IsEmptyOnMissing(t *testing.T) {
	ok, mm := Apply(rule.IsEmpty, value.Missing, nil, fixedNow)
	if !ok || mm != nil {
		t.Fatalf("expected missing to count as empty, got ok=%v mm=%v", ok, mm)
	}
}

func TestApply_IsNotEmpty(t *testing.T) {
	ok, mm := Apply(rule.IsNotEmpty, value.String("x"), nil, fixedNow)
	if !ok || mm != nil {
		t.Fatalf("expected non-empty string, got ok=%v mm=%v", ok, mm)
	}
}
