package value

import "testing"

func TestProperty_ExactMatch(t *testing.T) {
	obj := Object(map[string]Value{"age": Number(70)})

	got, ok := obj.Property("age")
	if !ok || got.Num != 70 {
		t.Fatalf("expected age=70, got %+v ok=%v", got, ok)
	}
}

func TestProperty_CamelCaseFold(t *testing.T) {
	obj := Object(map[string]Value{"membershipLevel": String("gold")})

	got, ok := obj.Property("membership_level")
	if !ok || got.Str != "gold" {
		t.Fatalf("expected membership_level to resolve via camelCase, got %+v ok=%v", got, ok)
	}
}

func TestProperty_PascalCaseFold(t *testing.T) {
	obj := Object(map[string]Value{"Age": Number(30)})

	got, ok := obj.Property("age")
	if !ok || got.Num != 30 {
		t.Fatalf("expected age to resolve via PascalCase, got %+v ok=%v", got, ok)
	}
}

func TestProperty_Missing(t *testing.T) {
	obj := Object(map[string]Value{"age": Number(30)})

	got, ok := obj.Property("height")
	if ok || !got.IsMissing() {
		t.Fatalf("expected Missing for unknown property, got %+v ok=%v", got, ok)
	}
}

func TestProperty_CaseInsensitiveOnExactForm(t *testing.T) {
	obj := Object(map[string]Value{"AGE": Number(12)})

	got, ok := obj.Property("age")
	if !ok || got.Num != 12 {
		t.Fatalf("expected case-insensitive exact match, got %+v ok=%v", got, ok)
	}
}

func TestSelector_MatchesSiblingKey(t *testing.T) {
	root := Object(map[string]Value{"Person": Object(map[string]Value{"age": Number(70)})})

	got, ok := root.Selector("Person", false)
	if !ok {
		t.Fatal("expected selector to resolve")
	}
	age, ok := got.Property("age")
	if !ok || age.Num != 70 {
		t.Fatalf("expected nested age 70, got %+v", age)
	}
}

func TestSelector_FallsBackToSelf(t *testing.T) {
	leaf := Object(map[string]Value{"age": Number(70)})

	got, ok := leaf.Selector("Person", true)
	if !ok {
		t.Fatal("expected selector fallback to self")
	}
	if got.Object == nil {
		t.Fatal("expected self value to be returned")
	}
}

func TestSelector_NoFallbackWithoutSelf(t *testing.T) {
	leaf := Object(map[string]Value{"age": Number(70)})

	_, ok := leaf.Selector("Customer", false)
	if ok {
		t.Fatal("expected selector to fail without self-fallback")
	}
}
