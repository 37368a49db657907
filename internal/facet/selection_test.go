package facet

import "testing"

func TestSelection(t *testing.T) {
	if Any().Active() {
		t.Error("Any() should not be active")
	}
	if (Selection{}).Active() {
		t.Error("zero Selection should be unconstrained")
	}

	sel := Is("")
	if !sel.Active() {
		t.Error("Is(\"\") should be active")
	}
	if v, ok := sel.Value(); !ok || v != "" {
		t.Errorf("Is(\"\").Value() = (%q, %v), want (\"\", true)", v, ok)
	}

	if Any().String() != "<any>" {
		t.Errorf("Any().String() = %q", Any().String())
	}
}

func TestState(t *testing.T) {
	var nilState State
	if nilState.Get("x").Active() {
		t.Error("nil state should return Any for every name")
	}

	base := State{"country": Is("中国")}
	next := base.With("field", Is("监管机构"))

	if _, ok := base["field"]; ok {
		t.Error("With must not modify the receiver")
	}
	if !next.Get("country").Active() || !next.Get("field").Active() {
		t.Errorf("With should keep existing selections, got %v", next)
	}
	if next.With("country", Any()).Get("country").Active() {
		t.Error("setting Any should clear the selection")
	}
}
