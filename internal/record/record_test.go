package record

import (
	"reflect"
	"testing"
)

func TestSetSorted(t *testing.T) {
	s := NewSet("MIT", "0BSD", "MIT", "Apache-2.0")
	got := s.Sorted()
	want := []string{"0BSD", "Apache-2.0", "MIT"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
}

func TestSetCloneIsIndependent(t *testing.T) {
	s := NewSet("a")
	c := s.Clone()
	c.Add("b")

	if s.Has("b") {
		t.Error("mutating the clone changed the original")
	}
	if !c.Has("a") || !c.Has("b") {
		t.Errorf("clone members = %v", c.Sorted())
	}
}

func TestSetEqual(t *testing.T) {
	if !NewSet("a", "b").Equal(NewSet("b", "a")) {
		t.Error("order must not matter")
	}
	if NewSet("a").Equal(NewSet("a", "b")) {
		t.Error("different sizes must not be equal")
	}
	if NewSet("a").Equal(NewSet("b")) {
		t.Error("different members must not be equal")
	}
}

func TestPrecedenceValid(t *testing.T) {
	for _, p := range []Precedence{PrecedenceClosest, PrecedenceOverride, PrecedenceAggregate} {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	if Precedence("merge").Valid() {
		t.Error("unknown strategy should be invalid")
	}
}

func TestEvidenceEmpty(t *testing.T) {
	e := NewEvidence(SourceFileHeader, "a.py")
	if !e.Empty() {
		t.Error("fresh evidence should be empty")
	}
	e.Expressions.Add("MIT")
	if e.Empty() {
		t.Error("evidence with an expression is not empty")
	}
}
