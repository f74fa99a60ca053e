package group

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func boxTypes() Group {
	return Group{Name: "box_type", Members: []string{"travel", "recovery", "mom", "pilgrim"}}
}

func TestEvaluate(t *testing.T) {
	g := boxTypes()

	if g.Evaluate(nil) {
		t.Fatal("nil checked callback should report invalid")
	}
	if g.Evaluate(func(string) bool { return false }) {
		t.Fatal("zero checked members should report invalid")
	}
	if !g.Evaluate(func(member string) bool { return member == "recovery" }) {
		t.Fatal("one checked member should report valid")
	}
}

func TestContains(t *testing.T) {
	g := boxTypes()
	if !g.Contains("mom") {
		t.Fatal("expected member lookup to succeed")
	}
	if g.Contains("deluxe") {
		t.Fatal("unexpected member")
	}
}

func TestNormalize(t *testing.T) {
	g := Group{Name: " box_type ", Members: []string{" travel", "", "  ", "mom "}}
	want := Group{Name: "box_type", Members: []string{"travel", "mom"}}
	if diff := cmp.Diff(want, g.Normalize()); diff != "" {
		t.Fatalf("normalize mismatch (-want +got):\n%s", diff)
	}
}
