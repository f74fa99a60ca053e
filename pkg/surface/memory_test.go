package surface

import (
	"testing"
	"time"
)

func TestMemory_UnknownControlIsNoOp(t *testing.T) {
	m := NewMemory()

	m.SetMarker("ghost", MarkerInvalid)
	m.ShowError("ghost", "boom")
	m.Focus("ghost")
	m.ScrollIntoView("ghost")
	m.PulseSelection("ghost", 150*time.Millisecond)

	if got := m.Marker("ghost"); got != MarkerNeutral {
		t.Fatalf("unknown control marker = %q, want neutral", got)
	}
	if _, ok := m.ErrorMessage("ghost"); ok {
		t.Fatal("unknown control should not hold an error node")
	}
	if m.Focused() != "" {
		t.Fatal("focus should not land on an unknown control")
	}
	if len(m.Scrolled()) != 0 {
		t.Fatal("scroll should ignore unknown controls")
	}
}

func TestMemory_ErrorNodeReplaced(t *testing.T) {
	m := NewMemory()
	m.AddControl("phone")

	m.ShowError("phone", "first")
	m.ShowError("phone", "second")

	msg, ok := m.ErrorMessage("phone")
	if !ok || msg != "second" {
		t.Fatalf("error node = (%q, %v), want single node with latest text", msg, ok)
	}

	m.ClearError("phone")
	if _, ok := m.ErrorMessage("phone"); ok {
		t.Fatal("error node should be removed")
	}
}

func TestMemory_ReaderDefaults(t *testing.T) {
	m := NewMemory()
	if m.Value("missing") != "" || m.Checked("missing") {
		t.Fatal("unknown controls read as empty and unchecked")
	}

	m.SetValue("phone", " 123 ")
	if got := m.Value("phone"); got != " 123 " {
		t.Fatalf("value should round-trip untrimmed, got %q", got)
	}

	m.SetChecked("box_travel", true)
	if !m.Checked("box_travel") {
		t.Fatal("checked state should round-trip")
	}
}

func TestMemory_HighlightAndPulse(t *testing.T) {
	m := NewMemory()
	m.AddControl("box_travel")

	m.SetGroupHighlight("box_type", true)
	if !m.Highlighted("box_type") {
		t.Fatal("highlight should be on")
	}
	m.SetGroupHighlight("box_type", false)
	if m.Highlighted("box_type") {
		t.Fatal("highlight should be cleared")
	}

	m.PulseSelection("box_travel", 150*time.Millisecond)
	m.PulseSelection("box_travel", 150*time.Millisecond)
	if got := m.Pulses("box_travel"); got != 2 {
		t.Fatalf("pulse count = %d, want 2", got)
	}
}
