package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) || !f.Empty() {
		t.Fatal("zero InputFrame should be empty")
	}

	f.Set(ActionFire)
	f.Set(ActionCoarse)
	if !f.Has(ActionFire) || !f.Has(ActionCoarse) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionAngleUp) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if !f.Empty() {
		t.Errorf("Clear() left %d actions", len(f.Actions))
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
