package systems

import (
	"slices"
	"testing"
)

func TestSystemRegistry(t *testing.T) {
	reg := NewSystemRegistry()

	want := []string{PhaseInput, PhaseServe, PhaseCollision, PhaseRules, PhaseAI, PhaseIntegrate, PhaseFX, PhaseRender}
	if got := reg.IDs(); !slices.Equal(got, want) {
		t.Errorf("IDs = %v, want %v", got, want)
	}
	if got := reg.GetName(PhaseAI); got != "AI" {
		t.Errorf("GetName(ai) = %q", got)
	}
	if got := reg.GetName("unknown"); got != "unknown" {
		t.Errorf("GetName fallback = %q", got)
	}
	if _, ok := reg.Get("unknown"); ok {
		t.Error("Get should miss unknown IDs")
	}
}
