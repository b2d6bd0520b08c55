// ABOUTME: Tests for phase parsing and ordering
// ABOUTME: Unknown stored phases fall back to SCREENING
package models

import "testing"

func TestParsePhaseRoundTrip(t *testing.T) {
	for _, p := range PhaseOrder {
		if got := ParsePhase(string(p)); got != p {
			t.Errorf("ParsePhase(%s) = %s", p, got)
		}
	}
}

func TestParsePhaseUnknown(t *testing.T) {
	if got := ParsePhase("NOT_A_PHASE"); got != PhaseScreening {
		t.Errorf("ParsePhase(unknown) = %s, want SCREENING", got)
	}
	if got := ParsePhase(""); got != PhaseScreening {
		t.Errorf("ParsePhase(empty) = %s, want SCREENING", got)
	}
}

func TestTerminal(t *testing.T) {
	if PhaseScreening.Terminal() {
		t.Error("SCREENING marked terminal")
	}
	if !PhaseComplete.Terminal() {
		t.Error("COMPLETE not marked terminal")
	}
}
