package metrics

import "testing"

func TestMetricFieldKeysAreStable(t *testing.T) {
	if AttrRoute == "" || AttrMutation == "" || AttrOutcome == "" {
		t.Fatalf("expected metric attribute keys to be non-empty")
	}
	if OutcomeOK == OutcomeError {
		t.Fatalf("expected distinct outcome values")
	}
}
