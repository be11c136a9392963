package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksRequestsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRequest("teams", 10*time.Millisecond, nil)
	rec.RecordRequest("teams", 15*time.Millisecond, errors.New("boom"))

	if got := rec.Requests("teams"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.RequestErrors("teams"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastLatency("teams"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("teams")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if empty := rec.Snapshot("players"); empty.Calls != 0 {
		t.Fatalf("expected empty snapshot for unknown route, got %+v", empty)
	}
}

func TestRecorderTracksRefreshCycles(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRefreshCycle(time.Millisecond, 0)
	rec.RecordRefreshCycle(time.Millisecond, 2)

	if got := rec.RefreshCycles(); got != 2 {
		t.Fatalf("expected 2 refresh cycles, got %d", got)
	}
	if got := rec.RefreshFailures(); got != 2 {
		t.Fatalf("expected 2 refresh failures, got %d", got)
	}
}

func TestRecorderTracksMutations(t *testing.T) {
	rec := NewRecorder()
	rec.RecordMutation("add_team", nil)
	rec.RecordMutation("add_team", errors.New("boom"))

	calls, errs := rec.Mutations("add_team")
	if calls != 2 || errs != 1 {
		t.Fatalf("expected 2 calls and 1 error, got %d/%d", calls, errs)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordRequest("teams", time.Millisecond, nil)
	rec.RecordRefreshCycle(time.Millisecond, 1)
	rec.RecordMutation("add_team", nil)

	if rec.Requests("teams") != 0 || rec.RefreshCycles() != 0 || rec.RefreshFailures() != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
	if calls, _ := rec.Mutations("add_team"); calls != 0 {
		t.Fatalf("expected zero mutations from nil recorder")
	}
}
