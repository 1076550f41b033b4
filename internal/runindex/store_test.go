package runindex

import (
	"path/filepath"
	"testing"
	"time"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func record(runID string) RunRecord {
	return RunRecord{
		RunID:      runID,
		ConfigHash: "hash-a",
		Algorithm:  "dpo",
		ModelID:    "test-model",
		EventLog:   "telemetry/" + runID + ".jsonl",
	}
}

func TestCreateAndGetRun(t *testing.T) {
	s := tempStore(t)
	if err := s.CreateRun(record("run-1")); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	rec, err := s.GetRun("run-1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if rec.Status != StatusRunning {
		t.Fatalf("new run should be running, got %q", rec.Status)
	}
	if rec.Algorithm != "dpo" || rec.ConfigHash != "hash-a" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.StartedAt.IsZero() || rec.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set: %+v", rec)
	}
}

func TestGetRunMissing(t *testing.T) {
	s := tempStore(t)
	if _, err := s.GetRun("nope"); err == nil {
		t.Fatal("expected error for unknown run")
	}
}

func TestCreateRunUpsertsOnResume(t *testing.T) {
	s := tempStore(t)
	if err := s.CreateRun(record("run-1")); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if err := s.SetStatus("run-1", StatusFailed, 7); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	// Resuming re-registers the same run id; it flips back to running
	// without violating the primary key.
	rec := record("run-1")
	rec.LastStep = 7
	if err := s.CreateRun(rec); err != nil {
		t.Fatalf("re-CreateRun: %v", err)
	}
	got, err := s.GetRun("run-1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Status != StatusRunning || got.LastStep != 7 {
		t.Fatalf("expected running at step 7, got %+v", got)
	}
}

func TestUpdateProgressAndStatus(t *testing.T) {
	s := tempStore(t)
	if err := s.CreateRun(record("run-1")); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if err := s.UpdateProgress("run-1", 42); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if err := s.SetStatus("run-1", StatusCompleted, 100); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	rec, err := s.GetRun("run-1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if rec.Status != StatusCompleted || rec.LastStep != 100 {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestListRunsMostRecentFirst(t *testing.T) {
	s := tempStore(t)
	for _, id := range []string{"run-1", "run-2", "run-3"} {
		if err := s.CreateRun(record(id)); err != nil {
			t.Fatalf("CreateRun %s: %v", id, err)
		}
		time.Sleep(2 * time.Millisecond) // distinct updated_at
	}
	if err := s.UpdateProgress("run-1", 5); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}

	records, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(records))
	}
	if records[0].RunID != "run-1" {
		t.Fatalf("expected most recently updated first, got %s", records[0].RunID)
	}

	limited, err := s.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected limit applied, got %d", len(limited))
	}
}

func TestResumable(t *testing.T) {
	s := tempStore(t)

	// Crashed: still running with progress.
	crashed := record("run-crashed")
	if err := s.CreateRun(crashed); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if err := s.UpdateProgress("run-crashed", 10); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}

	// Failed mid-run.
	if err := s.CreateRun(record("run-failed")); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if err := s.SetStatus("run-failed", StatusFailed, 5); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	// Completed and zero-progress runs are not resumable.
	if err := s.CreateRun(record("run-done")); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if err := s.SetStatus("run-done", StatusCompleted, 100); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if err := s.CreateRun(record("run-fresh")); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	records, err := s.Resumable()
	if err != nil {
		t.Fatalf("Resumable: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 resumable runs, got %+v", records)
	}
	for _, rec := range records {
		if rec.RunID == "run-done" || rec.RunID == "run-fresh" {
			t.Fatalf("%s should not be resumable", rec.RunID)
		}
	}
}
