package events

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestReadAllMissingFileIsEmpty(t *testing.T) {
	evs, err := ReadAll(filepath.Join(t.TempDir(), "nope.jsonl"))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if evs != nil {
		t.Fatalf("expected nil for missing log, got %v", evs)
	}
}

func TestTailAndCount(t *testing.T) {
	bus := tempBus(t)
	for step := 1; step <= 5; step++ {
		if err := bus.Emit(New("run-1", step, TypeStep, nil)); err != nil {
			t.Fatalf("Emit: %v", err)
		}
	}
	bus.Close()

	n, err := Count(bus.Path())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 events, got %d", n)
	}

	last, err := Tail(bus.Path(), 2)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(last) != 2 || last[0].Step != 4 || last[1].Step != 5 {
		t.Fatalf("expected last two steps, got %+v", last)
	}

	all, err := Tail(bus.Path(), 100)
	if err != nil {
		t.Fatalf("Tail over length: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected whole log when n exceeds length, got %d", len(all))
	}
}

func TestListRuns(t *testing.T) {
	dir := t.TempDir()
	for _, id := range []string{"run-b", "run-a"} {
		bus, err := NewBus(dir, id)
		if err != nil {
			t.Fatalf("NewBus: %v", err)
		}
		bus.Close()
	}
	runs, err := ListRuns(dir)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 || runs[0] != "run-a" || runs[1] != "run-b" {
		t.Fatalf("expected sorted run ids, got %v", runs)
	}
}

func TestFollowStreamsAppendedEvents(t *testing.T) {
	dir := t.TempDir()
	bus, err := NewBus(dir, "run-1")
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	defer bus.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	evCh, errCh := Follow(ctx, bus.Path(), 10*time.Millisecond)

	for step := 1; step <= 3; step++ {
		if err := bus.Emit(New("run-1", step, TypeStep, nil)); err != nil {
			t.Fatalf("Emit: %v", err)
		}
	}

	for want := 1; want <= 3; want++ {
		select {
		case ev := <-evCh:
			if ev.Step != want {
				t.Fatalf("expected step %d, got %d", want, ev.Step)
			}
		case err := <-errCh:
			t.Fatalf("Follow: %v", err)
		case <-ctx.Done():
			t.Fatal("timed out waiting for followed events")
		}
	}
}

func TestLogPath(t *testing.T) {
	got := LogPath("telemetry", "abc")
	want := filepath.Join("telemetry", "abc.jsonl")
	if got != want {
		t.Fatalf("LogPath = %q, want %q", got, want)
	}
}
