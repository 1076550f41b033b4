package data

import (
	"fmt"
	"testing"
)

func records(n int) []Record {
	out := make([]Record, n)
	for i := range out {
		out[i] = Record{
			Prompt:   fmt.Sprintf("p%d", i),
			Chosen:   fmt.Sprintf("c%d", i),
			Rejected: fmt.Sprintf("r%d", i),
		}
	}
	return out
}

func TestNewBatchesRejectsUnknownFormat(t *testing.T) {
	if _, err := NewBatches(records(4), Format("reward_model"), 2); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := NewBatches(records(4), FormatPreferencePairs, 0); err == nil {
		t.Fatal("expected error for non-positive batch size")
	}
}

func TestBatchSeqPartialFinalBatch(t *testing.T) {
	seq, err := NewBatches(records(5), FormatPreferencePairs, 2)
	if err != nil {
		t.Fatalf("NewBatches: %v", err)
	}

	var sizes []int
	for {
		b, ok := seq.Next()
		if !ok {
			break
		}
		sizes = append(sizes, b.Size())
		if b.Format != FormatPreferencePairs || len(b.Completions) != 0 {
			t.Fatalf("unexpected batch shape: %+v", b)
		}
	}
	if len(sizes) != 3 || sizes[0] != 2 || sizes[1] != 2 || sizes[2] != 1 {
		t.Fatalf("expected sizes [2 2 1], got %v", sizes)
	}
}

func TestBatchSeqPromptCompletionFormat(t *testing.T) {
	seq, err := NewBatches(records(2), FormatPromptCompletion, 2)
	if err != nil {
		t.Fatalf("NewBatches: %v", err)
	}
	b, ok := seq.Next()
	if !ok {
		t.Fatal("expected one batch")
	}
	if len(b.Pairs) != 0 || len(b.Completions) != 2 {
		t.Fatalf("unexpected batch shape: %+v", b)
	}
	if b.Completions[0].Completion != "c0" {
		t.Fatalf("completion should carry the preferred response, got %q", b.Completions[0].Completion)
	}
}

func TestBatchSeqResetRestarts(t *testing.T) {
	seq, err := NewBatches(records(4), FormatPreferencePairs, 2)
	if err != nil {
		t.Fatalf("NewBatches: %v", err)
	}
	first, _ := seq.Next()
	seq.Next()
	if _, ok := seq.Next(); ok {
		t.Fatal("expected exhaustion after two batches")
	}

	seq.Reset()
	again, ok := seq.Next()
	if !ok {
		t.Fatal("expected batches after Reset")
	}
	if again.Index != 0 || again.Pairs[0] != first.Pairs[0] {
		t.Fatalf("Reset did not rewind to the first batch: %+v", again)
	}
}

func TestBatchSeqSkipForResume(t *testing.T) {
	seq, err := NewBatches(records(6), FormatPreferencePairs, 2)
	if err != nil {
		t.Fatalf("NewBatches: %v", err)
	}
	if n := seq.Skip(2); n != 2 {
		t.Fatalf("expected 2 skipped, got %d", n)
	}
	b, ok := seq.Next()
	if !ok {
		t.Fatal("expected a batch after skip")
	}
	if b.Index != 2 || b.Pairs[0].Prompt != "p4" {
		t.Fatalf("expected third batch after skipping two, got %+v", b)
	}

	// Skipping past the end reports how far it actually got.
	seq.Reset()
	if n := seq.Skip(10); n != 3 {
		t.Fatalf("expected 3 skipped on over-skip, got %d", n)
	}
}
