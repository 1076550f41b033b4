package data

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateAcceptsPlainPair(t *testing.T) {
	rec, err := Validate(RawRecord{
		"prompt":   "What is Go?",
		"chosen":   "A programming language.",
		"rejected": "A board game only.",
		"source":   "manual",
	}, 0)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if rec.Prompt != "What is Go?" || rec.Source != "manual" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	_, err := Validate(RawRecord{"prompt": "", "chosen": "", "rejected": ""}, 7)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Index != 7 {
		t.Fatalf("expected index 7, got %d", verr.Index)
	}
	if len(verr.Violations) != 3 {
		t.Fatalf("expected 3 violations, got %v", verr.Violations)
	}
}

func TestValidateRejectsIdenticalPair(t *testing.T) {
	_, err := Validate(RawRecord{
		"prompt":   "p",
		"chosen":   "same answer",
		"rejected": "same answer",
	}, 0)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Violations) != 1 {
		t.Fatalf("expected exactly one violation, got %v", verr.Violations)
	}
}

func TestValidateExtractsConversationTranscript(t *testing.T) {
	chosen := "\n\nHuman: How do I sort a slice?\n\nAssistant: Use sort.Slice."
	rejected := "\n\nHuman: How do I sort a slice?\n\nAssistant: Write a bubble sort by hand."
	rec, err := Validate(RawRecord{"chosen": chosen, "rejected": rejected}, 0)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if rec.Prompt != "How do I sort a slice?" {
		t.Fatalf("prompt not extracted: %q", rec.Prompt)
	}
	if rec.Chosen != "Use sort.Slice." {
		t.Fatalf("chosen not extracted: %q", rec.Chosen)
	}
	if rec.Rejected != "Write a bubble sort by hand." {
		t.Fatalf("rejected not extracted: %q", rec.Rejected)
	}
}

func TestValidateExtractsLastTurnOfMultiTurn(t *testing.T) {
	chosen := "\n\nHuman: Hi\n\nAssistant: Hello!\n\nHuman: What's 2+2?\n\nAssistant: 4."
	rejected := "\n\nHuman: Hi\n\nAssistant: Hello!\n\nHuman: What's 2+2?\n\nAssistant: 5."
	rec, err := Validate(RawRecord{"chosen": chosen, "rejected": rejected}, 0)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if rec.Prompt != "What's 2+2?" {
		t.Fatalf("expected last human turn, got %q", rec.Prompt)
	}
	if rec.Chosen != "4." || rec.Rejected != "5." {
		t.Fatalf("expected last assistant turns, got %q / %q", rec.Chosen, rec.Rejected)
	}
}

func TestValidatePreservesExtraFieldsAsMetadata(t *testing.T) {
	rec, err := Validate(RawRecord{
		"prompt":   "p",
		"chosen":   "c",
		"rejected": "r",
		"rating":   float64(5),
		"metadata": map[string]any{"annotator": "a-12"},
	}, 0)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if rec.Metadata["rating"] != float64(5) {
		t.Fatalf("extra field not preserved: %+v", rec.Metadata)
	}
	if rec.Metadata["annotator"] != "a-12" {
		t.Fatalf("nested metadata not merged: %+v", rec.Metadata)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	rec, err := Validate(RawRecord{
		"prompt":   "p",
		"chosen":   "\n\nHuman: p\n\nAssistant: c",
		"rejected": "r",
		"rating":   "high",
	}, 0)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	// Re-serialize the validated record and validate again: it must pass
	// unchanged.
	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	var round RawRecord
	if err := json.Unmarshal(raw, &round); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	again, err := Validate(round, 0)
	if err != nil {
		t.Fatalf("re-Validate: %v", err)
	}
	if again.Prompt != rec.Prompt || again.Chosen != rec.Chosen || again.Rejected != rec.Rejected {
		t.Fatalf("validation not idempotent:\n first: %+v\nsecond: %+v", rec, again)
	}
	if again.Metadata["rating"] != "high" {
		t.Fatalf("metadata lost in round trip: %+v", again.Metadata)
	}
}

func TestKeyIdentity(t *testing.T) {
	a := Record{Prompt: "p", Chosen: "c", Rejected: "r"}
	b := Record{Prompt: "p", Chosen: "c", Rejected: "r", Source: "other"}
	c := Record{Prompt: "p", Chosen: "c", Rejected: "x"}
	if a.Key() != b.Key() {
		t.Fatal("source should not affect dedup identity")
	}
	if a.Key() == c.Key() {
		t.Fatal("different rejected should change dedup identity")
	}
}
