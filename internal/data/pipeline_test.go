package data

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// memSource serves a fixed raw record slice, avoiding file I/O in
// pipeline-only tests.
type memSource []RawRecord

func (s memSource) Fetch(ctx context.Context) ([]RawRecord, error) { return s, nil }

func pair(prompt, chosen, rejected string) RawRecord {
	return RawRecord{"prompt": prompt, "chosen": chosen, "rejected": rejected}
}

func TestPrepareDropsInvalidAndDeduplicates(t *testing.T) {
	src := memSource{
		pair("p1", "c1", "r1"),
		pair("p2", "", "r2"), // invalid: empty chosen
		pair("p1", "c1", "r1"),
		pair("p3", "c3", "r3"),
	}
	prepared, err := Pipeline{MaxInvalidRate: 0.5}.Prepare(context.Background(), src)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if len(prepared.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(prepared.Records))
	}
	if prepared.Ingested != 4 || prepared.Dropped != 1 || prepared.Duplicates != 1 {
		t.Fatalf("unexpected accounting: %+v", prepared)
	}
	if len(prepared.Violations) != 1 || prepared.Violations[0].Index != 1 {
		t.Fatalf("expected one violation at index 1, got %+v", prepared.Violations)
	}
	// First occurrence wins on dedup.
	if prepared.Records[0].Prompt != "p1" || prepared.Records[1].Prompt != "p3" {
		t.Fatalf("unexpected record order: %+v", prepared.Records)
	}
}

func TestPrepareFailsWhenInvalidRateExceeded(t *testing.T) {
	src := memSource{
		pair("p1", "c1", "r1"),
		pair("", "", ""),
		pair("", "", ""),
	}
	_, err := Pipeline{MaxInvalidRate: 0.5}.Prepare(context.Background(), src)
	if err == nil {
		t.Fatal("expected error when invalid rate exceeds tolerance")
	}
}

func TestPrepareFailsWithNoValidRecords(t *testing.T) {
	_, err := Pipeline{MaxInvalidRate: 1}.Prepare(context.Background(), memSource{pair("", "", "")})
	if err == nil {
		t.Fatal("expected error with zero valid records")
	}
}

func TestPrepareIdenticalPairYieldsNothingValid(t *testing.T) {
	// An identical chosen/rejected pair carries no preference signal; the
	// sole record is dropped and preparation fails for lack of valid data.
	_, err := Pipeline{MaxInvalidRate: 1}.Prepare(context.Background(), memSource{pair("A", "X", "X")})
	if err == nil {
		t.Fatal("expected error for dataset of one identical pair")
	}
	if !strings.Contains(err.Error(), "no valid records") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSplitIsDeterministic(t *testing.T) {
	var src memSource
	for i := 0; i < 20; i++ {
		src = append(src, pair(fmt.Sprintf("p%d", i), "c", fmt.Sprintf("r%d", i)))
	}
	prepared, err := Pipeline{MaxInvalidRate: 0}.Prepare(context.Background(), src)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	train1, hold1 := prepared.Split(0.1)
	train2, hold2 := prepared.Split(0.1)
	if len(hold1) != 2 || len(train1) != 18 {
		t.Fatalf("expected 18/2 split, got %d/%d", len(train1), len(hold1))
	}
	for i := range hold1 {
		if hold1[i].Key() != hold2[i].Key() {
			t.Fatal("split is not deterministic")
		}
	}
	if len(train1) != len(train2) {
		t.Fatal("split is not deterministic")
	}
}

func TestSplitTinyInputKeepsAllForTraining(t *testing.T) {
	prepared := &Prepared{Records: []Record{{Prompt: "p", Chosen: "c", Rejected: "r"}}}
	train, hold := prepared.Split(0.1)
	if len(train) != 1 || hold != nil {
		t.Fatalf("expected no holdout for single record, got %d/%d", len(train), len(hold))
	}
}

func TestManifestChecksumIgnoresOrder(t *testing.T) {
	a := &Prepared{Records: []Record{
		{Prompt: "p1", Chosen: "c1", Rejected: "r1"},
		{Prompt: "p2", Chosen: "c2", Rejected: "r2"},
	}}
	b := &Prepared{Records: []Record{a.Records[1], a.Records[0]}}

	ma := a.Manifest("set")
	mb := b.Manifest("set")
	if ma.Checksum != mb.Checksum {
		t.Fatal("checksum depends on ingestion order")
	}
	if ma.NumRecords != 2 || len(ma.Checksum) != 16 {
		t.Fatalf("unexpected manifest: %+v", ma)
	}
}

func TestManifestChecksumTracksContent(t *testing.T) {
	a := &Prepared{Records: []Record{{Prompt: "p", Chosen: "c", Rejected: "r"}}}
	b := &Prepared{Records: []Record{{Prompt: "p", Chosen: "c", Rejected: "other"}}}
	if a.Manifest("set").Checksum == b.Manifest("set").Checksum {
		t.Fatal("different content produced the same checksum")
	}
}

func TestSaveManifestWritesJSON(t *testing.T) {
	dir := t.TempDir()
	prepared := &Prepared{Records: []Record{{Prompt: "p", Chosen: "c", Rejected: "r"}}}
	path, err := SaveManifest(prepared.Manifest("pairs"), dir)
	if err != nil {
		t.Fatalf("SaveManifest: %v", err)
	}
	if filepath.Base(path) != "pairs_manifest.json" {
		t.Fatalf("unexpected manifest path: %s", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if !strings.Contains(string(raw), `"checksum"`) {
		t.Fatalf("manifest missing checksum: %s", raw)
	}
}

func TestFileSourceReadsNDJSON(t *testing.T) {
	path := writeLines(t,
		`{"prompt": "p1", "chosen": "c1", "rejected": "r1"}`,
		"",
		`{"prompt": "p2", "chosen": "c2", "rejected": "r2"}`,
	)
	records, err := FileSource{Path: path}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records (blank line skipped), got %d", len(records))
	}
}

func TestFileSourceHonorsMaxSamples(t *testing.T) {
	path := writeLines(t,
		`{"prompt": "p1", "chosen": "c1", "rejected": "r1"}`,
		`{"prompt": "p2", "chosen": "c2", "rejected": "r2"}`,
		`{"prompt": "p3", "chosen": "c3", "rejected": "r3"}`,
	)
	records, err := FileSource{Path: path, MaxSamples: 2}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestFileSourceFailsOnCorruptLine(t *testing.T) {
	path := writeLines(t,
		`{"prompt": "p1", "chosen": "c1", "rejected": "r1"}`,
		`{not json`,
	)
	_, err := FileSource{Path: path}.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error for corrupt JSON line")
	}
}

func writeLines(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.ndjson")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write test data: %v", err)
	}
	return path
}
