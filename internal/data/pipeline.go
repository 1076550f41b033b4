package data

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// #region pipeline

// Pipeline drives the data lifecycle: ingest, validate, dedup. Invalid
// records are dropped and logged; preparation fails only when the dropped
// fraction exceeds MaxInvalidRate or nothing valid remains.
type Pipeline struct {
	// MaxInvalidRate is the tolerated fraction of invalid records in (0, 1].
	// At 0 any invalid record is fatal.
	MaxInvalidRate float64
}

// Prepared is the output of Prepare: validated, deduplicated records plus
// the bookkeeping needed for manifests and failure accounting.
type Prepared struct {
	Records    []Record
	Ingested   int
	Dropped    int
	Duplicates int
	Violations []*ValidationError
}

// #endregion pipeline

// #region prepare

// Prepare fetches raw records from src, validates each against the
// preference schema, and collapses duplicate (prompt, chosen, rejected)
// triples to their first occurrence. Per-record failures are isolated:
// the record is dropped and its violation recorded.
func (p Pipeline) Prepare(ctx context.Context, src Source) (*Prepared, error) {
	raw, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	out := &Prepared{Ingested: len(raw)}
	seen := make(map[string]struct{}, len(raw))
	for i, r := range raw {
		rec, err := Validate(r, i)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				out.Dropped++
				out.Violations = append(out.Violations, verr)
				if out.Dropped <= 5 {
					log.Printf("[DATA] dropping record %d: %v", i, err)
				}
				continue
			}
			return nil, err
		}
		if _, dup := seen[rec.Key()]; dup {
			out.Duplicates++
			continue
		}
		seen[rec.Key()] = struct{}{}
		out.Records = append(out.Records, rec)
	}

	if len(out.Records) == 0 {
		return nil, fmt.Errorf("prepare: no valid records (%d ingested, %d dropped)", out.Ingested, out.Dropped)
	}
	if out.Ingested > 0 {
		rate := float64(out.Dropped) / float64(out.Ingested)
		if rate > p.MaxInvalidRate {
			return nil, fmt.Errorf("prepare: invalid rate %.2f exceeds %.2f (%d of %d dropped)",
				rate, p.MaxInvalidRate, out.Dropped, out.Ingested)
		}
	}

	log.Printf("[DATA] prepared %d records (%d ingested, %d dropped, %d duplicates)",
		len(out.Records), out.Ingested, out.Dropped, out.Duplicates)
	return out, nil
}

// #endregion prepare

// #region holdout

// Split carves a deterministic held-out set off the prepared records:
// every k-th record lands in the holdout, the rest stay for training.
// fraction must be in (0, 1); too-small inputs yield an empty holdout.
func (p *Prepared) Split(fraction float64) (train, holdout []Record) {
	if fraction <= 0 || fraction >= 1 || len(p.Records) < 2 {
		return p.Records, nil
	}
	stride := int(1 / fraction)
	if stride < 2 {
		stride = 2
	}
	for i, rec := range p.Records {
		if i%stride == stride-1 {
			holdout = append(holdout, rec)
		} else {
			train = append(train, rec)
		}
	}
	return train, holdout
}

// #endregion holdout

// #region manifest

// Manifest records the provenance of a prepared dataset for reproducibility.
type Manifest struct {
	Name          string `json:"name"`
	Version       string `json:"version"`
	SchemaVersion string `json:"schema_version"`
	NumRecords    int    `json:"num_records"`
	Checksum      string `json:"checksum"`
}

// Manifest computes a content checksum over the prepared records. Records
// are hashed in canonical (sorted key) order so the checksum is stable
// across ingestion order.
func (p *Prepared) Manifest(name string) Manifest {
	keys := make([]string, len(p.Records))
	byKey := make(map[string]Record, len(p.Records))
	for i, rec := range p.Records {
		keys[i] = rec.Key()
		byKey[rec.Key()] = rec
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		rec := byKey[k]
		b, _ := json.Marshal(struct {
			Prompt   string `json:"prompt"`
			Chosen   string `json:"chosen"`
			Rejected string `json:"rejected"`
		}{rec.Prompt, rec.Chosen, rec.Rejected})
		h.Write(b)
		h.Write([]byte{'\n'})
	}

	return Manifest{
		Name:          name,
		Version:       "1.0",
		SchemaVersion: "1.0",
		NumRecords:    len(p.Records),
		Checksum:      hex.EncodeToString(h.Sum(nil))[:16],
	}
}

// SaveManifest writes the manifest as JSON into dir.
func SaveManifest(m Manifest, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, m.Name+"_manifest.json")
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	log.Printf("[DATA] saved manifest: %s", path)
	return path, nil
}

// #endregion manifest
