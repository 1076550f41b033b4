package data

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// #region source

// Source yields raw records from somewhere external: a local NDJSON file,
// a corpus download, a fixture. Implementations outside this package plug
// in remote dataset adapters without the pipeline knowing.
type Source interface {
	// Fetch returns the raw record sequence. A non-nil error aborts the run
	// before any training I/O happens.
	Fetch(ctx context.Context) ([]RawRecord, error)
}

// #endregion source

// #region file-source

// FileSource reads newline-delimited JSON records from a local file.
// MaxSamples > 0 truncates the sequence after that many lines.
type FileSource struct {
	Path       string
	MaxSamples int
}

// Fetch reads the whole file. Blank lines are skipped; a line that is not
// valid JSON fails the fetch, since a corrupt file is not a per-record
// problem the pipeline should paper over.
func (s FileSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open data source %s: %w", s.Path, err)
	}
	defer f.Close()

	var records []RawRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec RawRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("parse %s line %d: %w", s.Path, line, err)
		}
		records = append(records, rec)
		if s.MaxSamples > 0 && len(records) >= s.MaxSamples {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return records, nil
}

// #endregion file-source
