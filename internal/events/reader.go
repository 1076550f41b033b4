package events

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// #region read-all

// ReadAll replays a run's full event log in emission order. A missing
// file yields an empty slice: the run simply has not emitted yet.
func ReadAll(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open event log %s: %w", path, err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, fmt.Errorf("parse %s line %d: %w", path, line, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return events, nil
}

// Tail returns the last n events of a run's log.
func Tail(path string, n int) ([]Event, error) {
	all, err := ReadAll(path)
	if err != nil {
		return nil, err
	}
	if n <= 0 || n >= len(all) {
		return all, nil
	}
	return all[len(all)-n:], nil
}

// Count returns the number of events persisted for a run.
func Count(path string) (int, error) {
	all, err := ReadAll(path)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

// ListRuns returns the run IDs with an event log under dir, sorted.
func ListRuns(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log dir %s: %w", dir, err)
	}
	var runs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".jsonl") {
			continue
		}
		runs = append(runs, strings.TrimSuffix(name, ".jsonl"))
	}
	sort.Strings(runs)
	return runs, nil
}

// #endregion read-all

// #region follow

// Follow tails a run's event log from offset zero, polling for appended
// lines until ctx is cancelled. This is the external observer's entry
// point: it holds no lock and never writes, so it is safe alongside the
// single writer. Partial trailing lines (an append in progress) are left
// in the buffer until the newline arrives.
func Follow(ctx context.Context, path string, poll time.Duration) (<-chan Event, <-chan error) {
	if poll <= 0 {
		poll = 250 * time.Millisecond
	}
	out := make(chan Event, 64)
	errc := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errc)

		var offset int64
		var pending []byte
		ticker := time.NewTicker(poll)
		defer ticker.Stop()

		for {
			n, err := followOnce(ctx, path, offset, &pending, out)
			if err != nil {
				errc <- err
				return
			}
			offset += n

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return out, errc
}

// followOnce reads any bytes appended past offset and emits the complete
// lines among them. Returns the number of bytes consumed.
func followOnce(ctx context.Context, path string, offset int64, pending *[]byte, out chan<- Event) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil // not written yet
		}
		return 0, fmt.Errorf("open event log %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seek %s: %w", path, err)
	}
	chunk, err := io.ReadAll(f)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	if len(chunk) == 0 {
		return 0, nil
	}

	buf := append(*pending, chunk...)
	for {
		idx := bytes.IndexByte(buf, '\n')
		if idx < 0 {
			break
		}
		line := buf[:idx]
		buf = buf[idx+1:]
		if len(line) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			return 0, fmt.Errorf("parse %s: %w", path, err)
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return int64(len(chunk)), nil
		}
	}
	*pending = buf
	return int64(len(chunk)), nil
}

// LogPath returns the conventional event log location for a run.
func LogPath(logDir, runID string) string {
	return filepath.Join(logDir, runID+".jsonl")
}

// #endregion follow
