package events

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// #region bus

// Bus is the single-writer run event channel: every emitted event is
// appended to a newline-delimited JSON log file and fanned out, in
// emission order, to in-process subscribers. Readers only ever tail the
// file or drain a subscription; nothing flows back toward the trainer.
type Bus struct {
	mu       sync.Mutex
	f        *os.File
	path     string
	lastStep int
	subs     []*subscriber
	closed   bool
}

type subscriber struct {
	ch      chan Event
	dropped bool
}

// appendRetries bounds how often a failed file append is retried before
// Emit fails loudly.
const appendRetries = 3

// NewBus opens (or creates) the append-only log for a run at
// <logDir>/<runID>.jsonl.
func NewBus(logDir, runID string) (*Bus, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(logDir, runID+".jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open event log %s: %w", path, err)
	}
	return &Bus{f: f, path: path}, nil
}

// Path returns the log file location for external observers.
func (b *Bus) Path() string {
	return b.path
}

// #endregion bus

// #region emit

// Emit appends the event to the log and delivers it to every live
// subscriber. The append is retried a bounded number of times and then
// fails loudly; it completes (or fails) before Emit returns, so callers
// that emit sequentially get strict ordering on disk. A step lower than
// an already-emitted one is rejected outright.
func (b *Bus) Emit(ev Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return fmt.Errorf("emit on closed bus")
	}
	if ev.Step < b.lastStep {
		return fmt.Errorf("emit: step %d regresses below %d", ev.Step, b.lastStep)
	}

	line, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	line = append(line, '\n')

	var writeErr error
	for attempt := 0; attempt < appendRetries; attempt++ {
		if _, writeErr = b.f.Write(line); writeErr == nil {
			break
		}
		time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
	}
	if writeErr != nil {
		return fmt.Errorf("append event after %d attempts: %w", appendRetries, writeErr)
	}

	b.lastStep = ev.Step
	for _, sub := range b.subs {
		if sub.dropped {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			// A subscriber that cannot keep up is evicted rather than
			// allowed to stall the training loop.
			sub.dropped = true
			close(sub.ch)
			log.Printf("[BUS] evicting slow subscriber (buffer full at step %d)", ev.Step)
		}
	}
	return nil
}

// #endregion emit

// #region subscribe

// Subscribe returns an ordered live stream of events emitted after this
// call; historical events are only available by replaying the persisted
// log (see ReadAll). The returned cancel func releases the subscription.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 64
	}
	sub := &subscriber{ch: make(chan Event, buffer)}

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if !sub.dropped {
			sub.dropped = true
			close(sub.ch)
		}
	}
	return sub.ch, cancel
}

// #endregion subscribe

// #region close

// Close flushes and closes the log file and terminates all subscriptions.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for _, sub := range b.subs {
		if !sub.dropped {
			sub.dropped = true
			close(sub.ch)
		}
	}
	if err := b.f.Sync(); err != nil {
		b.f.Close()
		return fmt.Errorf("sync event log: %w", err)
	}
	return b.f.Close()
}

// #endregion close
