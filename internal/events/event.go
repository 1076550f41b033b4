package events

import "time"

// #region event-type

// Type classifies a run event.
type Type string

const (
	TypeRunStart   Type = "run_start"
	TypeStep       Type = "step"
	TypeCheckpoint Type = "checkpoint"
	TypeEval       Type = "eval"
	TypeError      Type = "error"
	TypeRunEnd     Type = "run_end"
)

// #endregion event-type

// #region event

// Event is one append-only telemetry record. Within a run, Step is
// monotonically non-decreasing across emitted events; run_start is always
// first and run_end (or a terminal error) last. Events are never mutated
// after emission.
type Event struct {
	RunID     string         `json:"run_id"`
	Step      int            `json:"step"`
	Type      Type           `json:"event_type"`
	Timestamp time.Time      `json:"timestamp"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// New builds an event stamped with the current time.
func New(runID string, step int, typ Type, payload map[string]any) Event {
	return Event{
		RunID:     runID,
		Step:      step,
		Type:      typ,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// #endregion event
