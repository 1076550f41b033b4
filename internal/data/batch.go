package data

import "fmt"

// #region format

// Format names the batch shape an algorithm consumes. Algorithms declare
// their format statically so the pipeline can build batches without
// probing algorithm internals.
type Format string

const (
	// FormatPreferencePairs keeps each example as a full
	// (prompt, chosen, rejected) triple.
	FormatPreferencePairs Format = "preference_pairs"

	// FormatPromptCompletion reduces each example to the prompt and the
	// preferred completion only.
	FormatPromptCompletion Format = "prompt_completion"
)

// #endregion format

// #region batch-types

// Pair is one preference-pair example inside a batch.
type Pair struct {
	Prompt   string
	Chosen   string
	Rejected string
}

// Completion is one prompt/completion example inside a batch.
type Completion struct {
	Prompt     string
	Completion string
}

// Batch is one formatted unit of work handed to an algorithm step.
// Exactly one of Pairs or Completions is populated, per Format.
// Algorithms must not mutate a batch.
type Batch struct {
	Index       int
	Format      Format
	Pairs       []Pair
	Completions []Completion
}

// Size returns the number of examples in the batch.
func (b Batch) Size() int {
	if b.Format == FormatPromptCompletion {
		return len(b.Completions)
	}
	return len(b.Pairs)
}

// #endregion batch-types

// #region batch-seq

// BatchSeq is a lazy, finite, restartable sequence of batches over a fixed
// record slice. It restarts only from the beginning: there is no seeking
// to an arbitrary batch without replaying.
type BatchSeq struct {
	records []Record
	format  Format
	size    int
	pos     int
	index   int
}

// NewBatches builds a batch sequence in the given format. Unknown formats
// are rejected up front, before any training I/O.
func NewBatches(records []Record, format Format, size int) (*BatchSeq, error) {
	switch format {
	case FormatPreferencePairs, FormatPromptCompletion:
	default:
		return nil, fmt.Errorf("unknown batch format %q", format)
	}
	if size <= 0 {
		return nil, fmt.Errorf("batch size must be > 0, got %d", size)
	}
	return &BatchSeq{records: records, format: format, size: size}, nil
}

// Next returns the next batch, or ok=false when the sequence is exhausted.
// A partial final batch is returned as-is.
func (s *BatchSeq) Next() (Batch, bool) {
	if s.pos >= len(s.records) {
		return Batch{}, false
	}
	end := s.pos + s.size
	if end > len(s.records) {
		end = len(s.records)
	}
	chunk := s.records[s.pos:end]
	s.pos = end

	b := Batch{Index: s.index, Format: s.format}
	s.index++
	switch s.format {
	case FormatPromptCompletion:
		b.Completions = make([]Completion, len(chunk))
		for i, rec := range chunk {
			b.Completions[i] = Completion{Prompt: rec.Prompt, Completion: rec.Chosen}
		}
	default:
		b.Pairs = make([]Pair, len(chunk))
		for i, rec := range chunk {
			b.Pairs[i] = Pair{Prompt: rec.Prompt, Chosen: rec.Chosen, Rejected: rec.Rejected}
		}
	}
	return b, true
}

// Reset rewinds the sequence to the first batch.
func (s *BatchSeq) Reset() {
	s.pos = 0
	s.index = 0
}

// Skip consumes and discards n batches, used when resuming a run from a
// checkpoint: the sequence replays from the start up to the checkpointed
// position. Returns how many batches were actually skipped.
func (s *BatchSeq) Skip(n int) int {
	skipped := 0
	for skipped < n {
		if _, ok := s.Next(); !ok {
			break
		}
		skipped++
	}
	return skipped
}

// #endregion batch-seq
