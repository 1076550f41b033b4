package data

import (
	"fmt"
	"strings"
)

// #region record

// Record is one validated preference pair: given Prompt, Chosen was
// preferred over Rejected. Records are never mutated after validation;
// filtering produces new slices instead.
type Record struct {
	Prompt   string         `json:"prompt"`
	Chosen   string         `json:"chosen"`
	Rejected string         `json:"rejected"`
	Source   string         `json:"source,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Key returns the dedup identity of a record. Two records with the same
// (prompt, chosen, rejected) triple are the same preference judgment.
func (r Record) Key() string {
	return r.Prompt + "\x1f" + r.Chosen + "\x1f" + r.Rejected
}

// #endregion record

// #region raw-record

// RawRecord is one ingested line before validation. Known fields are
// extracted by Validate; everything else is preserved as metadata.
type RawRecord map[string]any

// #endregion raw-record

// #region validation-error

// ValidationError reports every violated field of a single raw record.
type ValidationError struct {
	Index      int
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record %d invalid: %s", e.Index, strings.Join(e.Violations, "; "))
}

// #endregion validation-error

// #region validate

// reserved fields extracted into Record proper; everything else is metadata.
var reservedFields = map[string]struct{}{
	"prompt": {}, "chosen": {}, "rejected": {}, "source": {},
}

// Validate checks a raw record against the preference schema and returns
// an immutable Record. The error, when non-nil, is a *ValidationError
// listing every violation, not just the first. Unknown extra fields are
// carried over as metadata for forward compatibility. Validation is
// idempotent: a Record re-serialized and re-validated passes unchanged.
func Validate(raw RawRecord, index int) (Record, error) {
	prompt := stringField(raw, "prompt")
	chosen := stringField(raw, "chosen")
	rejected := stringField(raw, "rejected")

	// Anthropic HH transcripts embed the prompt in the chosen conversation.
	if prompt == "" && looksLikeConversation(chosen) {
		prompt = lastHumanTurn(chosen)
		chosen = lastAssistantTurn(chosen)
		rejected = lastAssistantTurn(rejected)
	}

	var violations []string
	if prompt == "" {
		violations = append(violations, "prompt: empty")
	}
	if chosen == "" {
		violations = append(violations, "chosen: empty")
	}
	if rejected == "" {
		violations = append(violations, "rejected: empty")
	}
	if chosen != "" && chosen == rejected {
		violations = append(violations, "rejected: identical to chosen")
	}
	if len(violations) > 0 {
		return Record{}, &ValidationError{Index: index, Violations: violations}
	}

	rec := Record{
		Prompt:   prompt,
		Chosen:   chosen,
		Rejected: rejected,
		Source:   stringField(raw, "source"),
	}
	for k, v := range raw {
		if _, ok := reservedFields[k]; ok {
			continue
		}
		if k == "metadata" {
			if m, ok := v.(map[string]any); ok {
				if rec.Metadata == nil {
					rec.Metadata = make(map[string]any, len(m))
				}
				for mk, mv := range m {
					rec.Metadata[mk] = mv
				}
			}
			continue
		}
		if rec.Metadata == nil {
			rec.Metadata = make(map[string]any)
		}
		rec.Metadata[k] = v
	}
	return rec, nil
}

func stringField(raw RawRecord, key string) string {
	s, _ := raw[key].(string)
	return strings.TrimSpace(s)
}

// #endregion validate

// #region hh-format

const (
	humanTurn     = "\n\nHuman: "
	assistantTurn = "\n\nAssistant: "
)

func looksLikeConversation(text string) bool {
	return strings.Contains(text, assistantTurn)
}

// lastHumanTurn extracts the final human message from an HH transcript.
func lastHumanTurn(conversation string) string {
	parts := strings.Split(conversation, humanTurn)
	if len(parts) < 2 {
		return strings.TrimSpace(conversation)
	}
	last := parts[len(parts)-1]
	if idx := strings.Index(last, assistantTurn); idx != -1 {
		last = last[:idx]
	}
	return strings.TrimSpace(last)
}

// lastAssistantTurn extracts the final assistant response from an HH
// transcript. Plain responses pass through unchanged.
func lastAssistantTurn(text string) string {
	parts := strings.Split(text, assistantTurn)
	if len(parts) < 2 {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(parts[len(parts)-1])
}

// #endregion hh-format
