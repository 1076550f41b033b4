package algorithm

import (
	"context"
	"fmt"

	"github.com/danielpatrickdp/pref-align/go-trainer/internal/config"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/data"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/runtime"
)

// #region outputs

// StepOutput is what one training step yields: a non-negative scalar loss
// and named scalar metrics. The primary algorithm always includes
// reward_margin and learning_rate in Metrics.
type StepOutput struct {
	Loss    float64
	Metrics map[string]float64
}

// EvalOutput aggregates a forward-only pass over held-out batches.
type EvalOutput struct {
	Loss       float64
	Margin     float64
	Accuracy   float64
	NumSamples int
}

// #endregion outputs

// #region plugin

// State is the opaque per-run state a plugin builds in Prepare and
// threads through Step and Finalize. Plugins treat it as immutable during
// stepping.
type State any

// Plugin is the swappable alignment-algorithm capability. Implementations
// declare their batch format statically so the data pipeline can format
// without probing internals, and must not mutate batches.
type Plugin interface {
	// Name identifies the plugin in configs and the registry.
	Name() string

	// RequiredFormat is the batch shape this algorithm consumes.
	RequiredFormat() data.Format

	// Prepare builds the per-run state from the validated config.
	Prepare(ctx context.Context, cfg config.Train, rt runtime.Runtime) (State, error)

	// Step runs one optimization step over batch. A non-finite loss is
	// reported as a *NumericError; the trainer treats it as fatal for the
	// run but checkpoint-recoverable.
	Step(ctx context.Context, st State, step int, batch data.Batch) (StepOutput, error)

	// Eval runs a forward-only comparison over the held-out sequence.
	Eval(ctx context.Context, st State, batches *data.BatchSeq) (EvalOutput, error)

	// Finalize releases any per-run state.
	Finalize(ctx context.Context, st State) error
}

// Constructor builds a fresh plugin instance.
type Constructor func() Plugin

// #endregion plugin

// #region errors

// NotImplementedError marks a placeholder plugin whose step contract is
// deliberately unimplemented. It is fatal and never silently skipped.
type NotImplementedError struct {
	Plugin string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("algorithm %q is a placeholder: training step not implemented", e.Plugin)
}

// NumericError reports a non-finite loss or input. The run aborts, but the
// last checkpoint remains valid for resume.
type NumericError struct {
	Step   int
	Detail string
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("numeric instability at step %d: %s", e.Step, e.Detail)
}

// #endregion errors
