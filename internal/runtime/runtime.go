package runtime

import (
	"context"

	"github.com/danielpatrickdp/pref-align/go-trainer/internal/data"
)

// #region types

// ModelInfo describes a loaded base model.
type ModelInfo struct {
	ModelHash  string
	ParamCount int64
}

// StepResult carries per-example summed log-probabilities for the policy
// and frozen reference model after one forward (and, for training steps,
// backward) pass. Slices are index-aligned with the batch.
type StepResult struct {
	PolicyChosen   []float64
	PolicyRejected []float64
	RefChosen      []float64
	RefRejected    []float64
	GradNorm       float64
}

// Snapshot is the opaque trainable state held runtime-side: adapter
// weights, optimizer state, and RNG state. The controller persists these
// blobs without interpreting them.
type Snapshot struct {
	Adapter   []byte
	Optimizer []byte
	RNG       []byte
}

// #endregion types

// #region runtime

// Runtime is the contract toward the external training service that owns
// the GPU: quantized model loading, forward/backward passes, optimizer
// updates, and adapter merging. The controller never touches tensors; it
// exchanges batches for log-probabilities and state blobs.
type Runtime interface {
	// LoadModel loads the base model with the adapter attached. Loading is
	// idempotent for the same model id.
	LoadModel(ctx context.Context, modelID string, quantBits int, adapterType string, seed int64) (ModelInfo, error)

	// TrainStep runs one optimization step over the batch and returns the
	// log-probabilities the controller derives loss and metrics from.
	TrainStep(ctx context.Context, step int, pairs []data.Pair, beta, learningRate float64) (StepResult, error)

	// EvalBatch runs a forward pass only, leaving trainable state untouched.
	EvalBatch(ctx context.Context, pairs []data.Pair, beta float64) (StepResult, error)

	// ExportState snapshots adapter, optimizer, and RNG state.
	ExportState(ctx context.Context) (Snapshot, error)

	// RestoreState reinstates a previously exported snapshot.
	RestoreState(ctx context.Context, snap Snapshot) error

	// MergeAdapter folds the adapter into the base weights and writes a
	// standalone model under outputDir, returning its path.
	MergeAdapter(ctx context.Context, outputDir string) (string, error)

	Close() error
}

// #endregion runtime
