package runtime

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/danielpatrickdp/pref-align/go-trainer/internal/data"
)

// #region fake

// Fake is an in-memory Runtime for tests and dry runs. It produces
// deterministic log-probabilities that drift apart with each step, so the
// derived loss decreases the way a healthy run's would. Failure modes are
// injectable per call site.
type Fake struct {
	mu sync.Mutex

	loadedID string
	steps    int
	snap     Snapshot

	// FailStepAt makes TrainStep fail when called with that step (0 = never).
	FailStepAt int
	// NonFiniteAt makes TrainStep return NaN logprobs at that step (0 = never).
	NonFiniteAt int
	// LoadErr, when set, is returned by LoadModel.
	LoadErr error
}

var _ Runtime = (*Fake)(nil)

// NewFake returns a Fake with no failures armed.
func NewFake() *Fake {
	return &Fake{}
}

// LoadModel records the model id; repeat loads of the same id are no-ops.
func (f *Fake) LoadModel(ctx context.Context, modelID string, quantBits int, adapterType string, seed int64) (ModelInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.LoadErr != nil {
		return ModelInfo{}, f.LoadErr
	}
	f.loadedID = modelID
	return ModelInfo{ModelHash: "fake-" + modelID, ParamCount: 1 << 20}, nil
}

// TrainStep returns logprobs whose chosen/rejected margin widens with the
// internal step counter.
func (f *Fake) TrainStep(ctx context.Context, step int, pairs []data.Pair, beta, learningRate float64) (StepResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailStepAt > 0 && step == f.FailStepAt {
		return StepResult{}, fmt.Errorf("runtime: simulated step failure at %d", step)
	}
	f.steps++
	res := f.forward(pairs, float64(f.steps))
	if f.NonFiniteAt > 0 && step == f.NonFiniteAt {
		res.PolicyChosen[0] = math.NaN()
	}
	res.GradNorm = 1 / float64(f.steps)
	return res, nil
}

// EvalBatch returns forward-only logprobs at the current progress level.
func (f *Fake) EvalBatch(ctx context.Context, pairs []data.Pair, beta float64) (StepResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forward(pairs, float64(f.steps)), nil
}

// ExportState snapshots the step counter so a restore resumes the drift.
func (f *Fake) ExportState(ctx context.Context) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int64(f.steps))
	return Snapshot{
		Adapter:   buf.Bytes(),
		Optimizer: []byte("optimizer"),
		RNG:       []byte("rng"),
	}, nil
}

// RestoreState reinstates the step counter from an exported snapshot.
func (f *Fake) RestoreState(ctx context.Context, snap Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(snap.Adapter) < 8 {
		return fmt.Errorf("runtime: malformed snapshot")
	}
	var steps int64
	binary.Read(bytes.NewReader(snap.Adapter), binary.LittleEndian, &steps)
	f.steps = int(steps)
	f.snap = snap
	return nil
}

// MergeAdapter pretends to write a merged model.
func (f *Fake) MergeAdapter(ctx context.Context, outputDir string) (string, error) {
	return outputDir + "/merged", nil
}

// Close is a no-op.
func (f *Fake) Close() error { return nil }

// Steps reports how many train steps the fake has applied.
func (f *Fake) Steps() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.steps
}

func (f *Fake) forward(pairs []data.Pair, progress float64) StepResult {
	n := len(pairs)
	res := StepResult{
		PolicyChosen:   make([]float64, n),
		PolicyRejected: make([]float64, n),
		RefChosen:      make([]float64, n),
		RefRejected:    make([]float64, n),
	}
	for i := range pairs {
		res.RefChosen[i] = -10
		res.RefRejected[i] = -10
		res.PolicyChosen[i] = -10 + 0.1*progress
		res.PolicyRejected[i] = -10 - 0.1*progress
	}
	return res
}

// #endregion fake
