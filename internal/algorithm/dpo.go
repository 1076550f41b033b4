package algorithm

import (
	"context"
	"fmt"
	"math"

	"github.com/danielpatrickdp/pref-align/go-trainer/internal/config"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/data"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/runtime"
)

// #region dpo

// DPO optimizes directly on preference pairs without a separate reward
// model. The runtime applies the gradient update; this side derives the
// sigmoid preference loss and reward metrics from the returned
// log-probabilities and polices them for numeric instability.
type DPO struct{}

// NewDPO returns the direct preference optimization plugin.
func NewDPO() *DPO {
	return &DPO{}
}

var _ Plugin = (*DPO)(nil)

func (d *DPO) Name() string { return "dpo" }

func (d *DPO) RequiredFormat() data.Format { return data.FormatPreferencePairs }

// #endregion dpo

// #region dpo-state

// dpoState is the immutable per-run state: the runtime handle and the
// hyperparameters the step contract needs.
type dpoState struct {
	rt           runtime.Runtime
	beta         float64
	learningRate float64
}

// Prepare captures the runtime handle and hyperparameters for the run.
func (d *DPO) Prepare(ctx context.Context, cfg config.Train, rt runtime.Runtime) (State, error) {
	if rt == nil {
		return nil, fmt.Errorf("dpo: nil runtime")
	}
	return &dpoState{rt: rt, beta: cfg.Beta, learningRate: cfg.LearningRate}, nil
}

// #endregion dpo-state

// #region step

// Step runs one DPO update over the batch and derives loss and metrics
// from the runtime's log-probabilities.
func (d *DPO) Step(ctx context.Context, st State, step int, batch data.Batch) (StepOutput, error) {
	s, ok := st.(*dpoState)
	if !ok {
		return StepOutput{}, fmt.Errorf("dpo: unexpected state type %T", st)
	}
	if batch.Format != data.FormatPreferencePairs {
		return StepOutput{}, fmt.Errorf("dpo: batch format %q, want %q", batch.Format, data.FormatPreferencePairs)
	}

	res, err := s.rt.TrainStep(ctx, step, batch.Pairs, s.beta, s.learningRate)
	if err != nil {
		return StepOutput{}, fmt.Errorf("dpo step %d: %w", step, err)
	}

	loss, margin, accuracy, err := preferenceLoss(res, s.beta, step)
	if err != nil {
		return StepOutput{}, err
	}

	return StepOutput{
		Loss: loss,
		Metrics: map[string]float64{
			"reward_margin": margin,
			"learning_rate": s.learningRate,
			"accuracy":      accuracy,
			"grad_norm":     res.GradNorm,
		},
	}, nil
}

// #endregion step

// #region eval

// Eval runs forward-only passes over the held-out sequence and aggregates
// loss, margin, and accuracy across all batches.
func (d *DPO) Eval(ctx context.Context, st State, batches *data.BatchSeq) (EvalOutput, error) {
	s, ok := st.(*dpoState)
	if !ok {
		return EvalOutput{}, fmt.Errorf("dpo: unexpected state type %T", st)
	}

	batches.Reset()
	var out EvalOutput
	var lossSum, marginSum, accSum float64
	for {
		batch, ok := batches.Next()
		if !ok {
			break
		}
		res, err := s.rt.EvalBatch(ctx, batch.Pairs, s.beta)
		if err != nil {
			return EvalOutput{}, fmt.Errorf("dpo eval: %w", err)
		}
		loss, margin, accuracy, err := preferenceLoss(res, s.beta, 0)
		if err != nil {
			return EvalOutput{}, err
		}
		n := float64(len(batch.Pairs))
		lossSum += loss * n
		marginSum += margin * n
		accSum += accuracy * n
		out.NumSamples += len(batch.Pairs)
	}
	if out.NumSamples == 0 {
		return EvalOutput{}, fmt.Errorf("dpo eval: empty held-out sequence")
	}
	n := float64(out.NumSamples)
	out.Loss = lossSum / n
	out.Margin = marginSum / n
	out.Accuracy = accSum / n
	return out, nil
}

// Finalize has nothing to release; the runtime outlives the plugin.
func (d *DPO) Finalize(ctx context.Context, st State) error { return nil }

// #endregion eval

// #region loss

// preferenceLoss derives the batch-mean sigmoid preference loss, reward
// margin, and preference accuracy from policy/reference log-probabilities.
// Any non-finite intermediate is a *NumericError.
func preferenceLoss(res runtime.StepResult, beta float64, step int) (loss, margin, accuracy float64, err error) {
	n := len(res.PolicyChosen)
	if n == 0 || len(res.PolicyRejected) != n || len(res.RefChosen) != n || len(res.RefRejected) != n {
		return 0, 0, 0, fmt.Errorf("misaligned logprob slices (%d, %d, %d, %d)",
			len(res.PolicyChosen), len(res.PolicyRejected), len(res.RefChosen), len(res.RefRejected))
	}

	var lossSum, marginSum float64
	correct := 0
	for i := 0; i < n; i++ {
		chosenReward := beta * (res.PolicyChosen[i] - res.RefChosen[i])
		rejectedReward := beta * (res.PolicyRejected[i] - res.RefRejected[i])
		diff := chosenReward - rejectedReward

		// -log sigmoid(x) = log(1 + exp(-x)), computed stably.
		l := math.Log1p(math.Exp(-math.Abs(diff)))
		if diff < 0 {
			l += -diff
		}
		if !isFinite(l) || !isFinite(diff) {
			return 0, 0, 0, &NumericError{
				Step:   step,
				Detail: fmt.Sprintf("non-finite loss for example %d (margin=%g)", i, diff),
			}
		}
		lossSum += l
		marginSum += diff
		if diff > 0 {
			correct++
		}
	}
	return lossSum / float64(n), marginSum / float64(n), float64(correct) / float64(n), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// #endregion loss
