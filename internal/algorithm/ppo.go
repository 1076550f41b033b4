package algorithm

import (
	"context"
	"fmt"

	"github.com/danielpatrickdp/pref-align/go-trainer/internal/config"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/data"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/runtime"
)

// #region ppo

// PPO is a placeholder registration proving the plugin contract is
// satisfiable without committing to an implementation. It needs a separate
// reward model for scoring responses; its step fails fast rather than
// pretending to train.
type PPO struct{}

// NewPPO returns the proximal policy optimization placeholder.
func NewPPO() *PPO {
	return &PPO{}
}

var _ Plugin = (*PPO)(nil)

func (p *PPO) Name() string { return "ppo" }

func (p *PPO) RequiredFormat() data.Format { return data.FormatPromptCompletion }

// Prepare validates the config reaches a coherent state but builds nothing:
// the step contract below is deliberately unimplemented.
func (p *PPO) Prepare(ctx context.Context, cfg config.Train, rt runtime.Runtime) (State, error) {
	if rt == nil {
		return nil, fmt.Errorf("ppo: nil runtime")
	}
	return struct{}{}, nil
}

// Step always fails with a *NotImplementedError identifying the placeholder.
func (p *PPO) Step(ctx context.Context, st State, step int, batch data.Batch) (StepOutput, error) {
	return StepOutput{}, &NotImplementedError{Plugin: "ppo"}
}

// Eval always fails with a *NotImplementedError identifying the placeholder.
func (p *PPO) Eval(ctx context.Context, st State, batches *data.BatchSeq) (EvalOutput, error) {
	return EvalOutput{}, &NotImplementedError{Plugin: "ppo"}
}

// Finalize is a no-op.
func (p *PPO) Finalize(ctx context.Context, st State) error { return nil }

// #endregion ppo
