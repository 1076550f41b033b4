package trainer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/pref-align/go-trainer/internal/algorithm"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/config"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/data"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/events"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/model"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/runindex"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/runtime"
)

// #region trainer

// Trainer orchestrates one training run: it resolves the algorithm,
// drives the data pipeline, owns the model manager, persists checkpoints,
// and emits the run's event stream. The loop is single-threaded and
// cooperative; cancellation is honored between steps, never mid-step.
type Trainer struct {
	cfg     config.Train
	cfgHash string
	runID   string

	plugin algorithm.Plugin
	rt     runtime.Runtime
	bus    *events.Bus
	mgr    *model.Manager
	index  *runindex.Store
}

// New builds a trainer from a validated config. The algorithm name is
// resolved against the registry here, before any I/O, so an unregistered
// name fails with a configuration error immediately.
func New(cfg config.Train, reg *algorithm.Registry, rt runtime.Runtime) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	plugin, err := reg.Resolve(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	runID := cfg.RunID
	if runID == "" {
		runID = uuid.New().String()
	}

	bus, err := events.NewBus(cfg.LogDir, runID)
	if err != nil {
		return nil, err
	}

	indexPath := cfg.IndexPath
	if indexPath == "" {
		indexPath = filepath.Join(cfg.OutputDir, "runs.db")
	}
	index, err := runindex.NewStore(indexPath)
	if err != nil {
		bus.Close()
		return nil, err
	}

	return &Trainer{
		cfg:     cfg,
		cfgHash: cfg.Hash(),
		runID:   runID,
		plugin:  plugin,
		rt:      rt,
		bus:     bus,
		mgr:     model.NewManager(rt, filepath.Join(cfg.OutputDir, "checkpoints"), cfg.KeepCheckpoints),
		index:   index,
	}, nil
}

// RunID returns the run identifier events are stamped with.
func (t *Trainer) RunID() string { return t.runID }

// EventLogPath returns the run's append-only event log location.
func (t *Trainer) EventLogPath() string { return t.bus.Path() }

// Manager exposes the model manager, e.g. for latest-checkpoint discovery.
func (t *Trainer) Manager() *model.Manager { return t.mgr }

// Close releases the event bus and run index. Call after Run or Resume
// returns.
func (t *Trainer) Close() error {
	err := t.bus.Close()
	if ierr := t.index.Close(); err == nil {
		err = ierr
	}
	return err
}

// #endregion trainer

// #region run

// Run drives the full training loop from step zero. It blocks until the
// run completes, is cancelled via ctx, or fails. Fatal failures are
// emitted as an error event before they propagate; cancellation is not an
// error and returns nil after a final checkpoint.
func (t *Trainer) Run(ctx context.Context) error {
	return t.run(ctx, "")
}

// Resume continues a run from the checkpoint directory ref. The
// checkpoint's config hash must match the current config or the resume
// fails before touching any training state.
func (t *Trainer) Resume(ctx context.Context, ref string) error {
	if ref == "" {
		return fmt.Errorf("resume: empty checkpoint ref")
	}
	return t.run(ctx, ref)
}

func (t *Trainer) run(ctx context.Context, resumeRef string) error {
	log.Printf("[TRAIN] run %s: algorithm=%s model=%s", t.runID, t.cfg.Algorithm, t.cfg.ModelID)

	trainSeq, evalSeq, manifest, err := t.prepareData(ctx)
	if err != nil {
		return t.fail(0, "data", err)
	}

	if err := t.mgr.Load(ctx, t.cfg.ModelID, t.cfg.QuantizationBits, t.cfg.AdapterType, t.cfg.Seed); err != nil {
		return t.fail(0, "model", err)
	}

	startStep := 0
	if resumeRef != "" {
		ck, err := t.mgr.Resume(ctx, resumeRef, t.cfgHash)
		if err != nil {
			return t.fail(0, "resume", err)
		}
		startStep = ck.Step
		// The batch sequence is restartable, not seekable: replay up to
		// the checkpointed position.
		trainSeq.Skip(startStep)
	}

	st, err := t.plugin.Prepare(ctx, t.cfg, t.rt)
	if err != nil {
		return t.fail(startStep, "prepare", err)
	}

	if err := t.index.CreateRun(runindex.RunRecord{
		RunID:      t.runID,
		ConfigHash: t.cfgHash,
		Algorithm:  t.cfg.Algorithm,
		ModelID:    t.cfg.ModelID,
		LastStep:   startStep,
		EventLog:   t.bus.Path(),
	}); err != nil {
		return t.fail(startStep, "index", err)
	}

	startPayload := map[string]any{
		"algorithm":   t.cfg.Algorithm,
		"model_id":    t.cfg.ModelID,
		"config_hash": t.cfgHash,
		"max_steps":   t.cfg.MaxSteps,
		"num_records": manifest.NumRecords,
	}
	if resumeRef != "" {
		startPayload["resumed_from"] = resumeRef
	}
	if err := t.emit(startStep, events.TypeRunStart, startPayload); err != nil {
		return err
	}

	lastStep := startStep
	for step := startStep + 1; step <= t.cfg.MaxSteps; step++ {
		// Cooperative cancellation: checked between steps only, so the
		// worst-case latency is one step's compute time.
		select {
		case <-ctx.Done():
			return t.cancel(ctx, lastStep)
		default:
		}

		batch, ok := trainSeq.Next()
		if !ok {
			return t.finish(ctx, st, lastStep, "data_exhausted")
		}

		out, err := t.plugin.Step(ctx, st, step, batch)
		if err != nil {
			return t.fail(lastStep, "step", err)
		}
		lastStep = step

		payload := map[string]any{"loss": out.Loss}
		for k, v := range out.Metrics {
			payload[k] = v
		}
		if err := t.emit(step, events.TypeStep, payload); err != nil {
			return err
		}

		if step%t.cfg.CheckpointInterval == 0 {
			if err := t.checkpoint(ctx, step); err != nil {
				return t.fail(step, "checkpoint", err)
			}
		}

		if t.cfg.EvalInterval > 0 && step%t.cfg.EvalInterval == 0 {
			if err := t.evaluate(ctx, st, step, evalSeq); err != nil {
				return t.fail(step, "eval", err)
			}
		}
	}

	return t.finish(ctx, st, lastStep, "completed")
}

// #endregion run

// #region boundaries

// checkpoint persists the runtime state and emits the checkpoint event.
// The event always references a step already covered by a step event.
func (t *Trainer) checkpoint(ctx context.Context, step int) error {
	state, err := t.mgr.SaveCheckpoint(ctx, step, t.cfgHash)
	if err != nil {
		return err
	}
	if err := t.index.UpdateProgress(t.runID, step); err != nil {
		return err
	}
	return t.emit(step, events.TypeCheckpoint, map[string]any{
		"path":        filepath.Join(t.mgr.Dir(), fmt.Sprintf("step-%08d", step)),
		"config_hash": state.ConfigHash,
	})
}

// evaluate runs the held-out comparison and emits the eval event.
func (t *Trainer) evaluate(ctx context.Context, st algorithm.State, step int, evalSeq *data.BatchSeq) error {
	if evalSeq == nil {
		return fmt.Errorf("eval enabled but no held-out data available")
	}
	out, err := t.plugin.Eval(ctx, st, evalSeq)
	if err != nil {
		return err
	}
	return t.emit(step, events.TypeEval, map[string]any{
		"eval_loss":          out.Loss,
		"eval_reward_margin": out.Margin,
		"eval_accuracy":      out.Accuracy,
		"num_samples":        out.NumSamples,
	})
}

// finish finalizes the plugin, exports the adapter artifact, and emits
// run_end. reason is "completed" or "data_exhausted".
func (t *Trainer) finish(ctx context.Context, st algorithm.State, lastStep int, reason string) error {
	if err := t.plugin.Finalize(ctx, st); err != nil {
		return t.fail(lastStep, "finalize", err)
	}
	adapterPath, err := t.mgr.ExportAdapter(ctx, filepath.Join(t.cfg.OutputDir, "adapter"))
	if err != nil {
		return t.fail(lastStep, "export", err)
	}
	if err := t.index.SetStatus(t.runID, runindex.StatusCompleted, lastStep); err != nil {
		return t.fail(lastStep, "index", err)
	}
	if err := t.emit(lastStep, events.TypeRunEnd, map[string]any{
		"reason":  reason,
		"step":    lastStep,
		"adapter": adapterPath,
	}); err != nil {
		return err
	}
	log.Printf("[TRAIN] run %s %s at step %d", t.runID, reason, lastStep)
	return nil
}

// cancel persists a final checkpoint and ends the run without error.
// No step event beyond lastStep is ever emitted after cancellation.
func (t *Trainer) cancel(ctx context.Context, lastStep int) error {
	// ctx is already done; checkpointing must still succeed, so detach.
	saveCtx := context.WithoutCancel(ctx)
	if lastStep > 0 {
		if err := t.checkpointForCancel(saveCtx, lastStep); err != nil {
			return t.fail(lastStep, "cancel", err)
		}
	}
	if err := t.index.SetStatus(t.runID, runindex.StatusCancelled, lastStep); err != nil {
		return t.fail(lastStep, "index", err)
	}
	if err := t.emit(lastStep, events.TypeRunEnd, map[string]any{
		"reason":    "cancelled",
		"cancelled": true,
		"step":      lastStep,
	}); err != nil {
		return err
	}
	log.Printf("[TRAIN] run %s cancelled at step %d", t.runID, lastStep)
	return nil
}

func (t *Trainer) checkpointForCancel(ctx context.Context, step int) error {
	state, err := t.mgr.SaveCheckpoint(ctx, step, t.cfgHash)
	if err != nil {
		return err
	}
	return t.emit(step, events.TypeCheckpoint, map[string]any{
		"path":        filepath.Join(t.mgr.Dir(), fmt.Sprintf("step-%08d", step)),
		"config_hash": state.ConfigHash,
		"cancelled":   true,
	})
}

// #endregion boundaries

// #region data-prep

// prepareData ingests and validates the training data, writes the dataset
// manifest, and builds the train and held-out batch sequences in the
// algorithm's declared format.
func (t *Trainer) prepareData(ctx context.Context) (trainSeq, evalSeq *data.BatchSeq, manifest data.Manifest, err error) {
	pipeline := data.Pipeline{MaxInvalidRate: t.cfg.MaxInvalidRate}
	prepared, err := pipeline.Prepare(ctx, data.FileSource{Path: t.cfg.DataSource, MaxSamples: t.cfg.MaxSamples})
	if err != nil {
		return nil, nil, data.Manifest{}, err
	}

	manifest = prepared.Manifest(datasetName(t.cfg.DataSource))
	if _, err := data.SaveManifest(manifest, t.cfg.OutputDir); err != nil {
		return nil, nil, data.Manifest{}, err
	}

	trainRecords := prepared.Records
	var evalRecords []data.Record
	if t.cfg.EvalInterval > 0 {
		if t.cfg.EvalSource == "holdout" {
			trainRecords, evalRecords = prepared.Split(t.cfg.HoldoutFraction)
		} else {
			evalPrepared, err := pipeline.Prepare(ctx, data.FileSource{Path: t.cfg.EvalSource})
			if err != nil {
				return nil, nil, data.Manifest{}, fmt.Errorf("eval source: %w", err)
			}
			evalRecords = evalPrepared.Records
		}
	}

	format := t.plugin.RequiredFormat()
	trainSeq, err = data.NewBatches(trainRecords, format, t.cfg.BatchSize)
	if err != nil {
		return nil, nil, data.Manifest{}, err
	}
	if len(evalRecords) > 0 {
		evalSeq, err = data.NewBatches(evalRecords, format, t.cfg.BatchSize)
		if err != nil {
			return nil, nil, data.Manifest{}, err
		}
	}
	return trainSeq, evalSeq, manifest, nil
}

func datasetName(source string) string {
	base := filepath.Base(source)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	return base
}

// #endregion data-prep

// #region failure

// emit stamps and publishes one event; a bus failure here is itself fatal.
func (t *Trainer) emit(step int, typ events.Type, payload map[string]any) error {
	if err := t.bus.Emit(events.New(t.runID, step, typ, payload)); err != nil {
		return fmt.Errorf("emit %s: %w", typ, err)
	}
	return nil
}

// fail guarantees a fatal failure is observable before it propagates: the
// error event is emitted (best effort) and the run marked failed, then the
// original error is returned unchanged.
func (t *Trainer) fail(lastStep int, stage string, err error) error {
	payload := map[string]any{
		"error_kind": classify(err),
		"stage":      stage,
		"message":    err.Error(),
	}
	if emitErr := t.emit(lastStep, events.TypeError, payload); emitErr != nil {
		log.Printf("[TRAIN] could not emit error event: %v", emitErr)
	}
	if idxErr := t.index.SetStatus(t.runID, runindex.StatusFailed, lastStep); idxErr != nil {
		log.Printf("[TRAIN] could not mark run failed: %v", idxErr)
	}
	return err
}

// classify maps an error to the taxonomy kind carried in error events.
func classify(err error) string {
	var (
		notImpl  *algorithm.NotImplementedError
		numeric  *algorithm.NumericError
		cfgErr   *config.Error
		mismatch *model.MismatchError
		valErr   *data.ValidationError
	)
	switch {
	case errors.As(err, &notImpl):
		return "not_implemented"
	case errors.As(err, &numeric):
		return "numeric_instability"
	case errors.As(err, &mismatch):
		return "checkpoint_mismatch"
	case errors.As(err, &cfgErr):
		return "configuration"
	case errors.As(err, &valErr):
		return "validation"
	default:
		return "internal"
	}
}

// #endregion failure
