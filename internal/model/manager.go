package model

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/danielpatrickdp/pref-align/go-trainer/internal/runtime"
)

// #region checkpoint-state

// CheckpointState is the persisted snapshot sufficient to resume a run:
// file references to the adapter and optimizer blobs, the RNG state, and
// the hash of the config that produced it. A checkpoint is superseded,
// never rewritten; retention pruning is the only deletion.
type CheckpointState struct {
	Step         int       `json:"step"`
	ConfigHash   string    `json:"config_hash"`
	AdapterRef   string    `json:"adapter_ref"`
	OptimizerRef string    `json:"optimizer_ref"`
	RNGState     []byte    `json:"rng_state"`
	SavedAt      time.Time `json:"saved_at"`
}

// MismatchError reports a resume attempt against a checkpoint written by a
// different configuration. Both hashes are surfaced for diagnosis.
type MismatchError struct {
	CheckpointHash string
	ConfigHash     string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("checkpoint config hash %s does not match current config %s",
		e.CheckpointHash, e.ConfigHash)
}

// #endregion checkpoint-state

// #region manager

const (
	stepDirPrefix = "step-"
	metadataFile  = "metadata.json"
	adapterFile   = "adapter.bin"
	optimizerFile = "optimizer.bin"
)

// Manager owns the trainable model's lifecycle through the runtime
// contract: loading, checkpointing, resuming, and adapter export. The
// handle is exclusively the trainer's for the run's duration; no
// concurrent writer touches adapter weights.
type Manager struct {
	rt       runtime.Runtime
	dir      string // checkpoint root, one step-named subdirectory per checkpoint
	retain   int    // checkpoints to keep, 0 = all
	loadedID string
}

// NewManager creates a manager writing checkpoints under dir.
func NewManager(rt runtime.Runtime, dir string, retain int) *Manager {
	return &Manager{rt: rt, dir: dir, retain: retain}
}

// Dir returns the checkpoint root.
func (m *Manager) Dir() string { return m.dir }

// #endregion manager

// #region load

// Load loads the base model with the adapter attached. Loading is
// idempotent for the same model id.
func (m *Manager) Load(ctx context.Context, modelID string, quantBits int, adapterType string, seed int64) error {
	if m.loadedID == modelID {
		return nil
	}
	info, err := m.rt.LoadModel(ctx, modelID, quantBits, adapterType, seed)
	if err != nil {
		return fmt.Errorf("load model %s: %w", modelID, err)
	}
	m.loadedID = modelID
	log.Printf("[MODEL] loaded %s (hash=%s params=%d)", modelID, info.ModelHash, info.ParamCount)
	return nil
}

// #endregion load

// #region save-checkpoint

// SaveCheckpoint snapshots the runtime state at step into a step-named
// subdirectory. The write is atomic: blobs and metadata land in a hidden
// temp directory first, then a single rename publishes the checkpoint. A
// crash mid-write leaves only the temp directory, which resume ignores.
func (m *Manager) SaveCheckpoint(ctx context.Context, step int, configHash string) (CheckpointState, error) {
	snap, err := m.rt.ExportState(ctx)
	if err != nil {
		return CheckpointState{}, fmt.Errorf("export state at step %d: %w", step, err)
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return CheckpointState{}, fmt.Errorf("create checkpoint dir: %w", err)
	}
	tmp, err := os.MkdirTemp(m.dir, ".tmp-")
	if err != nil {
		return CheckpointState{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp) // no-op after successful rename

	state := CheckpointState{
		Step:         step,
		ConfigHash:   configHash,
		AdapterRef:   adapterFile,
		OptimizerRef: optimizerFile,
		RNGState:     snap.RNG,
		SavedAt:      time.Now().UTC(),
	}

	if err := os.WriteFile(filepath.Join(tmp, adapterFile), snap.Adapter, 0o644); err != nil {
		return CheckpointState{}, fmt.Errorf("write adapter: %w", err)
	}
	if err := os.WriteFile(filepath.Join(tmp, optimizerFile), snap.Optimizer, 0o644); err != nil {
		return CheckpointState{}, fmt.Errorf("write optimizer: %w", err)
	}
	meta, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return CheckpointState{}, fmt.Errorf("marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(tmp, metadataFile), append(meta, '\n'), 0o644); err != nil {
		return CheckpointState{}, fmt.Errorf("write metadata: %w", err)
	}

	final := filepath.Join(m.dir, stepDirName(step))
	// A rerun over the same output dir may hit an old checkpoint at the
	// same step; rename onto a populated directory would fail.
	if err := os.RemoveAll(final); err != nil {
		return CheckpointState{}, fmt.Errorf("clear stale checkpoint %d: %w", step, err)
	}
	if err := os.Rename(tmp, final); err != nil {
		return CheckpointState{}, fmt.Errorf("publish checkpoint %d: %w", step, err)
	}
	log.Printf("[MODEL] checkpoint saved: %s", final)

	if err := m.prune(); err != nil {
		log.Printf("[MODEL] prune failed: %v", err)
	}
	return state, nil
}

// #endregion save-checkpoint

// #region resume

// ReadCheckpoint loads the metadata of a checkpoint directory.
func ReadCheckpoint(ref string) (CheckpointState, error) {
	raw, err := os.ReadFile(filepath.Join(ref, metadataFile))
	if err != nil {
		return CheckpointState{}, fmt.Errorf("read checkpoint metadata: %w", err)
	}
	var state CheckpointState
	if err := json.Unmarshal(raw, &state); err != nil {
		return CheckpointState{}, fmt.Errorf("parse checkpoint metadata: %w", err)
	}
	return state, nil
}

// Resume restores runtime state from the checkpoint directory ref after
// verifying its config hash matches the resuming run's.
func (m *Manager) Resume(ctx context.Context, ref, configHash string) (CheckpointState, error) {
	state, err := ReadCheckpoint(ref)
	if err != nil {
		return CheckpointState{}, err
	}
	if state.ConfigHash != configHash {
		return CheckpointState{}, &MismatchError{
			CheckpointHash: state.ConfigHash,
			ConfigHash:     configHash,
		}
	}

	adapter, err := os.ReadFile(filepath.Join(ref, state.AdapterRef))
	if err != nil {
		return CheckpointState{}, fmt.Errorf("read adapter blob: %w", err)
	}
	optimizer, err := os.ReadFile(filepath.Join(ref, state.OptimizerRef))
	if err != nil {
		return CheckpointState{}, fmt.Errorf("read optimizer blob: %w", err)
	}
	err = m.rt.RestoreState(ctx, runtime.Snapshot{
		Adapter:   adapter,
		Optimizer: optimizer,
		RNG:       state.RNGState,
	})
	if err != nil {
		return CheckpointState{}, fmt.Errorf("restore state: %w", err)
	}
	log.Printf("[MODEL] resumed from %s (step=%d)", ref, state.Step)
	return state, nil
}

// Latest returns the newest checkpoint directory under the manager's root,
// discovered by numeric ordering of step-named subdirectories.
func (m *Manager) Latest() (string, bool, error) {
	steps, err := listSteps(m.dir)
	if err != nil || len(steps) == 0 {
		return "", false, err
	}
	return filepath.Join(m.dir, stepDirName(steps[len(steps)-1])), true, nil
}

// #endregion resume

// #region export

// ExportAdapter writes the current adapter weights as a standalone
// artifact under dir, loadable independently by an evaluation collaborator.
func (m *Manager) ExportAdapter(ctx context.Context, dir string) (string, error) {
	snap, err := m.rt.ExportState(ctx)
	if err != nil {
		return "", fmt.Errorf("export adapter: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create adapter dir: %w", err)
	}
	path := filepath.Join(dir, adapterFile)
	if err := os.WriteFile(path, snap.Adapter, 0o644); err != nil {
		return "", fmt.Errorf("write adapter artifact: %w", err)
	}
	log.Printf("[MODEL] adapter exported: %s", path)
	return path, nil
}

// Merge folds the adapter into the base weights runtime-side, producing a
// fully materialized model for evaluation.
func (m *Manager) Merge(ctx context.Context, dir string) (string, error) {
	path, err := m.rt.MergeAdapter(ctx, dir)
	if err != nil {
		return "", fmt.Errorf("merge adapter: %w", err)
	}
	return path, nil
}

// #endregion export

// #region helpers

func stepDirName(step int) string {
	return fmt.Sprintf("%s%08d", stepDirPrefix, step)
}

// listSteps returns checkpointed step numbers in ascending order. Temp
// directories and stray files are ignored.
func listSteps(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read checkpoint dir %s: %w", dir, err)
	}
	var steps []int
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), stepDirPrefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(e.Name(), stepDirPrefix))
		if err != nil {
			continue
		}
		steps = append(steps, n)
	}
	sort.Ints(steps)
	return steps, nil
}

// prune removes superseded checkpoints beyond the retention count.
func (m *Manager) prune() error {
	if m.retain <= 0 {
		return nil
	}
	steps, err := listSteps(m.dir)
	if err != nil {
		return err
	}
	for len(steps) > m.retain {
		victim := filepath.Join(m.dir, stepDirName(steps[0]))
		if err := os.RemoveAll(victim); err != nil {
			return fmt.Errorf("prune %s: %w", victim, err)
		}
		log.Printf("[MODEL] pruned checkpoint %s", victim)
		steps = steps[1:]
	}
	return nil
}

// #endregion helpers
