package config

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region error

// Error reports an invalid or missing configuration value. The run never
// starts while one of these is outstanding.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// #endregion error

// #region train-config

// Train is the full declarative configuration for one training run.
// It is resolved and validated before the trainer is constructed and is
// immutable for the run's lifetime.
type Train struct {
	Algorithm          string  `yaml:"algorithm" json:"algorithm"`
	ModelID            string  `yaml:"model_id" json:"model_id"`
	DataSource         string  `yaml:"data_source" json:"data_source"`
	LearningRate       float64 `yaml:"learning_rate" json:"learning_rate"`
	BatchSize          int     `yaml:"batch_size" json:"batch_size"`
	MaxSteps           int     `yaml:"max_steps" json:"max_steps"`
	CheckpointInterval int     `yaml:"checkpoint_interval" json:"checkpoint_interval"`
	EvalInterval       int     `yaml:"eval_interval" json:"eval_interval"` // 0 disables eval
	OutputDir          string  `yaml:"output_dir" json:"output_dir"`

	Beta             float64 `yaml:"beta" json:"beta"`
	Seed             int64   `yaml:"seed" json:"seed"`
	MaxSamples       int     `yaml:"max_samples" json:"max_samples"`
	AdapterType      string  `yaml:"adapter" json:"adapter"`
	QuantizationBits int     `yaml:"quantization_bits" json:"quantization_bits"`

	// EvalSource is "holdout" (carve HoldoutFraction off the training data)
	// or a path to a fixed NDJSON prompt set.
	EvalSource      string  `yaml:"eval_source" json:"eval_source"`
	HoldoutFraction float64 `yaml:"holdout_fraction" json:"holdout_fraction"`

	// MaxInvalidRate escalates record validation failures to fatal once the
	// dropped fraction of ingested records exceeds it.
	MaxInvalidRate  float64 `yaml:"max_invalid_rate" json:"max_invalid_rate"`
	KeepCheckpoints int     `yaml:"keep_checkpoints" json:"keep_checkpoints"` // 0 keeps all

	LogDir      string `yaml:"log_dir" json:"log_dir"`
	IndexPath   string `yaml:"index_path" json:"index_path"`
	RuntimeAddr string `yaml:"runtime_addr" json:"-"`
	RunID       string `yaml:"run_id" json:"-"`
}

// #endregion train-config

// #region defaults

// Default returns a Train with every optional field at its default.
// Required fields (model_id, data_source) are left empty.
func Default() Train {
	return Train{
		Algorithm:          "dpo",
		LearningRate:       5e-5,
		BatchSize:          4,
		MaxSteps:           1000,
		CheckpointInterval: 200,
		EvalInterval:       0,
		OutputDir:          "outputs",
		Beta:               0.1,
		Seed:               42,
		AdapterType:        "lora",
		QuantizationBits:   4,
		EvalSource:         "holdout",
		HoldoutFraction:    0.1,
		MaxInvalidRate:     0.5,
		LogDir:             "telemetry",
		RuntimeAddr:        "localhost:50051",
	}
}

// #endregion defaults

// #region load

// Load reads a YAML config file, applies defaults, and validates.
// Unknown keys are rejected so typos fail instead of silently defaulting.
func Load(path string) (Train, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Train{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes into a validated Train.
func Parse(data []byte) (Train, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Train{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Train{}, err
	}
	return cfg, nil
}

// #endregion load

// #region validate

// Validate checks every field against its allowed range. The first
// violation is returned as a *Error naming the offending field.
func (c Train) Validate() error {
	if c.Algorithm == "" {
		return &Error{Field: "algorithm", Reason: "must not be empty"}
	}
	if c.ModelID == "" {
		return &Error{Field: "model_id", Reason: "must not be empty"}
	}
	if c.DataSource == "" {
		return &Error{Field: "data_source", Reason: "must not be empty"}
	}
	if c.LearningRate <= 0 {
		return &Error{Field: "learning_rate", Reason: fmt.Sprintf("must be > 0, got %g", c.LearningRate)}
	}
	if c.BatchSize <= 0 {
		return &Error{Field: "batch_size", Reason: fmt.Sprintf("must be > 0, got %d", c.BatchSize)}
	}
	if c.MaxSteps <= 0 {
		return &Error{Field: "max_steps", Reason: fmt.Sprintf("must be > 0, got %d", c.MaxSteps)}
	}
	if c.CheckpointInterval <= 0 {
		return &Error{Field: "checkpoint_interval", Reason: fmt.Sprintf("must be > 0, got %d", c.CheckpointInterval)}
	}
	if c.EvalInterval < 0 {
		return &Error{Field: "eval_interval", Reason: fmt.Sprintf("must be >= 0, got %d", c.EvalInterval)}
	}
	if c.OutputDir == "" {
		return &Error{Field: "output_dir", Reason: "must not be empty"}
	}
	if c.Beta <= 0 {
		return &Error{Field: "beta", Reason: fmt.Sprintf("must be > 0, got %g", c.Beta)}
	}
	if c.QuantizationBits != 0 && c.QuantizationBits != 4 && c.QuantizationBits != 8 {
		return &Error{Field: "quantization_bits", Reason: fmt.Sprintf("must be 0, 4, or 8, got %d", c.QuantizationBits)}
	}
	if c.EvalInterval > 0 && c.EvalSource == "holdout" {
		if c.HoldoutFraction <= 0 || c.HoldoutFraction >= 1 {
			return &Error{Field: "holdout_fraction", Reason: fmt.Sprintf("must be in (0, 1), got %g", c.HoldoutFraction)}
		}
	}
	if c.MaxInvalidRate < 0 || c.MaxInvalidRate > 1 {
		return &Error{Field: "max_invalid_rate", Reason: fmt.Sprintf("must be in [0, 1], got %g", c.MaxInvalidRate)}
	}
	if c.KeepCheckpoints < 0 {
		return &Error{Field: "keep_checkpoints", Reason: fmt.Sprintf("must be >= 0, got %d", c.KeepCheckpoints)}
	}
	if c.MaxSamples < 0 {
		return &Error{Field: "max_samples", Reason: fmt.Sprintf("must be >= 0, got %d", c.MaxSamples)}
	}
	return nil
}

// #endregion validate

// #region hash

// Hash returns a short content hash of the run-defining fields. Fields
// tagged json:"-" (runtime address, run id) do not affect the hash, so a
// checkpoint survives a service relocation but not a hyperparameter change.
func (c Train) Hash() string {
	canonical, err := json.Marshal(c)
	if err != nil {
		// Train contains only scalar fields; Marshal cannot fail on it.
		panic(fmt.Sprintf("config: marshal for hash: %v", err))
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])[:16]
}

// #endregion hash
