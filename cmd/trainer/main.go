package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/danielpatrickdp/pref-align/go-trainer/internal/algorithm"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/config"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/runtime"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/trainer"
)

// #region main

func main() {
	configPath := flag.String("config", "", "path to training config YAML")
	resume := flag.String("resume", "", "checkpoint directory to resume from, or 'latest'")
	runtimeAddr := flag.String("runtime", envOr("TRAINER_RUNTIME_ADDR", "localhost:50051"), "training runtime gRPC address")
	runID := flag.String("run-id", "", "run identifier (default: new UUID; required with --resume)")
	merge := flag.Bool("merge", false, "after completion, merge the adapter into a standalone model")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "usage: trainer --config path/to/train.yaml [--resume latest|dir] [--runtime addr] [--run-id id] [--merge]")
		os.Exit(2)
	}
	if *resume != "" && *runID == "" {
		fmt.Fprintln(os.Stderr, "--resume requires --run-id so events append to the original run's log")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg.RuntimeAddr = *runtimeAddr
	cfg.RunID = *runID

	os.Exit(run(cfg, *resume, *merge))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion main

// #region run

func run(cfg config.Train, resume string, merge bool) int {
	rt, err := runtime.NewClient(cfg.RuntimeAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "runtime: %v\n", err)
		return 1
	}
	defer rt.Close()

	tr, err := trainer.New(cfg, algorithm.DefaultRegistry(), rt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trainer: %v\n", err)
		return 1
	}
	defer tr.Close()

	// SIGINT/SIGTERM cancel the run; the trainer finishes the in-flight
	// step, checkpoints, and emits a final run_end before returning.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("[TRAIN] run %s starting (log: %s)", tr.RunID(), tr.EventLogPath())

	if resume != "" {
		ref := resume
		if ref == "latest" {
			latest, ok, err := tr.Manager().Latest()
			if err != nil {
				fmt.Fprintf(os.Stderr, "find latest checkpoint: %v\n", err)
				return 1
			}
			if !ok {
				fmt.Fprintln(os.Stderr, "no checkpoint to resume from")
				return 1
			}
			ref = latest
		}
		err = tr.Resume(ctx, ref)
	} else {
		err = tr.Run(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "run %s: %v\n", tr.RunID(), err)
		return 1
	}

	if merge {
		// A cancelled run still merges what the final checkpoint holds.
		path, err := tr.Manager().Merge(context.WithoutCancel(ctx), filepath.Join(cfg.OutputDir, "merged"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "merge: %v\n", err)
			return 1
		}
		log.Printf("[TRAIN] merged model written to %s", path)
	}
	return 0
}

// #endregion run
