package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielpatrickdp/pref-align/go-trainer/internal/events"
)

// #region main

func main() {
	logDir := flag.String("logs", "", "event log directory")
	runID := flag.String("run", "", "run id to read (default: list runs)")
	last := flag.Int("last", 10, "show N most recent events")
	follow := flag.Bool("follow", false, "keep streaming events as they are appended")
	jsonOut := flag.Bool("json", false, "output raw JSON lines instead of a summary")
	flag.Parse()

	if *logDir == "" {
		fmt.Fprintln(os.Stderr, "usage: tail --logs dir [--run id] [--last N] [--follow] [--json]")
		os.Exit(2)
	}

	if *runID == "" {
		if err := listRuns(*logDir); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	path := events.LogPath(*logDir, *runID)
	var err error
	if *follow {
		err = followRun(path, *jsonOut)
	} else {
		err = tailRun(path, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func listRuns(logDir string) error {
	runs, err := events.ListRuns(logDir)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}
	for _, id := range runs {
		n, err := events.Count(events.LogPath(logDir, id))
		if err != nil {
			return err
		}
		fmt.Printf("%s  %d events\n", id, n)
	}
	return nil
}

// #endregion list-mode

// #region tail-mode

func tailRun(path string, last int, jsonOut bool) error {
	evs, err := events.Tail(path, last)
	if err != nil {
		return err
	}
	for _, ev := range evs {
		printEvent(ev, jsonOut)
	}
	return nil
}

func followRun(path string, jsonOut bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	evCh, errCh := events.Follow(ctx, path, 250*time.Millisecond)
	for {
		select {
		case ev, ok := <-evCh:
			if !ok {
				return nil
			}
			printEvent(ev, jsonOut)
		case err := <-errCh:
			return err
		case <-ctx.Done():
			return nil
		}
	}
}

// #endregion tail-mode

// #region format

func printEvent(ev events.Event, jsonOut bool) {
	if jsonOut {
		raw, err := json.Marshal(ev)
		if err != nil {
			return
		}
		fmt.Println(string(raw))
		return
	}
	line := fmt.Sprintf("%s  step=%-6d %-10s", ev.Timestamp.Format(time.RFC3339), ev.Step, ev.Type)
	switch ev.Type {
	case events.TypeStep:
		line += fmt.Sprintf(" loss=%v margin=%v", ev.Payload["loss"], ev.Payload["reward_margin"])
	case events.TypeEval:
		line += fmt.Sprintf(" eval_loss=%v accuracy=%v", ev.Payload["eval_loss"], ev.Payload["eval_accuracy"])
	case events.TypeCheckpoint:
		line += fmt.Sprintf(" path=%v", ev.Payload["path"])
	case events.TypeError:
		line += fmt.Sprintf(" kind=%v message=%v", ev.Payload["error_kind"], ev.Payload["message"])
	case events.TypeRunEnd:
		line += fmt.Sprintf(" reason=%v", ev.Payload["reason"])
	}
	fmt.Println(line)
}

// #endregion format
