package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/danielpatrickdp/pref-align/go-trainer/internal/events"
	"github.com/danielpatrickdp/pref-align/go-trainer/internal/runindex"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to runs.db")
	last := flag.Int("last", 20, "show N most recent runs")
	run := flag.String("run", "", "show single run detail")
	resumable := flag.Bool("resumable", false, "show only interrupted runs")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/runs.db [--last N] [--run id] [--resumable] [--json]")
		os.Exit(2)
	}

	store, err := runindex.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *run != "" {
		err = runDetailMode(store, *run, *jsonOut)
	} else {
		err = runListMode(store, *last, *resumable, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(store *runindex.Store, last int, resumable, jsonOut bool) error {
	var records []runindex.RunRecord
	var err error
	if resumable {
		records, err = store.Resumable()
	} else {
		records, err = store.ListRuns(last)
	}
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("no runs")
		return nil
	}
	fmt.Printf("%-36s  %-9s  %-5s  %-10s  %s\n", "RUN", "STATUS", "STEP", "ALGORITHM", "UPDATED")
	for _, rec := range records {
		fmt.Printf("%-36s  %-9s  %-5d  %-10s  %s\n",
			rec.RunID, rec.Status, rec.LastStep, rec.Algorithm,
			rec.UpdatedAt.Format(time.RFC3339))
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type runDetail struct {
	runindex.RunRecord
	EventCount int            `json:"event_count"`
	ByType     map[string]int `json:"events_by_type,omitempty"`
	LastEvents []events.Event `json:"last_events,omitempty"`
}

func runDetailMode(store *runindex.Store, runID string, jsonOut bool) error {
	rec, err := store.GetRun(runID)
	if err != nil {
		return err
	}
	detail := runDetail{RunRecord: rec}

	if rec.EventLog != "" {
		all, err := events.ReadAll(rec.EventLog)
		if err != nil {
			return fmt.Errorf("read event log: %w", err)
		}
		detail.EventCount = len(all)
		detail.ByType = make(map[string]int)
		for _, ev := range all {
			detail.ByType[string(ev.Type)]++
		}
		tail, err := events.Tail(rec.EventLog, 5)
		if err != nil {
			return fmt.Errorf("tail event log: %w", err)
		}
		detail.LastEvents = tail
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(detail)
	}

	fmt.Printf("run:         %s\n", rec.RunID)
	fmt.Printf("status:      %s\n", rec.Status)
	fmt.Printf("algorithm:   %s\n", rec.Algorithm)
	fmt.Printf("model:       %s\n", rec.ModelID)
	fmt.Printf("config hash: %s\n", rec.ConfigHash)
	fmt.Printf("last step:   %d\n", rec.LastStep)
	fmt.Printf("started:     %s\n", rec.StartedAt.Format(time.RFC3339))
	fmt.Printf("updated:     %s\n", rec.UpdatedAt.Format(time.RFC3339))
	if rec.EventLog == "" {
		return nil
	}
	fmt.Printf("event log:   %s (%d events)\n", rec.EventLog, detail.EventCount)
	for typ, n := range detail.ByType {
		fmt.Printf("  %-12s %d\n", typ, n)
	}
	if len(detail.LastEvents) > 0 {
		fmt.Println("recent:")
		for _, ev := range detail.LastEvents {
			fmt.Printf("  %s  step=%-6d %s\n", ev.Timestamp.Format(time.RFC3339), ev.Step, ev.Type)
		}
	}
	return nil
}

// #endregion detail-mode
