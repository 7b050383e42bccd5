package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"peeler/internal/archive"
	"peeler/internal/session"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the decode-run archive")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of a table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/peeler_runs.db [--last N] [--run id] [--json]")
		os.Exit(2)
	}

	store, err := archive.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *runID != "" {
		err = runDetailMode(store, *runID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion

// #region detail-mode

func runDetailMode(store *archive.Store, runID string, jsonOut bool) error {
	export, err := store.GetRun(runID)
	if err != nil {
		return err
	}

	if jsonOut {
		out, err := export.JSON()
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Println(session.FormatSummary(export))
	fmt.Println("History:")
	for i, text := range export.History {
		fmt.Printf("  %2d: %s\n", i, preview(text, 80))
	}
	return nil
}

// #endregion

// #region list-mode

type listRow struct {
	RunID      string `json:"run_id"`
	Status     string `json:"status"`
	Iterations int    `json:"iterations"`
	Chain      string `json:"chain"`
	Reason     string `json:"reason,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func runListMode(store *archive.Store, last int, jsonOut bool) error {
	runs, err := store.ListRuns(last)
	if err != nil {
		return err
	}

	rows := make([]listRow, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, listRow{
			RunID:      r.RunID,
			Status:     string(r.Status),
			Iterations: r.Iterations,
			Chain:      strings.Join(r.EncodingChain, " -> "),
			Reason:     r.Reason,
			CreatedAt:  r.StartedAt.Format("2006-01-02 15:04:05"),
		})
	}

	if jsonOut {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%-36s  %-18s  %4s  %-24s  %s\n", "RUN", "STATUS", "ITER", "CHAIN", "CREATED")
	for _, row := range rows {
		fmt.Printf("%-36s  %-18s  %4d  %-24s  %s\n",
			row.RunID, row.Status, row.Iterations, preview(row.Chain, 24), row.CreatedAt)
	}
	return nil
}

// #endregion

// #region helpers

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-3]) + "..."
}

// #endregion
