package main

// #region imports
import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"peeler/internal/replay"
)

// #endregion

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "fixture file or directory of fixtures")
	verbose := flag.Bool("v", false, "print each fixture result, not only failures")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [-v]")
		os.Exit(2)
	}

	paths, err := collectFixtures(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "no fixtures found under %s\n", *fixturePath)
		os.Exit(1)
	}

	failed := 0
	for _, path := range paths {
		if !replayOne(path, *verbose) {
			failed++
		}
	}

	fmt.Printf("\n%d/%d fixtures passed\n", len(paths)-failed, len(paths))
	if failed > 0 {
		os.Exit(1)
	}
}

// #endregion

// #region replay-one

func replayOne(path string, verbose bool) bool {
	fixture, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Printf("FAIL %s: %v\n", path, err)
		return false
	}

	result, mismatches := replay.Run(fixture)
	if len(mismatches) == 0 {
		if verbose {
			fmt.Printf("PASS %s (%s, %d iterations)\n", path, result.Status, result.Iterations)
		}
		return true
	}

	fmt.Printf("FAIL %s: %s\n", path, fixture.Description)
	for _, m := range mismatches {
		fmt.Printf("  %s\n", m)
	}
	return false
}

// #endregion

// #region collect

func collectFixtures(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(path, entry.Name()))
	}
	return paths, nil
}

// #endregion
