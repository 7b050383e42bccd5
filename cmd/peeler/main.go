package main

// #region imports
import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"peeler/internal/agent"
	"peeler/internal/analysis"
	"peeler/internal/archive"
	"peeler/internal/config"
	"peeler/internal/session"
)

// #endregion

// #region main

func main() {
	configPath := flag.String("config", envOr("PEELER_CONFIG", ""), "path to YAML config file")
	maxIter := flag.Int("max-iter", 0, "maximum decode iterations (overrides config)")
	verbose := flag.Bool("verbose", false, "log each iteration")
	jsonOut := flag.Bool("json", false, "print the full session export as JSON")
	analyzeOnly := flag.Bool("analyze", false, "print the text analysis and exit without decoding")
	archivePath := flag.String("archive", envOr("PEELER_ARCHIVE", ""), "SQLite path to archive the run (empty = no archive)")
	flag.Parse()

	input, err := readInput(flag.Args())
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "usage: peeler [flags] <encoded-text>  (or pipe text on stdin)")
		os.Exit(2)
	}

	if *analyzeOnly {
		printAnalysis(input)
		return
	}

	cfg := loadConfig(*configPath)
	if *maxIter > 0 {
		cfg.MaxIterations = *maxIter
	}
	if *verbose {
		cfg.Verbose = true
	}
	if *archivePath != "" {
		cfg.Archive.Enabled = true
		cfg.Archive.Path = *archivePath
	}

	ag := agent.New(agent.Config{MaxIterations: cfg.MaxIterations, Verbose: cfg.Verbose})
	export := ag.DecodeSession(input)

	if *jsonOut {
		out, err := export.JSON()
		if err != nil {
			log.Fatalf("marshal export: %v", err)
		}
		fmt.Println(out)
	} else {
		fmt.Println(session.FormatSummary(export))
	}

	if cfg.Archive.Enabled {
		archiveRun(cfg.Archive.Path, export)
	}

	if !export.Complete {
		os.Exit(1)
	}
}

// #endregion

// #region input

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(strings.Join(args, " ")), nil
	}

	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", err
	}
	if stat.Mode()&os.ModeCharDevice != 0 {
		return "", nil // interactive terminal with no args
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// #endregion

// #region config

func loadConfig(path string) config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("load config %s: %v", path, err)
	}
	return cfg
}

// #endregion

// #region analysis-report

func printAnalysis(text string) {
	a := analysis.Analyze(text)

	rule := strings.Repeat("=", 70)
	fmt.Println(rule)
	fmt.Println("TEXT ANALYSIS")
	fmt.Println(rule)
	fmt.Printf("Text: %s\n", previewText(text, 60))
	fmt.Printf("Length: %d characters\n", a.Length)
	fmt.Printf("Character Set: %s\n", a.Charset)
	fmt.Printf("Printable Ratio: %.2f%%\n", a.PrintableRatio*100)
	fmt.Printf("Entropy: %.2f bits/char\n", a.Entropy)
	fmt.Printf("Has Padding (=): %v\n", a.Padding)
	fmt.Printf("Contains URL: %v\n", a.ContainsURL)
	fmt.Printf("Contains Flag: %v\n", a.ContainsFlag)
	fmt.Printf("Hash Type: %s\n", a.HashType)
	fmt.Println(rule)
}

func previewText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// #endregion

// #region archive

func archiveRun(path string, export session.Export) {
	store, err := archive.NewStore(path)
	if err != nil {
		log.Printf("[PEELER] open archive %s: %v", path, err)
		return
	}
	defer store.Close()

	if err := store.SaveRun(export); err != nil {
		log.Printf("[PEELER] archive run %s: %v", export.RunID, err)
		return
	}
	log.Printf("[PEELER] archived run %s to %s", export.RunID, path)
}

// #endregion

// #region env

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion
