package session

// #region imports
import (
	"fmt"
	"strings"
)

// #endregion

// #region format-summary

const summaryRule = "======================================================================"

// FormatSummary renders a completed run as a readable report.
func FormatSummary(e Export) string {
	status := "INCOMPLETE"
	if e.Complete {
		status = "COMPLETE"
	}

	chain := "None"
	if len(e.EncodingChain) > 0 {
		chain = strings.Join(e.EncodingChain, " -> ")
	}

	scores := make([]string, len(e.ConfidenceScores))
	for i, c := range e.ConfidenceScores {
		scores[i] = fmt.Sprintf("%.2f", c)
	}

	lines := []string{
		summaryRule,
		"DECODING RESULT SUMMARY",
		summaryRule,
		fmt.Sprintf("Status: %s", status),
		fmt.Sprintf("Reason: %s", e.Reason),
		fmt.Sprintf("Iterations: %d/%d", e.Iterations, e.MaxIterations),
		"",
		fmt.Sprintf("Original Text (%d chars):", len(e.OriginalText)),
		"  " + preview(e.OriginalText, 100),
		"",
		fmt.Sprintf("Final Text (%d chars):", len(e.FinalText)),
		"  " + preview(e.FinalText, 100),
		"",
		fmt.Sprintf("Encoding Chain: %s", chain),
		fmt.Sprintf("Confidence Scores: [%s]", strings.Join(scores, ", ")),
		summaryRule,
	}

	return strings.Join(lines, "\n")
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// #endregion
