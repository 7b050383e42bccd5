package agent

// #region imports
import (
	"peeler/internal/analysis"
	"peeler/internal/session"
)

// #endregion

// #region validation-status

// ValidationStatus classifies one decode attempt's outcome.
type ValidationStatus string

const (
	ValidationComplete ValidationStatus = "COMPLETE"
	ValidationPartial  ValidationStatus = "PARTIAL"
	ValidationFailed   ValidationStatus = "FAILED"
)

// #endregion

// #region validation-result

// ValidationResult is the transient verdict for one iteration.
type ValidationResult struct {
	Status     ValidationStatus
	Reason     string
	Confidence float64
}

// #endregion

// #region validator

// Validator is one pure predicate in the ordered chain. Check returns nil
// when the rule does not apply; the first non-nil result wins.
type Validator struct {
	Name  string
	Check func(original string, a analysis.TextAnalysis) *ValidationResult
}

// #endregion

// #region config

// Config tunes one agent instance.
type Config struct {
	MaxIterations int
	Verbose       bool
}

// DefaultConfig returns the standard iteration cap with quiet logging.
func DefaultConfig() Config {
	return Config{MaxIterations: 10}
}

// #endregion

// #region result

// Result is the structured outcome of a decode run. Decode always returns
// one, however the run concluded.
type Result struct {
	RunID            string         `json:"run_id"`
	Success          bool           `json:"success"`
	OriginalText     string         `json:"original_text"`
	FinalText        string         `json:"final_text"`
	EncodingChain    []string       `json:"encoding_chain"`
	Iterations       int            `json:"iterations"`
	Status           session.Status `json:"status"`
	Reason           string         `json:"reason"`
	ConfidenceScores []float64      `json:"confidence_scores"`
	History          []string       `json:"history"`
}

func resultFromExport(e session.Export) Result {
	return Result{
		RunID:            e.RunID,
		Success:          e.Complete,
		OriginalText:     e.OriginalText,
		FinalText:        e.FinalText,
		EncodingChain:    e.EncodingChain,
		Iterations:       e.Iterations,
		Status:           e.Status,
		Reason:           e.Reason,
		ConfidenceScores: e.ConfidenceScores,
		History:          e.History,
	}
}

// #endregion
