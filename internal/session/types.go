package session

import "time"

// #region status

// Status is the lifecycle state of one decode run. RUNNING is the only
// non-terminal state; every other value freezes the session.
type Status string

const (
	StatusRunning       Status = "RUNNING"
	StatusComplete      Status = "COMPLETE"
	StatusFailed        Status = "FAILED"
	StatusMaxIterations Status = "STOPPED_MAX_ITER"
	StatusLoopDetected  Status = "STOPPED_LOOP"
)

// #endregion status

// #region export

// Export is the JSON-serializable projection of a session. It carries the
// full text history; attempted pairs are summarized as snippets to bound
// output size.
type Export struct {
	RunID            string          `json:"run_id"`
	OriginalText     string          `json:"original_text"`
	FinalText        string          `json:"final_text"`
	EncodingChain    []string        `json:"encoding_chain"`
	Iterations       int             `json:"iterations"`
	MaxIterations    int             `json:"max_iterations"`
	Status           Status          `json:"status"`
	Complete         bool            `json:"complete"`
	Reason           string          `json:"reason"`
	History          []string        `json:"history"`
	ConfidenceScores []float64       `json:"confidence_scores"`
	Attempted        []AttemptRecord `json:"attempted_decodings"`
	StartedAt        time.Time       `json:"started_at"`
}

// AttemptRecord summarizes one (text, decoder) pair that was tried.
type AttemptRecord struct {
	TextSnippet string `json:"text_snippet"`
	Decoder     string `json:"decoder"`
}

// #endregion export
