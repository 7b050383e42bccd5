// Package session holds the mutable record of one decode run: the text
// history, the chain of decoders applied, and the loop-detection state.
// The agent is the only writer; fields stay unexported so the append-only
// history invariant cannot be broken from outside.
package session

// #region imports
import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
)

// #endregion

// #region constants

// snippetLength bounds attempted-pair text snapshots in exports.
const snippetLength = 50

// #endregion

// #region session

type attemptKey struct {
	text    string
	decoder string
}

// Session tracks one decode run. Create with New, mutate through
// RecordDecode and Finish only. len(history) == iterations+1 holds at all
// times; the chain and confidence slices always have equal length.
type Session struct {
	runID        string
	originalText string
	currentText  string

	textHistory      []string
	encodingChain    []string
	confidenceScores []float64
	attempted        map[attemptKey]struct{}

	iterationCount int
	maxIterations  int

	status           Status
	completionReason string
	startedAt        time.Time
}

// New creates a running session seeded with the original text.
func New(text string, maxIterations int) *Session {
	return &Session{
		runID:         uuid.New().String(),
		originalText:  text,
		currentText:   text,
		textHistory:   []string{text},
		attempted:     make(map[attemptKey]struct{}),
		maxIterations: maxIterations,
		status:        StatusRunning,
		startedAt:     time.Now().UTC(),
	}
}

// #endregion

// #region accessors

func (s *Session) ID() string                  { return s.runID }
func (s *Session) OriginalText() string        { return s.originalText }
func (s *Session) CurrentText() string         { return s.currentText }
func (s *Session) IterationCount() int         { return s.iterationCount }
func (s *Session) MaxIterations() int          { return s.maxIterations }
func (s *Session) Status() Status              { return s.status }
func (s *Session) CompletionReason() string    { return s.completionReason }
func (s *Session) EncodingChain() []string     { return append([]string(nil), s.encodingChain...) }
func (s *Session) History() []string           { return append([]string(nil), s.textHistory...) }
func (s *Session) ConfidenceScores() []float64 { return append([]float64(nil), s.confidenceScores...) }

// #endregion

// #region record-decode

// RecordDecode appends one iteration's outcome: the decoder applied, the
// resulting text, and the selection confidence. The (previous text, decoder)
// pair is marked attempted. No-op once the session is frozen.
func (s *Session) RecordDecode(decoderName, result string, confidence float64) {
	if s.status != StatusRunning {
		return
	}

	prev := s.currentText
	s.encodingChain = append(s.encodingChain, decoderName)
	s.confidenceScores = append(s.confidenceScores, confidence)
	s.textHistory = append(s.textHistory, result)
	s.currentText = result
	s.iterationCount++
	s.attempted[attemptKey{text: prev, decoder: decoderName}] = struct{}{}
}

// Attempted reports whether decoderName was already tried against text.
func (s *Session) Attempted(text, decoderName string) bool {
	_, ok := s.attempted[attemptKey{text: text, decoder: decoderName}]
	return ok
}

// #endregion

// #region loop-detection

// LoopDetected checks the history for three cycle patterns: an exact
// repeat of the current text, a no-change step, and a period-2
// oscillation. Longer cycles run until the iteration cap.
func (s *Session) LoopDetected() bool {
	n := len(s.textHistory)

	// Exact repeat: current text already seen earlier.
	for _, earlier := range s.textHistory[:n-1] {
		if earlier == s.currentText {
			return true
		}
	}

	// No change between the two most recent entries.
	if n >= 2 && s.textHistory[n-1] == s.textHistory[n-2] {
		return true
	}

	// Oscillation: A→B→A→B.
	if n >= 4 &&
		s.textHistory[n-1] == s.textHistory[n-3] &&
		s.textHistory[n-2] == s.textHistory[n-4] {
		return true
	}

	return false
}

// #endregion

// #region finish

// Finish moves the session to a terminal status and freezes it. Later
// Finish or RecordDecode calls are ignored.
func (s *Session) Finish(status Status, reason string) {
	if s.status != StatusRunning {
		return
	}
	s.status = status
	s.completionReason = reason
}

// #endregion

// #region export

// Export returns the JSON-serializable snapshot of the session.
func (s *Session) Export() Export {
	attempted := make([]AttemptRecord, 0, len(s.attempted))
	for key := range s.attempted {
		attempted = append(attempted, AttemptRecord{
			TextSnippet: snippet(key.text),
			Decoder:     key.decoder,
		})
	}
	sort.Slice(attempted, func(i, j int) bool {
		if attempted[i].TextSnippet != attempted[j].TextSnippet {
			return attempted[i].TextSnippet < attempted[j].TextSnippet
		}
		return attempted[i].Decoder < attempted[j].Decoder
	})

	chain := s.EncodingChain()
	if chain == nil {
		chain = []string{}
	}
	scores := s.ConfidenceScores()
	if scores == nil {
		scores = []float64{}
	}

	return Export{
		RunID:            s.runID,
		OriginalText:     s.originalText,
		FinalText:        s.currentText,
		EncodingChain:    chain,
		Iterations:       s.iterationCount,
		MaxIterations:    s.maxIterations,
		Status:           s.status,
		Complete:         s.status == StatusComplete,
		Reason:           s.completionReason,
		History:          s.History(),
		ConfidenceScores: scores,
		Attempted:        attempted,
		StartedAt:        s.startedAt,
	}
}

// JSON renders the export with indentation, for logging or storage.
func (e Export) JSON() (string, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLength {
		return text
	}
	return string(runes[:snippetLength])
}

// #endregion
