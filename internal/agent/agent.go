// Package agent implements the iteration controller: analyze, classify,
// apply a decoder, validate, decide. It owns the loop; every other
// component is a pure function over explicit inputs, and the session is
// the only mutable state.
package agent

// #region imports
import (
	"fmt"
	"log"

	"peeler/internal/analysis"
	"peeler/internal/decoder"
	"peeler/internal/session"
)

// #endregion

// #region constants

// noProgressDecoder is recorded when neither selection nor fallback made
// progress, so history and counters stay aligned for the failed iteration.
const noProgressDecoder = "none"

// #endregion

// #region agent-struct

// Agent runs iterative decoding over the closed decoder set.
type Agent struct {
	decoders   []decoder.Entry
	validators []Validator
	config     Config
}

// New creates an agent with the fixed decoder registry and the default
// validator chain. A non-positive iteration cap falls back to the default.
func New(config Config) *Agent {
	if config.MaxIterations <= 0 {
		config.MaxIterations = DefaultConfig().MaxIterations
	}
	return &Agent{
		decoders:   decoder.Registry(),
		validators: defaultValidators(),
		config:     config,
	}
}

func (ag *Agent) logf(format string, args ...any) {
	if ag.config.Verbose {
		log.Printf("[AGENT] "+format, args...)
	}
}

// #endregion

// #region decode

// Decode runs the full iterative decode and always returns a structured
// result. Unexpected internal errors are caught inside the loop, recorded
// as the completion reason, and surfaced as a FAILED result rather than a
// panic.
func (ag *Agent) Decode(text string) Result {
	return resultFromExport(ag.DecodeSession(text))
}

// DecodeSession runs the decode and returns the full session export,
// including the attempted-pair summary, for logging or storage.
func (ag *Agent) DecodeSession(text string) session.Export {
	sess := session.New(text, ag.config.MaxIterations)
	ag.logf("starting run %s (max_iterations=%d)", sess.ID(), sess.MaxIterations())

	ag.runLoop(sess)

	export := sess.Export()
	ag.logf("run %s finished: status=%s iterations=%d reason=%q",
		export.RunID, export.Status, export.Iterations, export.Reason)
	return export
}

func (ag *Agent) runLoop(sess *session.Session) {
	defer func() {
		if r := recover(); r != nil {
			ag.logf("unexpected error: %v", r)
			sess.Finish(session.StatusFailed, fmt.Sprintf("error: %v", r))
		}
	}()

	for sess.Status() == session.StatusRunning {
		ag.runIteration(sess)
	}
}

// #endregion

// #region iteration

// runIteration performs one analyze → classify → apply → validate → decide
// pass and records it into the session.
func (ag *Agent) runIteration(sess *session.Session) {
	current := sess.CurrentText()
	ag.logf("--- iteration %d ---", sess.IterationCount()+1)

	// (a) analyze
	a := analysis.Analyze(current)
	ag.logf("  charset=%s length=%d entropy=%.2f printable=%.2f",
		a.Charset, a.Length, a.Entropy, a.PrintableRatio)

	// (b) classify
	scores := IdentifyEncoding(a)

	// (c) select, (d) apply
	applied, confidence, ok := ag.applyBestDecoder(sess, scores)
	if !ok {
		// No decoder made progress. Record the iteration anyway so the
		// alignment invariants hold; the no-change validator fails the run.
		applied = appliedDecoder{name: noProgressDecoder, output: current}
		confidence = 0.0
	}

	// (e) validate
	validation := ag.Validate(current, applied.output)

	// (f) record
	sess.RecordDecode(applied.name, applied.output, confidence)

	// (g) decide, highest priority first
	switch {
	case validation.Status == ValidationComplete:
		sess.Finish(session.StatusComplete, validation.Reason)
	case validation.Status == ValidationFailed:
		sess.Finish(session.StatusFailed, validation.Reason)
	case sess.IterationCount() >= sess.MaxIterations():
		sess.Finish(session.StatusMaxIterations, "max_iterations_reached")
	case sess.LoopDetected():
		sess.Finish(session.StatusLoopDetected, "loop_detected")
	}
}

type appliedDecoder struct {
	name   string
	output string
}

// applyBestDecoder selects by confidence and applies the decoder, falling
// back to brute force when selection fails, the decoder rejects its input,
// or its output is unchanged.
func (ag *Agent) applyBestDecoder(sess *session.Session, scores map[string]float64) (appliedDecoder, float64, bool) {
	current := sess.CurrentText()

	if name, confidence, ok := ag.selectDecoder(sess, scores); ok {
		ag.logf("  selected decoder %q (confidence %.2f)", name, confidence)
		out, err := ag.decodeWith(name, current)
		switch {
		case err != nil:
			ag.logf("  decoder %q failed: %v", name, err)
		case out == current:
			ag.logf("  decoder %q made no change", name)
		default:
			return appliedDecoder{name: name, output: out}, confidence, true
		}
	} else {
		ag.logf("  no decoder above selection threshold")
	}

	if name, out, ok := ag.tryAlternatives(sess); ok {
		return appliedDecoder{name: name, output: out}, fallbackConfidence, true
	}

	ag.logf("  all decoders failed or made no progress")
	return appliedDecoder{}, 0.0, false
}

// #endregion

// #region convenience

// IterativeDecode is the one-call entry point: build an agent and decode.
func IterativeDecode(text string, maxIterations int, verbose bool) Result {
	ag := New(Config{MaxIterations: maxIterations, Verbose: verbose})
	return ag.Decode(text)
}

// #endregion
