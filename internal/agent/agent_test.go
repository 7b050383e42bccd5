package agent

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"peeler/internal/session"
)

// #region decode-tests

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStatus session.Status
		wantFinal  string
		wantChain  []string
		wantIters  int
	}{
		{
			"single-base64-layer",
			"SGVsbG8gV29ybGQ=",
			session.StatusComplete, "Hello World", []string{"base64"}, 1,
		},
		{
			"base64-over-hex",
			"NDg2NTZjNmM2Zg==",
			session.StatusComplete, "Hello", []string{"base64", "hex"}, 2,
		},
		{
			"flag-stops-immediately",
			"ZmxhZ3t0ZXN0fQ==",
			session.StatusComplete, "flag{test}", []string{"base64"}, 1,
		},
		{
			"url-encoded",
			"https%3A%2F%2Fexample.com%2Fpath",
			session.StatusComplete, "https://example.com/path", []string{"url"}, 1,
		},
		{
			"rot13-layer",
			"Uryyb, Jbeyq!",
			session.StatusComplete, "Hello, World!", []string{"rot13"}, 1,
		},
		{
			// Nothing decodes punctuation soup; the no-change validator
			// fails the run on the first pass.
			"undecodable-input",
			"!!! ??? ,,, ;;;",
			session.StatusFailed, "!!! ??? ,,, ;;;", []string{"none"}, 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ag := New(DefaultConfig())
			got := ag.Decode(tt.input)

			if got.Status != tt.wantStatus {
				t.Errorf("status: got %q, want %q", got.Status, tt.wantStatus)
			}
			if got.FinalText != tt.wantFinal {
				t.Errorf("final text: got %q, want %q", got.FinalText, tt.wantFinal)
			}
			if got.Iterations != tt.wantIters {
				t.Errorf("iterations: got %d, want %d", got.Iterations, tt.wantIters)
			}
			if diff := cmp.Diff(tt.wantChain, got.EncodingChain); diff != "" {
				t.Errorf("chain mismatch (-want +got):\n%s", diff)
			}
			if got.Success != (tt.wantStatus == session.StatusComplete) {
				t.Errorf("success: got %v for status %q", got.Success, got.Status)
			}
			if got.OriginalText != tt.input {
				t.Errorf("original text: got %q, want %q", got.OriginalText, tt.input)
			}
			if len(got.History) != got.Iterations+1 {
				t.Errorf("history length: got %d, want iterations+1 = %d",
					len(got.History), got.Iterations+1)
			}
			if len(got.ConfidenceScores) != got.Iterations {
				t.Errorf("confidence scores: got %d entries, want %d",
					len(got.ConfidenceScores), got.Iterations)
			}
		})
	}
}

func TestDecode_MaxIterations(t *testing.T) {
	// One iteration peels the outer base64 layer; the cap stops the run
	// before the inner hex layer is reached.
	ag := New(Config{MaxIterations: 1})
	got := ag.Decode("NDg2NTZjNmM2Zg==")

	if got.Status != session.StatusMaxIterations {
		t.Fatalf("status: got %q, want %q", got.Status, session.StatusMaxIterations)
	}
	if got.FinalText != "48656c6c6f" {
		t.Errorf("final text: got %q, want %q", got.FinalText, "48656c6c6f")
	}
	if got.Iterations != 1 {
		t.Errorf("iterations: got %d, want 1", got.Iterations)
	}
	if got.Reason != "max_iterations_reached" {
		t.Errorf("reason: got %q, want %q", got.Reason, "max_iterations_reached")
	}
	if got.Success {
		t.Error("success: got true for capped run")
	}
}

func TestDecode_LoopDetected(t *testing.T) {
	// 26 distinct letters: not valid base64, not prose. The selector picks
	// base64 off the charset, it fails, the fallback applies rot13 twice,
	// and the second application reproduces the input.
	input := "QwErTyUiOpAsDfGhJkLzXcVbNm"
	ag := New(DefaultConfig())
	got := ag.Decode(input)

	if got.Status != session.StatusLoopDetected {
		t.Fatalf("status: got %q, want %q", got.Status, session.StatusLoopDetected)
	}
	if got.FinalText != input {
		t.Errorf("final text: got %q, want the original input", got.FinalText)
	}
	if got.Iterations != 2 {
		t.Errorf("iterations: got %d, want 2", got.Iterations)
	}
	if got.Reason != "loop_detected" {
		t.Errorf("reason: got %q, want %q", got.Reason, "loop_detected")
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	ag := New(DefaultConfig())
	got := ag.Decode("")

	// Nothing applies to empty text, so the run fails on no change.
	if got.Status != session.StatusFailed {
		t.Errorf("status: got %q, want %q", got.Status, session.StatusFailed)
	}
	if got.Iterations != 1 {
		t.Errorf("iterations: got %d, want 1", got.Iterations)
	}
}

func TestDecode_ConfidenceRecorded(t *testing.T) {
	ag := New(DefaultConfig())
	got := ag.Decode("SGVsbG8gV29ybGQ=")

	// Padded base64 classifies at 0.95 and the recorded score is the
	// selection confidence.
	want := []float64{0.95}
	if diff := cmp.Diff(want, got.ConfidenceScores); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
}

// #endregion decode-tests

// #region config-tests

func TestNewAppliesDefaultCap(t *testing.T) {
	ag := New(Config{MaxIterations: 0})
	if ag.config.MaxIterations != DefaultConfig().MaxIterations {
		t.Errorf("max iterations: got %d, want default %d",
			ag.config.MaxIterations, DefaultConfig().MaxIterations)
	}
}

// #endregion config-tests

// #region session-export-tests

func TestDecodeSession(t *testing.T) {
	ag := New(DefaultConfig())
	export := ag.DecodeSession("SGVsbG8gV29ybGQ=")

	if export.RunID == "" {
		t.Error("run ID: got empty string")
	}
	if !export.Complete {
		t.Errorf("complete: got false (status %q, reason %q)", export.Status, export.Reason)
	}
	if export.MaxIterations != DefaultConfig().MaxIterations {
		t.Errorf("max iterations: got %d, want %d", export.MaxIterations, DefaultConfig().MaxIterations)
	}
	if len(export.Attempted) == 0 {
		t.Error("attempted pairs: got none, want at least the applied decoder")
	}
}

// #endregion session-export-tests

// #region convenience-tests

func TestIterativeDecode(t *testing.T) {
	got := IterativeDecode("SGVsbG8gV29ybGQ=", 5, false)
	if !got.Success {
		t.Fatalf("success: got false (status %q, reason %q)", got.Status, got.Reason)
	}
	if got.FinalText != "Hello World" {
		t.Errorf("final text: got %q, want %q", got.FinalText, "Hello World")
	}
}

// #endregion convenience-tests
