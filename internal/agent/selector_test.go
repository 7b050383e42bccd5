package agent

import (
	"testing"

	"peeler/internal/decoder"
	"peeler/internal/session"
)

// #region select-tests

func TestSelectDecoder(t *testing.T) {
	ag := New(DefaultConfig())

	tests := []struct {
		name     string
		scores   map[string]float64
		wantName string
		wantOK   bool
	}{
		{
			"highest-wins",
			map[string]float64{decoder.NameBase64: 0.85, decoder.NameHex: 0.95},
			decoder.NameHex, true,
		},
		{
			"all-below-threshold",
			map[string]float64{decoder.NameBase64: 0.2, decoder.NameRot13: 0.3},
			"", false,
		},
		{
			"threshold-is-exclusive",
			map[string]float64{decoder.NameURL: 0.3},
			"", false,
		},
		{
			// Equal scores resolve by registry order.
			"tie-break-prefers-base64",
			map[string]float64{decoder.NameBase64: 0.95, decoder.NameHex: 0.95},
			decoder.NameBase64, true,
		},
		{
			"tie-break-prefers-hex-over-rot13",
			map[string]float64{decoder.NameHex: 0.70, decoder.NameRot13: 0.70},
			decoder.NameHex, true,
		},
		{
			"empty-scores",
			map[string]float64{},
			"", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := session.New("input", 10)
			name, confidence, ok := ag.selectDecoder(sess, tt.scores)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if name != tt.wantName {
				t.Errorf("name: got %q, want %q", name, tt.wantName)
			}
			if ok && confidence != tt.scores[tt.wantName] {
				t.Errorf("confidence: got %.2f, want %.2f", confidence, tt.scores[tt.wantName])
			}
		})
	}
}

func TestSelectDecoderSkipsAttempted(t *testing.T) {
	ag := New(DefaultConfig())
	sess := session.New("SGVsbG8=", 10)
	sess.RecordDecode("base64", "SGVsbG8=", 0.95) // marks the pair, text unchanged

	scores := map[string]float64{decoder.NameBase64: 0.95, decoder.NameRot13: 0.70}
	name, _, ok := ag.selectDecoder(sess, scores)
	if !ok {
		t.Fatal("expected a selection")
	}
	if name != decoder.NameRot13 {
		t.Errorf("name: got %q, want %q (attempted base64 must be skipped)", name, decoder.NameRot13)
	}
}

// #endregion select-tests

// #region fallback-tests

func TestTryAlternatives(t *testing.T) {
	ag := New(DefaultConfig())

	// Hex input: base64 rejects it (length 10 is not a multiple of 4), so
	// the walk lands on hex.
	sess := session.New("48656c6c6f", 10)
	name, out, ok := ag.tryAlternatives(sess)
	if !ok {
		t.Fatal("expected an alternative")
	}
	if name != decoder.NameHex {
		t.Errorf("name: got %q, want %q", name, decoder.NameHex)
	}
	if out != "Hello" {
		t.Errorf("output: got %q, want %q", out, "Hello")
	}
}

func TestTryAlternativesSkipsAttempted(t *testing.T) {
	ag := New(DefaultConfig())
	sess := session.New("48656c6c6f", 10)
	sess.RecordDecode("hex", "48656c6c6f", 0.95) // unchanged, pair marked

	name, _, ok := ag.tryAlternatives(sess)
	if !ok {
		t.Fatal("expected an alternative")
	}
	// hex is off the table; rot13 changes the letters.
	if name != decoder.NameRot13 {
		t.Errorf("name: got %q, want %q", name, decoder.NameRot13)
	}
}

func TestTryAlternativesNothingWorks(t *testing.T) {
	ag := New(DefaultConfig())
	sess := session.New("!!! ??? ,,, ;;;", 10)

	if name, _, ok := ag.tryAlternatives(sess); ok {
		t.Errorf("expected no alternative, got %q", name)
	}
}

// #endregion fallback-tests
