package agent

import (
	"testing"

	"peeler/internal/analysis"
	"peeler/internal/decoder"
)

// #region classifier-tests

func TestIdentifyEncoding(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]float64
	}{
		{
			"base64-padded",
			"SGVsbG8gV29ybGQ=",
			map[string]float64{decoder.NameBase64: 0.95},
		},
		{
			"base64-unpadded",
			"SGVsbG8gV29ybGQh0",
			map[string]float64{decoder.NameBase64: 0.85},
		},
		{
			"hex-even-length",
			"48656c6c6f",
			map[string]float64{decoder.NameHex: 0.95},
		},
		{
			// Odd-length hex can never decode, so it scores zero. The
			// charset is still a subset of base64's but classification is
			// charset-exclusive, so base64 stays zero too.
			"hex-odd-length",
			"48656c6c6",
			map[string]float64{},
		},
		{
			"alphabetic-rot13",
			"Uryyb Jbeyq",
			map[string]float64{decoder.NameRot13: 0.70},
		},
		{
			"url-escapes",
			"100%25 of 100!",
			map[string]float64{decoder.NameURL: 0.90},
		},
		{
			"empty",
			"",
			map[string]float64{},
		},
		{
			"binary",
			"\x00\x01\x02\x03",
			map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IdentifyEncoding(analysis.Analyze(tt.text))

			for _, name := range []string{decoder.NameBase64, decoder.NameHex, decoder.NameRot13, decoder.NameURL} {
				want := tt.want[name] // zero for absent entries
				if got[name] != want {
					t.Errorf("score[%s]: got %.2f, want %.2f", name, got[name], want)
				}
			}
		})
	}
}

func TestIdentifyEncodingScoresBounded(t *testing.T) {
	inputs := []string{
		"", "SGVsbG8=", "48656c6c6f", "Hello World", "100% pure",
		"\x00\xff", "flag{x}", "d41d8cd98f00b204e9800998ecf8427e",
	}
	for _, text := range inputs {
		scores := IdentifyEncoding(analysis.Analyze(text))
		if len(scores) != 4 {
			t.Errorf("IdentifyEncoding(%q): got %d entries, want 4", text, len(scores))
		}
		for name, score := range scores {
			if score < 0.0 || score > 1.0 {
				t.Errorf("IdentifyEncoding(%q)[%s] = %f, outside [0,1]", text, name, score)
			}
		}
	}
}

func TestIdentifyEncodingURLIndependent(t *testing.T) {
	// The URL score keys on the raw %, so it can coexist with a charset
	// score. "48656c6c6f" plus an escape is no longer hex, but alphabetic
	// text with an escape keeps both signals.
	scores := IdentifyEncoding(analysis.Analyze("Uryyb%20Jbeyq"))
	if scores[decoder.NameURL] != 0.90 {
		t.Errorf("url score: got %.2f, want 0.90", scores[decoder.NameURL])
	}
	if scores[decoder.NameRot13] != 0.70 {
		t.Errorf("rot13 score: got %.2f, want 0.70", scores[decoder.NameRot13])
	}
}

// #endregion classifier-tests
