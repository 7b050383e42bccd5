package agent

// #region imports
import (
	"strings"

	"peeler/internal/analysis"
	"peeler/internal/decoder"
)

// #endregion

// #region confidence-constants

// Encoding-detection confidences. Scores are computed independently per
// decoder; a string can plausibly score for several encodings at once.
const (
	confidenceBase64Padded  = 0.95
	confidenceBase64Charset = 0.85
	confidenceHexEvenLength = 0.95
	confidenceRot13Alpha    = 0.70
	confidenceURLPercent    = 0.90
)

// #endregion

// #region identify-encoding

// IdentifyEncoding maps analysis metrics to a confidence score per decoder.
// Odd-length hex scores zero: the hex decoder requires an even length, so
// selecting it could never succeed.
func IdentifyEncoding(a analysis.TextAnalysis) map[string]float64 {
	scores := map[string]float64{
		decoder.NameBase64: 0.0,
		decoder.NameHex:    0.0,
		decoder.NameRot13:  0.0,
		decoder.NameURL:    0.0,
	}

	if a.Charset == analysis.CharsetBase64 {
		if a.Padding {
			scores[decoder.NameBase64] = confidenceBase64Padded
		} else {
			scores[decoder.NameBase64] = confidenceBase64Charset
		}
	}

	if a.Charset == analysis.CharsetHex && a.Length%2 == 0 {
		scores[decoder.NameHex] = confidenceHexEvenLength
	}

	if a.Charset == analysis.CharsetAlphabetic {
		scores[decoder.NameRot13] = confidenceRot13Alpha
	}

	if strings.Contains(a.Text, "%") {
		scores[decoder.NameURL] = confidenceURLPercent
	}

	return scores
}

// #endregion
