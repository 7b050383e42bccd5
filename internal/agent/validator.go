package agent

// #region imports
import (
	"fmt"

	"peeler/internal/analysis"
)

// #endregion

// #region thresholds

const (
	printableRatioHigh = 0.95
	printableRatioLow  = 0.80
	entropyHigh        = 5.5
	entropyLow         = 4.5
)

// Validator verdict confidences, in chain order.
const (
	confidenceNoChange     = 0.0
	confidenceFlagDetected = 0.99
	confidenceURLDetected  = 0.85
	confidenceHashDetected = 0.80
	confidenceNaturalLang  = 0.90
	confidenceStillEncoded = 0.60
	confidenceImproved     = 0.50
	confidenceAmbiguous    = 0.45
)

// #endregion

// #region default-validators

// defaultValidators builds the ordered chain. The chain is evaluated front
// to back and the first non-nil verdict wins; the trailing default always
// matches, so evaluation never falls off the end.
func defaultValidators() []Validator {
	return []Validator{
		{
			Name: "no_change",
			Check: func(original string, a analysis.TextAnalysis) *ValidationResult {
				if original != a.Text {
					return nil
				}
				return &ValidationResult{
					Status:     ValidationFailed,
					Reason:     "No change after decoding",
					Confidence: confidenceNoChange,
				}
			},
		},
		{
			Name: "flag",
			Check: func(original string, a analysis.TextAnalysis) *ValidationResult {
				if !a.ContainsFlag {
					return nil
				}
				return &ValidationResult{
					Status:     ValidationComplete,
					Reason:     "Flag format detected",
					Confidence: confidenceFlagDetected,
				}
			},
		},
		{
			Name: "url",
			Check: func(original string, a analysis.TextAnalysis) *ValidationResult {
				if !a.ContainsURL {
					return nil
				}
				return &ValidationResult{
					Status:     ValidationComplete,
					Reason:     "URL detected",
					Confidence: confidenceURLDetected,
				}
			},
		},
		{
			Name: "hash",
			Check: func(original string, a analysis.TextAnalysis) *ValidationResult {
				if a.HashType == analysis.HashNone {
					return nil
				}
				return &ValidationResult{
					Status:     ValidationComplete,
					Reason:     fmt.Sprintf("%s hash detected", a.HashType),
					Confidence: confidenceHashDetected,
				}
			},
		},
		{
			// All-hex text is excluded here: a pure hex string that is not
			// a recognized hash length is almost certainly another encoding
			// layer, not prose, whatever its entropy says.
			Name: "natural_language",
			Check: func(original string, a analysis.TextAnalysis) *ValidationResult {
				if a.Charset == analysis.CharsetHex {
					return nil
				}
				if a.PrintableRatio <= printableRatioHigh || a.Entropy >= entropyLow {
					return nil
				}
				return &ValidationResult{
					Status:     ValidationComplete,
					Reason:     "Natural language detected (high printable ratio, low entropy)",
					Confidence: confidenceNaturalLang,
				}
			},
		},
		{
			Name: "still_encoded",
			Check: func(original string, a analysis.TextAnalysis) *ValidationResult {
				if a.PrintableRatio >= printableRatioLow && a.Entropy <= entropyHigh {
					return nil
				}
				return &ValidationResult{
					Status:     ValidationPartial,
					Reason:     fmt.Sprintf("Still appears encoded (printable=%.2f, entropy=%.2f)", a.PrintableRatio, a.Entropy),
					Confidence: confidenceStillEncoded,
				}
			},
		},
		{
			Name: "improved_readability",
			Check: func(original string, a analysis.TextAnalysis) *ValidationResult {
				if a.PrintableRatio <= printableRatioLow {
					return nil
				}
				return &ValidationResult{
					Status:     ValidationPartial,
					Reason:     "Improved readability but still ambiguous",
					Confidence: confidenceImproved,
				}
			},
		},
		{
			Name: "default",
			Check: func(original string, a analysis.TextAnalysis) *ValidationResult {
				return &ValidationResult{
					Status:     ValidationPartial,
					Reason:     "Ambiguous result",
					Confidence: confidenceAmbiguous,
				}
			},
		},
	}
}

// #endregion

// #region validate

// Validate analyzes decoded and runs the chain against it.
func (ag *Agent) Validate(original, decoded string) ValidationResult {
	a := analysis.Analyze(decoded)
	for _, v := range ag.validators {
		if res := v.Check(original, a); res != nil {
			ag.logf("  validator %q: %s (%s, confidence %.2f)", v.Name, res.Status, res.Reason, res.Confidence)
			return *res
		}
	}
	// Unreachable: the default validator always matches.
	return ValidationResult{Status: ValidationPartial, Reason: "Ambiguous result", Confidence: confidenceAmbiguous}
}

// #endregion
