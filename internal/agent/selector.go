package agent

// #region imports
import (
	"peeler/internal/decoder"
	"peeler/internal/session"
)

// #endregion

// #region constants

// selectionThreshold is the minimum confidence for direct selection.
const selectionThreshold = 0.3

// fallbackConfidence is assigned when a decoder is found by brute force
// rather than by classification.
const fallbackConfidence = 0.7

// #endregion

// #region select-decoder

// selectDecoder picks the decoder with the highest confidence strictly
// above the threshold. Iterating the registry in priority order and
// requiring a strictly greater score breaks ties as base64 > hex > rot13 >
// url. Pairs already attempted on the current text are skipped.
func (ag *Agent) selectDecoder(sess *session.Session, scores map[string]float64) (string, float64, bool) {
	text := sess.CurrentText()
	name := ""
	best := 0.0

	for _, entry := range ag.decoders {
		score := scores[entry.Name]
		if score <= selectionThreshold {
			continue
		}
		if sess.Attempted(text, entry.Name) {
			continue
		}
		if score > best {
			name = entry.Name
			best = score
		}
	}

	if name == "" {
		return "", 0.0, false
	}
	return name, best, true
}

// #endregion

// #region apply

// decodeWith applies the named decoder from the registry.
func (ag *Agent) decodeWith(name, text string) (string, error) {
	for _, entry := range ag.decoders {
		if entry.Name == name {
			return entry.Decode(text)
		}
	}
	return "", &decoder.Error{Decoder: name, Reason: "unknown decoder"}
}

// #endregion

// #region fallback

// tryAlternatives walks every decoder in priority order and returns the
// first one whose output differs from the input, skipping decoders that
// fail, make no change, or were already attempted on this text.
func (ag *Agent) tryAlternatives(sess *session.Session) (string, string, bool) {
	text := sess.CurrentText()
	ag.logf("  trying alternative decoders")

	for _, entry := range ag.decoders {
		if sess.Attempted(text, entry.Name) {
			continue
		}
		out, err := entry.Decode(text)
		if err != nil {
			ag.logf("  alternative %q failed: %v", entry.Name, err)
			continue
		}
		if out == text {
			continue
		}
		ag.logf("  alternative %q succeeded", entry.Name)
		return entry.Name, out, true
	}

	return "", "", false
}

// #endregion
