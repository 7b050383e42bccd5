// Package decoder holds the four concrete decode transforms and the fixed
// registry the agent selects from. Each transform either returns changed
// text or a *Error describing why the input is not well-formed for it;
// none of them silently pass malformed input through.
package decoder

// #region imports
import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// #endregion

// #region decoder-names

const (
	NameBase64 = "base64"
	NameHex    = "hex"
	NameRot13  = "rot13"
	NameURL    = "url"
)

// #endregion

// #region error

// Error reports a decoder rejecting its input.
type Error struct {
	Decoder string
	Reason  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s decode: %s", e.Decoder, e.Reason)
}

// #endregion

// #region registry

// Func is the uniform decode contract.
type Func func(text string) (string, error)

// Entry pairs a decoder name with its transform.
type Entry struct {
	Name   string
	Decode Func
}

// Registry returns the closed decoder set in fixed priority order. The
// order doubles as the tie-break rule when confidence scores are equal.
func Registry() []Entry {
	return []Entry{
		{Name: NameBase64, Decode: Base64},
		{Name: NameHex, Decode: Hex},
		{Name: NameRot13, Decode: Rot13},
		{Name: NameURL, Decode: URL},
	}
}

// #endregion

// #region base64

// Base64 decodes a standard-alphabet Base64 string. Decoded bytes that are
// not valid UTF-8 come back hex-encoded so the result stays printable.
func Base64(text string) (string, error) {
	cleaned := stripWhitespace(text)
	decoded, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", &Error{Decoder: NameBase64, Reason: err.Error()}
	}
	if !utf8.Valid(decoded) {
		return hex.EncodeToString(decoded), nil
	}
	return string(decoded), nil
}

// #endregion

// #region hex

// Hex decodes a hexadecimal string, ignoring embedded whitespace. Decoded
// bytes that are not valid UTF-8 come back Base64-encoded.
func Hex(text string) (string, error) {
	cleaned := stripWhitespace(text)
	for _, r := range cleaned {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return "", &Error{Decoder: NameHex, Reason: "non-hexadecimal characters present"}
		}
	}
	if len(cleaned)%2 != 0 {
		return "", &Error{Decoder: NameHex, Reason: "odd-length input"}
	}

	decoded, err := hex.DecodeString(cleaned)
	if err != nil {
		return "", &Error{Decoder: NameHex, Reason: err.Error()}
	}
	if !utf8.Valid(decoded) {
		return base64.StdEncoding.EncodeToString(decoded), nil
	}
	return string(decoded), nil
}

// #endregion

// #region rot13

// Rot13 rotates ASCII letters by 13 places. Non-letters pass through.
func Rot13(text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			r = 'a' + (r-'a'+13)%26
		case r >= 'A' && r <= 'Z':
			r = 'A' + (r-'A'+13)%26
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// #endregion

// #region url

// URL percent-decodes text. Input without any % escape, with malformed
// escapes, or where decoding changes nothing is rejected.
func URL(text string) (string, error) {
	if !strings.Contains(text, "%") {
		return "", &Error{Decoder: NameURL, Reason: "no percent escapes present"}
	}
	decoded, err := url.PathUnescape(text)
	if err != nil {
		return "", &Error{Decoder: NameURL, Reason: err.Error()}
	}
	if decoded == text {
		return "", &Error{Decoder: NameURL, Reason: "decoding produced no change"}
	}
	return decoded, nil
}

// #endregion

// #region try-all

// Attempt is one successful decode from TryAll.
type Attempt struct {
	Name   string
	Output string
}

// TryAll runs every decoder in priority order against text, keeping only
// attempts that succeed and actually change the input.
func TryAll(text string) []Attempt {
	var attempts []Attempt
	for _, entry := range Registry() {
		out, err := entry.Decode(text)
		if err != nil || out == text {
			continue
		}
		attempts = append(attempts, Attempt{Name: entry.Name, Output: out})
	}
	return attempts
}

// #endregion

// #region helpers

func stripWhitespace(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, text)
}

// #endregion
