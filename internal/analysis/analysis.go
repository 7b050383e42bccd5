package analysis

// #region imports
import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// #endregion

// #region constants

const (
	hexChars    = "0123456789abcdefABCDEF"
	base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="

	// alphabeticRatio is the minimum fraction of letters for the
	// alphabetic charset class.
	alphabeticRatio = 0.7

	md5Length    = 32
	sha1Length   = 40
	sha256Length = 64
)

// #endregion

// #region patterns

// flagPatterns covers the common bracketed CTF flag formats. All matching
// is case-insensitive, so flag{} also covers FLAG{} and CTF{} covers picoCTF{}
// as a substring hit; the variants stay listed for clarity.
var flagPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)flag\{[^}]+\}`),
	regexp.MustCompile(`(?i)HTB\{[^}]+\}`),
	regexp.MustCompile(`(?i)CTF\{[^}]+\}`),
	regexp.MustCompile(`(?i)picoCTF\{[^}]+\}`),
	regexp.MustCompile(`(?i)FLG\{[^}]+\}`),
}

var urlPattern = regexp.MustCompile(`(?i)https?://\S+`)

// #endregion

// #region analyze

// Analyze computes all metrics for text. Pure and deterministic.
func Analyze(text string) TextAnalysis {
	return TextAnalysis{
		Text:           text,
		Length:         utf8.RuneCountInString(text),
		Charset:        identifyCharset(text),
		Padding:        hasPadding(text),
		Entropy:        Entropy(text),
		PrintableRatio: PrintableRatio(text),
		ContainsURL:    ContainsURL(text),
		ContainsFlag:   ContainsFlag(text),
		HashType:       LooksLikeHash(text),
	}
}

// #endregion

// #region charset-detection

// identifyCharset classifies the character composition of text. Checks run
// in order of specificity; the first match wins.
func identifyCharset(text string) Charset {
	if text == "" {
		return CharsetEmpty
	}

	// Hex ignores spaces so formatted dumps like "48 65 6c 6c 6f" qualify.
	if allIn(strings.ReplaceAll(text, " ", ""), hexChars) {
		return CharsetHex
	}

	if allIn(text, base64Chars) {
		return CharsetBase64
	}

	if alphaRatio(text) >= alphabeticRatio {
		return CharsetAlphabetic
	}

	if PrintableRatio(text) == 1.0 {
		return CharsetPrintable
	}

	return CharsetBinary
}

func allIn(text, set string) bool {
	for _, r := range text {
		if !strings.ContainsRune(set, r) {
			return false
		}
	}
	return true
}

func alphaRatio(text string) float64 {
	total := 0
	letters := 0
	for _, r := range text {
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return 0.0
	}
	return float64(letters) / float64(total)
}

// #endregion

// #region entropy

// Entropy returns the Shannon entropy of text in bits per character,
// computed over the rune frequency distribution. Empty input yields 0.0.
func Entropy(text string) float64 {
	if text == "" {
		return 0.0
	}

	counts := make(map[rune]int)
	total := 0
	for _, r := range text {
		counts[r]++
		total++
	}

	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// #endregion

// #region printable-ratio

// PrintableRatio returns the fraction of characters in the printable-ASCII
// set (space through ~ plus common whitespace). Empty input yields 0.0.
func PrintableRatio(text string) float64 {
	if text == "" {
		return 0.0
	}

	total := 0
	printable := 0
	for _, r := range text {
		total++
		if isPrintableASCII(r) {
			printable++
		}
	}
	return float64(printable) / float64(total)
}

func isPrintableASCII(r rune) bool {
	if r >= 0x20 && r <= 0x7e {
		return true
	}
	switch r {
	case '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// #endregion

// #region padding

// hasPadding reports whether text ends with Base64-style = padding after
// trailing whitespace is removed.
func hasPadding(text string) bool {
	return strings.HasSuffix(strings.TrimRightFunc(text, unicode.IsSpace), "=")
}

// #endregion

// #region pattern-detection

// ContainsURL reports whether text contains an http(s) URL.
func ContainsURL(text string) bool {
	return urlPattern.MatchString(text)
}

// ContainsFlag reports whether text matches any known CTF flag format.
func ContainsFlag(text string) bool {
	for _, pattern := range flagPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// LooksLikeHash identifies MD5/SHA1/SHA256 by exact hex length. Partial
// or padded hex strings never match.
func LooksLikeHash(text string) HashType {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !allIn(trimmed, hexChars) {
		return HashNone
	}

	switch utf8.RuneCountInString(trimmed) {
	case md5Length:
		return HashMD5
	case sha1Length:
		return HashSHA1
	case sha256Length:
		return HashSHA256
	}
	return HashNone
}

// #endregion
