package analysis

// #region charset

// Charset is the coarse character-composition class of a string.
type Charset string

const (
	CharsetEmpty      Charset = "empty"
	CharsetHex        Charset = "hex"
	CharsetBase64     Charset = "base64"
	CharsetAlphabetic Charset = "alphabetic"
	CharsetPrintable  Charset = "printable"
	CharsetBinary     Charset = "binary"
)

// #endregion

// #region hash-type

// HashType identifies a cryptographic hash format by its hex length.
type HashType string

const (
	HashNone   HashType = "none"
	HashMD5    HashType = "MD5"
	HashSHA1   HashType = "SHA1"
	HashSHA256 HashType = "SHA256"
)

// #endregion

// #region text-analysis

// TextAnalysis bundles every metric computed for one string. It is derived,
// immutable, and recomputed from scratch on each iteration.
type TextAnalysis struct {
	Text           string
	Length         int
	Charset        Charset
	Padding        bool
	Entropy        float64
	PrintableRatio float64
	ContainsURL    bool
	ContainsFlag   bool
	HashType       HashType
}

// #endregion
