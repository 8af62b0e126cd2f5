package filter

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Decision is the outcome of running one record through the pipeline.
type Decision int

const (
	Accept Decision = iota
	RejectShort
	RejectForeign
)

func (d Decision) String() string {
	switch d {
	case Accept:
		return "accept"
	case RejectShort:
		return "reject-short"
	case RejectForeign:
		return "reject-foreign"
	}
	return "unknown"
}

// Evaluate applies the description filters in order: the length check
// first because it is cheap and catches degenerate cases (including the
// empty description, which must never reach the ratio check), then the
// language-ratio check.
func Evaluate(description string, minLength int, foreignLimit float64) Decision {
	desc := norm.NFC.String(description)

	if utf8.RuneCountInString(desc) < minLength {
		return RejectShort
	}

	if ForeignRatio(desc) > foreignLimit {
		return RejectForeign
	}

	return Accept
}

// ForeignRatio is the share of ASCII-alphabetic runes in the text.
// A high ratio on this board means the posting is not in the site's
// native language. Returns 0 for empty text.
func ForeignRatio(text string) float64 {
	total := 0
	ascii := 0
	for _, r := range text {
		total++
		if r <= unicode.MaxASCII && unicode.IsLetter(r) {
			ascii++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(ascii) / float64(total)
}
