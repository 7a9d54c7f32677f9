// Package metrics derives local shape features from raw text inputs.
// Features are counts only; they are safe to log where the text is not.
package metrics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Features holds basic local text features derived from an input string.
// Digits counts decimal digit runes, a cheap signal for how numeric an
// input is before any parsing happens.
type Features struct {
	Bytes  int
	Runes  int
	Words  int
	Lines  int
	Digits int
}

// CountFeatures computes byte, rune, word, line, and digit counts for s.
func CountFeatures(s string) Features {
	return Features{
		Bytes:  len(s),
		Runes:  utf8.RuneCountInString(s),
		Words:  countWords(s),
		Lines:  countLines(s),
		Digits: countDigits(s),
	}
}

// countWords counts words split on Unicode whitespace.
func countWords(s string) int {
	return len(strings.Fields(s))
}

// countLines returns 0 for empty strings; otherwise 1 plus the number of '\n' runes.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return 1 + strings.Count(s, "\n")
}

// countDigits counts runes in the Unicode decimal digit category.
func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
