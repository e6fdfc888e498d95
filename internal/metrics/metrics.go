// Package metrics computes character, word, sentence and letter statistics
// for a block of text.
//
// Every function is pure: the same input always yields the same result, and
// no function can fail. Text without matches yields zero counts or an empty
// density list.
package metrics

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf16"
)

// whitespaceClass lists every character treated as whitespace when counting
// characters and detecting sentence ends.
const whitespaceClass = `[\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

var (
	// A word is a run of ASCII word characters that may contain apostrophes.
	// "don't" is one word, "well-known" is two.
	wordRegex = regexp.MustCompile(`\b[\w']+\b`)

	// A sentence ends with . ? or ! right after a word character, followed
	// by whitespace or the end of the text. Abbreviations such as "e.g. "
	// count as sentence ends and quoted endings like `end."` do not.
	sentenceRegex = regexp.MustCompile(`\w[.?!](?:` + whitespaceClass + `|$)`)
)

// LetterDensityEntry is the number of times one letter occurs in a text.
type LetterDensityEntry struct {
	Letter string `json:"letter" yaml:"letter"` // Uppercase A-Z
	Count  int    `json:"count" yaml:"count"`
}

// IsWhitespace reports whether r is counted as whitespace.
func IsWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}

// CountCharacters returns the length of text in UTF-16 code units. When
// excludeWhitespace is set, whitespace characters are removed first.
func CountCharacters(text string, excludeWhitespace bool) int {
	if excludeWhitespace {
		text = strings.Map(func(r rune) rune {
			if IsWhitespace(r) {
				return -1
			}
			return r
		}, text)
	}

	n := 0
	for _, r := range text {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// CountWords returns the number of words in text.
func CountWords(text string) int {
	return len(wordRegex.FindAllStringIndex(text, -1))
}

// CountSentences returns the number of sentence terminators in text.
func CountSentences(text string) int {
	return len(sentenceRegex.FindAllStringIndex(text, -1))
}

// CountLetters returns the number of ASCII letters in text, ignoring case.
func CountLetters(text string) int {
	n := 0
	for i := 0; i < len(text); i++ {
		if isASCIILetter(text[i]) {
			n++
		}
	}
	return n
}

// LetterDensity tallies the ASCII letters in text, case-insensitively.
// Entries are ordered by descending count; letters with equal counts keep
// the order in which they first appear in text.
func LetterDensity(text string) []LetterDensityEntry {
	var (
		order  []byte
		counts = make(map[byte]int)
	)

	for i := 0; i < len(text); i++ {
		c := text[i]
		if !isASCIILetter(c) {
			continue
		}
		if c >= 'a' {
			c -= 'a' - 'A'
		}
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	entries := make([]LetterDensityEntry, 0, len(order))
	for _, c := range order {
		entries = append(entries, LetterDensityEntry{
			Letter: string(c),
			Count:  counts[c],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	return entries
}

// Percentage returns entry's share of totalLetters as a percentage rounded
// to two decimal places. It returns 0 when totalLetters is not positive.
func Percentage(entry LetterDensityEntry, totalLetters int) float64 {
	if totalLetters <= 0 {
		return 0
	}
	p := float64(entry.Count) / float64(totalLetters) * 100
	return math.Round(p*100) / 100
}

// FormatPercentage renders p with two decimals and a percent sign, e.g. "12.50%".
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
