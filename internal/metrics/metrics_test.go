package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samples is shared by the property tests below.
var samples = []string{
	"",
	"   ",
	"a",
	"aabb",
	"Hello world. Nice day!",
	"Don't stop. Well-known facts?! Yes.",
	"tabs\tand\nnewlines\r\nmixed",
	"numbers 3.14 and e.g. abbreviations",
	"unicode: héllo wörld 😀 naïve café",
	"no\u00a0break\u3000ideographic\u2003em",
	"[]^_`{}|~ punctuation only!?",
	"The quick brown fox jumps over the lazy dog. THE QUICK BROWN FOX!",
	"ſ long s and ı dotless i",
}

func TestCountCharacters(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		exclude bool
		want    int
	}{
		{name: "empty", text: "", want: 0},
		{name: "empty excluded", text: "", exclude: true, want: 0},
		{name: "plain sentence", text: "Hello world. Nice day!", want: 22},
		{name: "plain sentence excluded", text: "Hello world. Nice day!", exclude: true, want: 19},
		{name: "only spaces", text: "   ", want: 3},
		{name: "only spaces excluded", text: "   ", exclude: true, want: 0},
		{name: "tabs and newlines excluded", text: "a\tb\nc\r\nd", exclude: true, want: 4},
		{name: "vertical tab and form feed excluded", text: "a\vb\fc", exclude: true, want: 3},
		{name: "non-breaking space excluded", text: "a\u00a0b", exclude: true, want: 2},
		{name: "ideographic space excluded", text: "\u3000x\u2009", exclude: true, want: 1},
		{name: "byte order mark excluded", text: "\ufeffabc", exclude: true, want: 3},
		{name: "accented letters count once", text: "h\u00e9llo", want: 5},
		{name: "astral rune counts two code units", text: "\U0001F600", want: 2},
		{name: "astral rune with spaces excluded", text: " 😀 ", exclude: true, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountCharacters(tt.text, tt.exclude))
		})
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "whitespace only", text: " \t\n ", want: 0},
		{name: "punctuation only", text: "... !!! ???", want: 0},
		{name: "plain sentence", text: "Hello world. Nice day!", want: 4},
		{name: "contraction is one word", text: "don't", want: 1},
		{name: "hyphenated compound splits", text: "well-known", want: 2},
		{name: "surrounding quotes are not part of the word", text: "'quoted'", want: 1},
		{name: "digits and underscores are word characters", text: "route_66 is 4ever", want: 3},
		{name: "multiple spaces", text: "hello     world", want: 2},
		{name: "accented letters split words", text: "café", want: 1},
		{name: "contractions in a sentence", text: "It's 3 o'clock, isn't it?", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.text))
		})
	}
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "no terminator", text: "just some words", want: 0},
		{name: "plain sentences", text: "Hello world. Nice day!", want: 2},
		{name: "question at end", text: "Is it?", want: 1},
		{name: "newline after terminator", text: "One.\nTwo.", want: 2},
		{name: "terminator without following space", text: "Hi!Bye!", want: 1},
		{name: "terminator after space is ignored", text: "Hello .", want: 0},
		{name: "ellipsis counts once", text: "Wait... what?", want: 1},
		{name: "decimal number is not an end", text: "Pi is 3.14 roughly.", want: 1},
		{name: "abbreviation followed by space overcounts", text: "e.g. foo", want: 1},
		{name: "closing quote undercounts", text: `He said "hi." Then left`, want: 0},
		{name: "closing paren undercounts", text: "(done.) next", want: 0},
		{name: "non-breaking space after terminator", text: "End.\u00a0Next.", want: 2},
		{name: "digit before terminator", text: "Chapter 1. Chapter 2.", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountSentences(tt.text))
		})
	}
}

func TestCountLetters(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "plain sentence", text: "Hello world. Nice day!", want: 17},
		{name: "mixed case and digits", text: "abc123XYZ", want: 6},
		{name: "ascii symbols between Z and a are not letters", text: "[]^_`", want: 0},
		{name: "non-ascii letters are ignored", text: "éüñß", want: 0},
		{name: "long s and dotless i are ignored", text: "ſı", want: 0},
		{name: "whitespace never counts", text: " a b ", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountLetters(tt.text))
		})
	}
}

func TestLetterDensity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []LetterDensityEntry
	}{
		{
			name: "empty",
			text: "",
			want: []LetterDensityEntry{},
		},
		{
			name: "whitespace only",
			text: "   ",
			want: []LetterDensityEntry{},
		},
		{
			name: "tie keeps encounter order",
			text: "aabb",
			want: []LetterDensityEntry{{Letter: "A", Count: 2}, {Letter: "B", Count: 2}},
		},
		{
			name: "case insensitive",
			text: "bBaA c",
			want: []LetterDensityEntry{{Letter: "B", Count: 2}, {Letter: "A", Count: 2}, {Letter: "C", Count: 1}},
		},
		{
			name: "sorted by count",
			text: "xyy zzz",
			want: []LetterDensityEntry{{Letter: "Z", Count: 3}, {Letter: "Y", Count: 2}, {Letter: "X", Count: 1}},
		},
		{
			name: "ties after a higher count stay in encounter order",
			text: "qpq rs",
			want: []LetterDensityEntry{
				{Letter: "Q", Count: 2},
				{Letter: "P", Count: 1},
				{Letter: "R", Count: 1},
				{Letter: "S", Count: 1},
			},
		},
		{
			name: "non-ascii letters are skipped",
			text: "ſé a",
			want: []LetterDensityEntry{{Letter: "A", Count: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LetterDensity(tt.text)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		count int
		total int
		want  float64
	}{
		{name: "half", count: 2, total: 4, want: 50},
		{name: "eighth", count: 1, total: 8, want: 12.5},
		{name: "third rounds down", count: 1, total: 3, want: 33.33},
		{name: "two thirds rounds up", count: 2, total: 3, want: 66.67},
		{name: "whole", count: 7, total: 7, want: 100},
		{name: "zero total is guarded", count: 0, total: 0, want: 0},
		{name: "negative total is guarded", count: 1, total: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(LetterDensityEntry{Letter: "A", Count: tt.count}, tt.total)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "12.50%", FormatPercentage(12.5))
	assert.Equal(t, "50.00%", FormatPercentage(50))
	assert.Equal(t, "100.00%", FormatPercentage(100))
	assert.Equal(t, "33.33%", FormatPercentage(Percentage(LetterDensityEntry{Count: 1}, 3)))
	assert.Equal(t, "0.00%", FormatPercentage(0))
}

func TestHelloWorldScenario(t *testing.T) {
	text := "Hello world. Nice day!"

	assert.Equal(t, 22, CountCharacters(text, false))
	assert.Equal(t, 4, CountWords(text))
	assert.Equal(t, 2, CountSentences(text))
	assert.Equal(t, 17, CountLetters(text))
}

func TestEvenSplitScenario(t *testing.T) {
	report := Analyze("aabb", Options{})

	require.Len(t, report.Density, 2)
	assert.Equal(t, "A", report.Density[0].Letter)
	assert.Equal(t, "B", report.Density[1].Letter)
	assert.Equal(t, "50.00%", report.Density[0].Display)
	assert.Equal(t, "50.00%", report.Density[1].Display)
}

func TestWhitespaceOnlyScenario(t *testing.T) {
	report := Analyze("   ", Options{ExcludeWhitespace: true})

	assert.Equal(t, 0, report.Characters)
	assert.Equal(t, 0, report.Words)
	assert.Equal(t, 0, report.Letters)
	assert.Empty(t, report.Density)
}

func TestCharacterCountWhitespaceProperty(t *testing.T) {
	for _, s := range samples {
		with := CountCharacters(s, false)
		without := CountCharacters(s, true)
		hasWhitespace := strings.IndexFunc(s, IsWhitespace) >= 0

		assert.GreaterOrEqual(t, with, without, "text %q", s)
		assert.Equal(t, !hasWhitespace, with == without, "text %q", s)
	}
}

func TestDensitySumsToLetterCount(t *testing.T) {
	for _, s := range samples {
		sum := 0
		for _, e := range LetterDensity(s) {
			sum += e.Count
		}
		assert.Equal(t, CountLetters(s), sum, "text %q", s)
	}
}

func TestDensityOrderedAndUnique(t *testing.T) {
	for _, s := range samples {
		entries := LetterDensity(s)
		seen := make(map[string]bool)
		for i, e := range entries {
			assert.False(t, seen[e.Letter], "duplicate letter %s in %q", e.Letter, s)
			seen[e.Letter] = true

			require.Len(t, e.Letter, 1)
			assert.True(t, e.Letter[0] >= 'A' && e.Letter[0] <= 'Z', "letter %q", e.Letter)
			assert.Positive(t, e.Count)

			if i > 0 {
				assert.LessOrEqual(t, e.Count, entries[i-1].Count, "text %q", s)
			}
		}
	}
}

func TestMetricsAreIdempotent(t *testing.T) {
	for _, s := range samples {
		for _, exclude := range []bool{false, true} {
			opts := Options{ExcludeWhitespace: exclude}
			assert.Equal(t, Analyze(s, opts), Analyze(s, opts), "text %q", s)
		}
	}
}

func TestExcludeWhitespaceOnlyAffectsCharacters(t *testing.T) {
	for _, s := range samples {
		with := Analyze(s, Options{ExcludeWhitespace: false})
		without := Analyze(s, Options{ExcludeWhitespace: true})

		assert.Equal(t, with.Words, without.Words, "text %q", s)
		assert.Equal(t, with.Sentences, without.Sentences, "text %q", s)
		assert.Equal(t, with.Letters, without.Letters, "text %q", s)
		assert.Equal(t, with.Density, without.Density, "text %q", s)
	}
}

func TestReportTop(t *testing.T) {
	report := Analyze("abcdefg aa bb", Options{})
	require.Len(t, report.Density, 7)

	assert.Len(t, report.Top(5), 5)
	assert.Len(t, report.Top(0), 7)
	assert.Len(t, report.Top(-1), 7)
	assert.Len(t, report.Top(100), 7)
	assert.Equal(t, "A", report.Top(1)[0].Letter)
}
