package metrics

// Options controls how a Report is derived.
type Options struct {
	ExcludeWhitespace bool `json:"exclude_whitespace" yaml:"exclude_whitespace"`
}

// DensityRow is a LetterDensityEntry with its share of all letters.
type DensityRow struct {
	LetterDensityEntry `yaml:",inline"`
	Percent            float64 `json:"percent" yaml:"percent"`
	Display            string  `json:"display" yaml:"display"` // e.g. "12.50%"
}

// Report holds every metric derived from one text.
type Report struct {
	Characters int          `json:"characters" yaml:"characters"`
	Words      int          `json:"words" yaml:"words"`
	Sentences  int          `json:"sentences" yaml:"sentences"`
	Letters    int          `json:"letters" yaml:"letters"`
	Density    []DensityRow `json:"density" yaml:"density"`
}

// Analyze recomputes every metric for text from scratch.
func Analyze(text string, opts Options) Report {
	letters := CountLetters(text)
	entries := LetterDensity(text)

	rows := make([]DensityRow, 0, len(entries))
	for _, e := range entries {
		p := Percentage(e, letters)
		rows = append(rows, DensityRow{
			LetterDensityEntry: e,
			Percent:            p,
			Display:            FormatPercentage(p),
		})
	}

	return Report{
		Characters: CountCharacters(text, opts.ExcludeWhitespace),
		Words:      CountWords(text),
		Sentences:  CountSentences(text),
		Letters:    letters,
		Density:    rows,
	}
}

// Top returns at most n density rows. A non-positive n returns all rows.
func (r Report) Top(n int) []DensityRow {
	if n <= 0 || n >= len(r.Density) {
		return r.Density
	}
	return r.Density[:n]
}
