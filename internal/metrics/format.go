package metrics

import (
	"fmt"
	"strings"
)

// Text renders the report as plain text. At most top density rows are
// listed; a non-positive top lists every row.
func (r Report) Text(top int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total Characters: %d\n", r.Characters)
	fmt.Fprintf(&b, "Total Words:      %d\n", r.Words)
	fmt.Fprintf(&b, "Total Sentences:  %d\n", r.Sentences)
	fmt.Fprintf(&b, "Total Letters:    %d\n", r.Letters)
	b.WriteString("\nLetter Density\n")

	rows := r.Top(top)
	if len(rows) == 0 {
		b.WriteString("-\n")
		return b.String()
	}

	for _, row := range rows {
		fmt.Fprintf(&b, "%s  %d (%s)\n", row.Letter, row.Count, row.Display)
	}
	if hidden := len(r.Density) - len(rows); hidden > 0 {
		fmt.Fprintf(&b, "... %d more\n", hidden)
	}

	return b.String()
}
