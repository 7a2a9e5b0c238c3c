package grade

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Order of the transcript rows by score. Only OrderDescending is special-cased,
// any other value sorts ascending.
type Order string

const (
	OrderAscending  Order = "ascending"
	OrderDescending Order = "descending"
)

const (
	transcriptColumns = "Assignment          Type            Score(%)    Weight (%)"
	transcriptRule    = "-----------------------------------------------------------"
)

// Title is the order name with its first letter upper-cased and the rest lower-cased.
func (o Order) Title() string {
	s := string(o)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Sorted returns the assignments stably sorted by score.
func (l *Ledger) Sorted(order Order) []Assignment {
	sorted := l.Assignments()
	desc := order == OrderDescending
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return sorted[i].Score.GreaterThan(sorted[j].Score)
		}
		return sorted[i].Score.LessThan(sorted[j].Score)
	})
	return sorted
}

// WriteTranscript renders the fixed-width transcript table to w.
func (l *Ledger) WriteTranscript(w io.Writer, order Order) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Transcript Breakdown (%s Order):\n", order.Title())
	b.WriteString(transcriptColumns + "\n")
	b.WriteString(transcriptRule + "\n")
	for _, a := range l.Sorted(order) {
		fmt.Fprintf(&b, "%-18s %-14s %-10s %-10s\n", a.Name, a.Category, a.Score, a.Weight)
	}
	b.WriteString(transcriptRule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// DisplayTranscript prints the transcript to stdout.
func (l *Ledger) DisplayTranscript(order Order) error {
	return l.WriteTranscript(os.Stdout, order)
}
