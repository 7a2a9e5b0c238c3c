package grade

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport writes the progression status, the resubmission status and the transcript.
// Nothing is written if the totals cannot be computed.
func (l *Ledger) WriteReport(w io.Writer, order Order) error {
	progression, err := l.CheckProgression()
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Course Progression: %s\n", progression)
	writeResubmission(&b, l.CheckResubmissionEligibility())
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	return l.WriteTranscript(w, order)
}

// WriteResubmission writes the resubmission status lines.
func WriteResubmission(w io.Writer, r Resubmission) error {
	var b strings.Builder
	writeResubmission(&b, r)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeResubmission(b *strings.Builder, r Resubmission) {
	switch r := r.(type) {
	case AllPassed:
		b.WriteString("All formative assignments passed.\n")
	case Pending:
		b.WriteString("Assignments eligible for resubmission:\n")
		for _, a := range r.Assignments {
			fmt.Fprintf(b, "%s with a score of %s%%\n", a.Name, a.Score)
		}
	}
}
