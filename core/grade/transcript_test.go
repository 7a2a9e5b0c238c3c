package grade_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/tests"
)

const (
	columns = "Assignment          Type            Score(%)    Weight (%)\n"
	rule    = "-----------------------------------------------------------\n"
)

var sampleRows = map[string]string{
	"Assignment 1": "Assignment 1       Formative      45         15        \n",
	"Assignment 2": "Assignment 2       Formative      90         10        \n",
	"Assignment 3": "Assignment 3       Formative      45         10        \n",
	"Assignment 4": "Assignment 4       Formative      80         15        \n",
	"Assignment 5": "Assignment 5       Formative      48         10        \n",
	"Midterm":      "Midterm            Summative      34         20        \n",
	"Final Exam":   "Final Exam         Summative      95         20        \n",
}

func transcript(header string, rows ...string) string {
	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(columns)
	b.WriteString(rule)
	for _, r := range rows {
		b.WriteString(sampleRows[r])
	}
	b.WriteString(rule)
	return b.String()
}

func TestLedger_WriteTranscript(t *testing.T) {
	ascending := []string{"Midterm", "Assignment 1", "Assignment 3", "Assignment 5", "Assignment 4", "Assignment 2", "Final Exam"}
	descending := []string{"Final Exam", "Assignment 2", "Assignment 4", "Assignment 5", "Assignment 1", "Assignment 3", "Midterm"}

	tests := []struct {
		name  string
		order grade.Order
		want  string
	}{
		{name: "descending", order: grade.OrderDescending, want: transcript("Transcript Breakdown (Descending Order):", descending...)},
		{name: "ascending", order: grade.OrderAscending, want: transcript("Transcript Breakdown (Ascending Order):", ascending...)},
		{name: "unknown order sorts ascending", order: "sideways", want: transcript("Transcript Breakdown (Sideways Order):", ascending...)},
		{name: "only lowercase descending is special", order: "DESCENDING", want: transcript("Transcript Breakdown (Descending Order):", ascending...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := testutil.SampleLedger().WriteTranscript(&buf, tt.order); err != nil {
				t.Fatalf("WriteTranscript() unexpected error = %v", err)
			}
			testutil.CheckText(t, buf.String(), tt.want)
		})
	}
}

func TestLedger_WriteTranscript_emptyLedger(t *testing.T) {
	var buf bytes.Buffer
	if err := grade.NewLedger().WriteTranscript(&buf, grade.OrderAscending); err != nil {
		t.Fatalf("WriteTranscript() unexpected error = %v", err)
	}
	testutil.CheckText(t, buf.String(), transcript("Transcript Breakdown (Ascending Order):"))
}

func TestLedger_Sorted_reverse(t *testing.T) {
	l := testutil.CreateLedger(t,
		[4]string{"Q1", "Formative", "61", "10"},
		[4]string{"Q2", "Formative", "12.5", "10"},
		[4]string{"Exam", "Summative", "99", "20"},
		[4]string{"Q3", "Formative", "74", "10"},
		[4]string{"Mid", "Summative", "3", "20"},
	)
	asc := names(l.Sorted(grade.OrderAscending))
	desc := names(l.Sorted(grade.OrderDescending))
	if len(asc) != len(desc) {
		t.Fatalf("Sorted() lengths differ: %v, %v", asc, desc)
	}
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("Sorted() ascending %v is not the reverse of descending %v", asc, desc)
		}
	}
}

func TestLedger_Sorted_stable(t *testing.T) {
	l := testutil.CreateLedger(t,
		[4]string{"first", "Formative", "50", "10"},
		[4]string{"low", "Formative", "10", "10"},
		[4]string{"second", "Summative", "50", "10"},
		[4]string{"third", "Formative", "50.0", "10"},
	)
	if got := strings.Join(names(l.Sorted(grade.OrderAscending)), ","); got != "low,first,second,third" {
		t.Errorf("Sorted(ascending) = %s", got)
	}
	if got := strings.Join(names(l.Sorted(grade.OrderDescending)), ","); got != "first,second,third,low" {
		t.Errorf("Sorted(descending) = %s", got)
	}
}

func TestLedger_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := testutil.SampleLedger().WriteReport(&buf, grade.OrderDescending); err != nil {
		t.Fatalf("WriteReport() unexpected error = %v", err)
	}
	want := "Course Progression: Passed\n" +
		"Assignments eligible for resubmission:\n" +
		"Assignment 1 with a score of 45%\n" +
		"Assignment 3 with a score of 45%\n" +
		"Assignment 5 with a score of 48%\n" +
		transcript("Transcript Breakdown (Descending Order):",
			"Final Exam", "Assignment 2", "Assignment 4", "Assignment 5", "Assignment 1", "Assignment 3", "Midterm")
	testutil.CheckText(t, buf.String(), want)
}

func TestLedger_WriteReport_allPassed(t *testing.T) {
	l := testutil.CreateLedger(t,
		[4]string{"Essay", "Formative", "72.5", "60"},
		[4]string{"Exam", "Summative", "40", "40"},
	)
	var buf bytes.Buffer
	if err := l.WriteReport(&buf, grade.OrderAscending); err != nil {
		t.Fatalf("WriteReport() unexpected error = %v", err)
	}
	want := "Course Progression: Failed - Retake Required\n" +
		"All formative assignments passed.\n" +
		"Transcript Breakdown (Ascending Order):\n" +
		columns + rule +
		"Exam               Summative      40         40        \n" +
		"Essay              Formative      72.5       60        \n" +
		rule
	testutil.CheckText(t, buf.String(), want)
}

func TestLedger_WriteReport_policyViolation(t *testing.T) {
	l := testutil.CreateLedger(t, [4]string{"Final", "Summative", "90", "45"})
	var buf bytes.Buffer
	if err := l.WriteReport(&buf, grade.OrderAscending); !grade.IsPolicyViolation(err) {
		t.Fatalf("WriteReport() error = %v, want a PolicyViolation", err)
	}
	if buf.Len() != 0 {
		t.Errorf("WriteReport() wrote %q before failing", buf.String())
	}
}
