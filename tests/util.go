package testutil

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/shopspring/decimal"

	"github.com/trezcool/gradebook/core/grade"
)

// CreateAssignment parses score and weight, failing the test on bad input.
func CreateAssignment(t *testing.T, name string, cat grade.Category, score, weight string) grade.Assignment {
	t.Helper()
	s, err := decimal.NewFromString(score)
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	w, err := decimal.NewFromString(weight)
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	return grade.NewAssignment(name, cat, s, w)
}

// CreateLedger records each {name, category, score, weight} row in order.
func CreateLedger(t *testing.T, rows ...[4]string) *grade.Ledger {
	t.Helper()
	l := grade.NewLedger()
	for _, row := range rows {
		cat, err := grade.ParseCategory(row[1])
		if err != nil {
			t.Fatalf("CreateLedger() failed: %v", err)
		}
		l.Add(CreateAssignment(t, row[0], cat, row[2], row[3]))
	}
	return l
}

func SampleLedger() *grade.Ledger {
	return grade.NewLedger(grade.SampleCourse()...)
}

// CheckText fails the test with a unified diff when got differs from want.
func CheckText(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	t.Errorf("text mismatch:\n%s", strings.TrimRight(diff, "\n"))
}
