package grade

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Ledger is a student's ordered record of graded assignments.
// Weight caps are only checked when totals are computed, not when assignments are added.
type Ledger struct {
	assignments []Assignment
}

func NewLedger(assignments ...Assignment) *Ledger {
	l := &Ledger{}
	for _, a := range assignments {
		l.Add(a)
	}
	return l
}

func (l *Ledger) Add(a Assignment) {
	l.assignments = append(l.assignments, a)
}

// Assignments returns a copy of the recorded assignments, in insertion order.
func (l *Ledger) Assignments() []Assignment {
	out := make([]Assignment, len(l.assignments))
	copy(out, l.assignments)
	return out
}

func (l *Ledger) Len() int { return len(l.assignments) }

// Totals holds the weighted-score and weight sums per category.
type Totals struct {
	Formative       decimal.Decimal `json:"formative"`
	Summative       decimal.Decimal `json:"summative"`
	FormativeWeight decimal.Decimal `json:"formative_weight"`
	SummativeWeight decimal.Decimal `json:"summative_weight"`
}

// Totals aggregates all assignments and enforces the category weight caps.
func (l *Ledger) Totals() (Totals, error) {
	var t Totals
	for _, a := range l.assignments {
		switch a.Category {
		case Formative:
			t.Formative = t.Formative.Add(a.WeightedScore())
			t.FormativeWeight = t.FormativeWeight.Add(a.Weight)
		case Summative:
			t.Summative = t.Summative.Add(a.WeightedScore())
			t.SummativeWeight = t.SummativeWeight.Add(a.Weight)
		default:
			return Totals{}, errors.Wrapf(ErrUnknownCategory, "assignment %q", a.Name)
		}
	}

	if t.FormativeWeight.GreaterThan(FormativeWeightCap) {
		return Totals{}, &PolicyViolation{Category: Formative, Weight: t.FormativeWeight, Limit: FormativeWeightCap}
	}
	if t.SummativeWeight.GreaterThan(SummativeWeightCap) {
		return Totals{}, &PolicyViolation{Category: Summative, Weight: t.SummativeWeight, Limit: SummativeWeightCap}
	}
	return t, nil
}

// CalculateTotals returns the weighted formative and summative totals.
func (l *Ledger) CalculateTotals() (formative, summative decimal.Decimal, err error) {
	t, err := l.Totals()
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return t.Formative, t.Summative, nil
}

func (l *Ledger) CheckProgression() (Progression, error) {
	formative, summative, err := l.CalculateTotals()
	if err != nil {
		return Failed, err
	}
	if formative.GreaterThanOrEqual(FormativePassMark) && summative.GreaterThanOrEqual(SummativePassMark) {
		return Passed, nil
	}
	return Failed, nil
}

// Resubmission is either AllPassed or Pending.
type Resubmission interface {
	isResubmission()
}

// AllPassed means no formative assignment is eligible for resubmission.
type AllPassed struct{}

// Pending lists the formative assignments eligible for resubmission, in insertion order.
type Pending struct {
	Assignments []Assignment
}

func (AllPassed) isResubmission() {}
func (Pending) isResubmission()   {}

// CheckResubmissionEligibility does not check weight caps.
func (l *Ledger) CheckResubmissionEligibility() Resubmission {
	var eligible []Assignment
	for _, a := range l.assignments {
		if a.Category == Formative && a.Score.LessThan(ResubmissionThreshold) {
			eligible = append(eligible, a)
		}
	}
	if len(eligible) == 0 {
		return AllPassed{}
	}
	return Pending{Assignments: eligible}
}
