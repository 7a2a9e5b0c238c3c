package grade

import "github.com/shopspring/decimal"

// Curriculum policy, in percent.
var (
	FormativeWeightCap = decimal.NewFromInt(60)
	SummativeWeightCap = decimal.NewFromInt(40)

	FormativePassMark = decimal.NewFromInt(30)
	SummativePassMark = decimal.NewFromInt(20)

	// formative work scoring below this may be resubmitted
	ResubmissionThreshold = decimal.NewFromInt(50)
)

// Progression is the course outcome derived from the weighted totals.
type Progression int

const (
	Failed Progression = iota
	Passed
)

func (p Progression) String() string {
	if p == Passed {
		return "Passed"
	}
	return "Failed - Retake Required"
}

func (p Progression) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
