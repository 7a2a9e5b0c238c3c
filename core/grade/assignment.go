package grade

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Assignment is a graded piece of work. Score and Weight are percentages and are stored as given.
type Assignment struct {
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Score    decimal.Decimal `json:"score"`
	Weight   decimal.Decimal `json:"weight"`
}

func NewAssignment(name string, category Category, score, weight decimal.Decimal) Assignment {
	return Assignment{
		Name:     name,
		Category: category,
		Score:    score,
		Weight:   weight,
	}
}

// WeightedScore is the score scaled by the weight fraction: score * (weight / 100).
func (a Assignment) WeightedScore() decimal.Decimal {
	return a.Score.Mul(a.Weight).Div(hundred)
}
