package grade

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/trezcool/gradebook/core"
)

var (
	categoryTag  = "category"
	categoryText = "category must be one of Formative or Summative"
)

// InitValidators registers the grade validators and their translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(categoryTag, categoryValidation)
	core.RegisterCustomTranslation(validate, translator, categoryTag, categoryText)
}

// categoryValidation checks that the field names a valid Category.
func categoryValidation(fl validator.FieldLevel) bool {
	_, err := ParseCategory(fl.Field().String())
	return err == nil
}

// AssignmentInput contains the information needed to record an Assignment.
// Score and Weight are not range-checked.
type AssignmentInput struct {
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category" validate:"required,category"`
	Score    decimal.Decimal `json:"score"`
	Weight   decimal.Decimal `json:"weight"`
}

func (in *AssignmentInput) Validate(validate *validator.Validate) error {
	in.Name = core.CleanString(in.Name)
	in.Category = core.CleanString(in.Category)
	return validate.Struct(in)
}

// Assignment converts a validated input.
func (in AssignmentInput) Assignment() (Assignment, error) {
	cat, err := ParseCategory(in.Category)
	if err != nil {
		return Assignment{}, core.NewValidationError(err, core.FieldError{Field: "category", Error: categoryText})
	}
	return NewAssignment(in.Name, cat, in.Score, in.Weight), nil
}

// NewLedgerFromInputs validates every input and records them in order.
func NewLedgerFromInputs(validate *validator.Validate, inputs []AssignmentInput) (*Ledger, error) {
	l := NewLedger()
	for i := range inputs {
		if err := inputs[i].Validate(validate); err != nil {
			return nil, err
		}
		a, err := inputs[i].Assignment()
		if err != nil {
			return nil, err
		}
		l.Add(a)
	}
	return l, nil
}
