package main

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/kat-co/vala"
	"github.com/shopspring/decimal"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/grade"
)

type argumentError struct {
	msg string
}

func newArgumentError(format string, args ...interface{}) *argumentError {
	return &argumentError{fmt.Sprintf(format, args...)}
}

func (err *argumentError) Error() string {
	return err.msg
}

// assignmentsFlag collects repeated `-a NAME:CATEGORY:SCORE:WEIGHT` values, in order.
// NAME may itself contain colons.
type assignmentsFlag struct {
	validate    *validator.Validate
	translator  ut.Translator
	assignments []grade.Assignment
}

func (f *assignmentsFlag) String() string {
	if f == nil {
		return ""
	}
	vals := make([]string, 0, len(f.assignments))
	for _, a := range f.assignments {
		vals = append(vals, fmt.Sprintf("%s:%s:%s:%s", a.Name, a.Category, a.Score, a.Weight))
	}
	return strings.Join(vals, ",")
}

func (f *assignmentsFlag) Set(val string) error {
	parts := strings.Split(val, ":")
	n := len(parts)
	if err := vala.BeginValidation().Validate(
		vala.GreaterThan(n, 3, "assignment fields"),
	).Check(); err != nil {
		return newArgumentError("%q: expected NAME:CATEGORY:SCORE:WEIGHT", val)
	}

	score, err := decimal.NewFromString(strings.TrimSpace(parts[n-2]))
	if err != nil {
		return newArgumentError("%q: invalid score %q", val, parts[n-2])
	}
	weight, err := decimal.NewFromString(strings.TrimSpace(parts[n-1]))
	if err != nil {
		return newArgumentError("%q: invalid weight %q", val, parts[n-1])
	}

	in := grade.AssignmentInput{
		Name:     strings.Join(parts[:n-3], ":"),
		Category: parts[n-3],
		Score:    score,
		Weight:   weight,
	}
	if err := in.Validate(f.validate); err != nil {
		if vErrs, ok := err.(validator.ValidationErrors); ok {
			return newArgumentError("%q: %s", val, joinFieldErrors(core.FieldErrors(vErrs, f.translator)))
		}
		return err
	}
	a, err := in.Assignment()
	if err != nil {
		return err
	}
	f.assignments = append(f.assignments, a)
	return nil
}

func joinFieldErrors(fldErrs map[string]string) string {
	msgs := make([]string, 0, len(fldErrs))
	for _, fld := range []string{"name", "category"} {
		if msg, ok := fldErrs[fld]; ok {
			msgs = append(msgs, fld+": "+msg)
		}
	}
	return strings.Join(msgs, "; ")
}
