package grade

import "github.com/shopspring/decimal"

// SampleCourse is a demo course with both categories at their weight cap.
func SampleCourse() []Assignment {
	return []Assignment{
		NewAssignment("Assignment 1", Formative, decimal.NewFromInt(45), decimal.NewFromInt(15)),
		NewAssignment("Assignment 2", Formative, decimal.NewFromInt(90), decimal.NewFromInt(10)),
		NewAssignment("Assignment 3", Formative, decimal.NewFromInt(45), decimal.NewFromInt(10)),
		NewAssignment("Assignment 4", Formative, decimal.NewFromInt(80), decimal.NewFromInt(15)),
		NewAssignment("Assignment 5", Formative, decimal.NewFromInt(48), decimal.NewFromInt(10)),
		NewAssignment("Midterm", Summative, decimal.NewFromInt(34), decimal.NewFromInt(20)),
		NewAssignment("Final Exam", Summative, decimal.NewFromInt(95), decimal.NewFromInt(20)),
	}
}
