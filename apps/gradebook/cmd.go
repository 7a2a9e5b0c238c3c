package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core/grade"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	out          io.Writer
	validate     *validator.Validate
	translator   ut.Translator
	defaultOrder grade.Order
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  report -a NAME:CATEGORY:SCORE:WEIGHT... [-order ascending|descending] - progression, resubmissions & transcript")
	fmt.Fprintln(cli.out, "  totals -a NAME:CATEGORY:SCORE:WEIGHT... - weighted formative & summative totals")
	fmt.Fprintln(cli.out, "  progression -a NAME:CATEGORY:SCORE:WEIGHT... - course progression status")
	fmt.Fprintln(cli.out, "  resubmissions -a NAME:CATEGORY:SCORE:WEIGHT... - formative assignments eligible for resubmission")
	fmt.Fprintln(cli.out, "  transcript -a NAME:CATEGORY:SCORE:WEIGHT... [-order ascending|descending] - transcript sorted by score")
	fmt.Fprintln(cli.out, "  sample [-order ascending|descending] - report for the sample course")
}

func (cli *commandLine) newFlagSet(name string) (*flag.FlagSet, *assignmentsFlag, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	assignments := &assignmentsFlag{validate: cli.validate, translator: cli.translator}
	fs.Var(assignments, "a", "An assignment as NAME:CATEGORY:SCORE:WEIGHT. Repeat for each assignment.")
	order := fs.String("order", string(cli.defaultOrder), "Transcript order by score: ascending or descending.")
	return fs, assignments, order
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	cmd := args[1]
	switch cmd {
	case "report", "totals", "progression", "resubmissions", "transcript", "sample":
	default:
		cli.printUsage()
		return errHelp
	}

	fs, assignments, order := cli.newFlagSet(cmd)
	if err := fs.Parse(args[2:]); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}

	var ledger *grade.Ledger
	if cmd == "sample" {
		ledger = grade.NewLedger(grade.SampleCourse()...)
		cmd = "report"
	} else {
		if len(assignments.assignments) == 0 {
			fs.Usage()
			return errHelp
		}
		ledger = grade.NewLedger(assignments.assignments...)
	}

	switch cmd {
	case "report":
		return ledger.WriteReport(cli.out, grade.Order(*order))
	case "totals":
		return cli.totals(ledger)
	case "progression":
		return cli.progression(ledger)
	case "resubmissions":
		return grade.WriteResubmission(cli.out, ledger.CheckResubmissionEligibility())
	default: // transcript
		return ledger.WriteTranscript(cli.out, grade.Order(*order))
	}
}

func (cli *commandLine) totals(ledger *grade.Ledger) error {
	totals, err := ledger.Totals()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Formative: %s (weight %s%%)\n", totals.Formative, totals.FormativeWeight)
	fmt.Fprintf(cli.out, "Summative: %s (weight %s%%)\n", totals.Summative, totals.SummativeWeight)
	return nil
}

func (cli *commandLine) progression(ledger *grade.Ledger) error {
	progression, err := ledger.CheckProgression()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Course Progression: %s\n", progression)
	return nil
}

func newCommandLine(validate *validator.Validate, translator ut.Translator, order string) *commandLine {
	return &commandLine{
		out:          os.Stdout,
		validate:     validate,
		translator:   translator,
		defaultOrder: grade.Order(order),
	}
}
