package echoapi

import (
	"bytes"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/grade"
)

type ledgerApi struct {
	defaultOrder grade.Order
}

func registerLedgerAPI(g *echo.Group, validate *validator.Validate, defaultOrder grade.Order) {
	api := ledgerApi{defaultOrder: defaultOrder}

	// every endpoint evaluates the posted assignments, nothing is stored
	lg := g.Group("/ledger", ledgerMiddleware(validate))
	lg.POST("/totals", api.totals)
	lg.POST("/progression", api.progression)
	lg.POST("/resubmissions", api.resubmissions)
	lg.POST("/transcript", api.transcript)
	lg.POST("/report", api.report)
}

type (
	progressionResponse struct {
		Status grade.Progression `json:"status"`
		Passed bool              `json:"passed"`
	}

	resubmissionsResponse struct {
		AllPassed   bool               `json:"all_passed"`
		Assignments []grade.Assignment `json:"assignments"`
	}
)

// Handlers

func (api *ledgerApi) totals(ctx echo.Context) error {
	ledger, err := getContextLedger(ctx)
	if err != nil {
		return err
	}
	totals, err := ledger.Totals()
	if err != nil {
		return errors.Wrap(err, "calculating totals")
	}
	return ctx.JSON(http.StatusOK, totals)
}

func (api *ledgerApi) progression(ctx echo.Context) error {
	ledger, err := getContextLedger(ctx)
	if err != nil {
		return err
	}
	progression, err := ledger.CheckProgression()
	if err != nil {
		return errors.Wrap(err, "checking progression")
	}
	return ctx.JSON(http.StatusOK, progressionResponse{Status: progression, Passed: progression == grade.Passed})
}

func (api *ledgerApi) resubmissions(ctx echo.Context) error {
	ledger, err := getContextLedger(ctx)
	if err != nil {
		return err
	}
	resp := resubmissionsResponse{Assignments: []grade.Assignment{}}
	switch r := ledger.CheckResubmissionEligibility().(type) {
	case grade.AllPassed:
		resp.AllPassed = true
	case grade.Pending:
		resp.Assignments = r.Assignments
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *ledgerApi) transcript(ctx echo.Context) error {
	ledger, err := getContextLedger(ctx)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := ledger.WriteTranscript(&buf, bindOrder(ctx, api.defaultOrder)); err != nil {
		return errors.Wrap(err, "writing transcript")
	}
	return ctx.String(http.StatusOK, buf.String())
}

func (api *ledgerApi) report(ctx echo.Context) error {
	ledger, err := getContextLedger(ctx)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := ledger.WriteReport(&buf, bindOrder(ctx, api.defaultOrder)); err != nil {
		return errors.Wrap(err, "writing report")
	}
	return ctx.String(http.StatusOK, buf.String())
}
