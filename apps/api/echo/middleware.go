package echoapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/grade"
)

const ledgerCtxKey = "ledger"

var errLedgerNotFoundInCtx = errors.New("ledger not found in echo.Context")

type ledgerRequest struct {
	Assignments []grade.AssignmentInput `json:"assignments"`
}

// ledgerMiddleware binds the request body into a fresh grade.Ledger for the handler.
func ledgerMiddleware(validate *validator.Validate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			var data ledgerRequest
			if err := ctx.Bind(&data); err != nil {
				return errors.Wrap(err, "binding ledger request")
			}
			ledger, err := grade.NewLedgerFromInputs(validate, data.Assignments)
			if err != nil {
				return err
			}
			ctx.Set(ledgerCtxKey, ledger)
			return next(ctx)
		}
	}
}

func getContextLedger(ctx echo.Context) (*grade.Ledger, error) {
	ledger, ok := ctx.Get(ledgerCtxKey).(*grade.Ledger)
	if !ok {
		return nil, errLedgerNotFoundInCtx
	}
	return ledger, nil
}
