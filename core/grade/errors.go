package grade

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// PolicyViolation is returned when the combined weight of a category exceeds its cap.
type PolicyViolation struct {
	Category Category
	Weight   decimal.Decimal
	Limit    decimal.Decimal
}

func (pv *PolicyViolation) Error() string {
	return fmt.Sprintf("%s weight exceeds limit", strings.ToLower(pv.Category.String()))
}

// Detail also reports the accumulated weight and the cap.
func (pv *PolicyViolation) Detail() string {
	return fmt.Sprintf("%s: %s%% > %s%%", pv.Error(), pv.Weight, pv.Limit)
}

func IsPolicyViolation(err error) bool {
	_, ok := errors.Cause(err).(*PolicyViolation)
	return ok
}
