package render

import (
	"fmt"

	"github.com/agbru/intcalc/internal/calc"
)

// FormulaMarkup builds the display-math line shown in the summary panel:
// the integral as submitted, the exact result and its 4-decimal rounding.
func FormulaMarkup(req calc.Request, res *calc.Result) string {
	return fmt.Sprintf(`$$ \int_{%s}^{%s} (%s) \, dx = %s \approx %s $$`,
		req.Lower, req.Upper, req.Function, res.LatexResult, res.Result.Rounded())
}
