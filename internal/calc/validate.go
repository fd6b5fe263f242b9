package calc

import (
	"encoding/json"
	"errors"
	"fmt"

	apperrors "github.com/agbru/intcalc/internal/errors"
)

// wireResult mirrors Result with pointers so absent fields can be told apart
// from zero values.
type wireResult struct {
	Result      *Numeric  `json:"result"`
	LatexResult *string   `json:"latex_result"`
	Steps       *[]string `json:"steps"`
	PlotData    *wirePlot `json:"plot_data"`
}

type wirePlot struct {
	X     *[]float64 `json:"x"`
	Y     *[]float64 `json:"y"`
	XArea *[]float64 `json:"x_area"`
	YArea *[]float64 `json:"y_area"`
}

// DecodeResult parses a success body and checks it has the shape the
// renderer needs. Syntax errors are returned unchanged so the caller can
// classify them as transport failures; shape problems come back as
// apperrors.MalformedResponseError.
func DecodeResult(body []byte) (*Result, error) {
	var w wireResult
	if err := json.Unmarshal(body, &w); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, apperrors.MalformedResponseError{
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}
		}
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, err
		}
		// Numeric.UnmarshalJSON rejections.
		return nil, apperrors.MalformedResponseError{Field: "result", Reason: err.Error()}
	}
	return w.toResult()
}

func (w wireResult) toResult() (*Result, error) {
	switch {
	case w.Result == nil:
		return nil, missing("result")
	case *w.Result == "":
		return nil, apperrors.MalformedResponseError{Field: "result", Reason: "empty value"}
	case w.LatexResult == nil:
		return nil, missing("latex_result")
	case w.Steps == nil:
		return nil, missing("steps")
	case w.PlotData == nil:
		return nil, missing("plot_data")
	}

	p := w.PlotData
	for _, f := range []struct {
		name string
		v    *[]float64
	}{
		{"plot_data.x", p.X},
		{"plot_data.y", p.Y},
		{"plot_data.x_area", p.XArea},
		{"plot_data.y_area", p.YArea},
	} {
		if f.v == nil {
			return nil, missing(f.name)
		}
	}

	res := &Result{
		Result:      *w.Result,
		LatexResult: *w.LatexResult,
		Steps:       *w.Steps,
		PlotData: PlotData{
			X:     *p.X,
			Y:     *p.Y,
			XArea: *p.XArea,
			YArea: *p.YArea,
		},
	}
	if err := res.PlotData.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

// Validate checks the pairwise length invariants of the plot data.
func (p PlotData) Validate() error {
	if len(p.X) != len(p.Y) {
		return apperrors.MalformedResponseError{
			Field:  "plot_data.y",
			Reason: fmt.Sprintf("length %d does not match x length %d", len(p.Y), len(p.X)),
		}
	}
	if len(p.XArea) != len(p.YArea) {
		return apperrors.MalformedResponseError{
			Field:  "plot_data.y_area",
			Reason: fmt.Sprintf("length %d does not match x_area length %d", len(p.YArea), len(p.XArea)),
		}
	}
	return nil
}

func missing(field string) error {
	return apperrors.MalformedResponseError{Field: field, Reason: "missing"}
}
