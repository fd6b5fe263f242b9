package calc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Result is the body of a successful POST /calculate response.
type Result struct {
	Result      Numeric  `json:"result"`
	LatexResult string   `json:"latex_result"`
	Steps       []string `json:"steps"`
	PlotData    PlotData `json:"plot_data"`
}

// PlotData carries the sampled curve and the shaded sub-range.
// X/Y and XArea/YArea are pairwise equal in length and already ordered.
type PlotData struct {
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	XArea []float64 `json:"x_area"`
	YArea []float64 `json:"y_area"`
}

// Numeric keeps the service's numeric value as text, so no precision is lost.
// It accepts either a JSON string or a JSON number.
type Numeric string

// UnmarshalJSON implements json.Unmarshaler.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("numeric value is null")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("numeric value must be a string or number: %v", err)
	}
	*n = Numeric(num.String())
	return nil
}

// MarshalJSON implements json.Marshaler. The value is written as a string.
func (n Numeric) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

// Float parses the value. ok is false for text that is not a finite decimal
// (symbolic answers such as "oo" or complex results).
func (n Numeric) Float() (float64, bool) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Rounded formats the value with 4 decimal places for display. Text that is
// not a finite decimal is returned unchanged.
func (n Numeric) Rounded() string {
	f, ok := n.Float()
	if !ok {
		return string(n)
	}
	return strconv.FormatFloat(f, 'f', 4, 64)
}
