package calc

// Form field names read by BuildRequest.
const (
	FieldFunction = "function"
	FieldLower    = "lower"
	FieldUpper    = "upper"
)

// Form exposes named text fields, the way an HTML form does.
type Form interface {
	Get(name string) string
}

// Values is a map-backed Form.
type Values map[string]string

// Get returns the value of the named field, or "" when absent.
func (v Values) Get(name string) string { return v[name] }

// Request is the body of POST /calculate. Values are the raw user text.
type Request struct {
	Function string `json:"function"`
	Lower    string `json:"lower"`
	Upper    string `json:"upper"`
}

// BuildRequest reads the three form fields verbatim. No trimming or numeric
// validation happens here; the service owns that.
func BuildRequest(form Form) Request {
	return Request{
		Function: form.Get(FieldFunction),
		Lower:    form.Get(FieldLower),
		Upper:    form.Get(FieldUpper),
	}
}
