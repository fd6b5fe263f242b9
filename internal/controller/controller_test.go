package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/agbru/intcalc/internal/calc"
	"github.com/agbru/intcalc/internal/chart"
	"github.com/agbru/intcalc/internal/client"
	apperrors "github.com/agbru/intcalc/internal/errors"
	"github.com/agbru/intcalc/internal/page"
	"github.com/agbru/intcalc/internal/render"
	fake "github.com/agbru/intcalc/internal/testutil"
	"github.com/agbru/intcalc/internal/typeset"
)

type stubRenderer struct {
	err   error
	panic any
	calls int
}

func (s *stubRenderer) Render(context.Context, *calc.Result, calc.Request) error {
	s.calls++
	if s.panic != nil {
		panic(s.panic)
	}
	return s.err
}

type stubSubmitter struct {
	res *calc.Result
	err error
}

func (s stubSubmitter) Submit(context.Context, calc.Request) (*calc.Result, error) {
	return s.res, s.err
}

var squareForm = calc.Values{calc.FieldFunction: "x^2", calc.FieldLower: "0", calc.FieldUpper: "2"}

func assertTriggerRestored(t *testing.T, p *page.Page) {
	t.Helper()
	if !p.Trigger.Enabled() {
		t.Error("trigger should be enabled after the submission settles")
	}
	if got := p.Trigger.Label(); got != page.LabelIdle {
		t.Errorf("trigger label = %q, want %q", got, page.LabelIdle)
	}
}

func TestBegin(t *testing.T) {
	t.Parallel()

	p := page.New()
	p.Error.SetText("old failure")
	p.Error.Show()
	p.Summary.Show()
	p.Steps.Show()

	c := New(p, &stubRenderer{}, stubSubmitter{})
	if err := c.Begin(calc.Request{Function: "x"}); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	if p.Error.Visible() || p.Error.Text() != "" {
		t.Error("error region should be cleared and hidden")
	}
	if p.Summary.Visible() || p.Steps.Visible() {
		t.Error("summary and steps should be hidden")
	}
	if p.Trigger.Enabled() || p.Trigger.Label() != page.LabelPending {
		t.Errorf("trigger = (%v, %q), want disabled %q", p.Trigger.Enabled(), p.Trigger.Label(), page.LabelPending)
	}
	if _, ok := c.State().(Pending); !ok {
		t.Errorf("State() = %v, want pending", c.State())
	}

	if err := c.Begin(calc.Request{}); !errors.Is(err, apperrors.ErrSubmissionInFlight) {
		t.Errorf("second Begin() = %v, want ErrSubmissionInFlight", err)
	}
}

func TestComplete(t *testing.T) {
	t.Parallel()

	okResult := &calc.Result{Result: "1"}
	tests := []struct {
		name        string
		res         *calc.Result
		err         error
		renderer    *stubRenderer
		wantState   string
		wantMessage string
	}{
		{
			name:      "success",
			res:       okResult,
			renderer:  &stubRenderer{},
			wantState: "success",
		},
		{
			name:        "service message shown verbatim",
			err:         apperrors.ServiceError{Status: 400, Message: "X"},
			renderer:    &stubRenderer{},
			wantState:   "failed",
			wantMessage: "X",
		},
		{
			name:        "service failure without message",
			err:         apperrors.ServiceError{Status: 500},
			renderer:    &stubRenderer{},
			wantState:   "failed",
			wantMessage: apperrors.GenericServiceMessage,
		},
		{
			name:        "transport failure",
			err:         apperrors.TransportError{Cause: errors.New("refused")},
			renderer:    &stubRenderer{},
			wantState:   "failed",
			wantMessage: apperrors.GenericTransportMessage,
		},
		{
			name:        "render error",
			res:         okResult,
			renderer:    &stubRenderer{err: errors.New("no canvas")},
			wantState:   "failed",
			wantMessage: apperrors.RenderMessage,
		},
		{
			name:        "render panic",
			res:         okResult,
			renderer:    &stubRenderer{panic: "nil map"},
			wantState:   "failed",
			wantMessage: apperrors.RenderMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := page.New()
			c := New(p, tt.renderer, stubSubmitter{})
			req := calc.Request{Function: "x"}
			if err := c.Begin(req); err != nil {
				t.Fatal(err)
			}
			st := c.Complete(context.Background(), req, tt.res, tt.err)

			if st.String() != tt.wantState || c.State().String() != tt.wantState {
				t.Fatalf("state = %v, want %s", st, tt.wantState)
			}
			assertTriggerRestored(t, p)

			if tt.wantState == "failed" {
				if !p.Error.Visible() || p.Error.Text() != tt.wantMessage {
					t.Errorf("error region = (%v, %q), want visible %q", p.Error.Visible(), p.Error.Text(), tt.wantMessage)
				}
				if p.Summary.Visible() || p.Steps.Visible() {
					t.Error("summary and steps must be hidden on failure")
				}
				if st.(Failed).Message != tt.wantMessage {
					t.Errorf("Failed.Message = %q", st.(Failed).Message)
				}
				return
			}
			if p.Error.Visible() {
				t.Error("error region must be hidden on success")
			}
		})
	}
}

func TestComplete_NoRenderOnFailure(t *testing.T) {
	t.Parallel()

	r := &stubRenderer{}
	c := New(page.New(), r, stubSubmitter{})
	_ = c.Begin(calc.Request{})
	c.Complete(context.Background(), calc.Request{}, nil, apperrors.ServiceError{Status: 400})
	if r.calls != 0 {
		t.Errorf("renderer called %d times on failure", r.calls)
	}
}

func TestSubmit_Observers(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var seen []string
	obs := func(from, to UIState) {
		mu.Lock()
		seen = append(seen, from.String()+">"+to.String())
		mu.Unlock()
	}

	c := New(page.New(), &stubRenderer{}, stubSubmitter{res: &calc.Result{Result: "1"}}, WithObserver(obs))
	if _, err := c.Submit(context.Background(), squareForm); err != nil {
		t.Fatal(err)
	}
	c2 := New(page.New(), &stubRenderer{}, stubSubmitter{err: apperrors.ServiceError{Status: 400, Message: "bad"}}, WithObserver(obs))
	st, err := c2.Submit(context.Background(), squareForm)
	var svc apperrors.ServiceError
	if !errors.As(err, &svc) || st.String() != "failed" {
		t.Errorf("Submit() = (%v, %v)", st, err)
	}

	want := "idle>pending,pending>success,idle>pending,pending>failed"
	if got := strings.Join(seen, ","); got != want {
		t.Errorf("transitions = %s, want %s", got, want)
	}
}

func TestSubmit_RecoversAfterFailure(t *testing.T) {
	t.Parallel()

	p := page.New()
	sub := &switchingSubmitter{errs: []error{apperrors.TransportError{Cause: errors.New("down")}, nil}}
	c := New(p, &stubRenderer{}, sub)

	if st, _ := c.Submit(context.Background(), squareForm); st.String() != "failed" {
		t.Fatalf("first Submit() state = %v", st)
	}
	assertTriggerRestored(t, p)

	if st, err := c.Submit(context.Background(), squareForm); err != nil || st.String() != "success" {
		t.Fatalf("second Submit() = (%v, %v)", st, err)
	}
	assertTriggerRestored(t, p)
	if p.Error.Visible() {
		t.Error("error from the first attempt must be hidden")
	}
}

func TestComplete_RestoresTriggerLabel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		label string
		err   error
	}{
		{"default label after success", page.LabelIdle, nil},
		{"custom label after success", "Integrate", nil},
		{"custom label after failure", "Integrate", apperrors.ServiceError{Status: 400, Message: "bad"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := page.New()
			p.Trigger.Enable(tt.label)
			c := New(p, &stubRenderer{}, stubSubmitter{res: &calc.Result{Result: "1"}, err: tt.err})

			if _, err := c.Submit(context.Background(), squareForm); !errors.Is(err, tt.err) {
				t.Fatalf("Submit() error = %v, want %v", err, tt.err)
			}
			if !p.Trigger.Enabled() || p.Trigger.Label() != tt.label {
				t.Errorf("trigger = (%v, %q), want enabled %q", p.Trigger.Enabled(), p.Trigger.Label(), tt.label)
			}
		})
	}
}

// triggerSubmitter records the page state seen while the request is out.
type triggerSubmitter struct {
	page    *page.Page
	ctrl    *Controller
	enabled bool
	label   string
	state   UIState
	err     error
}

func (s *triggerSubmitter) Submit(context.Context, calc.Request) (*calc.Result, error) {
	s.enabled = s.page.Trigger.Enabled()
	s.label = s.page.Trigger.Label()
	s.state = s.ctrl.State()
	return &calc.Result{Result: "1"}, s.err
}

func TestSubmit_TriggerDisabledWhileOutstanding(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
	}{
		{"success", nil},
		{"transport failure", apperrors.TransportError{Cause: errors.New("down")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := page.New()
			sub := &triggerSubmitter{page: p, err: tt.err}
			sub.ctrl = New(p, &stubRenderer{}, sub)

			if _, err := sub.ctrl.Submit(context.Background(), squareForm); !errors.Is(err, tt.err) {
				t.Fatalf("Submit() error = %v, want %v", err, tt.err)
			}
			if sub.enabled {
				t.Error("trigger should be disabled while the request is outstanding")
			}
			if sub.label != page.LabelPending {
				t.Errorf("trigger label during request = %q, want %q", sub.label, page.LabelPending)
			}
			if _, ok := sub.state.(Pending); !ok {
				t.Errorf("state during request = %v, want pending", sub.state)
			}
			assertTriggerRestored(t, p)
		})
	}
}

type switchingSubmitter struct {
	errs []error
	n    int
}

func (s *switchingSubmitter) Submit(context.Context, calc.Request) (*calc.Result, error) {
	err := s.errs[s.n]
	s.n++
	if err != nil {
		return nil, err
	}
	return &calc.Result{Result: "1"}, nil
}

// TestSubmit_EndToEnd drives a real client, renderer, typesetter and
// charter against a fake service computing x^2 on [0, 2].
func TestSubmit_EndToEnd(t *testing.T) {
	t.Parallel()

	svc := fake.NewService(t, fake.Square())
	p := page.New()
	r := render.New(p, typeset.NewTerminal(), chart.NewTerminal(p.Plot))
	c := New(p, r, client.New(svc.URL))

	st, err := c.Submit(context.Background(), squareForm)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if err := r.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	success, ok := st.(Success)
	if !ok || success.Request.Function != "x^2" {
		t.Fatalf("state = %#v", st)
	}
	assertTriggerRestored(t, p)
	if p.Error.Visible() || !p.Summary.Visible() || !p.Steps.Visible() {
		t.Error("expected error hidden, summary and steps visible")
	}

	summary := p.Summary.Text()
	for _, want := range []string{`\int_{0}^{2} (x^2)`, `\frac{8}{3}`, "2.6667"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary %q should contain %q", summary, want)
		}
	}
	if got := p.Summary.Display()[0]; got != "∫₀² (x²) dx = 8/3 ≈ 2.6667" {
		t.Errorf("typeset summary = %q", got)
	}
	if n := len(p.Steps.Blocks()); n != 3 {
		t.Errorf("steps = %d blocks, want 3", n)
	}

	fig := p.Plot.Figure()
	if fig == nil || len(fig.Series) != 2 {
		t.Fatalf("plot = %+v, want two series", fig)
	}
	if !fig.Series[0].Stroked() || !fig.Series[1].Filled() {
		t.Error("expected a line series and a tozeroy area series")
	}
	if fig.Layout.Title != "Graph of f(x) from 0 to 2" {
		t.Errorf("title = %q", fig.Layout.Title)
	}
}

func TestSubmit_EndToEndServiceError(t *testing.T) {
	t.Parallel()

	svc := fake.NewService(t, fake.Error(http.StatusBadRequest, "Invalid function: sin("))
	p := page.New()
	r := render.New(p, typeset.NewTerminal(), chart.NewTerminal(p.Plot))
	c := New(p, r, client.New(svc.URL))

	if _, err := c.Submit(context.Background(), calc.Values{calc.FieldFunction: "sin("}); err == nil {
		t.Fatal("expected an error")
	}
	assertTriggerRestored(t, p)
	if got := p.Error.Text(); got != "Invalid function: sin(" {
		t.Errorf("error text = %q", got)
	}
	if p.Summary.Visible() || p.Steps.Visible() {
		t.Error("result regions must stay hidden")
	}
}
