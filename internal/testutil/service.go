// Package testutil provides a fake calculation service for tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/agbru/intcalc/internal/calc"
)

// Responder decides the answer of the fake service to one request.
type Responder func(req calc.Request) (status int, body []byte)

// Captured is one request seen by the fake service.
type Captured struct {
	Request calc.Request
	Header  http.Header
	Method  string
	Path    string
}

// Service is an httptest server routing POST /calculate to a Responder.
type Service struct {
	*httptest.Server

	mu       sync.Mutex
	captured []Captured
	respond  Responder
	gate     chan struct{}
}

// NewService starts a fake service and registers its shutdown with t.
func NewService(t testing.TB, respond Responder) *Service {
	t.Helper()
	s := &Service{respond: respond}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/calculate", s.calculate)
	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Hold makes the service block every request until the returned release
// function is called.
func (s *Service) Hold() (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gate = gate
	s.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

// Requests returns the requests received so far.
func (s *Service) Requests() []Captured {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Captured(nil), s.captured...)
}

func (s *Service) calculate(w http.ResponseWriter, r *http.Request) {
	var req calc.Request
	_ = json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	s.captured = append(s.captured, Captured{Request: req, Header: r.Header.Clone(), Method: r.Method, Path: r.URL.Path})
	gate := s.gate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	status, body := s.respond(req)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// JSON answers every request with status and body encoded as JSON.
func JSON(status int, body any) Responder {
	blob, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return Raw(status, string(blob))
}

// Raw answers every request with status and a literal body.
func Raw(status int, body string) Responder {
	return func(calc.Request) (int, []byte) { return status, []byte(body) }
}

// Error answers every request with {"error": msg}.
func Error(status int, msg string) Responder {
	return JSON(status, map[string]string{"error": msg})
}

// SquareBody is the service answer for x^2 on [0, 2].
func SquareBody() map[string]any {
	return map[string]any{
		"result":       "2.66666666666667",
		"latex_result": `\frac{8}{3}`,
		"steps": []string{
			`Integrate $$x^2$$ with the power rule`,
			`$$\int x^2 \, dx = \frac{x^3}{3}$$`,
			`Evaluate at the bounds:<br>$$\frac{8}{3} - 0$$`,
		},
		"plot_data": map[string]any{
			"x":      []float64{0, 0.5, 1, 1.5, 2},
			"y":      []float64{0, 0.25, 1, 2.25, 4},
			"x_area": []float64{0, 0.5, 1, 1.5, 2},
			"y_area": []float64{0, 0.25, 1, 2.25, 4},
		},
	}
}

// Square answers every request with SquareBody.
func Square() Responder {
	return JSON(http.StatusOK, SquareBody())
}
