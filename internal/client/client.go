package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/intcalc/internal/calc"
	apperrors "github.com/agbru/intcalc/internal/errors"
	"github.com/agbru/intcalc/internal/logging"
	"github.com/agbru/intcalc/internal/metrics"
)

// CalculatePath is the service endpoint, relative to the base URL.
const CalculatePath = "/calculate"

// RequestIDHeader carries the per-submission correlation id.
const RequestIDHeader = "X-Request-ID"

const tracerName = "github.com/agbru/intcalc/internal/client"

// Client talks to the calculation service. At most one submission is in
// flight at a time.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     logging.Logger
	metrics    *metrics.Recorder
	tracer     trace.Tracer

	inFlight atomic.Bool
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each submission. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMetrics records submission outcomes on r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(c *Client) { c.metrics = r }
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimRight(baseURL, "/") + CalculatePath,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logging.NewNopLogger(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the full URL submissions are posted to.
func (c *Client) Endpoint() string { return c.endpoint }

// Submit posts req and returns the validated result. Exactly one HTTP call
// is made; there are no retries. Failures are one of
// apperrors.TransportError, apperrors.ServiceError,
// apperrors.MalformedResponseError or apperrors.ErrSubmissionInFlight.
func (c *Client) Submit(ctx context.Context, req calc.Request) (*calc.Result, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		c.metrics.ObserveSubmission(metrics.OutcomeRejected, 0)
		return nil, apperrors.ErrSubmissionInFlight
	}
	defer c.inFlight.Store(false)

	requestID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, "client.submit", trace.WithAttributes(
		attribute.String("intcalc.request_id", requestID),
		attribute.String("intcalc.function", req.Function),
		attribute.String("intcalc.lower", req.Lower),
		attribute.String("intcalc.upper", req.Upper),
	))
	defer span.End()

	rid := logging.String("request_id", requestID)
	c.logger.Debug("submitting calculation", rid,
		logging.String("endpoint", c.endpoint),
		logging.String("function", req.Function),
		logging.String("lower", req.Lower),
		logging.String("upper", req.Upper),
	)

	start := time.Now()
	res, status, err := c.do(ctx, req, requestID)
	elapsed := time.Since(start)

	outcome := Outcome(err)
	c.metrics.ObserveSubmission(outcome, elapsed)
	span.SetAttributes(attribute.String("intcalc.outcome", outcome))
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		c.logger.Warn("calculation failed", rid,
			logging.String("outcome", outcome),
			logging.Int("status", status),
			logging.Duration("elapsed", elapsed),
			logging.Err(err),
		)
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	c.logger.Info("calculation succeeded", rid,
		logging.String("result", string(res.Result)),
		logging.Int("steps", len(res.Steps)),
		logging.Duration("elapsed", elapsed),
	)
	return res, nil
}

func (c *Client) do(ctx context.Context, req calc.Request, requestID string) (*calc.Result, int, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, 0, apperrors.TransportError{Cause: fmt.Errorf("marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, apperrors.TransportError{Cause: fmt.Errorf("build request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, apperrors.TransportError{Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, apperrors.TransportError{Cause: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, apperrors.ServiceError{
			Status:  resp.StatusCode,
			Message: serviceMessage(body),
		}
	}

	res, err := calc.DecodeResult(body)
	if err != nil {
		var malformed apperrors.MalformedResponseError
		if errors.As(err, &malformed) {
			return nil, resp.StatusCode, err
		}
		return nil, resp.StatusCode, apperrors.TransportError{Cause: fmt.Errorf("decode response: %w", err)}
	}
	return res, resp.StatusCode, nil
}

type errorBody struct {
	Error *string `json:"error"`
}

// serviceMessage extracts the "error" field of a failure body. Any other
// shape yields "".
func serviceMessage(body []byte) string {
	var eb errorBody
	if json.Unmarshal(body, &eb) != nil || eb.Error == nil {
		return ""
	}
	return *eb.Error
}

// Outcome classifies a Submit error for metrics and logs.
func Outcome(err error) string {
	var (
		svc       apperrors.ServiceError
		malformed apperrors.MalformedResponseError
	)
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, apperrors.ErrSubmissionInFlight):
		return metrics.OutcomeRejected
	case apperrors.IsContextError(err):
		return metrics.OutcomeCanceled
	case errors.As(err, &svc):
		return metrics.OutcomeService
	case errors.As(err, &malformed):
		return metrics.OutcomeMalformed
	}
	return metrics.OutcomeTransport
}
