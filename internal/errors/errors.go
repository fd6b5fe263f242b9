package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess        = 0   // Indicates successful execution.
	ExitErrorGeneric   = 1   // Indicates a generic error.
	ExitErrorService   = 2   // Indicates the calculation service rejected the request.
	ExitErrorTransport = 3   // Indicates the service could not be reached or answered garbage.
	ExitErrorConfig    = 4   // Indicates a configuration error.
	ExitErrorCanceled  = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Messages shown to the user when the failure carries no better text.
const (
	GenericServiceMessage   = "An error occurred while calculating."
	GenericTransportMessage = "Could not reach the calculation service."
	MalformedMessage        = "The calculation service returned an unexpected response."
	RenderMessage           = "Could not display the result."
	InFlightMessage         = "A calculation is already in progress."
)

// ErrSubmissionInFlight is returned when a submission is attempted while
// another one has not settled yet.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// TransportError reports that the calculation service could not be reached
// or that its answer could not be read as JSON.
type TransportError struct {
	// Cause is the underlying network or decoding error.
	Cause error
}

// Error returns a message that includes the underlying cause.
func (e TransportError) Error() string {
	if e.Cause == nil {
		return "transport error"
	}
	return "transport error: " + e.Cause.Error()
}

// Unwrap returns the original wrapped error.
func (e TransportError) Unwrap() error { return e.Cause }

// ServiceError reports a response whose status signals failure.
type ServiceError struct {
	// Status is the HTTP status code returned by the service.
	Status int
	// Message is the service-supplied error text. Empty when the body had none.
	Message string
}

// Error returns a formatted message describing the rejection.
func (e ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("service error (status %d)", e.Status)
	}
	return fmt.Sprintf("service error (status %d): %s", e.Status, e.Message)
}

// MalformedResponseError reports a success response whose body does not have
// the shape a calculation result needs.
type MalformedResponseError struct {
	// Field is the JSON path of the offending field.
	Field string
	// Reason explains what is wrong with it.
	Reason string
}

// Error returns a formatted message naming the offending field.
func (e MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response field %q: %s", e.Field, e.Reason)
}

// RenderError encapsulates a failure while building display content from an
// otherwise valid result.
type RenderError struct {
	// Cause is the underlying error that triggered this rendering error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e RenderError) Error() string {
	if e.Cause == nil {
		return "render error"
	}
	return "render error: " + e.Cause.Error()
}

// Unwrap returns the original wrapped error.
func (e RenderError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// UserMessage converts a submission failure into the text shown in the error
// region. Service messages are shown verbatim; every other class gets a
// fixed generic message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		serviceErr   ServiceError
		malformedErr MalformedResponseError
		renderErr    RenderError
		transportErr TransportError
	)
	switch {
	case errors.Is(err, ErrSubmissionInFlight):
		return InFlightMessage
	case errors.As(err, &serviceErr):
		if serviceErr.Message == "" {
			return GenericServiceMessage
		}
		return serviceErr.Message
	case errors.As(err, &malformedErr):
		return MalformedMessage
	case errors.As(err, &renderErr):
		return RenderMessage
	case errors.As(err, &transportErr):
		return GenericTransportMessage
	default:
		return GenericServiceMessage
	}
}

// ExitCode maps an error to the process exit code of the CLI.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		configErr    ConfigError
		serviceErr   ServiceError
		transportErr TransportError
		malformedErr MalformedResponseError
	)
	switch {
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &serviceErr):
		return ExitErrorService
	case errors.As(err, &transportErr), errors.As(err, &malformedErr):
		return ExitErrorTransport
	default:
		return ExitErrorGeneric
	}
}
