package controller

import "github.com/agbru/intcalc/internal/calc"

// UIState is one of Idle, Pending, Success or Failed.
type UIState interface {
	isUIState()
	// String names the state for logs and metrics.
	String() string
}

// Idle is the state before the first submission.
type Idle struct{}

// Pending means a submission is outstanding.
type Pending struct {
	Request calc.Request
}

// Success holds the last rendered result.
type Success struct {
	Result  *calc.Result
	Request calc.Request
}

// Failed holds the message shown to the user and the error behind it.
type Failed struct {
	Message string
	Err     error
}

func (Idle) isUIState()    {}
func (Pending) isUIState() {}
func (Success) isUIState() {}
func (Failed) isUIState()  {}

func (Idle) String() string    { return "idle" }
func (Pending) String() string { return "pending" }
func (Success) String() string { return "success" }
func (Failed) String() string  { return "failed" }
