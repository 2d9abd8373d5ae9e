// Package audit provides audit logging for migration runs.
package audit

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Event records one plan build or apply against a switch.
type Event struct {
	ID          string        `json:"id"`
	Timestamp   time.Time     `json:"timestamp"`
	User        string        `json:"user"`
	Switch      string        `json:"switch"`
	Operation   string        `json:"operation"`
	Commands    []string      `json:"commands,omitempty"`
	Warnings    int           `json:"warnings,omitempty"`
	Success     bool          `json:"success"`
	Error       string        `json:"error,omitempty"`
	ExecuteMode bool          `json:"execute_mode"` // true if -x was used
	Duration    time.Duration `json:"duration,omitempty"`
}

// Filter defines criteria for querying audit events
type Filter struct {
	Switch      string
	User        string
	FailureOnly bool
	Limit       int
}

// NewEvent creates a new audit event
func NewEvent(user, sw, operation string) *Event {
	return &Event{
		ID:        generateID(),
		Timestamp: time.Now(),
		User:      user,
		Switch:    sw,
		Operation: operation,
	}
}

// WithCommands records the plan's command sequence
func (e *Event) WithCommands(commands []string) *Event {
	e.Commands = commands
	return e
}

// WithWarnings records how many diagnostics the plan carried
func (e *Event) WithWarnings(n int) *Event {
	e.Warnings = n
	return e
}

// WithSuccess marks the event as successful
func (e *Event) WithSuccess() *Event {
	e.Success = true
	return e
}

// WithError marks the event as failed
func (e *Event) WithError(err error) *Event {
	e.Success = false
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// WithExecuteMode marks if execute mode was used
func (e *Event) WithExecuteMode(execute bool) *Event {
	e.ExecuteMode = execute
	return e
}

// WithDuration sets the operation duration
func (e *Event) WithDuration(d time.Duration) *Event {
	e.Duration = d
	return e
}

func generateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return time.Now().Format("20060102150405.000000000")
	}
	return hex.EncodeToString(b)
}
