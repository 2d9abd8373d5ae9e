// Package util provides utility functions and common error types.
package util

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across packages
var (
	ErrNotFound      = errors.New("resource not found")
	ErrEmptyOutput   = errors.New("empty command output")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNotConnected  = errors.New("device not connected")
)

// CommandError wraps a failure to run a command on a device with context.
type CommandError struct {
	Host    string
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q on %s: %v", e.Command, e.Host, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a command error
func NewCommandError(host, command string, err error) *CommandError {
	return &CommandError{Host: host, Command: command, Err: err}
}
