package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// ValidationError reports a rejected write field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

// MalformedInputError reports a query parameter that could not be parsed.
type MalformedInputError struct {
	Param string
	Value string
	Err   error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s %q is malformed", e.Param, e.Value)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// CapabilityFailure means the scorer could not score a text.
type CapabilityFailure struct {
	Reason string
	Err    error
}

func (e *CapabilityFailure) Error() string {
	if e.Err != nil {
		return "sentiment: " + e.Reason + ": " + e.Err.Error()
	}
	return "sentiment: " + e.Reason
}

func (e *CapabilityFailure) Unwrap() error { return e.Err }
