package maybe

import (
	"errors"
	"strings"
)

// ErrNoValue is returned when the value of a Nothing is read.
var ErrNoValue = errors.New("the maybe wrapper contains no value")

// ErrProtocolViolation is the message of the Error that replaces a missing
// Maybe returned by a callback.
var ErrProtocolViolation = errors.New("the function passed to maybe.Then returned an uninitialized Maybe; callbacks must always return a constructed Maybe")

// ErrNilFailure is the root cause used when a failure factory returns nil.
var ErrNilFailure = errors.New("the failure factory returned a nil error")

var protocolViolation = NewErrorMessages(ErrProtocolViolation.Error())

// ComputationError is returned when the value of a failed Maybe is read.
type ComputationError struct {
	cause    error
	messages []string
}

func (e *ComputationError) Error() string {
	if e.cause != nil {
		return "an error occurred during a maybe computation: " + e.cause.Error()
	}
	return strings.Join(e.messages, ", ")
}

// Unwrap returns the root cause, so errors.Is and errors.As see through it.
func (e *ComputationError) Unwrap() error {
	return e.cause
}

func (e *ComputationError) Messages() []string {
	return append([]string(nil), e.messages...)
}
