package maybe

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Error is the immutable failure payload of a Maybe in the Error state. It
// carries either a root cause together with the flattened messages of its
// chain, or a plain list of messages.
type Error struct {
	id        uuid.UUID
	createdAt time.Time
	cause     error
	messages  []string
}

// NewError records cause as the root cause. Its chain is flattened into
// messages, outermost first; aggregate errors contribute every inner chain in
// order.
func NewError(cause error) *Error {
	if IsNil(cause) {
		return NewErrorMessages()
	}
	return &Error{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		cause:     cause,
		messages:  flatten(cause, nil),
	}
}

func NewErrorMessages(messages ...string) *Error {
	return &Error{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		messages:  append([]string(nil), messages...),
	}
}

func Errorf(format string, args ...any) *Error {
	return NewErrorMessages(fmt.Sprintf(format, args...))
}

func flatten(err error, into []string) []string {
	for !IsNil(err) {
		if inner, ok := aggregated(err); ok {
			for _, e := range inner {
				into = flatten(e, into)
			}
			return into
		}
		into = append(into, err.Error())
		err = errors.Unwrap(err)
	}
	return into
}

func (e *Error) ID() uuid.UUID {
	return e.id
}

func (e *Error) CreatedAt() time.Time {
	return e.createdAt
}

// Cause returns the root cause, or nil for message-only errors.
func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Messages() []string {
	return append([]string(nil), e.messages...)
}

func (e *Error) FirstMessage() (string, bool) {
	if len(e.messages) > 0 {
		return e.messages[0], true
	}
	if e.cause != nil {
		return e.cause.Error(), true
	}
	return "", false
}

// Err returns the error raised when a failed Maybe is unwrapped.
func (e *Error) Err() error {
	return &ComputationError{
		cause:    e.cause,
		messages: e.messages,
	}
}

// Throw panics with the same error Err returns.
func (e *Error) Throw() {
	panic(e.Err())
}

func (e *Error) Error() string {
	return strings.Join(e.messages, "\n")
}

func (e *Error) Unwrap() error {
	return e.cause
}
