package seq

import (
	"errors"
	"iter"
	"slices"

	"github.com/hashicorp/go-multierror"

	"github.com/ib-77/maybe/pkg/maybe"
)

const unspecifiedFailure = "maybe computation failed without a message"

// Lift turns a sequence of Maybe into a Maybe of slice. The source is
// enumerated exactly once.
//
// When any element failed, the result is a single Error combining all of
// them: a *multierror.Error root cause if any failure had a cause (message
// only failures join as one error per message), otherwise the concatenation
// of all messages. Otherwise the result holds the values in order, skipping
// Nothing; an input without values gives an empty slice, not Nothing.
func Lift[T any](source iter.Seq[maybe.Maybe[T]]) maybe.Maybe[[]T] {
	return LiftSlice(slices.Collect(source))
}

func LiftSlice[T any](source []maybe.Maybe[T]) maybe.Maybe[[]T] {
	var causes []error
	var messages []string
	failed := false

	for _, m := range source {
		if !m.IsError() {
			continue
		}
		failed = true

		failure := m.Error()
		if failure.Cause() != nil {
			causes = append(causes, failure.Cause())
			continue
		}
		if msgs := failure.Messages(); len(msgs) > 0 {
			messages = append(messages, msgs...)
		} else {
			messages = append(messages, unspecifiedFailure)
		}
	}

	if failed {
		return maybe.FailWith[[]T](combine(causes, messages))
	}

	values := make([]T, 0, len(source))
	for _, m := range source {
		if m.HasValue() {
			values = append(values, m.ValueOrZero())
		}
	}
	return maybe.From(values)
}

func combine(causes []error, messages []string) *maybe.Error {
	if len(causes) == 0 {
		return maybe.NewErrorMessages(messages...)
	}

	var aggregate *multierror.Error
	aggregate = multierror.Append(aggregate, causes...)
	for _, msg := range messages {
		aggregate = multierror.Append(aggregate, errors.New(msg))
	}
	return maybe.NewError(aggregate)
}
