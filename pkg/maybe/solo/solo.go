package solo

import (
	"github.com/ib-77/maybe/pkg/maybe"
)

func Map[T, V any](input maybe.Maybe[T], onValue func(T) V) maybe.Maybe[V] {
	return maybe.Then(input, func(v T) maybe.Maybe[V] {
		return maybe.From(onValue(v))
	})
}

// Try calls onTryExecute on the value; a non-nil error becomes the root cause
// of an Error state.
func Try[T, V any](input maybe.Maybe[T], onTryExecute func(T) (V, error)) maybe.Maybe[V] {
	return maybe.Then(input, func(v T) maybe.Maybe[V] {
		out, err := onTryExecute(v)
		if err != nil {
			return maybe.FromError[V](err)
		}
		return maybe.From(out)
	})
}

// Validate fails with errMsg when validate reports the value as invalid.
func Validate[T any](input maybe.Maybe[T], validate func(T) (isValid bool, errMsg string)) maybe.Maybe[T] {
	return maybe.Then(input, func(v T) maybe.Maybe[T] {
		if isValid, errMsg := validate(v); !isValid {
			return maybe.Fail[T](errMsg)
		}
		return maybe.From(v)
	})
}

// WhereHolds keeps input when condition yields a value and otherwise takes
// over the condition's Nothing or Error state.
func WhereHolds[T any](input maybe.Maybe[T], condition func(T) maybe.Maybe[maybe.Unit]) maybe.Maybe[T] {
	return maybe.Then(input, func(v T) maybe.Maybe[T] {
		return maybe.Then(condition(v), func(maybe.Unit) maybe.Maybe[T] {
			return input
		})
	})
}

func Flatten[T any](input maybe.Maybe[maybe.Maybe[T]]) maybe.Maybe[T] {
	return maybe.Then(input, func(inner maybe.Maybe[T]) maybe.Maybe[T] {
		return inner
	})
}

// As narrows the value to U. A nil value passes as U's zero value, including
// a typed nil pointer of an unrelated type. A non-nil value of another type,
// an Error and Nothing all give Nothing; the mismatch is not reported.
func As[U, T any](input maybe.Maybe[T]) maybe.Maybe[U] {
	if !input.HasValue() {
		return maybe.Nothing[U]()
	}

	v := any(input.ValueOrZero())
	if maybe.IsNil(v) {
		if u, ok := v.(U); ok {
			return maybe.From(u)
		}
		var zero U
		return maybe.From(zero)
	}
	if u, ok := v.(U); ok {
		return maybe.From(u)
	}
	return maybe.Nothing[U]()
}

// Match collapses input into a concrete value.
func Match[T, R any](input maybe.Maybe[T],
	onValue func(T) R,
	onError func(*maybe.Error) R,
	onNothing func() R) R {

	switch input.Kind() {
	case maybe.KindValue:
		return onValue(input.ValueOrZero())
	case maybe.KindNothing:
		return onNothing()
	default:
		return onError(input.Error())
	}
}
