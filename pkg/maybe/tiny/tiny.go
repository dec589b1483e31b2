package tiny

import (
	"github.com/ib-77/maybe/pkg/maybe"
	"github.com/ib-77/maybe/pkg/maybe/solo"
)

type Chain[T any] struct {
	res maybe.Maybe[T]
}

func Start[T any](m maybe.Maybe[T]) Chain[T] {
	return Chain[T]{res: m}
}

func FromValue[T any](v T) Chain[T] {
	return Start(maybe.From(v))
}

func (c Chain[T]) Result() maybe.Maybe[T] {
	return c.res
}

// Then composes functions that already return maybe.Maybe[T]
func (c Chain[T]) Then(onValue func(T) maybe.Maybe[T]) Chain[T] {
	return Chain[T]{res: maybe.Then(c.res, onValue)}
}

// Map transforms the held value to a new value
func (c Chain[T]) Map(onValue func(T) T) Chain[T] {
	return Chain[T]{res: solo.Map(c.res, onValue)}
}

func (c Chain[T]) Where(pred func(T) bool) Chain[T] {
	return Chain[T]{res: c.res.Where(pred)}
}

// RepeatUntil applies onValue at least once and keeps going while until
// reports true and the chain still holds a value.
func (c Chain[T]) RepeatUntil(onValue func(T) maybe.Maybe[T], until func(T) bool) Chain[T] {
	if !c.res.HasValue() {
		return c
	}

	for {
		c = c.Then(onValue)

		if !c.res.HasValue() || !c.holds(until) {
			return c
		}
	}
}

func (c Chain[T]) While(onValue func(T) maybe.Maybe[T], while func(T) bool) Chain[T] {
	for c.res.HasValue() && c.holds(while) {
		c = c.Then(onValue)
	}
	return c
}

// holds evaluates a loop condition; a panic in it ends the loop.
func (c Chain[T]) holds(cond func(T) bool) bool {
	return maybe.Eval(func() bool {
		return cond(c.res.ValueOrZero())
	}).ValueOrDefault(false)
}

// Or returns the first chain holding a value. Without one it returns the
// first failed chain, and c when every chain is Nothing.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(alternatives)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, alternatives...)

	hasFail := false
	var failRes maybe.Maybe[T]

	for _, ch := range candidates {
		if ch.res.HasValue() {
			return ch
		}
		if ch.res.IsError() && !hasFail {
			hasFail = true
			failRes = ch.res
		}
	}

	if hasFail {
		return Chain[T]{res: failRes}
	}
	return c
}

// And returns the first chain without a value, or the last chain when all of
// them hold one.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if !ch.res.HasValue() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for each state without changing the result.
// A panicking side effect turns the chain into an Error.
func (c Chain[T]) Ensure(onValue func(T), onError func(*maybe.Error), onNothing func()) Chain[T] {
	switch c.res.Kind() {
	case maybe.KindValue:
		if onValue != nil {
			return Chain[T]{res: c.res.Do(onValue)}
		}
	case maybe.KindNothing:
		if onNothing != nil {
			return c.after(maybe.EvalDo(onNothing))
		}
	default:
		if onError != nil {
			failure := c.res.Error()
			return c.after(maybe.EvalDo(func() { onError(failure) }))
		}
	}
	return c
}

func (c Chain[T]) after(effect maybe.Maybe[maybe.Unit]) Chain[T] {
	if effect.IsError() {
		return Chain[T]{res: maybe.FailWith[T](effect.Error())}
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Match
func (c Chain[T]) Finally(
	onValue func(T) T,
	onError func(*maybe.Error) T,
	onNothing func() T,
) T {
	return solo.Match(c.res, onValue, onError, onNothing)
}
