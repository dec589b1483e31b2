package maybe

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func half(n int) Maybe[int] {
	if n%2 != 0 {
		return Fail[int]("odd: " + strconv.Itoa(n))
	}
	return From(n / 2)
}

func describe(n int) Maybe[string] {
	if n == 0 {
		return Nothing[string]()
	}
	return From("n=" + strconv.Itoa(n))
}

func TestThen_LeftIdentity(t *testing.T) {
	t.Parallel()

	for _, v := range []int{0, 1, 4, 7} {
		assertSame(t, half(v), Then(From(v), half))
	}
}

func TestThen_RightIdentity(t *testing.T) {
	t.Parallel()
	m := From(10)

	assertSame(t, m, Then(m, From[int]))
}

func TestThen_Associativity(t *testing.T) {
	t.Parallel()

	for _, v := range []int{0, 3, 4, 8} {
		m := From(v)
		left := Then(Then(m, half), describe)
		right := Then(m, func(x int) Maybe[string] {
			return Then(half(x), describe)
		})
		assertSame(t, left, right)
	}
}

func TestThen_NothingShortCircuits(t *testing.T) {
	t.Parallel()
	calls := 0

	out := Then(Nothing[int](), func(v int) Maybe[string] {
		calls++
		return From("unreachable")
	})

	if calls != 0 {
		t.Fatalf("fn should not be called on nothing, called %d times", calls)
	}
	if !out.IsNothing() {
		t.Fatalf("expected nothing, got %v", out)
	}
}

func TestThen_ErrorShortCircuitsAndKeepsPayload(t *testing.T) {
	t.Parallel()
	calls := 0
	cause := errors.New("boom")
	m := FromError[int](cause)

	out := Then(m, func(v int) Maybe[string] {
		calls++
		return From("unreachable")
	})

	assert.Zero(t, calls)
	require.True(t, out.IsError())
	assert.Same(t, m.Error(), out.Error())
	assert.ErrorIs(t, out.Err(), cause)
}

func TestThen_CapturesErrorPanic(t *testing.T) {
	t.Parallel()
	cause := errors.New("exploded")

	out := Then(From(1), func(int) Maybe[int] {
		panic(cause)
	})

	require.True(t, out.IsError())
	assert.Same(t, cause, out.Error().Cause())
}

func TestThen_CapturesNonErrorPanic(t *testing.T) {
	t.Parallel()

	out := Then(From(1), func(int) Maybe[int] {
		panic("plain string")
	})

	require.True(t, out.IsError())
	msg, _ := out.Error().FirstMessage()
	assert.Equal(t, "plain string", msg)
}

func TestThen_ZeroResultIsProtocolViolation(t *testing.T) {
	t.Parallel()

	out := Then(From(1), func(int) Maybe[int] {
		return Maybe[int]{}
	})

	require.True(t, out.IsError())
	assert.Equal(t, KindError, out.Kind())
	assert.Equal(t, []string{ErrProtocolViolation.Error()}, out.Error().Messages())
}

func TestWhere(t *testing.T) {
	t.Parallel()
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, 4, From(4).Where(even).MustValue())
	assert.True(t, From(3).Where(even).IsNothing())
	assert.True(t, Nothing[int]().Where(even).IsNothing())
	assert.True(t, Fail[int]("x").Where(even).IsError())
}

func TestWhenError(t *testing.T) {
	t.Parallel()
	calls := 0
	backup := func(e *Error) Maybe[int] {
		calls++
		return From(len(e.Messages()))
	}

	assert.Equal(t, 1, From(1).WhenError(backup).MustValue())
	assert.True(t, Nothing[int]().WhenError(backup).IsNothing())
	assert.Equal(t, 0, calls)

	assert.Equal(t, 2, Fail[int]("a", "b").WhenError(backup).MustValue())
	assert.Equal(t, 1, calls)
}

func TestWhenError_BackupPanicIsCaptured(t *testing.T) {
	t.Parallel()

	out := Fail[int]("first").WhenError(func(*Error) Maybe[int] {
		panic(errors.New("backup failed"))
	})

	require.True(t, out.IsError())
	assert.Equal(t, []string{"backup failed"}, out.Error().Messages())
}

func TestWhenErrorReturn(t *testing.T) {
	t.Parallel()

	out := Fail[string]("missing").WhenErrorReturn(func(e *Error) string {
		msg, _ := e.FirstMessage()
		return "recovered " + msg
	})

	assert.Equal(t, "recovered missing", out.MustValue())
}

func TestWhenNothing(t *testing.T) {
	t.Parallel()
	calls := 0
	backup := func() Maybe[int] {
		calls++
		return From(99)
	}

	assert.Equal(t, 1, From(1).WhenNothing(backup).MustValue())
	assert.True(t, Fail[int]("x").WhenNothing(backup).IsError())
	assert.Equal(t, 0, calls)
	assert.Equal(t, 99, Nothing[int]().WhenNothing(backup).MustValue())
	assert.Equal(t, 1, calls)
}

func TestWhenNothingReturn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, Nothing[int]().WhenNothingReturn(func() int { return 7 }).MustValue())
	assert.Equal(t, 0, Nothing[int]().WhenNothingReturnZero().MustValue())
	assert.True(t, Nothing[int]().WhenNothingReturn(func() int { panic("no") }).IsError())
}

func TestWhenNothingFail(t *testing.T) {
	t.Parallel()

	failed := Nothing[int]().WhenNothingFail("boom")
	require.True(t, failed.IsError())
	assert.Equal(t, []string{"boom"}, failed.Error().Messages())

	kept := From(5).WhenNothingFail("boom")
	assert.Equal(t, 5, kept.MustValue())

	formatted := Nothing[int]().WhenNothingFailf("missing %s", "id")
	assert.Equal(t, []string{"missing id"}, formatted.Error().Messages())
}

func TestWhenNothingFailWith(t *testing.T) {
	t.Parallel()
	cause := errors.New("not found")

	out := Nothing[int]().WhenNothingFailWith(func() error { return cause })
	assert.ErrorIs(t, out.Err(), cause)

	custom := Nothing[int]().WhenNothingFailError(func() *Error { return Errorf("code %d", 404) })
	assert.Equal(t, []string{"code 404"}, custom.Error().Messages())

	assert.Equal(t, 3, From(3).WhenNothingFailWith(func() error { return cause }).MustValue())
}

func TestDo(t *testing.T) {
	t.Parallel()
	var seen []int

	out := From(3).Do(func(v int) { seen = append(seen, v) })
	assert.Equal(t, 3, out.MustValue())
	assert.Equal(t, []int{3}, seen)

	Nothing[int]().Do(func(v int) { seen = append(seen, v) })
	Fail[int]("x").Do(func(v int) { seen = append(seen, v) })
	assert.Equal(t, []int{3}, seen)

	panicked := From(3).Do(func(int) { panic("side effect failed") })
	assert.True(t, panicked.IsError())
}

func TestLogErrors_Messages(t *testing.T) {
	t.Parallel()
	var logged []any
	log := func(v any) { logged = append(logged, v) }

	m := Fail[int]("a", "b")
	out := m.LogErrors(log)

	assert.Equal(t, []any{"a", "b"}, logged)
	assert.Same(t, m.Error(), out.Error())
}

func TestLogErrors_CauseLoggedOnce(t *testing.T) {
	t.Parallel()
	var logged []any
	cause := errors.New("outer")

	FromError[int](cause).LogErrors(func(v any) { logged = append(logged, v) })

	require.Len(t, logged, 1)
	assert.Same(t, cause, logged[0])
}

func TestLogErrors_NotCalledOnValueOrNothing(t *testing.T) {
	t.Parallel()
	calls := 0
	log := func(any) { calls++ }

	From(1).LogErrors(log)
	Nothing[int]().LogErrors(log)

	assert.Zero(t, calls)
}

func TestWhenNothingFailWith_FactoryPanicIsCaptured(t *testing.T) {
	t.Parallel()
	var out Maybe[int]

	require.NotPanics(t, func() {
		out = Nothing[int]().WhenNothingFailWith(func() error { panic("factory broke") })
	})
	require.True(t, out.IsError())
	assert.Equal(t, []string{"factory broke"}, out.Error().Messages())
}

func TestWhenNothingFailError_FactoryPanicIsCaptured(t *testing.T) {
	t.Parallel()
	cause := errors.New("factory broke")
	var out Maybe[int]

	require.NotPanics(t, func() {
		out = Nothing[int]().WhenNothingFailError(func() *Error { panic(cause) })
	})
	require.True(t, out.IsError())
	assert.ErrorIs(t, out.Err(), cause)
}

func TestWhenNothingFailWith_NilErrorHasDiagnostic(t *testing.T) {
	t.Parallel()

	out := Nothing[int]().WhenNothingFailWith(func() error { return nil })

	require.True(t, out.IsError())
	assert.ErrorIs(t, out.Err(), ErrNilFailure)
	msg, ok := out.Error().FirstMessage()
	assert.True(t, ok)
	assert.Equal(t, ErrNilFailure.Error(), msg)
	assert.NotEmpty(t, out.Err().Error())
}

func TestWhenNothingFailError_NilPayloadIsProtocolViolation(t *testing.T) {
	t.Parallel()

	out := Nothing[int]().WhenNothingFailError(func() *Error { return nil })

	require.True(t, out.IsError())
	assert.Equal(t, []string{ErrProtocolViolation.Error()}, out.Error().Messages())
}

func TestLogErrors_PanickingLogKeepsSource(t *testing.T) {
	t.Parallel()
	m := Fail[int]("a", "b")
	calls := 0
	var out Maybe[int]

	require.NotPanics(t, func() {
		out = m.LogErrors(func(any) {
			calls++
			panic("logger down")
		})
	})
	assert.Equal(t, 1, calls)
	assert.Same(t, m.Error(), out.Error())
}
