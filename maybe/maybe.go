// Package maybe is the module's option type, used wherever a computation can
// legitimately produce "no value" without that being an error — e.g.
// cssval.CalcExpr.TryCompute returning Nothing for a calc() tree whose
// leaves don't share a unit yet (spec §4.1: "mixed-unit results are
// preserved as unevaluated Expr"). Grounded on the teacher's own
// either/maybe monadic helpers, which the cascade and layout code below
// never needed (HTML styling in the teacher is total, not partial), but
// CalcExpr folding is the one place in this engine where "no answer yet"
// is a first-class, non-error outcome worth modeling as a type rather than
// a boolean flag.
package maybe

// Maybe[T] is either Just(value) or Nothing. Match returns a Matcher that
// callers switch over the way a Rust match expression would switch over
// Option<T>.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsJust() bool
}


type maybe[T any] struct {
	value T
	tag bool
}

func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// IsJust reports whether m holds a value, without extracting it. Used by
// callers that only need a presence check (e.g. cssval's tests of
// CalcExpr.TryCompute: "did every leaf share a unit?") rather than the full
// Match switch.
func (m maybe[T]) IsJust() bool { return m.tag }

func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

func  Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		v = f(v)
		return Just[T](v)
	case m.Nothing():
	}
	return x
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
