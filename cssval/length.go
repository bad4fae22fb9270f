package cssval

/*
Length is the workhorse CSS dimension type, generalizing the teacher's
css/dimen.go DimenT (Auto|Inherit|Initial|JustDimen|Percentage) to the
full spec union:

	Length = Auto | Undefined | Px(f32) | Em(f32) | Rem(f32) | Rpx(f32)
	       | Ratio(f32) | Vh(f32) | Vw(f32) | Vmin(f32) | Vmax(f32)
	       | Expr(CalcExpr)

Like DimenT it is represented as a flags-tagged struct rather than a real
Go sum type, and exposes the same Match()/pattern-expression idiom so
client code reads like a match statement.
*/

const (
	lenAuto uint32 = 1 << iota
	lenUndefined
	lenPx
	lenEm
	lenRem
	lenRpx
	lenRatio
	lenVh
	lenVw
	lenVmin
	lenVmax
	lenExpr
)

// Length is an option type for CSS length/dimension values.
type Length struct {
	flags uint32
	v     float64
	expr  *CalcExpr
}

func Auto() Length                { return Length{flags: lenAuto} }
func Undefined() Length           { return Length{flags: lenUndefined} }
func Px(v float64) Length         { return Length{flags: lenPx, v: v} }
func Em(v float64) Length         { return Length{flags: lenEm, v: v} }
func Rem(v float64) Length        { return Length{flags: lenRem, v: v} }
func Rpx(v float64) Length        { return Length{flags: lenRpx, v: v} }
func Ratio(v float64) Length      { return Length{flags: lenRatio, v: v} }
func Vh(v float64) Length         { return Length{flags: lenVh, v: v} }
func Vw(v float64) Length         { return Length{flags: lenVw, v: v} }
func Vmin(v float64) Length       { return Length{flags: lenVmin, v: v} }
func Vmax(v float64) Length       { return Length{flags: lenVmax, v: v} }
func LengthExpr(e *CalcExpr) Length { return Length{flags: lenExpr, expr: e} }

// IsAuto, IsUndefined, IsExpr are simple single-variant predicates.
func (l Length) IsAuto() bool      { return l.flags == lenAuto }
func (l Length) IsUndefined() bool { return l.flags == lenUndefined }
func (l Length) IsExpr() bool      { return l.flags == lenExpr }

// Expr returns the wrapped calc() expression, or nil.
func (l Length) Expr() *CalcExpr { return l.expr }

// UnitValue returns the (unit, value) pair for any concrete, non-auto/
// undefined/expr Length. Used by the wire codec to encode a Length
// without a per-unit type switch.
func (l Length) UnitValue() (CalcUnit, float64) { return l.unitOf(), l.v }

// unitOf maps a Length's flag to the corresponding CalcUnit, used when the
// Length itself becomes a calc() leaf (e.g. "calc(50% - 1em)").
func (l Length) unitOf() CalcUnit {
	switch l.flags {
	case lenPx:
		return UnitPx
	case lenEm:
		return UnitEm
	case lenRem:
		return UnitRem
	case lenRpx:
		return UnitRpx
	case lenRatio:
		return UnitRatio
	case lenVh:
		return UnitVh
	case lenVw:
		return UnitVw
	case lenVmin:
		return UnitVmin
	case lenVmax:
		return UnitVmax
	}
	return UnitNone
}

// Resolve resolves a Length to a pixel value given a resolution context.
// Auto and Undefined both resolve to zero at paint time, per spec §7
// ("malformed constraints degrade to Length::Undefined which resolves to
// zero at paint time"); callers that need to distinguish "auto" from "0"
// for layout purposes (block sizing, margin auto-centering, ...) must test
// IsAuto()/IsUndefined() before calling Resolve.
func (l Length) Resolve(ctx ResolveContext) float64 {
	switch l.flags {
	case lenAuto, lenUndefined:
		return 0
	case lenExpr:
		return l.expr.ResolveWithContext(ctx)
	default:
		return resolveUnit(l.unitOf(), l.v, ctx)
	}
}

// Match returns a matcher for single-branch tests, e.g.
//
//	if m := length.Match().Px(&px); m != nil { ... }
func (l Length) Match() *LengthMatcher {
	return &LengthMatcher{l: l}
}

// LengthMatcher performs single-branch type tests against a Length.
type LengthMatcher struct {
	l Length
}

func (m *LengthMatcher) Auto() *LengthMatcher {
	if m.l.flags == lenAuto {
		return m
	}
	return nil
}

func (m *LengthMatcher) Undefined() *LengthMatcher {
	if m.l.flags == lenUndefined {
		return m
	}
	return nil
}

func (m *LengthMatcher) Px(out *float64) *LengthMatcher {
	if m.l.flags == lenPx {
		if out != nil {
			*out = m.l.v
		}
		return m
	}
	return nil
}

func (m *LengthMatcher) Expr(out **CalcExpr) *LengthMatcher {
	if m.l.flags == lenExpr {
		if out != nil {
			*out = m.l.expr
		}
		return m
	}
	return nil
}

// LengthPatterns is the exhaustive pattern-expression form of Length,
// mirroring css/dimen.go's DimenPatterns/OneOf idiom.
type LengthPatterns[T any] struct {
	Auto      T
	Undefined T
	Absolute  func(v float64) T // Px, Rpx: unit is already pixels or px-like
	Relative  func(v float64, unit CalcUnit) T // Em, Rem, Vh, Vw, Vmin, Vmax, Ratio
	Expr      func(e *CalcExpr) T
}

// OneOf evaluates the matching branch of patterns for l.
func (l Length) OneOf(patterns LengthPatterns[any]) any {
	switch l.flags {
	case lenAuto:
		return patterns.Auto
	case lenUndefined:
		return patterns.Undefined
	case lenPx:
		return patterns.Absolute(l.v)
	case lenRpx:
		return patterns.Absolute(l.v)
	case lenExpr:
		return patterns.Expr(l.expr)
	default:
		return patterns.Relative(l.v, l.unitOf())
	}
}
