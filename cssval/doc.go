/*
Package cssval holds the algebraic CSS property-value types shared by the
parser, the cascade and the layout engine: Length, Color, Angle, Number,
CalcExpr, Transform and BackgroundPosition, plus the generic GlobalOr[T]
wrapper that adds the CSS-wide keywords (initial, inherit, unset, var(...))
to any of them, and PropertyMeta, the declared-property container the
cascade consumes.

Every concrete value type follows the option-type idiom used throughout the
teacher repo's css/dimen.go (DimenT) and dom/style/css/position.go
(PositionT): a small flags-tagged struct, a fluent `Match()` accessor for
single-branch tests, and a `Pattern()`/`OneOf(...)` expression form for
exhaustive switches — Go's nearest idiomatic stand-in for an algebraic sum
type with a match expression.
*/
package cssval

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'css.val'.
func tracer() tracing.Trace {
	return tracing.Select("css.val")
}
