package cssval

// Number is a plain numeric CSS value (e.g. for "flex-grow", "opacity",
// "z-index"), with a calc() escape for expressions that can't be folded
// at parse time.
type Number struct {
	n    float64
	expr *CalcExpr
}

// Num creates a literal Number.
func Num(n float64) Number { return Number{n: n} }

// NumExpr wraps an unevaluated calc() expression as a Number.
func NumExpr(e *CalcExpr) Number { return Number{expr: e} }

// IsExpr reports whether this Number is an unevaluated calc() expression.
func (n Number) IsExpr() bool { return n.expr != nil }

// Value returns the literal value and whether this Number is a literal
// (as opposed to an unevaluated expression).
func (n Number) Value() (float64, bool) { return n.n, n.expr == nil }

// Expr returns the wrapped expression, or nil if this Number is a literal.
func (n Number) Expr() *CalcExpr { return n.expr }

// Angle is a CSS angle value: Deg, Rad, Grad or Turn, with a calc() escape.
type Angle struct {
	unit AngleUnit
	v    float64
	expr *CalcExpr
}

// AngleUnit enumerates the concrete angle units.
type AngleUnit uint8

const (
	Deg AngleUnit = iota
	Rad
	Grad
	Turn
)

// NewAngle creates a literal angle of the given unit.
func NewAngle(unit AngleUnit, v float64) Angle { return Angle{unit: unit, v: v} }

// AngleExpr wraps an unevaluated calc() expression as an Angle.
func AngleExpr(e *CalcExpr) Angle { return Angle{expr: e} }

// IsExpr reports whether this Angle is an unevaluated calc() expression.
func (a Angle) IsExpr() bool { return a.expr != nil }

// Expr returns the wrapped expression, or nil if this Angle is a literal.
func (a Angle) Expr() *CalcExpr { return a.expr }

// UnitValue returns the (unit, value) pair for a literal (non-expr) Angle.
func (a Angle) UnitValue() (AngleUnit, float64) { return a.unit, a.v }

// Radians converts a literal angle to radians. Panics if IsExpr().
func (a Angle) Radians() float64 {
	if a.expr != nil {
		panic("cssval: Radians() called on an unevaluated calc() Angle")
	}
	switch a.unit {
	case Deg:
		return a.v * 3.14159265358979323846 / 180
	case Grad:
		return a.v * 3.14159265358979323846 / 200
	case Turn:
		return a.v * 2 * 3.14159265358979323846
	default: // Rad
		return a.v
	}
}
