package cssval

import "github.com/wechat-miniprogram/float-pigment-sub002/maybe"

// CalcUnit tags the unit of a CalcExpr leaf. Folding two leaves is only
// attempted when both share a unit (mixed-unit calc() results, e.g.
// "1rem + 1em", are kept as an unevaluated Expr until font-size resolution
// turns both operands into the same resolved unit).
type CalcUnit uint8

const (
	UnitNone CalcUnit = iota // plain Number
	UnitPx
	UnitEm
	UnitRem
	UnitRpx
	UnitRatio
	UnitVh
	UnitVw
	UnitVmin
	UnitVmax
	UnitDeg
	UnitRad
	UnitGrad
	UnitTurn
)

// CalcOp is one of the four calc() arithmetic operators.
type CalcOp uint8

const (
	OpPlus CalcOp = iota
	OpSub
	OpMul
	OpDiv
)

// CalcExpr is a binary-tree calc() expression over Length/Number/Angle
// leaves. IsLeaf reports a literal leaf; an interior node combines Left and
// Right with Op.
type CalcExpr struct {
	op    calcNodeKind
	arith CalcOp
	unit  CalcUnit
	value float64
	left  *CalcExpr
	right *CalcExpr
}

type calcNodeKind uint8

const (
	nodeLeaf calcNodeKind = iota
	nodeInterior
)

// Leaf constructs a literal leaf node of the given unit.
func Leaf(unit CalcUnit, value float64) *CalcExpr {
	return &CalcExpr{op: nodeLeaf, unit: unit, value: value}
}

// Combine builds an interior calc() node, eagerly folding it down to a
// literal leaf when both operands already share a unit (spec §4.1:
// "Folding happens eagerly when both operands are literals of compatible
// unit; mixed-unit results are preserved as unevaluated Expr"). A mixed-unit
// combination (e.g. "1rem + 1em") is kept as an interior node until the
// cascade resolves each side to a common unit via ResolveWithContext.
func Combine(op CalcOp, left, right *CalcExpr) *CalcExpr {
	e := &CalcExpr{op: nodeInterior, arith: op, left: left, right: right}
	if v, unit, ok := e.fold(); ok {
		return Leaf(unit, v)
	}
	return e
}

// IsLeaf reports whether e is a literal leaf (as opposed to an operator node).
func (e *CalcExpr) IsLeaf() bool { return e.op == nodeLeaf }

// LeafValue returns the leaf's (unit, value); only meaningful when IsLeaf().
func (e *CalcExpr) LeafValue() (CalcUnit, float64) { return e.unit, e.value }

// Op, Left, Right expose an interior node's operator and operands; only
// meaningful when !IsLeaf(). Used by the wire codec to encode a CalcExpr
// structurally instead of eagerly folding it.
func (e *CalcExpr) Op() CalcOp       { return e.arith }
func (e *CalcExpr) Left() *CalcExpr  { return e.left }
func (e *CalcExpr) Right() *CalcExpr { return e.right }

// TryCompute folds a CalcExpr into a single value when every leaf it
// contains shares one unit (the wire/testable-property name is
// ComputeCalcExpr::try_compute in the original source). Mixed-unit leaves
// are folded one level at a time when an arithmetic operator's both sides
// happen to already collapse to the same unit — e.g. "(1px + 2px) * 3" is
// computable, but "1rem + 1em" is not until each side has been resolved to
// a common unit by the caller.
func (e *CalcExpr) TryCompute() maybe.Maybe[float64] {
	v, unit, ok := e.fold()
	if !ok {
		return maybe.Nothing[float64]()
	}
	_ = unit
	return maybe.Just(v)
}

func (e *CalcExpr) fold() (value float64, unit CalcUnit, ok bool) {
	if e.IsLeaf() {
		return e.value, e.unit, true
	}
	lv, lu, lok := e.left.fold()
	rv, ru, rok := e.right.fold()
	if !lok || !rok {
		return 0, 0, false
	}
	switch e.arith {
	case OpMul, OpDiv:
		// one side must be a dimensionless scalar
		switch {
		case lu == UnitNone:
			return applyOp(e.arith, lv, rv), ru, true
		case ru == UnitNone:
			return applyOp(e.arith, lv, rv), lu, true
		case lu == ru:
			return applyOp(e.arith, lv, rv), lu, true
		}
		return 0, 0, false
	default: // OpPlus, OpSub
		if lu != ru {
			return 0, 0, false
		}
		return applyOp(e.arith, lv, rv), lu, true
	}
}

func applyOp(op CalcOp, l, r float64) float64 {
	switch op {
	case OpPlus:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		if r == 0 {
			return 0
		}
		return l / r
	}
	return 0
}

// ResolveWithContext folds a CalcExpr into pixels given a resolution
// context for its relative units (em/rem/vh/vw/...). Unlike TryCompute,
// this always succeeds because every leaf unit is resolvable given ctx;
// it is what the layout engine calls once font-size and viewport are
// known.
func (e *CalcExpr) ResolveWithContext(ctx ResolveContext) float64 {
	if e.IsLeaf() {
		return resolveUnit(e.unit, e.value, ctx)
	}
	l := e.left.ResolveWithContext(ctx)
	r := e.right.ResolveWithContext(ctx)
	return applyOp(e.arith, l, r)
}

func resolveUnit(unit CalcUnit, v float64, ctx ResolveContext) float64 {
	switch unit {
	case UnitPx, UnitRpx, UnitNone:
		return v
	case UnitEm:
		return v * ctx.FontSize
	case UnitRem:
		return v * ctx.RootFontSize
	case UnitRatio:
		return v * ctx.ReferenceSize
	case UnitVh:
		return v * ctx.ViewportHeight / 100
	case UnitVw:
		return v * ctx.ViewportWidth / 100
	case UnitVmin:
		m := ctx.ViewportWidth
		if ctx.ViewportHeight < m {
			m = ctx.ViewportHeight
		}
		return v * m / 100
	case UnitVmax:
		m := ctx.ViewportWidth
		if ctx.ViewportHeight > m {
			m = ctx.ViewportHeight
		}
		return v * m / 100
	}
	return v
}

// ResolveContext carries the ambient values needed to resolve relative
// length units, mirroring spec's MediaQueryStatus plus the current
// font-size cascaded onto a node.
type ResolveContext struct {
	FontSize       float64
	RootFontSize   float64
	ReferenceSize  float64 // percentage base, e.g. parent's content width
	ViewportWidth  float64
	ViewportHeight float64
}
