package wire

import (
	"image/color"

	"github.com/wechat-miniprogram/float-pigment-sub002/cssval"
	"github.com/wechat-miniprogram/float-pigment-sub002/strpool"
)

// valueKind tags which concrete cssval type a property's declarations
// carry, so the decoder knows which decodeXxx function to call for a
// given property name without needing a self-describing value tag beyond
// the GlobalOr wrapper's own discriminant.
type valueKind uint8

const (
	kindLength valueKind = iota
	kindColor
	kindNumber
	kindKeyword
	kindTransform
	kindBackgroundPosition
)

// propertyKinds mirrors cssom's setProperty dispatch table; kept here
// rather than imported from cssom to avoid a dependency from the wire
// codec (a leaf concern) back up to the cascade package.
var propertyKinds = map[string]valueKind{
	"width": kindLength, "height": kindLength,
	"min-width": kindLength, "min-height": kindLength,
	"max-width": kindLength, "max-height": kindLength,
	"box-sizing": kindKeyword,
	"margin-top": kindLength, "margin-right": kindLength, "margin-bottom": kindLength, "margin-left": kindLength,
	"padding-top": kindLength, "padding-right": kindLength, "padding-bottom": kindLength, "padding-left": kindLength,
	"border-top-width": kindLength, "border-right-width": kindLength, "border-bottom-width": kindLength, "border-left-width": kindLength,
	"border-top-color": kindColor, "border-right-color": kindColor, "border-bottom-color": kindColor, "border-left-color": kindColor,
	"display": kindKeyword, "position": kindKeyword,
	"top": kindLength, "right": kindLength, "bottom": kindLength, "left": kindLength,
	"z-index": kindNumber, "overflow": kindKeyword, "visibility": kindKeyword,
	"flex-direction": kindKeyword, "flex-wrap": kindKeyword,
	"justify-content": kindKeyword, "align-items": kindKeyword, "align-content": kindKeyword,
	"row-gap": kindLength, "column-gap": kindLength,
	"flex-grow": kindNumber, "flex-shrink": kindNumber, "flex-basis": kindLength,
	"order": kindNumber, "align-self": kindKeyword,
	"grid-auto-flow": kindKeyword, "justify-items": kindKeyword, "justify-self": kindKeyword,
	"grid-column-start": kindLength, "grid-column-end": kindLength,
	"grid-row-start": kindLength, "grid-row-end": kindLength,
	"color": kindColor, "background-color": kindColor,
	"background-position": kindBackgroundPosition, "background-repeat": kindKeyword,
	"font-size": kindLength, "font-weight": kindNumber, "line-height": kindLength,
	"text-align": kindKeyword, "opacity": kindNumber, "transform": kindTransform,
	"direction": kindKeyword, "writing-mode": kindKeyword,
}

// Global-keyword discriminants, reserved in [0, GlobalKeywordSlots) ahead
// of every property value enum's own variants (spec §3/§9).
const (
	globalTagValue          uint32 = 0
	globalTagInvalid        uint32 = 1
	globalTagInitial        uint32 = 2
	globalTagInherit        uint32 = 3
	globalTagUnset          uint32 = 4
	globalTagVar            uint32 = 5
	globalTagVarInShorthand uint32 = 6
)

var zeroRGBA = color.RGBA{}

func writeStr(w *Writer, pool *strpool.StrPool, s string) {
	ref := pool.Intern(s)
	w.WriteStrRef(ref.Offset(), ref.Len())
}

func readStr(r *Reader, pool *strpool.StrPool) (string, error) {
	off, length, err := r.ReadStrRef()
	if err != nil {
		return "", err
	}
	return strpool.NewRef(off, length, pool).String(), nil
}

// EncodeGlobalOr writes a GlobalOr[PropertyValue] wrapper: the global-
// keyword tag, then (for globalTagValue) the concrete value via the
// property-specific encoder.
func EncodeGlobalOr(w *Writer, pool *strpool.StrPool, prop string, g cssval.GlobalOr[cssval.PropertyValue]) {
	switch {
	case g.IsInvalid():
		w.WriteTag(globalTagInvalid)
	case g.IsInitial():
		w.WriteTag(globalTagInitial)
	case g.IsInherit():
		w.WriteTag(globalTagInherit)
	case g.IsUnset():
		w.WriteTag(globalTagUnset)
	case g.IsVar():
		shorthand, name, _ := g.VarRef()
		if shorthand != "" {
			w.WriteTag(globalTagVarInShorthand)
			writeStr(w, pool, shorthand)
		} else {
			w.WriteTag(globalTagVar)
		}
		writeStr(w, pool, name)
	default:
		w.WriteTag(globalTagValue)
		v, _ := g.Get()
		encodePropertyValue(w, pool, prop, v)
	}
}

// DecodeGlobalOr is the inverse of EncodeGlobalOr.
func DecodeGlobalOr(r *Reader, pool *strpool.StrPool, prop string) (cssval.GlobalOr[cssval.PropertyValue], error) {
	tag, err := r.ReadTag()
	if err != nil {
		return cssval.GlobalOr[cssval.PropertyValue]{}, err
	}
	switch tag {
	case globalTagInvalid:
		return cssval.Invalid[cssval.PropertyValue](), nil
	case globalTagInitial:
		return cssval.Initial[cssval.PropertyValue](), nil
	case globalTagInherit:
		return cssval.Inherit[cssval.PropertyValue](), nil
	case globalTagUnset:
		return cssval.Unset[cssval.PropertyValue](), nil
	case globalTagVar:
		name, err := readStr(r, pool)
		if err != nil {
			return cssval.GlobalOr[cssval.PropertyValue]{}, err
		}
		return cssval.Var[cssval.PropertyValue](name), nil
	case globalTagVarInShorthand:
		shorthand, err := readStr(r, pool)
		if err != nil {
			return cssval.GlobalOr[cssval.PropertyValue]{}, err
		}
		name, err := readStr(r, pool)
		if err != nil {
			return cssval.GlobalOr[cssval.PropertyValue]{}, err
		}
		return cssval.VarInShorthand[cssval.PropertyValue](shorthand, name), nil
	case globalTagValue:
		v, err := decodePropertyValue(r, pool, prop)
		if err != nil {
			return cssval.GlobalOr[cssval.PropertyValue]{}, err
		}
		return cssval.Value[cssval.PropertyValue](v), nil
	default:
		return cssval.GlobalOr[cssval.PropertyValue]{}, newErr(ErrInvalidTagEncoding, "unknown global-keyword tag")
	}
}

func encodePropertyValue(w *Writer, pool *strpool.StrPool, prop string, v cssval.PropertyValue) {
	switch propertyKinds[prop] {
	case kindLength:
		l, _ := v.(cssval.Length)
		encodeLength(w, l)
	case kindColor:
		c, _ := v.(cssval.Color)
		encodeColor(w, c)
	case kindNumber:
		n, _ := v.(cssval.Number)
		encodeNumber(w, n)
	case kindKeyword:
		k, _ := v.(cssval.Keyword)
		writeStr(w, pool, string(k))
	case kindTransform:
		t, _ := v.(cssval.Transform)
		encodeTransform(w, t)
	case kindBackgroundPosition:
		b, _ := v.(cssval.BackgroundPosition)
		encodeBgPos(w, b)
	}
}

func decodePropertyValue(r *Reader, pool *strpool.StrPool, prop string) (cssval.PropertyValue, error) {
	switch propertyKinds[prop] {
	case kindLength:
		return decodeLength(r)
	case kindColor:
		return decodeColor(r)
	case kindNumber:
		return decodeNumber(r)
	case kindKeyword:
		s, err := readStr(r, pool)
		if err != nil {
			return nil, err
		}
		return cssval.Keyword(s), nil
	case kindTransform:
		return decodeTransform(r)
	case kindBackgroundPosition:
		return decodeBgPos(r)
	}
	return nil, newErr(ErrInvalidData, "unknown property for value decode: "+prop)
}

// --- Length / CalcExpr ----------------------------------------------------

const (
	lenTagAuto uint32 = GlobalKeywordSlots + iota
	lenTagUndefined
	lenTagPx
	lenTagEm
	lenTagRem
	lenTagRpx
	lenTagRatio
	lenTagVh
	lenTagVw
	lenTagVmin
	lenTagVmax
	lenTagExpr
)

func encodeLength(w *Writer, l cssval.Length) {
	switch {
	case l.IsAuto():
		w.WriteTag(lenTagAuto)
	case l.IsUndefined():
		w.WriteTag(lenTagUndefined)
	case l.IsExpr():
		w.WriteTag(lenTagExpr)
		encodeCalcExpr(w, l.Expr())
	default:
		unit, val := l.UnitValue()
		w.WriteTag(unitTag(unit))
		w.WriteF64(val)
	}
}

func unitTag(u cssval.CalcUnit) uint32 {
	switch u {
	case cssval.UnitPx:
		return lenTagPx
	case cssval.UnitEm:
		return lenTagEm
	case cssval.UnitRem:
		return lenTagRem
	case cssval.UnitRpx:
		return lenTagRpx
	case cssval.UnitRatio:
		return lenTagRatio
	case cssval.UnitVh:
		return lenTagVh
	case cssval.UnitVw:
		return lenTagVw
	case cssval.UnitVmin:
		return lenTagVmin
	case cssval.UnitVmax:
		return lenTagVmax
	}
	return lenTagPx
}

func tagUnit(tag uint32) cssval.CalcUnit {
	switch tag {
	case lenTagEm:
		return cssval.UnitEm
	case lenTagRem:
		return cssval.UnitRem
	case lenTagRpx:
		return cssval.UnitRpx
	case lenTagRatio:
		return cssval.UnitRatio
	case lenTagVh:
		return cssval.UnitVh
	case lenTagVw:
		return cssval.UnitVw
	case lenTagVmin:
		return cssval.UnitVmin
	case lenTagVmax:
		return cssval.UnitVmax
	}
	return cssval.UnitPx
}

func lengthFromUnit(unit cssval.CalcUnit, v float64) cssval.Length {
	switch unit {
	case cssval.UnitPx:
		return cssval.Px(v)
	case cssval.UnitEm:
		return cssval.Em(v)
	case cssval.UnitRem:
		return cssval.Rem(v)
	case cssval.UnitRpx:
		return cssval.Rpx(v)
	case cssval.UnitRatio:
		return cssval.Ratio(v)
	case cssval.UnitVh:
		return cssval.Vh(v)
	case cssval.UnitVw:
		return cssval.Vw(v)
	case cssval.UnitVmin:
		return cssval.Vmin(v)
	case cssval.UnitVmax:
		return cssval.Vmax(v)
	}
	return cssval.Px(v)
}

func decodeLength(r *Reader) (cssval.Length, error) {
	tag, err := r.ReadTag()
	if err != nil {
		return cssval.Length{}, err
	}
	switch tag {
	case lenTagAuto:
		return cssval.Auto(), nil
	case lenTagUndefined:
		return cssval.Undefined(), nil
	case lenTagExpr:
		e, err := decodeCalcExpr(r)
		if err != nil {
			return cssval.Length{}, err
		}
		return cssval.LengthExpr(e), nil
	default:
		v, err := r.ReadF64()
		if err != nil {
			return cssval.Length{}, err
		}
		return lengthFromUnit(tagUnit(tag), v), nil
	}
}

// calcUnitTag/tagCalcUnit cover the full CalcUnit range (including the
// angle/none units a bare Length never carries but a calc() leaf inside a
// Number or Angle might), unlike unitTag/tagUnit above which only handle
// the subset Length itself can be.
const (
	calcUnitTagNone uint32 = GlobalKeywordSlots + 16 + iota
	calcUnitTagDeg
	calcUnitTagRad
	calcUnitTagGrad
	calcUnitTagTurn
)

func calcUnitTag(u cssval.CalcUnit) uint32 {
	switch u {
	case cssval.UnitNone:
		return calcUnitTagNone
	case cssval.UnitDeg:
		return calcUnitTagDeg
	case cssval.UnitRad:
		return calcUnitTagRad
	case cssval.UnitGrad:
		return calcUnitTagGrad
	case cssval.UnitTurn:
		return calcUnitTagTurn
	default:
		return unitTag(u)
	}
}

func tagCalcUnit(tag uint32) cssval.CalcUnit {
	switch tag {
	case calcUnitTagNone:
		return cssval.UnitNone
	case calcUnitTagDeg:
		return cssval.UnitDeg
	case calcUnitTagRad:
		return cssval.UnitRad
	case calcUnitTagGrad:
		return cssval.UnitGrad
	case calcUnitTagTurn:
		return cssval.UnitTurn
	default:
		return tagUnit(tag)
	}
}

const (
	calcTagLeaf uint32 = GlobalKeywordSlots + 32 + iota
	calcTagInterior
)

func encodeCalcExpr(w *Writer, e *cssval.CalcExpr) {
	if e.IsLeaf() {
		w.WriteTag(calcTagLeaf)
		unit, val := e.LeafValue()
		w.WriteTag(calcUnitTag(unit))
		w.WriteF64(val)
		return
	}
	w.WriteTag(calcTagInterior)
	w.WriteU8(uint8(e.Op()))
	encodeCalcExpr(w, e.Left())
	encodeCalcExpr(w, e.Right())
}

func decodeCalcExpr(r *Reader) (*cssval.CalcExpr, error) {
	tag, err := r.ReadTag()
	if err != nil {
		return nil, err
	}
	switch tag {
	case calcTagLeaf:
		unitTag32, err := r.ReadTag()
		if err != nil {
			return nil, err
		}
		v, err := r.ReadF64()
		if err != nil {
			return nil, err
		}
		return cssval.Leaf(tagCalcUnit(unitTag32), v), nil
	case calcTagInterior:
		opb, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		left, err := decodeCalcExpr(r)
		if err != nil {
			return nil, err
		}
		right, err := decodeCalcExpr(r)
		if err != nil {
			return nil, err
		}
		return cssval.Combine(cssval.CalcOp(opb), left, right), nil
	}
	return nil, newErr(ErrInvalidTagEncoding, "unknown calc tag")
}

// --- Color ------------------------------------------------------------

const (
	colorTagRGBA uint32 = GlobalKeywordSlots + iota
	colorTagCurrent
	colorTagTransparent
)

func encodeColor(w *Writer, c cssval.Color) {
	switch {
	case c.IsCurrentColor():
		w.WriteTag(colorTagCurrent)
	case c.IsTransparent():
		w.WriteTag(colorTagTransparent)
	default:
		w.WriteTag(colorTagRGBA)
		rgba := c.RGBAValue(zeroRGBA)
		w.WriteU8(rgba.R)
		w.WriteU8(rgba.G)
		w.WriteU8(rgba.B)
		w.WriteU8(rgba.A)
	}
}

func decodeColor(r *Reader) (cssval.Color, error) {
	tag, err := r.ReadTag()
	if err != nil {
		return cssval.Color{}, err
	}
	switch tag {
	case colorTagCurrent:
		return cssval.CurrentColor(), nil
	case colorTagTransparent:
		return cssval.Transparent(), nil
	case colorTagRGBA:
		rb, err := r.ReadU8()
		if err != nil {
			return cssval.Color{}, err
		}
		gb, err := r.ReadU8()
		if err != nil {
			return cssval.Color{}, err
		}
		bb, err := r.ReadU8()
		if err != nil {
			return cssval.Color{}, err
		}
		ab, err := r.ReadU8()
		if err != nil {
			return cssval.Color{}, err
		}
		return cssval.RGBA(rb, gb, bb, ab), nil
	}
	return cssval.Color{}, newErr(ErrInvalidTagEncoding, "unknown color tag")
}

// --- Number -------------------------------------------------------------

const (
	numTagLiteral uint32 = GlobalKeywordSlots + iota
	numTagExpr
)

func encodeNumber(w *Writer, n cssval.Number) {
	if v, ok := n.Value(); ok {
		w.WriteTag(numTagLiteral)
		w.WriteF64(v)
		return
	}
	w.WriteTag(numTagExpr)
	encodeCalcExpr(w, n.Expr())
}

func decodeNumber(r *Reader) (cssval.Number, error) {
	tag, err := r.ReadTag()
	if err != nil {
		return cssval.Number{}, err
	}
	switch tag {
	case numTagExpr:
		e, err := decodeCalcExpr(r)
		if err != nil {
			return cssval.Number{}, err
		}
		return cssval.NumExpr(e), nil
	default:
		v, err := r.ReadF64()
		if err != nil {
			return cssval.Number{}, err
		}
		return cssval.Num(v), nil
	}
}

// --- Angle (used only inside Transform funcs; no standalone property in
// propertyKinds carries Angle directly) -----------------------------------

const (
	angleTagLiteral uint32 = GlobalKeywordSlots + iota
	angleTagExpr
)

func encodeAngle(w *Writer, a cssval.Angle) {
	if a.IsExpr() {
		w.WriteTag(angleTagExpr)
		encodeCalcExpr(w, a.Expr())
		return
	}
	w.WriteTag(angleTagLiteral)
	unit, v := a.UnitValue()
	w.WriteU8(uint8(unit))
	w.WriteF64(v)
}

func decodeAngle(r *Reader) (cssval.Angle, error) {
	tag, err := r.ReadTag()
	if err != nil {
		return cssval.Angle{}, err
	}
	if tag == angleTagExpr {
		e, err := decodeCalcExpr(r)
		if err != nil {
			return cssval.Angle{}, err
		}
		return cssval.AngleExpr(e), nil
	}
	unitb, err := r.ReadU8()
	if err != nil {
		return cssval.Angle{}, err
	}
	v, err := r.ReadF64()
	if err != nil {
		return cssval.Angle{}, err
	}
	return cssval.NewAngle(cssval.AngleUnit(unitb), v), nil
}

// --- Transform ----------------------------------------------------------

func encodeTransform(w *Writer, t cssval.Transform) {
	w.WriteU32(uint32(len(t.Funcs)))
	for _, f := range t.Funcs {
		w.WriteTag(uint32(f.Kind))
		encodeLength(w, f.X)
		encodeLength(w, f.Y)
		encodeAngle(w, f.Angle)
		for _, m := range f.Matrix {
			w.WriteF64(m)
		}
	}
}

func decodeTransform(r *Reader) (cssval.Transform, error) {
	n, err := r.ReadU32()
	if err != nil {
		return cssval.Transform{}, err
	}
	funcs := make([]cssval.TransformFunc, 0, n)
	for i := uint32(0); i < n; i++ {
		kind, err := r.ReadTag()
		if err != nil {
			return cssval.Transform{}, err
		}
		x, err := decodeLength(r)
		if err != nil {
			return cssval.Transform{}, err
		}
		y, err := decodeLength(r)
		if err != nil {
			return cssval.Transform{}, err
		}
		angle, err := decodeAngle(r)
		if err != nil {
			return cssval.Transform{}, err
		}
		var matrix [6]float64
		for j := range matrix {
			matrix[j], err = r.ReadF64()
			if err != nil {
				return cssval.Transform{}, err
			}
		}
		funcs = append(funcs, cssval.TransformFunc{
			Kind: cssval.TransformFuncKind(kind), X: x, Y: y,
			Angle: angle, Matrix: matrix,
		})
	}
	return cssval.Transform{Funcs: funcs}, nil
}

// --- BackgroundPosition ---------------------------------------------------

func encodeBgPos(w *Writer, b cssval.BackgroundPosition) {
	w.WriteU8(uint8(b.XKeyword))
	encodeLength(w, b.X)
	w.WriteU8(uint8(b.YKeyword))
	encodeLength(w, b.Y)
}

func decodeBgPos(r *Reader) (cssval.BackgroundPosition, error) {
	xk, err := r.ReadU8()
	if err != nil {
		return cssval.BackgroundPosition{}, err
	}
	x, err := decodeLength(r)
	if err != nil {
		return cssval.BackgroundPosition{}, err
	}
	yk, err := r.ReadU8()
	if err != nil {
		return cssval.BackgroundPosition{}, err
	}
	y, err := decodeLength(r)
	if err != nil {
		return cssval.BackgroundPosition{}, err
	}
	return cssval.BackgroundPosition{XKeyword: cssval.BgKeyword(xk), X: x, YKeyword: cssval.BgKeyword(yk), Y: y}, nil
}
