package cssval

// TransformFuncKind tags the variant of a single transform function in a
// "transform" value's function list.
type TransformFuncKind uint8

const (
	TransformTranslate TransformFuncKind = iota
	TransformTranslateX
	TransformTranslateY
	TransformScale
	TransformScaleX
	TransformScaleY
	TransformRotate
	TransformSkewX
	TransformSkewY
	TransformMatrix
)

// TransformFunc is one function call in a "transform" value, e.g.
// translate(10px, 5px) or rotate(45deg). Matrix carries six Numbers
// (a,b,c,d,tx,ty); every other kind carries up to two length/angle
// arguments depending on kind, with unused slots left zero.
type TransformFunc struct {
	Kind   TransformFuncKind
	X      Length
	Y      Length
	Angle  Angle
	Matrix [6]float64
}

func Translate(x, y Length) TransformFunc {
	return TransformFunc{Kind: TransformTranslate, X: x, Y: y}
}

func TranslateX(x Length) TransformFunc { return TransformFunc{Kind: TransformTranslateX, X: x} }
func TranslateY(y Length) TransformFunc { return TransformFunc{Kind: TransformTranslateY, Y: y} }

func Scale(x, y Length) TransformFunc {
	return TransformFunc{Kind: TransformScale, X: x, Y: y}
}

func ScaleX(x Length) TransformFunc { return TransformFunc{Kind: TransformScaleX, X: x} }
func ScaleY(y Length) TransformFunc { return TransformFunc{Kind: TransformScaleY, Y: y} }

func Rotate(a Angle) TransformFunc { return TransformFunc{Kind: TransformRotate, Angle: a} }
func SkewX(a Angle) TransformFunc  { return TransformFunc{Kind: TransformSkewX, Angle: a} }
func SkewY(a Angle) TransformFunc  { return TransformFunc{Kind: TransformSkewY, Angle: a} }

func Matrix(a, b, c, d, tx, ty float64) TransformFunc {
	return TransformFunc{Kind: TransformMatrix, Matrix: [6]float64{a, b, c, d, tx, ty}}
}

// Transform is a "transform" property value: an ordered list of functions,
// applied left to right, or the "none" keyword (an empty list).
type Transform struct {
	Funcs []TransformFunc
}

// TransformNone is the "transform: none" value.
func TransformNone() Transform { return Transform{} }

// IsNone reports whether this is the empty/"none" transform.
func (t Transform) IsNone() bool { return len(t.Funcs) == 0 }
