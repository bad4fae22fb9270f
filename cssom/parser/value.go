package parser

import (
	"strconv"
	"strings"

	"github.com/wechat-miniprogram/float-pigment-sub002/cssval"
)

// valueKind tags which concrete cssval.PropertyValue type a property's text
// parses into, the parser-side twin of cssom/wire's valueKind dispatch
// table (kept separate, same shape as douceuradapter's Value()/Properties()
// pair that hands callers raw property/text without interpreting it itself
// — here we go one step further and actually parse).
type valueKind uint8

const (
	vkLength valueKind = iota
	vkColor
	vkNumber
	vkTransform
	vkBackgroundPosition
)

// propertyKinds mirrors cssom/apply.go's setProperty switch: which value
// shape a longhand property expects. A property absent from this table is
// parsed as a bare Keyword and will simply be dropped later by setProperty
// if NodeProperties doesn't model it.
var propertyKinds = map[string]valueKind{
	"width": vkLength, "height": vkLength,
	"min-width": vkLength, "min-height": vkLength,
	"max-width": vkLength, "max-height": vkLength,
	"margin-top": vkLength, "margin-right": vkLength,
	"margin-bottom": vkLength, "margin-left": vkLength,
	"padding-top": vkLength, "padding-right": vkLength,
	"padding-bottom": vkLength, "padding-left": vkLength,
	"border-top-width": vkLength, "border-right-width": vkLength,
	"border-bottom-width": vkLength, "border-left-width": vkLength,
	"border-top-color": vkColor, "border-right-color": vkColor,
	"border-bottom-color": vkColor, "border-left-color": vkColor,
	"top": vkLength, "right": vkLength, "bottom": vkLength, "left": vkLength,
	"z-index":      vkNumber,
	"row-gap":      vkLength,
	"column-gap":   vkLength,
	"flex-grow":    vkNumber,
	"flex-shrink":  vkNumber,
	"flex-basis":   vkLength,
	"order":        vkNumber,
	"grid-column-start": vkLength, "grid-column-end": vkLength,
	"grid-row-start": vkLength, "grid-row-end": vkLength,
	"color":               vkColor,
	"background-color":    vkColor,
	"background-position": vkBackgroundPosition,
	"font-size":           vkLength,
	"font-weight":         vkNumber,
	"line-height":         vkLength,
	"opacity":              vkNumber,
	"transform":            vkTransform,
}

// parseValue turns one declaration's raw CSS text into a concrete
// cssval.PropertyValue wrapped as a GlobalOr, resolving the CSS-wide
// keywords and var() references before attempting a property-specific
// parse, per spec §4.1/§6.
func parseValue(property, text string) cssval.GlobalOr[cssval.PropertyValue] {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "initial":
		return cssval.Initial[cssval.PropertyValue]()
	case "inherit":
		return cssval.Inherit[cssval.PropertyValue]()
	case "unset":
		return cssval.Unset[cssval.PropertyValue]()
	}
	if name, ok := soleVarRef(text); ok {
		return cssval.Var[cssval.PropertyValue](name)
	}
	v, ok := parseConcreteValue(property, text)
	if !ok {
		return cssval.Invalid[cssval.PropertyValue]()
	}
	return cssval.Value[cssval.PropertyValue](v)
}

// soleVarRef reports whether text is exactly one var(--name[, fallback])
// reference and nothing else, returning the referenced custom property name.
// A var() embedded inside a larger value (e.g. "calc(var(--x) + 1px)") is
// not a "sole" reference and is handled by substitution (vars.go) instead.
func soleVarRef(text string) (string, bool) {
	if !strings.HasPrefix(text, "var(") || !strings.HasSuffix(text, ")") {
		return "", false
	}
	inner := text[4 : len(text)-1]
	if strings.ContainsAny(inner, "()") {
		return "", false
	}
	name := inner
	if idx := strings.IndexByte(inner, ','); idx >= 0 {
		name = inner[:idx]
	}
	name = strings.TrimSpace(name)
	if !strings.HasPrefix(name, "--") {
		return "", false
	}
	return name, true
}

func parseConcreteValue(property, text string) (cssval.PropertyValue, bool) {
	kind, known := propertyKinds[property]
	if !known {
		return cssval.Keyword(text), true
	}
	switch kind {
	case vkLength:
		l, ok := parseLengthText(text)
		if !ok {
			return nil, false
		}
		return l, true
	case vkColor:
		c, err := cssval.ParseColor(text)
		if err != nil {
			return nil, false
		}
		return c, true
	case vkNumber:
		n, ok := parseNumberText(text)
		if !ok {
			return nil, false
		}
		return n, true
	case vkTransform:
		t, ok := parseTransformText(text)
		if !ok {
			return nil, false
		}
		return t, true
	case vkBackgroundPosition:
		b, ok := parseBgPosText(text)
		if !ok {
			return nil, false
		}
		return b, true
	}
	return cssval.Keyword(text), true
}

// parseLengthText parses one length component: a keyword ("auto"), a bare
// numeric unit ("10px", "1.5em", "50%", ...), or a calc() expression.
func parseLengthText(text string) (cssval.Length, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	switch lower {
	case "auto":
		return cssval.Auto(), true
	case "none":
		return cssval.Undefined(), true
	}
	if strings.HasPrefix(lower, "calc(") && strings.HasSuffix(lower, ")") {
		e, ok := parseCalc(text[strings.Index(text, "(")+1 : len(text)-1])
		if !ok {
			return cssval.Length{}, false
		}
		return cssval.LengthExpr(e), true
	}
	unit, v, ok := splitUnit(lower)
	if !ok {
		return cssval.Length{}, false
	}
	switch unit {
	case "px":
		return cssval.Px(v), true
	case "em":
		return cssval.Em(v), true
	case "rem":
		return cssval.Rem(v), true
	case "rpx":
		return cssval.Rpx(v), true
	case "%":
		return cssval.Ratio(v / 100), true
	case "vh":
		return cssval.Vh(v), true
	case "vw":
		return cssval.Vw(v), true
	case "vmin":
		return cssval.Vmin(v), true
	case "vmax":
		return cssval.Vmax(v), true
	}
	return cssval.Length{}, false
}

// splitUnit splits a trailing alphabetic/percent unit suffix off a leading
// numeric literal, e.g. "10.5px" -> ("px", 10.5).
func splitUnit(s string) (unit string, v float64, ok bool) {
	i := 0
	n := len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < n && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	numPart := s[:i]
	unitPart := strings.TrimSpace(s[i:])
	f, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return "", 0, false
	}
	if unitPart == "" {
		if f == 0 {
			return "px", 0, true
		}
		return "", 0, false
	}
	return unitPart, f, true
}

func parseNumberText(text string) (cssval.Number, bool) {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "calc(") && strings.HasSuffix(lower, ")") {
		e, ok := parseCalc(text[strings.Index(text, "(")+1 : len(text)-1])
		if !ok {
			return cssval.Number{}, false
		}
		return cssval.NumExpr(e), true
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(text, "%"), 64)
	if err != nil {
		return cssval.Number{}, false
	}
	if strings.HasSuffix(text, "%") {
		f /= 100
	}
	return cssval.Num(f), true
}

func parseAngleText(text string) (cssval.Angle, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if strings.HasPrefix(lower, "calc(") && strings.HasSuffix(lower, ")") {
		e, ok := parseCalc(text[strings.Index(text, "(")+1 : len(text)-1])
		if !ok {
			return cssval.Angle{}, false
		}
		return cssval.AngleExpr(e), true
	}
	unit, v, ok := splitUnit(lower)
	if !ok {
		return cssval.Angle{}, false
	}
	switch unit {
	case "deg":
		return cssval.NewAngle(cssval.Deg, v), true
	case "rad":
		return cssval.NewAngle(cssval.Rad, v), true
	case "grad":
		return cssval.NewAngle(cssval.Grad, v), true
	case "turn":
		return cssval.NewAngle(cssval.Turn, v), true
	case "px": // splitUnit's zero-literal fallback ("0" with no unit)
		return cssval.NewAngle(cssval.Deg, v), true
	}
	return cssval.Angle{}, false
}

func parseTransformText(text string) (cssval.Transform, bool) {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "none") || text == "" {
		return cssval.TransformNone(), true
	}
	var funcs []cssval.TransformFunc
	for _, call := range splitTopLevelFuncs(text) {
		f, ok := parseTransformFunc(call)
		if !ok {
			return cssval.Transform{}, false
		}
		funcs = append(funcs, f)
	}
	if len(funcs) == 0 {
		return cssval.Transform{}, false
	}
	return cssval.Transform{Funcs: funcs}, true
}

func parseTransformFunc(call string) (cssval.TransformFunc, bool) {
	open := strings.IndexByte(call, '(')
	close := strings.LastIndexByte(call, ')')
	if open < 0 || close < 0 || close <= open {
		return cssval.TransformFunc{}, false
	}
	name := strings.ToLower(strings.TrimSpace(call[:open]))
	args := splitArgs(call[open+1 : close])
	switch name {
	case "translate":
		if len(args) == 1 {
			x, ok := parseLengthText(args[0])
			return cssval.Translate(x, cssval.Px(0)), ok
		}
		if len(args) == 2 {
			x, ok1 := parseLengthText(args[0])
			y, ok2 := parseLengthText(args[1])
			return cssval.Translate(x, y), ok1 && ok2
		}
	case "translatex":
		x, ok := parseLengthText(args[0])
		return cssval.TranslateX(x), ok && len(args) == 1
	case "translatey":
		y, ok := parseLengthText(args[0])
		return cssval.TranslateY(y), ok && len(args) == 1
	case "scale":
		if len(args) == 1 {
			n, ok := parseNumberText(args[0])
			v, _ := n.Value()
			return cssval.Scale(cssval.Ratio(v), cssval.Ratio(v)), ok
		}
		if len(args) == 2 {
			nx, ok1 := parseNumberText(args[0])
			ny, ok2 := parseNumberText(args[1])
			vx, _ := nx.Value()
			vy, _ := ny.Value()
			return cssval.Scale(cssval.Ratio(vx), cssval.Ratio(vy)), ok1 && ok2
		}
	case "scalex":
		n, ok := parseNumberText(args[0])
		v, _ := n.Value()
		return cssval.ScaleX(cssval.Ratio(v)), ok && len(args) == 1
	case "scaley":
		n, ok := parseNumberText(args[0])
		v, _ := n.Value()
		return cssval.ScaleY(cssval.Ratio(v)), ok && len(args) == 1
	case "rotate":
		a, ok := parseAngleText(args[0])
		return cssval.Rotate(a), ok && len(args) == 1
	case "skewx":
		a, ok := parseAngleText(args[0])
		return cssval.SkewX(a), ok && len(args) == 1
	case "skewy":
		a, ok := parseAngleText(args[0])
		return cssval.SkewY(a), ok && len(args) == 1
	case "matrix":
		if len(args) != 6 {
			return cssval.TransformFunc{}, false
		}
		var nums [6]float64
		for i, a := range args {
			f, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
			if err != nil {
				return cssval.TransformFunc{}, false
			}
			nums[i] = f
		}
		return cssval.Matrix(nums[0], nums[1], nums[2], nums[3], nums[4], nums[5]), true
	}
	return cssval.TransformFunc{}, false
}

func parseBgPosText(text string) (cssval.BackgroundPosition, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return cssval.BackgroundPosition{}, false
	}
	if len(fields) == 1 {
		fields = append(fields, "center")
	}
	xk, xl, xok := parseBgAxis(fields[0])
	yk, yl, yok := parseBgAxis(fields[1])
	if !xok || !yok {
		return cssval.BackgroundPosition{}, false
	}
	// XKeyword/YKeyword and X/Y are independent per-axis slots (Resolve{X,Y}
	// fall through to the Length only when its axis keyword is BgNone), so
	// a mixed "10px center" is represented directly rather than forced into
	// an all-keyword or all-length shape.
	return cssval.BackgroundPosition{XKeyword: xk, X: xl, YKeyword: yk, Y: yl}, true
}

func parseBgAxis(tok string) (cssval.BgKeyword, cssval.Length, bool) {
	switch strings.ToLower(tok) {
	case "left":
		return cssval.BgLeft, cssval.Length{}, true
	case "right":
		return cssval.BgRight, cssval.Length{}, true
	case "top":
		return cssval.BgTop, cssval.Length{}, true
	case "bottom":
		return cssval.BgBottom, cssval.Length{}, true
	case "center":
		return cssval.BgCenter, cssval.Length{}, true
	}
	l, ok := parseLengthText(tok)
	return cssval.BgNone, l, ok
}

// splitTopLevelFuncs splits a space-separated list of function calls like
// "translate(1px,2px) rotate(5deg)" without breaking on commas/spaces
// nested inside parentheses.
func splitTopLevelFuncs(s string) []string {
	var out []string
	depth := 0
	start := -1
	for i, r := range s {
		switch r {
		case '(':
			if depth == 0 {
				start = i
			}
			depth++
		case ')':
			depth--
			if depth == 0 && start >= 0 {
				out = append(out, strings.TrimSpace(s[start:i+1]))
				start = -1
			}
		}
	}
	return out
}

// splitArgs splits a function's argument list on top-level commas.
func splitArgs(s string) []string {
	var out []string
	depth := 0
	last := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[last:i]))
				last = i + 1
			}
		}
	}
	out = append(out, strings.TrimSpace(s[last:]))
	return out
}
