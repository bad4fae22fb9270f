package layout

// resolvedEdges is a node's margin/border/padding fully resolved against a
// parent-supplied reference width (percentages on all four box edges
// resolve against the containing block's width, per CSS, including the
// vertical edges).
type resolvedEdges struct {
	Margin  EdgeSizes
	Border  EdgeSizes
	Padding EdgeSizes
}

func resolveEdges(s Style, referenceWidth float64, referenceKnown bool) resolvedEdges {
	resolve := func(d Dimension) float64 {
		v, _ := d.Resolve(referenceWidth, referenceKnown)
		return v
	}
	return resolvedEdges{
		Margin: EdgeSizes{
			Top: resolve(s.MarginTop()), Right: resolve(s.MarginRight()),
			Bottom: resolve(s.MarginBottom()), Left: resolve(s.MarginLeft()),
		},
		Border: EdgeSizes{
			Top: s.BorderTop(), Right: s.BorderRight(),
			Bottom: s.BorderBottom(), Left: s.BorderLeft(),
		},
		Padding: EdgeSizes{
			Top: resolve(s.PaddingTop()), Right: resolve(s.PaddingRight()),
			Bottom: resolve(s.PaddingBottom()), Left: resolve(s.PaddingLeft()),
		},
	}
}

func (e resolvedEdges) horizontal() float64 {
	return e.Margin.Left + e.Margin.Right + e.Border.Left + e.Border.Right + e.Padding.Left + e.Padding.Right
}

func (e resolvedEdges) vertical() float64 {
	return e.Margin.Top + e.Margin.Bottom + e.Border.Top + e.Border.Bottom + e.Padding.Top + e.Padding.Bottom
}

func (e resolvedEdges) borderBoxHorizontal() float64 {
	return e.Border.Left + e.Border.Right + e.Padding.Left + e.Padding.Right
}

func (e resolvedEdges) borderBoxVertical() float64 {
	return e.Border.Top + e.Border.Bottom + e.Padding.Top + e.Padding.Bottom
}

// clamp applies min/max Dimension constraints to a resolved value, per
// CSS's "used value is clamped between resolved min and max" rule; an
// unresolvable min/max (e.g. a percentage against an indefinite reference)
// simply doesn't constrain.
func clamp(value float64, min, max Dimension, reference float64, referenceKnown bool) float64 {
	if v, ok := min.Resolve(reference, referenceKnown); ok && v > value {
		value = v
	}
	if v, ok := max.Resolve(reference, referenceKnown); ok && v < value {
		value = v
	}
	return value
}

// outerToInner converts a border-box size into the content-box size a
// box-sizing: content-box style's width/height properties are specified
// against, or returns the size unchanged for border-box sizing.
func outerToInner(outer float64, sizing BoxSizing, edgesBoth float64) float64 {
	if sizing == BoxSizingBorderBox {
		return outer
	}
	return outer + edgesBoth
}

// innerToOuter is outerToInner's inverse: given a content-box size (as
// resolved from the width/height property under content-box sizing),
// returns the resulting border-box size.
func innerToOuter(inner float64, sizing BoxSizing, edgesBoth float64) float64 {
	if sizing == BoxSizingBorderBox {
		return inner
	}
	return inner + edgesBoth
}
