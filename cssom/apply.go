package cssom

import "github.com/wechat-miniprogram/float-pigment-sub002/cssval"

// applyDeclaration resolves one declaration's global keyword (if any) and
// then dispatches its concrete value onto the matching NodeProperties
// field. Properties the NodeProperties subset doesn't model are silently
// ignored (as if the parser had already dropped them); var()/invalid
// declarations that reach here unsubstituted are also ignored, per spec
// §7 ("a cycle ... sets property N to None").
func applyDeclaration(np *NodeProperties, decl cssval.Declaration, ctx cssval.ResolveContext, parent *NodeProperties) {
	g := decl.Value
	switch {
	case g.IsInitial():
		applyFromProperties(np, decl.Property, DefaultNodeProperties())
		return
	case g.IsInherit():
		applyFromProperties(np, decl.Property, parent)
		return
	case g.IsUnset():
		if inheritedProperties[decl.Property] {
			applyFromProperties(np, decl.Property, parent)
		} else {
			applyFromProperties(np, decl.Property, DefaultNodeProperties())
		}
		return
	case g.IsInvalid(), g.IsVar():
		return
	}
	v, ok := g.Get()
	if !ok {
		return
	}
	setProperty(np, decl.Property, v, ctx)
}

func lengthOf(v cssval.PropertyValue) (cssval.Length, bool) {
	l, ok := v.(cssval.Length)
	return l, ok
}
func colorOf(v cssval.PropertyValue) (cssval.Color, bool) {
	c, ok := v.(cssval.Color)
	return c, ok
}
func numberOf(v cssval.PropertyValue) (cssval.Number, bool) {
	n, ok := v.(cssval.Number)
	return n, ok
}
func keywordOf(v cssval.PropertyValue) (cssval.Keyword, bool) {
	k, ok := v.(cssval.Keyword)
	return k, ok
}
func transformOf(v cssval.PropertyValue) (cssval.Transform, bool) {
	t, ok := v.(cssval.Transform)
	return t, ok
}
func bgPosOf(v cssval.PropertyValue) (cssval.BackgroundPosition, bool) {
	b, ok := v.(cssval.BackgroundPosition)
	return b, ok
}

// setProperty writes one resolved, concrete value onto np.
func setProperty(np *NodeProperties, prop string, v cssval.PropertyValue, ctx cssval.ResolveContext) {
	switch prop {
	case "width":
		if l, ok := lengthOf(v); ok {
			np.Width = l
		}
	case "height":
		if l, ok := lengthOf(v); ok {
			np.Height = l
		}
	case "min-width":
		if l, ok := lengthOf(v); ok {
			np.MinWidth = l
		}
	case "min-height":
		if l, ok := lengthOf(v); ok {
			np.MinHeight = l
		}
	case "max-width":
		if l, ok := lengthOf(v); ok {
			np.MaxWidth = l
		}
	case "max-height":
		if l, ok := lengthOf(v); ok {
			np.MaxHeight = l
		}
	case "box-sizing":
		if k, ok := keywordOf(v); ok {
			np.BoxSizing = k
		}
	case "margin-top":
		if l, ok := lengthOf(v); ok {
			np.MarginTop = l
		}
	case "margin-right":
		if l, ok := lengthOf(v); ok {
			np.MarginRight = l
		}
	case "margin-bottom":
		if l, ok := lengthOf(v); ok {
			np.MarginBottom = l
		}
	case "margin-left":
		if l, ok := lengthOf(v); ok {
			np.MarginLeft = l
		}
	case "padding-top":
		if l, ok := lengthOf(v); ok {
			np.PaddingTop = l
		}
	case "padding-right":
		if l, ok := lengthOf(v); ok {
			np.PaddingRight = l
		}
	case "padding-bottom":
		if l, ok := lengthOf(v); ok {
			np.PaddingBottom = l
		}
	case "padding-left":
		if l, ok := lengthOf(v); ok {
			np.PaddingLeft = l
		}
	case "border-top-width":
		if l, ok := lengthOf(v); ok {
			np.BorderTopWidth = l
		}
	case "border-right-width":
		if l, ok := lengthOf(v); ok {
			np.BorderRightWidth = l
		}
	case "border-bottom-width":
		if l, ok := lengthOf(v); ok {
			np.BorderBottomWidth = l
		}
	case "border-left-width":
		if l, ok := lengthOf(v); ok {
			np.BorderLeftWidth = l
		}
	case "border-top-color":
		if c, ok := colorOf(v); ok {
			np.BorderTopColor = c
		}
	case "border-right-color":
		if c, ok := colorOf(v); ok {
			np.BorderRightColor = c
		}
	case "border-bottom-color":
		if c, ok := colorOf(v); ok {
			np.BorderBottomColor = c
		}
	case "border-left-color":
		if c, ok := colorOf(v); ok {
			np.BorderLeftColor = c
		}
	case "display":
		if k, ok := keywordOf(v); ok {
			np.Display = k
		}
	case "position":
		if k, ok := keywordOf(v); ok {
			np.Position = k
		}
	case "top":
		if l, ok := lengthOf(v); ok {
			np.Top = l
		}
	case "right":
		if l, ok := lengthOf(v); ok {
			np.Right = l
		}
	case "bottom":
		if l, ok := lengthOf(v); ok {
			np.Bottom = l
		}
	case "left":
		if l, ok := lengthOf(v); ok {
			np.Left = l
		}
	case "z-index":
		if n, ok := numberOf(v); ok {
			np.ZIndex = n
		}
	case "overflow":
		if k, ok := keywordOf(v); ok {
			np.Overflow = k
		}
	case "visibility":
		if k, ok := keywordOf(v); ok {
			np.Visibility = k
		}
	case "flex-direction":
		if k, ok := keywordOf(v); ok {
			np.FlexDirection = k
		}
	case "flex-wrap":
		if k, ok := keywordOf(v); ok {
			np.FlexWrap = k
		}
	case "justify-content":
		if k, ok := keywordOf(v); ok {
			np.JustifyContent = k
		}
	case "align-items":
		if k, ok := keywordOf(v); ok {
			np.AlignItems = k
		}
	case "align-content":
		if k, ok := keywordOf(v); ok {
			np.AlignContent = k
		}
	case "row-gap":
		if l, ok := lengthOf(v); ok {
			np.RowGap = l
		}
	case "column-gap":
		if l, ok := lengthOf(v); ok {
			np.ColumnGap = l
		}
	case "flex-grow":
		if n, ok := numberOf(v); ok {
			np.FlexGrow = n
		}
	case "flex-shrink":
		if n, ok := numberOf(v); ok {
			np.FlexShrink = n
		}
	case "flex-basis":
		if l, ok := lengthOf(v); ok {
			np.FlexBasis = l
		}
	case "order":
		if n, ok := numberOf(v); ok {
			np.Order = n
		}
	case "align-self":
		if k, ok := keywordOf(v); ok {
			np.AlignSelf = k
		}
	case "grid-auto-flow":
		if k, ok := keywordOf(v); ok {
			np.GridAutoFlow = k
		}
	case "justify-items":
		if k, ok := keywordOf(v); ok {
			np.JustifyItems = k
		}
	case "justify-self":
		if k, ok := keywordOf(v); ok {
			np.JustifySelf = k
		}
	case "grid-column-start":
		if l, ok := lengthOf(v); ok {
			np.GridColumnStart = l
		}
	case "grid-column-end":
		if l, ok := lengthOf(v); ok {
			np.GridColumnEnd = l
		}
	case "grid-row-start":
		if l, ok := lengthOf(v); ok {
			np.GridRowStart = l
		}
	case "grid-row-end":
		if l, ok := lengthOf(v); ok {
			np.GridRowEnd = l
		}
	case "color":
		if c, ok := colorOf(v); ok {
			np.Color = c
		}
	case "background-color":
		if c, ok := colorOf(v); ok {
			np.BackgroundColor = c
		}
	case "background-position":
		if b, ok := bgPosOf(v); ok {
			np.BackgroundPos = b
		}
	case "background-repeat":
		if k, ok := keywordOf(v); ok {
			np.BackgroundRepeat = k
		}
	case "font-size":
		if l, ok := lengthOf(v); ok {
			np.FontSize = l
		}
	case "font-weight":
		if n, ok := numberOf(v); ok {
			np.FontWeight = n
		}
	case "line-height":
		if l, ok := lengthOf(v); ok {
			np.LineHeight = l
		}
	case "text-align":
		if k, ok := keywordOf(v); ok {
			np.TextAlign = k
		}
	case "opacity":
		if n, ok := numberOf(v); ok {
			np.Opacity = n
		}
	case "transform":
		if t, ok := transformOf(v); ok {
			np.Transform = t
		}
	case "direction":
		if k, ok := keywordOf(v); ok {
			np.Direction = k
		}
	case "writing-mode":
		if k, ok := keywordOf(v); ok {
			np.WritingMode = k
		}
	}
}

// applyFromProperties copies one named property's resolved value from src
// onto np, used for the initial/inherit/unset global keywords.
func applyFromProperties(np *NodeProperties, prop string, src *NodeProperties) {
	switch prop {
	case "width":
		np.Width = src.Width
	case "height":
		np.Height = src.Height
	case "min-width":
		np.MinWidth = src.MinWidth
	case "min-height":
		np.MinHeight = src.MinHeight
	case "max-width":
		np.MaxWidth = src.MaxWidth
	case "max-height":
		np.MaxHeight = src.MaxHeight
	case "box-sizing":
		np.BoxSizing = src.BoxSizing
	case "margin-top":
		np.MarginTop = src.MarginTop
	case "margin-right":
		np.MarginRight = src.MarginRight
	case "margin-bottom":
		np.MarginBottom = src.MarginBottom
	case "margin-left":
		np.MarginLeft = src.MarginLeft
	case "padding-top":
		np.PaddingTop = src.PaddingTop
	case "padding-right":
		np.PaddingRight = src.PaddingRight
	case "padding-bottom":
		np.PaddingBottom = src.PaddingBottom
	case "padding-left":
		np.PaddingLeft = src.PaddingLeft
	case "display":
		np.Display = src.Display
	case "position":
		np.Position = src.Position
	case "color":
		np.Color = src.Color
	case "background-color":
		np.BackgroundColor = src.BackgroundColor
	case "font-size":
		np.FontSize = src.FontSize
	case "font-weight":
		np.FontWeight = src.FontWeight
	case "line-height":
		np.LineHeight = src.LineHeight
	case "text-align":
		np.TextAlign = src.TextAlign
	case "opacity":
		np.Opacity = src.Opacity
	case "direction":
		np.Direction = src.Direction
	case "writing-mode":
		np.WritingMode = src.WritingMode
	case "visibility":
		np.Visibility = src.Visibility
	default:
		// Properties not explicitly listed here (flex/grid/transform/etc.)
		// are left unchanged: np keeps its already-resolved value for them
		// and nothing is copied from src.
	}
}
