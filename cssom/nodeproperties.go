package cssom

import "github.com/wechat-miniprogram/float-pigment-sub002/cssval"

// GridTrack is one track-sizing function in a grid-template-columns/rows
// list: a fixed Length, or a flexible "fr" share (spec §4.5's explicit
// fixed/percentage/auto/fr subset; no minmax()/named lines/span).
type GridTrack struct {
	Length cssval.Length
	Fr     float64 // > 0 when this track is an "Nfr" flexible track
	IsFr   bool
}

// NodeProperties is the post-cascade resolved value for every CSS property
// this engine supports, per spec §3. It is a representative, complete-per-
// box-model subset of the source's ~180-field generated struct (see
// DESIGN.md "Property table size" decision): sizing, margin/padding/
// border, display/position, flex container+item, grid container+item,
// color/background, and text-direction/writing-mode, sufficient to
// exercise every layout algorithm in spec §4.5.
type NodeProperties struct {
	// Box sizing
	Width, Height             cssval.Length
	MinWidth, MinHeight       cssval.Length
	MaxWidth, MaxHeight       cssval.Length
	BoxSizing                 cssval.Keyword

	// Margin / padding / border
	MarginTop, MarginRight, MarginBottom, MarginLeft         cssval.Length
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft     cssval.Length
	BorderTopWidth, BorderRightWidth, BorderBottomWidth, BorderLeftWidth cssval.Length
	BorderTopColor, BorderRightColor, BorderBottomColor, BorderLeftColor cssval.Color

	// Display / position
	Display  cssval.Keyword
	Position cssval.Keyword
	Top, Right, Bottom, Left cssval.Length
	ZIndex   cssval.Number
	Overflow cssval.Keyword
	Visibility cssval.Keyword

	// Flex container
	FlexDirection  cssval.Keyword
	FlexWrap       cssval.Keyword
	JustifyContent cssval.Keyword
	AlignItems     cssval.Keyword
	AlignContent   cssval.Keyword
	RowGap         cssval.Length
	ColumnGap      cssval.Length

	// Flex item
	FlexGrow   cssval.Number
	FlexShrink cssval.Number
	FlexBasis  cssval.Length
	Order      cssval.Number
	AlignSelf  cssval.Keyword

	// Grid container
	GridTemplateColumns []GridTrack
	GridTemplateRows    []GridTrack
	GridAutoFlow        cssval.Keyword
	JustifyItems        cssval.Keyword

	// Grid item
	GridColumnStart, GridColumnEnd cssval.Length
	GridRowStart, GridRowEnd       cssval.Length
	JustifySelf                    cssval.Keyword

	// Color / background
	Color            cssval.Color
	BackgroundColor  cssval.Color
	BackgroundImage  string
	BackgroundPos    cssval.BackgroundPosition
	BackgroundSizeX  cssval.Length
	BackgroundSizeY  cssval.Length
	BackgroundRepeat cssval.Keyword

	// Text / font / transform
	FontSize   cssval.Length
	FontWeight cssval.Number
	LineHeight cssval.Length
	TextAlign  cssval.Keyword
	Opacity    cssval.Number
	Transform  cssval.Transform

	// Writing direction
	Direction   cssval.Keyword
	WritingMode cssval.Keyword
}

// DefaultNodeProperties returns the CSS initial values for every field,
// used as the root's "parent" during cascade and whenever a declaration
// resolves to the "initial" global keyword.
func DefaultNodeProperties() *NodeProperties {
	return &NodeProperties{
		Width: cssval.Auto(), Height: cssval.Auto(),
		MinWidth: cssval.Undefined(), MinHeight: cssval.Undefined(),
		MaxWidth: cssval.Undefined(), MaxHeight: cssval.Undefined(),
		BoxSizing: "content-box",
		MarginTop: cssval.Px(0), MarginRight: cssval.Px(0), MarginBottom: cssval.Px(0), MarginLeft: cssval.Px(0),
		PaddingTop: cssval.Px(0), PaddingRight: cssval.Px(0), PaddingBottom: cssval.Px(0), PaddingLeft: cssval.Px(0),
		BorderTopWidth: cssval.Px(0), BorderRightWidth: cssval.Px(0), BorderBottomWidth: cssval.Px(0), BorderLeftWidth: cssval.Px(0),
		Display: "block", Position: "static",
		Top: cssval.Auto(), Right: cssval.Auto(), Bottom: cssval.Auto(), Left: cssval.Auto(),
		ZIndex: cssval.Num(0), Overflow: "visible", Visibility: "visible",
		FlexDirection: "row", FlexWrap: "nowrap", JustifyContent: "flex-start",
		AlignItems: "stretch", AlignContent: "stretch",
		RowGap: cssval.Px(0), ColumnGap: cssval.Px(0),
		FlexGrow: cssval.Num(0), FlexShrink: cssval.Num(1), FlexBasis: cssval.Auto(),
		Order: cssval.Num(0), AlignSelf: "auto",
		GridAutoFlow: "row", JustifyItems: "stretch",
		GridColumnStart: cssval.Auto(), GridColumnEnd: cssval.Auto(),
		GridRowStart: cssval.Auto(), GridRowEnd: cssval.Auto(),
		JustifySelf: "stretch",
		Color:           cssval.RGBA(0, 0, 0, 0xff),
		BackgroundColor: cssval.Transparent(),
		BackgroundPos:   cssval.BgPosKeyword(cssval.BgLeft, cssval.BgTop),
		BackgroundSizeX: cssval.Auto(), BackgroundSizeY: cssval.Auto(),
		BackgroundRepeat: "repeat",
		FontSize:         cssval.Px(16),
		FontWeight:       cssval.Num(400),
		LineHeight:       cssval.Auto(),
		TextAlign:        "left",
		Opacity:          cssval.Num(1),
		Transform:        cssval.TransformNone(),
		Direction:        "ltr",
		WritingMode:      "horizontal-tb",
	}
}

// inheritedProperties is the set of CSS property names that inherit from
// parent to child by default, used to resolve the "unset" global keyword.
var inheritedProperties = map[string]bool{
	"color": true, "font-size": true, "font-weight": true, "line-height": true,
	"text-align": true, "visibility": true, "direction": true, "writing-mode": true,
}

// NodePropertiesOrder is the cascade scratch table recording, per property
// name, the highest weight applied to that property so far, per spec §3:
// "a parallel NodePropertiesOrder scratch whose per-field u64 weight
// records the highest weight applied so far." A map is used instead of the
// struct-of-u64 the source generates at build time (this repo hand-writes
// NodeProperties rather than re-implementing the code generator, see
// SPEC_FULL.md §9); the cascade semantics -- highest weight wins, later at
// equal weight wins -- are identical either way.
type NodePropertiesOrder struct {
	weight map[string]uint64
	seen   map[string]bool
}

// NewNodePropertiesOrder creates an empty scratch table.
func NewNodePropertiesOrder() *NodePropertiesOrder {
	return &NodePropertiesOrder{weight: make(map[string]uint64), seen: make(map[string]bool)}
}

// apply records weight for prop and reports whether it is now the winner
// (weight >= the previously recorded weight, or never seen before).
func (o *NodePropertiesOrder) apply(prop string, weight uint64) bool {
	if !o.seen[prop] || weight >= o.weight[prop] {
		o.weight[prop] = weight
		o.seen[prop] = true
		return true
	}
	return false
}

// Merge resolves MatchedRuleList rules (plus inline styles) into np, per
// spec §4.4's two-pass cascade: "A first sweep resolves font-size...; a
// second sweep resolves everything else using that current_font_size."
// parent supplies inherited values; extraStyles are additional declarations
// (e.g. a component's default style block) applied at weight 0, the lowest
// weight in the cascade, so any matched rule or inline declaration of higher
// weight overrides them, matching the
// merge_node_properties(parent, current_font_size, extra_styles) shape
// from spec §6.
func (m *MatchedRuleList) Merge(np *NodeProperties, parent *NodeProperties, inline []cssval.Declaration, extraStyles []cssval.Declaration, fontCtx cssval.ResolveContext) float64 {
	if parent == nil {
		parent = DefaultNodeProperties()
	}
	order := NewNodePropertiesOrder()

	type weighted struct {
		decl   cssval.Declaration
		weight uint64
	}
	var all []weighted
	for _, d := range inline {
		w := weightInline
		all = append(all, weighted{d, w})
	}
	for _, mr := range m.Rules {
		for _, pm := range mr.Rule.Properties {
			w := mr.Weight
			if pm.Important() {
				w += weightImportant
			}
			for _, d := range pm.Declarations() {
				all = append(all, weighted{d, w})
			}
		}
	}
	for _, d := range extraStyles {
		all = append(all, weighted{d, 0})
	}

	// Pass 1: font-size only (so em/rem resolve against the right size).
	for _, wd := range all {
		if wd.decl.Property != "font-size" {
			continue
		}
		if !order.apply("font-size", wd.weight) {
			continue
		}
		applyDeclaration(np, wd.decl, fontCtx, parent)
	}
	fontSize := resolveFontSize(np.FontSize, fontCtx, parent.FontSize)
	ctx := fontCtx
	ctx.FontSize = fontSize

	// Pass 2: everything else.
	for _, wd := range all {
		if wd.decl.Property == "font-size" {
			continue
		}
		if !order.apply(wd.decl.Property, wd.weight) {
			continue
		}
		applyDeclaration(np, wd.decl, ctx, parent)
	}
	return fontSize
}

func resolveFontSize(l cssval.Length, ctx cssval.ResolveContext, parentFontSize float64) float64 {
	if l.IsAuto() || l.IsUndefined() {
		return parentFontSize
	}
	c := ctx
	c.FontSize = parentFontSize
	return l.Resolve(c)
}
