// Package layout implements the layout engine described in spec §4.5: a
// recursive, cached computation over a tree of LayoutStyle-bearing nodes
// producing block, flexbox, grid, inline and absolute/fixed/sticky/relative
// positioning results.
//
// There is no analogous package in the teacher repo (npillmayer/fp has a
// style/cascade engine but no flex/grid layout algorithm); the algorithms
// here are grounded on
// _examples/original_source/float-pigment-forest/src/layout/layout_impl.rs
// and float-pigment-layout/src/algo/grid/{mod,track,track_sizing}.rs and
// special_positioned.rs. The node-tree backbone (layout/tree) generalizes
// the teacher's own tree.Node[T] (tree/node.go); the cache/dirty-propagation
// walk is synchronous recursion per spec §5, not tree/pipeline.go's
// concurrent filter-stage walker; no package in this module walks a tree
// concurrently.
package layout

import "github.com/wechat-miniprogram/float-pigment-sub002/layout/tree"

// Geometry and cache types live in layout/tree (since LayoutUnit, which
// needs them, lives there to sit directly on tree.Node); aliased here so
// Style/Measurer implementations and the algorithm files in this package
// never need to import the tree subpackage directly.
type (
	Size               = tree.Size
	Rect               = tree.Rect
	OptionalSize       = tree.OptionalSize
	EdgeSizes          = tree.EdgeSizes
	ComputeRequestKind = tree.ComputeRequestKind
	ComputeRequest     = tree.ComputeRequest
	ComputeResult      = tree.ComputeResult
	CollapsedMargin    = tree.CollapsedMargin
	ComputedStyle      = tree.ComputedStyle
	MeasureResult      = tree.MeasureResult
)

const (
	KindAllSize    = tree.KindAllSize
	KindPosition   = tree.KindPosition
	KindMaxContent = tree.KindMaxContent
	KindMinContent = tree.KindMinContent
)

// Display is the subset of CSS `display` values this engine distinguishes
// during layout dispatch.
type Display uint8

const (
	DisplayNone Display = iota
	DisplayBlock
	DisplayInlineBlock
	DisplayInline
	DisplayFlex
	DisplayInlineFlex
	DisplayGrid
)

// Position is the CSS `position` value, driving spec §4.5's "Position:
// absolute / fixed / sticky / relative" handling.
type Position uint8

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
	PositionSticky
)

// Direction is the CSS `direction` value; spec §4.5's grid section notes
// "direction: rtl flips column placement order; block axis is unaffected."
type Direction uint8

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// WritingMode is carried through LayoutStyle for parity with the original
// engine's trait surface; this subset only implements horizontal-tb layout,
// so it is read but never branches on beyond that (see DESIGN.md Open
// Question on writing-mode scope).
type WritingMode uint8

const (
	WritingModeHorizontalTB WritingMode = iota
	WritingModeVerticalRL
	WritingModeVerticalLR
)

// FlexDirection is the CSS `flex-direction` value.
type FlexDirection uint8

const (
	FlexDirectionRow FlexDirection = iota
	FlexDirectionRowReverse
	FlexDirectionColumn
	FlexDirectionColumnReverse
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool {
	return d == FlexDirectionRow || d == FlexDirectionRowReverse
}

// IsReversed reports whether items lay out from the end of the main axis.
func (d FlexDirection) IsReversed() bool {
	return d == FlexDirectionRowReverse || d == FlexDirectionColumnReverse
}

// FlexWrapMode is the CSS `flex-wrap` value.
type FlexWrapMode uint8

const (
	FlexNoWrap FlexWrapMode = iota
	FlexWrapOn
	FlexWrapReverse
)

// AlignItems/AlignSelf/AlignContent/JustifyContent mirror the CSS Flexbox
// and Grid alignment keyword sets spec §4.5 names.
type AlignItems uint8

const (
	AlignItemsStretch AlignItems = iota
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
)

type AlignSelf uint8

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStretch
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
)

type AlignContent uint8

const (
	AlignContentStretch AlignContent = iota
	AlignContentFlexStart
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentSpaceBetween
	AlignContentSpaceAround
)

type JustifyContent uint8

const (
	JustifyContentFlexStart JustifyContent = iota
	JustifyContentFlexEnd
	JustifyContentCenter
	JustifyContentSpaceBetween
	JustifyContentSpaceAround
	JustifyContentSpaceEvenly
)

// GridAutoFlow is the CSS `grid-auto-flow` value, per spec §4.5's "Auto
// placement per grid-auto-flow (row|column|row dense|column dense)".
type GridAutoFlow uint8

const (
	GridAutoFlowRow GridAutoFlow = iota
	GridAutoFlowColumn
	GridAutoFlowRowDense
	GridAutoFlowColumnDense
)

func (f GridAutoFlow) Dense() bool {
	return f == GridAutoFlowRowDense || f == GridAutoFlowColumnDense
}

func (f GridAutoFlow) Column() bool {
	return f == GridAutoFlowColumn || f == GridAutoFlowColumnDense
}

// ItemAlign is the start|end|center|stretch keyword set spec §4.5 uses for
// justify-items/justify-self/align-items/align-self within a grid cell.
type ItemAlign uint8

const (
	ItemAlignStretch ItemAlign = iota
	ItemAlignStart
	ItemAlignEnd
	ItemAlignCenter
	ItemAlignLeft
	ItemAlignRight
)

// TextAlign is carried through for inline layout's line-box alignment.
type TextAlign uint8

const (
	TextAlignStart TextAlign = iota
	TextAlignEnd
	TextAlignLeft
	TextAlignRight
	TextAlignCenter
)

// BoxSizing selects whether width/height apply to the content box or the
// border box.
type BoxSizing uint8

const (
	BoxSizingContentBox BoxSizing = iota
	BoxSizingBorderBox
)

// LengthKind is the tag of a Dimension value.
type LengthKind uint8

const (
	// LengthAuto leaves the dimension unresolved until layout decides it.
	LengthAuto LengthKind = iota
	// LengthPoints is an absolute length in layout units (px-equivalent).
	LengthPoints
	// LengthPercent is relative to a parent-supplied reference size.
	LengthPercent
	// LengthFraction is a grid `fr` track size.
	LengthFraction
)

// Dimension is this package's equivalent of the original engine's
// DefLength<Length, Custom>: a tagged length that may be indefinite
// (LengthAuto) or container-relative (LengthPercent), resolved against a
// reference size at layout time. It intentionally does not reuse
// cssval.Length directly: cssval's Length carries calc()/var() resolution
// concerns that belong to the style engine, whereas layout only ever needs
// the already-resolved numeric form (see DESIGN.md's style/layout boundary
// note).
type Dimension struct {
	Kind  LengthKind
	Value float64 // meaningless when Kind == LengthAuto
}

// Auto is the zero-value-equivalent "unresolved" dimension.
func Auto() Dimension { return Dimension{Kind: LengthAuto} }

// Points constructs an absolute-length dimension.
func Points(v float64) Dimension { return Dimension{Kind: LengthPoints, Value: v} }

// Percent constructs a percentage dimension.
func Percent(v float64) Dimension { return Dimension{Kind: LengthPercent, Value: v} }

// Fraction constructs a grid `fr` dimension.
func Fraction(v float64) Dimension { return Dimension{Kind: LengthFraction, Value: v} }

// IsAuto reports whether d is the auto keyword.
func (d Dimension) IsAuto() bool { return d.Kind == LengthAuto }

// IsDefinite reports whether d resolves to a concrete length without
// external context (true for Points, false for Auto/Percent/Fraction).
func (d Dimension) IsDefinite() bool { return d.Kind == LengthPoints }

// Resolve returns d's value against reference, or (0, false) if d cannot be
// resolved against a reference of this shape (Auto, or Percent/Fraction
// when no reference is available).
func (d Dimension) Resolve(reference float64, referenceKnown bool) (float64, bool) {
	switch d.Kind {
	case LengthPoints:
		return d.Value, true
	case LengthPercent:
		if !referenceKnown {
			return 0, false
		}
		return reference * d.Value / 100, true
	default:
		return 0, false
	}
}
