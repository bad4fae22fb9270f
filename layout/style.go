package layout

// Style is the layout engine's view of a node's resolved style, mirroring
// spec §4.5's "Each node exposes a LayoutStyle trait (width/height,
// min/max, margin/padding/border, flex and grid props, position, writing
// mode)" and float-pigment-layout's LayoutStyle<L, T> trait. An embedder
// adapts its own resolved cssom.NodeProperties into this interface (kept
// deliberately separate from NodeProperties itself: layout only ever reads
// already-resolved numeric Dimensions, never var()/calc() or cascade
// concerns).
type Style interface {
	Display() Display
	Position() Position
	Direction() Direction
	WritingMode() WritingMode

	FlexDirection() FlexDirection
	FlexWrap() FlexWrapMode
	AlignItems() AlignItems
	AlignSelf() AlignSelf
	AlignContent() AlignContent
	JustifyContent() JustifyContent
	FlexGrow() float64
	FlexShrink() float64
	FlexBasis() Dimension
	Order() int

	GridTemplateColumns() []TrackSize
	GridTemplateRows() []TrackSize
	GridAutoFlow() GridAutoFlow
	RowGap() float64
	ColumnGap() float64
	JustifyItems() ItemAlign
	JustifySelf() ItemAlign

	Left() Dimension
	Right() Dimension
	Top() Dimension
	Bottom() Dimension

	Width() Dimension
	Height() Dimension
	MinWidth() Dimension
	MinHeight() Dimension
	MaxWidth() Dimension
	MaxHeight() Dimension
	AspectRatio() (float64, bool)
	BoxSizing() BoxSizing

	MarginLeft() Dimension
	MarginRight() Dimension
	MarginTop() Dimension
	MarginBottom() Dimension
	BorderLeft() float64
	BorderRight() float64
	BorderTop() float64
	BorderBottom() float64
	PaddingLeft() Dimension
	PaddingRight() Dimension
	PaddingTop() Dimension
	PaddingBottom() Dimension

	TextAlign() TextAlign
}

// TrackSize is one entry of an explicit grid-template-columns/rows list,
// per spec §4.5's "fixed, percentage, auto, and fr track sizes".
type TrackSize struct {
	Kind  TrackSizeKind
	Value float64
}

type TrackSizeKind uint8

const (
	TrackFixed TrackSizeKind = iota
	TrackPercent
	TrackAuto
	TrackFraction
)

// Env is spec §4.5's MediaQueryStatus, passed to every layout call: "a value
// passed to every query and layout call... used for @media evaluation and
// for resolving vw/vh/vmin/vmax/env(...)".
type Env struct {
	IsScreen      bool
	ScreenWidth   float64
	ScreenHeight  float64
	PixelRatio    float64
	BaseFontSize  float64
	Theme         string
	SafeAreaInset EdgeInsets

	// InlineMeasure is the embedder's text/inline layout engine, consulted
	// by block layout for any contiguous run of inline-level children (see
	// inline.go). Nil means no inline-level children can be laid out beyond
	// this package's degenerate block-stacking fallback.
	InlineMeasure InlineMeasure
}

// EdgeInsets is the env(safe-area-inset-*) quadruple.
type EdgeInsets struct {
	Top, Right, Bottom, Left float64
}

// Measurer is the embedder hook for leaf nodes that compute their own
// intrinsic size (images, text), mirroring LayoutTreeNode::should_measure/
// measure_block_size in the original engine.
type Measurer interface {
	// ShouldMeasure reports whether this node computes its own size
	// rather than being sized purely from its children/style.
	ShouldMeasure(env *Env) bool
	// MeasureBlockSize returns the node's size for the given constraints.
	// minSize/maxSize bound the result; reqSize/maxContentSize may be
	// partially or fully indefinite.
	MeasureBlockSize(env *Env, reqSize OptionalSize, minSize, maxSize Size, maxContentSize OptionalSize) MeasureResult
}
