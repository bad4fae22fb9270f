package layout

// testStyle is a hand-filled Style implementation used across this
// package's tests, standing in for an embedder's resolved
// cssom.NodeProperties adapter (see style.go's doc comment on why layout
// never imports cssom directly).
type testStyle struct {
	display                                           Display
	position                                          Position
	direction                                         Direction
	writingMode                                       WritingMode
	flexDirection                                     FlexDirection
	flexWrap                                          FlexWrapMode
	alignItems                                        AlignItems
	alignSelf                                         AlignSelf
	alignContent                                      AlignContent
	justifyContent                                    JustifyContent
	flexGrow, flexShrink                              float64
	flexBasis                                         Dimension
	order                                             int
	gridTemplateColumns, gridTemplateRows             []TrackSize
	gridAutoFlow                                      GridAutoFlow
	rowGap, columnGap                                 float64
	justifyItems, justifySelf                         ItemAlign
	left, right, top, bottom                          Dimension
	width, height                                     Dimension
	minWidth, minHeight, maxWidth, maxHeight          Dimension
	aspectRatio                                       float64
	hasAspectRatio                                    bool
	boxSizing                                         BoxSizing
	marginLeft, marginRight, marginTop, marginBottom  Dimension
	borderLeft, borderRight, borderTop, borderBottom  float64
	paddingLeft, paddingRight, paddingTop, paddingBottom Dimension
	textAlign                                         TextAlign
}

// newTestStyle returns a testStyle with CSS's own initial values: auto
// sizing, zero margin/border/padding, flex-shrink:1, everything else at
// its keyword default (the zero value of each enum already is the CSS
// default for every enum in this package — see types.go).
func newTestStyle() *testStyle {
	return &testStyle{
		display:     DisplayBlock,
		flexShrink:  1,
		width:       Auto(),
		height:      Auto(),
		minWidth:    Auto(),
		minHeight:   Auto(),
		maxWidth:    Auto(),
		maxHeight:   Auto(),
		flexBasis:   Auto(),
		left:        Auto(),
		right:       Auto(),
		top:         Auto(),
		bottom:      Auto(),
		marginLeft:  Points(0),
		marginRight: Points(0),
		marginTop:   Points(0),
		marginBottom: Points(0),
		paddingLeft:  Points(0),
		paddingRight: Points(0),
		paddingTop:   Points(0),
		paddingBottom: Points(0),
	}
}

func (s *testStyle) Display() Display             { return s.display }
func (s *testStyle) Position() Position           { return s.position }
func (s *testStyle) Direction() Direction         { return s.direction }
func (s *testStyle) WritingMode() WritingMode     { return s.writingMode }

func (s *testStyle) FlexDirection() FlexDirection { return s.flexDirection }
func (s *testStyle) FlexWrap() FlexWrapMode       { return s.flexWrap }
func (s *testStyle) AlignItems() AlignItems       { return s.alignItems }
func (s *testStyle) AlignSelf() AlignSelf         { return s.alignSelf }
func (s *testStyle) AlignContent() AlignContent   { return s.alignContent }
func (s *testStyle) JustifyContent() JustifyContent { return s.justifyContent }
func (s *testStyle) FlexGrow() float64            { return s.flexGrow }
func (s *testStyle) FlexShrink() float64          { return s.flexShrink }
func (s *testStyle) FlexBasis() Dimension         { return s.flexBasis }
func (s *testStyle) Order() int                   { return s.order }

func (s *testStyle) GridTemplateColumns() []TrackSize { return s.gridTemplateColumns }
func (s *testStyle) GridTemplateRows() []TrackSize    { return s.gridTemplateRows }
func (s *testStyle) GridAutoFlow() GridAutoFlow       { return s.gridAutoFlow }
func (s *testStyle) RowGap() float64                  { return s.rowGap }
func (s *testStyle) ColumnGap() float64                { return s.columnGap }
func (s *testStyle) JustifyItems() ItemAlign          { return s.justifyItems }
func (s *testStyle) JustifySelf() ItemAlign           { return s.justifySelf }

func (s *testStyle) Left() Dimension   { return s.left }
func (s *testStyle) Right() Dimension  { return s.right }
func (s *testStyle) Top() Dimension    { return s.top }
func (s *testStyle) Bottom() Dimension { return s.bottom }

func (s *testStyle) Width() Dimension     { return s.width }
func (s *testStyle) Height() Dimension    { return s.height }
func (s *testStyle) MinWidth() Dimension  { return s.minWidth }
func (s *testStyle) MinHeight() Dimension { return s.minHeight }
func (s *testStyle) MaxWidth() Dimension  { return s.maxWidth }
func (s *testStyle) MaxHeight() Dimension { return s.maxHeight }
func (s *testStyle) AspectRatio() (float64, bool) { return s.aspectRatio, s.hasAspectRatio }
func (s *testStyle) BoxSizing() BoxSizing { return s.boxSizing }

func (s *testStyle) MarginLeft() Dimension   { return s.marginLeft }
func (s *testStyle) MarginRight() Dimension  { return s.marginRight }
func (s *testStyle) MarginTop() Dimension    { return s.marginTop }
func (s *testStyle) MarginBottom() Dimension { return s.marginBottom }
func (s *testStyle) BorderLeft() float64     { return s.borderLeft }
func (s *testStyle) BorderRight() float64    { return s.borderRight }
func (s *testStyle) BorderTop() float64      { return s.borderTop }
func (s *testStyle) BorderBottom() float64   { return s.borderBottom }
func (s *testStyle) PaddingLeft() Dimension   { return s.paddingLeft }
func (s *testStyle) PaddingRight() Dimension  { return s.paddingRight }
func (s *testStyle) PaddingTop() Dimension    { return s.paddingTop }
func (s *testStyle) PaddingBottom() Dimension { return s.paddingBottom }

func (s *testStyle) TextAlign() TextAlign { return s.textAlign }

// node is a small helper building a *Node from a testStyle and children.
func node(s *testStyle, children ...*Node) *Node {
	n := NewNode(Style(s))
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}
