package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockMarginCollapse(t *testing.T) {
	// Two stacked blocks: first has margin-bottom:50px, second has
	// margin-top:40px. Adjacent positive margins collapse to their max,
	// so the gap between them is 50px, not 90px.
	a := newTestStyle()
	a.height = Points(20)
	a.marginBottom = Points(50)
	b := newTestStyle()
	b.height = Points(20)
	b.marginTop = Points(40)

	root := newTestStyle()
	root.width = Points(200)
	tree := node(root, node(a), node(b))

	ComputeRoot(tree, nil, Size{Width: 200, Height: 1000})

	aRect := tree.ChildAt(0).Unit.Result()
	bRect := tree.ChildAt(1).Unit.Result()
	assert.Equal(t, 0.0, aRect.Y)
	assert.Equal(t, 20.0, aRect.Height)
	assert.Equal(t, 70.0, bRect.Y, "gap between blocks should be the collapsed 50px margin")
}

func TestBlockMarginCollapseMixedSign(t *testing.T) {
	a := newTestStyle()
	a.height = Points(10)
	a.marginBottom = Points(-5)
	b := newTestStyle()
	b.height = Points(10)
	b.marginTop = Points(20)

	root := newTestStyle()
	root.width = Points(200)
	tree := node(root, node(a), node(b))
	ComputeRoot(tree, nil, Size{Width: 200, Height: 1000})

	bRect := tree.ChildAt(1).Unit.Result()
	assert.Equal(t, 25.0, bRect.Y) // 10 + (20 - 5)
}

func TestFlexGrowDistributesFreeSpace(t *testing.T) {
	// Three items, each flex-grow:1, no basis, inside a 300px row
	// container: each should end up with an equal 100px main size.
	container := newTestStyle()
	container.display = DisplayFlex
	container.width = Points(300)

	mk := func() *testStyle {
		s := newTestStyle()
		s.flexGrow = 1
		s.flexShrink = 0
		return s
	}
	c1, c2, c3 := mk(), mk(), mk()
	tree := node(container, node(c1), node(c2), node(c3))

	ComputeRoot(tree, nil, Size{Width: 300, Height: 100})

	for i := 0; i < 3; i++ {
		r := tree.ChildAt(i).Unit.Result()
		assert.InDelta(t, 100.0, r.Width, 0.001, "item %d should grow to an equal share", i)
	}
	assert.Equal(t, 0.0, tree.ChildAt(0).Unit.Result().X)
	assert.Equal(t, 100.0, tree.ChildAt(1).Unit.Result().X)
	assert.Equal(t, 200.0, tree.ChildAt(2).Unit.Result().X)
}

func TestFlexJustifyContentSpaceBetween(t *testing.T) {
	container := newTestStyle()
	container.display = DisplayFlex
	container.width = Points(300)
	container.justifyContent = JustifyContentSpaceBetween

	mk := func() *testStyle {
		s := newTestStyle()
		s.width = Points(50)
		return s
	}
	a, b := mk(), mk()
	tree := node(container, node(a), node(b))
	ComputeRoot(tree, nil, Size{Width: 300, Height: 50})

	assert.Equal(t, 0.0, tree.ChildAt(0).Unit.Result().X)
	assert.Equal(t, 250.0, tree.ChildAt(1).Unit.Result().X)
}

func TestGridFrTracksFreezeAtMinContent(t *testing.T) {
	// 300px container, two `1fr` columns, each item needing 200px: the
	// naive 150/150 split falls below each track's 200px floor, so both
	// tracks freeze at 200px (track_sizing.rs's iterative freeze).
	container := newTestStyle()
	container.display = DisplayGrid
	container.width = Points(300)
	container.gridTemplateColumns = []TrackSize{
		{Kind: TrackFraction, Value: 1},
		{Kind: TrackFraction, Value: 1},
	}

	mk := func() *testStyle {
		s := newTestStyle()
		s.width = Points(200)
		return s
	}
	a, b := mk(), mk()
	tree := node(container, node(a), node(b))
	ComputeRoot(tree, nil, Size{Width: 300, Height: 400})

	assert.InDelta(t, 200.0, tree.ChildAt(0).Unit.Result().Width, 0.001)
	assert.InDelta(t, 200.0, tree.ChildAt(1).Unit.Result().Width, 0.001)
	assert.Equal(t, 0.0, tree.ChildAt(0).Unit.Result().X)
	assert.Equal(t, 200.0, tree.ChildAt(1).Unit.Result().X)
}

func TestGridAutoFlowDenseFillsRowBeforeWrapping(t *testing.T) {
	// A 3-column grid under `row dense` with four identical 1x1 items:
	// each placement rescans from the grid origin for the first free cell,
	// so the first three items fill row 0 and the fourth wraps to row 1.
	container := newTestStyle()
	container.display = DisplayGrid
	container.width = Points(300)
	container.gridAutoFlow = GridAutoFlowRowDense
	container.gridTemplateColumns = []TrackSize{
		{Kind: TrackFixed, Value: 100},
		{Kind: TrackFixed, Value: 100},
		{Kind: TrackFixed, Value: 100},
	}

	items := make([]*Node, 4)
	for i := range items {
		s := newTestStyle()
		s.height = Points(50)
		items[i] = node(s)
	}
	tree := node(container, items...)
	ComputeRoot(tree, nil, Size{Width: 300, Height: 400})

	// With only 3 explicit columns and 4 items, dense packing still fills
	// row 0 fully before any item lands in row 1.
	assert.Equal(t, 0.0, items[0].Unit.Result().Y)
	assert.Equal(t, 0.0, items[1].Unit.Result().Y)
	assert.Equal(t, 0.0, items[2].Unit.Result().Y)
	assert.Greater(t, items[3].Unit.Result().Y, 0.0)
}

func TestPositionAbsoluteCentersWhenBothSidesDefinite(t *testing.T) {
	container := newTestStyle()
	container.width = Points(200)
	container.height = Points(200)

	child := newTestStyle()
	child.position = PositionAbsolute
	child.width = Points(50)
	child.left = Points(0)
	child.right = Points(0) // both sides definite, auto margins center
	child.marginLeft = Auto()
	child.marginRight = Auto()

	tree := node(container, node(child))
	ComputeRoot(tree, nil, Size{Width: 200, Height: 200})

	r := tree.ChildAt(0).Unit.Result()
	assert.InDelta(t, 75.0, r.X, 0.001, "centered between left:0 and right:0 within a 200px box, item width 50px")
}

func TestPositionRelativeOffsetsInFlowChild(t *testing.T) {
	container := newTestStyle()
	container.width = Points(200)

	child := newTestStyle()
	child.position = PositionRelative
	child.height = Points(10)
	child.top = Points(5)
	child.left = Points(3)

	tree := node(container, node(child))
	ComputeRoot(tree, nil, Size{Width: 200, Height: 200})

	r := tree.ChildAt(0).Unit.Result()
	assert.Equal(t, 3.0, r.X)
	assert.Equal(t, 5.0, r.Y)
}
