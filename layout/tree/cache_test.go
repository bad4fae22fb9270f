package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutUnitCacheHitOnExactFingerprint(t *testing.T) {
	u := NewLayoutUnit()
	req := ComputeRequest{Kind: KindAllSize, Size: OptionalSize{Width: 100, HasWidth: true}}
	_, hit := u.Lookup(req)
	assert.False(t, hit, "a fresh unit has nothing cached")

	res := ComputeResult{Size: Size{Width: 100, Height: 40}}
	u.Store(req, res)
	got, hit := u.Lookup(req)
	assert.True(t, hit)
	assert.Equal(t, res, got)

	other := ComputeRequest{Kind: KindAllSize, Size: OptionalSize{Width: 200, HasWidth: true}}
	_, hit = u.Lookup(other)
	assert.False(t, hit, "a different request shape is a cache miss even for the same kind")
}

func TestLayoutUnitInvalidateAllClearsEveryKind(t *testing.T) {
	u := NewLayoutUnit()
	req := ComputeRequest{Kind: KindMaxContent}
	u.Store(req, ComputeResult{})
	assert.False(t, u.Dirty())

	u.invalidateAll()
	assert.True(t, u.Dirty())
	_, hit := u.Lookup(req)
	assert.False(t, hit)
}

func TestLayoutUnitInvalidatePositionKindOnlyDropsPosition(t *testing.T) {
	u := NewLayoutUnit()
	allSizeReq := ComputeRequest{Kind: KindAllSize}
	posReq := ComputeRequest{Kind: KindPosition}
	u.Store(allSizeReq, ComputeResult{Size: Size{Width: 5}})
	u.Store(posReq, ComputeResult{Size: Size{Width: 5}})

	u.invalidatePositionKind()
	assert.False(t, u.Dirty(), "only the position cache is dropped, not the whole unit")
	_, hitAllSize := u.Lookup(allSizeReq)
	_, hitPos := u.Lookup(posReq)
	assert.True(t, hitAllSize)
	assert.False(t, hitPos)
}

func TestLayoutUnitOffsetNudgesCommittedRect(t *testing.T) {
	u := NewLayoutUnit()
	u.CommitPosition(Rect{X: 10, Y: 20, Width: 30, Height: 40}, ComputedStyle{})
	u.Offset(5, -3)
	got := u.Result()
	assert.Equal(t, 15.0, got.X)
	assert.Equal(t, 17.0, got.Y)
	assert.Equal(t, 30.0, got.Width)
}

func TestMarkDirtyInvalidatesAncestorsPositionOnly(t *testing.T) {
	root := NewNode[string]("root")
	child := NewNode[string]("child")
	root.AddChild(child)

	rootAllSize := ComputeRequest{Kind: KindAllSize}
	rootPos := ComputeRequest{Kind: KindPosition}
	root.Unit.Store(rootAllSize, ComputeResult{})
	root.Unit.Store(rootPos, ComputeResult{})

	child.MarkDirty()

	assert.True(t, child.Unit.Dirty())
	assert.False(t, root.Unit.Dirty(), "an ancestor is never fully invalidated by a descendant's dirty")
	_, hitAllSize := root.Unit.Lookup(rootAllSize)
	_, hitPos := root.Unit.Lookup(rootPos)
	assert.True(t, hitAllSize, "non-position caches survive a descendant's mark_dirty")
	assert.False(t, hitPos, "position cache is invalidated up the ancestor chain")
}
