package tree

// ComputeRequestKind mirrors spec §4.5's ComputeRequestKind: the four
// shapes a layout request can take.
type ComputeRequestKind uint8

const (
	// KindAllSize computes the final border-box size given a (possibly
	// partial) requested size.
	KindAllSize ComputeRequestKind = iota
	// KindPosition computes as KindAllSize and additionally commits
	// origins for every descendant.
	KindPosition
	// KindMaxContent computes the node's intrinsic max-content size.
	KindMaxContent
	// KindMinContent computes the node's intrinsic min-content size.
	KindMinContent
)

// OptionalSize is a width/height pair where either axis may be indefinite,
// mirroring spec's OptionSize<Length>.
type OptionalSize struct {
	Width, Height     float64
	HasWidth, HasHeight bool
}

// Size is a definite width/height pair (a computed border-box size).
type Size struct {
	Width, Height float64
}

// Rect is an absolutely positioned box: origin plus size.
type Rect struct {
	X, Y, Width, Height float64
}

// ComputeRequest is the cache key's semantic content, per spec §3 "Layout
// data": {size, parent_inner_size, max_content, kind, parent_is_block}.
type ComputeRequest struct {
	Kind           ComputeRequestKind
	Size           OptionalSize
	ParentInnerSize Size
	MaxContent     OptionalSize
	ParentIsBlock  bool
}

// fingerprint reduces a ComputeRequest to a cheap, comparable cache key
// covering every field except Kind (the cache is keyed by kind first): two
// requests share a fingerprint exactly when all those fields are equal.
func (r ComputeRequest) fingerprint() [11]float64 {
	return [11]float64{
		boolToF(r.Size.HasWidth), r.Size.Width,
		boolToF(r.Size.HasHeight), r.Size.Height,
		r.ParentInnerSize.Width, r.ParentInnerSize.Height,
		boolToF(r.MaxContent.HasWidth), r.MaxContent.Width,
		boolToF(r.MaxContent.HasHeight), r.MaxContent.Height,
		boolToF(r.ParentIsBlock),
	}
}

func boolToF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// ComputeResult is the cached/returned value of a layout computation, per
// spec §3's ComputeResult: {size, first_baseline_ascent,
// last_baseline_ascent, collapsed_margin}.
type ComputeResult struct {
	Size                Size
	FirstBaselineAscent float64
	LastBaselineAscent  float64
	// CollapsedMargin is this subtree's outward-facing collapsed margin
	// contract at its block edges (spec §4.5 "Adjust the parent's
	// collapsed_margin contract").
	CollapsedMargin CollapsedMargin
}

// CollapsedMargin carries the two margins a block box still exposes to its
// neighbors after collapsing with its own in-flow children, per spec §4.5
// step 5 ("Adjust the parent's collapsed_margin contract").
type CollapsedMargin struct {
	Top, Bottom float64
	// ThroughBox is true when this box has zero border/padding/height,
	// meaning its own top and bottom margins have already collapsed
	// together and the box is transparent to further margin collapsing
	// on both sides at once. The layout package never sets it, so it is
	// always false.
	ThroughBox bool
}

// MeasureResult is the value an embedder's measure-kind node (an image,
// a text run) returns from MeasureBlockSize, per spec §3's
// "MeasureResult { size, first_baseline_ascent, last_baseline_ascent }".
type MeasureResult struct {
	Size                Size
	FirstBaselineAscent float64
	LastBaselineAscent  float64
}

type cacheEntry struct {
	key    ComputeRequest
	result ComputeResult
}

// LayoutUnit is the per-node mutable layout cache cell described by spec §3
// ("LayoutUnit { result: Rect, cache: LayoutCache, ... }") and §9's interior-
// mutability design note. Unlike the Rust original's RefCell<LayoutUnit>,
// Go's ordinary pointer semantics already give every Node[T] exclusive
// mutable access to its own cell; no borrow-checking equivalent is needed.
type LayoutUnit struct {
	dirty bool

	// result is the last committed Position-kind result: a border box
	// positioned relative to the parent's content origin.
	result Rect
	// computedStyle mirrors the node's resolved sizes as of the last
	// Position-kind compute, handed to LayoutTreeNode.size_updated-style
	// hooks in the Rust original; kept here for introspection/debugging.
	computedStyle ComputedStyle

	// caches, one small slice per kind, checked linearly (subtrees rarely
	// hold more than a handful of distinct requests alive at once, so a
	// map would only add overhead).
	caches [4][]cacheEntry
}

// ComputedStyle is a snapshot of a node's resolved box metrics after a
// Position-kind compute, per spec §3.
type ComputedStyle struct {
	Size    Size
	Margin  EdgeSizes
	Border  EdgeSizes
	Padding EdgeSizes
}

// EdgeSizes is a four-sided box-edge measurement (margin/border/padding).
type EdgeSizes struct {
	Top, Right, Bottom, Left float64
}

// NewLayoutUnit returns a fresh, dirty cache cell.
func NewLayoutUnit() *LayoutUnit {
	return &LayoutUnit{dirty: true}
}

// Dirty reports whether this node's cache has been invalidated since its
// last compute.
func (u *LayoutUnit) Dirty() bool { return u.dirty }

// Result returns the last committed border-box rect (spec's
// LayoutNode::result).
func (u *LayoutUnit) Result() Rect { return u.result }

// ResultPaddingRect returns the last committed padding-box rect.
func (u *LayoutUnit) ResultPaddingRect() Rect {
	r := u.result
	m := u.computedStyle.Border
	return Rect{
		X: r.X + m.Left, Y: r.Y + m.Top,
		Width:  r.Width - m.Left - m.Right,
		Height: r.Height - m.Top - m.Bottom,
	}
}

// ResultContentRect returns the last committed content-box rect.
func (u *LayoutUnit) ResultContentRect() Rect {
	pr := u.ResultPaddingRect()
	p := u.computedStyle.Padding
	return Rect{
		X: pr.X + p.Left, Y: pr.Y + p.Top,
		Width:  pr.Width - p.Left - p.Right,
		Height: pr.Height - p.Top - p.Bottom,
	}
}

// Lookup checks the cache for kind, returning a hit only on an exact
// fingerprint match, per spec §4.5 "maps (request_fingerprint ->
// ComputeResult) per kind and short-circuits on hit."
func (u *LayoutUnit) Lookup(req ComputeRequest) (ComputeResult, bool) {
	if u.dirty {
		return ComputeResult{}, false
	}
	fp := req.fingerprint()
	for _, e := range u.caches[req.Kind] {
		if e.key.fingerprint() == fp {
			return e.result, true
		}
	}
	return ComputeResult{}, false
}

// Store records a freshly computed result for req, evicting nothing (entries
// are cheap and a node rarely accumulates more than a few distinct requests
// between two mark_dirty calls).
func (u *LayoutUnit) Store(req ComputeRequest, res ComputeResult) {
	u.caches[req.Kind] = append(u.caches[req.Kind], cacheEntry{key: req, result: res})
	u.dirty = false
}

// CommitPosition records a Position-kind compute's final border box and
// resolved style, as LayoutNode::result()/result_padding_rect()/
// result_content_rect() read back afterward.
func (u *LayoutUnit) CommitPosition(rect Rect, cs ComputedStyle) {
	u.result = rect
	u.computedStyle = cs
}

// Offset nudges the last committed rect by (dx, dy), used to apply a
// `position: relative` offset on top of a child's normal in-flow
// placement without recomputing it.
func (u *LayoutUnit) Offset(dx, dy float64) {
	u.result.X += dx
	u.result.Y += dy
}

// invalidateAll drops every cached kind and marks the node dirty, used on
// the node a mark_dirty call originates from.
func (u *LayoutUnit) invalidateAll() {
	u.dirty = true
	for i := range u.caches {
		u.caches[i] = nil
	}
}

// invalidatePositionKind drops only the KindPosition cache, used when
// walking up ancestors after a mark_dirty: an ancestor's AllSize/MaxContent/
// MinContent results may still be valid (they don't depend on where the
// dirtied descendant sits), but any previously computed absolute
// descendant positions are no longer trustworthy.
func (u *LayoutUnit) invalidatePositionKind() {
	u.caches[KindPosition] = nil
}
