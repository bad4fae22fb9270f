package layout

// InlineMeasureItem is one inline-level child handed to the embedder's text
// engine as a member of a line-layout run, per spec §4.5's "Inline layout
// and measure": "The core collects a contiguous run of inline siblings,
// calls the text engine once per block context."
type InlineMeasureItem struct {
	Node  *Node
	Style Style
}

// InlineRunResult is one run member's placement, as returned alongside the
// whole run's container size by InlineMeasure.LayoutRun.
type InlineRunResult struct {
	// Origin is the item's border-box origin relative to the run's own
	// top-left (i.e. relative to the block container's content box at the
	// y offset the run starts from).
	Origin Rect
	MeasureResult
}

// InlineMeasure is the embedder-supplied inline/text layout engine spec
// §4.5 names: "the core calls into it through an InlineMeasure trait,"
// grounded on float-pigment-layout's BlockContext inline-run coordination
// in layout_impl.rs. float-pigment-sub002 never shapes text itself; an
// embedder wires its own text stack in by attaching an implementation to
// Env.InlineMeasure.
type InlineMeasure interface {
	// LayoutRun lays out a contiguous run of inline-level siblings (all
	// display: inline | inline-block | inline-flex) as one line-breaking
	// context sized to containerWidth, returning the run's own resulting
	// block-axis size (the height consumed in the parent's block flow) and
	// each item's origin plus measured size, in run order.
	LayoutRun(env *Env, containerWidth float64, items []InlineMeasureItem) (Size, []InlineRunResult)
}

// isInlineLevel reports whether d is laid out as a member of an inline run
// rather than stacked as its own block.
func isInlineLevel(d Display) bool {
	return d == DisplayInline || d == DisplayInlineBlock || d == DisplayInlineFlex
}

// layoutInlineRun hands a contiguous run of inline-level siblings to
// env.InlineMeasure and commits the positions it returns, or — when no
// embedder text engine is wired — falls back to stacking each item as if
// it were its own block box, the same "no measure hook available"
// degenerate fallback flexBasisOf and resolveAbsoluteAxis document
// elsewhere in this package. Returns the new running y offset.
func layoutInlineRun(node *Node, env *Env, contentWidth, y float64, run []*Node) float64 {
	if env == nil || env.InlineMeasure == nil {
		for _, ch := range run {
			req := ComputeRequest{Kind: KindAllSize, ParentInnerSize: Size{Width: contentWidth}, ParentIsBlock: true}
			res := Compute(ch, env, req)
			positionChild(ch, env, 0, y, contentWidth, res)
			y += res.Size.Height
		}
		return y
	}

	items := make([]InlineMeasureItem, len(run))
	for i, ch := range run {
		items[i] = InlineMeasureItem{Node: ch, Style: ch.Payload}
	}
	size, results := env.InlineMeasure.LayoutRun(env, contentWidth, items)
	for i, ch := range run {
		if i >= len(results) {
			break
		}
		r := results[i]
		edges := resolveEdges(ch.Payload, contentWidth, true)
		rect := Rect{
			X: r.Origin.X, Y: y + r.Origin.Y,
			Width: r.MeasureResult.Size.Width, Height: r.MeasureResult.Size.Height,
		}
		ch.Unit.CommitPosition(rect, ComputedStyle{
			Size: r.MeasureResult.Size, Margin: edges.Margin, Border: edges.Border, Padding: edges.Padding,
		})
	}
	return y + size.Height
}
