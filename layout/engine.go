package layout

import "github.com/wechat-miniprogram/float-pigment-sub002/layout/tree"

// Node is a layout tree node whose payload is the node's own resolved
// Style (optionally also implementing Measurer for leaf/measure nodes).
type Node = tree.Node[Style]

// NewNode wraps style in a fresh layout tree node with a dirty cache cell.
func NewNode(style Style) *Node { return tree.NewNode[Style](style) }

// ComputeRoot lays out the whole tree rooted at node against the given
// viewport/available size and commits every descendant's position, per
// spec §4.5's "Position — compute as AllSize and commit origins for all
// descendants." Unlike Compute, ComputeRoot also commits the root's own
// rect, since no parent exists to do that on its behalf.
func ComputeRoot(node *Node, env *Env, available Size) ComputeResult {
	req := ComputeRequest{
		Kind: KindPosition,
		Size: OptionalSize{
			Width: available.Width, HasWidth: true,
			Height: available.Height, HasHeight: true,
		},
		ParentInnerSize: available,
		ParentIsBlock:   true,
	}
	res := Compute(node, env, req)
	edges := resolveEdges(node.Payload, available.Width, true)
	node.Unit.CommitPosition(Rect{X: 0, Y: 0, Width: res.Size.Width, Height: res.Size.Height}, ComputedStyle{
		Size: res.Size, Margin: edges.Margin, Border: edges.Border, Padding: edges.Padding,
	})
	return res
}

// Compute is the recursive layout entry point described by spec §4.5: "The
// engine is a recursive computation with a multi-kind cache." It resolves
// node's own border-box size for req and, for KindPosition, lays out and
// positions node's in-flow children (absolute/fixed children are deferred
// to resolvePositionedChildren, called after the normal-flow pass). Synchronous
// recursion only — this package never touches tree/pipeline.go's
// concurrent walker (see spec §4.5, §5).
func Compute(node *Node, env *Env, req ComputeRequest) ComputeResult {
	if res, ok := node.Unit.Lookup(req); ok {
		return res
	}
	style := node.Payload
	referenceWidth := req.ParentInnerSize.Width
	edges := resolveEdges(style, referenceWidth, true)

	outerWidth := resolveOuterWidth(style, req, edges, referenceWidth)
	contentWidth := maxF(0, outerWidth-edges.borderBoxHorizontal())

	var contentHeight float64
	var collapsed CollapsedMargin
	position := req.Kind == KindPosition

	if m, ok := style.(Measurer); ok && m.ShouldMeasure(env) {
		mr := m.MeasureBlockSize(env,
			OptionalSize{Width: contentWidth, HasWidth: true},
			Size{}, Size{Width: contentWidth, Height: 1e9},
			req.MaxContent)
		contentHeight = mr.Size.Height
		if hdim := style.Height(); !hdim.IsAuto() {
			if v, ok := hdim.Resolve(req.ParentInnerSize.Height, req.ParentInnerSize.Height > 0); ok {
				contentHeight = v
			}
		}
	} else {
		switch style.Display() {
		case DisplayFlex, DisplayInlineFlex:
			contentHeight = layoutFlexChildren(node, env, contentWidth, position)
		case DisplayGrid:
			contentHeight = layoutGridChildren(node, env, contentWidth, position)
		default: // DisplayBlock, DisplayInlineBlock, DisplayInline (degenerate fallback)
			contentHeight, collapsed = layoutBlockChildren(node, env, contentWidth, position)
		}
		if hdim := style.Height(); !hdim.IsAuto() {
			if v, ok := hdim.Resolve(req.ParentInnerSize.Height, req.ParentInnerSize.Height > 0); ok {
				contentHeight = v
			}
		}
	}
	contentHeight = clamp(contentHeight, style.MinHeight(), style.MaxHeight(), req.ParentInnerSize.Height, req.ParentInnerSize.Height > 0)

	outerHeight := innerToOuter(contentHeight, style.BoxSizing(), edges.borderBoxVertical())

	if position {
		resolvePositionedChildren(node, env, contentWidth, contentHeight)
	}

	res := ComputeResult{Size: Size{Width: outerWidth, Height: outerHeight}, CollapsedMargin: collapsed}
	node.Unit.Store(req, res)
	return res
}

// resolveOuterWidth computes node's border-box width for req: an explicit
// request size wins (used when a flex/grid parent already decided this
// child's width), otherwise the style's own width (resolved + clamped), or
// for width:auto within a block context, the parent's available width
// minus this node's own margins (CSS's block "fill available width"
// default).
func resolveOuterWidth(style Style, req ComputeRequest, edges resolvedEdges, referenceWidth float64) float64 {
	if req.Size.HasWidth {
		return req.Size.Width
	}
	wdim := style.Width()
	if !wdim.IsAuto() {
		contentW, _ := wdim.Resolve(referenceWidth, true)
		contentW = clamp(contentW, style.MinWidth(), style.MaxWidth(), referenceWidth, true)
		return innerToOuter(contentW, style.BoxSizing(), edges.borderBoxHorizontal())
	}
	if req.ParentIsBlock {
		w := referenceWidth - edges.Margin.Left - edges.Margin.Right
		return clamp(w, Points(0), Dimension{}, referenceWidth, true) // never negative
	}
	return 0
}
