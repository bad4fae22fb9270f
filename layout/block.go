package layout

// layoutBlockChildren lays out node's in-flow block children top to bottom
// inside contentWidth (definite) with top-left origin (0,0) relative to
// node's own content box, per spec §4.5 "Block layout":
//  1. Resolve inner constraints.
//  2. Recurse AllSize.
//  3. Apply margin collapse.
//  4. Place at the running block offset.
//  5. Adjust the parent's collapsed_margin contract.
//
// Returns the content height consumed and the block's own outward-facing
// collapsed margin (what its first/last child still expose to node's own
// neighbors, per "a parent collapses with its first/last in-flow child iff
// no border/padding separates them").
func layoutBlockChildren(node *Node, env *Env, contentWidth float64, position bool) (float64, CollapsedMargin) {
	style := node.Payload
	y := 0.0
	var prevMargin float64
	havePrevMargin := false
	var contract CollapsedMargin
	haveContract := false
	seenInFlow := false

	n := node.ChildCount()
	for i := 0; i < n; i++ {
		ch := node.ChildAt(i)
		cs := ch.Payload
		if cs.Display() == DisplayNone || cs.Position() == PositionAbsolute || cs.Position() == PositionFixed {
			continue // spec §4.5 flexbox step 1 applies equally here: skip out-of-flow children
		}

		if isInlineLevel(cs.Display()) {
			// Inline-level boxes never participate in block margin
			// collapsing (CSS 2.1 §8.3.1 only collapses adjacent
			// block-level margins); collect the whole contiguous run and
			// hand it to the inline engine in one go.
			run := []*Node{ch}
			j := i + 1
			for j < n {
				nextCh := node.ChildAt(j)
				nextCs := nextCh.Payload
				if nextCs.Display() == DisplayNone || nextCs.Position() == PositionAbsolute || nextCs.Position() == PositionFixed {
					j++
					continue
				}
				if !isInlineLevel(nextCs.Display()) {
					break
				}
				run = append(run, nextCh)
				j++
			}
			if position {
				y = layoutInlineRun(node, env, contentWidth, y, run)
			} else {
				for _, r := range run {
					req := ComputeRequest{Kind: KindAllSize, ParentInnerSize: Size{Width: contentWidth}, ParentIsBlock: true}
					res := Compute(r, env, req)
					y += res.Size.Height
				}
			}
			havePrevMargin = false
			seenInFlow = true
			i = j - 1
			continue
		}

		edges := resolveEdges(cs, contentWidth, true)
		req := ComputeRequest{
			Kind:            KindAllSize,
			ParentInnerSize: Size{Width: contentWidth},
			ParentIsBlock:   true,
		}
		res := Compute(ch, env, req)

		topMargin := edges.Margin.Top
		collapsed := topMargin
		if havePrevMargin {
			collapsed = collapseMargins(prevMargin, topMargin)
		}
		y += collapsed

		if position {
			positionChild(ch, env, 0, y, contentWidth, res)
		}

		y += res.Size.Height
		prevMargin = edges.Margin.Bottom
		havePrevMargin = true

		// First/last in-flow child's outward margin is exposed to node's
		// own neighbors only when nothing separates them.
		if !seenInFlow && style.BorderTop() == 0 && !hasNonZeroDim(style.PaddingTop()) {
			contract.Top = topMargin
			haveContract = true
		}
		seenInFlow = true
	}
	if havePrevMargin && style.BorderBottom() == 0 && !hasNonZeroDim(style.PaddingBottom()) {
		contract.Bottom = prevMargin
		haveContract = true
	}
	if !haveContract {
		contract = CollapsedMargin{}
	}
	return y, contract
}

// collapseMargins implements spec §4.5's three-way rule: "Adjacent
// siblings' top/bottom margins collapse to the maximum (both positive), the
// minimum (both negative), or pos + neg (mixed sign)."
func collapseMargins(a, b float64) float64 {
	switch {
	case a >= 0 && b >= 0:
		return maxF(a, b)
	case a <= 0 && b <= 0:
		return minF(a, b)
	default:
		return a + b
	}
}

func hasNonZeroDim(d Dimension) bool {
	return !d.IsAuto() && d.Value != 0
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// positionChild commits a child's border-box origin relative to its
// parent's content box, recursing a KindPosition compute so grandchildren's
// positions are committed too.
func positionChild(ch *Node, env *Env, x, y, parentInnerWidth float64, sized ComputeResult) {
	req := ComputeRequest{
		Kind: KindPosition,
		Size: OptionalSize{
			Width: sized.Size.Width, HasWidth: true,
			Height: sized.Size.Height, HasHeight: true,
		},
		ParentInnerSize: Size{Width: parentInnerWidth},
		ParentIsBlock:   true,
	}
	res := Compute(ch, env, req)
	edges := resolveEdges(ch.Payload, parentInnerWidth, true)
	rect := Rect{X: x + edges.Margin.Left, Y: y, Width: res.Size.Width, Height: res.Size.Height}
	ch.Unit.CommitPosition(rect, ComputedStyle{
		Size: res.Size, Margin: edges.Margin, Border: edges.Border, Padding: edges.Padding,
	})
}
