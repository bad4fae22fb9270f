package layout

import "sort"

// flexItem carries one child's resolved flex inputs alongside its original
// index, per spec §4.5 step 9: "Honor order to reorder items before steps
// 1-8 when computing positions (but original indices are preserved)."
type flexItem struct {
	node        *Node
	origIndex   int
	basis       float64
	grow        float64
	shrink      float64
	mainSize    float64 // working size during resolution, then final
	crossSize   float64
	edges       resolvedEdges
	frozen      bool
	baseAscent  float64
}

type flexLine struct {
	items     []*flexItem
	crossSize float64
	mainUsed  float64
}

// layoutFlexChildren implements spec §4.5's "Flexbox layout" steps and
// returns the content-box size along the cross axis (the container's
// intrinsic cross-axis content size, used as the auto-height/auto-width
// fallback by Compute), positioning children when position is true.
func layoutFlexChildren(node *Node, env *Env, contentWidth float64, position bool) float64 {
	style := node.Payload
	row := style.FlexDirection().IsRow()
	mainContainerSize := contentWidth
	if !row {
		// column flex containers still need a definite main (vertical)
		// size to distribute grow/shrink against; fall back to the sum of
		// bases when the container's own height is auto (resolved later
		// by the caller, so here we just use an unconstrained pass).
		mainContainerSize = -1
	}

	items := collectFlexItems(node, env, contentWidth, row)
	if len(items) == 0 {
		return 0
	}

	sorted := append([]*flexItem{}, items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].node.Payload.Order() < sorted[j].node.Payload.Order()
	})

	lines := groupIntoLines(sorted, mainContainerSize, style.FlexWrap() != FlexNoWrap, row)
	for _, line := range lines {
		resolveFlexibleLengths(line, mainContainerSize, row)
		sizeCrossAxis(line, style, row)
	}

	totalCross := 0.0
	for _, l := range lines {
		totalCross += l.crossSize
	}
	if gap := crossGap(style, row); len(lines) > 1 {
		totalCross += gap * float64(len(lines)-1)
	}

	if position {
		positionFlexLines(node, env, lines, style, row, mainContainerSize, totalCross, contentWidth)
	}

	// Children() order itself is untouched; only our working slices were
	// reordered, so there is no document order to restore.
	return totalCross
}

func crossGap(style Style, row bool) float64 {
	if row {
		return style.RowGap()
	}
	return style.ColumnGap()
}

func mainGap(style Style, row bool) float64 {
	if row {
		return style.ColumnGap()
	}
	return style.RowGap()
}

func collectFlexItems(node *Node, env *Env, contentWidth float64, row bool) []*flexItem {
	var items []*flexItem
	for i := 0; i < node.ChildCount(); i++ {
		ch := node.ChildAt(i)
		cs := ch.Payload
		if cs.Display() == DisplayNone || cs.Position() == PositionAbsolute || cs.Position() == PositionFixed {
			continue
		}
		edges := resolveEdges(cs, contentWidth, true)
		basis := flexBasisOf(cs, row, contentWidth)
		items = append(items, &flexItem{
			node: ch, origIndex: i,
			basis: basis, mainSize: basis,
			grow: float64(cs.FlexGrow()), shrink: float64(cs.FlexShrink()),
			edges: edges,
		})
	}
	return items
}

// flexBasisOf resolves flex-basis per spec: an explicit flex-basis wins,
// else the main-axis size property (width for row, height for column),
// else 0: no max-content probe of the item is made, since intrinsic
// text/measure sizing lives behind the Measurer hook.
func flexBasisOf(cs Style, row bool, contentWidth float64) float64 {
	fb := cs.FlexBasis()
	if !fb.IsAuto() {
		if v, ok := fb.Resolve(contentWidth, true); ok {
			return v
		}
	}
	var dim Dimension
	if row {
		dim = cs.Width()
	} else {
		dim = cs.Height()
	}
	if !dim.IsAuto() {
		if v, ok := dim.Resolve(contentWidth, true); ok {
			return v
		}
	}
	return 0
}

func groupIntoLines(items []*flexItem, mainContainerSize float64, wrap, row bool) []*flexLine {
	if !wrap || mainContainerSize < 0 {
		return []*flexLine{{items: items}}
	}
	var lines []*flexLine
	var cur []*flexItem
	used := 0.0
	for _, it := range items {
		itemMain := it.basis + it.edges.mainMargin(row)
		if len(cur) > 0 && used+itemMain > mainContainerSize {
			lines = append(lines, &flexLine{items: cur})
			cur = nil
			used = 0
		}
		cur = append(cur, it)
		used += itemMain
	}
	if len(cur) > 0 {
		lines = append(lines, &flexLine{items: cur})
	}
	return lines
}

func (e resolvedEdges) mainMargin(row bool) float64 {
	if row {
		return e.Margin.Left + e.Margin.Right
	}
	return e.Margin.Top + e.Margin.Bottom
}

func (e resolvedEdges) crossMargin(row bool) float64 {
	if row {
		return e.Margin.Top + e.Margin.Bottom
	}
	return e.Margin.Left + e.Margin.Right
}

// resolveFlexibleLengths implements spec §4.5 step 4: resolve grow/shrink
// per line with min/max clamping and a re-clamp pass over any item whose
// clamp took effect ("frozen items"), redistributing remaining space among
// the rest.
func resolveFlexibleLengths(line *flexLine, mainContainerSize float64, row bool) {
	if mainContainerSize < 0 {
		line.mainUsed = sumBasis(line.items, row)
		return
	}
	used := sumBasis(line.items, row)
	freeSpace := mainContainerSize - used
	grow := freeSpace > 0

	for pass := 0; pass < 2; pass++ {
		var totalFactor float64
		for _, it := range line.items {
			if it.frozen {
				continue
			}
			if grow {
				totalFactor += it.grow
			} else {
				totalFactor += it.shrink * it.basis
			}
		}
		if totalFactor <= 0 {
			break
		}
		anyFroze := false
		for _, it := range line.items {
			if it.frozen {
				continue
			}
			var share float64
			if grow {
				share = freeSpace * (it.grow / totalFactor)
			} else {
				share = freeSpace * (it.shrink * it.basis / totalFactor)
			}
			candidate := it.basis + share
			minD, maxD := mainAxisMinMax(it.node.Payload, row)
			clamped := clamp(candidate, minD, maxD, mainContainerSize, true)
			if clamped != candidate {
				it.mainSize = clamped
				it.frozen = true
				anyFroze = true
				freeSpace -= clamped - it.basis
			} else {
				it.mainSize = candidate
			}
		}
		if !anyFroze {
			break
		}
		// Frozen items keep their clamped size; the others start again from
		// their basis and share whatever space the frozen ones left.
		used = 0
		for _, it := range line.items {
			if it.frozen {
				used += it.mainSize + it.edges.mainMargin(row)
			} else {
				used += it.basis + it.edges.mainMargin(row)
			}
		}
		freeSpace = mainContainerSize - used
	}
	line.mainUsed = sumMain(line.items, row)
}

// The main-axis min/max constraint comes from mainAxisMinMax (positioned.go),
// a small adapter function so flex.go stays free of a type switch per call
// site.
func sumBasis(items []*flexItem, row bool) float64 {
	var s float64
	for _, it := range items {
		s += it.basis + it.edges.mainMargin(row)
	}
	return s
}

func sumMain(items []*flexItem, row bool) float64 {
	var s float64
	for _, it := range items {
		s += it.mainSize + it.edges.mainMargin(row)
	}
	return s
}

func sizeCrossAxis(line *flexLine, style Style, row bool) {
	maxCross := 0.0
	for _, it := range line.items {
		cs := it.node.Payload
		req := mainAxisRequest(it, row)
		res := Compute(it.node, nil, req)
		if row {
			it.crossSize = res.Size.Height
			it.baseAscent = res.FirstBaselineAscent
		} else {
			it.crossSize = res.Size.Width
		}
		total := it.crossSize + it.edges.crossMargin(row)
		if total > maxCross {
			maxCross = total
		}
		_ = cs
	}
	line.crossSize = maxCross
}

func mainAxisRequest(it *flexItem, row bool) ComputeRequest {
	if row {
		return ComputeRequest{Kind: KindAllSize, Size: OptionalSize{Width: it.mainSize, HasWidth: true}}
	}
	return ComputeRequest{Kind: KindAllSize, Size: OptionalSize{Height: it.mainSize, HasHeight: true}}
}

// positionFlexLines implements spec §4.5 steps 6 and 8: distribute main free
// space (justify-content) and align individual items cross-axis (align-self/
// align-items). Lines are stacked from the cross-start edge, separated only
// by the cross gap: align-content is not applied, and baseline alignment is
// placed at cross-start like flex-start.
func positionFlexLines(node *Node, env *Env, lines []*flexLine, style Style, row bool, mainContainerSize, totalCross, contentWidth float64) {
	crossOffset := 0.0
	gap := crossGap(style, row)
	for _, line := range lines {
		mainOffset, mainStep := justifyOffsets(style.JustifyContent(), mainContainerSize, line.mainUsed, len(line.items), mainGap(style, row))
		for idx, it := range line.items {
			crossPos := crossOffset + alignOffset(style, it, line.crossSize, row)
			var x, y, w, h float64
			if row {
				x, y, w, h = mainOffset, crossPos, it.mainSize, it.crossSize
			} else {
				x, y, w, h = crossPos, mainOffset, it.crossSize, it.mainSize
			}
			req := ComputeRequest{
				Kind: KindPosition,
				Size: OptionalSize{Width: w, HasWidth: true, Height: h, HasHeight: true},
				ParentInnerSize: Size{Width: contentWidth},
			}
			res := Compute(it.node, env, req)
			it.node.Unit.CommitPosition(Rect{X: x + it.edges.Margin.Left, Y: y + it.edges.Margin.Top, Width: res.Size.Width, Height: res.Size.Height},
				ComputedStyle{Size: res.Size, Margin: it.edges.Margin, Border: it.edges.Border, Padding: it.edges.Padding})
			mainOffset += it.mainSize + it.edges.mainMargin(row) + mainStep
			_ = idx
		}
		crossOffset += line.crossSize + gap
	}
	_ = totalCross
}

func justifyOffsets(jc JustifyContent, container, used float64, n int, baseGap float64) (start, step float64) {
	free := container - used
	if free < 0 {
		free = 0
	}
	switch jc {
	case JustifyContentFlexEnd:
		return free, baseGap
	case JustifyContentCenter:
		return free / 2, baseGap
	case JustifyContentSpaceBetween:
		if n > 1 {
			return 0, baseGap + free/float64(n-1)
		}
		return 0, baseGap
	case JustifyContentSpaceAround:
		if n > 0 {
			return free / float64(n) / 2, baseGap + free/float64(n)
		}
		return 0, baseGap
	case JustifyContentSpaceEvenly:
		if n > 0 {
			return free / float64(n+1), baseGap + free/float64(n+1)
		}
		return 0, baseGap
	default: // JustifyContentFlexStart
		return 0, baseGap
	}
}

func alignOffset(style Style, it *flexItem, lineCross float64, row bool) float64 {
	align := resolveAlign(style.AlignItems(), it.node.Payload.AlignSelf())
	free := lineCross - it.crossSize
	return alignFreeOffset(align, free)
}

// alignFreeOffset maps an AlignItems keyword onto a cross-axis start
// offset given the free space available to distribute (lineCross minus
// the item's own cross size); shared by flex's per-item cross alignment
// and the out-of-flow fallback alignment in positioned.go.
func alignFreeOffset(align AlignItems, free float64) float64 {
	if free < 0 {
		free = 0
	}
	switch align {
	case AlignItemsFlexEnd:
		return free
	case AlignItemsCenter:
		return free / 2
	default: // Stretch, FlexStart, Baseline (approximated as cross-start)
		return 0
	}
}

func resolveAlign(items AlignItems, self AlignSelf) AlignItems {
	switch self {
	case AlignSelfFlexStart:
		return AlignItemsFlexStart
	case AlignSelfFlexEnd:
		return AlignItemsFlexEnd
	case AlignSelfCenter:
		return AlignItemsCenter
	case AlignSelfBaseline:
		return AlignItemsBaseline
	case AlignSelfStretch:
		return AlignItemsStretch
	default:
		return items
	}
}
