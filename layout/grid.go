package layout

// gridItem carries one child's resolved grid-placement cell and layout
// inputs, the Go counterpart of
// _examples/original_source/float-pigment-layout/src/algo/grid/grid_item.rs's
// GridItem.
type gridItem struct {
	node      *Node
	origIndex int
	row, col  int
	edges     resolvedEdges
	// contribution is this item's own explicit width/height (0 when auto),
	// the same "no intrinsic-size probe" approximation flexBasisOf uses —
	// see flex.go's flexBasisOf doc comment for the shared rationale.
	contribW, contribH float64
}

// gridTrack is one row or column track's sizing state, grounded on
// track_sizing.rs's TrackInfo.
type gridTrack struct {
	kind     TrackSizeKind
	raw      float64 // the TrackSize's Value (px, percent, or fr share)
	size     float64
	base     float64 // min-content-style freeze threshold for fr tracks
	explicit bool
}

// layoutGridChildren implements spec §4.5's "Grid layout" steps and
// returns the grid's content-box height, positioning children when
// position is true.
//
// Grounded on
// _examples/original_source/float-pigment-layout/src/algo/grid/{mod,track_sizing}.rs.
// Column sizing (the inline axis) always has a definite available space,
// since contentWidth is resolved eagerly by Compute's block-layout
// pass before this function runs; row sizing (the block axis) mirrors
// flex.go's column-direction main-axis simplification: with no definite
// container height available at this point, `fr` rows and the track-
// maximize pass are skipped, and the content height is simply the sum of
// each row's own base/explicit size. This is the same "auto axis sizes to
// content, no stretch" approximation flex.go's layoutFlexChildren applies
// to column flex containers.
func layoutGridChildren(node *Node, env *Env, contentWidth float64, position bool) float64 {
	style := node.Payload
	items := collectGridItems(node, contentWidth)
	if len(items) == 0 {
		return 0
	}

	rowTemplate := style.GridTemplateRows()
	colTemplate := style.GridTemplateColumns()

	rowCount, colCount := placeGridItems(items, len(rowTemplate), len(colTemplate), style.GridAutoFlow())

	rows := newTracks(rowCount, rowTemplate)
	cols := newTracks(colCount, colTemplate)

	for _, it := range items {
		cols[it.col].base = maxF(cols[it.col].base, it.contribW)
		rows[it.row].base = maxF(rows[it.row].base, it.contribH)
	}

	colGap := style.ColumnGap()
	rowGap := style.RowGap()

	sizeTracks(cols, contentWidth, colGap, true)
	sizeTracksIndefinite(rows)

	contentHeight := sumTrackSizes(rows, rowGap)

	if position {
		positionGridItems(env, items, rows, cols, rowGap, colGap, style.Direction() == DirectionRTL, style)
	}
	return contentHeight
}

// collectGridItems gathers node's in-flow, displayable children (spec
// §4.5's "Collect items (skipping display:none and abs-positioned)", the
// same skip rule flex.go's collectFlexItems applies) and resolves each
// one's own edges and size contribution ahead of placement.
func collectGridItems(node *Node, contentWidth float64) []*gridItem {
	var items []*gridItem
	for i := 0; i < node.ChildCount(); i++ {
		ch := node.ChildAt(i)
		cs := ch.Payload
		if cs.Display() == DisplayNone || cs.Position() == PositionAbsolute || cs.Position() == PositionFixed {
			continue
		}
		edges := resolveEdges(cs, contentWidth, true)
		var w, h float64
		if dim := cs.Width(); !dim.IsAuto() {
			if v, ok := dim.Resolve(contentWidth, true); ok {
				w = v
			}
		}
		if dim := cs.Height(); !dim.IsAuto() {
			if v, ok := dim.Resolve(0, false); ok {
				h = v
			}
		}
		items = append(items, &gridItem{
			node: ch, origIndex: i, edges: edges,
			contribW: w + edges.mainMargin(true), contribH: h + edges.mainMargin(false),
		})
	}
	return items
}

// placeGridItems implements spec §4.5's "Auto placement per grid-auto-
// flow (row|column|row dense|column dense)", grounded on mod.rs's
// place_grid_items but with the Open Question resolved towards true dense
// packing (spec §9/REDESIGN FLAGS): a `dense` flow rescans from the grid
// origin for the first free cell on every placement instead of only
// advancing the flow cursor forward, per CSS Grid §8.5.
func placeGridItems(items []*gridItem, explicitRows, explicitCols int, flow GridAutoFlow) (rowCount, colCount int) {
	rowCount = maxInt(explicitRows, 1)
	colCount = maxInt(explicitCols, 1)
	occupied := map[[2]int]bool{}

	column := flow.Column()
	dense := flow.Dense()
	cursorRow, cursorCol := 0, 0

	occupy := func(r, c int) {
		occupied[[2]int{r, c}] = true
		if r+1 > rowCount {
			rowCount = r + 1
		}
		if c+1 > colCount {
			colCount = c + 1
		}
	}

	for _, it := range items {
		if dense {
			cursorRow, cursorCol = 0, 0
		}
		r, c := cursorRow, cursorCol
		for occupied[[2]int{r, c}] {
			if column {
				r++
				if r >= rowCount {
					r = 0
					c++
				}
			} else {
				c++
				if c >= colCount {
					c = 0
					r++
				}
			}
		}
		it.row, it.col = r, c
		occupy(r, c)
		if column {
			cursorRow, cursorCol = r+1, c
		} else {
			cursorRow, cursorCol = r, c+1
		}
	}
	return rowCount, colCount
}

// newTracks builds a track slice of length n from template (the explicit
// grid-template-rows/columns list), padding any implicit trailing tracks
// (items placed beyond the explicit template) as TrackAuto, per spec's
// "explicit ... with fixed, percentage, auto, and fr track sizes".
func newTracks(n int, template []TrackSize) []gridTrack {
	tracks := make([]gridTrack, n)
	for i := range tracks {
		if i < len(template) {
			t := template[i]
			tracks[i] = gridTrack{kind: t.Kind, raw: t.Value}
		} else {
			tracks[i] = gridTrack{kind: TrackAuto}
		}
	}
	return tracks
}

// sizeTracks implements spec §4.5's three-pass grid track sizing for an
// axis with a definite available size: (a) base sizes from explicit
// tracks and content contributions, (b) fr expansion with iterative
// freezing, (c) maximize auto tracks with remaining free space.
func sizeTracks(tracks []gridTrack, available, gap float64, hasAvailable bool) {
	var totalFr float64
	for i := range tracks {
		t := &tracks[i]
		switch t.kind {
		case TrackFixed:
			t.size = t.raw
			t.explicit = true
		case TrackPercent:
			if hasAvailable {
				t.size = available * t.raw / 100
				t.explicit = true
			}
		case TrackAuto:
			t.size = t.base
		case TrackFraction:
			totalFr += t.raw
		}
	}
	if !hasAvailable {
		return
	}
	gapTotal := gap * maxF(0, float64(len(tracks)-1))

	if totalFr > 0 {
		var nonFr float64
		for _, t := range tracks {
			if t.kind != TrackFraction {
				nonFr += t.size
			}
		}
		remaining := maxF(0, available-nonFr-gapTotal)
		resolveFrTracks(tracks, remaining, totalFr)
	}

	// Maximize auto tracks with any leftover free space (spec step (c)).
	used := gapTotal
	autoCount := 0
	for _, t := range tracks {
		used += t.size
		if t.kind == TrackAuto {
			autoCount++
		}
	}
	if leftover := available - used; leftover > 0 && autoCount > 0 {
		share := leftover / float64(autoCount)
		for i := range tracks {
			if tracks[i].kind == TrackAuto {
				tracks[i].size += share
			}
		}
	}
}

// resolveFrTracks implements the iterative freeze algorithm from
// track_sizing.rs §11.7: repeatedly compute a hypothetical fr size from
// the remaining flexible space, freeze any fr track whose hypothetical
// size falls below its min-content (base) threshold, and repeat with the
// shrunk flex total until stable.
func resolveFrTracks(tracks []gridTrack, remaining, totalFr float64) {
	flexible := make([]bool, len(tracks))
	for i, t := range tracks {
		flexible[i] = t.kind == TrackFraction
	}
	activeFlex := totalFr
	const maxIterations = 10
	for iter := 0; iter < maxIterations && activeFlex > 0; iter++ {
		hypothetical := remaining / activeFlex
		anyFrozen := false
		for i := range tracks {
			if !flexible[i] {
				continue
			}
			size := hypothetical * tracks[i].raw
			if size < tracks[i].base {
				tracks[i].size = tracks[i].base
				tracks[i].explicit = true
				flexible[i] = false
				remaining -= tracks[i].base
				activeFlex -= tracks[i].raw
				anyFrozen = true
			}
		}
		if !anyFrozen {
			for i := range tracks {
				if flexible[i] {
					tracks[i].size = hypothetical * tracks[i].raw
					tracks[i].explicit = true
				}
			}
			break
		}
	}
}

// sizeTracksIndefinite sizes tracks along an axis with no definite
// available space: explicit fixed tracks keep their resolved size, auto
// and fr tracks fall back to their content base (the documented "row axis
// never stretches" simplification — see layoutGridChildren's doc comment).
func sizeTracksIndefinite(tracks []gridTrack) {
	for i := range tracks {
		t := &tracks[i]
		switch t.kind {
		case TrackFixed:
			t.size = t.raw
		default:
			t.size = t.base
		}
	}
}

func sumTrackSizes(tracks []gridTrack, gap float64) float64 {
	var sum float64
	for _, t := range tracks {
		sum += t.size
	}
	if len(tracks) > 1 {
		sum += gap * float64(len(tracks)-1)
	}
	return sum
}

// positionGridItems lays out each item at its track's origin, honoring
// row-gap/column-gap and `direction: rtl` (spec: "flips column placement
// order; block axis is unaffected"), clamping/aligning the item inside
// its cell per justify-items/justify-self (inline axis) and align-items/
// align-self (block axis, reusing flex.go's resolveAlign/alignFreeOffset
// since grid's align-items/align-self share the same stretch|start|end|
// center|baseline vocabulary as flexbox's cross-axis alignment).
func positionGridItems(env *Env, items []*gridItem, rows, cols []gridTrack, rowGap, colGap float64, rtl bool, style Style) {
	colOffsets := make([]float64, len(cols))
	var x float64
	for i, c := range cols {
		colOffsets[i] = x
		x += c.size + colGap
	}
	rowOffsets := make([]float64, len(rows))
	var y float64
	for i, r := range rows {
		rowOffsets[i] = y
		y += r.size + rowGap
	}
	for _, it := range items {
		col := it.col
		if rtl {
			col = len(cols) - 1 - col
		}
		cellX := colOffsets[col]
		cellY := rowOffsets[it.row]
		cellW := cols[col].size
		cellH := rows[it.row].size

		cs := it.node.Payload
		justify := resolveItemAlign(style.JustifyItems(), cs.JustifySelf())
		align := resolveAlign(style.AlignItems(), cs.AlignSelf())

		innerW := maxF(0, cellW-it.edges.mainMargin(true))
		innerH := maxF(0, cellH-it.edges.mainMargin(false))

		// Stretch fills the cell via an explicit width/height request; per
		// CSS Grid this should only happen when the item's own width/height
		// is auto (an explicit size always wins over stretch), but Compute
		// has no way to distinguish "caller-requested size" from "caller
		// overriding an explicit style size" once a request carries
		// HasWidth/HasHeight — same ambiguity flex.go's positionFlexLines
		// already accepts when it always passes an explicit Size into its
		// own KindPosition requests.
		reqSize := OptionalSize{}
		if justify == ItemAlignStretch {
			reqSize.Width, reqSize.HasWidth = innerW, true
		}
		if align == AlignItemsStretch {
			reqSize.Height, reqSize.HasHeight = innerH, true
		}
		req := ComputeRequest{
			Kind: KindPosition, Size: reqSize,
			ParentInnerSize: Size{Width: innerW, Height: innerH},
		}
		res := Compute(it.node, env, req)

		offX := itemAlignOffset(justify, innerW-res.Size.Width)
		offY := alignFreeOffset(align, innerH-res.Size.Height)

		rect := Rect{
			X: cellX + it.edges.Margin.Left + offX,
			Y: cellY + it.edges.Margin.Top + offY,
			Width: res.Size.Width, Height: res.Size.Height,
		}
		it.node.Unit.CommitPosition(rect, ComputedStyle{
			Size: res.Size, Margin: it.edges.Margin, Border: it.edges.Border, Padding: it.edges.Padding,
		})
	}
}

// resolveItemAlign resolves a grid item's effective justify-items/
// justify-self pair the same way flex.go's resolveAlign resolves align-
// items/align-self: an explicit non-default self value wins, otherwise
// the container's value applies (ItemAlignStretch is both the CSS default
// and a valid explicit value, so a self of exactly Stretch always defers
// to the container — the same documented simplification resolveAlign
// uses for AlignSelfAuto-less flex item defaults).
func resolveItemAlign(container, self ItemAlign) ItemAlign {
	if self != ItemAlignStretch {
		return self
	}
	return container
}

// itemAlignOffset maps justify-items/justify-self's start|end|center|
// stretch|left|right onto a cell-relative inline-axis offset; left/right
// are physical and ignore direction per spec.
func itemAlignOffset(align ItemAlign, free float64) float64 {
	if free < 0 {
		free = 0
	}
	switch align {
	case ItemAlignEnd, ItemAlignRight:
		return free
	case ItemAlignCenter:
		return free / 2
	default: // Stretch, Start, Left
		return 0
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
