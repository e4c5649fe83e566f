package layout

// maxRecursiveResizeRetries bounds how often a line is re-positioned after
// stretching an item changed that item's main axis size. One retry matches
// the single correction pass the algorithm is defined with; the container's
// own fit-to-contents size is not recomputed afterwards, so a wrapping
// fit-to-contents item nested across axes may leave it slightly too large.
const maxRecursiveResizeRetries = 1

// line is one wrap line of a container: the half-open range [start, end)
// of the container's active items. Lines only live for one layout pass.
type line struct {
	layouter  *containerLayouter
	items     []*Node
	start     int
	end       int
	available float64
	crossSize float64
}

func (ln *line) entries() []*Node {
	return ln.items[ln.start:ln.end]
}

func (ln *line) count() int {
	return ln.end - ln.start
}

// performLayout sizes the items along the main axis, positions them and
// records the line's cross axis extent.
func (ln *line) performLayout() {
	switch {
	case ln.available > 0:
		ln.available -= growItems(ln, ln.available)
	case ln.available < 0:
		ln.available += shrinkItems(ln, -ln.available)
	}
	ln.positionItems()
	ln.crossSize = ln.maxCrossSize()
}

// positionItems places the items along the main axis according to the
// container's justify-content.
func (ln *line) positionItems() {
	horizontal := ln.layouter.horizontal()
	before, between := spacing(ln.layouter.config.justifyContent.spacing(), ln.count(), ln.available)
	pos := before
	for _, item := range ln.entries() {
		item.setAxisPos(horizontal, pos)
		pos += item.outerSize(horizontal) + between
	}
}

func (ln *line) maxCrossSize() float64 {
	horizontal := ln.layouter.horizontal()
	size := 0.0
	for _, item := range ln.entries() {
		size = max(size, item.outerSize(!horizontal))
	}
	return size
}

func (ln *line) mainAxisMinSize() float64 {
	horizontal := ln.layouter.horizontal()
	size := 0.0
	for _, item := range ln.entries() {
		size += item.outerMinSize(horizontal)
	}
	return size
}

// alignItems positions and stretches the items of the line along the cross
// axis within [offset, offset+size). It reports whether stretching an item
// changed that item's main axis size.
func (ln *line) alignItems(size, offset float64) (recursiveResize bool) {
	l := ln.layouter
	horizontal := l.horizontal()
	crossFit := l.isCrossAxisFitToContents()
	for _, item := range ln.entries() {
		align := l.config.alignItems
		forced := false
		if item.item != nil && item.item.hasAlignSelf {
			align = item.item.alignSelf
			forced = align == AlignStretch
		}

		// A fixed cross size is never stretched unless align-self asks for it.
		if align == AlignStretch && !item.isAutoAxis(!horizontal) && !forced {
			align = AlignStart
		}

		if align != AlignCenter && !crossFit && item.hasRelAxisSize(!horizontal) {
			// The container's cross size may have changed since the item
			// resolved its relative size. Centered items keep the size they
			// resolved during line layout.
			item.resizeAxis(!horizontal, item.clampAxis(!horizontal, item.relAxisSize(!horizontal)))
		}

		switch align {
		case AlignStart:
			item.setAxisPos(!horizontal, offset)
		case AlignEnd:
			item.setAxisPos(!horizontal, offset+size-item.outerSize(!horizontal))
		case AlignCenter:
			item.setAxisPos(!horizontal, offset+(size-item.outerSize(!horizontal))/2)
		case AlignStretch:
			if ln.stretchItem(item, size, offset) {
				recursiveResize = true
			}
		}
	}
	return recursiveResize
}

func (ln *line) stretchItem(item *Node, size, offset float64) bool {
	horizontal := ln.layouter.horizontal()
	item.setAxisPos(!horizontal, offset)

	mainBefore := item.axisSize(horizontal)
	target := size - item.margin().Total(!horizontal) - item.padding().Total(!horizontal)
	target = max(0, item.clampAxis(!horizontal, target))
	item.resizeAxis(!horizontal, target)

	// A wrapping nested container fit to contents on this container's cross
	// axis can re-wrap when stretched and change its main axis size.
	return item.axisSize(horizontal) != mainBefore
}
