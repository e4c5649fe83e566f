package layout

// lineDistributor splits a container's active items into wrap lines and
// lays out each line along the main axis.
type lineDistributor struct {
	layouter *containerLayouter
	lines    []*line

	mainSize    float64
	curPos      float64
	contentSize float64

	minValid bool
	mainMin  float64
	crossMin float64
}

func (d *lineDistributor) setup() {
	d.lines = d.lines[:0]
	d.mainSize = d.layouter.mainSize()
	d.curPos = 0
	d.contentSize = 0
	d.minValid = false
}

// layoutLines lays out every item of the container into lines. Nested
// containers are laid out first so their natural size drives wrapping.
func (d *lineDistributor) layoutLines() {
	d.setup()
	l := d.layouter
	horizontal := l.horizontal()
	wrap := l.isWrapping()
	items := l.node().activeItems()

	start := 0
	for i, item := range items {
		layoutItem(item)

		size := item.outerSize(horizontal)
		if wrap && i > start && d.curPos+size > d.mainSize {
			d.layoutLine(items, start, i)
			d.curPos = 0
			start = i
		}
		d.curPos += size
	}
	if start < len(items) {
		d.layoutLine(items, start, len(items))
	}
}

// layoutItem resets an item to its basis size before line assignment.
func layoutItem(item *Node) {
	if item.flexEnabled {
		item.layouter().updateTreeLayout()
		return
	}
	item.resetLayoutSize()
}

func (d *lineDistributor) layoutLine(items []*Node, start, end int) {
	ln := &line{
		layouter:  d.layouter,
		items:     items,
		start:     start,
		end:       end,
		available: d.availableSpace(),
	}
	ln.performLayout()
	d.lines = append(d.lines, ln)

	if d.curPos > d.contentSize {
		d.contentSize = d.curPos
	}
}

// availableSpace is the main axis space left for the line being closed. A
// container that fits its main axis to contents offers none, so items keep
// their basis size.
func (d *lineDistributor) availableSpace() float64 {
	l := d.layouter
	if !l.resizingMain && l.isMainAxisFitToContents() {
		return 0
	}
	return d.mainSize - d.curPos
}

// mainAxisMinSize is the minimum main axis size of the contents. A single
// line needs the sum of its items' minimum sizes; wrapped lines use the
// container's own size as minimum, as CSS flexbox does.
func (d *lineDistributor) mainAxisMinSize() float64 {
	d.calcMinSizes()
	return d.mainMin
}

// crossAxisMinSize is the largest cross axis minimum of any item.
func (d *lineDistributor) crossAxisMinSize() float64 {
	d.calcMinSizes()
	return d.crossMin
}

func (d *lineDistributor) calcMinSizes() {
	if d.minValid {
		return
	}
	switch len(d.lines) {
	case 0:
		d.mainMin = 0
	case 1:
		d.mainMin = d.lines[0].mainAxisMinSize()
	default:
		d.mainMin = d.layouter.mainSize()
	}

	horizontal := d.layouter.horizontal()
	d.crossMin = 0
	for _, ln := range d.lines {
		for _, item := range ln.entries() {
			d.crossMin = max(d.crossMin, item.outerMinSize(!horizontal))
		}
	}
	d.minValid = true
}
