package layout

import "go.uber.org/zap"

// containerLayouter runs the layout passes of one container.
//
// A full layout runs while the node's Contents flag is set. A clean
// container restores the sizes cached after its last full layout instead.
// Parents impose final sizes through resizeMainAxis and resizeCrossAxis,
// which only re-run the affected axis.
type containerLayouter struct {
	config *ContainerConfig
	lines  lineDistributor

	resizingMain  bool
	resizingCross bool
	shrunk        bool

	cachedMain  float64
	cachedCross float64
}

func newContainerLayouter(c *ContainerConfig) *containerLayouter {
	l := &containerLayouter{config: c}
	l.lines.layouter = l
	return l
}

func (l *containerLayouter) node() *Node      { return l.config.node }
func (l *containerLayouter) horizontal() bool { return l.config.direction.Horizontal() }
func (l *containerLayouter) reverse() bool    { return l.config.direction.Reverse() }
func (l *containerLayouter) isWrapping() bool { return l.config.wrap }

func (l *containerLayouter) mainSize() float64  { return l.node().axisSize(l.horizontal()) }
func (l *containerLayouter) crossSize() float64 { return l.node().axisSize(!l.horizontal()) }

func (l *containerLayouter) setMainSize(v float64)  { l.node().setAxisSize(l.horizontal(), v) }
func (l *containerLayouter) setCrossSize(v float64) { l.node().setAxisSize(!l.horizontal(), v) }

func (l *containerLayouter) isMainAxisFitToContents() bool {
	return !l.isWrapping() && l.node().isAutoAxis(l.horizontal())
}

func (l *containerLayouter) isCrossAxisFitToContents() bool {
	return l.node().isAutoAxis(!l.horizontal())
}

func (l *containerLayouter) isAxisFitToContents(horizontal bool) bool {
	if horizontal == l.horizontal() {
		return l.isMainAxisFitToContents()
	}
	return l.isCrossAxisFitToContents()
}

func (l *containerLayouter) axisMinSize(horizontal bool) float64 {
	if horizontal == l.horizontal() {
		return l.lines.mainAxisMinSize()
	}
	return l.lines.crossAxisMinSize()
}

// layoutTree lays out the tree below this container and pushes the results.
// A nested container keeps the size its parent gave it and only lays out
// its contents again.
func (l *containerLayouter) layoutTree() {
	n := l.node()
	if n.flexParent() != nil {
		l.updateSubTreeLayout()
	} else {
		n.x = n.relAxisPos(true)
		n.y = n.relAxisPos(false)
		l.updateTreeLayout()
	}
	newFinalizer(l).finalize()
}

func (l *containerLayouter) updateTreeLayout() {
	n := l.node()
	if n.dirty.Has(Contents) {
		l.performLayout()
		return
	}
	// A relative size can change without a local flag when an ancestor
	// was resized.
	if n.hasRelAxisSize(true) || n.hasRelAxisSize(false) {
		n.dirty |= Contents
		l.performLayout()
		return
	}
	l.setMainSize(l.cachedMain)
	l.setCrossSize(l.cachedCross)
}

func (l *containerLayouter) performLayout() {
	n := l.node()
	n.tree.logger.Debug("layout container",
		zap.Uint32("node", n.handle.index),
		zap.Stringer("dirty", n.dirty),
		zap.Stringer("direction", l.config.direction))
	l.setInitialAxisSizes()
	l.layoutAxes()
	l.cachedMain = l.mainSize()
	l.cachedCross = l.crossSize()
}

func (l *containerLayouter) updateSubTreeLayout() {
	cross := l.crossSize()
	l.layoutMainAxis()
	l.performResizeCrossAxis(cross)
}

func (l *containerLayouter) setInitialAxisSizes() {
	n := l.node()
	if n.flexParent() != nil {
		n.resetLayoutSize()
	} else {
		l.setMainSize(n.relAxisSize(l.horizontal()))
		l.setCrossSize(n.relAxisSize(!l.horizontal()))
	}
	l.resizingMain = false
	l.resizingCross = false
	l.shrunk = false
}

func (l *containerLayouter) layoutAxes() {
	l.layoutMainAxis()
	l.layoutCrossAxis()
}

func (l *containerLayouter) layoutMainAxis() {
	l.lines.layoutLines()
	if !l.resizingMain && l.isMainAxisFitToContents() {
		l.setMainSize(l.node().clampAxis(l.horizontal(), l.lines.contentSize))
	}
}

func (l *containerLayouter) layoutCrossAxis() {
	aligner := newContentAligner(l)
	if !l.resizingCross && l.isCrossAxisFitToContents() {
		l.setCrossSize(l.node().clampAxis(!l.horizontal(), aligner.totalSize))
	}
	aligner.align()
}

// resizeMainAxis imposes a main axis size from the parent container.
func (l *containerLayouter) resizeMainAxis(size float64) {
	if l.mainSize() == size {
		return
	}
	if l.node().dirty.Has(Contents) || !l.canDeferMainAxisResize(size) {
		l.performResizeMainAxis(size)
		return
	}
	// The finalizer re-runs the layout if the final size does not match
	// what was pushed last time.
	l.setMainSize(size)
}

// canDeferMainAxisResize reports whether a clean container may take a new
// main size without an immediate layout. That is safe when the size is the
// one pushed last time, or when the cross size cannot depend on it.
func (l *containerLayouter) canDeferMainAxisResize(size float64) bool {
	n := l.node()
	if n.hasPushed && size == l.pushedAxisSize(l.horizontal()) {
		return true
	}
	return !l.isCrossAxisFitToContents()
}

// resizeCrossAxis imposes a cross axis size from the parent container.
func (l *containerLayouter) resizeCrossAxis(size float64) {
	if l.crossSize() == size {
		return
	}
	if l.node().dirty.Has(Contents) {
		l.performResizeCrossAxis(size)
		return
	}
	l.setCrossSize(size)
}

func (l *containerLayouter) performResizeMainAxis(size float64) {
	l.shrunk = size < l.mainSize()
	l.setMainSize(size)
	l.resizingMain = true
	l.layoutAxes()
	l.resizingMain = false
}

func (l *containerLayouter) performResizeCrossAxis(size float64) {
	l.shrunk = size < l.crossSize()
	l.setCrossSize(size)
	l.resizingCross = true
	l.layoutCrossAxis()
	l.resizingCross = false
}

// pushedAxisSize is the inner size last pushed to the subject.
func (l *containerLayouter) pushedAxisSize(horizontal bool) float64 {
	n := l.node()
	outer := n.pushed.Height
	if horizontal {
		outer = n.pushed.Width
	}
	return outer - n.padding().Total(horizontal)
}

// dirtyFromChild folds a child's dirty flags into the flags this container
// receives. Only axes whose size can follow the contents pass upward.
func (l *containerLayouter) dirtyFromChild(child Dirty) Dirty {
	horizontal := l.horizontal()
	mainFlag, crossFlag := AxisFlag(horizontal), AxisFlag(!horizontal)

	if !child.Has(crossFlag) && child.Has(mainFlag) && l.isWrapping() && l.isCrossAxisFitToContents() {
		// Re-wrapping can change the cross size.
		child |= crossFlag
	}

	widthDynamic := l.isAxisFitToContents(true)
	heightDynamic := l.isAxisFitToContents(false)
	if l.shrunk {
		// After being shrunk the contents' minimum size may now decide the
		// main size, even when it is not fit to contents.
		if horizontal {
			widthDynamic = true
		} else {
			heightDynamic = true
		}
	}

	local := Contents.With(Width, widthDynamic).With(Height, heightDynamic)
	return child & local
}
