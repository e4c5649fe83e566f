package layout

// finalizer converts the resolved axis positions of a container's items
// into parent-relative coordinates and pushes them to the subjects.
type finalizer struct {
	layouter *containerLayouter
	reverse  bool
	padding  Edges
}

func newFinalizer(l *containerLayouter) finalizer {
	return finalizer{
		layouter: l,
		reverse:  l.reverse(),
		padding:  l.config.padding,
	}
}

// finalize starts from the outermost affected container. A nested
// container is finalized by its parent, which owns the padding offsets
// and the reversal of its position.
func (f finalizer) finalize() {
	n := f.layouter.node()
	if p := n.flexParent(); p != nil {
		newFinalizer(p.layouter()).finalizeItemAndChildren(n)
		return
	}
	f.finalizeRoot()
	f.finalizeItems()
}

func (f finalizer) finalizeRoot() {
	n := f.layouter.node()
	n.push(n.x, n.y, n.w+f.padding.Horizontal(), n.h+f.padding.Vertical())
}

func (f finalizer) finalizeItems() {
	for _, item := range f.layouter.node().activeItems() {
		valid := f.validateCache(item)
		// Cached items still move with their siblings.
		f.finalizeItem(item)
		if !valid {
			f.finalizeChildren(item)
		}
	}
}

// validateCache reports whether a clean nested container's pushed subtree
// is still current. If the parent resized it to something other than what
// was pushed, its axes are laid out again first.
func (f finalizer) validateCache(item *Node) bool {
	if !item.dirty.IsClean() || !item.flexEnabled || !item.hasPushed {
		return false
	}
	pad := item.padding()
	if item.w+pad.Horizontal() == item.pushed.Width && item.h+pad.Vertical() == item.pushed.Height {
		return true
	}
	l := item.layouter()
	item.tree.logger.Debug("stale layout cache, re-running axes")
	cross := l.crossSize()
	l.performResizeMainAxis(l.mainSize())
	l.performResizeCrossAxis(cross)
	return false
}

func (f finalizer) finalizeItemAndChildren(item *Node) {
	f.finalizeItem(item)
	f.finalizeChildren(item)
}

func (f finalizer) finalizeItem(item *Node) {
	horizontal := f.layouter.horizontal()
	main := item.axisPos(horizontal)
	if f.reverse {
		main = f.layouter.mainSize() - (main + item.outerSize(horizontal))
	}
	cross := item.axisPos(!horizontal)

	x, y := main, cross
	if !horizontal {
		x, y = cross, main
	}
	margin := item.margin()
	x += f.padding.Start(true) + margin.Start(true)
	y += f.padding.Start(false) + margin.Start(false)

	pad := item.padding()
	item.push(x, y, item.w+pad.Horizontal(), item.h+pad.Vertical())
}

func (f finalizer) finalizeChildren(item *Node) {
	if item.flexEnabled {
		newFinalizer(item.layouter()).finalizeItems()
	}
}
