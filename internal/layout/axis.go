package layout

// Axis-parameterized accessors. Every getter and setter used during layout
// takes a horizontal flag instead of being written twice for width and
// height, so the row and column algorithms stay identical.

func (n *Node) axisPos(horizontal bool) float64 {
	if horizontal {
		return n.x
	}
	return n.y
}

func (n *Node) setAxisPos(horizontal bool, v float64) {
	if horizontal {
		n.x = v
	} else {
		n.y = v
	}
}

func (n *Node) axisSize(horizontal bool) float64 {
	if horizontal {
		return n.w
	}
	return n.h
}

func (n *Node) setAxisSize(horizontal bool, v float64) {
	if horizontal {
		n.w = v
	} else {
		n.h = v
	}
}

// padding returns the container padding, which is zero for nodes that are
// not flex containers.
func (n *Node) padding() Edges {
	if n.flexEnabled {
		return n.container.padding
	}
	return Edges{}
}

func (n *Node) margin() Edges {
	if n.item != nil {
		return n.item.margin
	}
	return Edges{}
}

func (n *Node) sourcePos(horizontal bool) float64 {
	if horizontal {
		return n.subject.SourceX()
	}
	return n.subject.SourceY()
}

func (n *Node) sourceSize(horizontal bool) float64 {
	if horizontal {
		return n.subject.SourceW()
	}
	return n.subject.SourceH()
}

func (n *Node) posFunc(horizontal bool) SizeFunc {
	if horizontal {
		return n.subject.FuncX()
	}
	return n.subject.FuncY()
}

func (n *Node) sizeFunc(horizontal bool) SizeFunc {
	if horizontal {
		return n.subject.FuncW()
	}
	return n.subject.FuncH()
}

// isAutoAxis reports whether the node has no specified size on the axis,
// which makes a container fit that axis to its contents.
func (n *Node) isAutoAxis(horizontal bool) bool {
	return n.sourceSize(horizontal) == 0 && n.sizeFunc(horizontal) == nil
}

func (n *Node) hasRelAxisSize(horizontal bool) bool {
	return n.sizeFunc(horizontal) != nil
}

// relAxisSize resolves the specified size of the axis. Relative sizes are
// refused inside a container that fits the same axis to its contents,
// since the two would depend on each other.
func (n *Node) relAxisSize(horizontal bool) float64 {
	f := n.sizeFunc(horizontal)
	if f == nil {
		return n.sourceSize(horizontal)
	}
	if p := n.flexParent(); p != nil && p.layouter().isAxisFitToContents(horizontal) {
		return 0
	}
	return f(n.relAxisBase(horizontal))
}

func (n *Node) relAxisPos(horizontal bool) float64 {
	if f := n.posFunc(horizontal); f != nil {
		return f(n.relAxisBase(horizontal))
	}
	return n.sourcePos(horizontal)
}

// relAxisBase is the parent size relative callables resolve against: the
// content size of an enclosing container, or the parent's source size.
func (n *Node) relAxisBase(horizontal bool) float64 {
	if p := n.flexParent(); p != nil {
		return p.axisSize(horizontal)
	}
	ps := n.subject.Parent()
	if ps == nil {
		return 0
	}
	if horizontal {
		return ps.SourceW()
	}
	return ps.SourceH()
}

// resetLayoutSize restores both axes to the specified size clamped to the
// item bounds.
func (n *Node) resetLayoutSize() {
	n.resetAxisLayoutSize(true)
	n.resetAxisLayoutSize(false)
}

func (n *Node) resetAxisLayoutSize(horizontal bool) {
	n.setAxisSize(horizontal, n.clampAxis(horizontal, n.relAxisSize(horizontal)))
}

func (n *Node) clampAxis(horizontal bool, v float64) float64 {
	if n.item == nil {
		return v
	}
	return n.item.clamp(horizontal, v)
}

func (n *Node) minSetting(horizontal bool) float64 {
	if n.item == nil {
		return 0
	}
	return n.item.minSetting(horizontal)
}

func (n *Node) maxSetting(horizontal bool) float64 {
	if n.item == nil {
		return 0
	}
	return n.item.maxSetting(horizontal)
}

// axisMinSize is the size the item may not shrink below: its min setting,
// raised to the content minimum of a nested container sized by contents.
func (n *Node) axisMinSize(horizontal bool) float64 {
	size := n.minSetting(horizontal)
	if n.flexEnabled && n.isAutoAxis(horizontal) {
		size = max(size, n.layouter().axisMinSize(horizontal))
	}
	return size
}

// outerSize is the item's extent on the axis including the padding of a
// nested container and the item's margin.
func (n *Node) outerSize(horizontal bool) float64 {
	return n.axisSize(horizontal) + n.padding().Total(horizontal) + n.margin().Total(horizontal)
}

func (n *Node) outerMinSize(horizontal bool) float64 {
	return n.axisMinSize(horizontal) + n.padding().Total(horizontal) + n.margin().Total(horizontal)
}

func (n *Node) grow() float64 {
	if n.item == nil {
		return 0
	}
	return n.item.grow
}

func (n *Node) shrink() float64 {
	if n.item == nil {
		// An untouched item config is in auto mode.
		if n.flexEnabled {
			return 1
		}
		return 0
	}
	return n.item.Shrink()
}

// resizeAxis imposes a size on the item. A nested container re-runs the
// layout of the matching axis; any other node just takes the size.
func (n *Node) resizeAxis(horizontal bool, size float64) {
	if !n.flexEnabled {
		n.setAxisSize(horizontal, size)
		return
	}
	l := n.layouter()
	if l.horizontal() == horizontal {
		l.resizeMainAxis(size)
	} else {
		l.resizeCrossAxis(size)
	}
}
