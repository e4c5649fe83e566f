package layout

// contentAligner distributes a container's lines along the cross axis and
// aligns the items within each line.
type contentAligner struct {
	layouter  *containerLayouter
	totalSize float64
}

func newContentAligner(l *containerLayouter) *contentAligner {
	a := &contentAligner{layouter: l}
	for _, ln := range l.lines.lines {
		a.totalSize += ln.crossSize
	}
	return a
}

func (a *contentAligner) align() {
	l := a.layouter
	lines := l.lines.lines
	if len(lines) == 0 {
		return
	}
	remaining := l.crossSize() - a.totalSize
	mode := l.config.alignContent
	before, between := spacing(mode.spacing(), len(lines), remaining)

	// Lines only grow under stretch. Any other mode places them, even the
	// single line of a non-wrapping container.
	grow := 0.0
	if mode == ContentStretch && remaining > 0 {
		grow = remaining / float64(len(lines))
	}

	pos := before
	for _, ln := range lines {
		size := ln.crossSize + grow
		recursive := ln.alignItems(size, pos)
		for retry := 0; recursive && retry < maxRecursiveResizeRetries; retry++ {
			l.node().tree.logger.Debug("recursive resize, repositioning line")
			ln.positionItems()
			recursive = false
		}
		pos += size + between
	}
}
