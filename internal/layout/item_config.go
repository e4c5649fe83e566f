package layout

import "fmt"

// ItemConfig holds the settings a node uses when it is placed in a flex
// container. Setters panic on invalid values and mark the enclosing
// container for layout.
type ItemConfig struct {
	node *Node

	grow       float64
	shrink     float64
	shrinkAuto bool

	alignSelf    Align
	hasAlignSelf bool

	minWidth, maxWidth   float64
	minHeight, maxHeight float64

	margin Edges
}

func newItemConfig(n *Node) *ItemConfig {
	return &ItemConfig{node: n, shrinkAuto: true}
}

// Container returns the container config the item is currently placed in,
// or nil when the node is not an active flex item.
func (c *ItemConfig) Container() *ContainerConfig {
	if p := c.node.flexParent(); p != nil {
		return p.container
	}
	return nil
}

// Grow returns the grow factor.
func (c *ItemConfig) Grow() float64 { return c.grow }

// SetGrow sets the grow factor. Negative factors panic.
func (c *ItemConfig) SetGrow(v float64) {
	if v < 0 {
		panic(fmt.Sprintf("layout: negative grow factor %v", v))
	}
	if c.grow != v {
		c.grow = v
		c.changed()
	}
}

// Shrink returns the effective shrink factor. In auto mode a node that is
// itself a flex container shrinks with factor 1, any other node does not
// shrink.
func (c *ItemConfig) Shrink() float64 {
	if c.shrinkAuto {
		if c.node.flexEnabled {
			return 1
		}
		return 0
	}
	return c.shrink
}

// ShrinkAuto reports whether the shrink factor is derived automatically.
func (c *ItemConfig) ShrinkAuto() bool { return c.shrinkAuto }

// SetShrink sets an explicit shrink factor. Negative factors panic.
func (c *ItemConfig) SetShrink(v float64) {
	if v < 0 {
		panic(fmt.Sprintf("layout: negative shrink factor %v", v))
	}
	if c.shrinkAuto || c.shrink != v {
		c.shrink = v
		c.shrinkAuto = false
		c.changed()
	}
}

// ResetShrink restores the automatic shrink factor.
func (c *ItemConfig) ResetShrink() {
	if !c.shrinkAuto {
		c.shrinkAuto = true
		c.shrink = 0
		c.changed()
	}
}

// AlignSelf returns the align-self override and whether one is set.
func (c *ItemConfig) AlignSelf() (Align, bool) { return c.alignSelf, c.hasAlignSelf }

// SetAlignSelf overrides the container's align-items for this item.
func (c *ItemConfig) SetAlignSelf(a Align) {
	if !a.valid() {
		panic(fmt.Sprintf("layout: invalid align-self %d", a))
	}
	if !c.hasAlignSelf || c.alignSelf != a {
		c.alignSelf = a
		c.hasAlignSelf = true
		c.changed()
	}
}

// ClearAlignSelf removes the align-self override.
func (c *ItemConfig) ClearAlignSelf() {
	if c.hasAlignSelf {
		c.hasAlignSelf = false
		c.alignSelf = AlignStart
		c.changed()
	}
}

// MinWidth returns the minimum width; 0 means unset.
func (c *ItemConfig) MinWidth() float64 { return c.minWidth }

// MaxWidth returns the maximum width; 0 means unset.
func (c *ItemConfig) MaxWidth() float64 { return c.maxWidth }

// MinHeight returns the minimum height; 0 means unset.
func (c *ItemConfig) MinHeight() float64 { return c.minHeight }

// MaxHeight returns the maximum height; 0 means unset.
func (c *ItemConfig) MaxHeight() float64 { return c.maxHeight }

// SetMinWidth sets the minimum width. 0 clears it; negative values panic.
func (c *ItemConfig) SetMinWidth(v float64) { c.setBound(&c.minWidth, true, "min-width", v) }

// SetMaxWidth sets the maximum width. 0 clears it; negative values panic.
func (c *ItemConfig) SetMaxWidth(v float64) { c.setBound(&c.maxWidth, true, "max-width", v) }

// SetMinHeight sets the minimum height. 0 clears it; negative values panic.
func (c *ItemConfig) SetMinHeight(v float64) { c.setBound(&c.minHeight, false, "min-height", v) }

// SetMaxHeight sets the maximum height. 0 clears it; negative values panic.
func (c *ItemConfig) SetMaxHeight(v float64) { c.setBound(&c.maxHeight, false, "max-height", v) }

func (c *ItemConfig) setBound(field *float64, horizontal bool, name string, v float64) {
	if v < 0 {
		panic(fmt.Sprintf("layout: negative %s %v", name, v))
	}
	if *field != v {
		*field = v
		c.boundsChanged(horizontal)
	}
}

// Margin returns the item margins.
func (c *ItemConfig) Margin() Edges { return c.margin }

// SetMargin sets all four margins. Negative margins panic.
func (c *ItemConfig) SetMargin(e Edges) {
	if e.negative() {
		panic(fmt.Sprintf("layout: negative margin %+v", e))
	}
	if c.margin != e {
		c.margin = e
		c.changed()
	}
}

// SetMarginTop sets the top margin.
func (c *ItemConfig) SetMarginTop(v float64) { c.setMarginEdge(func(e *Edges) { e.Top = v }) }

// SetMarginRight sets the right margin.
func (c *ItemConfig) SetMarginRight(v float64) { c.setMarginEdge(func(e *Edges) { e.Right = v }) }

// SetMarginBottom sets the bottom margin.
func (c *ItemConfig) SetMarginBottom(v float64) { c.setMarginEdge(func(e *Edges) { e.Bottom = v }) }

// SetMarginLeft sets the left margin.
func (c *ItemConfig) SetMarginLeft(v float64) { c.setMarginEdge(func(e *Edges) { e.Left = v }) }

func (c *ItemConfig) setMarginEdge(set func(*Edges)) {
	e := c.margin
	set(&e)
	c.SetMargin(e)
}

func (c *ItemConfig) minSetting(horizontal bool) float64 {
	if horizontal {
		return c.minWidth
	}
	return c.minHeight
}

func (c *ItemConfig) maxSetting(horizontal bool) float64 {
	if horizontal {
		return c.maxWidth
	}
	return c.maxHeight
}

// clamp applies the min/max settings of an axis. Unset bounds are ignored
// and a minimum above the maximum wins.
func (c *ItemConfig) clamp(horizontal bool, v float64) float64 {
	if hi := c.maxSetting(horizontal); hi > 0 && v > hi {
		v = hi
	}
	if lo := c.minSetting(horizontal); lo > 0 && v < lo {
		v = lo
	}
	return v
}

// boundsChanged forces a layout of the item itself with the bounded axis
// flagged. A clean nested container would otherwise restore its cached
// size and never see the new bounds.
func (c *ItemConfig) boundsChanged(horizontal bool) {
	if n := c.node; n.enabled {
		n.updateDirty(horizontal, !horizontal)
	}
	c.changed()
}

// changed marks the enclosing container, whose item sizes are now stale.
func (c *ItemConfig) changed() {
	if p := c.node.flexParent(); p != nil {
		p.changedContents()
	}
}
