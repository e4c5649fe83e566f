package layout

import "fmt"

// ContainerConfig holds the settings a node uses when it lays out its
// children as a flex container. Setters panic on invalid values and mark
// the owning node for layout.
type ContainerConfig struct {
	node     *Node
	layouter *containerLayouter

	direction      Direction
	wrap           bool
	alignItems     Align
	alignContent   AlignContent
	justifyContent Justify
	padding        Edges
}

func newContainerConfig(n *Node) *ContainerConfig {
	c := &ContainerConfig{
		node:         n,
		direction:    Row,
		alignItems:   AlignStretch,
		alignContent: ContentStretch,
	}
	c.layouter = newContainerLayouter(c)
	return c
}

// Direction returns the main axis direction.
func (c *ContainerConfig) Direction() Direction { return c.direction }

// SetDirection sets the main axis direction.
func (c *ContainerConfig) SetDirection(d Direction) {
	if !d.valid() {
		panic(fmt.Sprintf("layout: invalid direction %d", d))
	}
	if c.direction != d {
		// Switching axes can flip which sides are fit to contents.
		horizontalChanged := c.direction.Horizontal() != d.Horizontal()
		c.direction = d
		c.changed(horizontalChanged, horizontalChanged)
	}
}

// Wrap reports whether items wrap onto multiple lines.
func (c *ContainerConfig) Wrap() bool { return c.wrap }

// SetWrap enables or disables line wrapping.
func (c *ContainerConfig) SetWrap(wrap bool) {
	if c.wrap != wrap {
		c.wrap = wrap
		c.changed(false, false)
	}
}

// AlignItems returns the default cross axis alignment of items.
func (c *ContainerConfig) AlignItems() Align { return c.alignItems }

// SetAlignItems sets the default cross axis alignment of items.
func (c *ContainerConfig) SetAlignItems(a Align) {
	if !a.valid() {
		panic(fmt.Sprintf("layout: invalid align-items %d", a))
	}
	if c.alignItems != a {
		c.alignItems = a
		c.changed(false, false)
	}
}

// AlignContent returns the cross axis distribution of lines.
func (c *ContainerConfig) AlignContent() AlignContent { return c.alignContent }

// SetAlignContent sets the cross axis distribution of lines.
func (c *ContainerConfig) SetAlignContent(a AlignContent) {
	if !a.valid() {
		panic(fmt.Sprintf("layout: invalid align-content %d", a))
	}
	if c.alignContent != a {
		c.alignContent = a
		c.changed(false, false)
	}
}

// JustifyContent returns the main axis distribution of items.
func (c *ContainerConfig) JustifyContent() Justify { return c.justifyContent }

// SetJustifyContent sets the main axis distribution of items.
func (c *ContainerConfig) SetJustifyContent(j Justify) {
	if !j.valid() {
		panic(fmt.Sprintf("layout: invalid justify-content %d", j))
	}
	if c.justifyContent != j {
		c.justifyContent = j
		c.changed(false, false)
	}
}

// Padding returns the container padding.
func (c *ContainerConfig) Padding() Edges { return c.padding }

// SetPadding sets all four paddings. Negative padding panics.
func (c *ContainerConfig) SetPadding(e Edges) {
	if e.negative() {
		panic(fmt.Sprintf("layout: negative padding %+v", e))
	}
	if c.padding != e {
		old := c.padding
		c.padding = e
		c.changed(old.Horizontal() != e.Horizontal(), old.Vertical() != e.Vertical())
	}
}

// SetPaddingTop sets the top padding.
func (c *ContainerConfig) SetPaddingTop(v float64) { c.setPaddingEdge(func(e *Edges) { e.Top = v }) }

// SetPaddingRight sets the right padding.
func (c *ContainerConfig) SetPaddingRight(v float64) { c.setPaddingEdge(func(e *Edges) { e.Right = v }) }

// SetPaddingBottom sets the bottom padding.
func (c *ContainerConfig) SetPaddingBottom(v float64) {
	c.setPaddingEdge(func(e *Edges) { e.Bottom = v })
}

// SetPaddingLeft sets the left padding.
func (c *ContainerConfig) SetPaddingLeft(v float64) { c.setPaddingEdge(func(e *Edges) { e.Left = v }) }

func (c *ContainerConfig) setPaddingEdge(set func(*Edges)) {
	e := c.padding
	set(&e)
	c.SetPadding(e)
}

// changed marks the owning node's contents dirty. Settings are kept while
// flex mode is off, so nothing is marked until it is enabled again.
func (c *ContainerConfig) changed(width, height bool) {
	if c.node.flexEnabled {
		c.node.updateDirty(width, height)
	}
}
