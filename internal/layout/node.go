package layout

// Node is the layout state the engine keeps for one Subject.
//
// A node may be a flex container, a flex item, both or neither. Its
// container and item configs are created on first use and kept when the
// corresponding mode is switched off, so settings survive toggles.
type Node struct {
	tree    *Tree
	handle  Handle
	subject Subject

	dirty Dirty

	// Resolved position and size along each axis. For containers the size
	// excludes padding.
	x, y, w, h float64

	pushed    Rect
	hasPushed bool

	container *ContainerConfig
	item      *ItemConfig

	flexEnabled  bool
	itemDisabled bool
	enabled      bool

	// items caches the active items of a container. It is rebuilt as a
	// whole after every child list or visibility change.
	items      []Handle
	itemsValid bool
	// members are the children that were last made aware of this container.
	members []Handle
}

// Handle returns the arena handle of the node.
func (n *Node) Handle() Handle { return n.handle }

// Subject returns the host node this layout node wraps.
func (n *Node) Subject() Subject { return n.subject }

// Dirty returns the current dirty state.
func (n *Node) Dirty() Dirty { return n.dirty }

// Rect returns the rectangle last pushed to the subject and whether
// one was pushed at all.
func (n *Node) Rect() (Rect, bool) { return n.pushed, n.hasPushed }

// IsFlexEnabled reports whether the node lays out its children.
func (n *Node) IsFlexEnabled() bool { return n.flexEnabled }

// IsItem reports whether the node is laid out by a parent container.
func (n *Node) IsItem() bool { return n.flexParent() != nil }

// Container returns the container config, creating it if needed.
func (n *Node) Container() *ContainerConfig {
	if n.container == nil {
		n.container = newContainerConfig(n)
	}
	return n.container
}

// Item returns the item config, creating it if needed.
func (n *Node) Item() *ItemConfig {
	if n.item == nil {
		n.item = newItemConfig(n)
	}
	return n.item
}

// flexParent returns the container laying out this node, or nil.
func (n *Node) flexParent() *Node {
	if n.itemDisabled {
		return nil
	}
	ps := n.subject.Parent()
	if ps == nil {
		return nil
	}
	p := n.tree.lookup(ps)
	if p == nil || !p.flexEnabled {
		return nil
	}
	return p
}

// activeItems returns a snapshot of the visible, item-enabled children.
// Callers may iterate it while the tree changes underneath.
func (n *Node) activeItems() []*Node {
	if !n.itemsValid {
		n.rebuildItems()
	}
	out := make([]*Node, 0, len(n.items))
	for _, h := range n.items {
		if c := n.tree.node(h); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (n *Node) rebuildItems() {
	n.items = n.items[:0]
	for _, cs := range n.subject.Children() {
		c := n.tree.lookup(cs)
		if c == nil || c.itemDisabled || !cs.Visible() {
			continue
		}
		n.items = append(n.items, c.handle)
	}
	n.itemsValid = true
}

func (n *Node) invalidateItems() {
	n.itemsValid = false
}

// syncMembers creates nodes for the current children, which become items
// of this container, and re-evaluates participation of children that left.
func (n *Node) syncMembers() {
	prev := n.members
	n.members = nil
	if n.flexEnabled {
		for _, cs := range n.subject.Children() {
			c := n.tree.ensure(cs)
			n.members = append(n.members, c.handle)
			c.checkEnabled()
		}
	}
	for _, h := range prev {
		if c := n.tree.node(h); c != nil {
			c.checkEnabled()
		}
	}
}

// checkEnabled reports participation changes to the subject.
func (n *Node) checkEnabled() {
	enabled := n.flexEnabled || n.flexParent() != nil
	if enabled == n.enabled {
		return
	}
	n.enabled = enabled
	if enabled {
		n.subject.EnableFlexLayout()
	} else {
		n.subject.DisableFlexLayout()
	}
}

func (n *Node) layouter() *containerLayouter {
	return n.container.layouter
}

// push finalizes the node: it clears the dirty state and hands the
// resolved rectangle to the subject.
func (n *Node) push(x, y, w, h float64) {
	n.dirty = Clean
	n.pushed = Rect{X: x, Y: y, Width: w, Height: h}
	n.hasPushed = true
	n.subject.SetLayoutCoords(x, y)
	n.subject.SetLayoutDimensions(w, h)
}
