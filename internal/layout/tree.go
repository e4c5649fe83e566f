package layout

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/debug"
)

// Handle addresses a node in a Tree. Handles of removed nodes go stale and
// resolve to nil; the zero Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.gen == 0 }

func (h Handle) String() string { return fmt.Sprintf("%d#%d", h.index, h.gen) }

type slot struct {
	node *Node
	gen  uint32
}

// Tree is the arena of layout nodes for one host scene graph. Links between
// nodes are handles, never direct references, so removing a node cannot
// leave another node pointing at it.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	slots     []slot
	free      []uint32
	bySubject map[Subject]Handle
	logger    *zap.Logger
}

// Option configures a Tree.
type Option func(*Tree)

// WithLogger sets the logger used for layout tracing.
// Default is the process debug logger, a no-op unless FLEX_DEBUG is set.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tree) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTree creates an empty layout tree.
func NewTree(opts ...Option) *Tree {
	t := &Tree{
		bySubject: make(map[Subject]Handle),
		logger:    debug.Logger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Logger returns the logger the tree traces layout with.
func (t *Tree) Logger() *zap.Logger { return t.logger }

// Len returns the number of live nodes.
func (t *Tree) Len() int { return len(t.bySubject) }

func (t *Tree) node(h Handle) *Node {
	if h.IsZero() || int(h.index) >= len(t.slots) {
		return nil
	}
	s := t.slots[h.index]
	if s.gen != h.gen {
		return nil
	}
	return s.node
}

func (t *Tree) lookup(s Subject) *Node {
	if s == nil {
		return nil
	}
	h, ok := t.bySubject[s]
	if !ok {
		return nil
	}
	return t.node(h)
}

// ensure returns the node of s, creating it on first use.
func (t *Tree) ensure(s Subject) *Node {
	if n := t.lookup(s); n != nil {
		return n
	}
	var idx uint32
	if k := len(t.free); k > 0 {
		idx = t.free[k-1]
		t.free = t.free[:k-1]
	} else {
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, slot{})
	}
	gen := t.slots[idx].gen + 1
	n := &Node{tree: t, handle: Handle{index: idx, gen: gen}, subject: s, dirty: Contents | Width | Height}
	t.slots[idx] = slot{node: n, gen: gen}
	t.bySubject[s] = n.handle
	return n
}

// Lookup returns the node of s, or nil if s does not take part in layout.
func (t *Tree) Lookup(s Subject) *Node {
	return t.lookup(s)
}

// Node resolves a handle, returning nil for stale handles.
func (t *Tree) Node(h Handle) *Node {
	return t.node(h)
}

// Remove destroys the node of s. Its container, if any, drops it from
// its items.
func (t *Tree) Remove(s Subject) {
	n := t.lookup(s)
	if n == nil {
		return
	}
	if p := n.flexParent(); p != nil {
		p.changedChildren()
	}
	if n.enabled {
		n.enabled = false
		s.DisableFlexLayout()
	}
	delete(t.bySubject, s)
	t.slots[n.handle.index] = slot{gen: n.handle.gen}
	t.free = append(t.free, n.handle.index)
}

// SetFlexEnabled turns the node into a flex container for its children,
// or back into a plain node.
func (t *Tree) SetFlexEnabled(s Subject, enabled bool) {
	n := t.ensure(s)
	if n.flexEnabled == enabled {
		return
	}
	n.Container()
	n.flexEnabled = enabled
	n.invalidateItems()
	n.syncMembers()
	n.checkEnabled()
	n.updateDirty(true, true)
}

// SetItemEnabled controls whether the node is laid out by its parent
// container. Items are enabled by default.
func (t *Tree) SetItemEnabled(s Subject, enabled bool) {
	n := t.ensure(s)
	if n.itemDisabled == !enabled {
		return
	}
	n.itemDisabled = !enabled
	if ps := s.Parent(); ps != nil {
		if p := t.lookup(ps); p != nil && p.flexEnabled {
			p.changedChildren()
		}
	}
	n.checkEnabled()
}

// IsFlexEnabled reports whether s is a flex container.
func (t *Tree) IsFlexEnabled(s Subject) bool {
	n := t.lookup(s)
	return n != nil && n.flexEnabled
}

// IsItemEnabled reports whether s is laid out by a parent container.
func (t *Tree) IsItemEnabled(s Subject) bool {
	n := t.lookup(s)
	return n != nil && n.flexParent() != nil
}

// IsDirty reports whether s is waiting for layout.
func (t *Tree) IsDirty(s Subject) bool {
	n := t.lookup(s)
	return n != nil && !n.dirty.IsClean()
}

// Container returns the container config of s, creating the node and
// config if needed. Settings apply once flex is enabled.
func (t *Tree) Container(s Subject) *ContainerConfig {
	return t.ensure(s).Container()
}

// Item returns the item config of s, creating the node and config if needed.
func (t *Tree) Item(s Subject) *ItemConfig {
	return t.ensure(s).Item()
}

// ForceLayout marks s for layout after a host-side geometry change.
// changeWidth and changeHeight tell whether its external size may differ.
func (t *Tree) ForceLayout(s Subject, changeWidth, changeHeight bool) {
	n := t.lookup(s)
	if n == nil || !n.enabled {
		return
	}
	n.updateDirty(changeWidth, changeHeight)
}

// ChangedContents marks a container whose contents changed in a way the
// engine cannot observe.
func (t *Tree) ChangedContents(s Subject) {
	if n := t.lookup(s); n != nil {
		n.changedContents()
	}
}

// ChangedChildren must be called after children of s were added, removed
// or reordered.
func (t *Tree) ChangedChildren(s Subject) {
	n := t.lookup(s)
	if n == nil {
		return
	}
	n.syncMembers()
	n.changedChildren()
}

// ChangedVisibility must be called after s was shown or hidden.
func (t *Tree) ChangedVisibility(s Subject) {
	n := t.lookup(s)
	if n == nil {
		return
	}
	if ps := s.Parent(); ps != nil {
		if p := t.lookup(ps); p != nil && p.flexEnabled {
			p.changedChildren()
		}
	}
}

// LayoutFlexTree lays out the flex tree containing s and pushes results to
// the subjects. Hosts call it once per frame on the subject whose
// TriggerLayout fired.
func (t *Tree) LayoutFlexTree(s Subject) {
	n := t.lookup(s)
	if n == nil {
		return
	}
	if !n.flexEnabled {
		if n = n.flexParent(); n == nil {
			return
		}
	}
	// A dirty enclosing container lays this one out as part of its own
	// pass. This happens when the trigger fired before the node became an
	// item.
	for p := n.flexParent(); p != nil && !p.dirty.IsClean(); p = n.flexParent() {
		n = p
	}
	n.layouter().layoutTree()
}

func (n *Node) changedChildren() {
	n.invalidateItems()
	n.changedContents()
}

func (n *Node) changedContents() {
	if n.flexEnabled {
		n.updateDirty(false, false)
	}
}

// updateDirty marks the node. Axes a container fits to its contents count
// as externally changed.
func (n *Node) updateDirty(changeWidth, changeHeight bool) {
	if n.flexEnabled {
		l := n.layouter()
		changeWidth = changeWidth || l.isAxisFitToContents(true)
		changeHeight = changeHeight || l.isAxisFitToContents(false)
	}
	n.markDirty(Contents.With(Width, changeWidth).With(Height, changeHeight))
}

// markDirty sets flags and carries new external-size flags up the chain of
// containers. The topmost node reached asks the host for a layout.
func (n *Node) markDirty(d Dirty) {
	for {
		fresh := n.dirty.NewFlags(d)
		n.dirty |= d
		if !fresh.External() {
			break
		}
		p := n.flexParent()
		if p == nil {
			break
		}
		d = p.layouter().dirtyFromChild(d)
		n = p
	}
	n.tree.logger.Debug("trigger layout",
		zap.Uint32("node", n.handle.index),
		zap.Stringer("dirty", n.dirty))
	n.subject.TriggerLayout()
}
