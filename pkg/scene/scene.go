package scene

import (
	"github.com/google/uuid"

	flex "github.com/grindlemire/go-flex"
)

// Scene owns a box hierarchy and the layout tree that lays it out.
// A Scene is not safe for concurrent use.
type Scene struct {
	Root *Box

	tree    *flex.Tree
	pending []*Box
	byID    map[string]*Box
}

// New creates an empty scene with a root box.
func New(opts ...flex.TreeOption) *Scene {
	s := &Scene{
		tree: flex.NewTree(opts...),
		byID: make(map[string]*Box),
	}
	s.Root = s.NewBox("root")
	return s
}

// Tree returns the layout tree of the scene.
func (s *Scene) Tree() *flex.Tree { return s.tree }

// NewBox creates a detached box. An empty id gets a generated one.
func (s *Scene) NewBox(id string) *Box {
	if id == "" {
		id = uuid.NewString()
	}
	b := &Box{ID: id, scene: s}
	s.byID[id] = b
	return b
}

// Lookup returns the box with the given id, or nil.
func (s *Scene) Lookup(id string) *Box {
	return s.byID[id]
}

// Container returns the flex container settings of b.
func (s *Scene) Container(b *Box) *flex.ContainerConfig {
	return s.tree.Container(b)
}

// Item returns the flex item settings of b.
func (s *Scene) Item(b *Box) *flex.ItemConfig {
	return s.tree.Item(b)
}

// SetFlex makes b a flex container for its children, or a plain box.
func (s *Scene) SetFlex(b *Box, enabled bool) {
	s.tree.SetFlexEnabled(b, enabled)
}

// Remove detaches b from its parent and drops the layout state of its
// subtree.
func (s *Scene) Remove(b *Box) {
	if b.parent != nil {
		b.parent.RemoveChild(b)
	}
	s.forget(b)
}

func (s *Scene) forget(b *Box) {
	for _, c := range b.children {
		s.forget(c)
	}
	s.tree.Remove(b)
	delete(s.byID, b.ID)
	for i, p := range s.pending {
		if p == b {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			break
		}
	}
}

func (s *Scene) trigger(b *Box) {
	for _, p := range s.pending {
		if p == b {
			return
		}
	}
	s.pending = append(s.pending, b)
}

// NeedsLayout reports whether any box asked for a layout.
func (s *Scene) NeedsLayout() bool {
	return len(s.pending) > 0
}

// Layout runs the pending layout passes and returns how many ran. Boxes
// that were laid out as part of an earlier pass are skipped.
func (s *Scene) Layout() int {
	pending := s.pending
	s.pending = nil
	passes := 0
	for _, b := range pending {
		if !s.tree.IsDirty(b) {
			continue
		}
		s.tree.LayoutFlexTree(b)
		passes++
	}
	return passes
}

// BoxAt returns the deepest visible box at the point, or nil.
func (s *Scene) BoxAt(x, y float64) *Box {
	return s.Root.BoxAt(x, y)
}

// Walk visits the boxes depth first, parents before children.
func (s *Scene) Walk(fn func(b *Box) bool) {
	walk(s.Root, fn)
}

func walk(b *Box, fn func(b *Box) bool) bool {
	if !fn(b) {
		return false
	}
	for _, c := range b.children {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
