package scene

import (
	"go.uber.org/zap"

	flex "github.com/grindlemire/go-flex"
)

// Box is a rectangular scene node. It implements flex.Subject: the layout
// tree reads its specified geometry and writes resolved geometry back.
type Box struct {
	ID string

	x, y, w, h Value
	hidden     bool

	parent   *Box
	children []*Box
	scene    *Scene

	layout    flex.Rect
	hasLayout bool
	flex      bool
}

var _ flex.Subject = (*Box)(nil)

// Children returns the child boxes as subjects.
func (b *Box) Children() []flex.Subject {
	if len(b.children) == 0 {
		return nil
	}
	out := make([]flex.Subject, len(b.children))
	for i, c := range b.children {
		out[i] = c
	}
	return out
}

// Parent returns the parent box, or nil for the root.
func (b *Box) Parent() flex.Subject {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

// Visible reports whether the box takes part in layout.
func (b *Box) Visible() bool { return !b.hidden }

func (b *Box) SourceX() float64 { return b.x.source() }
func (b *Box) SourceY() float64 { return b.y.source() }
func (b *Box) SourceW() float64 { return b.w.source() }
func (b *Box) SourceH() float64 { return b.h.source() }

func (b *Box) FuncX() flex.SizeFunc { return b.x.sizeFunc(b.exprFailed("x")) }
func (b *Box) FuncY() flex.SizeFunc { return b.y.sizeFunc(b.exprFailed("y")) }
func (b *Box) FuncW() flex.SizeFunc { return b.w.sizeFunc(b.exprFailed("w")) }
func (b *Box) FuncH() flex.SizeFunc { return b.h.sizeFunc(b.exprFailed("h")) }

func (b *Box) exprFailed(field string) func(float64, error) {
	return func(parent float64, err error) {
		if b.scene == nil {
			return
		}
		b.scene.tree.Logger().Warn("size expression failed, using 0",
			zap.String("box", b.ID),
			zap.String("field", field),
			zap.Float64("parent", parent),
			zap.Error(err),
		)
	}
}

// SetLayoutCoords stores the resolved position relative to the parent.
func (b *Box) SetLayoutCoords(x, y float64) {
	b.layout.X, b.layout.Y = x, y
	b.hasLayout = true
}

// SetLayoutDimensions stores the resolved size.
func (b *Box) SetLayoutDimensions(w, h float64) {
	b.layout.Width, b.layout.Height = w, h
	b.hasLayout = true
}

// TriggerLayout queues the box for the next Scene.Layout.
func (b *Box) TriggerLayout() {
	if b.scene != nil {
		b.scene.trigger(b)
	}
}

func (b *Box) EnableFlexLayout()  { b.flex = true }
func (b *Box) DisableFlexLayout() { b.flex = false }

// InFlexLayout reports whether the box currently takes part in flex layout.
func (b *Box) InFlexLayout() bool { return b.flex }

// ParentBox returns the parent box, or nil.
func (b *Box) ParentBox() *Box { return b.parent }

// ChildBoxes returns the children of the box.
func (b *Box) ChildBoxes() []*Box { return b.children }

// AddChild appends children to the box. Children already attached
// elsewhere are moved.
func (b *Box) AddChild(children ...*Box) {
	for _, c := range children {
		if c.parent != nil {
			c.parent.RemoveChild(c)
		}
		c.parent = b
		b.children = append(b.children, c)
	}
	b.changedChildren()
}

// RemoveChild detaches a child. It returns false if c is not a child of b.
func (b *Box) RemoveChild(c *Box) bool {
	for i, child := range b.children {
		if child == c {
			b.children = append(b.children[:i], b.children[i+1:]...)
			c.parent = nil
			b.changedChildren()
			return true
		}
	}
	return false
}

func (b *Box) changedChildren() {
	if b.scene != nil {
		b.scene.tree.ChangedChildren(b)
	}
}

// Position returns the specified position.
func (b *Box) Position() (x, y Value) { return b.x, b.y }

// Size returns the specified size.
func (b *Box) Size() (w, h Value) { return b.w, b.h }

// SetPosition changes the specified position.
func (b *Box) SetPosition(x, y Value) {
	b.x, b.y = x, y
	b.forceLayout(false, false)
}

// SetSize changes the specified size.
func (b *Box) SetSize(w, h Value) {
	changeW := w != b.w
	changeH := h != b.h
	b.w, b.h = w, h
	b.forceLayout(changeW, changeH)
}

// SetHidden shows or hides the box.
func (b *Box) SetHidden(hidden bool) {
	if b.hidden == hidden {
		return
	}
	b.hidden = hidden
	if b.scene != nil {
		b.scene.tree.ChangedVisibility(b)
	}
}

// Hidden reports whether the box is hidden.
func (b *Box) Hidden() bool { return b.hidden }

func (b *Box) forceLayout(changeW, changeH bool) {
	if b.scene != nil {
		b.scene.tree.ForceLayout(b, changeW, changeH)
	}
}

// Layout returns the resolved rectangle relative to the parent. Boxes
// outside flex layout report their specified geometry.
func (b *Box) Layout() flex.Rect {
	if b.hasLayout {
		return b.layout
	}
	var pw, ph float64
	if b.parent != nil {
		p := b.parent.Layout()
		pw, ph = p.Width, p.Height
	}
	return flex.NewRect(b.x.Resolve(pw), b.y.Resolve(ph), b.w.Resolve(pw), b.h.Resolve(ph))
}

// WorldRect returns the resolved rectangle in scene coordinates.
func (b *Box) WorldRect() flex.Rect {
	r := b.Layout()
	for p := b.parent; p != nil; p = p.parent {
		pr := p.Layout()
		r = r.Translate(pr.X, pr.Y)
	}
	return r
}

// Padding returns the padding of a flex container box, or zero edges for
// any other box.
func (b *Box) Padding() flex.Edges {
	if b.scene == nil || !b.scene.tree.IsFlexEnabled(b) {
		return flex.Edges{}
	}
	return b.scene.tree.Container(b).Padding()
}

// BoxAt finds the deepest visible box containing the point, given in the
// same coordinates as WorldRect. Later children are drawn on top and are
// checked first.
func (b *Box) BoxAt(x, y float64) *Box {
	if b.hidden || !b.WorldRect().Contains(x, y) {
		return nil
	}
	for i := len(b.children) - 1; i >= 0; i-- {
		if hit := b.children[i].BoxAt(x, y); hit != nil {
			return hit
		}
	}
	return b
}

// Depth returns the number of ancestors.
func (b *Box) Depth() int {
	d := 0
	for p := b.parent; p != nil; p = p.parent {
		d++
	}
	return d
}
