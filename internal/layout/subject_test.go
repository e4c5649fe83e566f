package layout

import (
	"math"
	"testing"
)

// testSubject is a minimal host node for exercising the engine.
type testSubject struct {
	name     string
	parent   *testSubject
	children []*testSubject
	hidden   bool

	x, y, w, h     float64
	fx, fy, fw, fh SizeFunc

	rect      Rect
	pushes    int
	triggered int
	enabled   bool
}

func newSubject(name string, w, h float64) *testSubject {
	return &testSubject{name: name, w: w, h: h}
}

func (s *testSubject) add(children ...*testSubject) *testSubject {
	for _, c := range children {
		c.parent = s
		s.children = append(s.children, c)
	}
	return s
}

func (s *testSubject) Children() []Subject {
	if len(s.children) == 0 {
		return nil
	}
	out := make([]Subject, len(s.children))
	for i, c := range s.children {
		out[i] = c
	}
	return out
}

func (s *testSubject) Parent() Subject {
	if s.parent == nil {
		return nil
	}
	return s.parent
}

func (s *testSubject) Visible() bool     { return !s.hidden }
func (s *testSubject) SourceX() float64  { return s.x }
func (s *testSubject) SourceY() float64  { return s.y }
func (s *testSubject) SourceW() float64  { return s.w }
func (s *testSubject) SourceH() float64  { return s.h }
func (s *testSubject) FuncX() SizeFunc   { return s.fx }
func (s *testSubject) FuncY() SizeFunc   { return s.fy }
func (s *testSubject) FuncW() SizeFunc   { return s.fw }
func (s *testSubject) FuncH() SizeFunc   { return s.fh }
func (s *testSubject) TriggerLayout()    { s.triggered++ }
func (s *testSubject) EnableFlexLayout() { s.enabled = true }
func (s *testSubject) DisableFlexLayout() {
	s.enabled = false
}

func (s *testSubject) SetLayoutCoords(x, y float64) {
	s.rect.X, s.rect.Y = x, y
	s.pushes++
}

func (s *testSubject) SetLayoutDimensions(w, h float64) {
	s.rect.Width, s.rect.Height = w, h
}

// flexRoot creates a tree with root as an enabled flex container. The
// optional configure func runs before the first layout.
func flexRoot(root *testSubject, configure func(t *Tree)) *Tree {
	tree := NewTree()
	tree.SetFlexEnabled(root, true)
	if configure != nil {
		configure(tree)
	}
	tree.LayoutFlexTree(root)
	return tree
}

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func rectApproxEqual(a, b Rect) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y) &&
		approxEqual(a.Width, b.Width) && approxEqual(a.Height, b.Height)
}

func checkRect(t *testing.T, s *testSubject, want Rect) {
	t.Helper()
	if !rectApproxEqual(s.rect, want) {
		t.Errorf("%s rect = %+v, want %+v", s.name, s.rect, want)
	}
}
