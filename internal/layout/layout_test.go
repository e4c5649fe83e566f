package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, tolerance)

func rectsOf(subjects ...*testSubject) []Rect {
	out := make([]Rect, len(subjects))
	for i, s := range subjects {
		out[i] = s.rect
	}
	return out
}

func row(n int, w, h float64) []*testSubject {
	items := make([]*testSubject, n)
	for i := range items {
		items[i] = newSubject(string(rune('a'+i)), w, h)
	}
	return items
}

func TestLayout_Scenarios(t *testing.T) {
	type tc struct {
		root      *testSubject
		items     []*testSubject
		configure func(tree *Tree, root *testSubject, items []*testSubject)
		want      []Rect
	}

	tests := map[string]tc{
		"fixed items are packed at the start": {
			root:  newSubject("root", 300, 50),
			items: row(3, 100, 50),
			want: []Rect{
				NewRect(0, 0, 100, 50),
				NewRect(100, 0, 100, 50),
				NewRect(200, 0, 100, 50),
			},
		},
		"grow shares the surplus": {
			root:  newSubject("root", 300, 50),
			items: row(3, 50, 50),
			configure: func(tree *Tree, root *testSubject, items []*testSubject) {
				for _, it := range items {
					tree.Item(it).SetGrow(1)
				}
			},
			want: []Rect{
				NewRect(0, 0, 100, 50),
				NewRect(100, 0, 100, 50),
				NewRect(200, 0, 100, 50),
			},
		},
		"grow is proportional": {
			root:  newSubject("root", 300, 50),
			items: row(2, 50, 50),
			configure: func(tree *Tree, root *testSubject, items []*testSubject) {
				tree.Item(items[0]).SetGrow(1)
				tree.Item(items[1]).SetGrow(3)
			},
			want: []Rect{
				NewRect(0, 0, 100, 50),
				NewRect(100, 0, 200, 50),
			},
		},
		"wrapped lines with align-content start": {
			root:  newSubject("root", 300, 200),
			items: row(4, 100, 50),
			configure: func(tree *Tree, root *testSubject, items []*testSubject) {
				c := tree.Container(root)
				c.SetWrap(true)
				c.SetAlignContent(ContentStart)
			},
			want: []Rect{
				NewRect(0, 0, 100, 50),
				NewRect(100, 0, 100, 50),
				NewRect(200, 0, 100, 50),
				NewRect(0, 50, 100, 50),
			},
		},
		"wrapped lines stretch by default": {
			root:  newSubject("root", 200, 200),
			items: row(3, 100, 50),
			configure: func(tree *Tree, root *testSubject, items []*testSubject) {
				tree.Container(root).SetWrap(true)
			},
			want: []Rect{
				NewRect(0, 0, 100, 50),
				NewRect(100, 0, 100, 50),
				NewRect(0, 100, 100, 50),
			},
		},
		"space-evenly": {
			root:  newSubject("root", 300, 50),
			items: row(2, 50, 50),
			configure: func(tree *Tree, root *testSubject, items []*testSubject) {
				tree.Container(root).SetJustifyContent(JustifySpaceEvenly)
			},
			want: []Rect{
				NewRect(50, 0, 50, 50),
				NewRect(150, 0, 50, 50),
			},
		},
		"space-around": {
			root:  newSubject("root", 300, 50),
			items: row(2, 50, 50),
			configure: func(tree *Tree, root *testSubject, items []*testSubject) {
				tree.Container(root).SetJustifyContent(JustifySpaceAround)
			},
			want: []Rect{
				NewRect(100.0/3, 0, 50, 50),
				NewRect(150, 0, 50, 50),
			},
		},
		"space-between": {
			root:  newSubject("root", 300, 50),
			items: row(3, 50, 50),
			configure: func(tree *Tree, root *testSubject, items []*testSubject) {
				tree.Container(root).SetJustifyContent(JustifySpaceBetween)
			},
			want: []Rect{
				NewRect(0, 0, 50, 50),
				NewRect(125, 0, 50, 50),
				NewRect(250, 0, 50, 50),
			},
		},
		"justify center": {
			root:  newSubject("root", 300, 50),
			items: row(2, 50, 50),
			configure: func(tree *Tree, root *testSubject, items []*testSubject) {
				tree.Container(root).SetJustifyContent(JustifyCenter)
			},
			want: []Rect{
				NewRect(100, 0, 50, 50),
				NewRect(150, 0, 50, 50),
			},
		},
		"justify end": {
			root:  newSubject("root", 300, 50),
			items: row(2, 50, 50),
			configure: func(tree *Tree, root *testSubject, items []*testSubject) {
				tree.Container(root).SetJustifyContent(JustifyEnd)
			},
			want: []Rect{
				NewRect(200, 0, 50, 50),
				NewRect(250, 0, 50, 50),
			},
		},
		"column-reverse mirrors the main axis": {
			root:  newSubject("root", 100, 200),
			items: row(1, 100, 50),
			configure: func(tree *Tree, root *testSubject, items []*testSubject) {
				tree.Container(root).SetDirection(ColumnReverse)
			},
			want: []Rect{
				NewRect(0, 150, 100, 50),
			},
		},
		"row-reverse": {
			root:  newSubject("root", 300, 50),
			items: row(2, 100, 50),
			configure: func(tree *Tree, root *testSubject, items []*testSubject) {
				tree.Container(root).SetDirection(RowReverse)
			},
			want: []Rect{
				NewRect(200, 0, 100, 50),
				NewRect(100, 0, 100, 50),
			},
		},
		"column": {
			root:  newSubject("root", 100, 300),
			items: row(2, 40, 50),
			configure: func(tree *Tree, root *testSubject, items []*testSubject) {
				tree.Container(root).SetDirection(Column)
			},
			want: []Rect{
				NewRect(0, 0, 40, 50),
				NewRect(0, 50, 40, 50),
			},
		},
		"padding and margin offset items": {
			root:  newSubject("root", 300, 100),
			items: row(2, 100, 50),
			configure: func(tree *Tree, root *testSubject, items []*testSubject) {
				tree.Container(root).SetPadding(EdgeAll(10))
				tree.Item(items[0]).SetMargin(EdgeTRBL(5, 5, 0, 5))
			},
			want: []Rect{
				NewRect(15, 15, 100, 50),
				NewRect(120, 10, 100, 50),
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt.root.add(tt.items...)
			flexRoot(tt.root, func(tree *Tree) {
				if tt.configure != nil {
					tt.configure(tree, tt.root, tt.items)
				}
			})
			if diff := cmp.Diff(tt.want, rectsOf(tt.items...), approx); diff != "" {
				t.Errorf("item rects mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLayout_RootSizeIncludesPadding(t *testing.T) {
	root := newSubject("root", 300, 100).add(row(1, 100, 50)...)
	flexRoot(root, func(tree *Tree) {
		tree.Container(root).SetPadding(EdgeSymmetric(5, 10))
	})
	checkRect(t, root, NewRect(0, 0, 320, 110))
}

func TestLayout_RootPositionFromSource(t *testing.T) {
	root := newSubject("root", 100, 100)
	root.x, root.y = 7, 9
	flexRoot(root, nil)
	checkRect(t, root, NewRect(7, 9, 100, 100))
}

func TestLayout_FitToContents(t *testing.T) {
	root := newSubject("root", 0, 0).add(
		newSubject("a", 30, 20),
		newSubject("b", 50, 40),
	)
	flexRoot(root, nil)
	checkRect(t, root, NewRect(0, 0, 80, 40))
	// The single line spans the cross axis, so "a" is not stretched past
	// its fixed height.
	checkRect(t, root.children[0], NewRect(0, 0, 30, 20))
}

func TestLayout_FitToContentsRespectsMinMax(t *testing.T) {
	inner := newSubject("inner", 0, 0).add(newSubject("leaf", 200, 20))
	root := newSubject("root", 500, 100).add(inner)

	tree := NewTree()
	tree.SetFlexEnabled(root, true)
	tree.SetFlexEnabled(inner, true)
	tree.Item(inner).SetMaxWidth(120)
	tree.Container(root).SetAlignItems(AlignStart)
	tree.LayoutFlexTree(root)

	checkRect(t, inner, NewRect(0, 0, 120, 20))
}

func TestLayout_Align(t *testing.T) {
	type tc struct {
		align   Align
		itemH   float64
		wantY   float64
		wantH   float64
		maxH    float64
		selfSet bool
	}

	tests := map[string]tc{
		"start":              {align: AlignStart, itemH: 40, wantY: 0, wantH: 40},
		"end":                {align: AlignEnd, itemH: 40, wantY: 60, wantH: 40},
		"center":             {align: AlignCenter, itemH: 40, wantY: 30, wantH: 40},
		"stretch auto":       {align: AlignStretch, itemH: 0, wantY: 0, wantH: 100},
		"stretch fixed":      {align: AlignStretch, itemH: 40, wantY: 0, wantH: 40},
		"stretch clamped":    {align: AlignStretch, itemH: 0, wantY: 0, wantH: 60, maxH: 60},
		"self stretch fixed": {align: AlignStretch, itemH: 40, wantY: 0, wantH: 100, selfSet: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			item := newSubject("item", 50, tt.itemH)
			root := newSubject("root", 200, 100).add(item)
			flexRoot(root, func(tree *Tree) {
				c := tree.Container(root)
				it := tree.Item(item)
				if tt.selfSet {
					c.SetAlignItems(AlignStart)
					it.SetAlignSelf(tt.align)
				} else {
					c.SetAlignItems(tt.align)
				}
				it.SetMaxHeight(tt.maxH)
			})
			checkRect(t, item, NewRect(0, tt.wantY, 50, tt.wantH))
		})
	}
}

func TestLayout_AlignContent(t *testing.T) {
	type tc struct {
		mode  AlignContent
		wantY []float64
	}

	// Two lines of height 50 in a 200 high container leave 100.
	tests := map[string]tc{
		"start":         {mode: ContentStart, wantY: []float64{0, 50}},
		"end":           {mode: ContentEnd, wantY: []float64{100, 150}},
		"center":        {mode: ContentCenter, wantY: []float64{50, 100}},
		"space-between": {mode: ContentSpaceBetween, wantY: []float64{0, 150}},
		"space-around":  {mode: ContentSpaceAround, wantY: []float64{50.0 / 3, 100}},
		"space-evenly":  {mode: ContentSpaceEvenly, wantY: []float64{25, 100}},
		"stretch":       {mode: ContentStretch, wantY: []float64{0, 100}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			items := row(2, 100, 50)
			root := newSubject("root", 150, 200).add(items...)
			flexRoot(root, func(tree *Tree) {
				c := tree.Container(root)
				c.SetWrap(true)
				c.SetAlignContent(tt.mode)
			})
			got := []float64{items[0].rect.Y, items[1].rect.Y}
			if diff := cmp.Diff(tt.wantY, got, approx); diff != "" {
				t.Errorf("line offsets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLayout_SingleLineAlignContent(t *testing.T) {
	type tc struct {
		mode       AlignContent
		alignItems Align
		wantY      float64
	}

	// One 40 high line in a 100 high row that does not wrap leaves 60.
	tests := map[string]tc{
		"start":                   {mode: ContentStart, alignItems: AlignStart, wantY: 0},
		"center":                  {mode: ContentCenter, alignItems: AlignStart, wantY: 30},
		"end":                     {mode: ContentEnd, alignItems: AlignStart, wantY: 60},
		"space-between":           {mode: ContentSpaceBetween, alignItems: AlignStart, wantY: 0},
		"space-around":            {mode: ContentSpaceAround, alignItems: AlignStart, wantY: 15},
		"space-evenly":            {mode: ContentSpaceEvenly, alignItems: AlignStart, wantY: 20},
		"stretch":                 {mode: ContentStretch, alignItems: AlignStart, wantY: 0},
		"stretch centers in line": {mode: ContentStretch, alignItems: AlignCenter, wantY: 30},
		"center ignores the rest": {mode: ContentCenter, alignItems: AlignEnd, wantY: 30},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			item := newSubject("item", 40, 40)
			root := newSubject("root", 200, 100).add(item)
			flexRoot(root, func(tree *Tree) {
				c := tree.Container(root)
				c.SetAlignContent(tt.mode)
				c.SetAlignItems(tt.alignItems)
			})
			checkRect(t, item, NewRect(0, tt.wantY, 40, 40))
		})
	}
}

func TestLayout_RelativeCrossSize(t *testing.T) {
	type tc struct {
		align      Align
		wantY      float64
		wantYAfter float64
	}

	tests := map[string]tc{
		"start":  {align: AlignStart, wantY: 0, wantYAfter: 0},
		"center": {align: AlignCenter, wantY: 25, wantYAfter: 50},
		"end":    {align: AlignEnd, wantY: 50, wantYAfter: 100},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			item := newSubject("item", 50, 0)
			item.fh = func(p float64) float64 { return p / 2 }
			root := newSubject("root", 200, 100).add(item)
			tree := flexRoot(root, func(tree *Tree) {
				tree.Container(root).SetAlignItems(tt.align)
			})
			checkRect(t, item, NewRect(0, tt.wantY, 50, 50))

			root.h = 200
			tree.ForceLayout(root, false, true)
			tree.LayoutFlexTree(root)
			checkRect(t, item, NewRect(0, tt.wantYAfter, 50, 100))
		})
	}
}

func TestLayout_SpaceBetweenFillsMainAxis(t *testing.T) {
	widths := []float64{10, 35, 20, 60, 5}
	for n := 2; n <= len(widths); n++ {
		items := make([]*testSubject, n)
		sum := 0.0
		for i := range items {
			items[i] = newSubject("item", widths[i], 10)
			sum += widths[i]
		}
		root := newSubject("root", 300, 10).add(items...)
		flexRoot(root, func(tree *Tree) {
			tree.Container(root).SetJustifyContent(JustifySpaceBetween)
		})

		between := items[1].rect.X - items[0].rect.Right()
		if !approxEqual(sum+float64(n-1)*between, 300) {
			t.Errorf("n=%d: sizes %v + %d gaps of %v != 300", n, sum, n-1, between)
		}
		if last := items[n-1].rect; !approxEqual(last.Right(), 300) {
			t.Errorf("n=%d: last item ends at %v, want 300", n, last.Right())
		}
	}
}

func TestLayout_GrowRespectsMax(t *testing.T) {
	items := row(3, 50, 10)
	root := newSubject("root", 300, 10).add(items...)
	flexRoot(root, func(tree *Tree) {
		for _, it := range items {
			tree.Item(it).SetGrow(1)
		}
		tree.Item(items[0]).SetMaxWidth(60)
	})

	want := []float64{60, 120, 120}
	got := []float64{items[0].rect.Width, items[1].rect.Width, items[2].rect.Width}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_ShrinkRespectsMin(t *testing.T) {
	items := row(3, 50, 10)
	root := newSubject("root", 100, 10).add(items...)
	flexRoot(root, func(tree *Tree) {
		for _, it := range items {
			tree.Item(it).SetShrink(1)
		}
		tree.Item(items[0]).SetMinWidth(40)
	})

	want := []Rect{
		NewRect(0, 0, 40, 10),
		NewRect(40, 0, 30, 10),
		NewRect(70, 0, 30, 10),
	}
	if diff := cmp.Diff(want, rectsOf(items...), approx); diff != "" {
		t.Errorf("item rects mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_LeavesDoNotShrinkByDefault(t *testing.T) {
	items := row(3, 50, 10)
	root := newSubject("root", 100, 10).add(items...)
	flexRoot(root, nil)

	want := []Rect{
		NewRect(0, 0, 50, 10),
		NewRect(50, 0, 50, 10),
		NewRect(100, 0, 50, 10),
	}
	if diff := cmp.Diff(want, rectsOf(items...), approx); diff != "" {
		t.Errorf("item rects mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_RelativeSize(t *testing.T) {
	half := newSubject("half", 0, 20)
	half.fw = func(p float64) float64 { return p / 2 }
	quarter := newSubject("quarter", 0, 20)
	quarter.fw = func(p float64) float64 { return p / 4 }
	root := newSubject("root", 400, 20).add(half, quarter)
	tree := flexRoot(root, nil)

	checkRect(t, half, NewRect(0, 0, 200, 20))
	checkRect(t, quarter, NewRect(200, 0, 100, 20))

	// A new root size resolves the relative sizes again.
	root.w = 200
	tree.ForceLayout(root, true, false)
	tree.LayoutFlexTree(root)
	checkRect(t, half, NewRect(0, 0, 100, 20))
	checkRect(t, quarter, NewRect(100, 0, 50, 20))
}

func TestLayout_NestedContainers(t *testing.T) {
	a := newSubject("a", 40, 20)
	b := newSubject("b", 60, 20)
	inner := newSubject("inner", 0, 0).add(a, b)
	side := newSubject("side", 50, 0)
	root := newSubject("root", 300, 100).add(inner, side)

	tree := NewTree()
	tree.SetFlexEnabled(root, true)
	tree.SetFlexEnabled(inner, true)
	c := tree.Container(inner)
	c.SetDirection(Column)
	c.SetPadding(EdgeAll(5))
	tree.LayoutFlexTree(root)

	checkRect(t, root, NewRect(0, 0, 300, 100))
	checkRect(t, inner, NewRect(0, 0, 70, 100))
	checkRect(t, side, NewRect(70, 0, 50, 100))
	checkRect(t, a, NewRect(5, 5, 40, 20))
	checkRect(t, b, NewRect(5, 25, 60, 20))
}

func TestLayout_NestedGrowingContainer(t *testing.T) {
	leaf := newSubject("leaf", 10, 10)
	inner := newSubject("inner", 0, 0).add(leaf)
	root := newSubject("root", 200, 50).add(inner)

	tree := NewTree()
	tree.SetFlexEnabled(root, true)
	tree.SetFlexEnabled(inner, true)
	tree.Item(inner).SetGrow(1)
	tree.Container(inner).SetJustifyContent(JustifyEnd)
	tree.LayoutFlexTree(root)

	checkRect(t, inner, NewRect(0, 0, 200, 50))
	checkRect(t, leaf, NewRect(190, 0, 10, 10))
}

func TestLayout_NestedShrinkingContainer(t *testing.T) {
	a := newSubject("a", 60, 10)
	b := newSubject("b", 60, 10)
	inner := newSubject("inner", 0, 0).add(a, b)
	root := newSubject("root", 100, 10).add(inner)

	tree := NewTree()
	tree.SetFlexEnabled(root, true)
	tree.SetFlexEnabled(inner, true)
	tree.Item(a).SetShrink(1)
	tree.Item(b).SetShrink(1)
	tree.LayoutFlexTree(root)

	// The container shrinks by default and passes the deficit to items
	// that may shrink.
	checkRect(t, inner, NewRect(0, 0, 100, 10))
	checkRect(t, a, NewRect(0, 0, 50, 10))
	checkRect(t, b, NewRect(50, 0, 50, 10))
}

func TestLayout_HiddenItemsAreSkipped(t *testing.T) {
	items := row(3, 50, 10)
	items[1].hidden = true
	root := newSubject("root", 300, 10).add(items...)
	tree := flexRoot(root, nil)

	checkRect(t, items[2], NewRect(50, 0, 50, 10))

	items[1].hidden = false
	tree.ChangedVisibility(items[1])
	tree.LayoutFlexTree(root)
	checkRect(t, items[1], NewRect(50, 0, 50, 10))
	checkRect(t, items[2], NewRect(100, 0, 50, 10))
}

func TestLayout_DisabledItemIsSkipped(t *testing.T) {
	items := row(2, 50, 10)
	root := newSubject("root", 300, 10).add(items...)
	tree := flexRoot(root, func(tree *Tree) {
		tree.SetItemEnabled(items[0], false)
	})

	checkRect(t, items[1], NewRect(0, 0, 50, 10))
	if items[0].enabled {
		t.Error("disabled item still reported as enabled")
	}
	if tree.IsItemEnabled(items[0]) {
		t.Error("IsItemEnabled() = true for a disabled item")
	}
}

func TestLayout_EmptyContainer(t *testing.T) {
	root := newSubject("root", 0, 0)
	flexRoot(root, nil)
	checkRect(t, root, NewRect(0, 0, 0, 0))
}

func TestLayout_Idempotent(t *testing.T) {
	a := newSubject("a", 40, 20)
	b := newSubject("b", 60, 0)
	inner := newSubject("inner", 0, 0).add(a, b)
	c := newSubject("c", 30, 30)
	root := newSubject("root", 250, 120).add(inner, c)

	tree := NewTree()
	tree.SetFlexEnabled(root, true)
	tree.SetFlexEnabled(inner, true)
	tree.Container(root).SetDirection(RowReverse)
	tree.Container(root).SetJustifyContent(JustifySpaceAround)
	tree.Container(inner).SetDirection(ColumnReverse)
	tree.Container(inner).SetPadding(EdgeAll(3))
	tree.Item(c).SetMargin(EdgeAll(4))
	tree.LayoutFlexTree(root)

	all := []*testSubject{root, inner, a, b, c}
	first := rectsOf(all...)

	tree.LayoutFlexTree(root)
	tree.LayoutFlexTree(root)
	if diff := cmp.Diff(first, rectsOf(all...)); diff != "" {
		t.Errorf("second layout moved boxes (-first +second):\n%s", diff)
	}
}
