// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Subject is the interface host nodes implement to take part in layout.
type Subject = layout.Subject

// SizeFunc computes a relative position or size from the parent size.
type SizeFunc = layout.SizeFunc

// Tree tracks the layout state of one host scene graph.
type Tree = layout.Tree

// Node is the layout state of one subject.
type Node = layout.Node

// Handle addresses a node in a Tree.
type Handle = layout.Handle

// TreeOption configures a Tree.
type TreeOption = layout.Option

// ContainerConfig holds flex container settings.
type ContainerConfig = layout.ContainerConfig

// ItemConfig holds flex item settings.
type ItemConfig = layout.ItemConfig

// Dirty is the layout state of a node as a set of change flags.
type Dirty = layout.Dirty

const (
	Clean    = layout.Clean
	Contents = layout.Contents
	Width    = layout.Width
	Height   = layout.Height
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row           = layout.Row
	RowReverse    = layout.RowReverse
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// AlignContent specifies how wrapped lines are distributed on the cross axis.
type AlignContent = layout.AlignContent

const (
	ContentStart        = layout.ContentStart
	ContentEnd          = layout.ContentEnd
	ContentCenter       = layout.ContentCenter
	ContentSpaceBetween = layout.ContentSpaceBetween
	ContentSpaceAround  = layout.ContentSpaceAround
	ContentSpaceEvenly  = layout.ContentSpaceEvenly
	ContentStretch      = layout.ContentStretch
)

// Rect represents a resolved box.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// NewTree creates an empty layout tree.
func NewTree(opts ...TreeOption) *Tree {
	return layout.NewTree(opts...)
}

// WithLogger sets the logger used for layout tracing.
func WithLogger(logger *zap.Logger) TreeOption {
	return layout.WithLogger(logger)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// ParseDirection parses a CSS flex-direction keyword.
func ParseDirection(s string) (Direction, error) {
	return layout.ParseDirection(s)
}

// ParseJustify parses a CSS justify-content keyword.
func ParseJustify(s string) (Justify, error) {
	return layout.ParseJustify(s)
}

// ParseAlign parses a CSS align-items or align-self keyword.
func ParseAlign(s string) (Align, error) {
	return layout.ParseAlign(s)
}

// ParseAlignContent parses a CSS align-content keyword.
func ParseAlignContent(s string) (AlignContent, error) {
	return layout.ParseAlignContent(s)
}
