package layout

// SizeFunc computes a relative position or size from the size of the
// parent on the same axis.
type SizeFunc func(parentSize float64) float64

// Subject is the interface a host node implements to participate in layout.
// The layout engine reads geometry intents and writes resolved layout
// through it and calls nothing else on the host.
//
// Subjects are used as map keys, so implementations must be comparable
// (pointer receivers in practice).
type Subject interface {
	// Children returns the ordered children, or nil.
	Children() []Subject

	// Parent returns the parent subject, or nil for a root.
	Parent() Subject

	// Visible reports whether the node takes part in its parent's layout.
	Visible() bool

	// SourceX, SourceY, SourceW and SourceH return the author-specified box.
	// A zero width or height without a matching size func means the axis
	// is sized from contents.
	SourceX() float64
	SourceY() float64
	SourceW() float64
	SourceH() float64

	// FuncX, FuncY, FuncW and FuncH return relative position/size callables,
	// or nil when the plain source value applies.
	FuncX() SizeFunc
	FuncY() SizeFunc
	FuncW() SizeFunc
	FuncH() SizeFunc

	// SetLayoutCoords receives the resolved position relative to the parent.
	SetLayoutCoords(x, y float64)

	// SetLayoutDimensions receives the resolved outer size.
	SetLayoutDimensions(w, h float64)

	// TriggerLayout is invoked on the topmost node of a dirtied chain.
	// The host should call Tree.LayoutFlexTree on it before the next render.
	TriggerLayout()

	// EnableFlexLayout and DisableFlexLayout report that the node started
	// or stopped taking part in flex layout.
	EnableFlexLayout()
	DisableFlexLayout()
}
