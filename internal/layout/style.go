package layout

import "fmt"

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row           Direction = iota // Children laid out left-to-right
	RowReverse                     // Children laid out right-to-left
	Column                         // Children laid out top-to-bottom
	ColumnReverse                  // Children laid out bottom-to-top
)

var directionNames = [...]string{"row", "row-reverse", "column", "column-reverse"}

// Horizontal reports whether the main axis runs horizontally.
func (d Direction) Horizontal() bool {
	return d == Row || d == RowReverse
}

// Reverse reports whether items are laid out against the axis direction.
func (d Direction) Reverse() bool {
	return d == RowReverse || d == ColumnReverse
}

func (d Direction) valid() bool {
	return int(d) < len(directionNames)
}

func (d Direction) String() string {
	if !d.valid() {
		return fmt.Sprintf("Direction(%d)", d)
	}
	return directionNames[d]
}

// ParseDirection parses a CSS flex-direction keyword.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return Row, fmt.Errorf("unknown direction %q", s)
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

var justifyNames = [...]string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"}

func (j Justify) valid() bool {
	return int(j) < len(justifyNames)
}

func (j Justify) String() string {
	if !j.valid() {
		return fmt.Sprintf("Justify(%d)", j)
	}
	return justifyNames[j]
}

func (j Justify) spacing() Spacing {
	switch j {
	case JustifyStart:
		return SpacingStart
	case JustifyEnd:
		return SpacingEnd
	case JustifyCenter:
		return SpacingCenter
	case JustifySpaceBetween:
		return SpacingBetween
	case JustifySpaceAround:
		return SpacingAround
	case JustifySpaceEvenly:
		return SpacingEvenly
	}
	panic(fmt.Sprintf("layout: invalid justify-content %d", j))
}

// ParseJustify parses a CSS justify-content keyword.
func ParseJustify(s string) (Justify, error) {
	for i, name := range justifyNames {
		if name == s {
			return Justify(i), nil
		}
	}
	return JustifyStart, fmt.Errorf("unknown justify-content %q", s)
}

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

var alignNames = [...]string{"flex-start", "flex-end", "center", "stretch"}

func (a Align) valid() bool {
	return int(a) < len(alignNames)
}

func (a Align) String() string {
	if !a.valid() {
		return fmt.Sprintf("Align(%d)", a)
	}
	return alignNames[a]
}

// ParseAlign parses a CSS align-items or align-self keyword.
func ParseAlign(s string) (Align, error) {
	for i, name := range alignNames {
		if name == s {
			return Align(i), nil
		}
	}
	return AlignStart, fmt.Errorf("unknown align %q", s)
}

// AlignContent specifies how wrapped lines are distributed on the cross axis.
type AlignContent uint8

const (
	ContentStart        AlignContent = iota // Pack lines at start
	ContentEnd                              // Pack lines at end
	ContentCenter                           // Center lines
	ContentSpaceBetween                     // Even space between lines
	ContentSpaceAround                      // Even space around each line
	ContentSpaceEvenly                      // Equal space between and at edges
	ContentStretch                          // Grow lines to fill the cross axis
)

var alignContentNames = [...]string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly", "stretch"}

func (a AlignContent) valid() bool {
	return int(a) < len(alignContentNames)
}

func (a AlignContent) String() string {
	if !a.valid() {
		return fmt.Sprintf("AlignContent(%d)", a)
	}
	return alignContentNames[a]
}

func (a AlignContent) spacing() Spacing {
	switch a {
	case ContentStart:
		return SpacingStart
	case ContentEnd:
		return SpacingEnd
	case ContentCenter:
		return SpacingCenter
	case ContentSpaceBetween:
		return SpacingBetween
	case ContentSpaceAround:
		return SpacingAround
	case ContentSpaceEvenly:
		return SpacingEvenly
	case ContentStretch:
		return SpacingStretch
	}
	panic(fmt.Sprintf("layout: invalid align-content %d", a))
}

// ParseAlignContent parses a CSS align-content keyword.
func ParseAlignContent(s string) (AlignContent, error) {
	for i, name := range alignContentNames {
		if name == s {
			return AlignContent(i), nil
		}
	}
	return ContentStart, fmt.Errorf("unknown align-content %q", s)
}
