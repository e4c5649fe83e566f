package layout

import "strings"

// Dirty is the layout state of a node as a set of change flags.
//
// Contents means the node itself or something below it changed and its
// subtree must be laid out again. Width and Height mean the change may
// alter the node's external size on that axis, which is what decides
// whether the change travels up to the enclosing container.
type Dirty uint8

const (
	Contents Dirty = 1 << iota
	Width
	Height

	// Clean is the state of a node whose cached layout is valid.
	Clean Dirty = 0
)

// AxisFlag returns the external-size flag for the given axis.
func AxisFlag(horizontal bool) Dirty {
	if horizontal {
		return Width
	}
	return Height
}

// Has reports whether all flags of f are set.
func (d Dirty) Has(f Dirty) bool {
	return f != 0 && d&f == f
}

// IsClean reports whether no flag is set.
func (d Dirty) IsClean() bool {
	return d == Clean
}

// External reports whether an external-size flag is set.
func (d Dirty) External() bool {
	return d&(Width|Height) != 0
}

// NewFlags returns the flags of f that are not yet set in d.
func (d Dirty) NewFlags(f Dirty) Dirty {
	return f &^ d
}

// With returns d with f set when cond holds.
func (d Dirty) With(f Dirty, cond bool) Dirty {
	if cond {
		return d | f
	}
	return d
}

func (d Dirty) String() string {
	if d.IsClean() {
		return "clean"
	}
	var parts []string
	if d&Contents != 0 {
		parts = append(parts, "contents")
	}
	if d&Width != 0 {
		parts = append(parts, "width")
	}
	if d&Height != 0 {
		parts = append(parts, "height")
	}
	return strings.Join(parts, "|")
}
