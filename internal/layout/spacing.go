package layout

import "fmt"

// Spacing selects how leftover space is distributed around a run of
// items (justify-content) or lines (align-content).
type Spacing uint8

const (
	SpacingStart Spacing = iota
	SpacingEnd
	SpacingCenter
	SpacingBetween
	SpacingAround
	SpacingEvenly
	SpacingStretch // handled by the caller; spaced like SpacingStart
)

// spacing returns the space placed before the first of n entries and the
// space placed between consecutive entries when remaining space is left over.
// Negative remaining space is an overflow: space-around and space-evenly
// fall back to centering, space-between packs at the start.
func spacing(mode Spacing, n int, remaining float64) (before, between float64) {
	switch mode {
	case SpacingStart, SpacingStretch:
		return 0, 0
	case SpacingEnd:
		return remaining, 0
	case SpacingCenter:
		return remaining / 2, 0
	case SpacingBetween:
		if n <= 1 {
			return 0, 0
		}
		return 0, max(0, remaining) / float64(n-1)
	case SpacingAround:
		if remaining < 0 {
			return spacing(SpacingCenter, n, remaining)
		}
		if n == 0 {
			return 0, 0
		}
		gap := remaining / float64(n+1)
		return gap / 2, gap
	case SpacingEvenly:
		if remaining < 0 {
			return spacing(SpacingCenter, n, remaining)
		}
		if n == 0 {
			return 0, 0
		}
		gap := remaining / float64(n+2)
		return gap, gap
	}
	panic(fmt.Sprintf("layout: unknown spacing mode %d", mode))
}
