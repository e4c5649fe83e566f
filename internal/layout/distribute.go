package layout

// epsilon is the leftover amount of space treated as fully distributed.
const epsilon = 1e-5

// growItems distributes surplus main axis space over the items of a line in
// proportion to their grow factors and returns the amount consumed.
//
// Items that reach their max size leave the distribution and the rest of
// the surplus is re-divided among the others, so a single proportional pass
// is not enough when some items hit their bounds before others.
func growItems(ln *line, amount float64) float64 {
	return distribute(ln, amount, growRule{})
}

// shrinkItems removes a main axis deficit from the items of a line in
// proportion to their shrink factors and returns the amount removed.
func shrinkItems(ln *line, amount float64) float64 {
	return distribute(ln, amount, shrinkRule{})
}

// distributionRule is the direction-specific part of grow and shrink.
type distributionRule interface {
	factor(item *Node) float64
	// headroom is how far the item can still move, and whether it is bounded.
	headroom(item *Node, horizontal bool) (room float64, bounded bool)
	apply(size, delta float64) float64
}

type growRule struct{}

func (growRule) factor(item *Node) float64 { return item.grow() }

func (growRule) headroom(item *Node, horizontal bool) (float64, bool) {
	limit := item.maxSetting(horizontal)
	if limit <= 0 {
		return 0, false
	}
	return max(0, limit-item.axisSize(horizontal)), true
}

func (growRule) apply(size, delta float64) float64 { return size + delta }

type shrinkRule struct{}

func (shrinkRule) factor(item *Node) float64 { return item.shrink() }

func (shrinkRule) headroom(item *Node, horizontal bool) (float64, bool) {
	return max(0, item.axisSize(horizontal)-item.axisMinSize(horizontal)), true
}

func (shrinkRule) apply(size, delta float64) float64 { return size - delta }

func distribute(ln *line, amount float64, rule distributionRule) float64 {
	if amount <= epsilon {
		return 0
	}
	horizontal := ln.layouter.horizontal()
	items := ln.entries()

	eligible := make([]bool, len(items))
	total := 0.0
	for i, item := range items {
		f := rule.factor(item)
		if f <= 0 {
			continue
		}
		if room, bounded := rule.headroom(item, horizontal); bounded && room <= 0 {
			continue
		}
		eligible[i] = true
		total += f
	}

	remaining := amount
	consumed := 0.0
	for total > 0 && remaining > epsilon {
		perUnit := remaining / total
		clamped := false
		for i, item := range items {
			if !eligible[i] {
				continue
			}
			f := rule.factor(item)
			delta := f * perUnit
			if room, bounded := rule.headroom(item, horizontal); bounded && delta >= room {
				delta = room
				eligible[i] = false
				total -= f
				clamped = true
			}
			if delta <= 0 {
				continue
			}
			item.resizeAxis(horizontal, rule.apply(item.axisSize(horizontal), delta))
			consumed += delta
			remaining -= delta
			if remaining <= epsilon {
				return consumed
			}
		}
		if !clamped {
			// Every item took its full share; what is left is rounding noise.
			break
		}
	}
	return consumed
}
