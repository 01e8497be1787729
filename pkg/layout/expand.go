package layout

// Expand distributes an available extent among items on one axis,
// returning one concrete size per item with Min <= size <= Max.
//
// Every item starts at its minimum. The leftover space (after spacing
// between items) is handed out in rounds: each round finds the items
// currently at the smallest size that can still grow, computes the
// largest uniform increment none of them can overshoot (their own
// ceiling, the next-smallest ceiling, or the gap up to the
// next-smallest item), and grows them all equally. Items that reach
// their maximum drop out of later rounds. Leftover space that no item
// can absorb is not distributed.
func Expand(items []Span, available, spacing float32) []float32 {
	sizes := make([]float32, len(items))
	used := float32(0)
	if len(items) > 1 {
		used = spacing * float32(len(items)-1)
	}
	for i, it := range items {
		sizes[i] = it.Min
		used += it.Min
	}

	free := max(available-used, 0)
	for free > 0 {
		var (
			smallest float32
			count    float32
			found    bool
		)
		step := free
		for i, it := range items {
			cur := sizes[i]
			if cur >= it.Max {
				continue // item can no longer grow
			}
			switch {
			case !found:
				found, smallest, count = true, cur, 1
				step = min(step, it.Max-cur)
			case cur > smallest:
				// Growing the smallest set past this item's
				// current size would change the set.
				step = min(step, cur-smallest)
			case cur == smallest:
				step = min(step, it.Max-cur)
				count++
			default: // cur < smallest
				step = min(step, it.Max-cur, smallest-cur)
				smallest, count = cur, 1
			}
		}
		if !found {
			break
		}

		grow := min(step*count, free)
		if grow <= 0 {
			break
		}
		free -= grow
		each := grow / count
		for i, it := range items {
			if sizes[i] < it.Max && sizes[i] == smallest {
				sizes[i] += each
			}
		}
	}
	return sizes
}
