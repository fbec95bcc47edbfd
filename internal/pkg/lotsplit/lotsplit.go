// Package lotsplit partitions a donation's total servings into
// pickup lots of a bounded size.
package lotsplit

// SplitIntoLots greedily chunks total into lots of at most lotSize servings.
// A lotSize of zero or less means "no limit" and yields a single lot, as does
// any lotSize >= total. The returned sizes always sum to total. The caller
// guarantees total > 0.
func SplitIntoLots(total, lotSize int) []int {
	if lotSize <= 0 || lotSize >= total {
		return []int{total}
	}

	lots := make([]int, 0, (total+lotSize-1)/lotSize)
	remaining := total

	for remaining > 0 {
		size := lotSize
		if remaining < size {
			size = remaining
		}
		lots = append(lots, size)
		remaining -= size
	}

	return lots
}
