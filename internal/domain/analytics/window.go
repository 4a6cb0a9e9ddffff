package analytics

// TrailingWindow returns the half-open range [start, end) of the up-to-size
// positions strictly before position i. The window never contains i and is
// shorter than size near the start of a sequence.
func TrailingWindow(i, size int) (start, end int) {
	if i <= 0 || size <= 0 {
		if i < 0 {
			i = 0
		}
		return i, i
	}

	start = i - size
	if start < 0 {
		start = 0
	}
	return start, i
}
