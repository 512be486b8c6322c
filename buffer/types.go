package buffer

// Range is a half-open selection in rune offsets: [Start, End).
type Range struct {
	Start int
	End   int
}

func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) Len() int {
	n := NormalizeRange(r)
	return n.End - n.Start
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampOffset clamps off into [0, n].
func ClampOffset(off, n int) int {
	if n < 0 {
		n = 0
	}
	return clampInt(off, 0, n)
}

func ClampRange(r Range, n int) Range {
	return Range{
		Start: ClampOffset(r.Start, n),
		End:   ClampOffset(r.End, n),
	}
}
