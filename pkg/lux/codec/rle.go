package codec

import "fmt"

// MaxRunLength is the largest run one record can carry; longer runs split
// into multiple records so counts stay within a single byte on the wire.
const MaxRunLength = 255

// Run is one (symbol, count) record of a run-length encoded symbol sequence.
type Run struct {
	Index int
	Count int
}

// CompressSymbols run-length encodes a symbol index sequence. Runs of length
// one are kept as single records; runs longer than MaxRunLength split.
func CompressSymbols(indices []int) []Run {
	if len(indices) == 0 {
		return nil
	}
	runs := make([]Run, 0, len(indices))
	cur := Run{Index: indices[0], Count: 1}
	for _, idx := range indices[1:] {
		if idx == cur.Index && cur.Count < MaxRunLength {
			cur.Count++
			continue
		}
		runs = append(runs, cur)
		cur = Run{Index: idx, Count: 1}
	}
	return append(runs, cur)
}

// DecompressSymbols expands runs back into the exact original sequence.
func DecompressSymbols(runs []Run) ([]int, error) {
	var total int
	for _, r := range runs {
		if r.Count < 1 || r.Count > MaxRunLength {
			return nil, fmt.Errorf("%w: run count %d", ErrCorruptShow, r.Count)
		}
		total += r.Count
	}
	indices := make([]int, 0, total)
	for _, r := range runs {
		for i := 0; i < r.Count; i++ {
			indices = append(indices, r.Index)
		}
	}
	return indices, nil
}
