package rom

import "sort"

// relocations is an ordered set of file offsets holding converted pointer
// fields. A second insertion of the same offset is ignored, matching
// shape_convert.py's reloc_set guard.
type relocations struct {
	offsets []uint32
	seen    map[uint32]bool
}

func newRelocations() *relocations {
	return &relocations{seen: make(map[uint32]bool)}
}

// add records off as holding a converted pointer, unless it is already
// recorded.
func (r *relocations) add(off uint32) {
	if r.seen[off] {
		return
	}
	r.seen[off] = true
	r.offsets = append(r.offsets, off)
}

// sorted returns the recorded offsets in ascending order.
func (r *relocations) sorted() []uint32 {
	out := append([]uint32(nil), r.offsets...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// appendTrailer pads body to a 4-byte boundary, then appends the ascending
// relocation offsets as LE uint32 words followed by a single LE uint32
// count: "...body... | zero-pad to 4 | reloc[0] | ... | reloc[N-1] | N".
func appendTrailer(body []byte, r *relocations) []byte {
	out := padTo4(body)
	offs := r.sorted()

	trailer := make([]byte, len(offs)*4+4)
	for i, off := range offs {
		writeU32LE(trailer, i*4, off)
	}
	writeU32LE(trailer, len(offs)*4, uint32(len(offs)))

	return append(out, trailer...)
}
