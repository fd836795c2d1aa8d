package rom

// partyPaletteEntries is the fixed-size palette prefix every party (player
// character) palette segment carries (spec.md §4.9).
const partyPaletteEntries = 256

// ConvertParty swaps the first 256 RGBA16 entries of a party palette
// segment. There is no header and no pointer, so the rest of the segment
// (if any) passes through untouched.
func ConvertParty(data []byte) []byte {
	out := append([]byte(nil), data...)
	n := partyPaletteEntries
	if len(out) < n*2 {
		n = len(out) / 2
	}
	swap16Range(out, 0, n)
	return out
}
