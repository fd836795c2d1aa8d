package rom

// ConvertLogos swaps a raw RGBA16 concatenation in place: no header, no
// sub-image layout, just size/2 consecutive u16 cells (spec.md §4.14).
func ConvertLogos(data []byte) []byte {
	out := append([]byte(nil), data...)
	swap16Range(out, 0, len(data)/2)
	return out
}
