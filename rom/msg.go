package rom

// ConvertMsg converts a message archive's two-level offset table (spec.md
// §4.11). The root is a zero-terminated array of 4-byte section offsets;
// each section is itself a 4-byte offset table terminated by a
// self-reference (an entry whose pre-swap value equals the section's own
// offset).
func ConvertMsg(data []byte) []byte {
	out := append([]byte(nil), data...)

	pos := 0
	for pos+4 <= len(data) {
		sectionOff := readU32BE(data, pos)
		swap32(out, pos)
		if sectionOff == 0 {
			break
		}
		convertMsgSection(out, data, sectionOff)
		pos += 4
	}

	return out
}

func convertMsgSection(out, orig []byte, sectionOff uint32) {
	pos := sectionOff
	for int(pos)+4 <= len(orig) {
		entry := readU32BE(orig, int(pos))
		swap32(out, int(pos))
		if entry == sectionOff {
			return
		}
		pos += 4
	}
}
