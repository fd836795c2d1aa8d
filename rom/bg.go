package rom

// ConvertBG converts a big-endian background (BG) file to little-endian and
// appends its relocation trailer (spec.md §4.3).
//
// A BG file is palCount back-to-back 0x10-byte headers:
//
//	0x00 IMG_PTR raster   (BaseAddrBG-based pointer)
//	0x04 PAL_PTR palette  (BaseAddrBG-based pointer)
//	0x08 u16 startX
//	0x0A u16 startY
//	0x0C u16 width
//	0x0E u16 height
//
// Each referenced palette is 256 RGBA16 entries. palCount defaults to 1 when
// the caller has no configuration for this segment (spec.md §7).
func ConvertBG(data []byte, palCount uint32) []byte {
	if len(data) < 0x10 {
		return data
	}
	if palCount == 0 {
		palCount = 1
	}

	out := append([]byte(nil), data...)
	relocs := newRelocations()

	size := uint32(len(data))
	for i := uint32(0); i < palCount; i++ {
		headerOff := int(i) * 0x10
		if headerOff+0x10 > len(data) {
			break
		}

		rasterPtr := readU32BE(data, headerOff+0x00)
		palettePtr := readU32BE(data, headerOff+0x04)

		if off, ok := ClassifyPointer(rasterPtr, BaseAddrBG, size); ok {
			relocs.add(uint32(headerOff + 0x00))
			writeU32LE(out, headerOff+0x00, off)
		} else {
			swap32(out, headerOff+0x00)
		}

		palOff, palOK := ClassifyPointer(palettePtr, BaseAddrBG, size)
		if palOK {
			relocs.add(uint32(headerOff + 0x04))
			writeU32LE(out, headerOff+0x04, palOff)
		} else {
			swap32(out, headerOff+0x04)
		}

		swap16(out, headerOff+0x08) // startX
		swap16(out, headerOff+0x0A) // startY
		swap16(out, headerOff+0x0C) // width
		swap16(out, headerOff+0x0E) // height

		if palOK && int(palOff)+512 <= len(data) {
			swap16Range(out, int(palOff), 256)
		}
	}

	return appendTrailer(out, relocs)
}
