package rom

// Sprite archives carry no relocation trailer: every offset inside them is
// self-relative to its own table, so nothing needs a base-address pointer
// classification (spec.md §4.5).
const (
	spriteHeaderSize  = 0x20
	spriteHeaderBase  = 0x10 // header offset fields are stored relative to this
	spritePlayerSlots = 14
	spriteAnimListOff = 0x10 // fixed, not itself stored as a pointer field
	spriteListEnd     = 0xFFFFFFFF
)

// ConvertSprite rebuilds a sprite archive: its player raster table, the
// 14-slot player sprite table, and the sentinel-terminated NPC sprite
// table. Each table entry is decompressed (if YAY0-framed) and converted,
// then the archive is rebuilt with fresh table positions written into the
// header. Decompression failures are recorded as warnings and the slot's
// original, still-compressed bytes are carried through rather than dropped.
func ConvertSprite(data []byte, dec Decompressor) ([]byte, *Warnings) {
	warnings := &Warnings{}
	if len(data) < spriteHeaderSize {
		return append([]byte(nil), data...), warnings
	}

	rasterOff := readU32BE(data, 0x10) + spriteHeaderBase
	playerYay0Off := readU32BE(data, 0x14) + spriteHeaderBase
	npcYay0Off := readU32BE(data, 0x18) + spriteHeaderBase
	archiveEnd := readU32BE(data, 0x1C) + spriteHeaderBase

	out := append([]byte(nil), data...)

	convertSpriteRasterTable(out, data, rasterOff, playerYay0Off)

	playerSprites := convertSpriteSlotTable(out, data, playerYay0Off, npcYay0Off, spritePlayerSlots, dec, warnings)
	npcSprites := convertSpriteSentinelTable(out, data, npcYay0Off, archiveEnd, dec, warnings)

	return rebuildSpriteArchive(out, rasterOff, playerYay0Off, playerSprites, npcYay0Off, npcSprites), warnings
}

// convertSpriteRasterTable swaps the table's own first three (self-relative)
// boundary words, then byte-swaps every 32-bit word in each of the three
// sub-ranges they mark off, the last bounded by the table's own end.
func convertSpriteRasterTable(out, orig []byte, start, end uint32) {
	if int(start)+12 > len(orig) {
		return
	}
	b0 := readU32BE(orig, int(start))
	b1 := readU32BE(orig, int(start)+4)
	b2 := readU32BE(orig, int(start)+8)
	swap32(out, int(start))
	swap32(out, int(start)+4)
	swap32(out, int(start)+8)

	bounds := [4]uint32{b0, b1, b2, end - start}
	for i := 0; i < 3; i++ {
		lo := int(start) + int(bounds[i])
		hi := int(start) + int(bounds[i+1])
		if lo < 0 || hi > len(orig) || hi < lo {
			continue
		}
		swap32Range(out, lo, (hi-lo)/4)
	}
}

// convertSpriteSlotTable swaps a fixed-size offset table (the player table)
// in place and converts the sprite body each non-zero slot points at.
func convertSpriteSlotTable(out, orig []byte, tableStart, tableEnd uint32, count int, dec Decompressor, warnings *Warnings) [][]byte {
	offsets := make([]uint32, count)
	for i := 0; i < count; i++ {
		pos := int(tableStart) + i*4
		offsets[i] = readU32BE(orig, pos)
		swap32(out, pos)
	}
	return convertSpriteSpans(orig, tableStart, offsets, tableEnd, dec, warnings)
}

// convertSpriteSentinelTable swaps a zero-terminated offset table (the NPC
// table) in place, including its trailing sentinel slot.
func convertSpriteSentinelTable(out, orig []byte, tableStart, archiveEnd uint32, dec Decompressor, warnings *Warnings) [][]byte {
	var offsets []uint32
	pos := int(tableStart)
	for pos+4 <= len(orig) {
		v := readU32BE(orig, pos)
		swap32(out, pos)
		offsets = append(offsets, v)
		if v == 0 {
			break
		}
		pos += 4
	}
	return convertSpriteSpans(orig, tableStart, offsets, archiveEnd, dec, warnings)
}

// convertSpriteSpans decompresses and converts the sprite body at each
// non-zero slot, bounding its span by the next non-zero slot or, for the
// last one, by boundEnd.
func convertSpriteSpans(orig []byte, tableStart uint32, offsets []uint32, boundEnd uint32, dec Decompressor, warnings *Warnings) [][]byte {
	result := make([][]byte, len(offsets))
	for i, off := range offsets {
		if off == 0 {
			continue
		}
		end := boundEnd
		for j := i + 1; j < len(offsets); j++ {
			if offsets[j] != 0 {
				end = tableStart + offsets[j]
				break
			}
		}
		start := tableStart + off
		if int(start) >= len(orig) || int(end) > len(orig) || end <= start {
			warnings.Addf("sprite", "slot %d: invalid span [%#x,%#x)", i, start, end)
			continue
		}
		raw := orig[start:end]
		body, _, err := decompressIfFramed(raw, dec)
		if err != nil {
			warnings.Addf("sprite", "slot %d: decompress failed: %v", i, err)
			result[i] = append([]byte(nil), raw...)
			continue
		}
		result[i] = convertSpriteBody(body)
	}
	return result
}

// convertSpriteBody converts one sprite's image list, palette list, and
// animation list (spec.md §4.5.1). The body's leading four words are the
// image-list offset, the palette-list offset, and two further fields that
// travel along with them as an undifferentiated header; the animation list
// itself is never pointer-addressed; it always immediately follows this
// 0x10-byte header.
func convertSpriteBody(data []byte) []byte {
	out := append([]byte(nil), data...)
	if len(data) < 0x10 {
		return out
	}

	imageListOff := readU32BE(data, 0x00)
	paletteListOff := readU32BE(data, 0x04)

	swap32(out, 0x00)
	swap32(out, 0x04)
	swap32(out, 0x08)
	swap32(out, 0x0C)

	convertSpriteImageList(out, data, imageListOff)
	convertSpritePaletteList(out, data, paletteListOff)
	convertSpriteAnimList(out, data, spriteAnimListOff)

	return out
}

// convertSpriteImageList swaps a -1-terminated list of offsets, each
// pointing at an 8-byte image descriptor swapped as two u32 cells.
func convertSpriteImageList(out, orig []byte, off uint32) {
	pos := int(off)
	for pos+4 <= len(orig) {
		entry := readU32BE(orig, pos)
		swap32(out, pos)
		if entry == spriteListEnd {
			return
		}
		if int(entry)+8 <= len(orig) {
			swap32(out, int(entry))
			swap32(out, int(entry)+4)
		}
		pos += 4
	}
}

// convertSpritePaletteList swaps a -1-terminated list of offsets, each
// pointing at a 16-entry RGBA16 palette.
func convertSpritePaletteList(out, orig []byte, off uint32) {
	pos := int(off)
	for pos+4 <= len(orig) {
		entry := readU32BE(orig, pos)
		swap32(out, pos)
		if entry == spriteListEnd {
			return
		}
		swap16Range(out, int(entry), 16)
		pos += 4
	}
}

// convertSpriteAnimList swaps a -1-terminated list of offsets, each
// pointing at an animation's own -1-terminated component-offset list.
func convertSpriteAnimList(out, orig []byte, off uint32) {
	pos := int(off)
	for pos+4 <= len(orig) {
		entry := readU32BE(orig, pos)
		swap32(out, pos)
		if entry == spriteListEnd {
			return
		}
		convertSpriteAnimComponents(out, orig, entry)
		pos += 4
	}
}

// convertSpriteAnimComponents swaps a -1-terminated component-offset list.
// Each component is a 12-byte record: a command-stream offset (u32) and
// four u16 metadata fields; the third metadata field carries the command
// stream's byte length, read from the original bytes before any swap.
func convertSpriteAnimComponents(out, orig []byte, listOff uint32) {
	pos := int(listOff)
	for pos+4 <= len(orig) {
		compOff := readU32BE(orig, pos)
		swap32(out, pos)
		if compOff == spriteListEnd {
			return
		}
		if int(compOff)+12 <= len(orig) {
			cmdOff := readU32BE(orig, int(compOff))
			cmdSize := readU16BE(orig, int(compOff)+8)
			swap32(out, int(compOff))
			swap16(out, int(compOff)+4)
			swap16(out, int(compOff)+6)
			swap16(out, int(compOff)+8)
			swap16(out, int(compOff)+10)
			swap16Range(out, int(cmdOff), int(cmdSize)/2)
		}
		pos += 4
	}
}

// rebuildSpriteArchive lays the archive back out: header, raster table,
// 4-byte aligned player table + payloads, 16-byte aligned NPC table +
// payloads, then rewrites the four header words with the new positions.
func rebuildSpriteArchive(converted []byte, rasterOff, playerYay0Off uint32, playerSprites [][]byte, npcYay0Off uint32, npcSprites [][]byte) []byte {
	buf := make([]byte, spriteHeaderSize)

	rasterTable := converted[rasterOff:playerYay0Off]
	buf = append(buf, rasterTable...)
	buf = padTo4(buf)

	playerTableStart := len(buf)
	buf = append(buf, make([]byte, spritePlayerSlots*4)...)
	playerOffsets := writeSpriteSlotPayloads(&buf, playerTableStart, playerSprites)

	for i, off := range playerOffsets {
		writeU32LE(buf, playerTableStart+i*4, off)
	}

	for len(buf)%16 != 0 {
		buf = append(buf, 0)
	}

	npcTableStart := len(buf)
	buf = append(buf, make([]byte, len(npcSprites)*4)...)
	npcOffsets := writeSpriteSlotPayloads(&buf, npcTableStart, npcSprites)

	for i, off := range npcOffsets {
		writeU32LE(buf, npcTableStart+i*4, off)
	}

	archiveEnd := len(buf)

	copy(buf[0:spriteHeaderBase], converted[0:spriteHeaderBase])
	writeU32LE(buf, 0x10, uint32(spriteHeaderSize-spriteHeaderBase))
	writeU32LE(buf, 0x14, uint32(playerTableStart-spriteHeaderBase))
	writeU32LE(buf, 0x18, uint32(npcTableStart-spriteHeaderBase))
	writeU32LE(buf, 0x1C, uint32(archiveEnd-spriteHeaderBase))

	return buf
}

// writeSpriteSlotPayloads appends each non-empty sprite payload to buf,
// 4-byte aligned, and returns its offset relative to tableStart for each
// slot (0 for empty slots).
func writeSpriteSlotPayloads(buf *[]byte, tableStart int, sprites [][]byte) []uint32 {
	offsets := make([]uint32, len(sprites))
	for i, sprite := range sprites {
		if sprite == nil {
			continue
		}
		*buf = padTo4(*buf)
		offsets[i] = uint32(len(*buf) - tableStart)
		*buf = append(*buf, sprite...)
	}
	return offsets
}
