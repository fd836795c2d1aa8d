package rom

// ConvertTitle swaps the title-screen textures named in layout. Each
// descriptor is swapped according to its ImgType: rgba16/ia16 as w*h u16s,
// rgba32 as w*h u32s; ci4/ci8 textures instead swap their paired palette,
// located by matching ID to a "pal"-typed entry in layout. "pal" entries
// themselves are never swapped as primaries (spec.md §4.10).
//
// data holds every texture back-to-back, each starting at its Position.
func ConvertTitle(data []byte, layout []TitleTexture) []byte {
	out := append([]byte(nil), data...)

	palettes := make(map[string]TitleTexture)
	for _, t := range layout {
		if t.ImgType == ImagePalette {
			palettes[t.ID] = t
		}
	}

	swappedPalettes := make(map[int]bool)
	for _, t := range layout {
		switch t.ImgType {
		case ImagePalette:
			continue
		case ImageRGBA16, ImageIA16:
			swap16Range(out, t.Position, t.W*t.H)
		case ImageRGBA32:
			swap32Range(out, t.Position, t.W*t.H)
		case ImageCI4, ImageCI8:
			if pal, ok := palettes[t.ID]; ok && !swappedPalettes[pal.Position] {
				swappedPalettes[pal.Position] = true
				swap16Range(out, pal.Position, pal.W*pal.H)
			}
		}
	}

	return out
}
