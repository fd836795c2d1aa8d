package rom

import "strings"

// DispatchConfig bundles the per-run configuration objects the name-based
// dispatch table needs: BG palette counts, title/icon layouts, and the
// external decompressor. All fields are optional; a missing one falls back
// to the default each transformer documents for itself.
type DispatchConfig struct {
	MapFSConfig  MapFSConfig
	MapFSMode    MapFSOutputMode
	IconManifest []IconRecord
	TitleLayout  []TitleTexture
	Decompressor Decompressor
}

// Dispatch routes a named segment to its transformer (spec.md §4.6's
// dispatch table, generalized from MapFS entries to top-level segments).
// Rules are first-match-wins, matching the teacher's address-range
// dispatch in nes/sys_bus.go but keyed on name instead of address.
// An unmatched name is not an error: the segment passes through
// unconverted and a warning records the miss, so a new asset kind showing
// up in a segment map doesn't abort the run.
func Dispatch(name string, raw []byte, cfg DispatchConfig) ([]byte, *Warnings, error) {
	warnings := &Warnings{}

	switch {
	case name == "icon":
		return ConvertIcon(raw, cfg.IconManifest), warnings, nil
	case name == "charset":
		return ConvertCharset(raw), warnings, nil
	case name == "logos":
		return ConvertLogos(raw), warnings, nil
	case name == "mapfs" || strings.HasSuffix(name, "_mapfs"):
		out, entries, w := ConvertMapFS(raw, cfg.MapFSConfig, cfg.Decompressor, cfg.MapFSMode)
		mergeWarnings(warnings, w)
		if cfg.MapFSMode == MapFSPerFile {
			return flattenMapFSEntries(entries), warnings, nil
		}
		return out, warnings, nil
	case name == "sprite" || strings.HasSuffix(name, "_sprite"):
		out, w := ConvertSprite(raw, cfg.Decompressor)
		mergeWarnings(warnings, w)
		return out, warnings, nil
	case strings.HasSuffix(name, "_shape"):
		return ConvertShape(raw), warnings, nil
	case strings.HasSuffix(name, "_bg"):
		palCount := uint32(1)
		if cfg.MapFSConfig != nil {
			palCount = cfg.MapFSConfig.PalCount(name)
		}
		return ConvertBG(raw, palCount), warnings, nil
	case strings.HasSuffix(name, "_hit"):
		return ConvertHit(raw), warnings, nil
	case strings.HasSuffix(name, "_tex"):
		return ConvertTexture(raw), warnings, nil
	case strings.HasPrefix(name, "party_"):
		return ConvertParty(raw), warnings, nil
	case name == "title_data":
		return ConvertTitle(raw, cfg.TitleLayout), warnings, nil
	case strings.HasSuffix(name, "_msg"):
		return ConvertMsg(raw), warnings, nil
	default:
		warnings.Addf(name, "no dispatch rule matched; passed through unconverted")
		return append([]byte(nil), raw...), warnings, nil
	}
}

// mergeWarnings records src's accumulated warnings in dst as one combined
// entry.
func mergeWarnings(dst, src *Warnings) {
	if src == nil || src.Empty() {
		return
	}
	dst.Addf("merged", "%v", src.Err())
}

// flattenMapFSEntries concatenates per-file entries back into one buffer
// for callers of Dispatch that only want a single byte slice regardless of
// output mode; callers that need the per-entry manifest should call
// ConvertMapFS directly instead of going through Dispatch.
func flattenMapFSEntries(entries []MapFSEntry) []byte {
	var out []byte
	for _, e := range entries {
		out = append(out, e.Data...)
	}
	return out
}
