package rom

import (
	"bytes"
	"strings"
)

const (
	mapfsHeaderSize  = 0x20
	mapfsRecordSize  = 0x1C
	mapfsNameSize    = 16
	mapfsEndMarker   = "end_data"
	mapfsPayloadAlgn = 16
)

// mapfsRecord mirrors one 0x1C-byte TOC entry: a fixed-width name, the
// payload's offset from the TOC base, its on-disk size, and its
// decompressed size (equal to Size when the entry isn't YAY0-framed).
type mapfsRecord struct {
	Name       string
	DataOffset uint32
	Size       uint32
	DecompSize uint32
}

// MapFSEntry is one converted TOC entry, returned alongside the rebuilt
// archive (or on its own, under MapFSPerFile).
type MapFSEntry struct {
	Name string
	Data []byte
}

// ConvertMapFS walks the TOC starting at offset 0x20 until the end_data
// sentinel, decompresses and dispatches each entry by name, then packages
// the result per mode (spec.md §4.6).
func ConvertMapFS(data []byte, cfg MapFSConfig, dec Decompressor, mode MapFSOutputMode) ([]byte, []MapFSEntry, *Warnings) {
	warnings := &Warnings{}
	if len(data) < mapfsHeaderSize {
		return append([]byte(nil), data...), nil, warnings
	}

	records := readMapFSToc(data)
	entries := make([]MapFSEntry, 0, len(records))

	for _, rec := range records {
		start := mapfsHeaderSize + int(rec.DataOffset)
		end := start + int(rec.Size)
		if start < 0 || end > len(data) || end < start {
			warnings.Addf(rec.Name, "TOC entry out of range [%#x,%#x)", start, end)
			continue
		}
		raw := data[start:end]

		body := raw
		if rec.Size != rec.DecompSize {
			decoded, ok, err := decompressIfFramed(raw, dec)
			if err != nil {
				warnings.Addf(rec.Name, "decompress failed: %v", err)
			} else if ok {
				body = decoded
			}
		}

		entries = append(entries, MapFSEntry{
			Name: rec.Name,
			Data: dispatchMapFSEntry(rec.Name, body, cfg, dec, warnings),
		})
	}

	switch mode {
	case MapFSPerFile:
		return nil, entries, warnings
	default:
		return rebuildMapFSFlat(entries), entries, warnings
	}
}

// readMapFSToc parses the fixed-width record table starting right after the
// 0x20-byte header, stopping at the end_data sentinel record.
func readMapFSToc(data []byte) []mapfsRecord {
	var records []mapfsRecord
	pos := mapfsHeaderSize
	for pos+mapfsRecordSize <= len(data) {
		name := readMapFSName(data, pos)
		if name == mapfsEndMarker {
			break
		}
		records = append(records, mapfsRecord{
			Name:       name,
			DataOffset: readU32BE(data, pos+mapfsNameSize),
			Size:       readU32BE(data, pos+mapfsNameSize+4),
			DecompSize: readU32BE(data, pos+mapfsNameSize+8),
		})
		pos += mapfsRecordSize
	}
	return records
}

func readMapFSName(data []byte, off int) string {
	end := off + mapfsNameSize
	if end > len(data) {
		return ""
	}
	raw := data[off:end]
	if nul := bytes.IndexByte(raw, 0); nul >= 0 {
		raw = raw[:nul]
	}
	return string(raw)
}

// dispatchMapFSEntry applies the first-match-wins name rule from spec.md
// §4.6: suffix/prefix routes to a specific transformer, otherwise the entry
// passes through unconverted.
func dispatchMapFSEntry(name string, body []byte, cfg MapFSConfig, dec Decompressor, warnings *Warnings) []byte {
	switch {
	case strings.HasSuffix(name, "_shape"):
		return ConvertShape(body)
	case strings.HasSuffix(name, "_bg"):
		palCount := uint32(1)
		if cfg != nil {
			palCount = cfg.PalCount(name)
		}
		return ConvertBG(body, palCount)
	case strings.HasSuffix(name, "_hit"):
		return ConvertHit(body)
	case strings.HasSuffix(name, "_tex"):
		return ConvertTexture(body)
	case strings.HasPrefix(name, "party_"):
		return ConvertParty(body)
	case name == "title_data":
		var layout []TitleTexture
		if cfg != nil {
			layout, _ = cfg.Textures(name)
		}
		return ConvertTitle(body, layout)
	default:
		return append([]byte(nil), body...)
	}
}

// rebuildMapFSFlat reassembles a single archive: a fresh TOC, each payload
// 16-byte aligned, and the end_data sentinel record.
func rebuildMapFSFlat(entries []MapFSEntry) []byte {
	buf := make([]byte, mapfsHeaderSize)
	toc := make([]byte, (len(entries)+1)*mapfsRecordSize)

	body := []byte{}
	for i, e := range entries {
		for len(body)%mapfsPayloadAlgn != 0 {
			body = append(body, 0)
		}
		recOff := i * mapfsRecordSize
		writeMapFSName(toc, recOff, e.Name)
		writeU32LE(toc, recOff+mapfsNameSize, uint32(len(body)))
		writeU32LE(toc, recOff+mapfsNameSize+4, uint32(len(e.Data)))
		writeU32LE(toc, recOff+mapfsNameSize+8, uint32(len(e.Data)))
		body = append(body, e.Data...)
	}
	writeMapFSName(toc, len(entries)*mapfsRecordSize, mapfsEndMarker)

	buf = append(buf, toc...)
	buf = append(buf, body...)
	return buf
}

func writeMapFSName(buf []byte, off int, name string) {
	n := copy(buf[off:off+mapfsNameSize], name)
	for i := n; i < mapfsNameSize; i++ {
		buf[off+i] = 0
	}
}
