package rom

import "testing"

type fakeMapFSConfig struct {
	palCounts map[string]uint32
	textures  map[string][]TitleTexture
}

func (c *fakeMapFSConfig) PalCount(name string) uint32 {
	if n, ok := c.palCounts[name]; ok {
		return n
	}
	return 1
}

func (c *fakeMapFSConfig) Textures(name string) ([]TitleTexture, bool) {
	t, ok := c.textures[name]
	return t, ok
}

func writeMapFSRecord(data []byte, recOff int, name string, dataOff, size, decompSize uint32) {
	writeMapFSNameTestHelper(data, recOff, name)
	putU32BEAt(data, recOff+mapfsNameSize, dataOff)
	putU32BEAt(data, recOff+mapfsNameSize+4, size)
	putU32BEAt(data, recOff+mapfsNameSize+8, decompSize)
}

func writeMapFSNameTestHelper(data []byte, off int, name string) {
	copy(data[off:off+mapfsNameSize], name)
}

func TestConvertMapFSIdentityEntry(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	toc := make([]byte, mapfsRecordSize*2)
	writeMapFSRecord(toc, 0, "plain", 0, uint32(len(payload)), uint32(len(payload)))
	writeMapFSNameTestHelper(toc, mapfsRecordSize, "end_data")

	data := append([]byte{}, make([]byte, mapfsHeaderSize)...)
	data = append(data, toc...)
	data = append(data, payload...)

	out, entries, warnings := ConvertMapFS(data, nil, nil, MapFSFlat)

	if !warnings.Empty() {
		t.Fatalf("unexpected warnings: %v", warnings.Err())
	}
	if len(entries) != 1 || entries[0].Name != "plain" {
		t.Fatalf("entries = %+v, want one entry named plain", entries)
	}
	if string(entries[0].Data) != string(payload) {
		t.Fatalf("identity entry data = %v, want %v", entries[0].Data, payload)
	}
	if len(out) == 0 {
		t.Fatalf("flat rebuild produced empty archive")
	}
}

func TestConvertMapFSDispatchesByBGSuffix(t *testing.T) {
	bgData := make([]byte, 0x10)
	putU32BEAt(bgData, 0x08, 0) // avoid accidental pointer classification
	toc := make([]byte, mapfsRecordSize*2)
	writeMapFSRecord(toc, 0, "room_bg", 0, uint32(len(bgData)), uint32(len(bgData)))
	writeMapFSNameTestHelper(toc, mapfsRecordSize, "end_data")

	data := make([]byte, mapfsHeaderSize)
	data = append(data, toc...)
	data = append(data, bgData...)

	cfg := &fakeMapFSConfig{palCounts: map[string]uint32{"room_bg": 1}}
	_, entries, warnings := ConvertMapFS(data, cfg, nil, MapFSPerFile)

	if !warnings.Empty() {
		t.Fatalf("unexpected warnings: %v", warnings.Err())
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %+v, want 1", entries)
	}
	want := ConvertBG(bgData, 1)
	if string(entries[0].Data) != string(want) {
		t.Fatalf("bg entry not dispatched through ConvertBG")
	}
}

func TestConvertMapFSOutOfRangeRecordWarns(t *testing.T) {
	toc := make([]byte, mapfsRecordSize*2)
	writeMapFSRecord(toc, 0, "broken", 0xFFFF, 4, 4)
	writeMapFSNameTestHelper(toc, mapfsRecordSize, "end_data")

	data := make([]byte, mapfsHeaderSize)
	data = append(data, toc...)

	_, entries, warnings := ConvertMapFS(data, nil, nil, MapFSPerFile)

	if warnings.Empty() {
		t.Fatalf("expected a warning for out-of-range TOC entry")
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %+v, want none", entries)
	}
}

func TestConvertMapFSTooShortPassthrough(t *testing.T) {
	data := make([]byte, 4)
	out, entries, warnings := ConvertMapFS(data, nil, nil, MapFSFlat)
	if len(out) != len(data) || entries != nil {
		t.Fatalf("expected passthrough, got out=%v entries=%v", out, entries)
	}
	if !warnings.Empty() {
		t.Fatalf("unexpected warnings: %v", warnings.Err())
	}
}
