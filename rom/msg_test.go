package rom

import "testing"

func TestConvertMsgTwoLevelTable(t *testing.T) {
	// Root @ 0: one section offset (0x10), then a zero terminator @ 4.
	// Section @ 0x10: two entries then a self-reference sentinel (== 0x10).
	data := make([]byte, 0x20)
	putU32BEAt(data, 0, 0x10)
	putU32BEAt(data, 4, 0)

	putU32BEAt(data, 0x10, 0x100)
	putU32BEAt(data, 0x14, 0x200)
	putU32BEAt(data, 0x18, 0x10) // self-reference sentinel

	out := ConvertMsg(data)

	if got := readU32LE(out, 0); got != 0x10 {
		t.Fatalf("root[0] (LE view) = %#x, want 0x10", got)
	}
	if got := readU32LE(out, 4); got != 0 {
		t.Fatalf("root terminator (LE view) = %#x, want 0", got)
	}
	if got := readU32LE(out, 0x10); got != 0x100 {
		t.Fatalf("section[0] (LE view) = %#x, want 0x100", got)
	}
	if got := readU32LE(out, 0x14); got != 0x200 {
		t.Fatalf("section[1] (LE view) = %#x, want 0x200", got)
	}
	if got := readU32LE(out, 0x18); got != 0x10 {
		t.Fatalf("section sentinel (LE view) = %#x, want 0x10", got)
	}
}

func TestConvertMsgEmptyRoot(t *testing.T) {
	data := make([]byte, 4) // immediately zero: no sections at all
	out := ConvertMsg(data)
	if got := readU32LE(out, 0); got != 0 {
		t.Fatalf("root terminator (LE view) = %#x, want 0", got)
	}
}

func TestConvertMsgTruncatedSectionStopsCleanly(t *testing.T) {
	data := make([]byte, 8)
	putU32BEAt(data, 0, 0x100) // points past end of buffer
	putU32BEAt(data, 4, 0)
	out := ConvertMsg(data) // must not panic
	if len(out) != len(data) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(data))
	}
}
