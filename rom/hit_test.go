package rom

import "testing"

func putU32BEAt(buf []byte, off int, v uint32) {
	buf[off] = byte(v >> 24)
	buf[off+1] = byte(v >> 16)
	buf[off+2] = byte(v >> 8)
	buf[off+3] = byte(v)
}

func TestConvertHitRootOffsetsSwapped(t *testing.T) {
	data := make([]byte, 8)
	putU32BEAt(data, 0, 0x10)
	putU32BEAt(data, 4, 0)

	out := ConvertHit(data)
	if got := readU32LE(out, 0); got != 0x10 {
		t.Fatalf("collision section offset = %#x, want 0x10", got)
	}
	if got := readU32LE(out, 4); got != 0 {
		t.Fatalf("zone section offset = %#x, want 0", got)
	}
}

func TestConvertHitSectionWithColliderAndVertices(t *testing.T) {
	// section header at 0x10, colliders at 0x30 (1 collider, 1 triangle),
	// vertices at 0x60 (1 vertex = 3 i16), bbox at 0x70 (1 cell).
	size := 0x80
	data := make([]byte, size)

	putU32BEAt(data, 0, 0x10) // collision section offset
	putU32BEAt(data, 4, 0)    // no zone section

	sec := 0x10
	// numColliders=1, collidersOff=0x30
	data[sec+0] = 0
	data[sec+1] = 1
	putU32BEAt(data, sec+4, 0x30)
	// numVertices=1, verticesOff=0x60
	data[sec+8] = 0
	data[sec+9] = 1
	putU32BEAt(data, sec+0x0C, 0x60)
	// bbSize=1, bbOff=0x70
	data[sec+0x10] = 0
	data[sec+0x11] = 1
	putU32BEAt(data, sec+0x14, 0x70)

	// collider @ 0x30: three u16 fields, numTriangles=1, trianglesOff=0x50
	data[0x30+6] = 0
	data[0x30+7] = 1
	putU32BEAt(data, 0x30+8, 0x50)
	// triangle value at 0x50
	putU32BEAt(data, 0x50, 0x01020304)

	// vertex at 0x60: 3 x i16
	data[0x60] = 0x00
	data[0x61] = 0x05

	// bbox cell at 0x70
	putU32BEAt(data, 0x70, 0xAABBCCDD)

	out := ConvertHit(data)

	if got := readU32LE(out, sec+4); got != 0x30 {
		t.Fatalf("collidersOff = %#x, want 0x30", got)
	}
	if got := readU16LE(out, sec+8); got != 1 {
		t.Fatalf("numVertices = %d, want 1", got)
	}
	if got := readU32LE(out, 0x30+8); got != 0x50 {
		t.Fatalf("trianglesOff = %#x, want 0x50", got)
	}
	if got := readU32LE(out, 0x50); got != 0x01020304 {
		t.Fatalf("triangle value (LE view) = %#x, want 0x01020304", got)
	}
	if got := readU16LE(out, 0x60); got != 0x0005 {
		t.Fatalf("vertex[0] (LE view) = %#x, want 0x0005", got)
	}
	if got := readU32LE(out, 0x70); got != 0xAABBCCDD {
		t.Fatalf("bbox cell (LE view) = %#x, want 0xAABBCCDD", got)
	}
}

func TestConvertHitTooShortPassthrough(t *testing.T) {
	data := []byte{1, 2, 3}
	out := ConvertHit(data)
	if len(out) != len(data) {
		t.Fatalf("short input must pass through, got len %d", len(out))
	}
}
