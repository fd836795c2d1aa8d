package rom

import "testing"

func TestConvertPartySwapsPrefix(t *testing.T) {
	data := make([]byte, 256*2+8) // palette prefix plus some trailing bytes
	for i := 0; i < 256; i++ {
		putU16BEAt(data, i*2, uint16(0x3000+i))
	}
	copy(data[256*2:], []byte{0xAA, 0xBB, 0xCC, 0xDD, 1, 2, 3, 4})

	out := ConvertParty(data)

	for i := 0; i < 256; i++ {
		if got := readU16LE(out, i*2); got != uint16(0x3000+i) {
			t.Fatalf("palette[%d] (LE view) = %#x, want %#x", i, got, 0x3000+i)
		}
	}

	for i := 256 * 2; i < len(data); i++ {
		if out[i] != data[i] {
			t.Fatalf("byte %d past the palette prefix changed: %#x vs %#x", i, out[i], data[i])
		}
	}
}

func TestConvertPartyShorterThanPrefix(t *testing.T) {
	data := make([]byte, 10)
	putU16BEAt(data, 0, 0x1234)
	out := ConvertParty(data)
	if len(out) != 10 {
		t.Fatalf("len(out) = %d, want 10", len(out))
	}
	if got := readU16LE(out, 0); got != 0x1234 {
		t.Fatalf("palette[0] (LE view) = %#x, want 0x1234", got)
	}
}
