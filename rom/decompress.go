package rom

import "bytes"

// yay0Magic is the 4-byte signature at the start of a YAY0-framed block.
var yay0Magic = []byte{'Y', 'a', 'y', '0'}

// Decompressor decompresses a single YAY0-framed block. The actual codec is
// an external concern (spec.md §1); the core only needs something that
// detects and inflates a frame handed to it.
type Decompressor func(block []byte) ([]byte, error)

// isYay0Frame reports whether block starts with the YAY0 signature.
func isYay0Frame(block []byte) bool {
	return len(block) >= 4 && bytes.Equal(block[:4], yay0Magic)
}

// decompressIfFramed runs dec over block when it looks YAY0-framed, and
// returns block unchanged otherwise. A nil Decompressor is treated as "no
// decompressor available" and the block passes through unchanged.
func decompressIfFramed(block []byte, dec Decompressor) ([]byte, bool, error) {
	if !isYay0Frame(block) || dec == nil {
		return block, false, nil
	}
	out, err := dec(block)
	if err != nil {
		return block, false, err
	}
	return out, true, nil
}
