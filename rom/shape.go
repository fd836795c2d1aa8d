package rom

// ConvertShape converts a big-endian shape file to little-endian and appends
// its relocation trailer (spec.md §4.4). A shape file is a depth-first
// pointer graph rooted at a 0x20-byte header:
//
//	0x00 ModelNode* root
//	0x04 Vtx_t* vertexTable
//	0x08 char** modelNames
//	0x0C char** colliderNames
//	0x10 char** zoneNames
//	0x14 pad[0xC]
//
// ModelNode (0x14), ModelGroupData (0x14), ModelDisplayData (0x08), and
// ModelNodeProperty (0x0C) are walked as described in spec.md §3/§4.4.
func ConvertShape(data []byte) []byte {
	if len(data) < 0x20 {
		return data
	}

	c := &shapeConverter{
		orig:    data,
		data:    append([]byte(nil), data...),
		size:    uint32(len(data)),
		relocs:  newRelocations(),
		visited: make(map[uint32]bool),
	}
	c.processHeader()
	return appendTrailer(c.data, c.relocs)
}

type shapeConverter struct {
	orig    []byte // original BE bytes, read-only
	data    []byte // working LE buffer, mutated in place
	size    uint32
	relocs  *relocations
	visited map[uint32]bool
}

// convertPtr reads the BE pointer at offset from orig. If it classifies as a
// shape pointer it records a relocation, writes the LE file offset, and
// returns (fileOffset, true). Otherwise it byte-swaps the field in place and
// returns (0, false).
func (c *shapeConverter) convertPtr(offset uint32) (uint32, bool) {
	if offset+4 > c.size {
		return 0, false
	}
	val := readU32BE(c.orig, int(offset))
	if off, ok := ClassifyPointer(val, BaseAddrShape, c.size); ok {
		c.relocs.add(offset)
		writeU32LE(c.data, int(offset), off)
		return off, true
	}
	swap32(c.data, int(offset))
	return 0, false
}

// processStringList walks a null-terminated array of string pointers.
func (c *shapeConverter) processStringList(offset uint32) {
	if offset == 0 || offset >= c.size {
		return
	}
	pos := offset
	for pos+4 <= c.size {
		val := readU32BE(c.orig, int(pos))
		if val == 0 {
			swap32(c.data, int(pos))
			return
		}
		c.convertPtr(pos)
		pos += 4
	}
}

// displayListPtrOpcodes carries a pointer in its second word.
var displayListPtrOpcodes = map[byte]bool{
	0x01: true, 0x06: true, 0xD9: true, 0xDA: true, 0xDB: true, 0xDE: true,
}

const displayListOpEnd = 0xDF
const displayListSafetyLimit = 0x10000

// processDisplayList walks 8-byte Gfx commands until G_ENDDL (0xDF) or the
// safety limit is reached.
func (c *shapeConverter) processDisplayList(offset uint32) {
	if offset == 0 || offset >= c.size {
		return
	}
	pos := offset
	for n := 0; pos+8 <= c.size && n < displayListSafetyLimit; n++ {
		opcode := c.orig[pos]
		word1 := readU32BE(c.orig, int(pos+4))

		swap32(c.data, int(pos))

		if displayListPtrOpcodes[opcode] {
			if _, ok := ClassifyPointer(word1, BaseAddrShape, c.size); ok {
				c.convertPtr(pos + 4)
			} else {
				swap32(c.data, int(pos+4))
			}
		} else {
			swap32(c.data, int(pos+4))
		}

		if opcode == displayListOpEnd {
			return
		}
		pos += 8
	}
}

// processDisplayData processes an 8-byte ModelDisplayData.
func (c *shapeConverter) processDisplayData(offset uint32) {
	if offset == 0 || offset >= c.size || offset+8 > c.size {
		return
	}

	gfxOff, ok := c.convertPtr(offset + 0x00)
	swap32(c.data, int(offset+0x04)) // pad

	if ok {
		c.processDisplayList(gfxOff)
	}
}

// processPropertyList processes count consecutive 0x0C-byte
// ModelNodeProperty records.
//
// spec.md §9 open question: the union at offset 0x08 is classified by value
// (pointer range wins) rather than branching on dataType, matching
// shape_convert.py's process_property_list exactly. This is faithful to the
// source but can in principle misclassify a float whose bit pattern happens
// to land in the pointer range.
func (c *shapeConverter) processPropertyList(offset uint32, count int32) {
	if offset == 0 || offset >= c.size || count <= 0 {
		return
	}

	for i := int32(0); i < count; i++ {
		propOff := offset + uint32(i)*0x0C
		if propOff+0x0C > c.size {
			return
		}

		swap32(c.data, int(propOff+0x00)) // key
		swap32(c.data, int(propOff+0x04)) // dataType

		val := readU32BE(c.orig, int(propOff+0x08))
		if _, ok := ClassifyPointer(val, BaseAddrShape, c.size); ok {
			c.convertPtr(propOff + 0x08)
		} else {
			swap32(c.data, int(propOff+0x08))
		}
	}
}

// processGroupData processes a 0x14-byte ModelGroupData, guarding against
// shared/cyclic references via the visited-offset set.
func (c *shapeConverter) processGroupData(offset uint32) {
	if offset == 0 || offset >= c.size || c.visited[offset] {
		return
	}
	c.visited[offset] = true
	if offset+0x14 > c.size {
		return
	}

	numChildren := readI32BE(c.orig, int(offset+0x0C))

	mtxOff, _ := c.convertPtr(offset + 0x00)
	c.convertPtr(offset + 0x04) // lightingGroup
	swap32(c.data, int(offset+0x08))
	swap32(c.data, int(offset+0x0C))
	childListOff, childOK := c.convertPtr(offset + 0x10)

	if mtxOff != 0 && mtxOff+0x40 <= c.size {
		swap32Range(c.data, int(mtxOff), 16)
	}

	if childOK && numChildren > 0 {
		for i := int32(0); i < numChildren; i++ {
			childPtrOff := childListOff + uint32(i)*4
			if childPtrOff+4 > c.size {
				break
			}
			if childNodeOff, ok := c.convertPtr(childPtrOff); ok {
				c.processModelNode(childNodeOff)
			}
		}
	}
}

// processModelNode processes a 0x14-byte ModelNode.
func (c *shapeConverter) processModelNode(offset uint32) {
	if offset == 0 || offset >= c.size || c.visited[offset] {
		return
	}
	c.visited[offset] = true
	if offset+0x14 > c.size {
		return
	}

	numProps := readI32BE(c.orig, int(offset+0x08))

	swap32(c.data, int(offset+0x00)) // type
	displayOff, displayOK := c.convertPtr(offset + 0x04)
	swap32(c.data, int(offset+0x08)) // numProperties
	propOff, propOK := c.convertPtr(offset + 0x0C)
	groupOff, groupOK := c.convertPtr(offset + 0x10)

	if displayOK {
		c.processDisplayData(displayOff)
	}
	if propOK && numProps > 0 {
		c.processPropertyList(propOff, numProps)
	}
	if groupOK {
		c.processGroupData(groupOff)
	}
}

func (c *shapeConverter) processHeader() {
	rootOff, rootOK := c.convertPtr(0x00)
	c.convertPtr(0x04) // vertexTable
	modelNamesOff, modelOK := c.convertPtr(0x08)
	colliderNamesOff, colliderOK := c.convertPtr(0x0C)
	zoneNamesOff, zoneOK := c.convertPtr(0x10)
	swap32Range(c.data, 0x14, 3) // padding

	if modelOK {
		c.processStringList(modelNamesOff)
	}
	if colliderOK {
		c.processStringList(colliderNamesOff)
	}
	if zoneOK {
		c.processStringList(zoneNamesOff)
	}
	if rootOK {
		c.processModelNode(rootOff)
	}
}
