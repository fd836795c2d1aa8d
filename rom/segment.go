package rom

// Virtual base addresses for the asset kinds that carry absolute N64
// pointers. Each is a parameter to ClassifyPointer rather than a package
// constant baked into a single transformer, so the classifier stays
// reusable across kinds (spec.md §4.1).
const (
	BaseAddrBG    uint32 = 0x80200000
	BaseAddrShape uint32 = 0x80210000
)

// SegmentRange names a contiguous byte range inside the ROM. Producing the
// list of ranges (from a linker map) is an external concern; the core only
// consumes the result.
type SegmentRange struct {
	Name  string
	Start uint32
	End   uint32
}

// Segment is a named, mutable byte range owned by whichever transformer is
// currently processing it.
type Segment struct {
	Name string
	Data []byte
}

// ImageType enumerates the pixel formats title-screen and icon textures can
// carry (spec.md §4.10/§4.12).
type ImageType int

const (
	ImageRGBA16 ImageType = iota
	ImageIA16
	ImageRGBA32
	ImageCI4
	ImageCI8
	ImagePalette // "pal" descriptors are skipped as primaries
)

// TitleTexture describes one entry in the title-screen texture layout
// (spec.md §4.10): its placement, pixel format, an id used to pair CI
// rasters with their palette entry, and dimensions.
type TitleTexture struct {
	Position int
	ImgType  ImageType
	ID       string
	W, H     int
}

// IconFormat enumerates the three icon record shapes (spec.md §4.12).
type IconFormat int

const (
	IconSolo IconFormat = iota
	IconPair
	IconRGBA16
)

// IconRecord describes one entry in the icon manifest.
type IconRecord struct {
	Format IconFormat
	Name   string
	W, H   int
}

// MapFSConfig exposes the per-map configuration a MapFS conversion needs.
// Parsing it from its source sidecar is out of scope; the core only consumes
// an already-populated implementation.
type MapFSConfig interface {
	// PalCount returns the number of BG palette variants for name, or 1 if
	// name has no explicit configuration (spec.md §7 "Missing configuration").
	PalCount(name string) uint32
	// Textures returns the title-screen texture layout for name, if any.
	Textures(name string) ([]TitleTexture, bool)
}

// MapFSOutputMode selects how ConvertMapFS packages converted entries.
type MapFSOutputMode int

const (
	// MapFSFlat rebuilds a single archive: TOC + concatenated payloads +
	// end_data sentinel.
	MapFSFlat MapFSOutputMode = iota
	// MapFSPerFile emits one buffer per entry plus a small manifest.
	MapFSPerFile
)
