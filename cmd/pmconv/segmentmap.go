package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Bruceleeto/papermario/rom"
)

// errBadSegmentMapLine mirrors the teacher's sentinel-error-per-malformed-
// input style (nes/cartridge.go's errNoMagic): the segment map sidecar has
// one well-known shape, and anything else is rejected up front rather than
// produncing a garbled segment list.
var errBadSegmentMapLine = errors.New("pmconv: malformed segment map line, want \"name 0xSTART 0xEND\"")

// loadSegmentMap reads the segment map sidecar the rom package's inputs
// section describes as an external producer: one "name start end" triple
// per line, start/end as hex byte offsets into the full ROM image. Blank
// lines and lines starting with "#" are skipped.
func loadSegmentMap(r io.Reader) ([]rom.SegmentRange, error) {
	var ranges []rom.SegmentRange

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %q", errBadSegmentMapLine, line)
		}

		start, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadSegmentMapLine, line)
		}
		end, err := strconv.ParseUint(strings.TrimPrefix(fields[2], "0x"), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadSegmentMapLine, line)
		}
		if end < start {
			return nil, fmt.Errorf("%w: %q (end before start)", errBadSegmentMapLine, line)
		}

		ranges = append(ranges, rom.SegmentRange{
			Name:  fields[0],
			Start: uint32(start),
			End:   uint32(end),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pmconv: reading segment map: %w", err)
	}

	return ranges, nil
}
