// Command pmconv is a thin sample front end over package rom: given either
// one named segment or a full ROM image plus a segment map sidecar, it
// converts each segment and writes the result back out. Locating a segment
// map from the ROM's actual linker symbols, loading a MapFS/title/icon
// configuration, and running the real YAY0 codec are all out of scope
// (spec.md §1); this binary exists to demonstrate wiring, not to replace
// the asset pipeline it sits in front of.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Bruceleeto/papermario/rom"
)

func stubDecompressor(block []byte) ([]byte, error) {
	return nil, fmt.Errorf("pmconv: no YAY0 codec wired in; pass a real one to rom.DispatchConfig")
}

func main() {
	name := flag.String("name", "", "segment name used for dispatch, for single-segment mode")
	in := flag.String("in", "", "path to the raw big-endian segment, or a full ROM image with -segmap")
	out := flag.String("out", "", "output path (single-segment mode) or output directory (-segmap mode)")
	segmap := flag.String("segmap", "", "path to a segment map sidecar (name 0xSTART 0xEND per line)")
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("pmconv: %s", err)
	}

	cfg := rom.DispatchConfig{Decompressor: stubDecompressor}

	if *segmap == "" {
		if *name == "" {
			log.Fatal("pmconv: -name is required without -segmap")
		}
		writeSegment(*out, *name, raw, cfg)
		return
	}

	f, err := os.Open(*segmap)
	if err != nil {
		log.Fatalf("pmconv: %s", err)
	}
	defer f.Close()

	ranges, err := loadSegmentMap(f)
	if err != nil {
		log.Fatalf("pmconv: %s", err)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("pmconv: %s", err)
	}
	for _, r := range ranges {
		if int(r.End) > len(raw) || r.Start > r.End {
			log.Printf("pmconv: skipping %s: range [%#x,%#x) outside ROM of size %#x", r.Name, r.Start, r.End, len(raw))
			continue
		}
		writeSegment(filepath.Join(*out, r.Name+".bin"), r.Name, raw[r.Start:r.End], cfg)
	}
}

func writeSegment(path, name string, raw []byte, cfg rom.DispatchConfig) {
	converted, warnings, err := rom.Dispatch(name, raw, cfg)
	if err != nil {
		log.Fatalf("pmconv: %s: %s", name, err)
	}
	if !warnings.Empty() {
		log.Printf("pmconv: %s: %s", name, warnings.Err())
	}
	if err := os.WriteFile(path, converted, 0o644); err != nil {
		log.Fatalf("pmconv: %s", err)
	}
}
