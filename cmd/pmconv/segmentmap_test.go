package main

import (
	"strings"
	"testing"
)

func TestLoadSegmentMapParsesLines(t *testing.T) {
	input := strings.NewReader("# comment\nroom_bg 0x1000 0x2000\n\nroom_shape 0x2000 0x3000\n")

	ranges, err := loadSegmentMap(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranges) != 2 {
		t.Fatalf("len(ranges) = %d, want 2", len(ranges))
	}
	if ranges[0].Name != "room_bg" || ranges[0].Start != 0x1000 || ranges[0].End != 0x2000 {
		t.Fatalf("ranges[0] = %+v", ranges[0])
	}
	if ranges[1].Name != "room_shape" || ranges[1].Start != 0x2000 || ranges[1].End != 0x3000 {
		t.Fatalf("ranges[1] = %+v", ranges[1])
	}
}

func TestLoadSegmentMapRejectsMalformedLine(t *testing.T) {
	input := strings.NewReader("room_bg only-two-fields\n")
	if _, err := loadSegmentMap(input); err == nil {
		t.Fatal("expected an error for a malformed line")
	}
}

func TestLoadSegmentMapRejectsEndBeforeStart(t *testing.T) {
	input := strings.NewReader("room_bg 0x2000 0x1000\n")
	if _, err := loadSegmentMap(input); err == nil {
		t.Fatal("expected an error for end before start")
	}
}
