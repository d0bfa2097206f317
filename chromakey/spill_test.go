package chromakey

import (
	"bytes"
	"testing"
)

func TestSpillLeavesOpaqueAndTransparentPixelsAlone(t *testing.T) {
	// Four pixels: alpha 0, 255, and two edge values.
	pix := []uint8{
		120, 200, 90, 255,
		120, 200, 90, 255,
		120, 200, 90, 255,
		120, 200, 90, 255,
	}
	matte := []uint8{0, 255, 128, 64}
	orig := make([]uint8, len(pix))
	copy(orig, pix)

	suppressSpill(pix, matte, 0, 255, 0, 0.8)

	// Pixel 0 (alpha 0) and pixel 1 (alpha 255) must be bit-identical.
	if !bytes.Equal(pix[0:4], orig[0:4]) {
		t.Fatalf("alpha-0 pixel modified: %v -> %v", orig[0:4], pix[0:4])
	}
	if !bytes.Equal(pix[4:8], orig[4:8]) {
		t.Fatalf("alpha-255 pixel modified: %v -> %v", orig[4:8], pix[4:8])
	}
	// Edge pixels must have lost green.
	if pix[9] >= orig[9] {
		t.Fatalf("edge pixel green = %d, want < %d", pix[9], orig[9])
	}
	if pix[13] >= orig[13] {
		t.Fatalf("edge pixel green = %d, want < %d", pix[13], orig[13])
	}
}

func TestSpillScalesWithTransparency(t *testing.T) {
	// The more transparent the edge pixel, the more spill is removed.
	mk := func(alpha uint8) uint8 {
		pix := []uint8{100, 220, 100, 255}
		suppressSpill(pix, []uint8{alpha}, 0, 255, 0, 1.0)
		return pix[1]
	}
	nearOpaque := mk(230)
	nearClear := mk(20)
	if nearClear >= nearOpaque {
		t.Fatalf("green after spill: alpha 20 -> %d, alpha 230 -> %d; want more removal at low alpha",
			nearClear, nearOpaque)
	}
}

func TestSpillZeroStrengthNoop(t *testing.T) {
	pix := []uint8{10, 240, 20, 255}
	orig := make([]uint8, len(pix))
	copy(orig, pix)
	suppressSpill(pix, []uint8{100}, 0, 255, 0, 0)
	if !bytes.Equal(pix, orig) {
		t.Fatalf("strength 0 modified pixel")
	}
}

func TestSpillClampsAtZero(t *testing.T) {
	pix := []uint8{0, 255, 0, 255}
	suppressSpill(pix, []uint8{1}, 0, 255, 0, 1.0)
	for c := 0; c < 3; c++ {
		if pix[c] > 255 {
			t.Fatalf("channel %d out of range: %d", c, pix[c])
		}
	}
	// alpha 1 on a pure key pixel removes almost the entire projection
	if pix[1] > 2 {
		t.Fatalf("green = %d, want near 0", pix[1])
	}
}
