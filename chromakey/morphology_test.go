package chromakey

import (
	"bytes"
	"testing"
)

func TestShrinkExpandZeroStepsUnchanged(t *testing.T) {
	matte := []uint8{0, 50, 100, 150, 200, 250, 10, 20, 30}
	orig := make([]uint8, len(matte))
	copy(orig, matte)

	out := shrinkExpand(matte, 3, 3, 0)
	if !bytes.Equal(out, orig) {
		t.Fatalf("zero steps changed matte: %v -> %v", orig, out)
	}
}

func TestShrinkExpandEmptyMatte(t *testing.T) {
	if out := shrinkExpand(nil, 0, 0, 2); len(out) != 0 {
		t.Fatalf("empty matte expanded to %v", out)
	}
	if out := shrinkExpand([]uint8{}, 0, 0, -1); len(out) != 0 {
		t.Fatalf("empty matte shrank to %v", out)
	}
	if out := feather([]uint8{}, 0, 0, 3); len(out) != 0 {
		t.Fatalf("empty matte feathered to %v", out)
	}
}

func TestExpandGrowsOpaqueRegion(t *testing.T) {
	// Single opaque pixel in the center of a 5x5 transparent matte.
	w, h := 5, 5
	matte := make([]uint8, w*h)
	matte[2*w+2] = 255

	shrinkExpand(matte, w, h, 1)

	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if matte[y*w+x] != 255 {
				t.Fatalf("(%d,%d) = %d, want 255 after expand", x, y, matte[y*w+x])
			}
		}
	}
	if matte[0] != 0 {
		t.Fatalf("corner = %d, want 0", matte[0])
	}
}

func TestExpandThenShrinkRestoresConvexRegion(t *testing.T) {
	// A solid 4x4 opaque block inside an 8x8 frame. Dilation then equal
	// erosion is idempotent on convex regions away from the frame border.
	w, h := 8, 8
	matte := make([]uint8, w*h)
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			matte[y*w+x] = 255
		}
	}
	orig := make([]uint8, len(matte))
	copy(orig, matte)

	shrinkExpand(matte, w, h, 1)
	shrinkExpand(matte, w, h, -1)

	if !bytes.Equal(matte, orig) {
		t.Fatalf("expand+shrink did not restore matte:\n%v\n%v", orig, matte)
	}
}

func TestShrinkRemovesIsolatedPixel(t *testing.T) {
	w, h := 5, 5
	matte := make([]uint8, w*h)
	matte[2*w+2] = 255

	shrinkExpand(matte, w, h, -1)
	for i, v := range matte {
		if v != 0 {
			t.Fatalf("pixel %d = %d, want 0 after shrink", i, v)
		}
	}
}

func TestFeatherZeroRadiusUnchanged(t *testing.T) {
	matte := []uint8{0, 255, 0, 255, 0, 255, 0, 255, 0}
	orig := make([]uint8, len(matte))
	copy(orig, matte)

	feather(matte, 3, 3, 0)
	if !bytes.Equal(matte, orig) {
		t.Fatalf("radius 0 changed matte")
	}
}

func TestFeatherUniformMatteStaysUniform(t *testing.T) {
	// The mean excludes out-of-bounds neighbors, so a uniform matte must
	// stay exactly uniform, including at the border.
	w, h := 6, 4
	matte := make([]uint8, w*h)
	for i := range matte {
		matte[i] = 200
	}
	feather(matte, w, h, 3)
	for i, v := range matte {
		if v != 200 {
			t.Fatalf("pixel %d = %d, want 200", i, v)
		}
	}
}

func TestFeatherSoftensHardEdge(t *testing.T) {
	// Left half opaque, right half transparent: after one pass the columns
	// adjacent to the edge must hold intermediate values.
	w, h := 6, 3
	matte := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < 3; x++ {
			matte[y*w+x] = 255
		}
	}
	feather(matte, w, h, 1)

	edge := matte[1*w+2]
	if edge == 0 || edge == 255 {
		t.Fatalf("edge pixel = %d, want intermediate", edge)
	}
	if matte[1*w+0] != 255 {
		t.Fatalf("deep interior changed: %d", matte[1*w+0])
	}
}
