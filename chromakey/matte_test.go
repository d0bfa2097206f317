package chromakey

import "testing"

func solidPix(w, h int, r, g, b uint8) []uint8 {
	pix := make([]uint8, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = 255
	}
	return pix
}

func TestMatteKeyColorFullyTransparent(t *testing.T) {
	for _, tol := range []float64{1, 30, 60, 255} {
		pix := solidPix(4, 4, 0, 255, 0)
		matte := buildMatte(pix, 0, 255, 0, tol, 20)
		for i, a := range matte {
			if a != 0 {
				t.Fatalf("tolerance %v: pixel %d alpha = %d, want 0", tol, i, a)
			}
		}
	}
}

func TestMatteFarChromaFullyOpaque(t *testing.T) {
	// Saturated blue is far from green chroma at any reasonable tolerance.
	pix := solidPix(4, 4, 0, 0, 255)
	matte := buildMatte(pix, 0, 255, 0, 60, 20)
	for i, a := range matte {
		if a != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i, a)
		}
	}
}

func TestMatteMonotonicInChromaDistance(t *testing.T) {
	// Walk from pure key green toward gray: alpha must never decrease as
	// the chroma distance to the key grows.
	key := [3]uint8{0, 255, 0}
	prev := -1
	for step := 0; step <= 10; step++ {
		// Blend key with mid gray to desaturate progressively.
		f := float64(step) / 10
		r := uint8(float64(key[0])*(1-f) + 128*f)
		g := uint8(float64(key[1])*(1-f) + 128*f)
		b := uint8(float64(key[2])*(1-f) + 128*f)
		pix := solidPix(1, 1, r, g, b)
		matte := buildMatte(pix, key[0], key[1], key[2], 120, 200)
		if int(matte[0]) < prev {
			t.Fatalf("step %d: alpha %d dropped below previous %d", step, matte[0], prev)
		}
		prev = int(matte[0])
	}
}

func TestMatteLuminanceGate(t *testing.T) {
	// Adding a uniform gray offset keeps BT.601 chroma identical and only
	// shifts luma, so (40,168,40) has exactly the chroma of key (0,128,0).
	exact := solidPix(1, 1, 0, 128, 0)
	matteExact := buildMatte(exact, 0, 128, 0, 60, 15)
	if matteExact[0] != 0 {
		t.Fatalf("exact key alpha = %d, want 0", matteExact[0])
	}

	shifted := solidPix(1, 1, 40, 168, 40)
	matteShifted := buildMatte(shifted, 0, 128, 0, 60, 15)
	if matteShifted[0] != 255 {
		t.Fatalf("luma-shifted pixel alpha = %d, want 255 (gated out)", matteShifted[0])
	}
}

func TestSmoothstepEndpoints(t *testing.T) {
	if v := smoothstep(10, 20, 5); v != 0 {
		t.Fatalf("below lo = %v, want 0", v)
	}
	if v := smoothstep(10, 20, 25); v != 1 {
		t.Fatalf("above hi = %v, want 1", v)
	}
	if v := smoothstep(10, 20, 15); v <= 0 || v >= 1 {
		t.Fatalf("midpoint = %v, want in (0,1)", v)
	}
}
