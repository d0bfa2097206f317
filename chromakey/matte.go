package chromakey

import "math"

// ycbcr converts an 8-bit RGB triple to BT.601 luma/chroma.
func ycbcr(r, g, b uint8) (y, cb, cr float64) {
	rf, gf, bf := float64(r), float64(g), float64(b)
	y = 0.299*rf + 0.587*gf + 0.114*bf
	cb = 128 - 0.168736*rf - 0.331264*gf + 0.5*bf
	cr = 128 + 0.5*rf - 0.418688*gf - 0.081312*bf
	return y, cb, cr
}

// smoothstep is the standard Hermite ramp: 0 at or below lo, 1 at or above hi.
func smoothstep(lo, hi, v float64) float64 {
	if hi <= lo {
		if v < lo {
			return 0
		}
		return 1
	}
	t := (v - lo) / (hi - lo)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// buildMatte computes the soft alpha matte for pix (RGBA, row-major) against
// the key color. Pixels whose chroma lies within 0.65*tolerance of the key
// chroma and whose luma matches the key luma become fully transparent; pixels
// beyond tolerance stay fully opaque. Between the two thresholds the alpha
// ramps smoothly.
//
// The returned matte has one byte per pixel and always covers the full frame.
func buildMatte(pix []uint8, keyR, keyG, keyB uint8, tolerance, lumaGate float64) []uint8 {
	keyY, keyCb, keyCr := ycbcr(keyR, keyG, keyB)

	gateDiv := lumaGate
	if gateDiv < 12 {
		gateDiv = 12
	}

	n := len(pix) / 4
	matte := make([]uint8, n)
	for i := 0; i < n; i++ {
		o := i * 4
		y, cb, cr := ycbcr(pix[o], pix[o+1], pix[o+2])

		dist := math.Hypot(cb-keyCb, cr-keyCr)
		nearness := 1 - smoothstep(0.65*tolerance, tolerance, dist)

		gate := 1 - math.Abs(y-keyY)/gateDiv
		if gate < 0 {
			gate = 0
		} else if gate > 1 {
			gate = 1
		}

		removal := nearness * gate
		if removal < 0 {
			removal = 0
		} else if removal > 1 {
			removal = 1
		}

		matte[i] = uint8(math.Round(255 * (1 - removal)))
	}
	return matte
}
