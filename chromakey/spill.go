package chromakey

import "math"

// suppressSpill removes residual key-color tint from edge pixels. Only pixels
// whose matte alpha is strictly between 0 and 255 are touched: those are the
// transition pixels that were blended with the key background and carry its
// tint in proportion to their transparency. Fully kept and fully removed
// pixels pass through bit-identical.
func suppressSpill(pix []uint8, matte []uint8, keyR, keyG, keyB uint8, strength float64) {
	if strength <= 0 {
		return
	}

	norm := math.Sqrt(float64(keyR)*float64(keyR) + float64(keyG)*float64(keyG) + float64(keyB)*float64(keyB))
	if norm == 0 {
		return
	}
	ux := float64(keyR) / norm
	uy := float64(keyG) / norm
	uz := float64(keyB) / norm

	for i, a := range matte {
		if a == 0 || a == 255 {
			continue
		}
		o := i * 4
		r := float64(pix[o])
		g := float64(pix[o+1])
		b := float64(pix[o+2])

		proj := r*ux + g*uy + b*uz
		if proj <= 0 {
			continue
		}
		f := strength * (1 - float64(a)/255) * proj

		pix[o] = clampByte(r - f*ux)
		pix[o+1] = clampByte(g - f*uy)
		pix[o+2] = clampByte(b - f*uz)
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
