package chromakey

import (
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/wudi/convertkit/raster"
)

// BlendMode selects how foreground pixels combine with the resolved
// background during compositing.
type BlendMode uint8

const (
	// BlendNormal performs standard source-over alpha blending.
	BlendNormal BlendMode = iota
	// BlendMultiply multiplies foreground and background colors.
	BlendMultiply
	// BlendScreen is the inverse multiply: 1 - (1-fg)*(1-bg).
	BlendScreen
	// BlendOverlay multiplies dark background areas and screens bright ones.
	BlendOverlay
	// BlendDarken keeps the darker of the two channels.
	BlendDarken
	// BlendLighten keeps the lighter of the two channels.
	BlendLighten
)

// String returns the lowercase name used on the configuration surface.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	case BlendOverlay:
		return "overlay"
	case BlendDarken:
		return "darken"
	case BlendLighten:
		return "lighten"
	}
	return "unknown"
}

// BackgroundMode says whether the background is a solid color or an image.
type BackgroundMode uint8

const (
	BackgroundColor BackgroundMode = iota
	BackgroundImage
)

// Background describes what to place behind the keyed foreground. For
// BackgroundImage the Color is still used to fill the canvas before the
// image is drawn, so letterbox bands never come out transparent.
type Background struct {
	Mode  BackgroundMode
	Color color.NRGBA
	Image *raster.Buffer
}

// resolveBackground produces a full-frame buffer for the composite base:
// a solid fill, or a fill plus the background image scaled to fit inside the
// canvas with its aspect ratio preserved, centered.
func resolveBackground(bg Background, width, height int) *raster.Buffer {
	out := raster.New(width, height)
	c := bg.Color
	c.A = 255
	out.Fill(c)

	if bg.Mode != BackgroundImage || bg.Image == nil {
		return out
	}

	// Scale to fit inside the canvas, up or down, preserving aspect ratio.
	scaleW := float64(width) / float64(bg.Image.Width)
	scaleH := float64(height) / float64(bg.Image.Height)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	fw := int(float64(bg.Image.Width) * scale)
	fh := int(float64(bg.Image.Height) * scale)
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}
	fitted := imaging.Resize(bg.Image.ToImage(), fw, fh, imaging.Lanczos)
	ox := (width - fw) / 2
	oy := (height - fh) / 2

	src := raster.FromImage(fitted)
	for y := 0; y < fh; y++ {
		for x := 0; x < fw; x++ {
			out.Set(ox+x, oy+y, src.At(x, y))
		}
	}
	return out
}

// composite draws the despilled foreground over the resolved background.
// The matte supplies the per-pixel foreground alpha; opacity (0..1) scales it
// globally. Blend mode and opacity affect the foreground layer only.
func composite(fg *raster.Buffer, matte []uint8, bg Background, mode BlendMode, opacity float64) *raster.Buffer {
	out := resolveBackground(bg, fg.Width, fg.Height)

	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}

	for i, a := range matte {
		srcA := uint8(float64(a) * opacity)
		if srcA == 0 {
			continue
		}
		o := i * 4
		sr, sg, sb := fg.Pix[o], fg.Pix[o+1], fg.Pix[o+2]
		dr, dg, db := out.Pix[o], out.Pix[o+1], out.Pix[o+2]

		if mode != BlendNormal {
			sr, sg, sb = blendChannels(mode, sr, sg, sb, dr, dg, db)
		}

		// Background is opaque, so source-over reduces to a lerp by srcA.
		sa := int(srcA)
		out.Pix[o+0] = uint8((int(sr)*sa + int(dr)*(255-sa)) / 255)
		out.Pix[o+1] = uint8((int(sg)*sa + int(dg)*(255-sa)) / 255)
		out.Pix[o+2] = uint8((int(sb)*sa + int(db)*(255-sa)) / 255)
		out.Pix[o+3] = 255
	}
	return out
}

func blendChannels(mode BlendMode, sr, sg, sb, dr, dg, db uint8) (r, g, b uint8) {
	switch mode {
	case BlendMultiply:
		return mulChannel(sr, dr), mulChannel(sg, dg), mulChannel(sb, db)
	case BlendScreen:
		return screenChannel(sr, dr), screenChannel(sg, dg), screenChannel(sb, db)
	case BlendOverlay:
		return overlayChannel(sr, dr), overlayChannel(sg, dg), overlayChannel(sb, db)
	case BlendDarken:
		return minByte(sr, dr), minByte(sg, dg), minByte(sb, db)
	case BlendLighten:
		return maxByte(sr, dr), maxByte(sg, dg), maxByte(sb, db)
	}
	return sr, sg, sb
}

func mulChannel(s, d uint8) uint8 {
	return uint8(int(s) * int(d) / 255)
}

func screenChannel(s, d uint8) uint8 {
	return uint8(255 - (255-int(s))*(255-int(d))/255)
}

func overlayChannel(s, d uint8) uint8 {
	if d < 128 {
		return uint8(2 * int(s) * int(d) / 255)
	}
	return uint8(255 - 2*(255-int(s))*(255-int(d))/255)
}

func minByte(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func maxByte(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
