package chromakey

import (
	"image/color"
	"testing"

	"github.com/wudi/convertkit/raster"
)

func TestResolveBackgroundSolidColor(t *testing.T) {
	bg := Background{Mode: BackgroundColor, Color: color.NRGBA{R: 255, A: 255}}
	out := resolveBackground(bg, 3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c := out.At(x, y)
			if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
				t.Fatalf("(%d,%d) = %v, want opaque red", x, y, c)
			}
		}
	}
}

func TestResolveBackgroundImageFitsAndCenters(t *testing.T) {
	// 2x2 white background image into a 8x4 canvas with blue fallback:
	// the image fits to 4x4, centered horizontally, leaving blue bands.
	img := raster.New(2, 2)
	img.Fill(color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	bg := Background{
		Mode:  BackgroundImage,
		Color: color.NRGBA{B: 255, A: 255},
		Image: img,
	}
	out := resolveBackground(bg, 8, 4)

	if c := out.At(0, 0); c.B != 255 || c.R != 0 {
		t.Fatalf("left band = %v, want blue fallback", c)
	}
	if c := out.At(7, 3); c.B != 255 || c.R != 0 {
		t.Fatalf("right band = %v, want blue fallback", c)
	}
	if c := out.At(4, 2); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Fatalf("center = %v, want white image pixel", c)
	}
}

func TestCompositeTransparentForegroundShowsBackground(t *testing.T) {
	fg := raster.New(2, 2)
	fg.Fill(color.NRGBA{G: 255, A: 255})
	matte := []uint8{0, 0, 0, 0}

	out := composite(fg, matte, Background{Color: color.NRGBA{R: 255, A: 255}}, BlendNormal, 1)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c := out.At(x, y)
			if c.R != 255 || c.G != 0 {
				t.Fatalf("(%d,%d) = %v, want pure background", x, y, c)
			}
		}
	}
}

func TestCompositeOpaqueNormalKeepsForeground(t *testing.T) {
	fg := raster.New(1, 1)
	fg.Fill(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	out := composite(fg, []uint8{255}, Background{Color: color.NRGBA{R: 255, A: 255}}, BlendNormal, 1)
	if c := out.At(0, 0); c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Fatalf("got %v, want foreground", c)
	}
}

func TestCompositeBlendModes(t *testing.T) {
	tests := []struct {
		mode BlendMode
		fg   uint8
		bg   uint8
		want uint8
	}{
		{BlendMultiply, 128, 128, 64},
		{BlendScreen, 128, 128, 191},
		{BlendDarken, 100, 200, 100},
		{BlendLighten, 100, 200, 200},
		{BlendOverlay, 128, 64, 64},   // dark background: multiply path
		{BlendOverlay, 128, 200, 200}, // bright background: screen path
	}
	for _, tt := range tests {
		fg := raster.New(1, 1)
		fg.Fill(color.NRGBA{R: tt.fg, G: tt.fg, B: tt.fg, A: 255})
		bgc := color.NRGBA{R: tt.bg, G: tt.bg, B: tt.bg, A: 255}

		out := composite(fg, []uint8{255}, Background{Color: bgc}, tt.mode, 1)
		got := out.At(0, 0).R
		if int(got) < int(tt.want)-1 || int(got) > int(tt.want)+1 {
			t.Errorf("%s(%d over %d) = %d, want ~%d", tt.mode, tt.fg, tt.bg, got, tt.want)
		}
	}
}

func TestCompositeOpacityScalesForeground(t *testing.T) {
	fg := raster.New(1, 1)
	fg.Fill(color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	out := composite(fg, []uint8{255}, Background{Color: color.NRGBA{A: 255}}, BlendNormal, 0.5)
	got := out.At(0, 0).R
	if got < 125 || got > 130 {
		t.Fatalf("half-opacity white over black = %d, want ~127", got)
	}
}

func TestCompositeBlendNeverRecolorsBackground(t *testing.T) {
	// Where the matte is fully transparent the background must come
	// through untouched regardless of blend mode.
	for _, mode := range []BlendMode{BlendMultiply, BlendScreen, BlendOverlay, BlendDarken, BlendLighten} {
		fg := raster.New(1, 1)
		fg.Fill(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		out := composite(fg, []uint8{0}, Background{Color: color.NRGBA{R: 30, G: 60, B: 90, A: 255}}, mode, 1)
		if c := out.At(0, 0); c.R != 30 || c.G != 60 || c.B != 90 {
			t.Fatalf("%s recolored background: %v", mode, c)
		}
	}
}

func TestParseBlendMode(t *testing.T) {
	for name, want := range map[string]BlendMode{
		"":         BlendNormal,
		"normal":   BlendNormal,
		"multiply": BlendMultiply,
		"screen":   BlendScreen,
		"overlay":  BlendOverlay,
		"darken":   BlendDarken,
		"lighten":  BlendLighten,
	} {
		got, err := ParseBlendMode(name)
		if err != nil || got != want {
			t.Fatalf("ParseBlendMode(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseBlendMode("dodge"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
