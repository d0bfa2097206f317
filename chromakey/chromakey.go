// Package chromakey implements color-keyed background replacement: a soft
// alpha matte built from chroma distance to a key color, matte morphology
// (shrink/expand and feathering), key-spill suppression on edge pixels, and
// compositing over a solid color or fitted background image.
//
// The pipeline is a pure single pass over owned buffers. Nothing persists
// between invocations; callers re-run the whole pipeline on retry.
package chromakey

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/wudi/convertkit/observability"
	"github.com/wudi/convertkit/raster"
)

// ErrNilSource is returned when Process receives no input buffer.
var ErrNilSource = errors.New("chromakey: nil source buffer")

// Config controls one keying pipeline. The zero value is not usable; keys
// must at least set KeyColor and Tolerance.
type Config struct {
	// KeyColor is the reference color treated as background, as an RGB hex
	// string ("#00ff00" or "00ff00").
	KeyColor string

	// Tolerance is the chroma distance (1-255) at which pixels stop being
	// considered key-colored. The transparent core extends to 0.65x this.
	Tolerance float64

	// LuminanceGate bounds how far a pixel's luma may drift from the key
	// luma while still being removed. Zero derives clamp(Tolerance*0.25,
	// 10, 80).
	LuminanceGate float64

	// Feather is the number of 3x3 box-blur passes applied to the matte,
	// clamped to [0, 4].
	Feather int

	// EdgeBias expands (>0) or shrinks (<0) the opaque region before
	// feathering, clamped to [-3, 3].
	EdgeBias int

	// SpillStrength scales key-spill removal on edge pixels, 0..1.
	// Zero disables suppression.
	SpillStrength float64

	// Background is what shows through removed areas.
	Background Background

	// Blend selects the foreground blend mode.
	Blend BlendMode

	// Opacity is the global foreground opacity in percent (0-100).
	// Zero means fully opaque; the UI surface never submits 0 for "hide".
	Opacity int

	Logger observability.Logger
}

// Pipeline applies one keying configuration to any number of images,
// allocating fresh buffers per call.
type Pipeline struct {
	key     color.NRGBA
	tol     float64
	gate    float64
	feather int
	bias    int
	spill   float64
	bg      Background
	blend   BlendMode
	opacity float64
	logger  observability.Logger
}

// New validates the configuration and builds a pipeline. The key color is
// parsed here so malformed input fails once, up front, instead of deep in a
// batch loop.
func New(cfg Config) (*Pipeline, error) {
	c, err := colorful.Hex(normalizeHex(cfg.KeyColor))
	if err != nil {
		return nil, fmt.Errorf("chromakey: parse key color %q: %w", cfg.KeyColor, err)
	}
	r, g, b := c.RGB255()

	tol := cfg.Tolerance
	if tol < 1 {
		tol = 1
	} else if tol > 255 {
		tol = 255
	}

	gate := cfg.LuminanceGate
	if gate == 0 {
		gate = tol * 0.25
		if gate < 10 {
			gate = 10
		} else if gate > 80 {
			gate = 80
		}
	}

	fr := cfg.Feather
	if fr < 0 {
		fr = 0
	} else if fr > 4 {
		fr = 4
	}

	bias := cfg.EdgeBias
	if bias < -3 {
		bias = -3
	} else if bias > 3 {
		bias = 3
	}

	opacity := 1.0
	if cfg.Opacity > 0 {
		opacity = float64(cfg.Opacity) / 100
		if opacity > 1 {
			opacity = 1
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = observability.NopLogger{}
	}

	return &Pipeline{
		key:     color.NRGBA{R: r, G: g, B: b, A: 255},
		tol:     tol,
		gate:    gate,
		feather: fr,
		bias:    bias,
		spill:   cfg.SpillStrength,
		bg:      cfg.Background,
		blend:   cfg.Blend,
		opacity: opacity,
		logger:  logger,
	}, nil
}

// Process runs matte building, morphology, spill suppression and compositing
// over src and returns the composited frame. src is not modified.
func (p *Pipeline) Process(ctx context.Context, src *raster.Buffer) (*raster.Buffer, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.logger.Debug("keying frame",
		observability.Int("width", src.Width),
		observability.Int("height", src.Height))

	matte := buildMatte(src.Pix, p.key.R, p.key.G, p.key.B, p.tol, p.gate)
	matte = shrinkExpand(matte, src.Width, src.Height, p.bias)
	matte = feather(matte, src.Width, src.Height, p.feather)

	fg := src.Clone()
	suppressSpill(fg.Pix, matte, p.key.R, p.key.G, p.key.B, p.spill)
	fg.SetAlpha(matte)

	return composite(fg, matte, p.bg, p.blend, p.opacity), nil
}

// Matte exposes the raw matte stage for callers that want the alpha map
// without compositing (e.g. exporting a cutout PNG). A nil source yields a
// nil matte.
func (p *Pipeline) Matte(src *raster.Buffer) []uint8 {
	if src == nil {
		return nil
	}
	matte := buildMatte(src.Pix, p.key.R, p.key.G, p.key.B, p.tol, p.gate)
	matte = shrinkExpand(matte, src.Width, src.Height, p.bias)
	return feather(matte, src.Width, src.Height, p.feather)
}

// Cutout returns the despilled foreground with the matte written into its
// alpha channel and no background, for PNG export with transparency.
func (p *Pipeline) Cutout(ctx context.Context, src *raster.Buffer) (*raster.Buffer, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matte := p.Matte(src)
	fg := src.Clone()
	suppressSpill(fg.Pix, matte, p.key.R, p.key.G, p.key.B, p.spill)
	fg.SetAlpha(matte)
	return fg, nil
}

// ParseBlendMode maps a configuration string to a BlendMode.
func ParseBlendMode(s string) (BlendMode, error) {
	switch s {
	case "", "normal":
		return BlendNormal, nil
	case "multiply":
		return BlendMultiply, nil
	case "screen":
		return BlendScreen, nil
	case "overlay":
		return BlendOverlay, nil
	case "darken":
		return BlendDarken, nil
	case "lighten":
		return BlendLighten, nil
	}
	return BlendNormal, fmt.Errorf("chromakey: unknown blend mode %q", s)
}

// ParseHexColor parses an RGB hex string into an opaque NRGBA.
func ParseHexColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(normalizeHex(s))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("chromakey: parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

func normalizeHex(s string) string {
	if s == "" {
		return s
	}
	if s[0] != '#' {
		return "#" + s
	}
	return s
}
