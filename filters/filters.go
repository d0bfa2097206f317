// Package filters applies simple per-pixel color effects to raster buffers:
// grayscale, sepia, and brightness adjustment. Alpha channels pass through
// untouched, so filters compose with chroma-key cutouts.
package filters

import (
	"context"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/wudi/convertkit/observability"
	"github.com/wudi/convertkit/raster"
)

// ErrNilSource is returned when Apply receives no input buffer.
var ErrNilSource = errors.New("filters: nil source buffer")

// Kind selects the color effect.
type Kind uint8

const (
	Grayscale Kind = iota
	Sepia
	Brightness
)

func (k Kind) String() string {
	switch k {
	case Grayscale:
		return "grayscale"
	case Sepia:
		return "sepia"
	case Brightness:
		return "brightness"
	}
	return "unknown"
}

// ParseKind maps a configuration string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "grayscale":
		return Grayscale, nil
	case "sepia":
		return Sepia, nil
	case "brightness":
		return Brightness, nil
	}
	return Grayscale, fmt.Errorf("filters: unknown filter %q", s)
}

// Config controls one filter instance.
type Config struct {
	Kind Kind

	// Amount is the brightness shift in percent, -100 (black) to +100
	// (white). Ignored by the other kinds.
	Amount float64

	Logger observability.Logger
}

// Filter applies one configured effect to any number of images.
type Filter struct {
	kind   Kind
	amount float64
	logger observability.Logger
}

// New validates the configuration and builds a filter.
func New(cfg Config) (*Filter, error) {
	switch cfg.Kind {
	case Grayscale, Sepia, Brightness:
	default:
		return nil, fmt.Errorf("filters: unknown kind %d", cfg.Kind)
	}

	amount := cfg.Amount
	if amount < -100 {
		amount = -100
	} else if amount > 100 {
		amount = 100
	}

	logger := cfg.Logger
	if logger == nil {
		logger = observability.NopLogger{}
	}
	return &Filter{kind: cfg.Kind, amount: amount, logger: logger}, nil
}

// Apply returns a filtered copy of src. src is not modified.
func (f *Filter) Apply(ctx context.Context, src *raster.Buffer) (*raster.Buffer, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.logger.Debug("filtering frame",
		observability.String("kind", f.kind.String()),
		observability.Int("width", src.Width),
		observability.Int("height", src.Height))

	switch f.kind {
	case Grayscale:
		return raster.FromImage(imaging.Grayscale(src.ToImage())), nil
	case Brightness:
		return raster.FromImage(imaging.AdjustBrightness(src.ToImage(), f.amount)), nil
	}
	return sepia(src), nil
}

// sepia applies the classic sepia matrix per pixel. imaging has no sepia
// adjustment, so this one stays hand-rolled.
func sepia(src *raster.Buffer) *raster.Buffer {
	out := src.Clone()
	pix := out.Pix
	for i := 0; i < len(pix); i += 4 {
		r := float64(pix[i])
		g := float64(pix[i+1])
		b := float64(pix[i+2])
		pix[i] = clampRound(0.393*r + 0.769*g + 0.189*b)
		pix[i+1] = clampRound(0.349*r + 0.686*g + 0.168*b)
		pix[i+2] = clampRound(0.272*r + 0.534*g + 0.131*b)
	}
	return out
}

func clampRound(v float64) uint8 {
	v += 0.5
	if v >= 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
