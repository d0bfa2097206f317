// Package compress implements a target-size-seeking image compressor. It
// binary-searches JPEG quality for the largest encoding that fits the byte
// budget and, when the floor quality is still too large, steps the image
// dimensions down and searches again.
package compress

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"

	"github.com/wudi/convertkit/observability"
	"github.com/wudi/convertkit/raster"
)

// ErrTargetUnreachable is returned when even the minimum quality at the
// minimum dimensions exceeds the byte budget. The Result still carries the
// smallest encoding produced.
var ErrTargetUnreachable = errors.New("compress: target size unreachable")

// Config controls one compressor. Zero fields take the documented defaults.
type Config struct {
	// TargetBytes is the byte budget the encoded output must not exceed.
	TargetBytes int

	// MinQuality and MaxQuality bound the JPEG quality search.
	// Defaults: 20 and 90.
	MinQuality int
	MaxQuality int

	// MinDimension stops dimension reduction once the longer side would
	// drop below it. Default: 64.
	MinDimension int

	// ScaleStep is the per-round dimension multiplier once quality alone
	// cannot reach the target. Default: 0.85.
	ScaleStep float64

	Logger observability.Logger
}

// Result is one compression outcome.
type Result struct {
	Data    []byte
	Quality int
	Width   int
	Height  int
}

// Compressor seeks encodings under a byte budget. Safe for sequential reuse;
// each call allocates its own buffers.
type Compressor struct {
	cfg Config
}

// New validates the configuration and builds a compressor.
func New(cfg Config) (*Compressor, error) {
	if cfg.TargetBytes <= 0 {
		return nil, fmt.Errorf("compress: target bytes must be positive, got %d", cfg.TargetBytes)
	}
	if cfg.MinQuality == 0 {
		cfg.MinQuality = 20
	}
	if cfg.MaxQuality == 0 {
		cfg.MaxQuality = 90
	}
	if cfg.MinQuality < 1 || cfg.MaxQuality > 100 || cfg.MinQuality > cfg.MaxQuality {
		return nil, fmt.Errorf("compress: invalid quality range [%d, %d]", cfg.MinQuality, cfg.MaxQuality)
	}
	if cfg.MinDimension == 0 {
		cfg.MinDimension = 64
	}
	if cfg.ScaleStep == 0 {
		cfg.ScaleStep = 0.85
	}
	if cfg.ScaleStep <= 0 || cfg.ScaleStep >= 1 {
		return nil, fmt.Errorf("compress: scale step must be in (0, 1), got %v", cfg.ScaleStep)
	}
	if cfg.Logger == nil {
		cfg.Logger = observability.NopLogger{}
	}
	return &Compressor{cfg: cfg}, nil
}

// Compress seeks the highest-quality JPEG of src that fits the byte budget.
// When quality reduction alone cannot reach the target, the image is scaled
// down step by step and the quality search repeats at each size. If the
// budget is unreachable the smallest encoding found is returned together
// with ErrTargetUnreachable.
func (c *Compressor) Compress(ctx context.Context, src *raster.Buffer) (Result, error) {
	if src == nil {
		return Result{}, errors.New("compress: nil source buffer")
	}

	img := src.ToImage()
	best := Result{}

	for {
		if err := ctx.Err(); err != nil {
			return best, err
		}

		res, ok, err := c.searchQuality(ctx, img)
		if err != nil {
			return best, err
		}
		if ok {
			return res, nil
		}
		// Remember the smallest failed attempt in case nothing ever fits.
		if best.Data == nil || len(res.Data) < len(best.Data) {
			best = res
		}

		w := img.Bounds().Dx()
		h := img.Bounds().Dy()
		nw := int(float64(w) * c.cfg.ScaleStep)
		nh := int(float64(h) * c.cfg.ScaleStep)
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}
		if max(nw, nh) < c.cfg.MinDimension || (nw == w && nh == h) {
			c.cfg.Logger.Warn("target size unreachable",
				observability.Int("target", c.cfg.TargetBytes),
				observability.Int("smallest", len(best.Data)))
			return best, ErrTargetUnreachable
		}

		dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
		img = dst
	}
}

// CompressFile decodes the image at path and compresses it.
func (c *Compressor) CompressFile(ctx context.Context, path string) (Result, error) {
	buf, err := raster.DecodeFile(path)
	if err != nil {
		return Result{}, err
	}
	return c.Compress(ctx, buf)
}

// searchQuality binary-searches quality for the current image size. It
// reports ok=false with the floor-quality encoding when nothing fits.
func (c *Compressor) searchQuality(ctx context.Context, img image.Image) (Result, bool, error) {
	lo, hi := c.cfg.MinQuality, c.cfg.MaxQuality
	var fit *Result

	floor, err := encodeJPEG(img, lo)
	if err != nil {
		return Result{}, false, err
	}
	if len(floor.Data) > c.cfg.TargetBytes {
		return floor, false, nil
	}
	fit = &floor
	lo++

	for lo <= hi {
		if err := ctx.Err(); err != nil {
			return Result{}, false, err
		}
		mid := (lo + hi) / 2
		res, err := encodeJPEG(img, mid)
		if err != nil {
			return Result{}, false, err
		}
		if len(res.Data) <= c.cfg.TargetBytes {
			fit = &res
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return *fit, true, nil
}

func encodeJPEG(img image.Image, quality int) (Result, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return Result{}, fmt.Errorf("encode jpeg at quality %d: %w", quality, err)
	}
	return Result{
		Data:    buf.Bytes(),
		Quality: quality,
		Width:   img.Bounds().Dx(),
		Height:  img.Bounds().Dy(),
	}, nil
}
