package pdfops

import (
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/wudi/convertkit/observability"
)

// TextStamp describes a text watermark.
type TextStamp struct {
	Text     string
	Rotation float64 // degrees; 0 means pdfcpu's diagonal default is off
	Opacity  float64 // 0..1; 0 takes the default 0.3
	Scale    float64 // relative scale 0..1; 0 takes the default 0.5
	OnTop    bool    // stamp over content instead of behind it
	Pages    []int   // one-based; empty means all pages
}

func (s TextStamp) details() string {
	op := s.Opacity
	if op == 0 {
		op = 0.3
	}
	sc := s.Scale
	if sc == 0 {
		sc = 0.5
	}
	return fmt.Sprintf("scalefactor:%.2f rel, opacity:%.2f, rotation:%.1f", sc, op, s.Rotation)
}

// ImageStamp describes an image watermark or signature overlay.
type ImageStamp struct {
	ImagePath string
	Scale     float64 // absolute scale factor; 0 takes 1.0
	Opacity   float64 // 0..1; 0 takes 1.0
	Rotation  float64
	// Dx, Dy offset the stamp from the lower-left corner, in points.
	// Only applied when Absolute is set.
	Dx, Dy   float64
	Absolute bool
	OnTop    bool
	Pages    []int
}

func (s ImageStamp) details() string {
	op := s.Opacity
	if op == 0 {
		op = 1.0
	}
	sc := s.Scale
	if sc == 0 {
		sc = 1.0
	}
	pos := "c"
	if s.Absolute {
		pos = "full"
	}
	return fmt.Sprintf("scale:%.2f, pos:%s, rot:%.1f, op:%.2f", sc, pos, s.Rotation, op)
}

// WatermarkText stamps text onto inPath and writes the result to outPath.
func (o *Ops) WatermarkText(ctx context.Context, inPath, outPath string, stamp TextStamp) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if stamp.Text == "" {
		return fmt.Errorf("pdfops: empty watermark text")
	}
	sel, err := pageSelection(stamp.Pages)
	if err != nil {
		return err
	}

	wm, err := pdfcpu.ParseTextWatermarkDetails(stamp.Text, stamp.details(), stamp.OnTop, types.POINTS)
	if err != nil {
		return fmt.Errorf("pdfops: parse text watermark: %w", err)
	}
	if err := api.AddWatermarksFile(inPath, outPath, sel, wm, o.conf()); err != nil {
		return fmt.Errorf("pdfops: add text watermark: %w", err)
	}

	o.logger.Info("stamped text watermark",
		observability.String("in", inPath),
		observability.String("out", outPath))
	return nil
}

// WatermarkImage stamps an image onto inPath and writes the result to
// outPath. With Absolute set, the stamp lands at (Dx, Dy) from the page's
// lower-left corner; signature overlays are placed this way.
func (o *Ops) WatermarkImage(ctx context.Context, inPath, outPath string, stamp ImageStamp) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if stamp.ImagePath == "" {
		return fmt.Errorf("pdfops: empty stamp image path")
	}
	sel, err := pageSelection(stamp.Pages)
	if err != nil {
		return err
	}

	wm, err := pdfcpu.ParseImageWatermarkDetails(stamp.ImagePath, stamp.details(), stamp.OnTop, types.POINTS)
	if err != nil {
		return fmt.Errorf("pdfops: parse image watermark: %w", err)
	}
	if stamp.Absolute {
		wm.Dx = stamp.Dx
		wm.Dy = stamp.Dy
	}
	if err := api.AddWatermarksFile(inPath, outPath, sel, wm, o.conf()); err != nil {
		return fmt.Errorf("pdfops: add image watermark: %w", err)
	}

	o.logger.Info("stamped image watermark",
		observability.String("in", inPath),
		observability.String("out", outPath))
	return nil
}

// Sign places a signature image on one page at the given position.
func (o *Ops) Sign(ctx context.Context, inPath, outPath, signaturePath string, page int, x, y, scale float64) error {
	return o.WatermarkImage(ctx, inPath, outPath, ImageStamp{
		ImagePath: signaturePath,
		Scale:     scale,
		Opacity:   1.0,
		Dx:        x,
		Dy:        y,
		Absolute:  true,
		OnTop:     true,
		Pages:     []int{page},
	})
}
