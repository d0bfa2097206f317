package pdfops

import (
	"context"
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/wudi/convertkit/observability"
)

// RenderPages rasterizes every page of the PDF at path to an image at the
// given DPI. Pages render strictly in order; rendering stops at the first
// failing page.
func (o *Ops) RenderPages(ctx context.Context, path string, dpi float64) ([]image.Image, error) {
	if dpi <= 0 {
		dpi = 150
	}
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("pdfops: open %s: %w", path, err)
	}
	defer doc.Close()

	n := doc.NumPage()
	pages := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := doc.ImageDPI(i, dpi)
		if err != nil {
			return nil, fmt.Errorf("pdfops: render page %d of %s: %w", i+1, path, err)
		}
		pages = append(pages, img)
	}

	o.logger.Info("rendered pdf pages",
		observability.String("in", path),
		observability.Int("pages", n))
	return pages, nil
}

// RenderPage rasterizes a single zero-based page.
func (o *Ops) RenderPage(ctx context.Context, path string, page int, dpi float64) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if dpi <= 0 {
		dpi = 150
	}
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("pdfops: open %s: %w", path, err)
	}
	defer doc.Close()

	if page < 0 || page >= doc.NumPage() {
		return nil, fmt.Errorf("pdfops: page %d out of range [0, %d)", page, doc.NumPage())
	}
	img, err := doc.ImageDPI(page, dpi)
	if err != nil {
		return nil, fmt.Errorf("pdfops: render page %d of %s: %w", page+1, path, err)
	}
	return img, nil
}
