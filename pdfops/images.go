package pdfops

import (
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/wudi/convertkit/observability"
)

// ImportOptions controls images-to-PDF conversion. One image becomes one
// page.
type ImportOptions struct {
	// PageSize is a pdfcpu form name like "A4" or "Letter". Empty sizes
	// each page to its image.
	PageSize string

	// FullPage scales each image to cover the whole page.
	FullPage bool
}

func (opts ImportOptions) details() string {
	d := "pos:c"
	if opts.PageSize != "" {
		d = fmt.Sprintf("formsize:%s, pos:c", opts.PageSize)
	}
	if opts.FullPage {
		d += ", scalefactor:1.0 rel"
	}
	return d
}

// ImagesToPDF builds a PDF at outPath with one page per input image.
func (o *Ops) ImagesToPDF(ctx context.Context, imagePaths []string, outPath string, opts ImportOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(imagePaths) == 0 {
		return ErrNoInput
	}

	imp, err := pdfcpu.ParseImportDetails(opts.details(), types.POINTS)
	if err != nil {
		return fmt.Errorf("pdfops: parse import details: %w", err)
	}
	if err := api.ImportImagesFile(imagePaths, outPath, imp, o.conf()); err != nil {
		return fmt.Errorf("pdfops: import images: %w", err)
	}

	o.logger.Info("imported images to pdf",
		observability.Int("images", len(imagePaths)),
		observability.String("out", outPath))
	return nil
}
