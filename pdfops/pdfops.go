// Package pdfops wraps the PDF manipulations offered by the toolkit:
// image-to-PDF conversion, watermark and signature stamping, merging,
// splitting, optimization, password protection, page rendering, and text
// extraction. PDF byte-format concerns are delegated entirely to pdfcpu,
// MuPDF (go-fitz) and ledongthuc/pdf; this package only shapes their inputs
// and errors.
package pdfops

import (
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/wudi/convertkit/observability"
)

// ErrNoInput is returned by operations invoked without input files.
var ErrNoInput = errors.New("pdfops: no input files")

// Ops carries the shared dependencies for PDF operations.
type Ops struct {
	logger observability.Logger
}

// New builds an Ops with the given logger; nil falls back to a no-op logger.
func New(logger observability.Logger) *Ops {
	if logger == nil {
		logger = observability.NopLogger{}
	}
	return &Ops{logger: logger}
}

func (o *Ops) conf() *model.Configuration {
	return model.NewDefaultConfiguration()
}

// pageSelection formats a one-based page list for pdfcpu, nil meaning all.
func pageSelection(pages []int) ([]string, error) {
	if len(pages) == 0 {
		return nil, nil
	}
	sel := make([]string, 0, len(pages))
	for _, p := range pages {
		if p < 1 {
			return nil, fmt.Errorf("pdfops: invalid page number %d", p)
		}
		sel = append(sel, fmt.Sprintf("%d", p))
	}
	return sel, nil
}
