package ocr

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wudi/convertkit/pdfops"
)

// RecognizeFiles runs OCR over already-encoded image files, strictly in
// order. If the engine supports batching, one batch call is made; otherwise
// inputs are recognized sequentially.
func RecognizeFiles(ctx context.Context, engine Engine, paths []string, opts ...InputOption) ([]Result, error) {
	inputs := make([]Input, 0, len(paths))
	for _, p := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		in, err := InputFromFile(p, opts...)
		if err != nil {
			return nil, fmt.Errorf("build input for %s: %w", filepath.Base(p), err)
		}
		inputs = append(inputs, in)
	}
	return RecognizeInputs(ctx, engine, inputs)
}

// RecognizePDF rasterizes every page of a PDF at the given DPI and runs OCR
// over the rendered pages. Scanned documents without a text layer go through
// here; documents with a text layer are cheaper via pdfops.ExtractText.
func RecognizePDF(ctx context.Context, engine Engine, ops *pdfops.Ops, path string, dpi float64, opts ...InputOption) ([]Result, error) {
	pages, err := ops.RenderPages(ctx, path, dpi)
	if err != nil {
		return nil, err
	}
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	inputs := make([]Input, 0, len(pages))
	for i, page := range pages {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		in, err := InputFromImage(page, id, i, opts...)
		if err != nil {
			return nil, fmt.Errorf("build input for page %d: %w", i, err)
		}
		if in.DPI == 0 {
			in.DPI = int(dpi)
		}
		inputs = append(inputs, in)
	}
	return RecognizeInputs(ctx, engine, inputs)
}

// RecognizeInputs dispatches prepared inputs to the engine, preferring its
// batch interface when available.
func RecognizeInputs(ctx context.Context, engine Engine, inputs []Input) ([]Result, error) {
	if b, ok := engine.(BatchEngine); ok {
		return b.RecognizeBatch(ctx, inputs)
	}
	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		res, err := engine.Recognize(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("recognize %s: %w", in.ID, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// PlainText joins the plain text of a result set with blank lines, in input
// order.
func PlainText(results []Result) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.PlainText != "" {
			parts = append(parts, r.PlainText)
		}
	}
	return strings.Join(parts, "\n\n")
}
