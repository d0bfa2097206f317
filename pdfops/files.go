package pdfops

import (
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/wudi/convertkit/observability"
)

// Merge concatenates the input PDFs into outPath in the given order.
func (o *Ops) Merge(ctx context.Context, inPaths []string, outPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(inPaths) == 0 {
		return ErrNoInput
	}
	if err := api.MergeCreateFile(inPaths, outPath, false, o.conf()); err != nil {
		return fmt.Errorf("pdfops: merge: %w", err)
	}
	o.logger.Info("merged pdfs",
		observability.Int("inputs", len(inPaths)),
		observability.String("out", outPath))
	return nil
}

// Split writes spans of `span` pages from inPath as separate files into
// outDir. span=1 produces one file per page.
func (o *Ops) Split(ctx context.Context, inPath, outDir string, span int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if span < 1 {
		return fmt.Errorf("pdfops: split span must be >= 1, got %d", span)
	}
	if err := api.SplitFile(inPath, outDir, span, o.conf()); err != nil {
		return fmt.Errorf("pdfops: split: %w", err)
	}
	return nil
}

// Optimize rewrites inPath with pdfcpu's size optimizations (duplicate
// object elimination, stream compression) into outPath.
func (o *Ops) Optimize(ctx context.Context, inPath, outPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := api.OptimizeFile(inPath, outPath, o.conf()); err != nil {
		return fmt.Errorf("pdfops: optimize: %w", err)
	}
	o.logger.Info("optimized pdf",
		observability.String("in", inPath),
		observability.String("out", outPath))
	return nil
}
