package pdfops

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// ExtractText pulls the embedded text layer out of the PDF at path. Scanned
// documents with no text layer come back empty; run OCR on rendered pages
// for those.
func (o *Ops) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("pdfops: open %s: %w", path, err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdfops: extract text from %s: %w", path, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return "", fmt.Errorf("pdfops: read text from %s: %w", path, err)
	}
	return buf.String(), nil
}
