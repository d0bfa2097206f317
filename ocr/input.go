package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// InputOption mutates an OCR input before submission.
type InputOption func(*Input)

// WithLanguages sets language hints on the OCR input.
func WithLanguages(langs ...string) InputOption {
	return func(in *Input) { in.Languages = append([]string(nil), langs...) }
}

// WithRegion sets the recognition region on the OCR input.
func WithRegion(region Region) InputOption {
	return func(in *Input) {
		if region.IsEmpty() {
			in.Region = nil
			return
		}
		in.Region = &region
	}
}

// WithDPI overrides the DPI value on the OCR input.
func WithDPI(dpi int) InputOption {
	return func(in *Input) { in.DPI = dpi }
}

// WithMetadata sets provider-specific metadata for the input.
func WithMetadata(metadata map[string]string) InputOption {
	return func(in *Input) {
		if len(metadata) == 0 {
			in.Metadata = nil
			return
		}
		in.Metadata = make(map[string]string, len(metadata))
		for k, v := range metadata {
			in.Metadata[k] = v
		}
	}
}

// InputFromFile reads an already-encoded image file into an OCR input. The
// ID is the file's base name so results correlate with batch entries.
func InputFromFile(path string, opts ...InputOption) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("read image: %w", err)
	}
	in := Input{
		ID:     filepath.Base(path),
		Image:  data,
		Format: formatForExt(filepath.Ext(path)),
		Page:   -1,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in, nil
}

// InputFromImage PNG-encodes a decoded image into an OCR input. Used for
// rendered PDF pages, where page is the zero-based page index baked into
// the generated ID.
func InputFromImage(img image.Image, id string, page int, opts ...InputOption) (Input, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Input{}, fmt.Errorf("encode page image: %w", err)
	}
	in := Input{
		ID:     fmt.Sprintf("%s-page-%d", id, page),
		Image:  buf.Bytes(),
		Format: ImageFormatPNG,
		Page:   page,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in, nil
}

func formatForExt(ext string) ImageFormat {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return ImageFormatJPEG
	case ".tif", ".tiff":
		return ImageFormatTIFF
	default:
		return ImageFormatPNG
	}
}
