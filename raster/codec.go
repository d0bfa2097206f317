package raster

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	_ "image/gif" // register decoders; jpeg and png register via the named imports

	_ "golang.org/x/image/webp"
)

// Decode reads and decodes a JPEG, PNG, WebP or GIF stream into a buffer.
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img), nil
}

// DecodeFile decodes the image file at path.
func DecodeFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// EncodePNG writes the buffer as PNG, preserving the alpha channel.
func EncodePNG(w io.Writer, b *Buffer) error {
	if err := png.Encode(w, b.ToImage()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// EncodeJPEG writes the buffer as JPEG with the given quality (1-100).
// Alpha is discarded; JPEG has no transparency.
func EncodeJPEG(w io.Writer, b *Buffer, quality int) error {
	if err := jpeg.Encode(w, b.ToImage(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}

// WritePNGFile encodes the buffer to a PNG file at path.
func WritePNGFile(path string, b *Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodePNG(f, b)
}
