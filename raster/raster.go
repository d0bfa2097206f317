// Package raster provides the RGBA pixel buffer shared by the image
// processing pipelines. Buffers are plain byte slices in row-major RGBA
// order; every operation allocates its own buffer and nothing is shared
// across invocations.
package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Buffer is a rectangular grid of 8-bit RGBA samples, row-major, with the
// sample for (x, y) starting at Pix[(y*Width+x)*4].
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// New allocates a zeroed buffer of the given dimensions.
func New(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// FromImage copies an image into a fresh buffer. Non-premultiplied color
// values are preserved so alpha edits do not disturb the color channels.
func FromImage(src image.Image) *Buffer {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	b := &Buffer{Width: w, Height: h, Pix: make([]uint8, len(nrgba.Pix))}
	copy(b.Pix, nrgba.Pix)
	return b
}

// ToImage converts the buffer back to a standard library image.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	copy(img.Pix, b.Pix)
	return img
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c color.NRGBA) {
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i+0] = c.R
		b.Pix[i+1] = c.G
		b.Pix[i+2] = c.B
		b.Pix[i+3] = c.A
	}
}

// Alpha extracts the alpha channel into a new w*h slice.
func (b *Buffer) Alpha() []uint8 {
	a := make([]uint8, b.Width*b.Height)
	for i := range a {
		a[i] = b.Pix[i*4+3]
	}
	return a
}

// SetAlpha writes a w*h alpha matte back into the buffer's alpha channel.
// The matte must have the same dimensions as the buffer.
func (b *Buffer) SetAlpha(matte []uint8) {
	for i, a := range matte {
		b.Pix[i*4+3] = a
	}
}

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) color.NRGBA {
	i := (y*b.Width + x) * 4
	return color.NRGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

// Set writes the pixel at (x, y).
func (b *Buffer) Set(x, y int, c color.NRGBA) {
	i := (y*b.Width + x) * 4
	b.Pix[i+0] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
	b.Pix[i+3] = c.A
}
