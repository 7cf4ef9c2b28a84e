// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgsrc

import (
	"encoding/binary"
	"image"

	"cogentcore.org/imgsrc/base/iox/imagex"
)

// ColorFormat is the pixel layout of a [RawImage]. All values are below
// 0x20, so the first header byte of a raw image can never be mistaken for
// the [Sentinel] or for printable path text by [Classify].
type ColorFormat uint8 //enums:enum -trimprefix Color

const (
	ColorUnknown ColorFormat = iota

	// RGBA8888 is 8 bits per channel in R, G, B, A order, alpha premultiplied as in image.RGBA.
	ColorRGBA8888

	// RGB565 is 16 bits per pixel, little endian.
	ColorRGB565

	// Alpha8 is an 8 bit alpha mask.
	ColorAlpha8

	// Raw is data in a format only a custom decoder understands.
	ColorRaw

	// RawAlpha is like Raw, with an alpha channel.
	ColorRawAlpha
)

// Header describes the pixels of a [RawImage].
type Header struct {
	Format ColorFormat
	Width  int
	Height int
}

// headerLen is the size of the in-memory header block
// as presented to the legacy convention.
const headerLen = 5

// bytes returns the header in its legacy block layout:
// format, then width and height as little endian uint16.
func (h Header) bytes() []byte {
	b := make([]byte, headerLen)
	b[0] = byte(h.Format) & 0x1f
	binary.LittleEndian.PutUint16(b[1:], uint16(h.Width))
	binary.LittleEndian.PutUint16(b[3:], uint16(h.Height))
	return b
}

// RawImage is an image that has already been decoded into a pixel buffer.
// It can be used as a [Variable] source through [Source.SetRaw].
type RawImage struct {
	Header Header

	// Data is the pixel data in the layout given by Header.Format.
	Data []byte
}

// Size returns the size of the pixel data in bytes.
func (r *RawImage) Size() int {
	return len(r.Data)
}

// FromImage returns a [ColorRGBA8888] raw image with the pixels of img.
// The pixel data is shared with img when it is already an [*image.RGBA]
// with a tight stride.
func FromImage(img image.Image) *RawImage {
	rgba := imagex.AsRGBA(img)
	if rgba == nil {
		return nil
	}
	sz := rgba.Rect.Size()
	data := rgba.Pix
	if rgba.Stride != 4*sz.X {
		data = make([]byte, 0, 4*sz.X*sz.Y)
		for y := 0; y < sz.Y; y++ {
			off := y * rgba.Stride
			data = append(data, rgba.Pix[off:off+4*sz.X]...)
		}
	}
	return &RawImage{
		Header: Header{Format: ColorRGBA8888, Width: sz.X, Height: sz.Y},
		Data:   data,
	}
}

// Image returns an [*image.RGBA] sharing the pixel data, for
// [ColorRGBA8888] images. It returns nil for other formats or when
// the data is too short for the header size.
func (r *RawImage) Image() *image.RGBA {
	h := r.Header
	if h.Format != ColorRGBA8888 || len(r.Data) < 4*h.Width*h.Height {
		return nil
	}
	return &image.RGBA{
		Pix:    r.Data,
		Stride: 4 * h.Width,
		Rect:   image.Rect(0, 0, h.Width, h.Height),
	}
}
