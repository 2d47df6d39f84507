/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import (
	"math"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"
)

// barcodeDPI is the resolution barcode symbols are rasterized at.
const barcodeDPI = 300

// QRCode draws a QR code of `content` as a `size` x `size` point square at `x`, `y`.
func (d *Document) QRCode(content string, x, y, size float64) error {
	bc, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return err
	}
	n := bc.Bounds().Dx()
	px := modulePixels(n, size)
	scaled, err := barcode.Scale(bc, px, px)
	if err != nil {
		return err
	}
	return d.Image(scaled, x, y, &ImageOptions{Width: size, Height: size})
}

// Code128 draws a Code 128 barcode of `content` in a `w` x `h` point box at `x`, `y`.
func (d *Document) Code128(content string, x, y, w, h float64) error {
	bc, err := code128.Encode(content)
	if err != nil {
		return err
	}
	width := modulePixels(bc.Bounds().Dx(), w)
	height := max(1, int(math.Ceil(h/72*barcodeDPI)))
	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return err
	}
	return d.Image(scaled, x, y, &ImageOptions{Width: w, Height: h})
}

// modulePixels returns the pixel length for `n` modules spanning `pt` points: a whole multiple of
// `n` so that all modules have the same width.
func modulePixels(n int, pt float64) int {
	k := int(pt/72*barcodeDPI) / n
	if k < 1 {
		k = 1
	}
	return n * k
}
