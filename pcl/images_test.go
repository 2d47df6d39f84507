/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{0, 0, 255, 255})
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageRender(t *testing.T) {
	doc, buf := newTestDocument(t, nil)
	require.NoError(t, doc.Image(testImage(), 10, 20, nil))
	require.NoError(t, doc.End())

	expected := "\x1b%0A\x1b*v6W\x02\x03\x00\x08\x08\x08" +
		"\x1b&a100h200V\x1b*r0F\x1b*t75R\x1b*r1T\x1b*r2S\x1b*t20h10V\x1b*r3A\x1b*b0Y\x1b*b0M" +
		"\x1b*b6W\xff\x00\x00\x00\x00\xff" +
		"\x1b*rC\x1bE"
	out := buf.String()
	require.True(t, strings.HasPrefix(out, letterPrologue))
	assert.Equal(t, expected, strings.TrimPrefix(out, letterPrologue))
}

func TestImagesAfterContent(t *testing.T) {
	doc, buf := newTestDocument(t, nil)
	require.NoError(t, doc.Image(testImage(), 0, 0, nil))
	v := doc.Vector()
	v.Rect(0, 0, 10, 10)
	v.Stroke()
	require.NoError(t, doc.End())

	out := buf.String()
	assert.Less(t, strings.Index(out, "PU0,0;"), strings.Index(out, "\x1b*v6W"))
}

func TestImageTransparency(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{0, 0, 0, 0})
	raster := rasterImage(img, 1, 1)
	assert.Equal(t, []uint8{255, 255, 255, 255}, raster.Pix[:4])
}

func TestImageDownsample(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1000, 100))
	raster := rasterImage(img, 72, 72)
	assert.Equal(t, 300, raster.Bounds().Dx())
	assert.Equal(t, 100, raster.Bounds().Dy())

	raster = rasterImage(img, 720, 72)
	assert.Equal(t, 1000, raster.Bounds().Dx())
}

func TestPlaceImage(t *testing.T) {
	testcases := []struct {
		name       string
		opts       ImageOptions
		x, y, w, h float64
	}{
		{"natural", ImageOptions{}, 10, 10, 200, 100},
		{"width", ImageOptions{Width: 100}, 10, 10, 100, 50},
		{"height", ImageOptions{Height: 200}, 10, 10, 400, 200},
		{"both", ImageOptions{Width: 30, Height: 40}, 10, 10, 30, 40},
		{"scale", ImageOptions{Scale: 0.5}, 10, 10, 100, 50},
		{"fit wide box", ImageOptions{Fit: &[2]float64{100, 100}}, 10, 10, 100, 50},
		{"fit tall box", ImageOptions{Fit: &[2]float64{400, 100}}, 10, 10, 200, 100},
		{"fit centered", ImageOptions{Fit: &[2]float64{100, 100}, Align: AlignCenter, VAlign: VAlignCenter}, 10, 35, 100, 50},
		{"fit bottom right", ImageOptions{Fit: &[2]float64{400, 100}, Align: AlignRight, VAlign: VAlignBottom}, 210, 10, 200, 100},
		{"cover", ImageOptions{Cover: &[2]float64{100, 100}}, 10, 10, 200, 100},
		{"cover centered", ImageOptions{Cover: &[2]float64{100, 100}, Align: AlignCenter}, -40, 10, 200, 100},
	}

	for _, tcase := range testcases {
		t.Run(tcase.name, func(t *testing.T) {
			opts := tcase.opts
			x, y, w, h := placeImage(200, 100, 10, 10, &opts)
			assert.InDelta(t, tcase.x, x, 1e-9)
			assert.InDelta(t, tcase.y, y, 1e-9)
			assert.InDelta(t, tcase.w, w, 1e-9)
			assert.InDelta(t, tcase.h, h, 1e-9)
		})
	}
}

func TestImageFlow(t *testing.T) {
	doc, _ := newTestDocument(t, nil)
	x, y := doc.Position()
	require.NoError(t, doc.Image(testImage(), x, y, &ImageOptions{Width: 20}))
	_, after := doc.Position()
	assert.InDelta(t, y+10, after, 1e-9)

	require.NoError(t, doc.Image(testImage(), 300, 300, nil))
	_, unchanged := doc.Position()
	assert.Equal(t, after, unchanged)
}

func TestImageSources(t *testing.T) {
	data := encodePNG(t, testImage())
	r := newImageRegistry()

	img, err := r.Open(data)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())

	path := filepath.Join(t.TempDir(), "pixel.png")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	img, err = r.Open(path)
	require.NoError(t, err)
	cached, err := r.Open(path)
	require.NoError(t, err)
	assert.Same(t, img, cached)

	_, err = r.Open([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = r.Open(42)
	assert.ErrorIs(t, err, ErrUnsupportedSource)

	_, err = r.Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	doc, _ := newTestDocument(t, nil)
	assert.Error(t, doc.Image(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 0, 0, nil))
	assert.Same(t, doc.images, doc.Images())
}
