/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/disintegration/imaging"

	// Decoders beyond those registered by imaging.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pclkit/pclkit/common"
)

// Raster settings of image downloads.
const (
	rasterResolution = 75 // dpi set with ESC*t#R.

	// maxImageDPI limits the source resolution sent for the destination box.
	maxImageDPI = 300
)

// configureImageData is the ESC*v6W payload: sRGB, direct by pixel, 8 bits per component.
var configureImageData = []byte{0x02, 0x03, 0x00, 0x08, 0x08, 0x08}

// VAlign is the vertical alignment of fitted images.
type VAlign int

// Vertical alignments.
const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

// ImageOptions configures the size of an image. Without options an image is drawn one point per
// pixel. Width or Height alone keep the aspect ratio, Fit and Cover scale into a box.
type ImageOptions struct {
	Width, Height float64
	Scale         float64
	Fit           *[2]float64
	Cover         *[2]float64

	// Alignment within the Fit or Cover box.
	Align  Align
	VAlign VAlign
}

// ImageRegistry caches images opened by path.
type ImageRegistry struct {
	images map[string]image.Image
}

func newImageRegistry() *ImageRegistry {
	return &ImageRegistry{images: map[string]image.Image{}}
}

// Open returns the image of `src`: a file path (string), encoded image data ([]byte) or an
// image.Image. JPEG orientation tags are applied.
func (r *ImageRegistry) Open(src interface{}) (image.Image, error) {
	switch t := src.(type) {
	case image.Image:
		return t, nil
	case []byte:
		img, err := imaging.Decode(bytes.NewReader(t), imaging.AutoOrientation(true))
		return img, imageError(err)
	case string:
		if img, ok := r.images[t]; ok {
			return img, nil
		}
		img, err := imaging.Open(t, imaging.AutoOrientation(true))
		if err != nil {
			return nil, imageError(err)
		}
		r.images[t] = img
		return img, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
}

func imageError(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	return err
}

// Image draws `src` with its top left corner at `x`, `y`. See ImageRegistry.Open for the sources
// accepted. If `y` is the cursor position the cursor moves below the image. `opts` may be nil.
func (d *Document) Image(src interface{}, x, y float64, opts *ImageOptions) error {
	if opts == nil {
		opts = &ImageOptions{}
	}
	img, err := d.images.Open(src)
	if err != nil {
		return err
	}
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("%w: empty image", ErrUnsupportedImage)
	}

	x, y, w, h := placeImage(float64(b.Dx()), float64(b.Dy()), x, y, opts)
	if d.y == y {
		d.y += h
	}
	d.add(&imageDrawing{x: x, y: y, w: w, h: h, img: img})
	return nil
}

// placeImage returns the position and size of an image of `iw` x `ih` pixels drawn at `x`, `y`.
func placeImage(iw, ih, x, y float64, opts *ImageOptions) (float64, float64, float64, float64) {
	w, h := iw, ih
	var box [2]float64
	switch {
	case opts.Width != 0 && opts.Height != 0:
		w, h = opts.Width, opts.Height
	case opts.Width != 0:
		w, h = opts.Width, ih*opts.Width/iw
	case opts.Height != 0:
		w, h = iw*opts.Height/ih, opts.Height
	case opts.Scale != 0:
		w, h = iw*opts.Scale, ih*opts.Scale
	case opts.Fit != nil:
		box = *opts.Fit
		if iw/ih > box[0]/box[1] {
			w, h = box[0], box[0]*ih/iw
		} else {
			w, h = box[1]*iw/ih, box[1]
		}
	case opts.Cover != nil:
		box = *opts.Cover
		if iw/ih > box[0]/box[1] {
			w, h = box[1]*iw/ih, box[1]
		} else {
			w, h = box[0], box[0]*ih/iw
		}
	}

	if box != ([2]float64{}) {
		switch opts.Align {
		case AlignCenter:
			x += box[0]/2 - w/2
		case AlignRight:
			x += box[0] - w
		}
		switch opts.VAlign {
		case VAlignCenter:
			y += box[1]/2 - h/2
		case VAlignBottom:
			y += box[1] - h
		}
	}
	return x, y, w, h
}

// imageDrawing is an image drawn as raster graphics.
type imageDrawing struct {
	x, y, w, h float64
	img        image.Image
}

func (d *imageDrawing) render(s *Stream) {
	img := rasterImage(d.img, d.w, d.h)
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	s.WritePCL("\x1b*v6W")
	s.WriteBinary(configureImageData)
	s.WritePCL("\x1b&a" + decipoints(d.x) + "h" + decipoints(d.y) + "V")
	s.WritePCL("\x1b*r0F") // logical page orientation
	s.WritePCL("\x1b*t" + strconv.Itoa(rasterResolution) + "R")
	s.WritePCL("\x1b*r" + strconv.Itoa(height) + "T")
	s.WritePCL("\x1b*r" + strconv.Itoa(width) + "S")
	s.WritePCL("\x1b*t" + decipoints(d.w) + "H")
	s.WritePCL("\x1b*t" + decipoints(d.h) + "V")
	s.WritePCL("\x1b*r3A") // start at the cursor
	s.WritePCL("\x1b*b0Y")
	s.WritePCL("\x1b*b0M") // no compression

	row := make([]byte, 3*width)
	for y := 0; y < height; y++ {
		line := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			copy(row[3*x:3*x+3], line[4*x:4*x+3])
		}
		s.WritePCL("\x1b*b" + strconv.Itoa(len(row)) + "W")
		s.WriteBinary(row)
	}
	s.WritePCL("\x1b*rC")
}

// rasterImage returns `img` composed over white, downsampled when it has more pixels than
// maxImageDPI needs for a `w` x `h` point box.
func rasterImage(img image.Image, w, h float64) *image.NRGBA {
	b := img.Bounds()
	maxW := int(math.Ceil(w / 72 * maxImageDPI))
	maxH := int(math.Ceil(h / 72 * maxImageDPI))
	if maxW > 0 && maxH > 0 && (b.Dx() > maxW || b.Dy() > maxH) {
		nw, nh := min(b.Dx(), maxW), min(b.Dy(), maxH)
		common.Log.Debug("Resampling image %dx%d to %dx%d", b.Dx(), b.Dy(), nw, nh)
		img = imaging.Resize(img, nw, nh, imaging.Lanczos)
		b = img.Bounds()
	}
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}
