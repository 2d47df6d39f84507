/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import (
	"fmt"
	"strconv"
	"strings"
)

// PageSize is a portrait page size in points.
type PageSize [2]float64

// Common page sizes.
var (
	PageSizeLetter    = PageSize{612, 792}
	PageSizeLegal     = PageSize{612, 1008}
	PageSizeExecutive = PageSize{521.86, 756}
	PageSizeLedger    = PageSize{792, 1224}
	PageSizeTabloid   = PageSizeLedger
	PageSizeA3        = PageSize{841.89, 1190.55}
	PageSizeA4        = PageSize{595.28, 841.89}
	PageSizeA5        = PageSize{419.53, 595.28}
)

// pageSizeCodes are the ESC&l#A values of the page sizes the printer knows.
var pageSizeCodes = map[PageSize]int{
	PageSizeExecutive: 1,
	PageSizeLetter:    2,
	PageSizeLegal:     3,
	PageSizeLedger:    6,
	PageSizeA5:        25,
	PageSizeA4:        26,
	PageSizeA3:        27,
}

var pageSizeNames = map[string]PageSize{
	"LETTER":    PageSizeLetter,
	"LEGAL":     PageSizeLegal,
	"EXECUTIVE": PageSizeExecutive,
	"LEDGER":    PageSizeLedger,
	"TABLOID":   PageSizeTabloid,
	"A3":        PageSizeA3,
	"A4":        PageSizeA4,
	"A5":        PageSizeA5,
}

// PageSizeByName returns the page size called `name`, e.g. "A4" or "letter".
func PageSizeByName(name string) (PageSize, bool) {
	sz, ok := pageSizeNames[strings.ToUpper(name)]
	return sz, ok
}

// Layout is the page orientation.
type Layout int

// Page orientations.
const (
	LayoutPortrait Layout = iota
	LayoutLandscape
)

// Margins are page margins in points.
type Margins struct {
	Top, Left, Bottom, Right float64
}

// DefaultMargin is the margin used on all sides when none is given: one inch.
const DefaultMargin = 72

// UniformMargins returns margins of `m` points on all sides.
func UniformMargins(m float64) Margins {
	return Margins{Top: m, Left: m, Bottom: m, Right: m}
}

// PageOptions configures a page. The zero value is a portrait letter page with one inch margins.
type PageOptions struct {
	Size    PageSize
	Layout  Layout
	Margins *Margins
}

// drawing is page content rendered when the page is written.
type drawing interface {
	render(s *Stream)
}

// Page is a page being composed. Its content is recorded and written to the stream when the page
// is finished.
type Page struct {
	Size    PageSize
	Layout  Layout
	Margins Margins

	// Width and Height in points in the orientation of the page.
	Width, Height float64

	fonts   []pageFont
	content []drawing
	images  []*imageDrawing
}

func newPage(opts *PageOptions) (*Page, error) {
	if opts == nil {
		opts = &PageOptions{}
	}
	if opts.Size != (PageSize{}) && (opts.Size[0] <= 0 || opts.Size[1] <= 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPageSize, opts.Size)
	}
	p := &Page{
		Size:    opts.Size,
		Layout:  opts.Layout,
		Margins: UniformMargins(DefaultMargin),
	}
	if p.Size == (PageSize{}) {
		p.Size = PageSizeLetter
	}
	if opts.Margins != nil {
		p.Margins = *opts.Margins
	}
	p.Width, p.Height = p.Size[0], p.Size[1]
	if p.Layout == LayoutLandscape {
		p.Width, p.Height = p.Height, p.Width
	}
	return p, nil
}

// InnerWidth returns the width between the left and right margins.
func (p *Page) InnerWidth() float64 {
	return p.Width - p.Margins.Left - p.Margins.Right
}

// InnerHeight returns the height between the top and bottom margins.
func (p *Page) InnerHeight() float64 {
	return p.Height - p.Margins.Top - p.Margins.Bottom
}

// MaxY returns the lowest position content may extend to.
func (p *Page) MaxY() float64 {
	return p.Height - p.Margins.Bottom
}

// pageFont is a font downloaded with a page and the size it is first used at.
type pageFont struct {
	font *Font
	size float64
}

// useFont records that `f` is used on the page at `size` points.
func (p *Page) useFont(f *Font, size float64) {
	for _, used := range p.fonts {
		if used.font == f {
			return
		}
	}
	p.fonts = append(p.fonts, pageFont{font: f, size: size})
}

func (p *Page) add(d drawing) {
	if img, ok := d.(*imageDrawing); ok {
		p.images = append(p.images, img)
		return
	}
	p.content = append(p.content, d)
}

// render writes the page setup, the downloads of the fonts used on the page, the HP-GL/2
// picture frame and the recorded content. Images are drawn last.
func (p *Page) render(s *Stream) {
	s.WritePCL("\x1b%-12345X") // universal exit
	s.WritePCL("\x1bE")
	s.WritePCL("\x1b&u600D")
	s.WritePCL("\x1b&l1X") // copies
	s.WritePCL("\x1b&l7H") // auto feed
	if p.Layout == LayoutLandscape {
		s.WritePCL("\x1b&l1O")
	} else {
		s.WritePCL("\x1b&l0O")
	}
	if code, ok := pageSizeCodes[p.Size]; ok {
		s.WritePCL("\x1b&l" + strconv.Itoa(code) + "A")
	}
	s.WritePCL("\x1b&l0E")  // top margin
	s.WritePCL("\x1b&l48F") // text length
	s.WritePCL("\x1b&a0h0V")

	for _, pf := range p.fonts {
		pf.font.SoftFont.Emit(s, pf.font.ID, pf.size)
	}

	s.WritePCL("\x1b*c0t" + decipoints(p.Width) + "x" + decipoints(p.Height) + "Y")
	s.WriteHPGL("SP1;")
	// User units in points with the origin at the top left corner.
	s.WriteHPGL("SC0," + formatNumber(p.Width) + "," + formatNumber(p.Height) + ",0;")
	s.WriteHPGL("PA0,0;")

	for _, d := range p.content {
		d.render(s)
	}
	for _, img := range p.images {
		img.render(s)
	}
}
