/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import (
	"io"
	"time"

	"github.com/pclkit/pclkit/common"
	"github.com/pclkit/pclkit/pcl/softfont"
)

// Producer is the default Producer and Creator of document metadata.
const Producer = "pclkit"

// Info is the document metadata. It is kept with the document and not printed.
type Info struct {
	Title        string
	Author       string
	Subject      string
	Keywords     string
	Creator      string
	Producer     string
	CreationDate time.Time
}

// Options configures a document. The zero value is valid: letter pages with one inch margins and
// 12 point Helvetica bound to Roman-8.
type Options struct {
	PageOptions

	// Font is the initially selected font name, DefaultFont if empty.
	Font string
	// FontSize is the initial font size, DefaultFontSize if zero.
	FontSize float64
	// FontConfig selects the symbol set and code range of the soft fonts.
	FontConfig softfont.Config

	Info *Info
}

// Document composes pages and writes them as a PCL stream. Pages are written when the next page
// is added and when the document ends. A Document is not safe for concurrent use.
type Document struct {
	opts   Options
	info   Info
	stream *Stream

	fonts  *FontManager
	vector *VectorState
	images *ImageRegistry
	page   *Page

	font     *Font
	fontSize float64
	lineGap  float64
	x, y     float64

	ended bool
}

// New returns a document writing to `w`. `opts` may be nil.
func New(w io.Writer, opts *Options) (*Document, error) {
	if opts == nil {
		opts = &Options{}
	}
	d := &Document{
		opts:     *opts,
		stream:   NewStream(w),
		fonts:    NewFontManager(opts.FontConfig),
		images:   newImageRegistry(),
		fontSize: DefaultFontSize,
	}
	d.info = Info{Creator: Producer, Producer: Producer, CreationDate: time.Now()}
	if opts.Info != nil {
		d.info.override(*opts.Info)
	}
	d.vector = newVectorState(d)
	if err := d.startPage(&d.opts.PageOptions); err != nil {
		return nil, err
	}

	name := opts.Font
	if name == "" {
		name = DefaultFont
	}
	size := opts.FontSize
	if size == 0 {
		size = DefaultFontSize
	}
	if err := d.Font(name, size); err != nil {
		return nil, err
	}
	return d, nil
}

// Info returns the document metadata.
func (d *Document) Info() Info {
	return d.info
}

// Page returns the page being composed.
func (d *Document) Page() *Page {
	return d.page
}

// Vector returns the path and graphics state of the document.
func (d *Document) Vector() *VectorState {
	return d.vector
}

// Fonts returns the font manager of the document.
func (d *Document) Fonts() *FontManager {
	return d.fonts
}

// Images returns the image cache of the document.
func (d *Document) Images() *ImageRegistry {
	return d.images
}

// Position returns the cursor position used by flowing text and images.
func (d *Document) Position() (x, y float64) {
	return d.x, d.y
}

// SetPosition moves the cursor to `x`, `y`.
func (d *Document) SetPosition(x, y float64) {
	d.x, d.y = x, y
}

// AddPage writes the current page, ejects it and starts a new one configured by `opts`. A nil
// `opts` uses the document's page options. The cursor moves to the top left margin and the
// transform is reset.
func (d *Document) AddPage(opts *PageOptions) error {
	if opts == nil {
		opts = &d.opts.PageOptions
	}
	page, err := newPage(opts)
	if err != nil {
		return err
	}
	d.page.render(d.stream)
	d.stream.WritePCL("\x1b&l0H") // eject
	d.setPage(page)
	return nil
}

// End writes the last page and a printer reset, and flushes the stream. The underlying writer is
// not closed.
func (d *Document) End() error {
	if d.ended {
		return d.stream.Err()
	}
	d.ended = true
	d.page.render(d.stream)
	d.stream.WritePCL("\x1bE")
	return d.stream.End()
}

func (d *Document) startPage(opts *PageOptions) error {
	page, err := newPage(opts)
	if err != nil {
		return err
	}
	d.setPage(page)
	return nil
}

func (d *Document) setPage(page *Page) {
	d.page = page
	d.x, d.y = d.page.Margins.Left, d.page.Margins.Top
	d.vector.resetCTM()
	common.Log.Trace("Page %.2fx%.2f", d.page.Width, d.page.Height)
}

// add records `dr` on the current page.
func (d *Document) add(dr drawing) {
	d.page.add(dr)
}

// Font selects the font `name` at `size` points. A size of 0 keeps the current size.
func (d *Document) Font(name string, size float64) error {
	f, err := d.fonts.Font(name)
	if err != nil {
		return err
	}
	d.font = f
	if size != 0 {
		d.fontSize = size
	}
	return nil
}

// FontSize sets the size of following text.
func (d *Document) FontSize(size float64) {
	d.fontSize = size
}

// CurrentFont returns the selected font and size.
func (d *Document) CurrentFont() (*Font, float64) {
	return d.font, d.fontSize
}

// RegisterFont makes the font `src` available as `name`. See FontManager.RegisterFont.
func (d *Document) RegisterFont(name string, src interface{}) error {
	return d.fonts.RegisterFont(name, src)
}

func (i *Info) override(o Info) {
	if o.Title != "" {
		i.Title = o.Title
	}
	if o.Author != "" {
		i.Author = o.Author
	}
	if o.Subject != "" {
		i.Subject = o.Subject
	}
	if o.Keywords != "" {
		i.Keywords = o.Keywords
	}
	if o.Creator != "" {
		i.Creator = o.Creator
	}
	if o.Producer != "" {
		i.Producer = o.Producer
	}
	if !o.CreationDate.IsZero() {
		i.CreationDate = o.CreationDate
	}
}
