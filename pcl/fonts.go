/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/pclkit/pclkit/common"
	"github.com/pclkit/pclkit/pcl/softfont"
)

// DefaultFont is the font selected when a document is created without one.
const DefaultFont = "Helvetica"

// DefaultFontSize is the initial font size in points.
const DefaultFontSize = 12

// builtinFonts maps the standard font names to the Go fonts.
var builtinFonts = map[string][]byte{
	"Courier":               gomono.TTF,
	"Courier-Bold":          gomonobold.TTF,
	"Courier-Oblique":       gomonoitalic.TTF,
	"Courier-BoldOblique":   gomonobolditalic.TTF,
	"Helvetica":             goregular.TTF,
	"Helvetica-Bold":        gobold.TTF,
	"Helvetica-Oblique":     goitalic.TTF,
	"Helvetica-BoldOblique": gobolditalic.TTF,
	"Times-Roman":           gomedium.TTF,
	"Times-Bold":            gobold.TTF,
	"Times-Italic":          gomediumitalic.TTF,
	"Times-BoldItalic":      gobolditalic.TTF,
}

// Font is a soft font of a document. IDs are assigned in the order fonts are first selected,
// starting at 1.
type Font struct {
	ID       int
	Name     string
	SoftFont *softfont.SoftFont

	upem                         float64
	ascender, descender, lineGap float64
}

// Ascender returns the ascender at `size` points.
func (f *Font) Ascender(size float64) float64 {
	return f.ascender / f.upem * size
}

// Descender returns the (negative) descender at `size` points.
func (f *Font) Descender(size float64) float64 {
	return f.descender / f.upem * size
}

// LineHeight returns the distance between baselines at `size` points. The font's line gap is
// included if `includeGap` is true.
func (f *Font) LineHeight(size float64, includeGap bool) float64 {
	h := f.ascender - f.descender
	if includeGap {
		h += f.lineGap
	}
	return h / f.upem * size
}

// WidthOfString returns the advance width of `s` at `size` points.
func (f *Font) WidthOfString(s string, size float64) float64 {
	var w float64
	for _, r := range s {
		w += f.SoftFont.AdvanceWidth(r)
	}
	return w * size
}

// fontEntry is a registered font: in memory data or a file path.
type fontEntry struct {
	data []byte
	path string
}

// FontManager loads fonts, converts them to soft fonts and caches them by name.
type FontManager struct {
	cfg        softfont.Config
	registered map[string]fontEntry
	cache      map[string]*Font
	nextID     int
}

// NewFontManager returns a manager building soft fonts with `cfg`. The standard font names are
// registered.
func NewFontManager(cfg softfont.Config) *FontManager {
	m := &FontManager{
		cfg:        cfg,
		registered: map[string]fontEntry{},
		cache:      map[string]*Font{},
	}
	for name, data := range builtinFonts {
		m.registered[name] = fontEntry{data: data}
	}
	return m
}

// RegisterFont makes the font `src` available as `name`. `src` is the font file data ([]byte) or a
// file path (string). A path that does not exist is looked up as a system font file name, e.g.
// "DejaVuSans.ttf".
func (m *FontManager) RegisterFont(name string, src interface{}) error {
	switch t := src.(type) {
	case []byte:
		m.registered[name] = fontEntry{data: t}
	case string:
		path, err := resolveFontPath(t)
		if err != nil {
			return err
		}
		m.registered[name] = fontEntry{path: path}
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
	}
	delete(m.cache, name)
	return nil
}

// Font returns the font registered as `name`, or the font at the file path `name`. The soft font
// is built once per name.
func (m *FontManager) Font(name string) (*Font, error) {
	if f, ok := m.cache[name]; ok {
		return f, nil
	}

	entry, ok := m.registered[name]
	if !ok {
		path, err := resolveFontPath(name)
		if err != nil {
			return nil, err
		}
		entry = fontEntry{path: path}
	}
	data := entry.data
	if data == nil {
		var err error
		data, err = os.ReadFile(entry.path)
		if err != nil {
			return nil, err
		}
	}

	src, err := softfont.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", name, err)
	}
	sf, err := softfont.New(src, m.cfg)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", name, err)
	}

	m.nextID++
	head, hhea := src.Head(), src.Hhea()
	f := &Font{
		ID:        m.nextID,
		Name:      name,
		SoftFont:  sf,
		upem:      float64(head.UnitsPerEm),
		ascender:  float64(hhea.Ascender),
		descender: float64(hhea.Descender),
		lineGap:   float64(hhea.LineGap),
	}
	if f.upem == 0 {
		f.upem = 1000
	}
	m.cache[name] = f
	common.Log.Debug("Font %q loaded as id %d", name, f.ID)
	return f, nil
}

// resolveFontPath returns `name` if it is an existing file, else the path of the system font file
// called `name`.
func resolveFontPath(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	path, err := findfont.Find(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownFont, name)
	}
	return path, nil
}
