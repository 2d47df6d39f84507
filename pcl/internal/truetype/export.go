/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"io"
	"os"
	"strings"
)

// Font wraps font for outside access.
type Font struct {
	*font
}

// Parse parses the truetype font from `rs` and returns a new Font.
func Parse(rs io.ReadSeeker) (*Font, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(rs)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// ParseBytes parses the truetype font contained in `data`. The returned Font references `data`,
// which must not be modified afterwards.
func ParseBytes(data []byte) (*Font, error) {
	fnt, err := parseFont(data, newByteReader(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}
	return &Font{font: fnt}, nil
}

// ParseFile parses the truetype font from file given by path.
func ParseFile(filePath string) (*Font, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	defer f.Close()
	return Parse(f)
}

// ValidateFile validates the truetype font given by `filePath`.
func ValidateFile(filePath string) error {
	fnt, err := ParseFile(filePath)
	if err != nil {
		return err
	}
	return fnt.Validate()
}

// Validate checks the table checksums and the whole file checksum of `f`.
func (f *Font) Validate() error {
	return f.validate()
}

// ScalerType returns the sfnt version tag of the font file.
func (f *Font) ScalerType() uint32 {
	return f.ot.sfntVersion
}

// Head returns the font header values.
func (f *Font) Head() Head {
	t := f.head
	return Head{
		UnitsPerEm:       t.unitsPerEm,
		XMin:             t.xMin,
		YMin:             t.yMin,
		XMax:             t.xMax,
		YMax:             t.yMax,
		MacStyle:         t.macStyle,
		IndexToLocFormat: t.indexToLocFormat,
	}
}

// Hhea returns the horizontal header values.
func (f *Font) Hhea() Hhea {
	t := f.hhea
	return Hhea{
		Ascender:         int16(t.ascender),
		Descender:        int16(t.descender),
		LineGap:          int16(t.lineGap),
		AdvanceWidthMax:  uint16(t.advanceWidthMax),
		NumberOfHMetrics: t.numberOfHMetrics,
	}
}

// OS2 returns the OS/2 table if the font has one.
func (f *Font) OS2() (*OS2, bool) {
	if f.os2 == nil {
		return nil, false
	}
	return f.os2.export(), true
}

// PCLT returns the PCLT table if the font has one.
func (f *Font) PCLT() (*PCLT, bool) {
	if f.pclt == nil {
		return nil, false
	}
	return f.pclt.export(), true
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return int(f.maxp.numGlyphs)
}

// CharacterSet returns the code points mapped by the font's cmap, in ascending order.
func (f *Font) CharacterSet() []rune {
	if f.cmap == nil {
		return nil
	}
	runes := make([]rune, 0, f.cmap.charset.Size())
	it := f.cmap.charset.Iterator()
	for it.Next() {
		runes = append(runes, it.Value().(rune))
	}
	return runes
}

// GlyphIndex returns the glyph of code point `r`. The bool flag is false when `r` is not mapped.
func (f *Font) GlyphIndex(r rune) (GlyphIndex, bool) {
	if f.cmap == nil {
		return 0, false
	}
	gid, ok := f.cmap.runes[r]
	return gid, ok
}

// AdvanceWidth returns the horizontal advance of `gid` in font units. Fonts without an hmtx table
// advance every glyph by hhea.advanceWidthMax.
func (f *Font) AdvanceWidth(gid GlyphIndex) uint16 {
	if f.hmtx == nil {
		return uint16(f.hhea.advanceWidthMax)
	}
	return f.hmtx.advanceWidth(gid)
}

// GlyphBounds returns the bounding box of `gid` in font units. The bool flag is false for
// empty or unknown glyphs.
func (f *Font) GlyphBounds(gid GlyphIndex) (xMin, yMin, xMax, yMax int16, ok bool) {
	return f.glyphBounds(gid)
}

// GlyphData returns the raw outline bytes of `gid` sliced from the glyf table.
func (f *Font) GlyphData(gid GlyphIndex) ([]byte, error) {
	return f.glyphData(gid)
}

// TableRecord returns the directory entry of table `tableTag`.
func (f *Font) TableRecord(tableTag string) (TableRecord, bool) {
	tr, ok := f.trec.trMap[strings.TrimSpace(tableTag)]
	if !ok {
		return TableRecord{}, false
	}
	return tr.export(), true
}

// TableData returns the raw bytes of table `tableTag`, or nil if the font has no such table.
func (f *Font) TableData(tableTag string) []byte {
	return f.tableData(tableTag)
}

// FullName returns the full font name, falling back to the PostScript and family names.
func (f *Font) FullName() string {
	for _, id := range []int{nameIDFull, nameIDPostScriptName, nameIDFamily} {
		if s := f.name.nameByID(id); s != "" {
			return s
		}
	}
	return ""
}
