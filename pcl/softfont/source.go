/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package softfont

import (
	"github.com/pclkit/pclkit/pcl/internal/truetype"
)

// FontSource is the parsed font a soft font is built from. *truetype.Font implements it; other
// outline technologies can be added behind the same view.
type FontSource interface {
	ScalerType() uint32
	Head() truetype.Head
	Hhea() truetype.Hhea
	OS2() (*truetype.OS2, bool)
	PCLT() (*truetype.PCLT, bool)
	CharacterSet() []rune
	GlyphIndex(r rune) (truetype.GlyphIndex, bool)
	AdvanceWidth(gid truetype.GlyphIndex) uint16
	GlyphBounds(gid truetype.GlyphIndex) (xMin, yMin, xMax, yMax int16, ok bool)
	GlyphData(gid truetype.GlyphIndex) ([]byte, error)
	TableRecord(tag string) (truetype.TableRecord, bool)
	TableData(tag string) []byte
	FullName() string
}

var _ FontSource = (*truetype.Font)(nil)

// ParseFont parses the truetype font file `data`.
func ParseFont(data []byte) (FontSource, error) {
	fnt, err := truetype.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return fnt, nil
}

// ParseFontFile parses the truetype font file at `path`.
func ParseFontFile(path string) (FontSource, error) {
	fnt, err := truetype.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return fnt, nil
}

// glyphIndex returns the glyph of `r`, or .notdef when the font does not map it.
func glyphIndex(src FontSource, r rune) truetype.GlyphIndex {
	gid, _ := src.GlyphIndex(r)
	return gid
}

// glyphHeight returns the bounding box height of the glyph of `r`.
func glyphHeight(src FontSource, r rune) uint16 {
	_, yMin, _, yMax, ok := src.GlyphBounds(glyphIndex(src, r))
	if !ok {
		return 0
	}
	return uint16(int(yMax) - int(yMin))
}
