/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"encoding/binary"
)

// glyphHeaderLen is the size of the glyph description header: numberOfContours and the
// bounding box.
const glyphHeaderLen = 10

// glyphData returns the raw glyf bytes of `gid` as addressed by the loca table. Empty glyphs
// (such as space) have a zero length slice.
func (f *font) glyphData(gid GlyphIndex) ([]byte, error) {
	glyf := f.tableData("glyf")
	offset, length, err := f.glyphDataOffset(gid, int64(len(glyf)))
	if err != nil {
		return nil, err
	}
	return glyf[offset : offset+length], nil
}

// glyphBounds returns the bounding box stored in the glyph header of `gid`. The bool flag is
// false for empty glyphs.
func (f *font) glyphBounds(gid GlyphIndex) (xMin, yMin, xMax, yMax int16, ok bool) {
	data, err := f.glyphData(gid)
	if err != nil || len(data) < glyphHeaderLen {
		return 0, 0, 0, 0, false
	}
	xMin = int16(binary.BigEndian.Uint16(data[2:]))
	yMin = int16(binary.BigEndian.Uint16(data[4:]))
	xMax = int16(binary.BigEndian.Uint16(data[6:]))
	yMax = int16(binary.BigEndian.Uint16(data[8:]))
	return xMin, yMin, xMax, yMax, true
}
