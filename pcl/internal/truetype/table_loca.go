/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/pclkit/pclkit/common"
)

// locaTable represents the Index to Location (loca) table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/loca
type locaTable struct {
	// The extra entry at the end helps calculating the length of the last glyph data element.
	offsetsShort []offset16 // short format. (numGlyphs+1 entries).
	offsetsLong  []offset32 // long format. (numGlyphs+1 entries).
}

// glyphDataOffset returns offset and length for glyph index `gid`. The offset is relative to
// the beginning of the glyf table. The end of the last glyph is clamped to `glyfLen`.
func (f *font) glyphDataOffset(gid GlyphIndex, glyfLen int64) (offset int64, length int64, err error) {
	if f.loca == nil || f.head == nil {
		common.Log.Debug("loca or head missing")
		return 0, 0, errRequiredField
	}
	if int(gid) >= int(f.maxp.numGlyphs) {
		return 0, 0, errRangeCheck
	}

	var offset1, offset2 int64
	if f.head.indexToLocFormat == 0 {
		offset1 = 2 * int64(f.loca.offsetsShort[gid])
		offset2 = 2 * int64(f.loca.offsetsShort[gid+1])
	} else {
		offset1 = int64(f.loca.offsetsLong[gid])
		offset2 = int64(f.loca.offsetsLong[gid+1])
	}
	if int(gid) == int(f.maxp.numGlyphs)-1 || offset2 > glyfLen {
		offset2 = glyfLen
	}
	if offset1 > offset2 {
		common.Log.Debug("Invalid loca entry for glyph %d (%d > %d)", gid, offset1, offset2)
		return 0, 0, errRangeCheck
	}
	return offset1, offset2 - offset1, nil
}

func (f *font) parseLoca(r *byteReader) (*locaTable, error) {
	if f.head == nil || f.maxp == nil {
		common.Log.Debug("head or maxp not set - required missing")
		return nil, errRequiredField
	}

	_, has, err := f.seekToTable(r, "loca")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}

	loca := &locaTable{}
	numGlyphs := int(f.maxp.numGlyphs)

	if f.head.indexToLocFormat == 0 {
		err = r.readSlice(&loca.offsetsShort, numGlyphs+1)
	} else {
		err = r.readSlice(&loca.offsetsLong, numGlyphs+1)
	}
	if err != nil {
		return nil, err
	}
	return loca, nil
}
