/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/pclkit/pclkit/common"
)

// cmapTable represents a Character to Glyph Index Mapping Table (cmap).
// This table defines the mapping of character codes to the glyph index values used
// in the font.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
type cmapTable struct {
	version         uint16
	numTables       uint16
	encodingRecords []encodingRecord // len == numTables

	// Unicode mapping of the preferred subtable.
	runes    map[rune]GlyphIndex
	charset  *treeset.Set
	platform uint16
	encoding uint16
}

type encodingRecord struct {
	platformID uint16
	encodingID uint16
	offset     offset32
}

// cmapPreference lists the (platform, encoding) pairs tried for the Unicode mapping, best first.
// An encoding of -1 matches any encoding of the platform.
var cmapPreference = []struct {
	platformID uint16
	encodingID int
}{
	{3, 10}, // Windows, Unicode full repertoire.
	{0, 6},  // Unicode full repertoire.
	{0, 4},  // Unicode 2.0 full repertoire.
	{3, 1},  // Windows, Unicode BMP.
	{0, 3},  // Unicode 2.0 BMP.
	{0, -1},
	{3, 0}, // Windows, symbol.
	{1, 0}, // Macintosh, Roman.
}

func (f *font) parseCmap(r *byteReader) (*cmapTable, error) {
	tr, has, err := f.seekToTable(r, "cmap")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("cmap table absent")
		return nil, nil
	}

	t := &cmapTable{}
	err = r.read(&t.version, &t.numTables)
	if err != nil {
		return nil, err
	}

	for i := 0; i < int(t.numTables); i++ {
		var er encodingRecord
		err = r.read(&er.platformID, &er.encodingID, &er.offset)
		if err != nil {
			return nil, err
		}
		if uint32(er.offset) >= tr.length {
			common.Log.Debug("cmap subtable offset outside table")
			return nil, errRangeCheck
		}
		t.encodingRecords = append(t.encodingRecords, er)
	}

	for _, pref := range cmapPreference {
		for _, er := range t.encodingRecords {
			if er.platformID != pref.platformID || (pref.encodingID >= 0 && int(er.encodingID) != pref.encodingID) {
				continue
			}
			err = r.Seek(int64(tr.offset) + int64(er.offset))
			if err != nil {
				return nil, err
			}
			runes, err := parseCmapSubtable(r, er)
			if err == errUnsupportedCmap {
				common.Log.Debug("Skipping cmap subtable (%d,%d)", er.platformID, er.encodingID)
				continue
			}
			if err != nil {
				return nil, err
			}
			t.setRunes(runes)
			t.platform, t.encoding = er.platformID, er.encodingID
			return t, nil
		}
	}

	common.Log.Debug("No usable cmap subtable")
	t.setRunes(map[rune]GlyphIndex{})
	return t, nil
}

func (t *cmapTable) setRunes(runes map[rune]GlyphIndex) {
	t.runes = runes
	t.charset = treeset.NewWith(utils.Int32Comparator)
	for r := range runes {
		t.charset.Add(r)
	}
}

// parseCmapSubtable parses the subtable at the current position of `r` and returns the mapping
// from character code to glyph index. Codes mapping to glyph 0 are left out.
func parseCmapSubtable(r *byteReader, er encodingRecord) (map[rune]GlyphIndex, error) {
	var format uint16
	if err := r.read(&format); err != nil {
		return nil, err
	}

	runes := map[rune]GlyphIndex{}
	add := func(code uint32, gid GlyphIndex) {
		if gid == 0 || code == 0xFFFF {
			return
		}
		if er.platformID == 3 && er.encodingID == 0 && code >= 0xF000 && code <= 0xF0FF {
			// Symbol fonts map their codes into the private use area.
			code -= 0xF000
		}
		runes[rune(code)] = gid
	}

	switch format {
	case 0:
		var length, language uint16
		if err := r.read(&length, &language); err != nil {
			return nil, err
		}
		var gids []uint8
		if err := r.readSlice(&gids, 256); err != nil {
			return nil, err
		}
		for code, gid := range gids {
			add(uint32(code), GlyphIndex(gid))
		}

	case 4:
		var length, language, segCountX2, searchRange, entrySelector, rangeShift uint16
		if err := r.read(&length, &language, &segCountX2, &searchRange, &entrySelector, &rangeShift); err != nil {
			return nil, err
		}
		segCount := int(segCountX2 / 2)
		var endCodes, startCodes, idRangeOffsets []uint16
		var idDeltas []int16
		var reserved uint16
		if err := r.readSlice(&endCodes, segCount); err != nil {
			return nil, err
		}
		if err := r.read(&reserved); err != nil {
			return nil, err
		}
		if err := r.readSlice(&startCodes, segCount); err != nil {
			return nil, err
		}
		if err := r.readSlice(&idDeltas, segCount); err != nil {
			return nil, err
		}
		if err := r.readSlice(&idRangeOffsets, segCount); err != nil {
			return nil, err
		}
		// The glyph id array fills the rest of the subtable.
		numGlyphIDs := (int(length) - 16 - 8*segCount) / 2
		if numGlyphIDs < 0 {
			numGlyphIDs = 0
		}
		var glyphIDs []uint16
		if err := r.readSlice(&glyphIDs, numGlyphIDs); err != nil {
			return nil, err
		}

		for i := 0; i < segCount; i++ {
			start, end := uint32(startCodes[i]), uint32(endCodes[i])
			for code := start; code <= end && code != 0xFFFF; code++ {
				if idRangeOffsets[i] == 0 {
					add(code, GlyphIndex(uint16(int(code)+int(idDeltas[i]))))
					continue
				}
				// idRangeOffset is relative to its own position in the idRangeOffsets array.
				idx := int(idRangeOffsets[i])/2 + int(code-start) - (segCount - i)
				if idx < 0 || idx >= len(glyphIDs) {
					continue
				}
				gid := glyphIDs[idx]
				if gid != 0 {
					gid = uint16(int(gid) + int(idDeltas[i]))
				}
				add(code, GlyphIndex(gid))
			}
		}

	case 6:
		var length, language, firstCode, entryCount uint16
		if err := r.read(&length, &language, &firstCode, &entryCount); err != nil {
			return nil, err
		}
		var gids []uint16
		if err := r.readSlice(&gids, int(entryCount)); err != nil {
			return nil, err
		}
		for i, gid := range gids {
			add(uint32(firstCode)+uint32(i), GlyphIndex(gid))
		}

	case 12:
		var reserved uint16
		var length, language, numGroups uint32
		if err := r.read(&reserved, &length, &language, &numGroups); err != nil {
			return nil, err
		}
		for i := 0; i < int(numGroups); i++ {
			var startCode, endCode, startGlyph uint32
			if err := r.read(&startCode, &endCode, &startGlyph); err != nil {
				return nil, err
			}
			if endCode < startCode || endCode > 0x10FFFF {
				return nil, errRangeCheck
			}
			for code := startCode; code <= endCode; code++ {
				add(code, GlyphIndex(startGlyph+code-startCode))
			}
		}

	default:
		return nil, errUnsupportedCmap
	}

	return runes, nil
}
