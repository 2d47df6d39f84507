/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package softfont

import (
	"fmt"
	"math/bits"

	"github.com/pclkit/pclkit/common"
)

// Segment identifiers of the segmented font data section.
const (
	SegmentPanose         uint16 = 20545 // "PA"
	SegmentGlobalTrueType uint16 = 18260 // "GT"
	SegmentNull           uint16 = 65535
)

// Segment is one entry of the segmented font data that follows a format 15 font header.
type Segment struct {
	ID   uint16
	Data []byte
}

// Bytes serializes `s` as identifier, size and data.
func (s Segment) Bytes() []byte {
	var w byteWriter
	w.write(s.ID, uint16(len(s.Data)), s.Data)
	return w.bytes()
}

// PanoseSegment returns the PANOSE description copied from the OS/2 table. The bool flag is false
// when the font has no OS/2 table, in which case the segment is left out of the header.
func PanoseSegment(src FontSource) (Segment, bool) {
	os2, ok := src.OS2()
	if !ok {
		return Segment{}, false
	}
	data := make([]byte, len(os2.Panose))
	copy(data, os2.Panose[:])
	return Segment{ID: SegmentPanose, Data: data}, true
}

// NullSegment returns the segment terminating the segmented font data.
func NullSegment() Segment {
	return Segment{ID: SegmentNull}
}

// globalTables are the tables carried by the global truetype segment, in table directory order.
// gdir is a placeholder that is always listed.
var globalTables = []string{"cvt ", "fpgm", "gdir", "head", "hhea", "hmtx", "maxp", "prep", "vhea", "vmtx"}

type globalTable struct {
	tag      string
	checksum uint32
	offset   uint32
	data     []byte
}

// GlobalTrueTypeSegment rebuilds a minimal sfnt holding the font wide tables the printer needs to
// rasterize glyphs: a table directory followed by the table data, each table starting on a 4 byte
// boundary.
func GlobalTrueTypeSegment(src FontSource) (Segment, error) {
	var tables []globalTable
	var dataLen uint32
	for _, t := range globalTables {
		if t == "gdir" {
			tables = append(tables, globalTable{tag: t})
			continue
		}
		rec, ok := src.TableRecord(t)
		if !ok {
			continue
		}
		gt := globalTable{tag: t, checksum: rec.Checksum, offset: dataLen, data: src.TableData(t)}
		tables = append(tables, gt)
		dataLen += pad4(uint32(len(gt.data)))
	}

	numTables := len(tables)
	dirSize := uint32(12 + 16*numTables)
	if int64(dirSize)+int64(dataLen) > 0xFFFF {
		common.Log.Debug("Global truetype data is %d bytes", int64(dirSize)+int64(dataLen))
		return Segment{}, fmt.Errorf("%w: global truetype data of %d bytes", ErrSegmentTooLarge, int64(dirSize)+int64(dataLen))
	}

	entrySelector := bits.Len(uint(numTables)) - 1
	searchRange := 16 << uint(entrySelector)

	var w byteWriter
	w.write(src.ScalerType(), uint16(numTables), uint16(searchRange), uint16(entrySelector),
		uint16(16*numTables-searchRange))
	for _, t := range tables {
		offset := uint32(0)
		if t.tag != "gdir" {
			offset = dirSize + t.offset
		}
		w.write(t.tag, t.checksum, offset, uint32(len(t.data)))
	}
	for _, t := range tables {
		w.write(t.data)
		for i := uint32(len(t.data)); i < pad4(uint32(len(t.data))); i++ {
			w.write(uint8(0))
		}
	}

	return Segment{ID: SegmentGlobalTrueType, Data: w.bytes()}, nil
}

func pad4(n uint32) uint32 {
	return (n + 3) &^ 3
}
