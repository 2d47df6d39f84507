/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package sfnttest builds small synthetic truetype fonts for tests.
package sfnttest

import (
	"bytes"
	"encoding/binary"
	"sort"

	utf16 "golang.org/x/text/encoding/unicode"
)

// Glyph is one glyph of a synthetic font. Glyph 0 (.notdef) is always added by the Builder.
type Glyph struct {
	Rune    rune // code point mapped through cmap, 0 for unmapped glyphs.
	Advance uint16
	Data    []byte // raw glyf bytes, may be empty.
}

// OS2 holds the OS/2 values written by the Builder.
type OS2 struct {
	Version       uint16 // 0 writes the 78 byte version 0 table, otherwise version 4 is written.
	XAvgCharWidth int16
	WeightClass   uint16
	WidthClass    uint16
	FamilyClass   int16
	Panose        [10]byte
	FsSelection   uint16
	XHeight       int16
	CapHeight     int16
}

// PCLT holds the PCLT values written by the Builder.
type PCLT struct {
	FontNumber   uint32
	Pitch        uint16
	XHeight      uint16
	Style        uint16
	TypeFamily   uint16
	CapHeight    uint16
	SymbolSet    uint16
	Typeface     string
	StrokeWeight int8
	WidthType    int8
	SerifStyle   uint8
}

// Builder assembles a font file. Zero values give a minimal valid font.
type Builder struct {
	ScalerType uint32 // defaults to 0x00010000.
	UnitsPerEm uint16 // defaults to 1000.
	BBox       [4]int16
	Ascender   int16
	Descender  int16
	LineGap    int16

	// ShortLoca writes the loca table in short format, padding glyph data to even lengths.
	ShortLoca bool
	// MaxpV05 writes a version 0.5 maxp table.
	MaxpV05 bool

	Glyphs []Glyph

	OS2         *OS2
	PCLT        *PCLT
	FullName    string // written as Windows UTF-16BE name id 4.
	MacFullName string // written as Macintosh Roman name id 4.

	// Tables holds extra raw tables by tag, e.g. "cvt ", "fpgm", "prep".
	Tables map[string][]byte
	// Omit lists tags of tables left out of the file.
	Omit []string
}

// SimpleGlyph returns glyph data with a header for the given bounding box followed by `payload`.
func SimpleGlyph(xMin, yMin, xMax, yMax int16, payload []byte) []byte {
	var buf bytes.Buffer
	write(&buf, int16(1), xMin, yMin, xMax, yMax)
	buf.Write(payload)
	return buf.Bytes()
}

// Checksum returns the sfnt checksum of `data`.
func Checksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

func write(buf *bytes.Buffer, fields ...interface{}) {
	for _, f := range fields {
		// Writing fixed size values to a bytes.Buffer cannot fail.
		_ = binary.Write(buf, binary.BigEndian, f)
	}
}

func pad4(n int) int {
	return (n + 3) &^ 3
}

// Bytes returns the font file.
func (b *Builder) Bytes() []byte {
	upem := b.UnitsPerEm
	if upem == 0 {
		upem = 1000
	}
	scaler := b.ScalerType
	if scaler == 0 {
		scaler = 0x00010000
	}
	glyphs := append([]Glyph{{Advance: upem / 2}}, b.Glyphs...)
	numGlyphs := uint16(len(glyphs))

	tables := map[string][]byte{}
	for t, data := range b.Tables {
		tables[t] = data
	}

	// glyf and loca.
	var glyf, loca bytes.Buffer
	for _, g := range glyphs {
		if b.ShortLoca {
			write(&loca, uint16(glyf.Len()/2))
		} else {
			write(&loca, uint32(glyf.Len()))
		}
		glyf.Write(g.Data)
		if b.ShortLoca && glyf.Len()%2 == 1 {
			glyf.WriteByte(0)
		}
	}
	if b.ShortLoca {
		write(&loca, uint16(glyf.Len()/2))
	} else {
		write(&loca, uint32(glyf.Len()))
	}
	tables["glyf"] = glyf.Bytes()
	tables["loca"] = loca.Bytes()

	// head.
	var head bytes.Buffer
	indexToLoc := int16(1)
	if b.ShortLoca {
		indexToLoc = 0
	}
	write(&head, uint16(1), uint16(0), uint32(0x00010000), uint32(0), uint32(0x5F0F3CF5),
		uint16(0), upem, int64(0), int64(0), b.BBox, uint16(0), uint16(8), int16(2), indexToLoc, int16(0))
	tables["head"] = head.Bytes()

	// hhea.
	var hhea, hmtx bytes.Buffer
	var maxAdvance uint16
	for _, g := range glyphs {
		if g.Advance > maxAdvance {
			maxAdvance = g.Advance
		}
		var lsb int16
		if len(g.Data) >= 4 {
			lsb = int16(binary.BigEndian.Uint16(g.Data[2:]))
		}
		write(&hmtx, g.Advance, lsb)
	}
	write(&hhea, uint16(1), uint16(0), b.Ascender, b.Descender, b.LineGap, maxAdvance,
		int16(0), int16(0), b.BBox[2], int16(1), int16(0), int16(0), [4]int16{}, int16(0), numGlyphs)
	tables["hhea"] = hhea.Bytes()
	tables["hmtx"] = hmtx.Bytes()

	// maxp.
	var maxp bytes.Buffer
	if b.MaxpV05 {
		write(&maxp, uint32(0x00005000), numGlyphs)
	} else {
		write(&maxp, uint32(0x00010000), numGlyphs, [13]uint16{})
	}
	tables["maxp"] = maxp.Bytes()

	tables["cmap"] = b.cmap(glyphs)

	if b.OS2 != nil {
		tables["OS/2"] = b.os2()
	}
	if b.PCLT != nil {
		tables["PCLT"] = b.pclt()
	}
	if b.FullName != "" || b.MacFullName != "" {
		tables["name"] = b.name()
	}
	for _, t := range b.Omit {
		delete(tables, t)
	}

	return assemble(scaler, tables)
}

func (b *Builder) cmap(glyphs []Glyph) []byte {
	type mapping struct {
		code uint16
		gid  uint16
	}
	var maps []mapping
	for gid, g := range glyphs {
		if g.Rune > 0 && g.Rune < 0xFFFF {
			maps = append(maps, mapping{uint16(g.Rune), uint16(gid)})
		}
	}
	sort.Slice(maps, func(i, j int) bool { return maps[i].code < maps[j].code })
	maps = append(maps, mapping{0xFFFF, 0})

	segCount := len(maps)
	searchPow := 1
	for searchPow*2 <= segCount {
		searchPow *= 2
	}
	entrySelector := 0
	for 1<<uint(entrySelector+1) <= searchPow {
		entrySelector++
	}

	var sub bytes.Buffer
	write(&sub, uint16(4), uint16(16+8*segCount), uint16(0), uint16(2*segCount),
		uint16(2*searchPow), uint16(entrySelector), uint16(2*segCount-2*searchPow))
	for _, m := range maps {
		write(&sub, m.code)
	}
	write(&sub, uint16(0))
	for _, m := range maps {
		write(&sub, m.code)
	}
	for _, m := range maps {
		delta := m.gid - m.code
		if m.code == 0xFFFF {
			delta = 1
		}
		write(&sub, delta)
	}
	for range maps {
		write(&sub, uint16(0))
	}

	var cmap bytes.Buffer
	write(&cmap, uint16(0), uint16(1), uint16(3), uint16(1), uint32(12))
	cmap.Write(sub.Bytes())
	return cmap.Bytes()
}

func (b *Builder) os2() []byte {
	t := b.OS2
	var buf bytes.Buffer
	version := uint16(4)
	if t.Version == 0 {
		version = 0
	}
	write(&buf, version, t.XAvgCharWidth, t.WeightClass, t.WidthClass, uint16(0), [10]int16{}, t.FamilyClass,
		t.Panose, [4]uint32{}, [4]byte{'T', 'E', 'S', 'T'}, t.FsSelection, uint16(0x20), uint16(0xFF),
		b.Ascender, b.Descender, b.LineGap, uint16(b.Ascender), uint16(-b.Descender))
	if version > 0 {
		write(&buf, [2]uint32{}, t.XHeight, t.CapHeight, uint16(0), uint16(0x20), uint16(1))
	}
	return buf.Bytes()
}

func (b *Builder) pclt() []byte {
	t := b.PCLT
	var typeface [16]byte
	for i := range typeface {
		typeface[i] = ' '
	}
	copy(typeface[:], t.Typeface)
	var buf bytes.Buffer
	write(&buf, uint32(0x00010000), t.FontNumber, t.Pitch, t.XHeight, t.Style, t.TypeFamily, t.CapHeight,
		t.SymbolSet, typeface, [8]byte{}, [6]byte{}, t.StrokeWeight, t.WidthType, t.SerifStyle, uint8(0))
	return buf.Bytes()
}

func (b *Builder) name() []byte {
	type record struct {
		platform, encoding, language uint16
		data                         []byte
	}
	var records []record
	if b.MacFullName != "" {
		records = append(records, record{1, 0, 0, []byte(b.MacFullName)})
	}
	if b.FullName != "" {
		data, _ := utf16.UTF16(utf16.BigEndian, utf16.IgnoreBOM).NewEncoder().Bytes([]byte(b.FullName))
		records = append(records, record{3, 1, 0x409, data})
	}

	var buf, strs bytes.Buffer
	write(&buf, uint16(0), uint16(len(records)), uint16(6+12*len(records)))
	for _, r := range records {
		write(&buf, r.platform, r.encoding, r.language, uint16(4), uint16(len(r.data)), uint16(strs.Len()))
		strs.Write(r.data)
	}
	buf.Write(strs.Bytes())
	return buf.Bytes()
}

// assemble writes the table directory and the tables, then sets head.checksumAdjustment.
func assemble(scaler uint32, tables map[string][]byte) []byte {
	var tags []string
	for t := range tables {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	n := len(tags)
	searchPow := 1
	entrySelector := 0
	for searchPow*2 <= n {
		searchPow *= 2
		entrySelector++
	}

	var dir, data bytes.Buffer
	write(&dir, scaler, uint16(n), uint16(16*searchPow), uint16(entrySelector), uint16(16*n-16*searchPow))
	offset := 12 + 16*n
	headOffset := -1
	for _, t := range tags {
		td := tables[t]
		var tg [4]byte
		copy(tg[:], t+"    ")
		write(&dir, tg, Checksum(td), uint32(offset+data.Len()), uint32(len(td)))
		if t == "head" {
			headOffset = offset + data.Len()
		}
		data.Write(td)
		for data.Len()%4 != 0 {
			data.WriteByte(0)
		}
	}

	font := append(dir.Bytes(), data.Bytes()...)
	if headOffset >= 0 {
		binary.BigEndian.PutUint32(font[headOffset+8:], 0xB1B0AFBA-Checksum(font))
	}
	return font
}
