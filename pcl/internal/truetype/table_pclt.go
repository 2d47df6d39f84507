/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/pclkit/pclkit/common"

// pcltTable represents the PCL 5 table (PCLT) carrying the values a PCL font header needs.
// https://docs.microsoft.com/en-us/typography/opentype/spec/pclt
type pcltTable struct {
	version             fixed
	fontNumber          uint32
	pitch               uint16
	xHeight             uint16
	style               uint16
	typeFamily          uint16
	capHeight           uint16
	symbolSet           uint16
	typeface            []uint8 // len = 16
	characterComplement []uint8 // len = 8
	fileName            []uint8 // len = 6
	strokeWeight        int8
	widthType           int8
	serifStyle          uint8
	reserved            uint8
}

// PCLT is the view of the PCLT table.
type PCLT struct {
	FontNumber   uint32
	Pitch        uint16
	XHeight      uint16
	Style        uint16
	TypeFamily   uint16
	CapHeight    uint16
	SymbolSet    uint16
	Typeface     [16]byte
	StrokeWeight int8
	WidthType    int8
	SerifStyle   uint8
}

func (f *font) parsePCLT(r *byteReader) (*pcltTable, error) {
	tr, has, err := f.seekToTable(r, "PCLT")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}
	if tr.length < 54 {
		common.Log.Debug("PCLT table too short (%d)", tr.length)
		return nil, errRangeCheck
	}

	t := &pcltTable{}
	err = r.read(&t.version, &t.fontNumber, &t.pitch, &t.xHeight, &t.style, &t.typeFamily)
	if err != nil {
		return nil, err
	}
	err = r.read(&t.capHeight, &t.symbolSet)
	if err != nil {
		return nil, err
	}
	if err = r.readBytes(&t.typeface, 16); err != nil {
		return nil, err
	}
	if err = r.readBytes(&t.characterComplement, 8); err != nil {
		return nil, err
	}
	if err = r.readBytes(&t.fileName, 6); err != nil {
		return nil, err
	}
	return t, r.read(&t.strokeWeight, &t.widthType, &t.serifStyle, &t.reserved)
}

func (t *pcltTable) export() *PCLT {
	v := &PCLT{
		FontNumber:   t.fontNumber,
		Pitch:        t.pitch,
		XHeight:      t.xHeight,
		Style:        t.style,
		TypeFamily:   t.typeFamily,
		CapHeight:    t.capHeight,
		SymbolSet:    t.symbolSet,
		StrokeWeight: t.strokeWeight,
		WidthType:    t.widthType,
		SerifStyle:   t.serifStyle,
	}
	copy(v.Typeface[:], t.typeface)
	return v
}
