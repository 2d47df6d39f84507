/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package softfont

import (
	"fmt"
	"math"
	"strings"

	"github.com/pclkit/pclkit/common"
)

// Font header constants for truetype scalable fonts.
const (
	descriptorSize    = 72
	headerFormat      = 15
	fontTypeBound8Bit = 2 // all codes printable except 0, 7-15 and 27.
	qualityLetter     = 2
	scalingTrueType   = 1
	fontNameLen       = 16

	// checksumStart is the first header byte covered by the header checksum.
	checksumStart = 64
)

// Defaults used when the Config leaves them unset.
const (
	DefaultFirstCode = 0x20
	DefaultLastCode  = 0xFF
)

// Config selects the symbol set a soft font is bound to.
// The zero value binds Roman-8 over codes 0x20-0xFF.
type Config struct {
	SymbolSet SymbolSet
	FirstCode uint16
	LastCode  uint16
}

func (c Config) withDefaults() Config {
	if c.SymbolSet == nil {
		c.SymbolSet = Roman8
	}
	if c.FirstCode == 0 && c.LastCode == 0 {
		c.FirstCode, c.LastCode = DefaultFirstCode, DefaultLastCode
	}
	return c
}

// FontDescriptor is a format 15 font header. Values in design units are in units of the font's
// em square (ScaleFactor).
type FontDescriptor struct {
	// Style word components.
	Posture   uint8 // 0 upright, 1 italic, 2 alternate italic.
	Width     uint8 // 0 normal .. 4 ultra compressed, 6 expanded, 7 extra expanded.
	Structure uint8 // 0 solid, 1 outline.

	BaselinePosition   uint16
	CellWidth          uint16
	CellHeight         uint16
	Orientation        uint8
	Spacing            uint8 // 0 fixed, 1 proportional.
	SymbolSet          uint16
	Pitch              uint16
	Height             uint16
	XHeight            uint16
	WidthType          int8
	StrokeWeight       int8
	Typeface           uint16 // vendor * 4096 + typeface family.
	SerifStyle         uint8
	Quality            uint8
	Placement          int8
	UnderlinePosition  int8
	UnderlineThickness uint8
	TextHeight         uint16
	TextWidth          uint16
	FirstCode          uint16
	LastCode           uint16
	PitchExtended      uint8
	HeightExtended     uint8
	CapHeight          uint16
	FontNumber         uint32
	FontName           string

	ScaleFactor              uint16
	MasterUnderlinePosition  int16
	MasterUnderlineThickness uint16
	ScalingTechnology        uint8
	Variety                  uint8

	// Segments in the order written: Panose (if any), global truetype data, null.
	Segments []Segment
}

// StyleWord returns posture + 4*width + 32*structure.
func (d *FontDescriptor) StyleWord() uint16 {
	return uint16(d.Posture) + 4*uint16(d.Width) + 32*uint16(d.Structure)
}

// styleWidths maps OS/2 usWidthClass to the style word width.
var styleWidths = map[uint16]uint8{1: 4, 2: 3, 3: 2, 4: 1, 5: 0, 6: 6, 7: 6, 8: 7, 9: 7}

// widthTypes maps OS/2 usWidthClass to the header width type.
var widthTypes = map[uint16]int8{1: -5, 2: -4, 3: -2, 4: -2, 5: 0, 6: 2, 7: 2, 8: 3, 9: 3}

// Serif styles of scalable fonts.
const (
	serifStyleSans  = 64
	serifStyleSerif = 128
)

// sFamilyClass value of sans serif designs.
const familyClassSansSerif = 8

// BuildDescriptor derives the font header of `src`. Values come from the PCLT table when the font
// has one, and from OS/2, head, hhea and glyph metrics otherwise.
func BuildDescriptor(src FontSource, cfg Config) (*FontDescriptor, error) {
	cfg = cfg.withDefaults()
	for _, t := range []string{"head", "hhea", "loca", "glyf"} {
		if _, ok := src.TableRecord(t); !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingRequiredTable, t)
		}
	}

	head := src.Head()
	hhea := src.Hhea()
	os2, hasOS2 := src.OS2()
	pclt, hasPCLT := src.PCLT()

	d := &FontDescriptor{
		CellWidth:         uint16(int(head.XMax) - int(head.XMin)),
		CellHeight:        uint16(int(head.YMax) - int(head.YMin)),
		Spacing:           1,
		Quality:           qualityLetter,
		TextHeight:        uint16(int(hhea.Ascender) - int(hhea.Descender) + int(hhea.LineGap)),
		FirstCode:         cfg.FirstCode,
		LastCode:          cfg.LastCode,
		ScaleFactor:       head.UnitsPerEm,
		ScalingTechnology: scalingTrueType,
		SerifStyle:        serifStyleSans,
	}
	d.MasterUnderlinePosition = int16(-float64(head.UnitsPerEm) * 0.2)
	d.MasterUnderlineThickness = uint16(float64(head.UnitsPerEm) * 0.05)

	if hasOS2 {
		switch {
		case os2.Regular():
			d.Posture = 0
		case os2.Italic():
			d.Posture = 1
		case os2.Oblique():
			d.Posture = 2
		}
		d.Width = styleWidths[os2.WidthClass]
		if os2.Outlined() {
			d.Structure = 1
		}
		if os2.Panose[3] == 9 {
			d.Spacing = 0
		}
	}

	if hasPCLT {
		d.SymbolSet = pclt.SymbolSet
		d.Pitch = pclt.Pitch
		d.XHeight = pclt.XHeight
		d.WidthType = pclt.WidthType
		d.StrokeWeight = pclt.StrokeWeight
		d.SerifStyle = pclt.SerifStyle
		d.CapHeight = pclt.CapHeight
		d.Typeface = pclt.TypeFamily
		d.FontNumber = pclt.FontNumber
		d.FontName = string(pclt.Typeface[:])
	} else {
		d.SymbolSet = cfg.SymbolSet.ID()
		d.Pitch = src.AdvanceWidth(glyphIndex(src, ' '))
		d.FontName = src.FullName()

		if hasOS2 && os2.XHeight != 0 {
			d.XHeight = uint16(os2.XHeight)
		} else {
			d.XHeight = glyphHeight(src, 'x')
		}
		if hasOS2 && os2.CapHeight != 0 {
			d.CapHeight = uint16(os2.CapHeight)
		} else {
			d.CapHeight = glyphHeight(src, 'H')
		}
		if hasOS2 {
			d.WidthType = widthTypes[os2.WidthClass]
			d.StrokeWeight = int8(math.Floor(float64(os2.WeightClass)*14/1000 - 7 + 0.5))
			// The whole sFamilyClass value is compared, so sans serif subclasses are serif styled.
			if os2.FamilyClass == familyClassSansSerif {
				d.SerifStyle = serifStyleSans
			} else {
				d.SerifStyle = serifStyleSerif
			}
		}
	}
	d.FontName = asciiName(d.FontName)

	if hasOS2 {
		d.TextWidth = uint16(os2.XAvgCharWidth)
	} else {
		d.TextWidth = averageWidth(src, cfg)
	}

	if panose, ok := PanoseSegment(src); ok {
		d.Segments = append(d.Segments, panose)
	}
	gt, err := GlobalTrueTypeSegment(src)
	if err != nil {
		return nil, err
	}
	d.Segments = append(d.Segments, gt, NullSegment())

	common.Log.Trace("Font descriptor %q: %+v", d.FontName, *d)
	return d, nil
}

// averageWidth returns the rounded mean advance width of the characters within the code range of
// `cfg`.
func averageWidth(src FontSource, cfg Config) uint16 {
	var sum, count int
	for _, r := range src.CharacterSet() {
		if r == 0xFFFF || r < rune(cfg.FirstCode) || r > rune(cfg.LastCode) {
			continue
		}
		sum += int(src.AdvanceWidth(glyphIndex(src, r)))
		count++
	}
	if count == 0 {
		return 0
	}
	return uint16(math.Floor(float64(sum)/float64(count) + 0.5))
}

// asciiName returns `name` as a 16 character ASCII field, zero padded.
func asciiName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if sb.Len() == fontNameLen {
			break
		}
		if r < 0x20 || r > 0x7E {
			r = '?'
		}
		sb.WriteRune(r)
	}
	for sb.Len() < fontNameLen {
		sb.WriteByte(0)
	}
	return sb.String()
}

// Bytes serializes the header: the 72 byte descriptor, the segments, a reserved byte and the
// checksum. The checksum makes the bytes from offset 64 onward sum to 0 modulo 256.
func (d *FontDescriptor) Bytes() []byte {
	style := d.StyleWord()

	var w byteWriter
	w.write(uint16(descriptorSize), uint8(headerFormat), uint8(fontTypeBound8Bit))
	w.write(uint8(style>>8), uint8(0), d.BaselinePosition, d.CellWidth, d.CellHeight)
	w.write(d.Orientation, d.Spacing, d.SymbolSet, d.Pitch, d.Height, d.XHeight, d.WidthType)
	w.write(uint8(style), d.StrokeWeight, uint8(d.Typeface), uint8(d.Typeface>>8))
	w.write(d.SerifStyle, d.Quality, d.Placement, d.UnderlinePosition, d.UnderlineThickness)
	w.write(d.TextHeight, d.TextWidth, d.FirstCode, d.LastCode, d.PitchExtended, d.HeightExtended)
	w.write(d.CapHeight, d.FontNumber, asciiName(d.FontName))
	w.write(d.ScaleFactor, d.MasterUnderlinePosition, d.MasterUnderlineThickness)
	w.write(d.ScalingTechnology, d.Variety)
	if w.len() != descriptorSize {
		common.Log.Error("Font descriptor is %d bytes", w.len())
	}

	for _, s := range d.Segments {
		w.write(s.Bytes())
	}
	w.write(uint8(0), uint8(0))

	b := w.bytes()
	b[len(b)-1] = checksum8(b[checksumStart : len(b)-2])
	return b
}
