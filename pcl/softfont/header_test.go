/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package softfont

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/pclkit/pclkit/pcl/internal/truetype"
	"github.com/pclkit/pclkit/pcl/internal/truetype/sfnttest"
)

func TestDescriptorFallbacks(t *testing.T) {
	d, err := BuildDescriptor(parse(t, testBuilder()), Config{})
	require.NoError(t, err)

	assert.Equal(t, uint16(1900), d.CellWidth)
	assert.Equal(t, uint16(2300), d.CellHeight)
	assert.Equal(t, uint8(1), d.Spacing)
	assert.Equal(t, uint16(277), d.SymbolSet)
	assert.Equal(t, uint16(500), d.Pitch)
	assert.Equal(t, uint16(1000), d.XHeight)
	assert.Equal(t, uint16(1450), d.CapHeight)
	assert.Equal(t, int8(0), d.WidthType)
	assert.Equal(t, int8(0), d.StrokeWeight)
	assert.Equal(t, uint8(64), d.SerifStyle)
	assert.Equal(t, uint16(0), d.StyleWord())
	assert.Equal(t, uint16(2300), d.TextHeight)
	assert.Equal(t, uint16((500+1300+1400+1000)/4), d.TextWidth)
	assert.Equal(t, uint16(0x20), d.FirstCode)
	assert.Equal(t, uint16(0xFF), d.LastCode)
	assert.Equal(t, uint32(0), d.FontNumber)
	assert.Equal(t, "Test Sans\x00\x00\x00\x00\x00\x00\x00", d.FontName)
	assert.Equal(t, uint16(2048), d.ScaleFactor)
	assert.Equal(t, int16(-409), d.MasterUnderlinePosition)
	assert.Equal(t, uint16(102), d.MasterUnderlineThickness)

	require.Len(t, d.Segments, 2)
	assert.Equal(t, SegmentGlobalTrueType, d.Segments[0].ID)
	assert.Equal(t, SegmentNull, d.Segments[1].ID)
}

func TestDescriptorBytes(t *testing.T) {
	d, err := BuildDescriptor(parse(t, testBuilder()), Config{})
	require.NoError(t, err)
	b := d.Bytes()

	be := binary.BigEndian
	require.Len(t, b, 72+len(d.Segments[0].Bytes())+4+2)
	assert.Equal(t, uint16(72), be.Uint16(b[0:]))
	assert.Equal(t, []byte{15, 2}, b[2:4])
	assert.Equal(t, uint16(0), be.Uint16(b[6:]))
	assert.Equal(t, uint16(1900), be.Uint16(b[8:]))
	assert.Equal(t, uint16(2300), be.Uint16(b[10:]))
	assert.Equal(t, []byte{0, 1}, b[12:14])
	assert.Equal(t, uint16(277), be.Uint16(b[14:]))
	assert.Equal(t, uint16(500), be.Uint16(b[16:]))
	assert.Equal(t, uint16(1000), be.Uint16(b[20:]))
	assert.Equal(t, []byte{64, 2}, b[27:29])
	assert.Equal(t, uint16(2300), be.Uint16(b[32:]))
	assert.Equal(t, uint16(1050), be.Uint16(b[34:]))
	assert.Equal(t, uint16(0x20), be.Uint16(b[36:]))
	assert.Equal(t, uint16(0xFF), be.Uint16(b[38:]))
	assert.Equal(t, uint16(1450), be.Uint16(b[42:]))
	assert.Equal(t, "Test Sans\x00\x00\x00\x00\x00\x00\x00", string(b[48:64]))
	assert.Equal(t, uint16(2048), be.Uint16(b[64:]))
	assert.Equal(t, int16(-409), int16(be.Uint16(b[66:])))
	assert.Equal(t, uint16(102), be.Uint16(b[68:]))
	assert.Equal(t, []byte{1, 0}, b[70:72])

	// Segments follow the descriptor directly.
	assert.Equal(t, []byte("GT"), b[72:74])
	assert.Equal(t, []byte{0xFF, 0xFF, 0, 0, 0}, b[len(b)-6:len(b)-1])

	assert.Equal(t, byte(0), sum8(b[64:]))
}

func TestDescriptorOS2(t *testing.T) {
	b := testBuilder()
	b.OS2 = &sfnttest.OS2{
		Version:       4,
		XAvgCharWidth: 1100,
		WeightClass:   700,
		WidthClass:    3,
		FamilyClass:   8,
		Panose:        [10]byte{2, 11, 6, 9, 2, 2, 2, 2, 2, 4},
		FsSelection:   1<<0 | 1<<3,
		XHeight:       999,
		CapHeight:     1401,
	}
	d, err := BuildDescriptor(parse(t, b), Config{})
	require.NoError(t, err)

	assert.Equal(t, uint8(1), d.Posture)
	assert.Equal(t, uint8(2), d.Width)
	assert.Equal(t, uint8(1), d.Structure)
	assert.Equal(t, uint16(1+4*2+32), d.StyleWord())
	assert.Equal(t, uint8(0), d.Spacing)
	assert.Equal(t, int8(-2), d.WidthType)
	assert.Equal(t, int8(3), d.StrokeWeight)
	assert.Equal(t, uint8(64), d.SerifStyle)
	assert.Equal(t, uint16(999), d.XHeight)
	assert.Equal(t, uint16(1401), d.CapHeight)
	assert.Equal(t, uint16(1100), d.TextWidth)

	require.Len(t, d.Segments, 3)
	assert.Equal(t, SegmentPanose, d.Segments[0].ID)

	h := d.Bytes()
	assert.Equal(t, byte(0), h[4])
	assert.Equal(t, byte(41), h[23])
	assert.Equal(t, byte(0xFE), h[22])
	assert.Equal(t, byte(3), h[24])
	assert.Equal(t, []byte("PA"), h[72:74])
	assert.Equal(t, byte(0), sum8(h[64:]))
}

func TestDescriptorOS2Classes(t *testing.T) {
	testcases := []struct {
		widthClass   uint16
		weightClass  uint16
		familyClass  int16
		fsSelection  uint16
		width        uint8
		widthType    int8
		strokeWeight int8
		serifStyle   uint8
		posture      uint8
	}{
		{1, 100, 0x0008, 0, 4, -5, -6, 64, 0},
		{2, 200, 0x0100, 1 << 9, 3, -4, -4, 128, 2},
		{4, 400, 0x0000, 1 << 6, 1, -2, -1, 128, 0},
		{5, 500, 0x0801, 1<<6 | 1, 0, 0, 0, 128, 0},
		{6, 600, 0x0300, 1, 6, 2, 1, 128, 1},
		{7, 800, 0x0A00, 0, 6, 2, 4, 128, 0},
		{8, 900, 0x0800, 0, 7, 3, 6, 128, 0},
		{9, 1000, 0x0008, 0, 7, 3, 7, 64, 0},
		{0, 0, 0x0008, 0, 0, 0, -7, 64, 0},
	}

	for _, tcase := range testcases {
		b := testBuilder()
		b.OS2 = &sfnttest.OS2{
			Version:     4,
			WeightClass: tcase.weightClass,
			WidthClass:  tcase.widthClass,
			FamilyClass: tcase.familyClass,
			FsSelection: tcase.fsSelection,
		}
		d, err := BuildDescriptor(parse(t, b), Config{})
		require.NoError(t, err)
		assert.Equal(t, tcase.width, d.Width, "width class %d", tcase.widthClass)
		assert.Equal(t, tcase.widthType, d.WidthType, "width class %d", tcase.widthClass)
		assert.Equal(t, tcase.strokeWeight, d.StrokeWeight, "weight class %d", tcase.weightClass)
		assert.Equal(t, tcase.serifStyle, d.SerifStyle, "family class %04x", tcase.familyClass)
		assert.Equal(t, tcase.posture, d.Posture, "fsSelection %04x", tcase.fsSelection)
		// Zero OS/2 heights fall back to the glyph boxes.
		assert.Equal(t, uint16(1000), d.XHeight)
		assert.Equal(t, uint16(1450), d.CapHeight)
	}
}

func TestDescriptorPCLT(t *testing.T) {
	b := testBuilder()
	b.OS2 = &sfnttest.OS2{Version: 4, WeightClass: 400, WidthClass: 5, XHeight: 999}
	b.PCLT = &sfnttest.PCLT{
		FontNumber:   0x80001234,
		Pitch:        1229,
		XHeight:      1062,
		TypeFamily:   0x4123,
		CapHeight:    1466,
		SymbolSet:    629,
		Typeface:     "TestFace",
		StrokeWeight: -3,
		WidthType:    -2,
		SerifStyle:   128,
	}
	d, err := BuildDescriptor(parse(t, b), Config{})
	require.NoError(t, err)

	assert.Equal(t, uint16(629), d.SymbolSet)
	assert.Equal(t, uint16(1229), d.Pitch)
	assert.Equal(t, uint16(1062), d.XHeight)
	assert.Equal(t, int8(-2), d.WidthType)
	assert.Equal(t, int8(-3), d.StrokeWeight)
	assert.Equal(t, uint8(128), d.SerifStyle)
	assert.Equal(t, uint16(1466), d.CapHeight)
	assert.Equal(t, "TestFace        ", d.FontName)
	assert.Equal(t, uint32(0x80001234), d.FontNumber)

	h := d.Bytes()
	assert.Equal(t, []byte{0x23, 0x41}, h[25:27])
	assert.Equal(t, []byte{0x80, 0x00, 0x12, 0x34}, h[44:48])
	assert.Equal(t, "TestFace        ", string(h[48:64]))
	assert.Equal(t, byte(0), sum8(h[64:]))
}

func TestDescriptorConfig(t *testing.T) {
	d, err := BuildDescriptor(parse(t, testBuilder()), Config{SymbolSet: Windows1252, FirstCode: 0x41, LastCode: 0x5A})
	require.NoError(t, err)
	assert.Equal(t, uint16(629), d.SymbolSet)
	assert.Equal(t, uint16(0x41), d.FirstCode)
	assert.Equal(t, uint16(0x5A), d.LastCode)
	// Only 'A' and 'H' are in range.
	assert.Equal(t, uint16(1350), d.TextWidth)
}

func TestDescriptorFontName(t *testing.T) {
	b := testBuilder()
	b.FullName = "Ünïcode Font Name Longer Than Sixteen"
	d, err := BuildDescriptor(parse(t, b), Config{})
	require.NoError(t, err)
	assert.Equal(t, "?n?code Font Nam", d.FontName)
}

func TestDescriptorMissingTable(t *testing.T) {
	src := &missingTableSource{FontSource: parse(t, testBuilder()), missing: "glyf"}
	_, err := BuildDescriptor(src, Config{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingRequiredTable))
	assert.Contains(t, err.Error(), "glyf")
}

func TestDescriptorGoFonts(t *testing.T) {
	for name, data := range map[string][]byte{"goregular": goregular.TTF, "gomono": gomono.TTF} {
		src, err := ParseFont(data)
		require.NoError(t, err, name)
		d, err := BuildDescriptor(src, Config{})
		require.NoError(t, err, name)

		h := d.Bytes()
		assert.Equal(t, byte(0), sum8(h[64:]), name)
		assert.NotZero(t, d.ScaleFactor, name)
		assert.NotZero(t, d.CapHeight, name)
		assert.Len(t, d.FontName, 16, name)
	}
}

// missingTableSource hides one table of the wrapped font.
type missingTableSource struct {
	FontSource
	missing string
}

func (s *missingTableSource) TableRecord(tag string) (truetype.TableRecord, bool) {
	if tag == s.missing {
		return truetype.TableRecord{}, false
	}
	return s.FontSource.TableRecord(tag)
}
