/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package softfont

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/pclkit/pclkit/pcl/internal/truetype/sfnttest"
)

// recorder logs the commands of a font download, binary data as its length.
type recorder struct {
	ops  []string
	data [][]byte
}

func (r *recorder) WritePCL(cmd string) {
	r.ops = append(r.ops, strings.ReplaceAll(cmd, "\x1b", "ESC"))
}

func (r *recorder) WriteBinary(data []byte) {
	r.ops = append(r.ops, fmt.Sprintf("<%d bytes>", len(data)))
	r.data = append(r.data, data)
}

func oneGlyphBuilder() *sfnttest.Builder {
	return &sfnttest.Builder{
		UnitsPerEm: 1000,
		BBox:       [4]int16{0, -200, 900, 800},
		Ascender:   800,
		Descender:  -200,
		FullName:   "One",
		Glyphs:     []sfnttest.Glyph{{Rune: 'A', Advance: 600, Data: glyphA}},
	}
}

func TestSoftFontEmit(t *testing.T) {
	fnt := parse(t, oneGlyphBuilder())
	sf, err := New(fnt, Config{})
	require.NoError(t, err)

	require.Len(t, sf.Characters(), 1)
	c := sf.Characters()[0]
	assert.Equal(t, uint16('A'), c.Code)
	assert.Equal(t, 'A', c.Rune)
	assert.Equal(t, uint16(1), c.GlyphID)
	require.Len(t, c.Blocks, 1)

	var rec recorder
	sf.Emit(&rec, 3, 12)

	header := len(sf.Header())
	block := len(c.Blocks[0])
	expected := []string{
		"ESC*c3D",
		fmt.Sprintf("ESC)s%dW", header),
		fmt.Sprintf("<%d bytes>", header),
		"ESC(s12V",
		"ESC(3X",
		"ESC&d@",
		"ESC*c65E",
		fmt.Sprintf("ESC(s%dW", block),
		fmt.Sprintf("<%d bytes>", block),
	}
	if diff := cmp.Diff(expected, rec.ops); diff != "" {
		t.Errorf("download mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, rec.data, 2)
	assert.Equal(t, sf.Descriptor().Bytes(), rec.data[0])

	outline, err := fnt.GlyphData(1)
	require.NoError(t, err)
	assert.Equal(t, glyphA, outline)
	assert.Equal(t, len(outline)+10, block)
	assert.Equal(t, outline, rec.data[1][8:8+len(outline)])
}

func TestSoftFontEmitFractionalSize(t *testing.T) {
	sf, err := New(parse(t, oneGlyphBuilder()), Config{})
	require.NoError(t, err)

	var rec recorder
	sf.Emit(&rec, 1, 10.5)
	assert.Contains(t, rec.ops, "ESC(s10.5V")
}

func TestSoftFontSkipsCodes(t *testing.T) {
	b := testBuilder()
	b.Glyphs = append(b.Glyphs,
		sfnttest.Glyph{Rune: 'Ω', Advance: 1200, Data: glyphH},
		sfnttest.Glyph{Rune: 'é', Advance: 900, Data: glyphX},
	)

	sf, err := New(parse(t, b), Config{})
	require.NoError(t, err)
	var runes []rune
	for _, c := range sf.Characters() {
		runes = append(runes, c.Rune)
	}
	assert.Equal(t, []rune{' ', 'A', 'H', 'x', 'é'}, runes)
	assert.Equal(t, uint16(0xC5), sf.Characters()[4].Code)

	sf, err = New(parse(t, b), Config{FirstCode: 0x41, LastCode: 0x7E})
	require.NoError(t, err)
	runes = runes[:0]
	for _, c := range sf.Characters() {
		runes = append(runes, c.Rune)
	}
	assert.Equal(t, []rune{'A', 'H', 'x'}, runes)

	sf, err = New(parse(t, b), Config{SymbolSet: Latin1})
	require.NoError(t, err)
	last := sf.Characters()[len(sf.Characters())-1]
	assert.Equal(t, 'é', last.Rune)
	assert.Equal(t, uint16(0xE9), last.Code)
}

func TestSoftFontMissingTable(t *testing.T) {
	for _, tag := range []string{"head", "hhea", "loca", "glyf"} {
		src := &missingTableSource{FontSource: parse(t, testBuilder()), missing: tag}
		_, err := New(src, Config{})
		assert.ErrorIs(t, err, ErrMissingRequiredTable, tag)
	}
}

func TestSoftFontMinimalFont(t *testing.T) {
	b := &sfnttest.Builder{
		UnitsPerEm: 1000,
		BBox:       [4]int16{0, -200, 900, 800},
		Ascender:   800,
		Descender:  -200,
		Glyphs:     []sfnttest.Glyph{{Rune: 'A', Advance: 600, Data: glyphA}},
		Omit:       []string{"hmtx"},
	}
	fnt := parse(t, b)
	_, ok := fnt.TableRecord("hmtx")
	require.False(t, ok)
	_, ok = fnt.OS2()
	require.False(t, ok)

	sf, err := New(fnt, Config{})
	require.NoError(t, err)
	// Without hmtx every glyph advances by hhea.advanceWidthMax.
	assert.Equal(t, uint16(600), sf.Descriptor().Pitch)

	var rec recorder
	sf.Emit(&rec, 1, 12)
	require.Len(t, rec.data, 2)
	header := sf.Header()
	expected := []string{
		"ESC*c1D",
		fmt.Sprintf("ESC)s%dW", len(header)),
		fmt.Sprintf("<%d bytes>", len(header)),
		"ESC(s12V",
		"ESC(1X",
		"ESC&d@",
		"ESC*c65E",
		fmt.Sprintf("ESC(s%dW", len(rec.data[1])),
		fmt.Sprintf("<%d bytes>", len(rec.data[1])),
	}
	if diff := cmp.Diff(expected, rec.ops); diff != "" {
		t.Errorf("download mismatch (-want +got):\n%s", diff)
	}

	gid, ok := fnt.GlyphIndex('A')
	require.True(t, ok)
	outline, err := fnt.GlyphData(gid)
	require.NoError(t, err)
	blocks, err := EncodeCharacter(uint16(gid), outline)
	require.NoError(t, err)
	assert.Equal(t, blocks, [][]byte{rec.data[1]})
}

func TestSoftFontEncode(t *testing.T) {
	sf, err := New(parse(t, testBuilder()), Config{})
	require.NoError(t, err)

	assert.Equal(t, []byte("Hax"), sf.Encode("Hax"))
	assert.Equal(t, []byte{'A', 0xC5, '?'}, sf.Encode("AéΩ"))
	assert.Equal(t, Roman8, sf.SymbolSet())
}

func TestSoftFontAdvanceWidth(t *testing.T) {
	sf, err := New(parse(t, testBuilder()), Config{})
	require.NoError(t, err)

	assert.InDelta(t, 1300.0/2048, sf.AdvanceWidth('A'), 1e-9)
	assert.InDelta(t, 500.0/2048, sf.AdvanceWidth(' '), 1e-9)
}

func TestSoftFontGoRegular(t *testing.T) {
	src, err := ParseFont(goregular.TTF)
	require.NoError(t, err)
	sf, err := New(src, Config{})
	require.NoError(t, err)

	// All of printable ASCII is mapped by the Go fonts.
	codes := map[uint16]bool{}
	for _, c := range sf.Characters() {
		codes[c.Code] = true
		assert.NotZero(t, c.GlyphID, "U+%04X", c.Rune)
		for _, block := range c.Blocks {
			assert.LessOrEqual(t, len(block), maxBlockLen)
		}
	}
	for code := uint16(0x20); code < 0x7F; code++ {
		assert.True(t, codes[code], "code %#x", code)
	}

	var rec recorder
	sf.Emit(&rec, 1, 12)
	assert.Equal(t, "ESC*c1D", rec.ops[0])
	assert.Equal(t, "ESC&d@", rec.ops[5])
}
