/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package softfont

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pclkit/pclkit/common"
	"github.com/pclkit/pclkit/pcl/internal/truetype"
	"github.com/pclkit/pclkit/pcl/internal/truetype/sfnttest"
)

func init() {
	common.SetLogger(common.NewConsoleLogger(common.LogLevelInfo))
}

var (
	glyphA = sfnttest.SimpleGlyph(10, 0, 1290, 1400, []byte{1, 2, 3, 4, 5})
	glyphH = sfnttest.SimpleGlyph(100, 0, 1300, 1450, []byte{6, 7, 8})
	glyphX = sfnttest.SimpleGlyph(20, 0, 980, 1000, []byte{9, 10})
)

// testBuilder returns a font mapping space, 'A', 'H' and 'x' without OS/2 and PCLT tables.
func testBuilder() *sfnttest.Builder {
	return &sfnttest.Builder{
		UnitsPerEm: 2048,
		BBox:       [4]int16{-100, -400, 1800, 1900},
		Ascender:   1800,
		Descender:  -400,
		LineGap:    100,
		FullName:   "Test Sans",
		Glyphs: []sfnttest.Glyph{
			{Rune: ' ', Advance: 500},
			{Rune: 'A', Advance: 1300, Data: glyphA},
			{Rune: 'H', Advance: 1400, Data: glyphH},
			{Rune: 'x', Advance: 1000, Data: glyphX},
		},
	}
}

func parse(t *testing.T, b *sfnttest.Builder) *truetype.Font {
	t.Helper()
	fnt, err := truetype.ParseBytes(b.Bytes())
	require.NoError(t, err)
	return fnt
}
