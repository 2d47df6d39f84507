/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package softfont

import (
	"fmt"
	"strconv"

	"github.com/pclkit/pclkit/common"
)

// CommandWriter receives the PCL commands and binary data of a font download.
type CommandWriter interface {
	WritePCL(cmd string)
	WriteBinary(data []byte)
}

// Character is the download of one character code.
type Character struct {
	Code    uint16 // character code in the symbol set.
	Rune    rune
	GlyphID uint16
	Blocks  [][]byte
}

// SoftFont is a truetype font converted to a PCL soft font. It is immutable once built.
type SoftFont struct {
	src        FontSource
	cfg        Config
	descriptor *FontDescriptor
	header     []byte
	chars      []Character
}

// New builds the font header and the character downloads of `src`. Characters are taken from the
// font's character set in ascending code point order; code points the symbol set cannot encode or
// whose code falls outside the configured range are skipped.
func New(src FontSource, cfg Config) (*SoftFont, error) {
	cfg = cfg.withDefaults()
	d, err := BuildDescriptor(src, cfg)
	if err != nil {
		return nil, err
	}

	sf := &SoftFont{
		src:        src,
		cfg:        cfg,
		descriptor: d,
		header:     d.Bytes(),
	}

	for _, r := range src.CharacterSet() {
		code, ok := cfg.SymbolSet.Encode(r)
		if !ok || code == 0 || uint16(code) < cfg.FirstCode || uint16(code) > cfg.LastCode {
			continue
		}
		gid, _ := src.GlyphIndex(r)
		outline, err := src.GlyphData(gid)
		if err != nil {
			return nil, fmt.Errorf("glyph %d (U+%04X): %w", gid, r, err)
		}
		blocks, err := EncodeCharacter(uint16(gid), outline)
		if err != nil {
			return nil, fmt.Errorf("glyph %d (U+%04X): %w", gid, r, err)
		}
		sf.chars = append(sf.chars, Character{
			Code:    uint16(code),
			Rune:    r,
			GlyphID: uint16(gid),
			Blocks:  blocks,
		})
	}

	common.Log.Debug("Soft font %q: %d byte header, %d characters", d.FontName, len(sf.header), len(sf.chars))
	return sf, nil
}

// Descriptor returns the font header fields.
func (sf *SoftFont) Descriptor() *FontDescriptor {
	return sf.descriptor
}

// Header returns the serialized font header.
func (sf *SoftFont) Header() []byte {
	return sf.header
}

// Characters returns the character downloads in emission order.
func (sf *SoftFont) Characters() []Character {
	return sf.chars
}

// Source returns the font the soft font was built from.
func (sf *SoftFont) Source() FontSource {
	return sf.src
}

// SymbolSet returns the symbol set the characters are encoded with.
func (sf *SoftFont) SymbolSet() SymbolSet {
	return sf.cfg.SymbolSet
}

// Emit writes the download of `sf` as font `id` and selects it as primary font at `size` points.
func (sf *SoftFont) Emit(w CommandWriter, id int, size float64) {
	w.WritePCL("\x1b*c" + strconv.Itoa(id) + "D")
	w.WritePCL("\x1b)s" + strconv.Itoa(len(sf.header)) + "W")
	w.WriteBinary(sf.header)
	w.WritePCL("\x1b(s" + strconv.FormatFloat(size, 'f', -1, 64) + "V")
	w.WritePCL("\x1b(" + strconv.Itoa(id) + "X")
	w.WritePCL("\x1b&d@")
	for _, c := range sf.chars {
		w.WritePCL("\x1b*c" + strconv.Itoa(int(c.Code)) + "E")
		for _, block := range c.Blocks {
			w.WritePCL("\x1b(s" + strconv.Itoa(len(block)) + "W")
			w.WriteBinary(block)
		}
	}
}

// Encode returns `s` as character codes of the font's symbol set. Runes outside the symbol set are
// replaced by '?'.
func (sf *SoftFont) Encode(s string) []byte {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		code, ok := sf.cfg.SymbolSet.Encode(r)
		if !ok {
			code = '?'
		}
		b = append(b, code)
	}
	return b
}

// AdvanceWidth returns the advance of `r` in units of the em square.
func (sf *SoftFont) AdvanceWidth(r rune) float64 {
	upem := sf.src.Head().UnitsPerEm
	if upem == 0 {
		return 0
	}
	return float64(sf.src.AdvanceWidth(glyphIndex(sf.src, r))) / float64(upem)
}
