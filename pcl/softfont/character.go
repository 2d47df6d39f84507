/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package softfont

import "fmt"

// Character descriptor limits. A character definition command carries at most maxBlockLen bytes;
// continuation blocks spend two of them on their own head.
const (
	maxBlockLen        = 32767
	maxContinuationLen = maxBlockLen - 2
)

const (
	formatTrueType = 15
	classTrueType  = 15
)

// MaxOutlineLen is the longest outline that fits the 16 bit character data size field, which also
// counts the glyph id and itself.
const MaxOutlineLen = 0xFFFF - 4

// CharacterDescriptor is the format 15 character download of one glyph. Outline must not be longer
// than MaxOutlineLen; EncodeCharacter checks it.
type CharacterDescriptor struct {
	GlyphID uint16
	Outline []byte // raw glyf data of the glyph.
}

// Bytes returns the unsplit descriptor: format, continuation, descriptor size, class, character data
// size, glyph id, outline, a reserved byte and the checksum. The checksum makes the bytes from the
// character data size onward sum to 0 modulo 256.
func (cd CharacterDescriptor) Bytes() []byte {
	var w byteWriter
	w.write(uint8(formatTrueType), uint8(0), uint8(2), uint8(classTrueType))
	w.write(uint16(4+len(cd.Outline)), cd.GlyphID, cd.Outline, uint8(0), uint8(0))
	b := w.bytes()
	b[len(b)-1] = checksum8(b[4 : len(b)-2])
	return b
}

// Blocks returns the descriptor split into character definition blocks. Blocks after the first
// start with the format byte and a continuation flag of 1.
func (cd CharacterDescriptor) Blocks() [][]byte {
	b := cd.Bytes()
	if len(b) <= maxBlockLen {
		return [][]byte{b}
	}

	blocks := [][]byte{b[:maxBlockLen]}
	for pos := maxBlockLen; pos < len(b); pos += maxContinuationLen {
		end := pos + maxContinuationLen
		if end > len(b) {
			end = len(b)
		}
		block := make([]byte, 0, 2+end-pos)
		block = append(block, formatTrueType, 1)
		block = append(block, b[pos:end]...)
		blocks = append(blocks, block)
	}
	return blocks
}

// EncodeCharacter returns the character definition blocks for `outline` of glyph `glyphID`.
func EncodeCharacter(glyphID uint16, outline []byte) ([][]byte, error) {
	if len(outline) > MaxOutlineLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrOutlineTooLarge, len(outline))
	}
	return CharacterDescriptor{GlyphID: glyphID, Outline: outline}.Blocks(), nil
}
