/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package softfont

import (
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// SymbolSet maps code points to the character codes of a PCL symbol set.
type SymbolSet interface {
	// ID returns the symbol set value written into the font header.
	ID() uint16
	// Encode returns the character code of `r`. The bool flag is false if `r` is not in the set.
	Encode(r rune) (byte, bool)
}

// SymbolSetID returns the symbol set value of the selection `number` `letter`, e.g. 8U for
// Roman-8 is 8*32 + ('U' - 64) = 277.
func SymbolSetID(number int, letter byte) uint16 {
	return uint16(number*32 + int(letter) - 64)
}

// Supported symbol sets.
var (
	Roman8      SymbolSet = tableSymbolSet{id: SymbolSetID(8, 'U'), codes: roman8}
	Latin1      SymbolSet = charmapSymbolSet{id: SymbolSetID(0, 'N'), cm: charmap.ISO8859_1}
	Windows1252 SymbolSet = charmapSymbolSet{id: SymbolSetID(19, 'U'), cm: charmap.Windows1252}
	Windows1250 SymbolSet = charmapSymbolSet{id: SymbolSetID(9, 'E'), cm: charmap.Windows1250}
)

// charmapSymbolSet is a symbol set matching a single byte encoding of x/text.
type charmapSymbolSet struct {
	id uint16
	cm *charmap.Charmap
}

func (s charmapSymbolSet) ID() uint16 { return s.id }

func (s charmapSymbolSet) Encode(r rune) (byte, bool) {
	if unicode.IsControl(r) {
		return 0, false
	}
	b, ok := s.cm.EncodeRune(r)
	if !ok {
		return 0, false
	}
	return b, true
}

// tableSymbolSet is a symbol set defined by its upper half; codes 0x20-0x7E are ASCII.
type tableSymbolSet struct {
	id    uint16
	codes map[rune]byte
}

func (s tableSymbolSet) ID() uint16 { return s.id }

func (s tableSymbolSet) Encode(r rune) (byte, bool) {
	if r >= 0x20 && r < 0x7F {
		return byte(r), true
	}
	b, ok := s.codes[r]
	return b, ok
}

// roman8 is the upper half of HP Roman-8 (8U), which has no x/text charmap.
var roman8 = map[rune]byte{
	'À': 0xA1, 'Â': 0xA2, 'È': 0xA3, 'Ê': 0xA4, 'Ë': 0xA5, 'Î': 0xA6, 'Ï': 0xA7,
	'´': 0xA8, 'ˋ': 0xA9, 'ˆ': 0xAA, '¨': 0xAB, '˜': 0xAC,
	'Ù': 0xAD, 'Û': 0xAE, '₤': 0xAF,
	'¯': 0xB0, 'Ý': 0xB1, 'ý': 0xB2, '°': 0xB3, 'Ç': 0xB4, 'ç': 0xB5, 'Ñ': 0xB6, 'ñ': 0xB7,
	'¡': 0xB8, '¿': 0xB9, '¤': 0xBA, '£': 0xBB, '¥': 0xBC, '§': 0xBD, 'ƒ': 0xBE, '¢': 0xBF,
	'â': 0xC0, 'ê': 0xC1, 'ô': 0xC2, 'û': 0xC3, 'á': 0xC4, 'é': 0xC5, 'ó': 0xC6, 'ú': 0xC7,
	'à': 0xC8, 'è': 0xC9, 'ò': 0xCA, 'ù': 0xCB, 'ä': 0xCC, 'ë': 0xCD, 'ö': 0xCE, 'ü': 0xCF,
	'Å': 0xD0, 'î': 0xD1, 'Ø': 0xD2, 'Æ': 0xD3, 'å': 0xD4, 'í': 0xD5, 'ø': 0xD6, 'æ': 0xD7,
	'Ä': 0xD8, 'ì': 0xD9, 'Ö': 0xDA, 'Ü': 0xDB, 'É': 0xDC, 'ï': 0xDD, 'ß': 0xDE, 'Ô': 0xDF,
	'Á': 0xE0, 'Ã': 0xE1, 'ã': 0xE2, 'Ð': 0xE3, 'ð': 0xE4, 'Í': 0xE5, 'Ì': 0xE6, 'Ó': 0xE7,
	'Ò': 0xE8, 'Õ': 0xE9, 'õ': 0xEA, 'Š': 0xEB, 'š': 0xEC, 'Ú': 0xED, 'Ÿ': 0xEE, 'ÿ': 0xEF,
	'Þ': 0xF0, 'þ': 0xF1, '·': 0xF2, 'µ': 0xF3, '¶': 0xF4, '¾': 0xF5, '—': 0xF6, '¼': 0xF7,
	'½': 0xF8, 'ª': 0xF9, 'º': 0xFA, '«': 0xFB, '■': 0xFC, '»': 0xFD, '±': 0xFE,
}
