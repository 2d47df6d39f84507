/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	utf16 "golang.org/x/text/encoding/unicode"

	"github.com/pclkit/pclkit/common"
)

// Name IDs looked up by FullName, in order of preference.
const (
	nameIDFamily         = 1
	nameIDFull           = 4
	nameIDPostScriptName = 6
)

// nameTable represents the Naming table (name).
// The naming table allows multilingual strings to be associated with the font.
// These strings can represent copyright notices, font names, family names, style names, and so on.
type nameTable struct {
	format       uint16
	count        uint16
	stringOffset offset16
	nameRecords  []*nameRecord // len = count.
}

// Each string in the string storage is referenced by a name record.
type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	length     uint16
	offset     offset16
	data       []byte // actual string data.
}

var utf16be = utf16.UTF16(utf16.BigEndian, utf16.IgnoreBOM)

// Decoded decodes the record data according to its platform and encoding.
func (nr nameRecord) Decoded() string {
	switch nr.platformID {
	case 0: // unicode, always UTF-16BE.
		return decodeUTF16(nr.data)
	case 1: // macintosh
		if nr.encodingID == 0 {
			var sb strings.Builder
			for _, val := range nr.data {
				sb.WriteRune(charmap.Macintosh.DecodeByte(val))
			}
			return sb.String()
		}
	case 3: // windows
		return decodeUTF16(nr.data)
	}
	return string(nr.data)
}

func decodeUTF16(data []byte) string {
	s, err := utf16be.NewDecoder().Bytes(data)
	if err != nil {
		common.Log.Debug("Invalid UTF-16 name string: %v", err)
		return ""
	}
	return string(s)
}

// nameByID returns the decoded entry for `nameID`, preferring Windows strings over
// Unicode and Macintosh ones. An empty string is returned when nothing is found.
func (t *nameTable) nameByID(nameID int) string {
	if t == nil {
		return ""
	}
	for _, platform := range []uint16{3, 0, 1} {
		for _, nr := range t.nameRecords {
			if int(nr.nameID) != nameID || nr.platformID != platform {
				continue
			}
			s := strings.TrimFunc(nr.Decoded(), func(r rune) bool {
				return unicode.IsSpace(r) || !unicode.IsPrint(r)
			})
			if s != "" {
				return s
			}
		}
	}
	return ""
}

func (f *font) parseNameTable(r *byteReader) (*nameTable, error) {
	tr, has, err := f.seekToTable(r, "name")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}

	t := &nameTable{}
	err = r.read(&t.format, &t.count, &t.stringOffset)
	if err != nil {
		return nil, err
	}
	if t.format > 1 {
		common.Log.Debug("ERROR: format > 1 (%d)", t.format)
		return nil, errRangeCheck
	}

	for i := 0; i < int(t.count); i++ {
		var nr nameRecord
		err = r.read(&nr.platformID, &nr.encodingID, &nr.languageID, &nr.nameID, &nr.length, &nr.offset)
		if err != nil {
			return nil, err
		}
		t.nameRecords = append(t.nameRecords, &nr)
	}

	// Get the actual string data. Language tag records of format 1 are not needed.
	for _, nr := range t.nameRecords {
		if int(t.stringOffset)+int(nr.offset)+int(nr.length) > int(tr.length) {
			common.Log.Debug("name string offset outside table")
			return nil, errRangeCheck
		}

		err = r.Seek(int64(t.stringOffset) + int64(tr.offset) + int64(nr.offset))
		if err != nil {
			return nil, err
		}

		err = r.readBytes(&nr.data, int(nr.length))
		if err != nil {
			return nil, err
		}
	}

	if common.Log.IsLogLevel(common.LogLevelTrace) {
		for _, nr := range t.nameRecords {
			common.Log.Trace("%d %d %d - '%s' (%d)", nr.platformID, nr.encodingID, nr.nameID, nr.Decoded(), len(nr.data))
		}
	}

	return t, nil
}
