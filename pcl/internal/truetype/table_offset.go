/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/pclkit/pclkit/common"
)

// Scaler types accepted for glyf based truetype fonts.
const (
	scalerTypeTrueType = 0x00010000
	scalerTypeApple    = 0x74727565 // 'true'
)

type offsetTable struct {
	sfntVersion   uint32
	numTables     uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

func (f *font) parseOffsetTable(r *byteReader) (*offsetTable, error) {
	ot := &offsetTable{}

	err := r.read(&ot.sfntVersion, &ot.numTables, &ot.searchRange)
	if err != nil {
		return nil, err
	}

	err = r.read(&ot.entrySelector, &ot.rangeShift)
	if err != nil {
		return nil, err
	}

	if ot.sfntVersion != scalerTypeTrueType && ot.sfntVersion != scalerTypeApple {
		common.Log.Debug("Unsupported sfnt version 0x%08x", ot.sfntVersion)
		return nil, ErrUnsupportedFormat
	}

	return ot, nil
}
