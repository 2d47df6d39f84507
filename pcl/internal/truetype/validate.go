/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"fmt"

	"github.com/pclkit/pclkit/common"
)

// checksumMagic is the value the whole font sums to once head.checksumAdjustment is included.
const checksumMagic = 0xB1B0AFBA

// validate font data model `f`. Checks whether the table checksums and the whole file
// checksum are correct.
func (f *font) validate() error {
	if f.trec == nil || f.ot == nil || f.head == nil {
		common.Log.Debug("Offset table, table records or head missing")
		return errRequiredField
	}

	// Validate the font.
	common.Log.Debug("Validating entire font")
	{
		headRec, ok := f.trec.trMap["head"]
		if !ok || headRec.length < 12 {
			common.Log.Debug("head not set")
			return errRequiredField
		}
		data := make([]byte, len(f.data))
		copy(data, f.data)

		// set checksumAdjustment data to 0 in the head table.
		hoff := headRec.offset
		data[hoff+8], data[hoff+9], data[hoff+10], data[hoff+11] = 0, 0, 0, 0

		adjustment := checksumMagic - Checksum(data)
		if f.head.checksumAdjustment != adjustment {
			return fmt.Errorf("%w: file adjustment 0x%08x, expected 0x%08x", ErrChecksum,
				f.head.checksumAdjustment, adjustment)
		}
	}

	// Validate each table.
	common.Log.Debug("Validating font tables")
	for _, tr := range f.trec.list {
		b := f.tableData(tr.tableTag.String())
		if tr.tableTag.String() == "head" {
			// Set the checksumAdjustment to 0 so that head checksum is valid.
			dup := make([]byte, len(b))
			copy(dup, b)
			dup[8], dup[9], dup[10], dup[11] = 0, 0, 0, 0
			b = dup
		}

		checksum := Checksum(b)
		if tr.checksum != checksum {
			common.Log.Debug("Invalid checksum for %s (%d != %d)", tr.tableTag, checksum, tr.checksum)
			return fmt.Errorf("%w: table %s", ErrChecksum, tr.tableTag)
		}
	}

	return nil
}
