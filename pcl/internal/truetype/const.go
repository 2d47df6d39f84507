/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "errors"

var (
	errTypeCheck       = errors.New("type check error")
	errRangeCheck      = errors.New("range check error")
	errRequiredField   = errors.New("required field missing")
	errUnsupportedCmap = errors.New("unsupported cmap subtable format")
)

var (
	// ErrUnsupportedFormat is returned for font data that is not a truetype (glyf based) sfnt.
	ErrUnsupportedFormat = errors.New("unsupported font format")

	// ErrMissingTable is returned when a table required for soft font conversion is absent.
	// It is wrapped together with the tag of the missing table.
	ErrMissingTable = errors.New("required table missing")

	// ErrChecksum is returned by Validate when a table or file checksum does not match.
	ErrChecksum = errors.New("checksum mismatch")
)
