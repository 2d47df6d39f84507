/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package softfont

import "errors"

var (
	// ErrMissingRequiredTable is returned when the source font lacks a table the font header or the
	// glyph downloads are built from. It is wrapped together with the table tag.
	ErrMissingRequiredTable = errors.New("required font table missing")

	// ErrSegmentTooLarge is returned when segment data does not fit the 16 bit segment size field.
	ErrSegmentTooLarge = errors.New("segment data exceeds 65535 bytes")

	// ErrOutlineTooLarge is returned for glyph outlines longer than MaxOutlineLen.
	ErrOutlineTooLarge = errors.New("glyph outline exceeds character data size")
)
