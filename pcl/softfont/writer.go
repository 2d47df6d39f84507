/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package softfont

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// byteWriter accumulates big endian binary data for font headers, segments and character
// descriptors.
type byteWriter struct {
	buffer bytes.Buffer
}

// write writes a series of values. Strings and byte slices are copied verbatim.
func (w *byteWriter) write(fields ...interface{}) {
	for _, f := range fields {
		switch t := f.(type) {
		case []byte:
			w.buffer.Write(t)
		case string:
			w.buffer.WriteString(t)
		case uint8, int8, uint16, int16, uint32:
			// Fixed size values cannot fail on a bytes.Buffer.
			_ = binary.Write(&w.buffer, binary.BigEndian, t)
		default:
			panic(fmt.Sprintf("softfont: unsupported field type %T", t))
		}
	}
}

func (w *byteWriter) len() int {
	return w.buffer.Len()
}

func (w *byteWriter) bytes() []byte {
	return w.buffer.Bytes()
}

// checksum8 returns the byte that makes the sum of `data` and itself 0 modulo 256.
func checksum8(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return -sum
}
