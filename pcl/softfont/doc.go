/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package softfont converts truetype fonts into PCL 5 downloadable soft fonts (header format 15).
//
// A SoftFont holds a complete font header with its segments and one character download per printable
// character. Everything is built by New, so emitting a font to a stream cannot fail halfway:
//
//	src, err := softfont.ParseFont(ttf)
//	...
//	sf, err := softfont.New(src, softfont.Config{})
//	...
//	sf.Emit(stream, 1, 12)
package softfont
