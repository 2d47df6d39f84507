/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package truetype loads truetype fonts and exposes the tables, metrics and raw glyph data needed to
// convert them into PCL downloadable soft fonts.
package truetype
