/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGB is an 8 bit per component colour as used by the HP-GL/2 PC instruction.
type RGB [3]uint8

// Common colours.
var (
	ColorBlack = RGB{0, 0, 0}
	ColorWhite = RGB{255, 255, 255}
)

// ParseColor returns the colour of `v`, which is one of RGB, color.Color, a hex string (#rgb or
// #rrggbb) or a CSS colour name.
func ParseColor(v interface{}) (RGB, error) {
	switch t := v.(type) {
	case RGB:
		return t, nil
	case color.Color:
		return rgbOf(t), nil
	case string:
		return parseColorString(t)
	}
	return RGB{}, fmt.Errorf("%w: %T", ErrInvalidColor, v)
}

// Hex returns `c` as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// pc returns the HP-GL/2 instruction assigning `c` to pen `pen`.
func (c RGB) pc(pen int) string {
	return "PC" + strconv.Itoa(pen) + "," + strconv.Itoa(int(c[0])) + "," + strconv.Itoa(int(c[1])) + "," +
		strconv.Itoa(int(c[2])) + ";"
}

func rgbOf(c color.Color) RGB {
	// Non premultiplied components composed over white.
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	blend := func(v uint8) uint8 {
		return uint8((int(v)*int(nc.A) + 255*(255-int(nc.A))) / 255)
	}
	return RGB{blend(nc.R), blend(nc.G), blend(nc.B)}
}

func parseColorString(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGB{c.R, c.G, c.B}, nil
	}
	return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}
