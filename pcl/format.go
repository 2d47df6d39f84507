/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import (
	"math"
	"strconv"
)

// numberPrecision is the number of decimals kept in command parameters.
const numberPrecision = 4

// formatNumber formats `v` as a command parameter: no exponent, no trailing zeros, at most
// numberPrecision decimals.
func formatNumber(v float64) string {
	p := math.Pow10(numberPrecision)
	v = math.Round(v*p) / p
	if v == 0 {
		// Avoid "-0".
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// decipoints converts `v` points to a decipoint command parameter.
func decipoints(v float64) string {
	return formatNumber(v * 10)
}
