/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package transform implements the affine current transformation matrix used for page drawing.
package transform

import (
	"fmt"
	"math"
)

// Matrix is a linear transform matrix in homogenous coordinates.
// Only the affine part is used:
//
//	a b 0
//	c d 0
//	tx ty 1
//
// A point (x, y) maps to (a*x + c*y + tx, b*x + d*y + ty).
type Matrix [9]float64

// minDeterminant is the smallest determinant of an invertible matrix.
const minDeterminant = 1.0e-6

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return NewMatrix(1, 0, 0, 1, 0, 0)
}

// TranslationMatrix returns a matrix that translates by `tx`, `ty`.
func TranslationMatrix(tx, ty float64) Matrix {
	return NewMatrix(1, 0, 0, 1, tx, ty)
}

// ScaleMatrix returns a matrix that scales by `sx`, `sy`.
func ScaleMatrix(sx, sy float64) Matrix {
	return NewMatrix(sx, 0, 0, sy, 0, 0)
}

// RotationMatrix returns a matrix that rotates by `angle` degrees.
func RotationMatrix(angle float64) Matrix {
	rad := angle * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return NewMatrix(cos, sin, -sin, cos, 0, 0)
}

// NewMatrix returns an affine transform matrix laid out in homogenous coordinates as
//
//	a  b  0
//	c  d  0
//	tx ty 1
func NewMatrix(a, b, c, d, tx, ty float64) Matrix {
	m := Matrix{}
	m.Set(a, b, c, d, tx, ty)
	return m
}

// String returns a string describing `m`.
func (m Matrix) String() string {
	a, b, c, d, tx, ty := m[0], m[1], m[3], m[4], m[6], m[7]
	return fmt.Sprintf("[%.4f,%.4f,%.4f,%.4f:%.4f,%.4f]", a, b, c, d, tx, ty)
}

// Set sets `m` to affine transform a,b,c,d,tx,ty.
func (m *Matrix) Set(a, b, c, d, tx, ty float64) {
	m[0], m[1] = a, b
	m[3], m[4] = c, d
	m[6], m[7] = tx, ty
	m[2], m[5], m[8] = 0, 0, 1
}

// Components returns a, b, c, d, tx, ty.
func (m Matrix) Components() (a, b, c, d, tx, ty float64) {
	return m[0], m[1], m[3], m[4], m[6], m[7]
}

// Concat sets `m` to `b` × `m`, so `b` is applied to points before `m`.
//
//	b00 b01 0     m00 m01 0     b00*m00 + b01*m10        b00*m01 + b01*m11        0
//	b10 b11 0  ×  m10 m11 0  ➔  b10*m00 + b11*m10        b10*m01 + b11*m11        0
//	b20 b21 1     m20 m21 1     b20*m00 + b21*m10 + m20  b20*m01 + b21*m11 + m21  1
func (m *Matrix) Concat(b Matrix) {
	*m = Matrix{
		b[0]*m[0] + b[1]*m[3], b[0]*m[1] + b[1]*m[4], 0,
		b[3]*m[0] + b[4]*m[3], b[3]*m[1] + b[4]*m[4], 0,
		b[6]*m[0] + b[7]*m[3] + m[6], b[6]*m[1] + b[7]*m[4] + m[7], 1,
	}
}

// Mult returns `b` × `m`.
func (m Matrix) Mult(b Matrix) Matrix {
	m.Concat(b)
	return m
}

// Translate applies a translation of `tx`, `ty` before `m`.
func (m *Matrix) Translate(tx, ty float64) {
	m.Concat(TranslationMatrix(tx, ty))
}

// Scale applies a scaling by `sx`, `sy` before `m`.
func (m *Matrix) Scale(sx, sy float64) {
	m.Concat(ScaleMatrix(sx, sy))
}

// Rotate applies a rotation of `angle` degrees before `m`.
func (m *Matrix) Rotate(angle float64) {
	m.Concat(RotationMatrix(angle))
}

// Translation returns the translation part of `m`.
func (m Matrix) Translation() (float64, float64) {
	return m[6], m[7]
}

// ScalingFactorX returns the X scaling of the affine transform.
func (m Matrix) ScalingFactorX() float64 {
	return math.Hypot(m[0], m[1])
}

// ScalingFactorY returns the Y scaling of the affine transform.
func (m Matrix) ScalingFactorY() float64 {
	return math.Hypot(m[3], m[4])
}

// Angle returns the angle of the affine transform in `m` in degrees, in the range [0, 360).
func (m Matrix) Angle() float64 {
	theta := math.Atan2(-m[1], m[0])
	if theta < 0.0 {
		theta += 2 * math.Pi
	}
	return theta / math.Pi * 180.0
}

// Transform returns coordinates `x`, `y` transformed by `m`.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	xp := x*m[0] + y*m[3] + m[6]
	yp := x*m[1] + y*m[4] + m[7]
	return xp, yp
}

// Inverse returns the inverse of `m` and a bool flag that is false if `m` has no inverse.
func (m Matrix) Inverse() (Matrix, bool) {
	a, b := m[0], m[1]
	c, d := m[3], m[4]
	tx, ty := m[6], m[7]
	det := a*d - b*c
	if math.Abs(det) < minDeterminant {
		return Matrix{}, false
	}
	aI, bI := d/det, -b/det
	cI, dI := -c/det, a/det
	txI := -(aI*tx + cI*ty)
	tyI := -(bI*tx + dI*ty)
	return NewMatrix(aI, bI, cI, dI, txI, tyI), true
}
