/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import (
	"math"
	"strconv"
	"strings"

	"github.com/pclkit/pclkit/pcl/internal/transform"
)

// kappa places the control points of a cubic Bezier approximating a quarter circle.
var kappa = 4.0 * ((math.Sqrt2 - 1.0) / 3.0)

// lineWidthScale converts a line width in points to HP-GL/2 millimetres.
const lineWidthScale = 0.3

// LineCap is an HP-GL/2 line end style.
type LineCap int

// Line end styles.
const (
	LineCapButt       LineCap = 1
	LineCapSquare     LineCap = 2
	LineCapTriangular LineCap = 3
	LineCapRound      LineCap = 4
)

// LineJoin is an HP-GL/2 line join style.
type LineJoin int

// Line join styles.
const (
	LineJoinMiter      LineJoin = 1
	LineJoinMiterBevel LineJoin = 2
	LineJoinTriangular LineJoin = 3
	LineJoinRound      LineJoin = 4
	LineJoinBevel      LineJoin = 5
	LineJoinNone       LineJoin = 6
)

type point struct {
	x, y float64
}

type pathOpKind int

const (
	pathMoveTo pathOpKind = iota
	pathLineTo
	pathCurveTo
)

// pathOp is a path segment in page coordinates. Curves use all three points, the others only the
// first.
type pathOp struct {
	kind pathOpKind
	pts  [3]point
}

// contentSink receives the drawings of the current page.
type contentSink interface {
	add(d drawing)
}

// VectorState builds paths and holds the graphics state: transform, line width and colours.
// Points are transformed by the current transform when they are added to the path.
type VectorState struct {
	sink contentSink

	path     []pathOp
	ctm      transform.Matrix
	ctmStack []transform.Matrix

	lineWidth   float64 // mm
	fillColor   RGB
	strokeColor RGB

	// Untransformed start of the current subpath and current point.
	lastMove point
	pos      point
}

func newVectorState(sink contentSink) *VectorState {
	return &VectorState{
		sink:      sink,
		ctm:       transform.IdentityMatrix(),
		lineWidth: lineWidthScale,
	}
}

// CTM returns the current transform.
func (v *VectorState) CTM() transform.Matrix {
	return v.ctm
}

func (v *VectorState) resetCTM() {
	v.ctm = transform.IdentityMatrix()
	v.ctmStack = nil
}

func (v *VectorState) coord(x, y float64) point {
	x, y = v.ctm.Transform(x, y)
	return point{x, y}
}

// Save pushes the current transform.
func (v *VectorState) Save() {
	v.ctmStack = append(v.ctmStack, v.ctm)
}

// Restore pops the transform pushed by the matching Save. Without one the identity is restored.
func (v *VectorState) Restore() {
	n := len(v.ctmStack)
	if n == 0 {
		v.ctm = transform.IdentityMatrix()
		return
	}
	v.ctm = v.ctmStack[n-1]
	v.ctmStack = v.ctmStack[:n-1]
}

// Transform applies the affine transform a b c d e f before the current transform.
func (v *VectorState) Transform(a, b, c, d, e, f float64) {
	v.ctm.Concat(transform.NewMatrix(a, b, c, d, e, f))
}

// Translate moves the origin to `x`, `y`.
func (v *VectorState) Translate(x, y float64) {
	v.ctm.Translate(x, y)
}

// Rotate rotates by `angle` degrees around the origin.
func (v *VectorState) Rotate(angle float64) {
	v.RotateAbout(angle, 0, 0)
}

// RotateAbout rotates by `angle` degrees around `x`, `y`.
func (v *VectorState) RotateAbout(angle, x, y float64) {
	rad := angle * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	x1 := x*cos - y*sin
	y1 := x*sin + y*cos
	v.Transform(cos, sin, -sin, cos, x-x1, y-y1)
}

// Scale scales by `sx`, `sy` around the origin.
func (v *VectorState) Scale(sx, sy float64) {
	v.ctm.Scale(sx, sy)
}

// ScaleAbout scales by `sx`, `sy` around `x`, `y`.
func (v *VectorState) ScaleAbout(sx, sy, x, y float64) {
	v.Transform(sx, 0, 0, sy, x-sx*x, y-sy*y)
}

// LineWidth sets the stroke width to `w` points.
func (v *VectorState) LineWidth(w float64) {
	v.lineWidth = w * lineWidthScale
}

// FillColor sets the colour of fills and filled text. See ParseColor for accepted values.
func (v *VectorState) FillColor(c interface{}) error {
	rgb, err := ParseColor(c)
	if err != nil {
		return err
	}
	v.fillColor = rgb
	return nil
}

// StrokeColor sets the colour of strokes and outlined text. See ParseColor for accepted values.
func (v *VectorState) StrokeColor(c interface{}) error {
	rgb, err := ParseColor(c)
	if err != nil {
		return err
	}
	v.strokeColor = rgb
	return nil
}

// LineCap sets the line end style of following strokes.
func (v *VectorState) LineCap(c LineCap) {
	v.sink.add(hpglDrawing("LA1," + strconv.Itoa(int(c)) + ";"))
}

// LineJoin sets the line join style of following strokes.
func (v *VectorState) LineJoin(j LineJoin) {
	v.sink.add(hpglDrawing("LA2," + strconv.Itoa(int(j)) + ";"))
}

// MiterLimit sets the miter limit of following strokes.
func (v *VectorState) MiterLimit(m float64) {
	v.sink.add(hpglDrawing("LA3," + formatNumber(m) + ";"))
}

// Dash sets a dashed line pattern of `length`.
func (v *VectorState) Dash(length float64) {
	v.sink.add(hpglDrawing("LT2," + formatNumber(length/2) + ",1;"))
}

// Undash restores solid lines.
func (v *VectorState) Undash() {
	v.sink.add(hpglDrawing("LT;"))
}

// MoveTo starts a new subpath at `x`, `y`.
func (v *VectorState) MoveTo(x, y float64) {
	v.path = append(v.path, pathOp{kind: pathMoveTo, pts: [3]point{v.coord(x, y)}})
	v.lastMove = point{x, y}
	v.pos = v.lastMove
}

// LineTo adds a line to `x`, `y`.
func (v *VectorState) LineTo(x, y float64) {
	v.path = append(v.path, pathOp{kind: pathLineTo, pts: [3]point{v.coord(x, y)}})
	v.pos = point{x, y}
}

// BezierCurveTo adds a cubic Bezier curve to `x`, `y` with control points `cp1x`, `cp1y` and
// `cp2x`, `cp2y`.
func (v *VectorState) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	v.path = append(v.path, pathOp{
		kind: pathCurveTo,
		pts:  [3]point{v.coord(cp1x, cp1y), v.coord(cp2x, cp2y), v.coord(x, y)},
	})
	v.pos = point{x, y}
}

// QuadraticCurveTo adds a quadratic Bezier curve to `x`, `y` with control point `cpx`, `cpy`.
func (v *VectorState) QuadraticCurveTo(cpx, cpy, x, y float64) {
	cp1x := (v.pos.x + 2*cpx) / 3
	cp1y := (v.pos.y + 2*cpy) / 3
	cp2x := (x + 2*cpx) / 3
	cp2y := (y + 2*cpy) / 3
	v.BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y)
}

// ClosePath adds a line back to the start of the current subpath.
func (v *VectorState) ClosePath() {
	v.LineTo(v.lastMove.x, v.lastMove.y)
}

// Rect adds the rectangle at `x`, `y` of size `w` x `h`.
func (v *VectorState) Rect(x, y, w, h float64) {
	v.MoveTo(x, y)
	v.LineTo(x+w, y)
	v.LineTo(x+w, y+h)
	v.LineTo(x, y+h)
	v.LineTo(x, y)
}

// RoundedRect adds a rectangle with corners rounded by radius `r`.
func (v *VectorState) RoundedRect(x, y, w, h, r float64) {
	r = math.Max(0, math.Min(r, math.Min(0.5*w, 0.5*h)))
	// Inset of the control points from the corners.
	c := r * (1.0 - kappa)

	v.MoveTo(x+r, y)
	v.LineTo(x+w-r, y)
	v.BezierCurveTo(x+w-c, y, x+w, y+c, x+w, y+r)
	v.LineTo(x+w, y+h-r)
	v.BezierCurveTo(x+w, y+h-c, x+w-c, y+h, x+w-r, y+h)
	v.LineTo(x+r, y+h)
	v.BezierCurveTo(x+c, y+h, x, y+h-c, x, y+h-r)
	v.LineTo(x, y+r)
	v.BezierCurveTo(x, y+c, x+c, y, x+r, y)
	v.ClosePath()
}

// Ellipse adds the ellipse centered at `x`, `y` with radii `r1` and `r2`.
func (v *VectorState) Ellipse(x, y, r1, r2 float64) {
	x -= r1
	y -= r2
	ox := r1 * kappa
	oy := r2 * kappa
	xe := x + r1*2
	ye := y + r2*2
	xm := x + r1
	ym := y + r2

	v.MoveTo(x, ym)
	v.BezierCurveTo(x, ym-oy, xm-ox, y, xm, y)
	v.BezierCurveTo(xm+ox, y, xe, ym-oy, xe, ym)
	v.BezierCurveTo(xe, ym+oy, xm+ox, ye, xm, ye)
	v.BezierCurveTo(xm-ox, ye, x, ym+oy, x, ym)
	v.ClosePath()
}

// Circle adds the circle centered at `x`, `y`.
func (v *VectorState) Circle(x, y, radius float64) {
	v.Ellipse(x, y, radius, radius)
}

// Arc adds a circular arc around `x`, `y` from `startAngle` to `endAngle` radians.
func (v *VectorState) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	const twoPi = 2.0 * math.Pi
	const halfPi = 0.5 * math.Pi

	delta := endAngle - startAngle
	if math.Abs(delta) > twoPi {
		delta = twoPi
	} else if delta != 0 && anticlockwise != (delta < 0) {
		dir := 1.0
		if anticlockwise {
			dir = -1
		}
		delta = dir*twoPi + delta
	}

	numSegs := int(math.Ceil(math.Abs(delta) / halfPi))
	cur := startAngle
	ax := x + math.Cos(cur)*radius
	ay := y + math.Sin(cur)*radius
	v.MoveTo(ax, ay)
	if numSegs == 0 {
		return
	}

	segAng := delta / float64(numSegs)
	handle := (segAng / halfPi) * kappa * radius
	dcx := -math.Sin(cur) * handle
	dcy := math.Cos(cur) * handle
	for i := 0; i < numSegs; i++ {
		cp1x := ax + dcx
		cp1y := ay + dcy

		cur += segAng
		ax = x + math.Cos(cur)*radius
		ay = y + math.Sin(cur)*radius
		dcx = -math.Sin(cur) * handle
		dcy = math.Cos(cur) * handle

		v.BezierCurveTo(cp1x, cp1y, ax-dcx, ay-dcy, ax, ay)
	}
}

// Polygon adds the closed polygon through `points`.
func (v *VectorState) Polygon(points ...[2]float64) {
	if len(points) == 0 {
		return
	}
	v.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		v.LineTo(p[0], p[1])
	}
	v.ClosePath()
}

// Fill fills the current path with the fill colour and starts a new path.
func (v *VectorState) Fill() {
	v.paint(true, v.fillColor)
}

// Stroke strokes the current path with the stroke colour and starts a new path.
func (v *VectorState) Stroke() {
	v.paint(false, v.strokeColor)
}

// FillAndStroke fills, then strokes the current path.
func (v *VectorState) FillAndStroke() {
	path := v.path
	v.Fill()
	v.path = path
	v.Stroke()
}

// Clip is accepted for compatibility and has no effect: PCL only clips to rectangles.
func (v *VectorState) Clip() {}

func (v *VectorState) paint(fill bool, color RGB) {
	path := v.path
	v.path = nil
	if len(path) == 0 {
		return
	}
	v.sink.add(&pathDrawing{ops: path, fill: fill, color: color, lineWidth: v.lineWidth})
}

// hpglDrawing is a single HP-GL/2 instruction.
type hpglDrawing string

func (d hpglDrawing) render(s *Stream) {
	s.WriteHPGL(string(d))
}

// pathDrawing is a filled or stroked path.
type pathDrawing struct {
	ops       []pathOp
	fill      bool
	color     RGB
	lineWidth float64
}

func (d *pathDrawing) render(s *Stream) {
	s.WriteHPGL(d.color.pc(1) + "SP1;")
	s.WriteHPGL("PW" + formatNumber(d.lineWidth) + ";")
	if !d.fill {
		for _, op := range d.ops {
			s.WriteHPGL(op.hpgl())
		}
		return
	}

	// Each subpath is filled as a polygon.
	s.WriteHPGL("TR0;")
	polygon := false
	for _, op := range d.ops {
		switch {
		case op.kind == pathMoveTo && polygon:
			s.WriteHPGL("PM2;FP;")
			polygon = false
		case op.kind != pathMoveTo && !polygon:
			s.WriteHPGL("PM0;")
			polygon = true
		}
		s.WriteHPGL(op.hpgl())
	}
	if polygon {
		s.WriteHPGL("PM2;FP;")
	}
	s.WriteHPGL("SP1;")
}

func (op pathOp) hpgl() string {
	switch op.kind {
	case pathMoveTo:
		return "PU" + op.pts[0].String() + ";"
	case pathLineTo:
		return "PD" + op.pts[0].String() + ";"
	}
	return "PD;BZ" + strings.Join([]string{op.pts[0].String(), op.pts[1].String(), op.pts[2].String()}, ",") + ";"
}

func (p point) String() string {
	return formatNumber(p.x) + "," + formatNumber(p.y)
}
