/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVector() (*VectorState, *recordingSink) {
	sink := &recordingSink{}
	return newVectorState(sink), sink
}

func TestVectorStroke(t *testing.T) {
	v, sink := newTestVector()
	v.Rect(0, 0, 10, 20)
	v.Stroke()

	require.Len(t, sink.drawings, 1)
	assert.Equal(t, "PC1,0,0,0;SP1;PW0.3;PU0,0;PD10,0;PD10,20;PD0,20;PD0,0;", render(t, sink.drawings[0]))
	assert.Empty(t, v.path)
}

func TestVectorFill(t *testing.T) {
	v, sink := newTestVector()
	require.NoError(t, v.FillColor("#ff0000"))
	v.LineWidth(2)
	v.Rect(0, 0, 10, 20)
	v.Polygon([2]float64{30, 30}, [2]float64{40, 30}, [2]float64{35, 40})
	v.Fill()

	require.Len(t, sink.drawings, 1)
	expected := "PC1,255,0,0;SP1;PW0.6;TR0;" +
		"PU0,0;PM0;PD10,0;PD10,20;PD0,20;PD0,0;PM2;FP;" +
		"PU30,30;PM0;PD40,30;PD35,40;PD30,30;PM2;FP;" +
		"SP1;"
	assert.Equal(t, expected, render(t, sink.drawings[0]))
}

func TestVectorFillAndStroke(t *testing.T) {
	v, sink := newTestVector()
	require.NoError(t, v.FillColor("white"))
	require.NoError(t, v.StrokeColor("#00f"))
	v.MoveTo(0, 0)
	v.LineTo(5, 5)
	v.FillAndStroke()

	require.Len(t, sink.drawings, 2)
	assert.Equal(t, "PC1,255,255,255;SP1;PW0.3;TR0;PU0,0;PM0;PD5,5;PM2;FP;SP1;", render(t, sink.drawings[0]))
	assert.Equal(t, "PC1,0,0,255;SP1;PW0.3;PU0,0;PD5,5;", render(t, sink.drawings[1]))
}

func TestVectorEmptyPath(t *testing.T) {
	v, sink := newTestVector()
	v.Fill()
	v.Stroke()
	assert.Empty(t, sink.drawings)
}

func TestVectorCurves(t *testing.T) {
	v, sink := newTestVector()
	v.MoveTo(0, 0)
	v.QuadraticCurveTo(3, 3, 6, 0)
	v.BezierCurveTo(7, 1, 8, 1, 9, 0)
	v.Stroke()

	require.Len(t, sink.drawings, 1)
	assert.Equal(t, "PC1,0,0,0;SP1;PW0.3;PU0,0;PD;BZ2,2,4,2,6,0;PD;BZ7,1,8,1,9,0;", render(t, sink.drawings[0]))
}

func TestVectorShapes(t *testing.T) {
	testcases := []struct {
		name   string
		draw   func(v *VectorState)
		ops    int
		start  point
		closed bool
	}{
		{"circle", func(v *VectorState) { v.Circle(50, 50, 10) }, 6, point{40, 50}, true},
		{"ellipse", func(v *VectorState) { v.Ellipse(50, 50, 20, 10) }, 6, point{30, 50}, true},
		{"rounded rect", func(v *VectorState) { v.RoundedRect(0, 0, 100, 50, 10) }, 10, point{10, 0}, true},
		{"half arc", func(v *VectorState) { v.Arc(0, 0, 10, 0, math.Pi, false) }, 3, point{10, 0}, false},
		{"full arc", func(v *VectorState) { v.Arc(0, 0, 10, 0, 3*math.Pi, false) }, 5, point{10, 0}, false},
		{"empty arc", func(v *VectorState) { v.Arc(0, 0, 10, 1, 1, false) }, 1, point{10 * math.Cos(1), 10 * math.Sin(1)}, false},
	}

	for _, tcase := range testcases {
		t.Run(tcase.name, func(t *testing.T) {
			v, _ := newTestVector()
			tcase.draw(v)
			require.Len(t, v.path, tcase.ops)
			assert.Equal(t, pathMoveTo, v.path[0].kind)
			assert.InDelta(t, tcase.start.x, v.path[0].pts[0].x, 1e-9)
			assert.InDelta(t, tcase.start.y, v.path[0].pts[0].y, 1e-9)
			if tcase.closed {
				last := v.path[len(v.path)-1]
				assert.Equal(t, pathLineTo, last.kind)
				assert.InDelta(t, tcase.start.x, last.pts[0].x, 1e-9)
				assert.InDelta(t, tcase.start.y, last.pts[0].y, 1e-9)
			}
		})
	}
}

func TestVectorArcEnd(t *testing.T) {
	v, _ := newTestVector()
	v.Arc(0, 0, 10, 0, math.Pi/2, false)
	require.Len(t, v.path, 2)
	end := v.path[1].pts[2]
	assert.InDelta(t, 0, end.x, 1e-9)
	assert.InDelta(t, 10, end.y, 1e-9)

	// Anticlockwise from 0 to pi/2 goes the long way round.
	v, _ = newTestVector()
	v.Arc(0, 0, 10, 0, math.Pi/2, true)
	assert.GreaterOrEqual(t, len(v.path), 4)
	end = v.path[len(v.path)-1].pts[2]
	assert.InDelta(t, 0, end.x, 1e-9)
	assert.InDelta(t, 10, end.y, 1e-9)
}

func TestVectorTransform(t *testing.T) {
	v, sink := newTestVector()
	v.Translate(5, 5)
	v.MoveTo(0, 0)
	v.Save()
	v.Scale(2, 2)
	v.LineTo(1, 1)
	v.Restore()
	v.LineTo(1, 1)
	v.Rotate(90)
	v.LineTo(10, 0)
	v.Stroke()

	require.Len(t, sink.drawings, 1)
	assert.Equal(t, "PC1,0,0,0;SP1;PW0.3;PU5,5;PD7,7;PD6,6;PD5,15;", render(t, sink.drawings[0]))

	// Restore without Save gives the identity.
	v.Restore()
	assert.Equal(t, [6]float64{1, 0, 0, 1, 0, 0}, components(v))
}

func TestVectorRotateAbout(t *testing.T) {
	v, _ := newTestVector()
	v.RotateAbout(180, 10, 10)
	x, y := v.CTM().Transform(10, 10)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 10, y, 1e-9)
	x, y = v.CTM().Transform(0, 0)
	assert.InDelta(t, 20, x, 1e-9)
	assert.InDelta(t, 20, y, 1e-9)

	v, _ = newTestVector()
	v.ScaleAbout(2, 3, 10, 10)
	x, y = v.CTM().Transform(10, 10)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 10, y, 1e-9)
	x, y = v.CTM().Transform(11, 11)
	assert.InDelta(t, 12, x, 1e-9)
	assert.InDelta(t, 13, y, 1e-9)
}

func TestVectorLineAttributes(t *testing.T) {
	v, sink := newTestVector()
	v.LineCap(LineCapRound)
	v.LineJoin(LineJoinBevel)
	v.MiterLimit(2.5)
	v.Dash(6)
	v.Undash()
	v.Clip()

	var out []string
	for _, d := range sink.drawings {
		out = append(out, render(t, d))
	}
	assert.Equal(t, "LA1,4;|LA2,5;|LA3,2.5;|LT2,3,1;|LT;", strings.Join(out, "|"))
}

func TestVectorColorError(t *testing.T) {
	v, _ := newTestVector()
	assert.ErrorIs(t, v.FillColor("bogus"), ErrInvalidColor)
	assert.ErrorIs(t, v.StrokeColor(3.5), ErrInvalidColor)
	assert.Equal(t, ColorBlack, v.fillColor)
}

func components(v *VectorState) [6]float64 {
	a, b, c, d, tx, ty := v.CTM().Components()
	return [6]float64{a, b, c, d, tx, ty}
}
