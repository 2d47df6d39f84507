/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Align is the horizontal alignment of text lines.
type Align int

// Text alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextOptions configures Text. The zero value wraps at the right margin and fills text with the
// fill colour.
type TextOptions struct {
	// Width is the wrapping width. When zero, text wraps at the right page margin.
	Width float64
	// NoWrap disables wrapping; lines only break at '\n'.
	NoWrap bool
	Align  Align
	// LineGap is added between lines, in addition to the document line gap.
	LineGap float64
	// CharacterSpacing is the HP-GL/2 extra space between characters, in character cells.
	CharacterSpacing float64

	// Fill and Stroke select the rendering mode. Neither set means fill.
	Fill, Stroke bool

	Underline, Strike bool
}

// LineGap sets the space added between lines of text.
func (d *Document) LineGap(gap float64) {
	d.lineGap = gap
}

// CurrentLineHeight returns the line height of the current font and size.
func (d *Document) CurrentLineHeight(includeGap bool) float64 {
	return d.font.LineHeight(d.fontSize, includeGap)
}

// WidthOfString returns the width of `s` in the current font and size.
func (d *Document) WidthOfString(s string) float64 {
	return d.font.WidthOfString(s, d.fontSize)
}

// MoveDown moves the cursor down by `lines` lines.
func (d *Document) MoveDown(lines float64) {
	d.y += d.CurrentLineHeight(true)*lines + d.lineGap
}

// MoveUp moves the cursor up by `lines` lines.
func (d *Document) MoveUp(lines float64) {
	d.y -= d.CurrentLineHeight(true)*lines + d.lineGap
}

// Text draws `s` with its top left corner at `x`, `y` in the current font. Lines break at '\n'
// and, unless disabled, are wrapped at word boundaries. The cursor ends below the last line.
// `opts` may be nil.
func (d *Document) Text(s string, x, y float64, opts *TextOptions) {
	if opts == nil {
		opts = &TextOptions{}
	}
	d.x, d.y = x, y

	width := opts.Width
	if width == 0 && !opts.NoWrap {
		width = d.page.Width - x - d.page.Margins.Right
	}
	measure := func(s string) float64 { return d.WidthOfString(s) }

	s = norm.NFC.String(s)
	for _, paragraph := range strings.Split(s, "\n") {
		lines := []string{paragraph}
		if !opts.NoWrap && width > 0 {
			lines = wrapText(paragraph, width, measure)
		}
		for _, line := range lines {
			d.fragment(line, d.x, d.y, width, opts)
			d.y += d.CurrentLineHeight(true) + d.lineGap + opts.LineGap
		}
	}
}

// fragment records a single line of text.
func (d *Document) fragment(text string, x, y, lineWidth float64, opts *TextOptions) {
	text = strings.TrimRightFunc(text, unicode.IsSpace)
	if text == "" {
		return
	}
	textWidth := d.WidthOfString(text)
	if lineWidth > 0 {
		switch opts.Align {
		case AlignRight:
			x += lineWidth - textWidth
		case AlignCenter:
			x += lineWidth/2 - textWidth/2
		}
	}

	if opts.Underline || opts.Strike {
		d.decorate(x, y, textWidth, opts)
	}

	d.page.useFont(d.font, d.fontSize)
	v := d.vector
	a, b, _, _, _, _ := v.ctm.Components()
	angle := math.Atan2(b, a)

	td := &textDrawing{
		text:    string(d.font.SoftFont.Encode(text)),
		pos:     v.coord(x, y+d.font.Ascender(d.fontSize)),
		font:    d.font,
		size:    d.fontSize,
		run:     math.Cos(-angle),
		rise:    math.Sin(-angle),
		spacing: opts.CharacterSpacing,
	}
	// Colours are taken at the time of the call.
	fill, stroke := v.fillColor, v.strokeColor
	switch {
	case opts.Fill && opts.Stroke:
		td.fill, td.stroke = &fill, &stroke
	case opts.Stroke:
		td.stroke = &stroke
	default:
		td.fill = &fill
	}
	d.add(td)
}

// decorate strokes an underline or strike through line for text at `x`, `y` of `width`.
func (d *Document) decorate(x, y, width float64, opts *TextOptions) {
	v := d.vector
	lineWidth, strokeColor, path := v.lineWidth, v.strokeColor, v.path
	defer func() { v.lineWidth, v.strokeColor, v.path = lineWidth, strokeColor, path }()
	v.path = nil

	if !opts.Stroke {
		v.strokeColor = v.fillColor
	}
	w := 0.5
	if d.fontSize >= 10 {
		w = math.Floor(d.fontSize / 10)
	}
	v.LineWidth(w)

	lineY := y + d.CurrentLineHeight(false)/2
	if opts.Underline {
		lineY = y + d.CurrentLineHeight(false) - w
	}
	v.MoveTo(x, lineY)
	v.LineTo(x+width, lineY)
	v.Stroke()
}

// wrapText breaks `text` into lines no wider than `width` at spaces. Words wider than `width` are
// broken between characters.
func wrapText(text string, width float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line string
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if measure(candidate) <= width {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
		for measure(word) > width {
			n := fitRunes(word, width, measure)
			lines = append(lines, word[:n])
			word = word[n:]
		}
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// fitRunes returns the byte length of the longest prefix of `word` fitting `width`, at least one
// rune.
func fitRunes(word string, width float64, measure func(string) float64) int {
	n := 0
	for i, r := range word {
		end := i + len(string(r))
		if n > 0 && measure(word[:end]) > width {
			break
		}
		n = end
	}
	return n
}

// textDrawing is a line of HP-GL/2 label text.
type textDrawing struct {
	text         string // encoded in the font's symbol set.
	pos          point
	font         *Font
	size         float64
	run, rise    float64
	spacing      float64
	fill, stroke *RGB
}

func (d *textDrawing) render(s *Stream) {
	switch {
	case d.fill != nil && d.stroke != nil:
		s.WriteHPGL(d.fill.pc(1) + "SP1;")
		s.WriteHPGL(d.stroke.pc(2))
		s.WriteHPGL("CF0,2;")
	case d.stroke != nil:
		s.WriteHPGL(d.stroke.pc(1) + "SP1;")
		s.WriteHPGL("CF1,1;")
	default:
		s.WriteHPGL(d.fill.pc(1) + "SP1;")
		s.WriteHPGL("CF0,0;")
	}
	s.WriteHPGL("SD4," + formatNumber(d.size) + ";")
	s.WriteHPGL("ES" + formatNumber(d.spacing) + ";")
	s.WriteHPGL("DI" + formatNumber(d.run) + "," + formatNumber(d.rise) + ";")
	s.WriteHPGL("FI" + strconv.Itoa(d.font.ID) + ";")
	s.WriteHPGL("PU" + d.pos.String() + ";")
	s.WriteHPGL("LB" + d.text + "\x03;")
}
