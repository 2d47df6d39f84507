/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamCombine(t *testing.T) {
	testcases := []struct {
		name     string
		cmds     []string
		expected string
	}{
		{"same class", []string{"\x1b&l26A", "\x1b&l48F"}, "\x1b&l26a48F"},
		{"three commands", []string{"\x1b*t20H", "\x1b*t10V", "\x1b*t75R"}, "\x1b*t20h10v75R"},
		{"short commands never merge", []string{"\x1b&l1O", "\x1b&l2A"}, "\x1b&l1O\x1b&l2A"},
		{"short after long", []string{"\x1b&l26A", "\x1b&l0E"}, "\x1b&l26A\x1b&l0E"},
		{"different class", []string{"\x1b&l1O", "\x1b*c1D"}, "\x1b&l1O\x1b*c1D"},
		{"short command", []string{"\x1b&l1O", "\x1bE", "\x1b&l2A"}, "\x1b&l1O\x1bE\x1b&l2A"},
		{"short same class", []string{"\x1b*r1T", "\x1b*r2S"}, "\x1b*r1T\x1b*r2S"},
		{"pending then short", []string{"\x1b*t75R", "\x1b*r1T"}, "\x1b*t75R\x1b*r1T"},
	}

	for _, tcase := range testcases {
		t.Run(tcase.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := NewStream(&buf)
			for _, cmd := range tcase.cmds {
				s.WritePCL(cmd)
			}
			require.NoError(t, s.End())
			assert.Equal(t, tcase.expected, buf.String())
		})
	}
}

func TestStreamModes(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)

	s.WritePCL("\x1b&l1O")
	s.WriteHPGL("SP1;")
	s.WriteHPGL("PA0,0;")
	s.WritePCL("\x1b&a0h0V")
	s.WriteText("abc")
	s.WriteHPGL("PU1,2;")
	s.WriteBinary([]byte{0, 1, 2})
	s.WritePCL("\x1b*b0M")
	s.WriteBinary([]byte{3})
	require.NoError(t, s.End())

	expected := "\x1b&l1O" +
		"\x1b%0BIN;SP1;PA0,0;" +
		"\x1b%0A\x1b&a0h0V" +
		"abc" +
		"\x1b%0BIN;PU1,2;" +
		"\x1b%0A\x00\x01\x02" +
		"\x1b*b0M\x03"
	assert.Equal(t, expected, buf.String())
}

func TestStreamEndFlushesPending(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)
	s.WritePCL("\x1b&l1O")
	assert.Empty(t, buf.String())
	require.NoError(t, s.End())
	assert.Equal(t, "\x1b&l1O", buf.String())
}

// failingWriter fails every write.
type failingWriter struct {
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestStreamStickyError(t *testing.T) {
	errDisk := errors.New("disk full")
	s := NewStream(&failingWriter{err: errDisk})

	s.WritePCL("\x1b&l1O")
	s.WriteBinary(make([]byte, 8192))
	assert.ErrorIs(t, s.Err(), errDisk)

	s.WriteText("more")
	assert.ErrorIs(t, s.End(), errDisk)
	assert.ErrorIs(t, s.Err(), errDisk)
}

func TestFormatNumber(t *testing.T) {
	testcases := []struct {
		v        float64
		expected string
	}{
		{0, "0"},
		{12, "12"},
		{0.3, "0.3"},
		{0.1 + 0.2, "0.3"},
		{-0.00001, "0"},
		{1e-16, "0"},
		{612, "612"},
		{521.86, "521.86"},
		{2.0 / 3, "0.6667"},
		{-4.5, "-4.5"},
	}
	for _, tcase := range testcases {
		assert.Equal(t, tcase.expected, formatNumber(tcase.v), "%v", tcase.v)
	}
	assert.Equal(t, "5218.6", decipoints(521.86))
}
