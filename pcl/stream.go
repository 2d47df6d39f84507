/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import (
	"bufio"
	"io"
	"strings"

	"github.com/pclkit/pclkit/common"
)

// streamMode is the kind of data last written to a Stream.
type streamMode int

const (
	modePCL streamMode = iota
	modeText
	modeBinary
	modeHPGL
)

// HP-GL/2 mode switches.
const (
	enterHPGL = "\x1b%0B"
	initHPGL  = "IN;"
	leaveHPGL = "\x1b%0A"
)

// minCombinable is the length of the shortest PCL command that is combined with a pending one.
// Shorter commands, such as ESC&l1O, flush the pending command and are written as is.
const minCombinable = 6

// Stream writes PCL, HP-GL/2, text and binary data to an io.Writer. Consecutive PCL commands of
// the same parameterized and group class are combined into one escape sequence, e.g.
// ESC&l1O + ESC&l2A is written as ESC&l1o2A.
//
// The first write error of the underlying writer is kept and returned by Err and End. Later
// writes are dropped. A Stream is not safe for concurrent use.
type Stream struct {
	w       *bufio.Writer
	mode    streamMode
	pending string
	err     error
}

// NewStream returns a Stream writing to `w`.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: bufio.NewWriter(w)}
}

// WritePCL writes the printer command `cmd`.
func (s *Stream) WritePCL(cmd string) {
	if s.mode == modeHPGL {
		s.closeHPGL()
	}
	switch {
	case len(cmd) < minCombinable:
		s.flushPending()
		s.put(cmd)
	case len(s.pending) >= 3 && s.pending[1:3] == cmd[1:3]:
		// All letters of a combined command are lower case except the final one.
		s.pending = strings.ToLower(s.pending) + cmd[3:]
	default:
		s.flushPending()
		s.pending = cmd
	}
	s.mode = modePCL
}

// WriteText writes `text` as printable data.
func (s *Stream) WriteText(text string) {
	s.leave()
	s.put(text)
	s.mode = modeText
}

// WriteBinary writes `data` verbatim, e.g. the payload of a download command.
func (s *Stream) WriteBinary(data []byte) {
	s.leave()
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(data)
	s.mode = modeBinary
}

// WriteHPGL writes the HP-GL/2 instruction `cmd`, entering HP-GL/2 mode first if needed.
func (s *Stream) WriteHPGL(cmd string) {
	if s.mode != modeHPGL {
		s.flushPending()
		s.put(enterHPGL)
		s.put(initHPGL)
	}
	s.put(cmd)
	s.mode = modeHPGL
}

// End writes the pending command and flushes buffered data to the underlying writer. The writer
// is not closed.
func (s *Stream) End() error {
	s.flushPending()
	if s.err == nil {
		s.err = s.w.Flush()
	}
	if s.err != nil {
		common.Log.Debug("ERROR: pcl stream: %v", s.err)
	}
	return s.err
}

// Err returns the first error of the underlying writer.
func (s *Stream) Err() error {
	return s.err
}

// leave ends HP-GL/2 mode or writes the pending PCL command before non-command data.
func (s *Stream) leave() {
	switch s.mode {
	case modeHPGL:
		s.closeHPGL()
	case modePCL:
		s.flushPending()
	}
}

func (s *Stream) closeHPGL() {
	s.put(leaveHPGL)
}

func (s *Stream) flushPending() {
	if s.pending == "" {
		return
	}
	s.put(s.pending)
	s.pending = ""
}

func (s *Stream) put(str string) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.WriteString(str)
}
