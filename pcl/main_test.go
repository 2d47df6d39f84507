/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pclkit/pclkit/common"
)

func init() {
	common.SetLogger(common.NewConsoleLogger(common.LogLevelInfo))
}

// render returns the bytes written by `d`, without the HP-GL/2 mode entry.
func render(t *testing.T, d drawing) string {
	t.Helper()
	var buf bytes.Buffer
	s := NewStream(&buf)
	d.render(s)
	require.NoError(t, s.End())
	return strings.TrimPrefix(buf.String(), enterHPGL+initHPGL)
}

// recordingSink collects drawings added by a VectorState.
type recordingSink struct {
	drawings []drawing
}

func (r *recordingSink) add(d drawing) {
	r.drawings = append(r.drawings, d)
}

func newTestDocument(t *testing.T, opts *Options) (*Document, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	doc, err := New(&buf, opts)
	require.NoError(t, err)
	return doc, &buf
}
