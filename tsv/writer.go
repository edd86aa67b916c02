// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tsv

import (
	"bufio"
	"io"
	"strconv"
)

// Writer appends one field at a time to the current line; EndLine
// terminates it. A line with a single field is written as just that
// field and a newline.
type Writer struct {
	w    *bufio.Writer
	line []byte
}

// NewWriter creates a new tsv.Writer from an io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:    bufio.NewWriter(w),
		line: make([]byte, 0, 64),
	}
}

// WriteString appends the given string and a tab to the current line.
func (w *Writer) WriteString(s string) {
	w.line = append(w.line, s...)
	w.line = append(w.line, '\t')
}

// WriteUint32 converts the given uint32 to a string, and appends that and a
// tab to the current line.
func (w *Writer) WriteUint32(ui uint32) {
	w.WriteUint64(uint64(ui))
}

// WriteUint64 converts the given uint64 to a string, and appends that and a
// tab to the current line.
func (w *Writer) WriteUint64(ui uint64) {
	w.line = strconv.AppendUint(w.line, ui, 10)
	w.line = append(w.line, '\t')
}

// EndLine finishes the current line.  It must be nonempty.
func (w *Writer) EndLine() (err error) {
	w.line[len(w.line)-1] = '\n'
	_, err = w.w.Write(w.line)
	w.line = w.line[:0]
	return
}

// Flush flushes all finished lines.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
