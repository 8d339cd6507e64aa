/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"bytes"
	"io"
)

// byteWriter encapsulates io.Writer and provides methods to write atoms in sfnt byte order.
// Writes are buffered until flushed.
type byteWriter struct {
	w io.Writer

	buffer bytes.Buffer
}

func newByteWriter(w io.Writer) *byteWriter {
	return &byteWriter{
		w: w,
	}
}

func (w *byteWriter) flush() error {
	b := w.buffer.Bytes()
	_, err := w.w.Write(b)
	if err != nil {
		return err
	}

	w.buffer.Reset()
	return nil
}

// bufferedLen returns the length of the current buffer.
func (w *byteWriter) bufferedLen() int {
	return w.buffer.Len()
}

// writeAtom appends the encoding of `v` as type `t`.
func (w *byteWriter) writeAtom(t AtomType, v Value) error {
	b, err := t.Encode(v)
	if err != nil {
		return err
	}
	_, err = w.buffer.Write(b)
	return err
}

// write appends a series of values, each encoded as its own atom type.
func (w *byteWriter) write(values ...Value) error {
	for _, v := range values {
		if v == nil {
			return errRequiredField
		}
		if err := w.writeAtom(v.Type(), v); err != nil {
			return err
		}
	}
	return nil
}
