/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"errors"
	"io"

	"github.com/unidoc/unisfnt/common"
)

// byteReader encapsulates an io.Reader and reads atoms from it, keeping track of the number of
// bytes consumed. The underlying reader is not buffered so that its position after a decode is
// exactly the end of the last record read.
type byteReader struct {
	r      io.Reader
	offset int64
	buf    [8]byte // Scratch space, large enough for the widest atom.
}

func newByteReader(r io.Reader) *byteReader {
	return &byteReader{r: r}
}

// Offset returns the number of bytes consumed from `r` so far.
func (r *byteReader) Offset() int64 {
	return r.offset
}

// readFull fills `b` from `r`. On a short read the returned TruncatedInputError carries the
// start offset and the number of bytes that were available.
func (r *byteReader) readFull(b []byte) error {
	start := r.offset
	n, err := io.ReadFull(r.r, b)
	r.offset += int64(n)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		common.Log.Debug("Short read at offset %d: need %d, got %d", start, len(b), n)
		return &TruncatedInputError{Entry: -1, Offset: start, Need: len(b), Have: n, Err: err}
	}
	return err
}

// readAtom reads and decodes one value of type `t` (big endian).
func (r *byteReader) readAtom(t AtomType) (Value, error) {
	size := t.Size()
	if size == 0 {
		return nil, errTypeCheck
	}
	b := r.buf[:size]
	if err := r.readFull(b); err != nil {
		return nil, err
	}
	return atomTypes[t].decode(b), nil
}
