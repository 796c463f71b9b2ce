// Package wire implements the zero-copy wire codec contract that the
// extension-processing core consumes (spec.md §6: "Wire reader" / "Wire
// writer"). It is a thin, named-interface wrapper around
// golang.org/x/crypto/cryptobyte, grounded on the direct cryptobyte usage
// throughout the teacher repository's client_hello.go, server_hello.go,
// and config.go: the same AddUint16/AddUint16LengthPrefixed and
// ReadUint16/ReadUint16LengthPrefixed calls, just named so the core can
// depend on an interface instead of the concrete cryptobyte types.
package wire

import "golang.org/x/crypto/cryptobyte"

// Reader is a zero-copy view over an extension's or message's remaining
// input bytes.
type Reader interface {
	// ReadUint8 consumes one byte.
	ReadUint8() (v uint8, ok bool)
	// ReadUint16 consumes a big-endian uint16.
	ReadUint16() (v uint16, ok bool)
	// ReadBytes consumes exactly n bytes.
	ReadBytes(n int) (b []byte, ok bool)
	// ReadUint8LengthPrefixed consumes a uint8 length followed by that
	// many bytes, returned as a nested Reader over just that span.
	ReadUint8LengthPrefixed() (r Reader, ok bool)
	// ReadUint16LengthPrefixed is ReadUint8LengthPrefixed with a uint16
	// length.
	ReadUint16LengthPrefixed() (r Reader, ok bool)
	// Remaining returns the number of bytes left to read.
	Remaining() int
	// Empty reports whether Remaining() == 0.
	Empty() bool
	// Bytes returns every remaining byte without consuming them.
	Bytes() []byte
}

// Writer builds a wire-encoded message or extension body. Like
// cryptobyte.Builder, a length-prefixed sub-region is written by supplying
// a closure that fills it in; the length is back-patched when the closure
// returns.
type Writer interface {
	PutUint8(v uint8)
	PutUint16(v uint16)
	PutBytes(b []byte)
	// PutUint8LengthPrefixed writes a uint8 length followed by
	// whatever fn writes to the nested Writer.
	PutUint8LengthPrefixed(fn func(Writer))
	// PutUint16LengthPrefixed is PutUint8LengthPrefixed with a uint16
	// length.
	PutUint16LengthPrefixed(fn func(Writer))
}

// NewReader wraps b in a cryptobyte-backed Reader.
func NewReader(b []byte) Reader {
	s := cryptobyte.String(b)
	return (*cbReader)(&s)
}

type cbReader cryptobyte.String

func (r *cbReader) s() *cryptobyte.String { return (*cryptobyte.String)(r) }

func (r *cbReader) ReadUint8() (uint8, bool) {
	var v uint8
	ok := r.s().ReadUint8(&v)
	return v, ok
}

func (r *cbReader) ReadUint16() (uint16, bool) {
	var v uint16
	ok := r.s().ReadUint16(&v)
	return v, ok
}

func (r *cbReader) ReadBytes(n int) ([]byte, bool) {
	var v []byte
	ok := r.s().ReadBytes(&v, n)
	return v, ok
}

func (r *cbReader) ReadUint8LengthPrefixed() (Reader, bool) {
	var v cryptobyte.String
	if !r.s().ReadUint8LengthPrefixed(&v) {
		return nil, false
	}
	return (*cbReader)(&v), true
}

func (r *cbReader) ReadUint16LengthPrefixed() (Reader, bool) {
	var v cryptobyte.String
	if !r.s().ReadUint16LengthPrefixed(&v) {
		return nil, false
	}
	return (*cbReader)(&v), true
}

func (r *cbReader) Remaining() int { return len(*r) }
func (r *cbReader) Empty() bool    { return r.s().Empty() }
func (r *cbReader) Bytes() []byte  { return []byte(*r) }

// NewBuilder returns a Writer together with a finish function that
// finalises it into bytes. Splitting construction this way keeps Writer
// itself free of a Bytes()/error-returning method, since nested Writers
// produced inside a PutUint*LengthPrefixed callback must never be
// finalised independently of their parent.
func NewBuilder() (Writer, func() ([]byte, error)) {
	b := cryptobyte.NewBuilder(nil)
	w := &cbWriter{b: b}
	return w, b.Bytes
}

type cbWriter struct {
	b *cryptobyte.Builder
}

func (w *cbWriter) PutUint8(v uint8)  { w.b.AddUint8(v) }
func (w *cbWriter) PutUint16(v uint16) { w.b.AddUint16(v) }
func (w *cbWriter) PutBytes(b []byte) { w.b.AddBytes(b) }

func (w *cbWriter) PutUint8LengthPrefixed(fn func(Writer)) {
	w.b.AddUint8LengthPrefixed(func(c *cryptobyte.Builder) {
		fn(&cbWriter{b: c})
	})
}

func (w *cbWriter) PutUint16LengthPrefixed(fn func(Writer)) {
	w.b.AddUint16LengthPrefixed(func(c *cryptobyte.Builder) {
		fn(&cbWriter{b: c})
	})
}
