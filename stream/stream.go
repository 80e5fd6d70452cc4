// Package stream adapts an arbitrary [io.Reader] into a [ber.Cursor],
// the seekable, byte-oriented view every decoder in berdec.dev/ber reads
// through (§4.1). The core package deliberately does not do this itself:
// stream adapters over arbitrary I/O sources are an external collaborator,
// so that the decoding engine never has to know whether its bytes
// ultimately came from a file, a socket, or a plain slice.
package stream

import (
	"io"

	"berdec.dev/ber"
)

// growBufLimit bounds a single read-ahead fill, mirroring the bufferedReader
// fill loop in codello.dev/asn1/tlv/io.go without adopting
// its read-limit API, which exists there to cap how far a length-prefixed
// TLV may look ahead before its declared length is known — a concern this
// package's caller (the [ber.Engine]) already enforces itself via
// declared TLV lengths.
const growBufLimit = 4096

// Cursor implements [ber.Cursor] over an [io.Reader] that is not already
// available as an in-memory slice. It buffers everything it reads so
// that seeking backward (needed by [ber.Cursor.Mark]/[ber.Cursor.Since]
// and by the engine's ANY/CHOICE re-entry) always succeeds: a complete
// top-level value is always materialized in memory before it's handed
// back to the caller, so buffering the octets that produced it costs
// nothing extra.
type Cursor struct {
	r   io.Reader
	buf []byte
	pos int
	eof bool
}

// NewCursor returns a [ber.Cursor] reading from r, filling its internal
// buffer lazily as the decoder advances or peeks ahead.
func NewCursor(r io.Reader) *Cursor {
	return &Cursor{r: r}
}

// fill ensures at least n octets are buffered past the current position,
// short of actual end of input.
func (c *Cursor) fill(n int) {
	for !c.eof && len(c.buf)-c.pos < n {
		chunk := make([]byte, growBufLimit)
		k, err := c.r.Read(chunk)
		if k > 0 {
			c.buf = append(c.buf, chunk[:k]...)
		}
		if err != nil {
			c.eof = true
		}
	}
}

func (c *Cursor) Read(p []byte) (int, error) {
	c.fill(len(p))
	n := copy(p, c.buf[c.pos:])
	c.pos += n
	return n, nil
}

func (c *Cursor) Peek(n int) []byte {
	c.fill(n)
	end := min(c.pos+n, len(c.buf))
	return c.buf[c.pos:end]
}

func (c *Cursor) Tell() int { return c.pos }

func (c *Cursor) Seek(offset int) { c.pos = offset }

// Len drains r to end of input so the total octet count is known. Callers
// that only need to decode successive top-level values (the common case,
// see [berdec.dev/ber.DecodeAll]) never need this; it exists purely to
// satisfy [ber.Cursor].
func (c *Cursor) Len() int {
	c.fill(1 << 30)
	return len(c.buf)
}

func (c *Cursor) AtEnd() bool {
	c.fill(1)
	return c.pos >= len(c.buf)
}

func (c *Cursor) Mark() int { return c.pos }

func (c *Cursor) Since(mark int) []byte { return c.buf[mark:c.pos] }

var (
	_ io.Reader  = (*Cursor)(nil)
	_ ber.Cursor = (*Cursor)(nil)
)
