package ber

import "io"

// Cursor is a seekable, byte-oriented view over the octets being decoded
// (§4.1). The engine and every value decoder read exclusively through a
// Cursor; adapting an arbitrary byte source (a file, a socket, a
// non-seekable [io.Reader]) into one is the job of the berdec.dev/ber/stream
// package, deliberately kept outside this package: generic stream adapters
// are an external collaborator of the core, not part of it.
//
// Before each TLV the engine records the cursor's position (see
// [Cursor.Mark]) so that ANY-type decoding can rewind and replay the
// header octets it skipped over.
type Cursor interface {
	// Read copies up to len(p) octets starting at the current position into
	// p and advances the position by the number of octets copied. Read
	// returns fewer than len(p) octets (and a nil error) only at end of
	// input; it never blocks waiting for more data that isn't there.
	Read(p []byte) (n int, err error)

	// Peek returns up to n octets starting at the current position without
	// advancing it. A short result (fewer than n octets, nil error)
	// indicates end of input.
	Peek(n int) []byte

	// Tell returns the current position, in octets from the start of the
	// underlying source.
	Tell() int

	// Seek moves the current position to offset, which must be within
	// [0, Len()].
	Seek(offset int)

	// Len returns the total number of octets available from this Cursor.
	Len() int

	// AtEnd reports whether the current position is at or past the end of
	// the available octets.
	AtEnd() bool

	// Mark records the current position and returns a token that
	// [Cursor.Since] can later use to recover the exact byte range spanned
	// since this call. Used by the ANY decoder (§4.5) to replay an
	// untagged value's original TLV header.
	Mark() int

	// Since returns the octets from the position recorded by a prior call
	// to Mark (identified by the returned mark value) up to the cursor's
	// current position.
	Since(mark int) []byte
}

// sliceCursor is the Cursor implementation used for in-memory BER input.
// The decoder never streams output incrementally, so a fully-buffered
// slice is sufficient for every value the engine
// produces; only the adaptation of a live [io.Reader] into this shape (see
// the stream package) has to deal with buffering at all.
type sliceCursor struct {
	data []byte
	pos  int
}

// NewCursor returns a [Cursor] over data. The returned Cursor does not copy
// data; callers must not mutate it while decoding is in progress.
func NewCursor(data []byte) Cursor {
	return &sliceCursor{data: data}
}

func (c *sliceCursor) Read(p []byte) (int, error) {
	n := copy(p, c.data[c.pos:])
	c.pos += n
	return n, nil
}

func (c *sliceCursor) Peek(n int) []byte {
	end := c.pos + n
	if end > len(c.data) {
		end = len(c.data)
	}
	return c.data[c.pos:end]
}

func (c *sliceCursor) Tell() int { return c.pos }

func (c *sliceCursor) Seek(offset int) { c.pos = offset }

func (c *sliceCursor) Len() int { return len(c.data) }

func (c *sliceCursor) AtEnd() bool { return c.pos >= len(c.data) }

func (c *sliceCursor) Mark() int { return c.pos }

func (c *sliceCursor) Since(mark int) []byte { return c.data[mark:c.pos] }

// readFull reads exactly len(p) octets from cur, or returns a
// SubstrateUnderrun error naming what was being read.
func readFull(cur Cursor, p []byte, what string) error {
	n, _ := cur.Read(p)
	if n < len(p) {
		return newSubstrateUnderrun(what)
	}
	return nil
}

// readByte reads a single octet from cur, or returns a SubstrateUnderrun
// error naming what was being read.
func readByte(cur Cursor, what string) (byte, error) {
	var b [1]byte
	if err := readFull(cur, b[:], what); err != nil {
		return 0, err
	}
	return b[0], nil
}

var _ io.Reader = (*sliceCursor)(nil)
