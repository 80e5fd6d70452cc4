package ber

import (
	"berdec.dev/ber/internal/vlq"
)

// byteReaderCursor adapts a [Cursor] to [io.ByteReader] so the shared VLQ
// decoder (internal/vlq) can read one octet at a time from it.
type byteReaderCursor struct {
	cur  Cursor
	what string
	err  error
}

func (b *byteReaderCursor) ReadByte() (byte, error) {
	c, err := readByte(b.cur, b.what)
	if err != nil {
		b.err = err
	}
	return c, err
}

// readTag reads the identifier octet(s) at the cursor's current position
// and returns the decoded [Tag] along with the number of octets consumed
// (§4.2). Short form is a single octet; long form (tag field == 0x1F)
// continues with base-128 continuation octets exactly like an OBJECT
// IDENTIFIER's sub-identifier encoding, reusing the package's VLQ reader.
func readTag(cur Cursor) (Tag, int, error) {
	start := cur.Tell()
	b, err := readByte(cur, "identifier octet")
	if err != nil {
		return Tag{}, 0, err
	}

	t := Tag{
		Class:  Class(b >> 6),
		Form:   Form((b >> 5) & 1),
		Number: uint(b & 0x1f),
	}

	if b&0x1f == 0x1f {
		br := &byteReaderCursor{cur: cur, what: "long-form tag octet"}
		n, verr := vlq.ReadMinimal[uint](br)
		if br.err != nil {
			return Tag{}, 0, br.err
		}
		if verr != nil {
			return Tag{}, 0, newMalformedEncoding("long-form tag: " + verr.Error())
		}
		t.Number = n
	}

	return t, cur.Tell() - start, nil
}

// readLength reads the length octet(s) at the cursor's current position
// (§4.3). It returns the decoded [Length] (possibly [Indefinite]) and the
// number of octets consumed.
func readLength(cur Cursor) (Length, int, error) {
	start := cur.Tell()
	b, err := readByte(cur, "length octet")
	if err != nil {
		return 0, 0, err
	}

	if b < 0x80 {
		return Length(b), cur.Tell() - start, nil
	}
	if b == 0x80 {
		return Indefinite, cur.Tell() - start, nil
	}

	n := int(b & 0x7f)
	buf := make([]byte, n)
	if err := readFull(cur, buf, "long-form length octets"); err != nil {
		return 0, 0, err
	}

	var length int
	for _, ob := range buf {
		length = length<<8 | int(ob)
	}
	return Length(length), cur.Tell() - start, nil
}
