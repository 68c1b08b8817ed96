// Package cursor implements the byte source/sink contract every codec in
// this module (varint, binfloat, decimal, timestamp) is built against: a
// position-tracking reader and a position-tracking, growable writer.
//
// The Sink side mirrors a pooled byte-buffer shape (a thin wrapper around
// a []byte that grows by append); the Source side follows the reference
// bitstream reader's read1/readN.
package cursor

import (
	"io"

	"github.com/arloliu/ionum/ionerr"
)

// Source is the byte source contract: get a byte, know your position,
// read a run of bytes.
type Source interface {
	// ReadByte returns the next byte, or io.EOF if the source is exhausted.
	ReadByte() (byte, error)
	// Position returns the number of bytes consumed so far.
	Position() int64
	// Read reads up to len(dst) bytes, returning the number actually read.
	// It behaves like io.Reader except that a short read at end of input
	// returns io.ErrUnexpectedEOF rather than a bare io.EOF, matching the
	// "EOF mid-value is an error" discipline every codec in this module
	// depends on.
	Read(dst []byte) (int, error)
}

// Sink is the byte sink contract: put a byte, know your position, write a
// run of bytes.
type Sink interface {
	WriteByte(b byte) error
	Write(src []byte) (int, error)
	Position() int64
}

// Bytes is an in-memory Source over a byte slice, the common case for
// decoding a length-delimited value body handed over by a higher-level
// reader.
type Bytes struct {
	b   []byte
	pos int
}

// NewBytes wraps b as a Source starting at offset 0.
func NewBytes(b []byte) *Bytes {
	return &Bytes{b: b}
}

func (c *Bytes) ReadByte() (byte, error) {
	if c.pos >= len(c.b) {
		return 0, io.EOF
	}
	v := c.b[c.pos]
	c.pos++
	return v, nil
}

func (c *Bytes) Position() int64 { return int64(c.pos) }

// Len returns the number of unread bytes remaining.
func (c *Bytes) Len() int { return len(c.b) - c.pos }

func (c *Bytes) Read(dst []byte) (int, error) {
	if c.pos >= len(c.b) && len(dst) > 0 {
		return 0, io.EOF
	}
	n := copy(dst, c.b[c.pos:])
	c.pos += n
	if n < len(dst) {
		return n, io.ErrUnexpectedEOF
	}
	return n, nil
}

// ReadFull reads exactly len(dst) bytes or returns an ionerr.UnexpectedEof
// tagged at the cursor's position before the read began.
func ReadFull(src Source, dst []byte) error {
	start := src.Position()
	total := 0
	for total < len(dst) {
		n, err := src.Read(dst[total:])
		total += n
		if total == len(dst) {
			return nil
		}
		if err != nil {
			return ionerr.UnexpectedEOF(start)
		}
	}
	return nil
}

// Limited wraps a Source so ReadByte fails once budget bytes have been
// consumed through it, letting a VarInt/VarUInt/decimal/timestamp reader
// share a length-delimited value body with a sibling field that follows
// it without over-reading into that sibling's bytes.
type Limited struct {
	Source
	remaining int
}

// Limit returns a Source over src that reports UnexpectedEof once budget
// bytes have been read through it, and reports how many were actually
// consumed via Consumed.
func Limit(src Source, budget int) *Limited {
	return &Limited{Source: src, remaining: budget}
}

func (l *Limited) ReadByte() (byte, error) {
	if l.remaining <= 0 {
		return 0, ionerr.UnexpectedEOF(l.Position())
	}
	b, err := l.Source.ReadByte()
	if err != nil {
		return 0, err
	}
	l.remaining--
	return b, nil
}

// Consumed reports how many of budget's bytes have been read so far.
func (l *Limited) Consumed(budget int) int { return budget - l.remaining }

// Buffer is a growable in-memory Sink, the common case for encoding a
// value body before it is handed to a higher-level writer for
// length-prefixing.
type Buffer struct {
	b []byte
}

// NewBuffer returns an empty Buffer with the given initial capacity hint.
func NewBuffer(capHint int) *Buffer {
	return &Buffer{b: make([]byte, 0, capHint)}
}

func (b *Buffer) WriteByte(v byte) error {
	b.b = append(b.b, v)
	return nil
}

func (b *Buffer) Write(src []byte) (int, error) {
	b.b = append(b.b, src...)
	return len(src), nil
}

func (b *Buffer) Position() int64 { return int64(len(b.b)) }

// Bytes returns the accumulated bytes. The slice is valid until the next
// write; callers that need to retain it across further writes must copy.
func (b *Buffer) Bytes() []byte { return b.b }

// Reset empties the buffer while retaining its backing array.
func (b *Buffer) Reset() { b.b = b.b[:0] }
