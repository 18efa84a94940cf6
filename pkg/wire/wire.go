// Package wire implements the primitive codec the rest of the transaction
// codec is built from: fixed-width big-endian integers, length-prefixed
// byte arrays, length-prefixed UTF-8 strings, and fixed-length arrays.
//
// Every Read* function takes a buffer and an offset and returns the value
// plus the offset just past it, the way the reference node's codec does —
// callers chain reads by threading the returned offset into the next call.
// Every Write* function appends to a growable buffer; there is no fallible
// write path (the inputs are already in memory, by construction, in the
// required range).
package wire

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"

	"github.com/ledgerkit/txcodec/pkg/txerr"
)

func need(b []byte, offset, n int) error {
	if offset < 0 || n < 0 || offset+n > len(b) {
		avail := len(b) - offset
		if avail < 0 {
			avail = 0
		}
		return &txerr.Truncated{Expected: n, Available: avail}
	}
	return nil
}

// SafeCount bounds a wire-supplied element count against the bytes actually
// remaining in the buffer, so a decoder never pre-allocates more capacity
// than the input could possibly back (spec.md §5: "decoders allocate
// O(bytes) and never read past the slice"). minElemSize is the smallest
// number of bytes any one element can legally occupy on the wire; callers
// pass the fixed width for fixed-size elements, or the narrowest possible
// tagged encoding for polymorphic ones.
func SafeCount(b []byte, offset int, n uint32, minElemSize int) int {
	if minElemSize < 1 {
		minElemSize = 1
	}
	remaining := len(b) - offset
	if remaining < 0 {
		remaining = 0
	}
	max := remaining / minElemSize
	if int(n) > max {
		return max
	}
	return int(n)
}

// ReadUint8 reads a single byte.
func ReadUint8(b []byte, offset int) (uint8, int, error) {
	if err := need(b, offset, 1); err != nil {
		return 0, offset, err
	}
	return b[offset], offset + 1, nil
}

// ReadUint16 reads a big-endian uint16.
func ReadUint16(b []byte, offset int) (uint16, int, error) {
	if err := need(b, offset, 2); err != nil {
		return 0, offset, err
	}
	return binary.BigEndian.Uint16(b[offset:]), offset + 2, nil
}

// ReadUint32 reads a big-endian uint32.
func ReadUint32(b []byte, offset int) (uint32, int, error) {
	if err := need(b, offset, 4); err != nil {
		return 0, offset, err
	}
	return binary.BigEndian.Uint32(b[offset:]), offset + 4, nil
}

// ReadUint64 reads a big-endian uint64.
func ReadUint64(b []byte, offset int) (uint64, int, error) {
	if err := need(b, offset, 8); err != nil {
		return 0, offset, err
	}
	return binary.BigEndian.Uint64(b[offset:]), offset + 8, nil
}

// ReadFixed reads exactly n bytes and returns a fresh copy (never a slice
// aliasing the input), so the caller can hold onto it past the lifetime of
// the buffer it was parsed from.
func ReadFixed(b []byte, offset, n int) ([]byte, int, error) {
	if err := need(b, offset, n); err != nil {
		return nil, offset, err
	}
	out := make([]byte, n)
	copy(out, b[offset:offset+n])
	return out, offset + n, nil
}

// ReadBytes reads a u32-length-prefixed byte array.
func ReadBytes(b []byte, offset int) ([]byte, int, error) {
	n, offset, err := ReadUint32(b, offset)
	if err != nil {
		return nil, offset, err
	}
	return ReadFixed(b, offset, int(n))
}

// ReadString reads a u16-length-prefixed UTF-8 string.
func ReadString(b []byte, offset int) (string, int, error) {
	n, offset, err := ReadUint16(b, offset)
	if err != nil {
		return "", offset, err
	}
	raw, offset, err := ReadFixed(b, offset, int(n))
	if err != nil {
		return "", offset, err
	}
	if !utf8.Valid(raw) {
		return "", offset, &txerr.InvalidUTF8{}
	}
	return string(raw), offset, nil
}

// WriteUint8 appends a single byte.
func WriteUint8(buf *bytes.Buffer, v uint8) { buf.WriteByte(v) }

// WriteUint16 appends a big-endian uint16.
func WriteUint16(buf *bytes.Buffer, v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	buf.Write(tmp[:])
}

// WriteUint32 appends a big-endian uint32.
func WriteUint32(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}

// WriteUint64 appends a big-endian uint64.
func WriteUint64(buf *bytes.Buffer, v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	buf.Write(tmp[:])
}

// WriteFixed appends raw bytes as-is (the caller is responsible for the
// length being the fixed width the format expects; this function does not
// pad or truncate).
func WriteFixed(buf *bytes.Buffer, b []byte) { buf.Write(b) }

// WriteBytes appends a u32-length-prefixed byte array.
func WriteBytes(buf *bytes.Buffer, b []byte) {
	WriteUint32(buf, uint32(len(b)))
	buf.Write(b)
}

// WriteString appends a u16-length-prefixed UTF-8 string.
func WriteString(buf *bytes.Buffer, s string) {
	WriteUint16(buf, uint16(len(s)))
	buf.WriteString(s)
}
