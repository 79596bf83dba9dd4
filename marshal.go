package xxhash

import (
	"encoding"
	"encoding/binary"
	"errors"
)

var (
	_ encoding.BinaryMarshaler   = (*Digest32)(nil)
	_ encoding.BinaryUnmarshaler = (*Digest32)(nil)
	_ encoding.BinaryMarshaler   = (*Digest64)(nil)
	_ encoding.BinaryUnmarshaler = (*Digest64)(nil)
)

var (
	// ErrInvalidState is returned when a snapshot does not carry the magic of
	// the digest it is restored into.
	ErrInvalidState = errors.New("xxhash: invalid digest state identifier")
	// ErrStateSize is returned for a snapshot of the wrong length.
	ErrStateSize = errors.New("xxhash: invalid digest state size")
	// ErrStateBuffered is returned when the buffered byte count of a snapshot
	// disagrees with its total length.
	ErrStateBuffered = errors.New("xxhash: inconsistent buffered length")
)

const (
	magic32 = "xxh\x04"
	magic64 = "xxh\x08"

	// magic, seed, v1..v4, total, chunk buffer, buffered length
	marshaledSize32 = len(magic32) + 4 + 4*4 + 8 + BlockSize32 + 1
	marshaledSize64 = len(magic64) + 8 + 4*8 + 8 + BlockSize64 + 1
)

// MarshalBinary snapshots the digest state.
func (d *Digest32) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledSize32)
	b = append(b, magic32...)
	b = binary.BigEndian.AppendUint32(b, d.seed)
	for _, v := range d.v {
		b = binary.BigEndian.AppendUint32(b, v)
	}
	b = binary.BigEndian.AppendUint64(b, d.total)
	b = append(b, d.buf.mem[:]...)
	b = append(b, byte(d.buf.n))

	return b, nil
}

// UnmarshalBinary restores a state produced by MarshalBinary. d is left
// untouched on error.
func (d *Digest32) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic32) || string(b[:len(magic32)]) != magic32 {
		return ErrInvalidState
	}
	if len(b) != marshaledSize32 {
		return ErrStateSize
	}
	b = b[len(magic32):]

	var s Digest32
	s.seed, b = binary.BigEndian.Uint32(b), b[4:]
	for i := range s.v {
		s.v[i], b = binary.BigEndian.Uint32(b), b[4:]
	}
	s.total, b = binary.BigEndian.Uint64(b), b[8:]
	b = b[copy(s.buf.mem[:], b):]
	s.buf.n = int(b[0])

	if uint64(s.buf.n) != s.total%BlockSize32 {
		return ErrStateBuffered
	}

	*d = s

	return nil
}

// MarshalBinary snapshots the digest state.
func (d *Digest64) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledSize64)
	b = append(b, magic64...)
	b = binary.BigEndian.AppendUint64(b, d.seed)
	for _, v := range d.v {
		b = binary.BigEndian.AppendUint64(b, v)
	}
	b = binary.BigEndian.AppendUint64(b, d.total)
	b = append(b, d.buf.mem[:]...)
	b = append(b, byte(d.buf.n))

	return b, nil
}

// UnmarshalBinary restores a state produced by MarshalBinary. d is left
// untouched on error.
func (d *Digest64) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic64) || string(b[:len(magic64)]) != magic64 {
		return ErrInvalidState
	}
	if len(b) != marshaledSize64 {
		return ErrStateSize
	}
	b = b[len(magic64):]

	var s Digest64
	s.seed, b = binary.BigEndian.Uint64(b), b[8:]
	for i := range s.v {
		s.v[i], b = binary.BigEndian.Uint64(b), b[8:]
	}
	s.total, b = binary.BigEndian.Uint64(b), b[8:]
	b = b[copy(s.buf.mem[:], b):]
	s.buf.n = int(b[0])

	if uint64(s.buf.n) != s.total%BlockSize64 {
		return ErrStateBuffered
	}

	*d = s

	return nil
}
