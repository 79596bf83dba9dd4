package xxhash

import (
	"encoding/binary"
	"hash"
	"io"
)

// Compile-time interface assertions.
var (
	_ hash.Hash32     = (*Digest32)(nil)
	_ io.StringWriter = (*Digest32)(nil)
	_ io.ReaderFrom   = (*Digest32)(nil)
)

// Digest32 implements [hash.Hash32] using XXH32. Like [Digest64], the zero
// value must be reset before use.
type Digest32 struct {
	seed  uint32
	v     acc32
	total uint64
	buf   block32
}

// New32 returns an XXH32 digest with seed 0.
func New32() *Digest32 { return New32WithSeed(0) }

// New32WithSeed returns an XXH32 digest seeded with seed.
func New32WithSeed(seed uint32) *Digest32 {
	d := new(Digest32)
	d.ResetWithSeed(seed)
	return d
}

// Reset clears the digest, keeping its seed.
func (d *Digest32) Reset() { d.ResetWithSeed(d.seed) }

// ResetWithSeed clears the digest and seeds it with seed.
func (d *Digest32) ResetWithSeed(seed uint32) {
	d.seed = seed
	d.v = newAcc32(seed)
	d.total = 0
	d.buf.n = 0
}

// Write absorbs p into the running hash. It always returns len(p), nil.
func (d *Digest32) Write(p []byte) (int, error) {
	n := len(p)
	d.total += uint64(n)

	if d.buf.n > 0 || n < d.buf.available() {
		p = d.buf.consume(p)
		if !d.buf.full() {
			return n, nil
		}
		d.v.block(d.buf.mem[:])
		d.buf.n = 0
	}

	for ; len(p) >= BlockSize32; p = p[BlockSize32:] {
		d.v.block(p)
	}
	d.buf.consume(p)

	return n, nil
}

// WriteString absorbs s without copying it. It always returns len(s), nil.
func (d *Digest32) WriteString(s string) (int, error) {
	return d.Write(stringBytes(s))
}

// Sum32 returns the XXH32 of everything written so far. It does not change
// the digest state.
func (d *Digest32) Sum32() uint32 {
	var h uint32
	if d.total >= BlockSize32 {
		h = d.v.converge()
	} else {
		h = d.seed + prime32_5
	}

	h += uint32(d.total)

	return avalanche32(tail32(h, d.buf.bytes()))
}

// Sum appends the big-endian Sum32 to b.
func (d *Digest32) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, d.Sum32())
}

// Size returns the hash size in bytes.
func (d *Digest32) Size() int { return Size32 }

// BlockSize returns the processing chunk size.
func (d *Digest32) BlockSize() int { return BlockSize32 }

// ReadFrom absorbs r until io.EOF. See [Digest64.ReadFrom].
func (d *Digest32) ReadFrom(r io.Reader) (int64, error) {
	return readFrom(d, r)
}
