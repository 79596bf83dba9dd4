package xxhash

import (
	"encoding/binary"
	"hash"
	"io"
)

// Compile-time interface assertions.
var (
	_ hash.Hash64     = (*Digest64)(nil)
	_ io.StringWriter = (*Digest64)(nil)
	_ io.ReaderFrom   = (*Digest64)(nil)
)

// Digest64 implements [hash.Hash64] using XXH64.
//
// The zero value is not ready to receive writes; create a Digest64 with
// [New64] or [New64WithSeed], or call Reset first. A Digest64 must not be used
// from several goroutines at once.
type Digest64 struct {
	seed  uint64
	v     acc64
	total uint64
	buf   block64
}

// New64 returns an XXH64 digest with seed 0.
func New64() *Digest64 { return New64WithSeed(0) }

// New64WithSeed returns an XXH64 digest seeded with seed.
func New64WithSeed(seed uint64) *Digest64 {
	d := new(Digest64)
	d.ResetWithSeed(seed)
	return d
}

// Reset clears the digest, keeping its seed.
func (d *Digest64) Reset() { d.ResetWithSeed(d.seed) }

// ResetWithSeed clears the digest and seeds it with seed.
func (d *Digest64) ResetWithSeed(seed uint64) {
	d.seed = seed
	d.v = newAcc64(seed)
	d.total = 0
	d.buf.n = 0
}

// Write absorbs p into the running hash. It always returns len(p), nil.
func (d *Digest64) Write(p []byte) (int, error) {
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

	for ; len(p) >= BlockSize64; p = p[BlockSize64:] {
		d.v.block(p)
	}
	d.buf.consume(p)

	return n, nil
}

// WriteString absorbs s without copying it. It always returns len(s), nil.
func (d *Digest64) WriteString(s string) (int, error) {
	return d.Write(stringBytes(s))
}

// Sum64 returns the XXH64 of everything written so far. It does not change
// the digest state.
func (d *Digest64) Sum64() uint64 {
	var h uint64
	if d.total >= BlockSize64 {
		h = d.v.converge()
	} else {
		h = d.seed + prime64_5
	}

	h += d.total

	return avalanche64(tail64(h, d.buf.bytes()))
}

// Sum appends the big-endian Sum64 to b.
func (d *Digest64) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, d.Sum64())
}

// Size returns the hash size in bytes.
func (d *Digest64) Size() int { return Size64 }

// BlockSize returns the processing chunk size.
func (d *Digest64) BlockSize() int { return BlockSize64 }

// ReadFrom absorbs r until io.EOF. A read error is returned wrapped; the bytes
// read before it stay absorbed.
func (d *Digest64) ReadFrom(r io.Reader) (int64, error) {
	return readFrom(d, r)
}
