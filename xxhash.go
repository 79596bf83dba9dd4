package xxhash

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// xxHash primes from the reference implementation.
const (
	prime32_1 uint32 = 2654435761
	prime32_2 uint32 = 2246822519
	prime32_3 uint32 = 3266489917
	prime32_4 uint32 = 668265263
	prime32_5 uint32 = 374761393

	prime64_1 uint64 = 0x9E3779B185EBCA87
	prime64_2 uint64 = 0xC2B2AE3D27D4EB4F
	prime64_3 uint64 = 0x165667B19E3779F9
	prime64_4 uint64 = 0x85EBCA77C2B2AE63
	prime64_5 uint64 = 0x27D4EB2F165667C5
)

const (
	// Size32 is the size of an XXH32 sum in bytes.
	Size32 = 4
	// Size64 is the size of an XXH64 sum in bytes.
	Size64 = 8

	// BlockSize32 is the XXH32 processing chunk: four 4-byte lanes.
	BlockSize32 = 16
	// BlockSize64 is the XXH64 processing chunk: four 8-byte lanes.
	BlockSize64 = 32
)

func u32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func u64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func round32(acc, lane uint32) uint32 {
	acc += lane * prime32_2
	acc = bits.RotateLeft32(acc, 13)
	return acc * prime32_1
}

func round64(acc, lane uint64) uint64 {
	acc += lane * prime64_2
	acc = bits.RotateLeft64(acc, 31)
	return acc * prime64_1
}

func mergeRound64(acc, val uint64) uint64 {
	acc ^= round64(0, val)
	return acc*prime64_1 + prime64_4
}

func avalanche32(h uint32) uint32 {
	h ^= h >> 15
	h *= prime32_2
	h ^= h >> 13
	h *= prime32_3
	h ^= h >> 16
	return h
}

func avalanche64(h uint64) uint64 {
	h ^= h >> 33
	h *= prime64_2
	h ^= h >> 29
	h *= prime64_3
	h ^= h >> 32
	return h
}

// acc32 is the XXH32 accumulator quadruple.
type acc32 [4]uint32

func newAcc32(seed uint32) acc32 {
	return acc32{seed + prime32_1 + prime32_2, seed + prime32_2, seed, seed - prime32_1}
}

// block folds one BlockSize32 chunk from the front of b.
func (v *acc32) block(b []byte) {
	b = b[:BlockSize32]
	v[0] = round32(v[0], u32(b[0:4]))
	v[1] = round32(v[1], u32(b[4:8]))
	v[2] = round32(v[2], u32(b[8:12]))
	v[3] = round32(v[3], u32(b[12:16]))
}

func (v acc32) converge() uint32 {
	return bits.RotateLeft32(v[0], 1) + bits.RotateLeft32(v[1], 7) +
		bits.RotateLeft32(v[2], 12) + bits.RotateLeft32(v[3], 18)
}

// acc64 is the XXH64 accumulator quadruple.
type acc64 [4]uint64

func newAcc64(seed uint64) acc64 {
	return acc64{seed + prime64_1 + prime64_2, seed + prime64_2, seed, seed - prime64_1}
}

// block folds one BlockSize64 chunk from the front of b.
func (v *acc64) block(b []byte) {
	b = b[:BlockSize64]
	v[0] = round64(v[0], u64(b[0:8]))
	v[1] = round64(v[1], u64(b[8:16]))
	v[2] = round64(v[2], u64(b[16:24]))
	v[3] = round64(v[3], u64(b[24:32]))
}

func (v acc64) converge() uint64 {
	h := bits.RotateLeft64(v[0], 1) + bits.RotateLeft64(v[1], 7) +
		bits.RotateLeft64(v[2], 12) + bits.RotateLeft64(v[3], 18)
	h = mergeRound64(h, v[0])
	h = mergeRound64(h, v[1])
	h = mergeRound64(h, v[2])
	h = mergeRound64(h, v[3])
	return h
}

// tail32 mixes the final len(b) < BlockSize32 bytes into h.
func tail32(h uint32, b []byte) uint32 {
	for ; len(b) >= 4; b = b[4:] {
		h += u32(b) * prime32_3
		h = bits.RotateLeft32(h, 17) * prime32_4
	}
	for _, c := range b {
		h += uint32(c) * prime32_5
		h = bits.RotateLeft32(h, 11) * prime32_1
	}
	return h
}

// tail64 mixes the final len(b) < BlockSize64 bytes into h.
func tail64(h uint64, b []byte) uint64 {
	for ; len(b) >= 8; b = b[8:] {
		h ^= round64(0, u64(b))
		h = bits.RotateLeft64(h, 27)*prime64_1 + prime64_4
	}
	if len(b) >= 4 {
		h ^= uint64(u32(b)) * prime64_1
		h = bits.RotateLeft64(h, 23)*prime64_2 + prime64_3
		b = b[4:]
	}
	for _, c := range b {
		h ^= uint64(c) * prime64_5
		h = bits.RotateLeft64(h, 11) * prime64_1
	}
	return h
}

// stringBytes aliases the bytes of s. The result must not be modified.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
