// Package xxhash provides a Go implementation of the xxHash non-cryptographic
// hash in its 32-bit (XXH32) and 64-bit (XXH64) variants.
//
// It offers streaming digests that satisfy [hash.Hash32] and [hash.Hash64],
// plus convenience helpers for one-shot sums. A digest returns the same sum as
// the one-shot helper for the same bytes, however the input was split across
// calls to Write.
//
// Sums are bit-compatible with the reference implementation. Input is always
// read as little-endian lanes, independent of the host byte order.
package xxhash
