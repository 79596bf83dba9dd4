package xxhash

// Sum32 returns the XXH32 of b with seed 0.
func Sum32(b []byte) uint32 { return sum32(b, 0) }

// Sum32WithSeed returns the XXH32 of b with the provided seed.
func Sum32WithSeed(b []byte, seed uint32) uint32 { return sum32(b, seed) }

// Sum32String returns the XXH32 of s with seed 0 without copying s.
func Sum32String(s string) uint32 { return sum32(stringBytes(s), 0) }

// Sum64 returns the XXH64 of b with seed 0.
func Sum64(b []byte) uint64 { return sum64(b, 0) }

// Sum64WithSeed returns the XXH64 of b with the provided seed.
func Sum64WithSeed(b []byte, seed uint64) uint64 { return sum64(b, seed) }

// Sum64String returns the XXH64 of s with seed 0 without copying s.
func Sum64String(s string) uint64 { return sum64(stringBytes(s), 0) }

func sum32(b []byte, seed uint32) uint32 {
	n := len(b)

	var h uint32
	if n >= BlockSize32 {
		v := newAcc32(seed)
		for ; len(b) >= BlockSize32; b = b[BlockSize32:] {
			v.block(b)
		}
		h = v.converge()
	} else {
		h = seed + prime32_5
	}

	h += uint32(n)

	return avalanche32(tail32(h, b))
}

func sum64(b []byte, seed uint64) uint64 {
	n := len(b)

	var h uint64
	if n >= BlockSize64 {
		v := newAcc64(seed)
		for ; len(b) >= BlockSize64; b = b[BlockSize64:] {
			v.block(b)
		}
		h = v.converge()
	} else {
		h = seed + prime64_5
	}

	h += uint64(n)

	return avalanche64(tail64(h, b))
}
