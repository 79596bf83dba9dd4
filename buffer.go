package xxhash

// block32 and block64 stage input until a full processing chunk is available.
// The owning digest drains mem into its accumulators once full and then clears
// n; consuming into a full buffer before that is a no-op.
type block32 struct {
	mem [BlockSize32]byte
	n   int
}

type block64 struct {
	mem [BlockSize64]byte
	n   int
}

// consume copies as much of p as fits and returns the rest.
func (b *block32) consume(p []byte) []byte {
	c := copy(b.mem[b.n:], p)
	b.n += c
	return p[c:]
}

func (b *block32) available() int { return len(b.mem) - b.n }
func (b *block32) full() bool     { return b.n == len(b.mem) }
func (b *block32) bytes() []byte  { return b.mem[:b.n] }

// consume copies as much of p as fits and returns the rest.
func (b *block64) consume(p []byte) []byte {
	c := copy(b.mem[b.n:], p)
	b.n += c
	return p[c:]
}

func (b *block64) available() int { return len(b.mem) - b.n }
func (b *block64) full() bool     { return b.n == len(b.mem) }
func (b *block64) bytes() []byte  { return b.mem[:b.n] }
