package xxhash_test

import (
	"strconv"
	"testing"

	cespare "github.com/cespare/xxhash/v2"

	"go.dw1.io/xxhash"
)

var benchSizes = []int{5, 32, 100, 4 << 10, 1 << 20}

func BenchmarkSum64(b *testing.B) {
	for _, n := range benchSizes {
		data := randomBytes(41, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for b.Loop() {
				xxhash.Sum64(data)
			}
		})
	}
}

func BenchmarkSum64Cespare(b *testing.B) {
	for _, n := range benchSizes {
		data := randomBytes(41, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for b.Loop() {
				cespare.Sum64(data)
			}
		})
	}
}

func BenchmarkSum32(b *testing.B) {
	for _, n := range benchSizes {
		data := randomBytes(42, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for b.Loop() {
				xxhash.Sum32(data)
			}
		})
	}
}

func BenchmarkDigest64Write(b *testing.B) {
	data := randomBytes(43, 4<<10)
	d := xxhash.New64()

	b.SetBytes(int64(len(data)))
	for b.Loop() {
		d.Reset()
		for i := 0; i < len(data); i += 100 {
			d.Write(data[i:min(i+100, len(data))])
		}
		d.Sum64()
	}
}
