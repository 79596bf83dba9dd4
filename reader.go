package xxhash

import (
	"io"

	"github.com/pkg/errors"
)

// readChunk is the size of the scratch buffer used to pull from readers.
const readChunk = 32 << 10

// SumReader32 returns the XXH32 of everything read from r until io.EOF.
func SumReader32(r io.Reader, seed uint32) (uint32, error) {
	d := New32WithSeed(seed)
	if _, err := d.ReadFrom(r); err != nil {
		return 0, err
	}

	return d.Sum32(), nil
}

// SumReader64 returns the XXH64 of everything read from r until io.EOF.
func SumReader64(r io.Reader, seed uint64) (uint64, error) {
	d := New64WithSeed(seed)
	if _, err := d.ReadFrom(r); err != nil {
		return 0, err
	}

	return d.Sum64(), nil
}

// readFrom feeds w from r until io.EOF. w must never fail, which holds for
// both digests.
func readFrom(w io.Writer, r io.Reader) (int64, error) {
	var total int64

	buf := make([]byte, readChunk)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			w.Write(buf[:n]) //nolint:errcheck
			total += int64(n)
		}

		switch {
		case err == io.EOF:
			return total, nil
		case err != nil:
			return total, errors.Wrapf(err, "xxhash: read after %d bytes", total)
		}
	}
}
