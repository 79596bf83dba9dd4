package file

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.dw1.io/mmapfile"
	"go.dw1.io/safemath"

	"go.dw1.io/xxhash"
)

var (
	_ io.Reader   = (*File)(nil)
	_ io.ReaderAt = (*File)(nil)
	_ io.Closer   = (*File)(nil)
)

// File is a read-only handle backed by either a memory-mapped file (preferred)
// or a plain os.File.
type File struct {
	mm *mmapfile.MmapFile
	os *os.File
}

// Open maps the named file into memory when supported; otherwise it falls back
// to os.Open.
func Open(name string) (*File, error) {
	mf, err := mmapfile.Open(name)
	if err == nil {
		return &File{mm: mf}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "file: open")
	}

	return &File{os: f}, nil
}

func (f *File) Read(p []byte) (int, error) {
	if f.mm != nil {
		return f.mm.Read(p)
	}

	return f.os.Read(p)
}

// ReadAt reads starting at absolute offset without moving the current offset.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	if f.mm != nil {
		return f.mm.ReadAt(p, off)
	}

	return f.os.ReadAt(p, off)
}

// Bytes exposes the mapped region; nil is returned for the os.File fallback.
func (f *File) Bytes() []byte {
	if f.mm != nil {
		return f.mm.Bytes()
	}

	return nil
}

// Mapped reports whether f is served from a memory mapping.
func (f *File) Mapped() bool { return f.mm != nil }

// Size returns the mapped length, or the file size for the os.File fallback.
func (f *File) Size() (int, error) {
	if f.mm != nil {
		return f.mm.Len(), nil
	}

	info, err := f.os.Stat()
	if err != nil {
		return 0, errors.Wrap(err, "file: stat")
	}

	size, err := safemath.ConvertAny[int](info.Size())
	if err != nil {
		return 0, errors.Wrapf(err, "file: size of %s", f.os.Name())
	}

	return size, nil
}

// Name returns the original file name.
func (f *File) Name() string {
	if f.mm != nil {
		return f.mm.Name()
	}

	return f.os.Name()
}

// Close releases resources held by the file.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}

	return f.os.Close()
}

// Sum32 returns the XXH32 of the file contents from the current offset on.
// For a mapped file that is always the whole file.
func (f *File) Sum32(seed uint32) (uint32, error) {
	if f.mm != nil {
		return xxhash.Sum32WithSeed(f.mm.Bytes(), seed), nil
	}

	sum, err := xxhash.SumReader32(f.os, seed)
	if err != nil {
		return 0, errors.Wrapf(err, "file: hash %s", f.os.Name())
	}

	return sum, nil
}

// Sum64 returns the XXH64 of the file contents from the current offset on.
// For a mapped file that is always the whole file.
func (f *File) Sum64(seed uint64) (uint64, error) {
	if f.mm != nil {
		return xxhash.Sum64WithSeed(f.mm.Bytes(), seed), nil
	}

	sum, err := xxhash.SumReader64(f.os, seed)
	if err != nil {
		return 0, errors.Wrapf(err, "file: hash %s", f.os.Name())
	}

	return sum, nil
}

// Sum32 opens the named file and returns the XXH32 of its contents.
func Sum32(name string, seed uint32) (uint32, error) {
	f, err := Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return f.Sum32(seed)
}

// Sum64 opens the named file and returns the XXH64 of its contents.
func Sum64(name string, seed uint64) (uint64, error) {
	f, err := Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return f.Sum64(seed)
}
