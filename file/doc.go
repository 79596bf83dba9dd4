// Package file hashes files, preferring memory-mapped reads via [mmapfile] and
// falling back to streaming through an [os.File] when mmap is unavailable or
// unsuitable (for example empty files or special files such as pipes).
//
// With mmap the mapped region is hashed in one shot; otherwise the file is
// streamed through an [xxhash] digest. Both paths produce the same sum.
package file
