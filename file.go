package hostfs

import (
	"bufio"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/jmgilman/go/hostfs/core"
)

// File is a buffered handle that exclusively owns one open backend file.
//
// Writes are buffered until Flush, Close or an operation that moves the
// cursor. A File is either open or empty; Close, Release and Move leave it
// empty, and every method on an empty File fails without side effects.
//
// A File is not safe for concurrent use.
type File struct {
	f        core.File
	w        *bufio.Writer
	name     string
	writable bool
	logger   *slog.Logger
}

// newFile wraps f, which was opened with the os.OpenFile flag bits in flag.
func newFile(f core.File, name string, flag int, logger *slog.Logger) *File {
	return &File{
		f:        f,
		w:        bufio.NewWriter(f),
		name:     name,
		writable: flag&(os.O_WRONLY|os.O_RDWR) != 0,
		logger:   logger,
	}
}

// Name returns the path the file was opened with.
func (f *File) Name() string {
	return f.name
}

// IsOpen reports whether the handle still owns an open file.
func (f *File) IsOpen() bool {
	return f != nil && f.f != nil
}

// Close flushes pending writes and releases the file. It reports whether
// both steps succeeded. Closing an empty handle returns false.
func (f *File) Close() bool {
	if !f.IsOpen() {
		return false
	}
	flushErr := f.w.Flush()
	closeErr := f.f.Close()
	f.f, f.w = nil, nil

	if flushErr != nil {
		f.logFailure("flush", flushErr)
	}
	if closeErr != nil {
		f.logFailure("close", closeErr)
	}
	return flushErr == nil && closeErr == nil
}

// Release closes the file if it is still open and does nothing otherwise.
// It is meant to be deferred right after a successful open:
//
//	f, err := p.OpenFile(path, "w")
//	if err != nil {
//	    return err
//	}
//	defer f.Release()
func (f *File) Release() {
	if f.IsOpen() {
		f.Close()
	}
}

// Move transfers ownership of the open file to a new handle and leaves f
// empty.
func (f *File) Move() *File {
	moved := &File{}
	if f != nil {
		*moved = *f
		*f = File{name: f.name, logger: f.logger}
	}
	return moved
}

// Flush forces buffered writes to the backend.
func (f *File) Flush() bool {
	if !f.IsOpen() {
		return false
	}
	if err := f.w.Flush(); err != nil {
		f.logFailure("flush", err)
		// bufio.Writer keeps its first error; discard the failed bytes.
		f.w.Reset(f.f)
		return false
	}
	return true
}

// Sync flushes buffered writes and commits the file to stable storage when
// the backend supports it.
func (f *File) Sync() bool {
	if !f.Flush() {
		return false
	}
	s, ok := f.f.(core.Syncer)
	if !ok {
		return true
	}
	if err := s.Sync(); err != nil {
		f.logFailure("sync", err)
		return false
	}
	return true
}

// Tell returns the current byte offset from the start of the file, or -1
// on failure.
func (f *File) Tell() int64 {
	if !f.IsOpen() {
		return -1
	}
	pos, err := f.f.Seek(0, io.SeekCurrent)
	if err != nil {
		f.logFailure("tell", err)
		return -1
	}
	return pos + int64(f.w.Buffered())
}

// Seek moves the cursor to offset bytes from the start of the file.
func (f *File) Seek(offset int64) bool {
	if !f.Flush() {
		return false
	}
	if offset < 0 {
		f.logFailure("seek", fs.ErrInvalid)
		return false
	}
	if _, err := f.f.Seek(offset, io.SeekStart); err != nil {
		f.logFailure("seek", err)
		return false
	}
	return true
}

// Read reads up to count bytes from the cursor. The result is shorter than
// count at end of file or on error.
func (f *File) Read(count int64) []byte {
	if count <= 0 || !f.Flush() {
		return []byte{}
	}
	// The buffer grows with the bytes actually read, not with count.
	data, err := io.ReadAll(io.LimitReader(f.f, count))
	if err != nil {
		f.logFailure("read", err)
	}
	if data == nil {
		return []byte{}
	}
	return data
}

// ReadContents reads the whole file from its start, leaving the cursor at
// end of file.
func (f *File) ReadContents() []byte {
	if !f.Seek(0) {
		return []byte{}
	}
	length := f.Length()
	if length < 0 {
		return []byte{}
	}
	return f.Read(length)
}

// Write writes all of data at the cursor. It reports whether every byte was
// accepted. Writing to a handle opened read-only always fails.
func (f *File) Write(data []byte) bool {
	if !f.IsOpen() {
		return false
	}
	if !f.writable {
		f.logFailure("write", fs.ErrPermission)
		return false
	}
	n, err := f.w.Write(data)
	if err != nil {
		f.logFailure("write", err)
		return false
	}
	return n == len(data)
}

// Length returns the size of the file in bytes, or -1 on failure. The cursor
// is restored before returning.
func (f *File) Length() int64 {
	if !f.Flush() {
		return -1
	}
	current, err := f.f.Seek(0, io.SeekCurrent)
	if err != nil {
		f.logFailure("length", err)
		return -1
	}
	length, err := f.f.Seek(0, io.SeekEnd)
	if err != nil {
		f.logFailure("length", err)
		return -1
	}
	if _, err := f.f.Seek(current, io.SeekStart); err != nil {
		f.logFailure("length", err)
		return -1
	}
	return length
}

func (f *File) logFailure(op string, err error) {
	if f.logger == nil {
		return
	}
	f.logger.Debug("file operation failed", "op", op, "path", f.name, "err", err)
}
