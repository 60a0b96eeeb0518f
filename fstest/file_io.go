package fstest

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/jmgilman/go/hostfs/core"
)

// TestFileIO tests reading, writing and seeking through File handles.
// Uses POSIXTestConfig() by default.
func TestFileIO(t *testing.T, backend core.Backend, root string) {
	TestFileIOWithConfig(t, backend, root, POSIXTestConfig())
}

// TestFileIOWithConfig tests File handle I/O with behavior configuration.
func TestFileIOWithConfig(t *testing.T, backend core.Backend, root string, config FSTestConfig) {
	t.Run("ReadWriteSeek", func(t *testing.T) {
		testFileIOReadWriteSeek(t, backend, root)
	})
	t.Run("SeekEnd", func(t *testing.T) {
		testFileIOSeekEnd(t, backend, root)
	})
	t.Run("ReadAtEOF", func(t *testing.T) {
		testFileIOReadAtEOF(t, backend, root)
	})
	t.Run("Sync", func(t *testing.T) {
		testFileIOSync(t, backend, root)
	})
}

// testFileIOReadWriteSeek writes, rewinds and reads back through one handle.
func testFileIOReadWriteSeek(t *testing.T, backend core.Backend, root string) {
	name := join(root, "rw.txt")
	f, err := backend.OpenFile(name, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q, O_RDWR): got error %v, want nil", name, err)
	}
	defer func() { _ = f.Close() }()

	content := []byte("0123456789")
	if n, err := f.Write(content); err != nil || n != len(content) {
		t.Fatalf("Write(): got (%d, %v), want (%d, nil)", n, err, len(content))
	}

	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil || pos != int64(len(content)) {
		t.Errorf("Seek(0, SeekCurrent) after write: got (%d, %v), want (%d, nil)", pos, err, len(content))
	}

	if pos, err := f.Seek(3, io.SeekStart); err != nil || pos != 3 {
		t.Fatalf("Seek(3, SeekStart): got (%d, %v), want (3, nil)", pos, err)
	}
	buf := make([]byte, 4)
	if _, err := io.ReadFull(f, buf); err != nil {
		t.Fatalf("ReadFull(): got error %v, want nil", err)
	}
	if !bytes.Equal(buf, []byte("3456")) {
		t.Errorf("ReadFull() after Seek(3): got %q, want %q", buf, "3456")
	}
}

// testFileIOSeekEnd tests SeekEnd reports the file length.
func testFileIOSeekEnd(t *testing.T, backend core.Backend, root string) {
	name := join(root, "length.txt")
	writeFile(t, backend, name, []byte("twelve bytes"))

	f, err := backend.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile(%q): got error %v, want nil", name, err)
	}
	defer func() { _ = f.Close() }()

	end, err := f.Seek(0, io.SeekEnd)
	if err != nil || end != 12 {
		t.Errorf("Seek(0, SeekEnd): got (%d, %v), want (12, nil)", end, err)
	}
}

// testFileIOReadAtEOF tests reads past the end report io.EOF.
func testFileIOReadAtEOF(t *testing.T, backend core.Backend, root string) {
	name := join(root, "eof.txt")
	writeFile(t, backend, name, []byte("ab"))

	f, err := backend.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile(%q): got error %v, want nil", name, err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 8)
	n, err := io.ReadFull(f, buf)
	if n != 2 || err != io.ErrUnexpectedEOF {
		t.Errorf("ReadFull() on 2-byte file: got (%d, %v), want (2, io.ErrUnexpectedEOF)", n, err)
	}
	if n, err := f.Read(buf); n != 0 || err != io.EOF {
		t.Errorf("Read() at EOF: got (%d, %v), want (0, io.EOF)", n, err)
	}
}

// testFileIOSync tests the optional Syncer capability.
func testFileIOSync(t *testing.T, backend core.Backend, root string) {
	name := join(root, "sync.txt")
	f, err := backend.OpenFile(name, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q): got error %v, want nil", name, err)
	}
	defer func() { _ = f.Close() }()

	s, ok := f.(core.Syncer)
	if !ok {
		t.Skip("Syncer not supported")
		return
	}
	if _, err := f.Write([]byte("data")); err != nil {
		t.Fatalf("Write(): got error %v", err)
	}
	if err := s.Sync(); err != nil {
		t.Errorf("Sync(): got error %v, want nil", err)
	}
}
