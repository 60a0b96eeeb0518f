package hostfs

// WithFile opens path, passes the handle to fn and releases it when fn
// returns or panics. The handle may be closed or moved by fn.
func WithFile(p Platform, path, mode string, fn func(*File) error) error {
	f, err := p.OpenFile(path, mode)
	if err != nil {
		return err
	}
	defer f.Release()
	return fn(f)
}

// ReadContents opens path with mode and returns its entire contents.
func ReadContents(p Platform, path, mode string) ([]byte, error) {
	var data []byte
	err := WithFile(p, path, mode, func(f *File) error {
		data = f.ReadContents()
		return nil
	})
	return data, err
}

// WriteContents opens path with mode and writes contents to it. It fails if
// the write or the final close fails.
func WriteContents(p Platform, path, mode string, contents []byte) error {
	return WithFile(p, path, mode, func(f *File) error {
		if !f.Write(contents) || !f.Close() {
			return wrapError(errWriteFailed, "write", path)
		}
		return nil
	})
}
