package hostfs

// OpenFile opens path with an fopen-style mode (see ParseMode). Files are
// created with the platform's file permission, and missing parent
// directories are never created.
func (b *base) OpenFile(path, mode string) (*File, error) {
	flag, err := ParseMode(mode)
	if err != nil {
		return nil, wrapError(err, "open", path)
	}
	f, err := b.backend.OpenFile(path, flag, b.filePerm)
	if err != nil {
		b.logFailure("open", path, err)
		return nil, wrapError(err, "open", path)
	}
	return newFile(f, path, flag, b.logger), nil
}

// Open opens path with an fopen-style mode and panics if it cannot be
// opened. Callers are expected to have checked that the file can be opened.
func (b *base) Open(path, mode string) *File {
	f, err := b.OpenFile(path, mode)
	if err != nil {
		panic(err)
	}
	return f
}
