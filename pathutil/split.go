package pathutil

// Segment is one non-empty component of a decomposed path.
type Segment struct {
	// Name is the component text, without separators.
	Name string
	// End is the index in the original path just past the component, so
	// path[:End] is the prefix naming this component.
	End int
}

// Split decomposes path into its root prefix (see RootPrefixLength) and the
// non-empty components that follow it, in order. Runs of separators never
// produce empty components.
func Split(path string, style Style) (root string, segments []Segment) {
	start := RootPrefixLength(path, style)
	root = path[:start]

	i := start
	for i < len(path) {
		if style.IsSeparator(path[i]) {
			i++
			continue
		}
		end := style.indexSeparator(path, i)
		if end < 0 {
			end = len(path)
		}
		segments = append(segments, Segment{Name: path[i:end], End: end})
		i = end
	}
	return root, segments
}

// Prefixes returns, in ascending order, every directory prefix of path that
// recursive creation has to visit. The root prefix is never included, and a
// path consisting only of a root yields no prefixes.
//
//	Prefixes("a/b/c", POSIX)               // ["a", "a/b", "a/b/c"]
//	Prefixes("/srv//data/", POSIX)          // ["/srv", "/srv//data"]
//	Prefixes(`C:\a\b`, Windows)             // [`C:\a`, `C:\a\b`]
//	Prefixes(`\\server\share\dir`, Windows) // [`\\server\share\dir`]
func Prefixes(path string, style Style) []string {
	_, segments := Split(path, style)
	prefixes := make([]string, 0, len(segments))
	for _, seg := range segments {
		prefixes = append(prefixes, path[:seg.End])
	}
	return prefixes
}

// Join joins components onto root with the style's preferred separator.
// A separator is only inserted where root does not already end in one.
func Join(style Style, root string, names ...string) string {
	buf := []byte(root)
	for _, name := range names {
		if len(buf) > 0 && !style.IsSeparator(buf[len(buf)-1]) {
			buf = append(buf, style.Separator())
		}
		buf = append(buf, name...)
	}
	return string(buf)
}
