// Package env resolves configuration that comes from the process
// environment, most notably the temporary directory.
//
// The live environment is never read implicitly: a Resolver is built from a
// Config whose Lookup function defaults to os.LookupEnv but can be replaced
// by a map or a snapshot of environ-style strings. This keeps resolution
// deterministic under test, where variables have to be set, emptied and
// restored.
//
// Resolution rules depend on the path Style:
//
//   - POSIX: TMPDIR if set and non-empty; otherwise the first existing
//     directory of /tmp and /var/tmp; otherwise ".".
//   - Windows: the first non-empty of TMP, TEMP and LOCALAPPDATA; otherwise
//     the operating system's temporary path; otherwise ".".
//
// Values taken from the environment are trusted: they are returned without
// checking that the directory exists. Trailing separators are trimmed.
package env
