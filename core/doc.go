// Package core provides the storage contract underneath the hostfs platform
// layer.
//
// The platform layer (package hostfs) hides POSIX and Windows differences
// behind one API. It never touches the operating system directly; every
// call goes through a Backend. This keeps the platform logic, including the
// Windows branches, testable against an in-memory backend on any host.
//
// # Design Philosophy
//
//   - Zero dependencies: Only uses Go standard library
//   - Small contract: one method per primitive the platform needs
//   - Optional capabilities: Use type assertions for provider-specific features
//
// # Interface Hierarchy
//
// Every provider implements Backend and hands out File values.
//
// Optional interfaces for provider-specific capabilities:
//
//   - MetadataFS: Lstat and Chmod (permission bits)
//   - SymlinkFS: Lstat, Symlink and Readlink
//   - Resolver: native canonical-path resolution
//   - Syncer: on File, commit contents to stable storage
//
// # Checking Optional Capabilities
//
//	if mfs, ok := backend.(core.MetadataFS); ok {
//	    _ = mfs.Chmod("dir", 0o700)
//	}
//
// # Provider Implementations
//
// This package contains only interface definitions. Concrete implementations
// are provided by separate packages:
//
//   - github.com/jmgilman/go/hostfs/billy - go-billy-backed providers
//   - github.com/jmgilman/go/hostfs/afero - afero-backed providers
package core
