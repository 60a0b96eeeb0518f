// Package fstest provides a conformance test suite for validating backend
// implementations against the core.Backend contract.
//
// This package contains test functions that can be imported and executed by
// backend packages to verify they correctly implement core.Backend and its
// optional extensions (MetadataFS, SymlinkFS, Resolver, Syncer).
//
// The suite validates the contract the platform layer depends on, in
// particular the parts storage libraries tend to relax: OpenFile and Mkdir
// must not create missing parents, Remove must refuse non-empty directories,
// and Chmod must only touch permission bits.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (core.Backend, string) {
//	        return mybackend.New(), t.TempDir()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/go/hostfs/core"
)

// Factory returns a fresh backend together with the directory inside it that
// tests may populate. The directory is created by the suite if missing.
type Factory func(t *testing.T) (core.Backend, string)

// FSTestConfig configures the test suite to match backend characteristics.
type FSTestConfig struct {
	// ChmodUnsupported indicates Chmod always fails with core.ErrUnsupported
	// (e.g., in-memory backends that do not track permission changes).
	ChmodUnsupported bool

	// NoSymlinks indicates the backend cannot create symbolic links even
	// though it implements core.SymlinkFS.
	NoSymlinks bool

	// SkipTests lists specific test groups to skip (for edge cases).
	// Format: group name (e.g., "MetadataFS").
	SkipTests []string
}

// POSIXTestConfig returns configuration for POSIX-like backends (local, memory).
func POSIXTestConfig() FSTestConfig {
	return FSTestConfig{}
}

// TestSuite runs all applicable conformance tests against a backend.
// Uses POSIXTestConfig() by default.
func TestSuite(t *testing.T, newFS Factory) {
	TestSuiteWithConfig(t, newFS, POSIXTestConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
// Every group receives its own backend from newFS.
func TestSuiteWithConfig(t *testing.T, newFS Factory, config FSTestConfig) {
	shouldSkip := func(testName string) bool {
		for _, skip := range config.SkipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	groups := []struct {
		name string
		run  func(t *testing.T, backend core.Backend, root string, config FSTestConfig)
	}{
		{"Stat", TestStatWithConfig},
		{"OpenFile", TestOpenFileWithConfig},
		{"Mkdir", TestMkdirWithConfig},
		{"MkdirAll", TestMkdirAllWithConfig},
		{"Remove", TestRemoveWithConfig},
		{"FileIO", TestFileIOWithConfig},
		{"MetadataFS", TestMetadataFSWithConfig},
		{"SymlinkFS", TestSymlinkFSWithConfig},
		{"Resolver", TestResolverWithConfig},
	}

	for _, group := range groups {
		t.Run(group.name, func(t *testing.T) {
			if shouldSkip(group.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			backend, root := newFS(t)
			if err := backend.MkdirAll(root, 0o755); err != nil {
				t.Fatalf("MkdirAll(%q): setup failed: %v", root, err)
			}
			group.run(t, backend, root, config)
		})
	}
}
