//go:build windows

package hostfs

// New creates the Platform matching the host operating system.
func New(opts ...Option) (Platform, error) {
	return NewWindows(opts...)
}
