package platform

import (
	"runtime"
)

// Manager exposes the platform-specific font locations
type Manager interface {
	// FontDirs returns the well-known font directories in priority order
	FontDirs() []string

	// FcMatch returns the fontconfig match command to query
	FcMatch() string
}

// New returns a platform-specific manager
func New() Manager {
	return ForOS(runtime.GOOS)
}

// ForOS returns the manager for the named operating system
func ForOS(goos string) Manager {
	if goos == "darwin" {
		return newDarwinManager()
	}
	return newLinuxManager()
}
