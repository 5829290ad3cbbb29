package platform

import (
	"os"
	"path/filepath"
)

type darwinManager struct{}

func newDarwinManager() Manager {
	return &darwinManager{}
}

func (m *darwinManager) FontDirs() []string {
	dirs := []string{
		"/System/Library/Fonts",
		"/Library/Fonts",
	}
	// A missing home directory only drops the user font folder
	if homeDir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(homeDir, "Library/Fonts"))
	}
	return dirs
}

// FcMatch names the Homebrew/MacPorts fontconfig binary, which is usually
// not installed on macOS.
func (m *darwinManager) FcMatch() string {
	return "fc-match"
}
