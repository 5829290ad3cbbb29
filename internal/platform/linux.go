package platform

type linuxManager struct{}

func newLinuxManager() Manager {
	return &linuxManager{}
}

// FontDirs covers the system-wide font trees, their truetype subdirectories
// and the Android system font directory.
func (m *linuxManager) FontDirs() []string {
	return []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/usr/share/fonts/truetype",
		"/usr/local/share/fonts/truetype",
		"/system/fonts",
	}
}

func (m *linuxManager) FcMatch() string {
	return "fc-match"
}
