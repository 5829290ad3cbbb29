// Package fontfind resolves a font family name and an optional style to a
// font file on the local filesystem.
//
// Two backends implement the same Finder contract. The native backend asks
// fontconfig through its fc-match command. The fallback backend scans a fixed
// list of font directories and returns the first .ttf or .otf file whose name
// starts with the family and contains the style.
package fontfind

import "fmt"

// Finder resolves a font request to the path of a font file
type Finder interface {
	// Find returns the path of the font file for family and style. An empty
	// style means no style was requested. ok is false when nothing matches.
	Find(family, style string) (path string, ok bool)

	// Backend identifies the strategy behind this finder
	Backend() Backend
}

// Backend selects one of the two resolution strategies
type Backend int

const (
	// Native delegates to the system font configuration service
	Native Backend = iota
	// Fallback scans well-known font directories
	Fallback
)

func (b Backend) String() string {
	switch b {
	case Native:
		return "native"
	case Fallback:
		return "fallback"
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend maps "native" or "fallback" to a Backend
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "native":
		return Native, nil
	case "fallback":
		return Fallback, nil
	}
	return 0, fmt.Errorf("unknown backend %q", name)
}
