package fontfind

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
)

// FallbackFinder scans a fixed, ordered list of font directories.
//
// Each directory is walked depth-first in lexical order. A directory in the
// list may be a symbolic link. Below it only regular files ending in ".ttf"
// or ".otf" are candidates; symbolic links are not followed and a link to a
// font file is not itself a candidate. A file matches when its
// name starts with the family and, if a style is given, contains the style.
// All comparisons are case-sensitive. The first match wins.
//
// Missing or unreadable directories and entries are skipped.
type FallbackFinder struct {
	dirs   []string
	logger logr.Logger
}

// NewFallback builds a fallback finder. It cannot fail.
func NewFallback(opts ...Option) *FallbackFinder {
	return newFallback(newConfig(opts))
}

func newFallback(c *config) *FallbackFinder {
	return &FallbackFinder{
		dirs:   append([]string(nil), c.dirs...),
		logger: c.logger,
	}
}

func (f *FallbackFinder) Backend() Backend {
	return Fallback
}

// Dirs returns a copy of the directories scanned, in priority order
func (f *FallbackFinder) Dirs() []string {
	return append([]string(nil), f.dirs...)
}

func (f *FallbackFinder) Find(family, style string) (string, bool) {
	if family == "" {
		return "", false
	}
	for _, dir := range f.dirs {
		if path, ok := f.scan(dir, family, style); ok {
			return path, true
		}
	}
	return "", false
}

// scan walks one root. Walk errors are logged and skipped instead of ending
// the search, so a broken subtree never hides fonts elsewhere.
//
// The root itself may be a symbolic link to a directory. The walk starts at
// root plus a trailing separator so the link is resolved, while returned
// paths still sit under root.
func (f *FallbackFinder) scan(root, family, style string) (string, bool) {
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		f.logger.V(1).Info("skipping font directory", "root", root)
		return "", false
	}
	start := root
	if !strings.HasSuffix(start, string(filepath.Separator)) {
		start += string(filepath.Separator)
	}
	var found string
	filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			f.logger.V(1).Info("skipping unreadable entry", "path", path, "error", err.Error())
			return nil
		}
		if !d.Type().IsRegular() || !isFontFile(d.Name()) {
			return nil
		}
		if matches(d.Name(), family, style) {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	return found, found != ""
}

// isFontFile accepts TrueType and OpenType files by their exact extension
func isFontFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".ttf" || ext == ".otf"
}

func matches(name, family, style string) bool {
	if !strings.HasPrefix(name, family) {
		return false
	}
	return style == "" || strings.Contains(name, style)
}

var _ Finder = (*FallbackFinder)(nil)
