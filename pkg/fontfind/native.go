package fontfind

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-logr/logr"
)

// NativeFinder delegates every query to fontconfig. fontconfig's own
// matching, including family substitution, is authoritative.
type NativeFinder struct {
	fcMatch string
	logger  logr.Logger
}

// NewNative connects to fontconfig. It fails with an error matching ErrInit
// when the fc-match command cannot be found or does not run.
func NewNative(opts ...Option) (*NativeFinder, error) {
	return newNative(newConfig(opts))
}

func newNative(c *config) (*NativeFinder, error) {
	path, err := exec.LookPath(c.fcMatch)
	if err != nil {
		return nil, &InitError{Cause: fmt.Errorf("locating %s: %w", c.fcMatch, err)}
	}
	if output, err := exec.Command(path, "--version").CombinedOutput(); err != nil {
		return nil, &InitError{Cause: fmt.Errorf("running %s: %s: %w", path, strings.TrimSpace(string(output)), err)}
	}
	c.logger.V(1).Info("using fontconfig", "command", path)
	return &NativeFinder{
		fcMatch: path,
		logger:  c.logger,
	}, nil
}

func (f *NativeFinder) Backend() Backend {
	return Native
}

// Find asks fc-match for the best file for family and style. Only the file
// path of the answer is kept.
func (f *NativeFinder) Find(family, style string) (string, bool) {
	if family == "" {
		return "", false
	}
	pattern := fcPattern(family, style)
	output, err := exec.Command(f.fcMatch, "--format=%{file}", pattern).Output()
	if err != nil {
		f.logger.V(1).Info("fc-match failed", "pattern", pattern, "error", err.Error())
		return "", false
	}
	path := strings.TrimSpace(string(output))
	if path == "" {
		return "", false
	}
	return path, true
}

var fcEscaper = strings.NewReplacer(
	`\`, `\\`,
	`-`, `\-`,
	`:`, `\:`,
	`,`, `\,`,
)

// fcPattern builds a fontconfig pattern such as "DejaVu Sans:style=Bold"
func fcPattern(family, style string) string {
	pattern := fcEscaper.Replace(family)
	if style != "" {
		pattern += ":style=" + fcEscaper.Replace(style)
	}
	return pattern
}

var _ Finder = (*NativeFinder)(nil)
