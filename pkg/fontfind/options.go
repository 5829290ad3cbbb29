package fontfind

import (
	"github.com/go-logr/logr"
	"github.com/logandonley/font-finder/internal/platform"
)

type config struct {
	backend Backend
	dirs    []string
	fcMatch string
	logger  logr.Logger
}

// Option configures a Resolver or one of the backends
type Option func(*config)

// WithBackend selects the backend New builds. The default is Native.
func WithBackend(b Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// WithDirs replaces the platform font directories scanned by the fallback
// backend. Earlier directories take precedence.
func WithDirs(dirs ...string) Option {
	return func(c *config) {
		c.dirs = append([]string(nil), dirs...)
	}
}

// WithFcMatch sets the fc-match command used by the native backend. A bare
// name is looked up in PATH.
func WithFcMatch(command string) Option {
	return func(c *config) {
		c.fcMatch = command
	}
}

// WithLogger sets the logger for backend decisions and skipped entries
func WithLogger(logger logr.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) *config {
	p := platform.New()
	c := &config{
		backend: Native,
		dirs:    p.FontDirs(),
		fcMatch: p.FcMatch(),
		logger:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
