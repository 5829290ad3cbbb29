package fontfind

// Resolver is the process-facing entry point. It is built once and holds
// exactly one backend; it carries no per-query state and is safe for
// concurrent use.
type Resolver struct {
	finder Finder
}

// New builds a Resolver for the configured backend. For the native backend
// the fontconfig service is initialized here and a failure is returned as an
// error matching ErrInit. New never falls back to the directory scan on its
// own; callers wanting that must retry with WithBackend(Fallback).
func New(opts ...Option) (*Resolver, error) {
	c := newConfig(opts)
	if c.backend == Fallback {
		return &Resolver{finder: newFallback(c)}, nil
	}
	native, err := newNative(c)
	if err != nil {
		return nil, err
	}
	return &Resolver{finder: native}, nil
}

// Find forwards the query to the active backend
func (r *Resolver) Find(family, style string) (string, bool) {
	return r.finder.Find(family, style)
}

// Backend reports which backend this resolver was built with
func (r *Resolver) Backend() Backend {
	return r.finder.Backend()
}

var _ Finder = (*Resolver)(nil)
