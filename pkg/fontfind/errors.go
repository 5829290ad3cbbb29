package fontfind

import "errors"

// ErrInit reports that the system font service could not be initialized.
// It is the only error kind a Resolver produces; a query that finds nothing
// is not an error.
var ErrInit = errors.New("failed to initialize the system font service")

// InitError is returned by New and NewNative when the native backend cannot
// be brought up. Its message is always that of ErrInit; Cause is reachable
// through errors.As or Unwrap for diagnostics.
type InitError struct {
	Cause error
}

func (e *InitError) Error() string {
	return ErrInit.Error()
}

func (e *InitError) Is(target error) bool {
	return target == ErrInit
}

func (e *InitError) Unwrap() error {
	return e.Cause
}
