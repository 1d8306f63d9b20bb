package diagram

import "fmt"

// ArgumentError reports an impossible configuration, raised by validators
// before any processing happens. See spec §7.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string { return "invalid argument: " + e.Message }

// InternalInvariantError marks a defensive check that should be
// unreachable in practice (spec §7's InternalInvariant kind). Nothing in
// the package returns or constructs it: when applyRevision's defensive
// check fails it reports ok=false and correctBlock silently drops the
// revision.
type InternalInvariantError struct {
	Message string
}

func (e *InternalInvariantError) Error() string { return "internal invariant violated: " + e.Message }

// errf is a small helper for formatting ArgumentErrors.
func errf(format string, args ...any) error {
	return &ArgumentError{Message: fmt.Sprintf(format, args...)}
}
