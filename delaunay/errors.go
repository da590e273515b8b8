package delaunay

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidCoordinate is returned when a coordinate containing NaN or an
// infinity reaches a mutating operation. The triangulation is left untouched.
var ErrInvalidCoordinate = errors.New("coordinates must be finite")

// ConstraintViolationError is returned when an operation would remove or
// cross a registered constraint edge. The operation is rejected atomically;
// the triangulation is left exactly as it was.
type ConstraintViolationError struct {
	From, To VertexHandle
	Reason   string
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint violation between vertex %d and vertex %d: %s",
		e.From, e.To, e.Reason)
}

// Threading errors up through the deep traversal loops (conflict region
// walks, removal checks) would add a ton of plumbing. Instead we panic with a
// raised value and recover at the public API boundary, converting to an
// ordinary error return.
//
// Only raised values are recovered. Anything else that panics inside the
// engine indicates corrupted topology, which is a defect and must surface
// loudly rather than be swallowed.

type raised struct {
	err error
}

func raise(err error) {
	panic(raised{err})
}

// recoverRaised converts a raised panic back into an error. Use in a defer:
//
//	defer func() { err = recoverRaised(recover(), err) }()
func recoverRaised(r interface{}, current error) error {
	if r == nil {
		return current
	}
	if raisedValue, ok := r.(raised); ok {
		return raisedValue.err
	}
	panic(r)
}

// invariantf panics with a non-recoverable defect error. Reaching one of
// these means a predicate or legalization bug has corrupted the mesh.
func invariantf(format string, args ...interface{}) {
	panic(errors.Errorf("topology invariant violated: "+format, args...))
}
