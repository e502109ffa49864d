package tree

import "github.com/pkg/errors"

var (
	// ErrCapacityExceeded is returned when a node cannot be allocated, either
	// because Config.MaxNodes live nodes already exist or the handle space is
	// used up. The tree is left unchanged.
	ErrCapacityExceeded = errors.New("tree: node capacity exceeded")

	// ErrInvariantViolation wraps every error reported by Verify. Seeing it
	// outside of a test means the tree has a bug.
	ErrInvariantViolation = errors.New("tree: invariant violation")
)

func violation(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvariantViolation, format, args...)
}
