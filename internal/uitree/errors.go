package uitree

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented marks a well-formed request for a capability the
	// engine does not provide. Callers must not treat it as an empty result.
	ErrNotImplemented = errors.New("uitree: not implemented")

	// ErrStaleElement is returned when a handle refers to an id that is not
	// part of the current snapshot.
	ErrStaleElement = errors.New("uitree: element not in current tree")

	// ErrNoAction is returned when activating an id with no action entry.
	ErrNoAction = errors.New("uitree: element has no action")

	ErrInvalidArgument   = errors.New("uitree: invalid argument")
	ErrRebuildInProgress = errors.New("uitree: rebuild in progress")
	ErrAccessDenied      = errors.New("uitree: access denied")
)

// ContractError reports a programmer error inside the engine: an unknown id
// lookup, unbalanced scopes, an id collision. It is raised with panic and is
// only recovered by Tree.Describe, which discards the partial snapshot.
type ContractError struct {
	Op  string
	ID  ID
	Msg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("uitree: %s %s: %s", e.Op, e.ID, e.Msg)
}

func violate(op string, id ID, format string, args ...any) {
	panic(&ContractError{Op: op, ID: id, Msg: fmt.Sprintf(format, args...)})
}
