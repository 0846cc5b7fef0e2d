package tabs

import "errors"

var (
	// ErrOutOfRange is returned when a tab index lies outside [0, count).
	ErrOutOfRange = errors.New("tab index out of range")
	// ErrWrongHostType is raised when the engine is constructed on a
	// container that does not support swapping its layout manager.
	ErrWrongHostType = errors.New("wrong host type: container must support layout swapping")
)
