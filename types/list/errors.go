package list

import (
	"errors"
)

// Errors used to report broken preconditions. They are raised with panic
// since they mean a bug in the caller, not a recoverable condition.
var (
	ErrListIsEmpty           = errors.New("list is empty")
	ErrIteratorIsEnd         = errors.New("iterator is past the end of the list")
	ErrIteratorIsBeforeBegin = errors.New("iterator points before the first list node")
	ErrNoElementAfter        = errors.New("no list node follows the iterator")
)
