package drag

import "errors"

var (
	// ErrAlreadyActive is returned by Start when the behavior already holds
	// an active operation and its policy is Reject.
	ErrAlreadyActive = errors.New("drag operation already active")

	// ErrNilSource is returned when an operation is started without a pointer source.
	ErrNilSource = errors.New("pointer source cannot be nil")
)
