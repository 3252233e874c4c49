package errors

import "errors"

var (
	// ErrNilParser indicates that a nil parser was handed to a generator.
	ErrNilParser = errors.New("parser cannot be nil")

	// ErrNilCommand indicates that a nil cobra command was handed to the
	// completion generator.
	ErrNilCommand = errors.New("command cannot be nil")

	// ErrInvalidName indicates a registered flag name that failed
	// validation while bridging to a cobra command.
	ErrInvalidName = errors.New("invalid flag name")
)
