package chatmodels

import "errors"

var (
	// ErrInvalidConfiguration is returned when a registration supplies an empty
	// name or an empty or malformed model identifier, or the constructor rejects it.
	ErrInvalidConfiguration = errors.New("invalid model configuration")
	// ErrDuplicateName is returned when a name is already registered.
	ErrDuplicateName = errors.New("model name already registered")
	// ErrNotFound is returned when looking up an unregistered name.
	ErrNotFound = errors.New("model not found")
)
