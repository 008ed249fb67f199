package state

import "errors"

var (
	// ErrFrozen is returned by Set once the State has been frozen.
	ErrFrozen = errors.New("state is frozen")
	// ErrAlreadySet is returned by Set when the key is already bound.
	ErrAlreadySet = errors.New("key is already set")
)
