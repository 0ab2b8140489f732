package stream

import "errors"

var (
	// ErrUnknownCommand is returned for control commands with an unknown type.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUnknownTarget is returned when a finish command names neither an
	// object nor an animation type.
	ErrUnknownTarget = errors.New("unknown finish target")
)
