package core

import (
	"errors"
)

var (
	ErrInvalidScene  = errors.New("invalid scene")
	ErrWatcherClosed = errors.New("scene watcher already closed")
	ErrUnknown       = errors.New("unknown")
)
