package bolt

import "errors"

var (
	ErrEmptyPath      = errors.New("bolt: database path is empty")
	ErrOpen           = errors.New("bolt: failed to open database")
	ErrCorruptSession = errors.New("bolt: stored session cannot be decoded")
)
