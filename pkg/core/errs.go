package core

import "errors"

var (
	ErrInvalidTickCount = errors.New("invalid tick count")
	ErrInvalidDimension = errors.New("invalid dimension")
)
