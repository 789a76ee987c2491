package apperror

import "errors"

var (
	ErrStepOutOfRange  = errors.New("step is out of range")
	ErrSessionNotFound = errors.New("session not found")
)
