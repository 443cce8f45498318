package memory

import "errors"

var (
	ErrResortNotFound = errors.New("resort not found")
	ErrResortExists   = errors.New("resort already registered")
)
