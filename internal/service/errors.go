package service

import "errors"

var (
	ErrSetNotFound     = errors.New("set not found")
	ErrElementNotFound = errors.New("element not found")
	ErrInvalidDelta    = errors.New("invalid delta")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrCachePersist = errors.New("failed to persist cache record")
)
