package treeproc

import "errors"

var (
	ErrNoShareKey = errors.New("share node has no share key")
	ErrWrapKey    = errors.New("failed to wrap node key")
)
