package localsync

import "errors"

var (
	ErrMoveIntoSubtree = errors.New("cannot move a node below itself")
)
