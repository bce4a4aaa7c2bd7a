package node

import "errors"

var (
	ErrBadPath = errors.New("bad path")
)
