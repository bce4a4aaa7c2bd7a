package table

import "errors"

var (
	ErrIndexKinds  = errors.New("cannot concatenate index kinds")
	ErrColumnKinds = errors.New("cannot concatenate columns")
	ErrStyles      = errors.New("cannot concatenate styles")
	ErrRowCount    = errors.New("row count mismatch")
	ErrInvalid     = errors.New("invalid table")
)
