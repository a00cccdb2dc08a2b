package board

import "errors"

var (
	ErrNotClassical  = errors.New("piece has no classical counterpart")
	ErrMaskOverlap   = errors.New("occupancy masks overlap")
	ErrColorMismatch = errors.New("occupancy color disagrees with piece code")
	ErrUnknownKind   = errors.New("unknown piece kind")
)
