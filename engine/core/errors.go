package core

import (
	"errors"
)

/**
 * Structural precondition failures. These indicate a programming error
 * (a missing handle or a bad index), never a geometric condition; the
 * geometry passes report "did not apply" through their boolean result
 * instead of through one of these.
 */
var (
	ErrNoTriangulation  = errors.New("triangulation handle is nil")
	ErrNoPSLG           = errors.New("pslg handle is nil")
	ErrEmptyFace        = errors.New("face has no vertices")
	ErrEdgeOutOfRange   = errors.New("edge index out of range")
	ErrVertexOutOfRange = errors.New("vertex index out of range")
	ErrFaceOutOfRange   = errors.New("face index out of range")
)
