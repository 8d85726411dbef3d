package wpt

import "errors"

// Errors returned by decomposition and tree utilities.
var (
	ErrEmptyInput       = errors.New("wpt: empty input")
	ErrInvalidFilter    = errors.New("wpt: invalid filter pair")
	ErrInvalidDepth     = errors.New("wpt: invalid decomposition depth")
	ErrLengthMismatch   = errors.New("wpt: signal length not divisible by 2^depth")
	ErrUnsupportedMode  = errors.New("wpt: unsupported decomposition mode")
	ErrDepthUnreachable = errors.New("wpt: node count too small to reach depth")
	ErrTreeShape        = errors.New("wpt: node count does not form a complete tree")
	ErrInvalidBasis     = errors.New("wpt: basis is not a valid tree cut")
	ErrEnsembleShape    = errors.New("wpt: ensemble signals must share one length")
)
