package bestbasis

import "errors"

var (
	// ErrEmptyInput is returned when no tree, or an empty tree, is given.
	ErrEmptyInput = errors.New("bestbasis: empty input")

	// ErrInvalidMethod is returned for an unknown method, or a method
	// applied through the wrong entry point (ensemble methods via
	// Select, single-tree methods via SelectEnsemble).
	ErrInvalidMethod = errors.New("bestbasis: invalid selection method")

	// ErrWrongTreeMode is returned when the tree's decomposition mode
	// does not match the method, for example MethodBB on a
	// shift-invariant tree.
	ErrWrongTreeMode = errors.New("bestbasis: decomposition mode does not match method")

	// ErrEnsembleShape is returned when ensemble trees differ in length,
	// depth, mode or arity.
	ErrEnsembleShape = errors.New("bestbasis: ensemble trees must share one shape")
)
