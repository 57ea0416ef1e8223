package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingOps indicates the operations engine is required but not set.
	ErrMissingOps = errors.New("execution context: operations engine is required")

	// ErrMissingRegisters indicates the register store is required but not set.
	ErrMissingRegisters = errors.New("execution context: registers are required")
)
