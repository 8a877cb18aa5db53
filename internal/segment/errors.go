package segment

import "errors"

// Error kinds reported by the pipeline. All are local and recoverable by the caller.
var (
	// ErrInvalidSeed reports a seed or start point outside the grid.
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrInvalidParameter reports a tolerance, factor or loop the operation cannot use.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrPreconditionViolation reports a grid that does not meet the expected shape
	// or channel-depth contract.
	ErrPreconditionViolation = errors.New("precondition violation")
)
