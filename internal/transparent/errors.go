// errors.go - Rejection taxonomy for transparent proof verification.
//
// Every verification failure is terminal for that proof: never retried, never
// partially accepted. Callers distinguish causes with errors.Is against the
// sentinels below.

package transparent

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedScalar indicates an encoded field does not decode to a
	// canonical scalar field element.
	ErrMalformedScalar = errors.New("malformed scalar encoding")

	// ErrMalformedPoint indicates an encoded field does not decode to a valid
	// curve-group element.
	ErrMalformedPoint = errors.New("malformed point encoding")

	// ErrInvalidAddress indicates a diversified address component is the group
	// identity or otherwise structurally invalid.
	ErrInvalidAddress = errors.New("invalid diversified address")

	// ErrInclusionMismatch indicates the recomputed Merkle path does not reach
	// the supplied root.
	ErrInclusionMismatch = errors.New("inclusion proof does not open to root")

	// ErrSwapNFTMismatch indicates the swap NFT asset id does not match the
	// recomputed binding over (trading pair, delta_1, delta_2, fee).
	ErrSwapNFTMismatch = errors.New("swap NFT asset id mismatch")

	// ErrExecutionMismatch indicates the claimed (lambda_1, lambda_2) disagree
	// with the trading pair's deterministic execution function.
	ErrExecutionMismatch = errors.New("execution output mismatch")
)

// VerificationError annotates a rejection with the proof field that caused it.
// It unwraps to one of the sentinel errors above.
type VerificationError struct {
	Field string
	Err   error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *VerificationError) Unwrap() error { return e.Err }

func reject(field string, err error) error {
	return &VerificationError{Field: field, Err: err}
}
