// types.go - Core value types shared by the commitment primitives and the
// per-kind verifiers.

package transparent

import (
	"encoding/hex"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
)

// Commitment is a MiMC digest binding a note's full contents. Merkle nodes of
// the note-commitment tree have the same representation.
type Commitment [DigestSize]byte

func (c Commitment) String() string { return hex.EncodeToString(c[:]) }

// Nullifier is the one-way tag marking a note as spent. Identical inputs to
// the deriver always yield the identical nullifier; the external nullifier set
// relies on this to detect double-spends.
type Nullifier [DigestSize]byte

func (n Nullifier) String() string { return hex.EncodeToString(n[:]) }

// AssetID identifies an asset. Registry assets derive it from their
// denomination; swap NFTs derive it from the swap's full intent.
type AssetID [32]byte

func (id AssetID) String() string { return hex.EncodeToString(id[:]) }

// TradingPair is the ordered pair of asset identifiers a swap trades between.
type TradingPair struct {
	Asset1 AssetID
	Asset2 AssetID
}

// ExecutionFn is the trading pair's deterministic pricing function, supplied
// by the caller. It maps escrowed deltas to execution outputs; the SwapClaim
// verifier only invokes it and compares.
type ExecutionFn func(pair TradingPair, delta1, delta2 uint64) (lambda1, lambda2 uint64)

// DiversifiedAddress is a spend destination: a per-recipient diversified base
// point g_d and the matching public key pk_d, both 48-byte compressed G1
// encodings. Conceptually pk_d = g_d * ivk; the engine never sees ivk.
type DiversifiedAddress struct {
	GD  []byte
	PKD []byte
}

// ValueCommitment is a Pedersen commitment to (amount, asset id) under a
// blinding factor. Commitments to the same asset add homomorphically, which
// is what transaction-wide balance aggregation is built on.
type ValueCommitment struct {
	point bls12377.G1Affine
}

// Add returns the homomorphic sum of two value commitments.
func (v ValueCommitment) Add(other ValueCommitment) ValueCommitment {
	var sum bls12377.G1Affine
	sum.Add(&v.point, &other.point)
	return ValueCommitment{point: sum}
}

// Equal reports whether two value commitments are the same group element.
func (v ValueCommitment) Equal(other ValueCommitment) bool {
	return v.point.Equal(&other.point)
}

// Bytes returns the compressed encoding of the commitment point.
func (v ValueCommitment) Bytes() []byte {
	b := v.point.Bytes()
	return b[:]
}
