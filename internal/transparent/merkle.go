// merkle.go - Inclusion proof checking against an externally supplied root.
//
// The engine only checks openings; building and storing the note-commitment
// tree is the caller's side of the boundary.

package transparent

import (
	"bytes"

	mimc "github.com/consensys/gnark-crypto/ecc/bw6-761/fr/mimc"
)

// InclusionProof opens a note commitment to a Merkle root. Path holds the
// sibling digests ordered leaf to root; left/right placement at each level is
// fixed by the bits of Position, least-significant bit first.
type InclusionProof struct {
	Commitment []byte
	Path       [][]byte
	Position   uint64
}

// VerifyInclusion checks that proof opens its embedded commitment to root.
func (p *Params) VerifyInclusion(proof InclusionProof, root Commitment) error {
	if len(proof.Commitment) != DigestSize {
		return reject("inclusion_proof.commitment", ErrMalformedScalar)
	}
	var leaf Commitment
	copy(leaf[:], proof.Commitment)
	return p.checkInclusion(leaf, proof, root)
}

// checkInclusion recomputes the path hash-by-hash from leaf to root. The
// proof's embedded commitment must match the recomputed leaf, so a prover
// cannot open a path for one note while revealing another.
func (p *Params) checkInclusion(leaf Commitment, proof InclusionProof, root Commitment) error {
	if len(proof.Commitment) != DigestSize {
		return reject("inclusion_proof.commitment", ErrMalformedScalar)
	}
	if !bytes.Equal(proof.Commitment, leaf[:]) {
		return ErrInclusionMismatch
	}
	// Position bits beyond the path length would silently change the leaf's
	// claimed slot; reject them.
	if len(proof.Path) < 64 && proof.Position>>uint(len(proof.Path)) != 0 {
		return ErrInclusionMismatch
	}
	current := leaf
	position := proof.Position
	for _, sibling := range proof.Path {
		if len(sibling) != DigestSize {
			return reject("inclusion_proof.path", ErrMalformedScalar)
		}
		if position&1 == 0 {
			current = p.hashNode(current[:], sibling)
		} else {
			current = p.hashNode(sibling, current[:])
		}
		position >>= 1
	}
	if current != root {
		return ErrInclusionMismatch
	}
	return nil
}

// hashNode computes an interior tree node from its ordered children.
func (p *Params) hashNode(left, right []byte) Commitment {
	h := mimc.NewMiMC()
	h.Write([]byte(merkleDomain))
	h.Write(left)
	h.Write(right)
	return sumDigest(h)
}
