// nullifier.go - One-way nullifier derivation.

package transparent

import (
	bls12377_fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	mimc "github.com/consensys/gnark-crypto/ecc/bw6-761/fr/mimc"
)

// DeriveNullifier computes the spent-note tag
// nf = MiMC(domain || nk || commitment || position). Pure and deterministic;
// the external nullifier set relies on the determinism to detect double-spends.
func (p *Params) DeriveNullifier(nk []byte, commitment Commitment, position uint64) (Nullifier, error) {
	k, err := decodeScalar(nk)
	if err != nil {
		return Nullifier{}, reject("nk", err)
	}
	return p.deriveNullifier(&k, commitment, position), nil
}

func (p *Params) deriveNullifier(nk *bls12377_fr.Element, commitment Commitment, position uint64) Nullifier {
	h := mimc.NewMiMC()
	h.Write([]byte(nullifierDomain))
	k := nk.Bytes()
	h.Write(k[:])
	h.Write(commitment[:])
	writeUint64(h, position)
	return Nullifier(sumDigest(h))
}
