// commitment.go - Note and value commitment primitives.
//
// Note commitments are MiMC digests over the BW6-761 scalar field, whose
// modulus equals the BLS12-377 base field; point coordinates therefore hash
// natively. Value commitments are Pedersen commitments over BLS12-377 G1.
// Both derivations are shared with the private-circuit variant of the
// protocol and must stay byte-for-byte identical to it.

package transparent

import (
	"encoding/binary"
	"math/big"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	bls12377_fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	mimc "github.com/consensys/gnark-crypto/ecc/bw6-761/fr/mimc"
)

// CommitNote computes the binding commitment to a note's full contents:
// cm = MiMC(domain || g_d || pk_d || amount || asset_id || blinding).
// Deterministic: identical inputs always yield the identical commitment.
func (p *Params) CommitNote(addr DiversifiedAddress, amount uint64, assetID AssetID, noteBlinding []byte) (Commitment, error) {
	gd, pkd, err := decodeAddress(addr)
	if err != nil {
		return Commitment{}, err
	}
	blinding, err := decodeScalar(noteBlinding)
	if err != nil {
		return Commitment{}, reject("note_blinding", err)
	}
	return p.commitNote(&gd, &pkd, amount, assetID, &blinding), nil
}

// commitNote is the post-decode core of CommitNote, shared by the verifiers.
func (p *Params) commitNote(gd, pkd *bls12377.G1Affine, amount uint64, assetID AssetID, blinding *bls12377_fr.Element) Commitment {
	h := mimc.NewMiMC()
	h.Write([]byte(noteDomain))
	writePoint(h, gd)
	writePoint(h, pkd)
	writeUint64(h, amount)
	h.Write(assetID[:])
	b := blinding.Bytes()
	h.Write(b[:])
	return sumDigest(h)
}

// CommitValue computes the Pedersen commitment
// [amount]*G_v(asset_id) + [blinding]*H, where G_v is the per-asset value
// generator and H the fixed blinding generator. For a fixed asset id the
// commitment is additively homomorphic in (amount, blinding).
func (p *Params) CommitValue(amount uint64, assetID AssetID, vBlinding []byte) (ValueCommitment, error) {
	blinding, err := decodeScalar(vBlinding)
	if err != nil {
		return ValueCommitment{}, reject("v_blinding", err)
	}
	return p.commitValue(amount, assetID, &blinding)
}

func (p *Params) commitValue(amount uint64, assetID AssetID, blinding *bls12377_fr.Element) (ValueCommitment, error) {
	gen, err := p.valueGenerator(assetID)
	if err != nil {
		return ValueCommitment{}, err
	}
	var amountPart, blindingPart, sum bls12377.G1Affine
	amountPart.ScalarMultiplication(&gen, new(big.Int).SetUint64(amount))
	blindingPart.ScalarMultiplication(&p.blindingGen, blinding.BigInt(new(big.Int)))
	sum.Add(&amountPart, &blindingPart)
	return ValueCommitment{point: sum}, nil
}

// writePoint hashes both affine coordinates of a G1 point. The coordinates
// are canonical BLS12-377 base field elements, hence canonical MiMC blocks.
func writePoint(h interface{ Write([]byte) (int, error) }, pt *bls12377.G1Affine) {
	x := pt.X.Bytes()
	y := pt.Y.Bytes()
	h.Write(x[:])
	h.Write(y[:])
}

func writeUint64(h interface{ Write([]byte) (int, error) }, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

func sumDigest(h interface{ Sum([]byte) []byte }) Commitment {
	var d Commitment
	copy(d[:], h.Sum(nil))
	return d
}
