// encoding.go - Scalar and point decoding over BLS12-377.
//
// This is the arithmetic adapter boundary: every byte field of a proof passes
// through here exactly once before any derivation runs. Scalars are 32-byte
// big-endian canonical encodings of the BLS12-377 scalar field; points are
// 48-byte compressed G1 encodings (subgroup-checked on decode).

package transparent

import (
	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	bls12377_fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	mimc "github.com/consensys/gnark-crypto/ecc/bw6-761/fr/mimc"
)

const (
	// ScalarSize is the encoded length of a BLS12-377 scalar field element.
	ScalarSize = bls12377_fr.Bytes
	// PointSize is the encoded length of a compressed BLS12-377 G1 point.
	PointSize = bls12377.SizeOfG1AffineCompressed
	// DigestSize is the encoded length of a MiMC digest, one BW6-761 scalar
	// field element. Note commitments, nullifiers, and Merkle nodes all have
	// this size.
	DigestSize = mimc.BlockSize
)

func decodeScalar(b []byte) (bls12377_fr.Element, error) {
	var e bls12377_fr.Element
	if len(b) != ScalarSize {
		return e, ErrMalformedScalar
	}
	if err := e.SetBytesCanonical(b); err != nil {
		return e, ErrMalformedScalar
	}
	return e, nil
}

func decodePoint(b []byte) (bls12377.G1Affine, error) {
	var p bls12377.G1Affine
	if len(b) != PointSize {
		return p, ErrMalformedPoint
	}
	if _, err := p.SetBytes(b); err != nil {
		return p, ErrMalformedPoint
	}
	return p, nil
}
