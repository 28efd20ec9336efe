// address.go - Diversified address decoding and validation.

package transparent

import (
	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
)

// decodeAddress decodes both components of a diversified address. Subgroup
// membership is checked by the point decoder.
func decodeAddress(addr DiversifiedAddress) (gd, pkd bls12377.G1Affine, err error) {
	gd, err = decodePoint(addr.GD)
	if err != nil {
		return gd, pkd, reject("g_d", err)
	}
	pkd, err = decodePoint(addr.PKD)
	if err != nil {
		return gd, pkd, reject("pk_d", err)
	}
	return gd, pkd, nil
}

// validateAddress rejects addresses with an identity component. An identity
// g_d would make every ivk map to the same pk_d; an identity pk_d is not a
// usable destination key.
func validateAddress(gd, pkd *bls12377.G1Affine) error {
	if gd.IsInfinity() || pkd.IsInfinity() {
		return ErrInvalidAddress
	}
	return nil
}

// decodeValidAddress combines decoding and structural validation; every
// verifier runs addresses through this before committing to them.
func decodeValidAddress(addr DiversifiedAddress) (gd, pkd bls12377.G1Affine, err error) {
	gd, pkd, err = decodeAddress(addr)
	if err != nil {
		return gd, pkd, err
	}
	if err = validateAddress(&gd, &pkd); err != nil {
		return gd, pkd, err
	}
	return gd, pkd, nil
}
