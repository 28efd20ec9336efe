// params.go - Process-wide, immutable cryptographic parameters.
//
// Params is constructed once at startup and passed by reference into every
// verifier call. Nothing in it is ever mutated, so a single value is safe to
// share across any number of concurrent verifications.

package transparent

import (
	"fmt"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
)

// Domain-separation tags. These are part of the versioned contract shared with
// the private-circuit variant of the protocol; changing any of them forks the
// commitment scheme.
const (
	noteDomain      = "transparentpool:note-commitment:v1"
	nullifierDomain = "transparentpool:nullifier:v1"
	merkleDomain    = "transparentpool:merkle-node:v1"
	swapNFTDomain   = "transparentpool:swap-nft-asset-id:v1"

	valueGeneratorDST    = "transparentpool:value-generator:v1"
	blindingGeneratorDST = "transparentpool:blinding-generator:v1"
)

// Params holds the immutable parameters every verifier needs: the Pedersen
// blinding generator and the asset the protocol denominates fees in.
type Params struct {
	blindingGen bls12377.G1Affine
	feeAssetID  AssetID
}

// NewParams derives the fixed generators and returns a ready-to-share
// parameter set. feeAssetID is the asset id swap fees are committed under.
func NewParams(feeAssetID AssetID) (*Params, error) {
	h, err := bls12377.HashToG1([]byte("H"), []byte(blindingGeneratorDST))
	if err != nil {
		return nil, fmt.Errorf("deriving blinding generator: %w", err)
	}
	return &Params{blindingGen: h, feeAssetID: feeAssetID}, nil
}

// FeeAssetID returns the asset id swap fees are committed under.
func (p *Params) FeeAssetID() AssetID { return p.feeAssetID }

// valueGenerator derives the per-asset Pedersen value generator. The asset id
// selects the generator by hash-to-curve, so no table of generators needs
// maintaining and distinct assets get independent generators.
func (p *Params) valueGenerator(assetID AssetID) (bls12377.G1Affine, error) {
	g, err := bls12377.HashToG1(assetID[:], []byte(valueGeneratorDST))
	if err != nil {
		return g, fmt.Errorf("deriving value generator: %w", err)
	}
	return g, nil
}
