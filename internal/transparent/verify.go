// verify.go - The four per-kind verifiers and the tagged dispatch over them.
//
// All four kinds share the same commitment, nullifier, address, and inclusion
// plumbing; the per-kind functions below only sequence those shared pieces
// and add their kind's conservation logic. Every verifier is a pure, total
// function of (proof, external context): no I/O, no retries, no mutation of
// any collaborator.

package transparent

import "fmt"

// VerifySpend checks a spend proof against the supplied note-commitment tree
// root. On acceptance it returns the recomputed note and value commitments,
// the derived nullifier, and the (ak, spend_auth_randomizer) pair for the
// external signature check. The caller checks the nullifier against the
// spent set; no double-spend detection happens here.
func (p *Params) VerifySpend(proof *SpendProof, root Commitment) (*SpendResult, error) {
	gd, pkd, err := decodeValidAddress(proof.Address)
	if err != nil {
		return nil, err
	}
	noteBlinding, err := decodeScalar(proof.NoteBlinding)
	if err != nil {
		return nil, reject("note_blinding", err)
	}
	vBlinding, err := decodeScalar(proof.VBlinding)
	if err != nil {
		return nil, reject("v_blinding", err)
	}
	nk, err := decodeScalar(proof.Nk)
	if err != nil {
		return nil, reject("nk", err)
	}
	if _, err := decodeScalar(proof.SpendAuthRandomizer); err != nil {
		return nil, reject("spend_auth_randomizer", err)
	}
	if _, err := decodePoint(proof.Ak); err != nil {
		return nil, reject("ak", err)
	}

	noteCommitment := p.commitNote(&gd, &pkd, proof.Amount, proof.AssetID, &noteBlinding)
	if err := p.checkInclusion(noteCommitment, proof.Inclusion, root); err != nil {
		return nil, err
	}
	valueCommitment, err := p.commitValue(proof.Amount, proof.AssetID, &vBlinding)
	if err != nil {
		return nil, err
	}
	nullifier := p.deriveNullifier(&nk, noteCommitment, proof.Inclusion.Position)

	return &SpendResult{
		NoteCommitment:      noteCommitment,
		ValueCommitment:     valueCommitment,
		Nullifier:           nullifier,
		Ak:                  cloneBytes(proof.Ak),
		SpendAuthRandomizer: cloneBytes(proof.SpendAuthRandomizer),
	}, nil
}

// VerifyOutput checks an output proof. Outputs are new notes, not yet in the
// tree, so there is no inclusion check; esk is validated as a scalar and left
// to the external key-agreement module.
func (p *Params) VerifyOutput(proof *OutputProof) (*OutputResult, error) {
	gd, pkd, err := decodeValidAddress(proof.Address)
	if err != nil {
		return nil, err
	}
	noteBlinding, err := decodeScalar(proof.NoteBlinding)
	if err != nil {
		return nil, reject("note_blinding", err)
	}
	vBlinding, err := decodeScalar(proof.VBlinding)
	if err != nil {
		return nil, reject("v_blinding", err)
	}
	if _, err := decodeScalar(proof.Esk); err != nil {
		return nil, reject("esk", err)
	}

	noteCommitment := p.commitNote(&gd, &pkd, proof.Amount, proof.AssetID, &noteBlinding)
	valueCommitment, err := p.commitValue(proof.Amount, proof.AssetID, &vBlinding)
	if err != nil {
		return nil, err
	}
	return &OutputResult{
		NoteCommitment:  noteCommitment,
		ValueCommitment: valueCommitment,
	}, nil
}

// VerifySwap checks a swap proof against the trading pair the caller resolved
// for it. The proof's swap NFT asset id must equal the recomputed binding
// over (pair, delta_1, delta_2, fee); the three value commitments are
// returned for the caller's transaction-wide balance aggregation, which does
// not happen here.
func (p *Params) VerifySwap(proof *SwapProof, pair TradingPair) (*SwapResult, error) {
	bd, pkd, err := decodeValidAddress(proof.NFTAddress)
	if err != nil {
		return nil, err
	}
	delta1Blinding, err := decodeScalar(proof.Delta1Blinding)
	if err != nil {
		return nil, reject("delta_1_blinding", err)
	}
	delta2Blinding, err := decodeScalar(proof.Delta2Blinding)
	if err != nil {
		return nil, reject("delta_2_blinding", err)
	}
	feeBlinding, err := decodeScalar(proof.FeeBlinding)
	if err != nil {
		return nil, reject("fee_blinding", err)
	}
	noteBlinding, err := decodeScalar(proof.NoteBlinding)
	if err != nil {
		return nil, reject("note_blinding", err)
	}
	if _, err := decodeScalar(proof.T1); err != nil {
		return nil, reject("t1", err)
	}
	if _, err := decodeScalar(proof.T2); err != nil {
		return nil, reject("t2", err)
	}
	if _, err := decodeScalar(proof.Esk); err != nil {
		return nil, reject("esk", err)
	}

	if SwapNFTAssetID(pair, proof.Delta1, proof.Delta2, proof.Fee) != proof.SwapNFTAssetID {
		return nil, ErrSwapNFTMismatch
	}

	valueCommitment1, err := p.commitValue(proof.Delta1, pair.Asset1, &delta1Blinding)
	if err != nil {
		return nil, err
	}
	valueCommitment2, err := p.commitValue(proof.Delta2, pair.Asset2, &delta2Blinding)
	if err != nil {
		return nil, err
	}
	feeCommitment, err := p.commitValue(proof.Fee, p.feeAssetID, &feeBlinding)
	if err != nil {
		return nil, err
	}
	// The swap NFT is a unit-valued note tagged with the binding asset id.
	nftCommitment := p.commitNote(&bd, &pkd, 1, proof.SwapNFTAssetID, &noteBlinding)

	return &SwapResult{
		ValueCommitment1:  valueCommitment1,
		ValueCommitment2:  valueCommitment2,
		FeeCommitment:     feeCommitment,
		SwapNFTCommitment: nftCommitment,
		T1:                cloneBytes(proof.T1),
		T2:                cloneBytes(proof.T2),
	}, nil
}

// VerifySwapClaim checks a swap-claim proof against the supplied root and the
// trading pair's execution function. The claimed (lambda_1, lambda_2) must
// equal the recomputed execution of (delta_1, delta_2); the two output-note
// commitments are recomputed from the claimed openings.
func (p *Params) VerifySwapClaim(proof *SwapClaimProof, root Commitment, exec ExecutionFn) (*SwapClaimResult, error) {
	bd, pkd, err := decodeValidAddress(proof.NFTAddress)
	if err != nil {
		return nil, err
	}
	noteBlinding, err := decodeScalar(proof.NoteBlinding)
	if err != nil {
		return nil, reject("note_blinding", err)
	}
	nk, err := decodeScalar(proof.Nk)
	if err != nil {
		return nil, reject("nk", err)
	}

	nftCommitment := p.commitNote(&bd, &pkd, 1, proof.SwapNFTAssetID, &noteBlinding)
	if err := p.checkInclusion(nftCommitment, proof.Inclusion, root); err != nil {
		return nil, err
	}
	nullifier := p.deriveNullifier(&nk, nftCommitment, proof.Inclusion.Position)

	lambda1, lambda2 := exec(proof.Pair, proof.Delta1, proof.Delta2)
	if lambda1 != proof.Lambda1 || lambda2 != proof.Lambda2 {
		return nil, ErrExecutionMismatch
	}

	outputCommitment1, err := p.claimOutputCommitment(proof.OutputAddress1, proof.Lambda1, proof.Pair.Asset1, proof.OutputBlinding1, proof.Esk1, "1")
	if err != nil {
		return nil, err
	}
	outputCommitment2, err := p.claimOutputCommitment(proof.OutputAddress2, proof.Lambda2, proof.Pair.Asset2, proof.OutputBlinding2, proof.Esk2, "2")
	if err != nil {
		return nil, err
	}

	return &SwapClaimResult{
		Nullifier:         nullifier,
		OutputCommitment1: outputCommitment1,
		OutputCommitment2: outputCommitment2,
	}, nil
}

// claimOutputCommitment recomputes one claim output-note commitment from its
// opening and validates the accompanying ephemeral secret.
func (p *Params) claimOutputCommitment(addr DiversifiedAddress, amount uint64, assetID AssetID, blinding, esk []byte, leg string) (Commitment, error) {
	gd, pkd, err := decodeValidAddress(addr)
	if err != nil {
		return Commitment{}, err
	}
	b, err := decodeScalar(blinding)
	if err != nil {
		return Commitment{}, reject("note_blinding_"+leg, err)
	}
	if _, err := decodeScalar(esk); err != nil {
		return Commitment{}, reject("esk_"+leg, err)
	}
	return p.commitNote(&gd, &pkd, amount, assetID, &b), nil
}

// Verify dispatches a proof to its kind's verifier using the context fields
// that kind consumes.
func (p *Params) Verify(proof Proof, ctx Context) (Result, error) {
	switch pr := proof.(type) {
	case *SpendProof:
		r, err := p.VerifySpend(pr, ctx.Root)
		if err != nil {
			return nil, err
		}
		return r, nil
	case *OutputProof:
		r, err := p.VerifyOutput(pr)
		if err != nil {
			return nil, err
		}
		return r, nil
	case *SwapProof:
		r, err := p.VerifySwap(pr, ctx.Pair)
		if err != nil {
			return nil, err
		}
		return r, nil
	case *SwapClaimProof:
		r, err := p.VerifySwapClaim(pr, ctx.Root, ctx.Exec)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unsupported proof kind %T", proof)
	}
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
