// decode.go - JSON proof-file schema for the checker harness.
//
// This is a harness encoding only: byte fields are hex strings, integers are
// plain JSON numbers. The protocol's wire schema proper is outside the
// engine's scope.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"transparentpool/internal/transparent"
)

// hexBytes decodes a JSON hex string into raw bytes.
type hexBytes []byte

func (h *hexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}
	*h = b
	return nil
}

type addressRecord struct {
	GD  hexBytes `json:"g_d"`
	PKD hexBytes `json:"pk_d"`
}

func (a addressRecord) toAddress() transparent.DiversifiedAddress {
	return transparent.DiversifiedAddress{GD: a.GD, PKD: a.PKD}
}

type inclusionRecord struct {
	Commitment hexBytes   `json:"commitment"`
	Path       []hexBytes `json:"path"`
	Position   uint64     `json:"position"`
}

func (i inclusionRecord) toInclusion() transparent.InclusionProof {
	path := make([][]byte, len(i.Path))
	for j, p := range i.Path {
		path[j] = p
	}
	return transparent.InclusionProof{Commitment: i.Commitment, Path: path, Position: i.Position}
}

func toAssetID(b hexBytes, field string) (transparent.AssetID, error) {
	var id transparent.AssetID
	if len(b) != len(id) {
		return id, fmt.Errorf("%s: expected %d bytes, got %d", field, len(id), len(b))
	}
	copy(id[:], b)
	return id, nil
}

type spendRecord struct {
	Inclusion           inclusionRecord `json:"inclusion"`
	Address             addressRecord   `json:"address"`
	Amount              uint64          `json:"amount"`
	AssetID             hexBytes        `json:"asset_id"`
	VBlinding           hexBytes        `json:"v_blinding"`
	NoteBlinding        hexBytes        `json:"note_blinding"`
	SpendAuthRandomizer hexBytes        `json:"spend_auth_randomizer"`
	Ak                  hexBytes        `json:"ak"`
	Nk                  hexBytes        `json:"nk"`
}

type outputRecord struct {
	Address      addressRecord `json:"address"`
	Amount       uint64        `json:"amount"`
	AssetID      hexBytes      `json:"asset_id"`
	VBlinding    hexBytes      `json:"v_blinding"`
	NoteBlinding hexBytes      `json:"note_blinding"`
	Esk          hexBytes      `json:"esk"`
}

type swapRecord struct {
	Asset1         hexBytes      `json:"asset_1"`
	Asset2         hexBytes      `json:"asset_2"`
	Delta1         uint64        `json:"delta_1"`
	Delta2         uint64        `json:"delta_2"`
	T1             hexBytes      `json:"t1"`
	T2             hexBytes      `json:"t2"`
	Fee            uint64        `json:"fee"`
	Delta1Blinding hexBytes      `json:"delta_1_blinding"`
	Delta2Blinding hexBytes      `json:"delta_2_blinding"`
	FeeBlinding    hexBytes      `json:"fee_blinding"`
	SwapNFTAssetID hexBytes      `json:"swap_nft_asset_id"`
	NFTAddress     addressRecord `json:"nft_address"`
	NoteBlinding   hexBytes      `json:"note_blinding"`
	Esk            hexBytes      `json:"esk"`
}

type swapClaimRecord struct {
	SwapNFTAssetID  hexBytes        `json:"swap_nft_asset_id"`
	NFTAddress      addressRecord   `json:"nft_address"`
	Inclusion       inclusionRecord `json:"inclusion"`
	NoteBlinding    hexBytes        `json:"note_blinding"`
	Nk              hexBytes        `json:"nk"`
	Asset1          hexBytes        `json:"asset_1"`
	Asset2          hexBytes        `json:"asset_2"`
	Delta1          uint64          `json:"delta_1"`
	Delta2          uint64          `json:"delta_2"`
	Lambda1         uint64          `json:"lambda_1"`
	Lambda2         uint64          `json:"lambda_2"`
	OutputAddress1  addressRecord   `json:"output_address_1"`
	OutputAddress2  addressRecord   `json:"output_address_2"`
	OutputBlinding1 hexBytes        `json:"output_blinding_1"`
	OutputBlinding2 hexBytes        `json:"output_blinding_2"`
	Esk1            hexBytes        `json:"esk_1"`
	Esk2            hexBytes        `json:"esk_2"`
}

type proofRecord struct {
	Kind      string           `json:"kind"`
	Spend     *spendRecord     `json:"spend,omitempty"`
	Output    *outputRecord    `json:"output,omitempty"`
	Swap      *swapRecord      `json:"swap,omitempty"`
	SwapClaim *swapClaimRecord `json:"swap_claim,omitempty"`
}

type proofFile struct {
	Proofs []proofRecord `json:"proofs"`
}

func toPair(asset1, asset2 hexBytes) (transparent.TradingPair, error) {
	a1, err := toAssetID(asset1, "asset_1")
	if err != nil {
		return transparent.TradingPair{}, err
	}
	a2, err := toAssetID(asset2, "asset_2")
	if err != nil {
		return transparent.TradingPair{}, err
	}
	return transparent.TradingPair{Asset1: a1, Asset2: a2}, nil
}

// loadBatch reads the proof file and assembles batch items against the shared
// root and execution function.
func loadBatch(path string, root transparent.Commitment, exec transparent.ExecutionFn) ([]transparent.BatchItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read proofs file: %w", err)
	}
	var file proofFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode proofs file: %w", err)
	}

	items := make([]transparent.BatchItem, 0, len(file.Proofs))
	for i, rec := range file.Proofs {
		item, err := rec.toItem(root, exec)
		if err != nil {
			return nil, fmt.Errorf("proof %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (rec proofRecord) toItem(root transparent.Commitment, exec transparent.ExecutionFn) (transparent.BatchItem, error) {
	switch rec.Kind {
	case "spend":
		if rec.Spend == nil {
			return transparent.BatchItem{}, fmt.Errorf("missing spend body")
		}
		assetID, err := toAssetID(rec.Spend.AssetID, "asset_id")
		if err != nil {
			return transparent.BatchItem{}, err
		}
		return transparent.BatchItem{
			Proof: &transparent.SpendProof{
				Inclusion:           rec.Spend.Inclusion.toInclusion(),
				Address:             rec.Spend.Address.toAddress(),
				Amount:              rec.Spend.Amount,
				AssetID:             assetID,
				VBlinding:           rec.Spend.VBlinding,
				NoteBlinding:        rec.Spend.NoteBlinding,
				SpendAuthRandomizer: rec.Spend.SpendAuthRandomizer,
				Ak:                  rec.Spend.Ak,
				Nk:                  rec.Spend.Nk,
			},
			Context: transparent.Context{Root: root},
		}, nil
	case "output":
		if rec.Output == nil {
			return transparent.BatchItem{}, fmt.Errorf("missing output body")
		}
		assetID, err := toAssetID(rec.Output.AssetID, "asset_id")
		if err != nil {
			return transparent.BatchItem{}, err
		}
		return transparent.BatchItem{
			Proof: &transparent.OutputProof{
				Address:      rec.Output.Address.toAddress(),
				Amount:       rec.Output.Amount,
				AssetID:      assetID,
				VBlinding:    rec.Output.VBlinding,
				NoteBlinding: rec.Output.NoteBlinding,
				Esk:          rec.Output.Esk,
			},
		}, nil
	case "swap":
		if rec.Swap == nil {
			return transparent.BatchItem{}, fmt.Errorf("missing swap body")
		}
		pair, err := toPair(rec.Swap.Asset1, rec.Swap.Asset2)
		if err != nil {
			return transparent.BatchItem{}, err
		}
		nftID, err := toAssetID(rec.Swap.SwapNFTAssetID, "swap_nft_asset_id")
		if err != nil {
			return transparent.BatchItem{}, err
		}
		return transparent.BatchItem{
			Proof: &transparent.SwapProof{
				Delta1:         rec.Swap.Delta1,
				Delta2:         rec.Swap.Delta2,
				T1:             rec.Swap.T1,
				T2:             rec.Swap.T2,
				Fee:            rec.Swap.Fee,
				Delta1Blinding: rec.Swap.Delta1Blinding,
				Delta2Blinding: rec.Swap.Delta2Blinding,
				FeeBlinding:    rec.Swap.FeeBlinding,
				SwapNFTAssetID: nftID,
				NFTAddress:     rec.Swap.NFTAddress.toAddress(),
				NoteBlinding:   rec.Swap.NoteBlinding,
				Esk:            rec.Swap.Esk,
			},
			Context: transparent.Context{Pair: pair},
		}, nil
	case "swap_claim":
		if rec.SwapClaim == nil {
			return transparent.BatchItem{}, fmt.Errorf("missing swap_claim body")
		}
		pair, err := toPair(rec.SwapClaim.Asset1, rec.SwapClaim.Asset2)
		if err != nil {
			return transparent.BatchItem{}, err
		}
		nftID, err := toAssetID(rec.SwapClaim.SwapNFTAssetID, "swap_nft_asset_id")
		if err != nil {
			return transparent.BatchItem{}, err
		}
		return transparent.BatchItem{
			Proof: &transparent.SwapClaimProof{
				SwapNFTAssetID:  nftID,
				NFTAddress:      rec.SwapClaim.NFTAddress.toAddress(),
				Inclusion:       rec.SwapClaim.Inclusion.toInclusion(),
				NoteBlinding:    rec.SwapClaim.NoteBlinding,
				Nk:              rec.SwapClaim.Nk,
				Pair:            pair,
				Delta1:          rec.SwapClaim.Delta1,
				Delta2:          rec.SwapClaim.Delta2,
				Lambda1:         rec.SwapClaim.Lambda1,
				Lambda2:         rec.SwapClaim.Lambda2,
				OutputAddress1:  rec.SwapClaim.OutputAddress1.toAddress(),
				OutputAddress2:  rec.SwapClaim.OutputAddress2.toAddress(),
				OutputBlinding1: rec.SwapClaim.OutputBlinding1,
				OutputBlinding2: rec.SwapClaim.OutputBlinding2,
				Esk1:            rec.SwapClaim.Esk1,
				Esk2:            rec.SwapClaim.Esk2,
			},
			Context: transparent.Context{Root: root, Exec: exec},
		}, nil
	default:
		return transparent.BatchItem{}, fmt.Errorf("unknown proof kind %q", rec.Kind)
	}
}
