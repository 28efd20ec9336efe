// main.go - Batch checker for transparent shielded-pool proofs.
//
// Loads a JSON file of transparent proofs, verifies them in parallel against
// a configured note-commitment tree root and a fixed-price execution rule,
// and reports per-proof accept/reject. Exits non-zero if any proof rejects.
//
// Usage:
//   poolcheckd -config poolcheck.json

package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"transparentpool/internal/registry"
	"transparentpool/internal/transparent"
)

func main() {
	configPath := flag.String("config", "poolcheck.json", "path to config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	log := newLogger(cfg.LogLevel)

	params, err := transparent.NewParams(registry.DeriveAssetID(cfg.FeeDenom))
	if err != nil {
		log.Fatal().Err(err).Msg("parameter setup failed")
	}

	var root transparent.Commitment
	if cfg.RootHex != "" {
		b, err := hex.DecodeString(cfg.RootHex)
		if err != nil || len(b) != transparent.DigestSize {
			log.Fatal().Str("root_hex", cfg.RootHex).Msg("root_hex must be a 48-byte hex digest")
		}
		copy(root[:], b)
	}

	// Fixed-price execution rule: both legs fill at price_num/price_den.
	exec := func(pair transparent.TradingPair, delta1, delta2 uint64) (uint64, uint64) {
		return delta1 * cfg.PriceNum / cfg.PriceDen, delta2 * cfg.PriceNum / cfg.PriceDen
	}

	items, err := loadBatch(cfg.ProofsPath, root, exec)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.ProofsPath).Msg("loading proofs failed")
	}
	log.Info().Int("proofs", len(items)).Int("workers", cfg.Workers).Msg("verifying batch")

	results, err := params.VerifyBatch(context.Background(), items, cfg.Workers)
	if err != nil {
		log.Fatal().Err(err).Msg("batch verification aborted")
	}

	rejected := 0
	for i, res := range results {
		kind := items[i].Proof.Kind().String()
		if res.Err != nil {
			rejected++
			log.Warn().Int("index", i).Str("kind", kind).Err(res.Err).Msg("proof rejected")
			continue
		}
		ev := log.Info().Int("index", i).Str("kind", kind)
		switch r := res.Result.(type) {
		case *transparent.SpendResult:
			ev = ev.Str("nullifier", r.Nullifier.String())
		case *transparent.OutputResult:
			ev = ev.Str("note_commitment", r.NoteCommitment.String())
		case *transparent.SwapResult:
			ev = ev.Str("swap_nft_commitment", r.SwapNFTCommitment.String())
		case *transparent.SwapClaimResult:
			ev = ev.Str("nullifier", r.Nullifier.String())
		}
		ev.Msg("proof accepted")
	}

	log.Info().Int("accepted", len(results)-rejected).Int("rejected", rejected).Msg("batch complete")
	if rejected > 0 {
		os.Exit(1)
	}
}
