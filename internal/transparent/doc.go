// Package transparent implements transparent transaction proofs for a
// shielded-pool value-transfer protocol.
//
// Overview:
//   - A transparent proof opens, in the clear, the witness data a zero-knowledge
//     circuit would otherwise hide. The verifier recomputes the same arithmetic
//     the circuit enforces and accepts or rejects without a SNARK verifier.
//   - Four proof kinds are supported: Spend (consume a committed note), Output
//     (create a new note), Swap (escrow two asset deltas plus a fee into a
//     swap NFT note), and SwapClaim (redeem a completed swap into two notes).
//
// Security Model:
//   - Note commitments, nullifiers, and Merkle nodes use MiMC over the BW6-761
//     scalar field, which coincides with the BLS12-377 base field.
//   - Value commitments are Pedersen commitments over BLS12-377 G1 with
//     per-asset generators derived by hash-to-curve; they are additively
//     homomorphic, which is what makes transaction-wide balance checks work.
//   - The commitment and nullifier derivations are a shared, versioned contract
//     with the private-circuit variant of the protocol; they must never diverge.
//
// Usage:
//   - Construct Params once at startup with NewParams and share it freely; it is
//     immutable and safe for concurrent use.
//   - Call VerifySpend, VerifyOutput, VerifySwap, VerifySwapClaim directly, or
//     Verify for tagged dispatch, or VerifyBatch for parallel verification.
//   - The engine is stateless: recording accepted commitments and nullifiers,
//     and checking nullifiers against the spent set, is the caller's job.
package transparent
