// proofs.go - The four transparent proof message shapes and their results.
//
// Every byte field is required and fixed-length: 32 bytes for scalar
// encodings, 48 bytes for compressed points. The verifiers reject anything
// else before deriving from it.

package transparent

// ProofKind tags the four transparent proof variants.
type ProofKind uint8

const (
	KindSpend ProofKind = iota + 1
	KindOutput
	KindSwap
	KindSwapClaim
)

func (k ProofKind) String() string {
	switch k {
	case KindSpend:
		return "spend"
	case KindOutput:
		return "output"
	case KindSwap:
		return "swap"
	case KindSwapClaim:
		return "swap_claim"
	default:
		return "unknown"
	}
}

// Proof is the tagged union over the four transparent proof kinds.
type Proof interface {
	Kind() ProofKind
}

// Result is the accept-side output of a verification, tagged by kind. The
// caller records the derived commitments and nullifiers it carries.
type Result interface {
	ProofKind() ProofKind
}

// SpendProof is the full opening of a note being consumed plus its tree
// membership. SpendAuthRandomizer and Ak are validated for well-formedness
// and passed through for the external authorization-signature check.
type SpendProof struct {
	Inclusion           InclusionProof
	Address             DiversifiedAddress
	Amount              uint64
	AssetID             AssetID
	VBlinding           []byte
	NoteBlinding        []byte
	SpendAuthRandomizer []byte
	Ak                  []byte
	Nk                  []byte
}

func (*SpendProof) Kind() ProofKind { return KindSpend }

// SpendResult carries the public outputs of an accepted spend.
type SpendResult struct {
	NoteCommitment      Commitment
	ValueCommitment     ValueCommitment
	Nullifier           Nullifier
	Ak                  []byte
	SpendAuthRandomizer []byte
}

func (*SpendResult) ProofKind() ProofKind { return KindSpend }

// OutputProof is the full opening of a newly created note. Esk is the
// ephemeral secret the external key-agreement module consumes; the engine
// only validates it is a well-formed scalar.
type OutputProof struct {
	Address      DiversifiedAddress
	Amount       uint64
	AssetID      AssetID
	VBlinding    []byte
	NoteBlinding []byte
	Esk          []byte
}

func (*OutputProof) Kind() ProofKind { return KindOutput }

// OutputResult carries the public outputs of an accepted output.
type OutputResult struct {
	NoteCommitment  Commitment
	ValueCommitment ValueCommitment
}

func (*OutputResult) ProofKind() ProofKind { return KindOutput }

// SwapProof escrows two asset deltas plus a fee into a unit-valued swap NFT
// note whose asset id binds the trade intent. T1 and T2 are trading-pair
// scoped blinding inputs, validated as scalars and passed through.
type SwapProof struct {
	Delta1         uint64
	Delta2         uint64
	T1             []byte
	T2             []byte
	Fee            uint64
	Delta1Blinding []byte
	Delta2Blinding []byte
	FeeBlinding    []byte
	SwapNFTAssetID AssetID
	// Opening of the new swap NFT note: (b_d, pk_d, note_blinding, esk).
	NFTAddress   DiversifiedAddress
	NoteBlinding []byte
	Esk          []byte
}

func (*SwapProof) Kind() ProofKind { return KindSwap }

// SwapResult carries the public outputs of an accepted swap.
type SwapResult struct {
	ValueCommitment1  ValueCommitment
	ValueCommitment2  ValueCommitment
	FeeCommitment     ValueCommitment
	SwapNFTCommitment Commitment
	T1                []byte
	T2                []byte
}

func (*SwapResult) ProofKind() ProofKind { return KindSwap }

// SwapClaimProof redeems a previously escrowed swap into two output notes
// whose amounts are the trading pair's execution result.
type SwapClaimProof struct {
	SwapNFTAssetID AssetID
	NFTAddress     DiversifiedAddress
	Inclusion      InclusionProof
	NoteBlinding   []byte
	Nk             []byte
	Pair           TradingPair
	Delta1         uint64
	Delta2         uint64
	Lambda1        uint64
	Lambda2        uint64
	// Openings of the two output notes, one per pair leg.
	OutputAddress1  DiversifiedAddress
	OutputAddress2  DiversifiedAddress
	OutputBlinding1 []byte
	OutputBlinding2 []byte
	Esk1            []byte
	Esk2            []byte
}

func (*SwapClaimProof) Kind() ProofKind { return KindSwapClaim }

// SwapClaimResult carries the public outputs of an accepted swap claim.
type SwapClaimResult struct {
	Nullifier         Nullifier
	OutputCommitment1 Commitment
	OutputCommitment2 Commitment
}

func (*SwapClaimResult) ProofKind() ProofKind { return KindSwapClaim }

// Context is the external, read-only context a verification runs against.
// Root is consumed by spend and swap-claim proofs, Pair by swap proofs, and
// Exec by swap-claim proofs; unused fields may be left zero.
type Context struct {
	Root Commitment
	Pair TradingPair
	Exec ExecutionFn
}
