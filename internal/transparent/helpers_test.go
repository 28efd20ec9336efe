// helpers_test.go - Shared fixtures: deterministic scalars, points, addresses,
// and a small in-memory commitment tree for inclusion scenarios.

package transparent

import (
	"math/big"
	"testing"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	bls12377_fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"
)

func testParams(t *testing.T) *Params {
	t.Helper()
	p, err := NewParams(testAssetID(0xFE))
	require.NoError(t, err)
	return p
}

func testAssetID(tag byte) AssetID {
	var id AssetID
	for i := range id {
		id[i] = tag
	}
	return id
}

func testScalar(seed uint64) []byte {
	var e bls12377_fr.Element
	e.SetUint64(seed)
	b := e.Bytes()
	return b[:]
}

func testPoint(seed int64) []byte {
	_, _, g1, _ := bls12377.Generators()
	var p bls12377.G1Affine
	p.ScalarMultiplication(&g1, big.NewInt(seed))
	b := p.Bytes()
	return b[:]
}

func testAddress(seed1, seed2 int64) DiversifiedAddress {
	return DiversifiedAddress{GD: testPoint(seed1), PKD: testPoint(seed2)}
}

// infinityPoint returns the compressed encoding of the group identity.
func infinityPoint() []byte {
	var inf bls12377.G1Affine
	b := inf.Bytes()
	return b[:]
}

// testTree is a fixed-depth commitment tree with empty slots holding the zero
// digest. It stands in for the external note-commitment tree collaborator.
type testTree struct {
	layers [][]Commitment
}

func newTestTree(p *Params, depth int, leaves map[uint64]Commitment) *testTree {
	layer := make([]Commitment, 1<<depth)
	for pos, cm := range leaves {
		layer[pos] = cm
	}
	layers := [][]Commitment{layer}
	for len(layer) > 1 {
		next := make([]Commitment, len(layer)/2)
		for i := range next {
			next[i] = p.hashNode(layer[2*i][:], layer[2*i+1][:])
		}
		layers = append(layers, next)
		layer = next
	}
	return &testTree{layers: layers}
}

func (tr *testTree) root() Commitment {
	top := tr.layers[len(tr.layers)-1]
	return top[0]
}

func (tr *testTree) path(pos uint64) [][]byte {
	var path [][]byte
	idx := pos
	for _, layer := range tr.layers[:len(tr.layers)-1] {
		sibling := layer[idx^1]
		cp := make([]byte, DigestSize)
		copy(cp, sibling[:])
		path = append(path, cp)
		idx >>= 1
	}
	return path
}

// testSpendProof builds a valid spend of a note with amount 100 committed at
// tree position 5, returning the proof and the matching root.
func testSpendProof(t *testing.T, p *Params) (*SpendProof, Commitment) {
	t.Helper()
	addr := testAddress(2, 3)
	assetX := testAssetID(0xAA)
	noteBlinding := testScalar(11)
	cm, err := p.CommitNote(addr, 100, assetX, noteBlinding)
	require.NoError(t, err)

	tree := newTestTree(p, 8, map[uint64]Commitment{5: cm})
	return &SpendProof{
		Inclusion: InclusionProof{
			Commitment: append([]byte(nil), cm[:]...),
			Path:       tree.path(5),
			Position:   5,
		},
		Address:             addr,
		Amount:              100,
		AssetID:             assetX,
		VBlinding:           testScalar(12),
		NoteBlinding:        noteBlinding,
		SpendAuthRandomizer: testScalar(13),
		Ak:                  testPoint(14),
		Nk:                  testScalar(15),
	}, tree.root()
}
