package transparent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyInclusion(t *testing.T) {
	p := testParams(t)
	var cm Commitment
	cm[0] = 0x42
	tree := newTestTree(p, 6, map[uint64]Commitment{37: cm})

	proof := InclusionProof{
		Commitment: append([]byte(nil), cm[:]...),
		Path:       tree.path(37),
		Position:   37,
	}
	require.NoError(t, p.VerifyInclusion(proof, tree.root()))
}

func TestVerifyInclusionWrongRoot(t *testing.T) {
	p := testParams(t)
	var cm, other Commitment
	cm[0] = 0x42
	other[0] = 0x43
	tree := newTestTree(p, 6, map[uint64]Commitment{37: cm})
	unrelated := newTestTree(p, 6, map[uint64]Commitment{37: other})

	proof := InclusionProof{
		Commitment: append([]byte(nil), cm[:]...),
		Path:       tree.path(37),
		Position:   37,
	}
	require.ErrorIs(t, p.VerifyInclusion(proof, unrelated.root()), ErrInclusionMismatch)
}

func TestVerifyInclusionWrongPosition(t *testing.T) {
	p := testParams(t)
	var cm Commitment
	cm[0] = 0x42
	tree := newTestTree(p, 6, map[uint64]Commitment{37: cm})

	// Sibling ordering is fixed by position bits; a different position must
	// walk a different path shape and miss the root.
	proof := InclusionProof{
		Commitment: append([]byte(nil), cm[:]...),
		Path:       tree.path(37),
		Position:   38,
	}
	require.ErrorIs(t, p.VerifyInclusion(proof, tree.root()), ErrInclusionMismatch)

	// Position bits beyond the path length are rejected outright.
	proof.Position = 37 | 1<<6
	require.ErrorIs(t, p.VerifyInclusion(proof, tree.root()), ErrInclusionMismatch)
}

func TestVerifyInclusionMalformedSibling(t *testing.T) {
	p := testParams(t)
	var cm Commitment
	cm[0] = 0x42
	tree := newTestTree(p, 6, map[uint64]Commitment{37: cm})

	path := tree.path(37)
	path[2] = path[2][:10]
	proof := InclusionProof{
		Commitment: append([]byte(nil), cm[:]...),
		Path:       path,
		Position:   37,
	}
	require.ErrorIs(t, p.VerifyInclusion(proof, tree.root()), ErrMalformedScalar)
}
