package transparent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveNullifierDeterministic(t *testing.T) {
	p := testParams(t)
	nk := testScalar(7)
	var cm Commitment
	cm[0] = 0x01

	n1, err := p.DeriveNullifier(nk, cm, 5)
	require.NoError(t, err)
	n2, err := p.DeriveNullifier(nk, cm, 5)
	require.NoError(t, err)
	require.Equal(t, n1, n2)
}

func TestDeriveNullifierDistinctInputs(t *testing.T) {
	p := testParams(t)
	nk := testScalar(7)

	// Distinct (commitment, position) pairs under a fixed nk must not collide.
	seen := make(map[Nullifier]struct{})
	for c := byte(0); c < 8; c++ {
		var cm Commitment
		cm[0] = c
		for pos := uint64(0); pos < 8; pos++ {
			n, err := p.DeriveNullifier(nk, cm, pos)
			require.NoError(t, err)
			_, dup := seen[n]
			require.False(t, dup, "nullifier collision at commitment %d position %d", c, pos)
			seen[n] = struct{}{}
		}
	}

	// A different nullifier key changes the tag.
	var cm Commitment
	cm[0] = 0x01
	n1, err := p.DeriveNullifier(nk, cm, 0)
	require.NoError(t, err)
	n2, err := p.DeriveNullifier(testScalar(8), cm, 0)
	require.NoError(t, err)
	require.NotEqual(t, n1, n2)
}

func TestDeriveNullifierMalformedKey(t *testing.T) {
	p := testParams(t)
	var cm Commitment
	_, err := p.DeriveNullifier([]byte{0x01}, cm, 0)
	require.ErrorIs(t, err, ErrMalformedScalar)
}
