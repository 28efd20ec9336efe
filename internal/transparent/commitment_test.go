package transparent

import (
	"testing"

	bls12377_fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"
)

func TestCommitNoteDeterministic(t *testing.T) {
	p := testParams(t)
	addr := testAddress(2, 3)
	asset := testAssetID(0x01)
	blinding := testScalar(42)

	cm1, err := p.CommitNote(addr, 100, asset, blinding)
	require.NoError(t, err)
	cm2, err := p.CommitNote(addr, 100, asset, blinding)
	require.NoError(t, err)
	require.Equal(t, cm1, cm2)

	// Any input change moves the commitment.
	cm3, err := p.CommitNote(addr, 101, asset, blinding)
	require.NoError(t, err)
	require.NotEqual(t, cm1, cm3)

	cm4, err := p.CommitNote(addr, 100, testAssetID(0x02), blinding)
	require.NoError(t, err)
	require.NotEqual(t, cm1, cm4)

	cm5, err := p.CommitNote(addr, 100, asset, testScalar(43))
	require.NoError(t, err)
	require.NotEqual(t, cm1, cm5)
}

func TestCommitValueHomomorphism(t *testing.T) {
	p := testParams(t)
	asset := testAssetID(0x01)

	var b1, b2, bSum bls12377_fr.Element
	b1.SetUint64(5)
	b2.SetUint64(7)
	bSum.Add(&b1, &b2)
	b1Bytes := b1.Bytes()
	b2Bytes := b2.Bytes()
	bSumBytes := bSum.Bytes()

	c1, err := p.CommitValue(3, asset, b1Bytes[:])
	require.NoError(t, err)
	c2, err := p.CommitValue(9, asset, b2Bytes[:])
	require.NoError(t, err)
	cSum, err := p.CommitValue(12, asset, bSumBytes[:])
	require.NoError(t, err)

	require.True(t, c1.Add(c2).Equal(cSum))
	require.True(t, c2.Add(c1).Equal(cSum))
}

func TestCommitValueAssetSeparation(t *testing.T) {
	p := testParams(t)
	blinding := testScalar(5)

	c1, err := p.CommitValue(10, testAssetID(0x01), blinding)
	require.NoError(t, err)
	c2, err := p.CommitValue(10, testAssetID(0x02), blinding)
	require.NoError(t, err)
	require.False(t, c1.Equal(c2))
}

func TestCommitMalformedInputs(t *testing.T) {
	p := testParams(t)
	addr := testAddress(2, 3)
	asset := testAssetID(0x01)

	// Wrong-length scalar.
	_, err := p.CommitNote(addr, 1, asset, []byte{0x01, 0x02})
	require.ErrorIs(t, err, ErrMalformedScalar)

	// Right length, non-canonical (>= field modulus).
	big := make([]byte, ScalarSize)
	for i := range big {
		big[i] = 0xFF
	}
	_, err = p.CommitValue(1, asset, big)
	require.ErrorIs(t, err, ErrMalformedScalar)

	// Wrong-length point.
	bad := DiversifiedAddress{GD: []byte{0x01}, PKD: testPoint(3)}
	_, err = p.CommitNote(bad, 1, asset, testScalar(1))
	require.ErrorIs(t, err, ErrMalformedPoint)

	// Right length, invalid compression flags.
	garbage := make([]byte, PointSize)
	for i := range garbage {
		garbage[i] = 0xFF
	}
	bad = DiversifiedAddress{GD: testPoint(2), PKD: garbage}
	_, err = p.CommitNote(bad, 1, asset, testScalar(1))
	require.ErrorIs(t, err, ErrMalformedPoint)
}
