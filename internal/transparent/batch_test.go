package transparent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func testBatchItems(t *testing.T, p *Params) []BatchItem {
	t.Helper()
	spend, root := testSpendProof(t, p)

	badSpend, _ := testSpendProof(t, p)
	var unrelated Commitment
	unrelated[0] = 0x99

	output := &OutputProof{
		Address:      testAddress(6, 7),
		Amount:       250,
		AssetID:      testAssetID(0xAB),
		VBlinding:    testScalar(31),
		NoteBlinding: testScalar(32),
		Esk:          testScalar(33),
	}

	pair := TradingPair{Asset1: testAssetID(0xA1), Asset2: testAssetID(0xA2)}

	return []BatchItem{
		{Proof: spend, Context: Context{Root: root}},
		{Proof: badSpend, Context: Context{Root: unrelated}},
		{Proof: output},
		{Proof: testSwapProof(pair), Context: Context{Pair: pair}},
	}
}

func TestVerifyBatch(t *testing.T) {
	p := testParams(t)
	items := testBatchItems(t, p)

	results, err := p.VerifyBatch(context.Background(), items, 4)
	require.NoError(t, err)
	require.Len(t, results, len(items))

	require.NoError(t, results[0].Err)
	require.Equal(t, KindSpend, results[0].Result.ProofKind())
	require.ErrorIs(t, results[1].Err, ErrInclusionMismatch)
	require.Nil(t, results[1].Result)
	require.NoError(t, results[2].Err)
	require.NoError(t, results[3].Err)
}

func TestVerifyBatchOrderInsensitive(t *testing.T) {
	p := testParams(t)
	items := testBatchItems(t, p)

	// One worker forces sequential order; many workers race freely. Results
	// must agree item-by-item either way.
	sequential, err := p.VerifyBatch(context.Background(), items, 1)
	require.NoError(t, err)
	parallel, err := p.VerifyBatch(context.Background(), items, 8)
	require.NoError(t, err)

	require.Equal(t, len(sequential), len(parallel))
	for i := range sequential {
		require.Equal(t, sequential[i].Result, parallel[i].Result, "item %d result", i)
		require.Equal(t, sequential[i].Err, parallel[i].Err, "item %d error", i)
	}
}

func TestVerifyBatchCancelled(t *testing.T) {
	p := testParams(t)
	items := testBatchItems(t, p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.VerifyBatch(ctx, items, 2)
	require.ErrorIs(t, err, context.Canceled)
}
