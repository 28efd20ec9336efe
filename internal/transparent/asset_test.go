package transparent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwapNFTAssetID(t *testing.T) {
	pair := TradingPair{Asset1: testAssetID(0xA1), Asset2: testAssetID(0xA2)}

	id1 := SwapNFTAssetID(pair, 10, 0, 1)
	id2 := SwapNFTAssetID(pair, 10, 0, 1)
	require.Equal(t, id1, id2)

	// Every bound input moves the id.
	require.NotEqual(t, id1, SwapNFTAssetID(pair, 11, 0, 1))
	require.NotEqual(t, id1, SwapNFTAssetID(pair, 10, 1, 1))
	require.NotEqual(t, id1, SwapNFTAssetID(pair, 10, 0, 2))

	flipped := TradingPair{Asset1: pair.Asset2, Asset2: pair.Asset1}
	require.NotEqual(t, id1, SwapNFTAssetID(flipped, 10, 0, 1))
}
