// asset.go - Swap NFT asset id derivation.

package transparent

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// SwapNFTAssetID derives the asset id of a swap NFT note from the swap's full
// intent. The id binds (trading pair, delta_1, delta_2, fee), so a swap NFT
// cannot be claimed against different deltas or a different fee than were
// escrowed.
//
// Layout is a pinned contract: domain tag, then asset_1 and asset_2 of the
// pair, then delta_1, delta_2, fee as 8-byte big-endian integers, hashed with
// BLAKE3.
func SwapNFTAssetID(pair TradingPair, delta1, delta2, fee uint64) AssetID {
	h := blake3.New()
	h.Write([]byte(swapNFTDomain))
	h.Write(pair.Asset1[:])
	h.Write(pair.Asset2[:])
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], delta1)
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], delta2)
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], fee)
	h.Write(buf[:])
	var id AssetID
	copy(id[:], h.Sum(nil))
	return id
}
